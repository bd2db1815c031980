package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter prints the display form of one amount per line.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range entries {
		fmt.Fprintln(&buf, e.Money.String())
	}
	return buf.Bytes(), nil
}

// debugFormatter prints the debug form of one amount per line.
var debugFormatter = FormatterFunc{
	ID: "debug",
	F: func(entries []Entry) ([]byte, error) {
		var buf bytes.Buffer
		for _, e := range entries {
			fmt.Fprintln(&buf, e.Money.GoString())
		}
		return buf.Bytes(), nil
	},
}
