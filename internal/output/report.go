package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnsupportedFormat is returned for a format name with no formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Render formats entries with the named formatter and writes them to w.
func Render(w io.Writer, format string, entries []Entry) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(entries)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes its output to filename.
func WriteFormatted(f Formatter, entries []Entry, filename string) error {
	data, err := f.Format(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
