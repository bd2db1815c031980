package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per entry, in input order.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Input", "Amount", "Currency", "Symbol", "Shortform", "Display"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range toRecords(entries) {
		row := []string{r.Input, r.Amount, r.Currency, r.Symbol, strconv.FormatBool(r.Shortform), r.Display}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
