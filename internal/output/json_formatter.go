package output

import "encoding/json"

// JSONFormatter serializes the entries as a pretty-printed JSON array.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(entries []Entry) ([]byte, error) {
	return json.MarshalIndent(toRecords(entries), "", "  ")
}
