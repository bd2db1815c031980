package output

import (
	"bytes"
	"html/template"
)

// HTMLFormatter renders the entries as a standalone HTML table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

var htmlTemplate = template.Must(template.New("amounts").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Amounts</title></head>
<body>
<table>
<thead><tr><th>Input</th><th>Currency</th><th>Display</th></tr></thead>
<tbody>
{{- range .}}
<tr><td>{{.Input}}</td><td>{{.Currency}}</td><td class="{{if .Negative}}negative{{else}}positive{{end}}">{{.Display}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

func (h HTMLFormatter) Format(entries []Entry) ([]byte, error) {
	type row struct {
		Record
		Negative bool
	}
	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, row{Record: ToRecord(e), Negative: e.Money.IsNegative()})
	}
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
