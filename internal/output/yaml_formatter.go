package output

import "gopkg.in/yaml.v3"

// YAMLFormatter serializes the entries as a YAML sequence.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(entries []Entry) ([]byte, error) {
	return yaml.Marshal(toRecords(entries))
}
