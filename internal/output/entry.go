// Package output renders batches of formatted amounts for the CLI.
package output

import "github.com/bennysutils/bennys-utils/pkg/money"

// Entry pairs the text an amount was parsed from with its Money value.
type Entry struct {
	Input string
	Money money.Money
}

// Record is the flat, serializable view of an Entry.
type Record struct {
	Input     string `json:"input" yaml:"input"`
	Amount    string `json:"amount" yaml:"amount"`
	Currency  string `json:"currency" yaml:"currency"`
	Symbol    string `json:"symbol" yaml:"symbol"`
	Shortform bool   `json:"shortform" yaml:"shortform"`
	Display   string `json:"display" yaml:"display"`
}

// ToRecord flattens an entry.
func ToRecord(e Entry) Record {
	return Record{
		Input:     e.Input,
		Amount:    e.Money.Amount().String(),
		Currency:  e.Money.Currency(),
		Symbol:    e.Money.Symbol(),
		Shortform: e.Money.Shortform(),
		Display:   e.Money.String(),
	}
}

func toRecords(entries []Entry) []Record {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, ToRecord(e))
	}
	return records
}
