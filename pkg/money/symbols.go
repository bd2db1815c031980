package money

import "sort"

var symbols = map[string]string{
	"USD": "$",   // United States Dollar
	"EUR": "€",   // Euro
	"GBP": "£",   // British Pound
	"JPY": "¥",   // Japanese Yen
	"AUD": "A$",  // Australian Dollar
	"CAD": "C$",  // Canadian Dollar
	"CHF": "CHF", // Swiss Franc
	"CNY": "¥",   // Chinese Yuan
	"INR": "₹",   // Indian Rupee
}

// Symbol resolves a currency code to its display symbol. Lookup is exact;
// unknown codes are returned unchanged.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// KnownCurrencies returns the codes with a dedicated symbol, sorted.
func KnownCurrencies() []string {
	codes := make([]string, 0, len(symbols))
	for code := range symbols {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
