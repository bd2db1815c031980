// Package money renders monetary amounts as display strings.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency code used when the caller has no preference.
const DefaultCurrency = "USD"

// ErrNonFiniteAmount is returned when an amount is NaN or infinite.
var ErrNonFiniteAmount = errors.New("amount must be a finite number")

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// Money is an immutable amount bound to a currency symbol.
type Money struct {
	amount    decimal.Decimal
	currency  string
	symbol    string
	shortform bool
}

// New creates a Money from a float64 amount.
func New(amount float64, currency string, shortform bool) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("%w: %v", ErrNonFiniteAmount, amount)
	}
	return NewFromDecimal(decimal.NewFromFloat(amount), currency, shortform), nil
}

// NewFromDecimal creates a Money from a decimal.Decimal
func NewFromDecimal(amount decimal.Decimal, currency string, shortform bool) Money {
	return Money{
		amount:    amount,
		currency:  currency,
		symbol:    Symbol(currency),
		shortform: shortform,
	}
}

// NewFromString creates a Money from a decimal literal such as "-1250000.5".
func NewFromString(value, currency string, shortform bool) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return NewFromDecimal(d, currency, shortform), nil
}

// Amount returns the raw amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the code the Money was created with.
func (m Money) Currency() string { return m.currency }

// Symbol returns the resolved display symbol.
func (m Money) Symbol() string { return m.symbol }

// Shortform reports whether the amount renders abbreviated.
func (m Money) Shortform() bool { return m.shortform }

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// String returns the display form, e.g. "-$1,250.00" or "€1.50M".
func (m Money) String() string {
	abs := m.amount.Abs()

	var digits string
	if m.shortform {
		digits = shorten(abs)
	} else {
		digits = groupThousands(abs.StringFixed(2))
	}

	if m.amount.IsNegative() {
		return "-" + m.symbol + digits
	}
	return m.symbol + digits
}

// GoString returns the debug form used by %#v. The shortform flag only
// appears when it is set.
func (m Money) GoString() string {
	if m.shortform {
		return fmt.Sprintf("Money(%s, %s, shortform=True)", m.amount.String(), m.symbol)
	}
	return fmt.Sprintf("Money(%s, %s)", m.amount.String(), m.symbol)
}

type unit struct {
	size   decimal.Decimal
	suffix string
}

var units = []unit{
	{decimal.NewFromInt(1), ""},
	{thousand, "K"},
	{million, "M"},
	{billion, "B"},
}

// shorten picks the largest unit the value reaches. A value that rounds up
// to 1000 of one unit moves to the next, so 999999.999 is "1.00M".
func shorten(abs decimal.Decimal) string {
	i := 0
	for i < len(units)-1 && abs.GreaterThanOrEqual(units[i+1].size) {
		i++
	}
	for {
		scaled := abs.Div(units[i].size).Round(2)
		if i < len(units)-1 && scaled.GreaterThanOrEqual(thousand) {
			i++
			continue
		}
		return scaled.StringFixed(2) + units[i].suffix
	}
}

// groupThousands inserts commas into the integer part of an unsigned
// fixed-point string.
func groupThousands(fixed string) string {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	if len(intPart) <= 3 {
		return fixed
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
