// Package currency renders taka amounts for display.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const DefaultSymbol = "৳"

var (
	crore = decimal.NewFromInt(10_000_000)
	lakh  = decimal.NewFromInt(100_000)
	kilo  = decimal.NewFromInt(1_000)
)

type Formatter struct {
	symbol string
}

func NewFormatter(symbol string) *Formatter {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return &Formatter{symbol: symbol}
}

// Format renders amount with English digit grouping, e.g. ৳12,500 or ৳1,234.5.
func (f *Formatter) Format(amount float64) string {
	p := message.NewPrinter(language.English)
	return f.symbol + p.Sprint(number.Decimal(amount, number.MaxFractionDigits(3)))
}

// FormatDecimal is Format for decimal amounts.
func (f *Formatter) FormatDecimal(amount decimal.Decimal) string {
	return f.Format(amount.InexactFloat64())
}

// Compact renders large amounts with crore, lakh and thousand suffixes:
// ৳1.2 Cr, ৳4.5 L, ৳8.0K, or the plain amount below a thousand.
func (f *Formatter) Compact(amount float64) string {
	d := decimal.NewFromFloat(amount)
	switch {
	case d.GreaterThanOrEqual(crore):
		return f.symbol + d.Div(crore).StringFixed(1) + " Cr"
	case d.GreaterThanOrEqual(lakh):
		return f.symbol + d.Div(lakh).StringFixed(1) + " L"
	case d.GreaterThanOrEqual(kilo):
		return f.symbol + d.Div(kilo).StringFixed(1) + "K"
	default:
		return f.symbol + d.String()
	}
}
