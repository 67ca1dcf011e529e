package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders monetary amounts with locale-aware digit grouping,
// the way the storefront displays them (e.g. "1,299.00").
type PriceFormatter struct {
	p *message.Printer
}

// NewPriceFormatter builds a formatter for the given BCP 47 locale tag.
// An unparsable tag falls back to the undefined locale, which still groups
// digits sensibly.
func NewPriceFormatter(locale string) *PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return &PriceFormatter{p: message.NewPrinter(tag)}
}

// Format renders amount with two decimal places and grouping separators.
func (f *PriceFormatter) Format(amount float64) string {
	return f.p.Sprintf("%.2f", amount)
}
