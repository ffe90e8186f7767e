// Package money formats amounts for display. Prices and totals are
// stored as int64 cents of Colombian pesos and rendered with es-CO
// grouping.
package money

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	locale  = language.MustParse("es-CO")
	printer = message.NewPrinter(locale)
	unit    = currency.MustParseISO("COP")
)

// Format renders cents as a localized peso amount, e.g. "$ 15.000".
func Format(cents int64) string {
	return "$ " + FormatPlain(cents)
}

// FormatPlain renders cents without a currency symbol, e.g. "15.000".
// Fractional pesos appear after a decimal comma, e.g. "25.500,50".
func FormatPlain(cents int64) string {
	whole := printer.Sprintf("%d", cents/100)

	if frac := cents % 100; frac != 0 {
		return fmt.Sprintf("%s,%02d", whole, frac)
	}

	return whole
}

// Code returns the ISO 4217 code of the operating currency.
func Code() string {
	return unit.String()
}
