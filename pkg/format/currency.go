// Package format provides display formatting for decimal amounts.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands
// separators (e.g., "-$1,234.56"). Grouping is a display concern only; the
// decimal value itself is never mutated.
func Currency(amount decimal.Decimal) string {
	formatted := printer.Sprintf("%.2f", amount.Abs().InexactFloat64())
	if amount.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent returns a percentage string with two decimals (e.g., "5.50%").
func Percent(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}
