// Package currency formats rupee amounts and dates for display. Formatting
// is purely presentational; stored values are never affected by it.
package currency

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Symbol is the currency symbol prefixed to every formatted amount.
const Symbol = "₹"

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount with the rupee symbol and Indian digit grouping
// (₹1,20,000). Paise are shown only when the amount is fractional.
func Format(amount float64) string {
	if amount == math.Trunc(amount) {
		return Symbol + printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	}
	return Symbol + printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDate renders a calendar date in the short readable form used across
// the UI (28 Apr 2025).
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}
