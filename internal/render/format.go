package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is appended to every formatted price.
const Currency = "₫"

// Locale is the single locale used for number formatting.
var Locale = language.Vietnamese

var pricePrinter = message.NewPrinter(Locale)

// FormatPrice formats a price with vi-VN grouping and the currency suffix,
// e.g. 15000 -> "15.000₫". A zero or absent price renders as "0₫".
func FormatPrice(price float64) string {
	if price == 0 {
		return "0" + Currency
	}
	return pricePrinter.Sprint(number.Decimal(price, number.MaxFractionDigits(3))) + Currency
}
