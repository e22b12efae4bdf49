package utils

import (
	"strings"

	"github.com/SscSPs/pasale_ledger/internal/utils/nepalidate"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// GroupingStyle selects how integer digits are grouped.
type GroupingStyle string

const (
	// GroupingWestern groups by thousands: 1,234,567.
	GroupingWestern GroupingStyle = "western"
	// GroupingIndian groups the last three digits, then pairs: 12,34,567.
	GroupingIndian GroupingStyle = "indian"
)

// ParseGroupingStyle maps a config value to a style, defaulting to western.
func ParseGroupingStyle(s string) GroupingStyle {
	if strings.EqualFold(strings.TrimSpace(s), string(GroupingIndian)) {
		return GroupingIndian
	}
	return GroupingWestern
}

// Currency symbols shown in the UI.
const (
	SymbolRupeeEN = "Rs."
	SymbolRupeeNP = "रु."
)

// maxFractionDigits matches what a browser locale formatter shows by default.
const maxFractionDigits = 3

// indianEnglish's CLDR pattern is #,##,##0.### (lakh grouping).
var indianEnglish = language.MustParse("en-IN")

// tag returns the locale whose CLDR pattern carries the style's grouping.
func (g GroupingStyle) tag() language.Tag {
	if g == GroupingIndian {
		return indianEnglish
	}
	return language.AmericanEnglish
}

// FormatNumber groups the integer digits of amount and keeps up to three
// fraction digits with trailing zeros dropped.
func FormatNumber(amount decimal.Decimal, style GroupingStyle) string {
	p := message.NewPrinter(style.tag())
	return p.Sprint(number.Decimal(amount.Round(maxFractionDigits).InexactFloat64(), number.MaxFractionDigits(maxFractionDigits)))
}

// FormatCurrency renders amount as "Rs. 1,500" or, for Nepali, "रु. १,५००".
func FormatCurrency(amount decimal.Decimal, lang nepalidate.Language) string {
	return FormatCurrencyWith(amount, lang, GroupingWestern)
}

// FormatCurrencyWith is FormatCurrency with an explicit grouping style.
func FormatCurrencyWith(amount decimal.Decimal, lang nepalidate.Language, style GroupingStyle) string {
	digits := FormatNumber(amount, style)
	if lang == nepalidate.Nepali {
		return SymbolRupeeNP + " " + nepalidate.ToNepaliNumerals(digits)
	}
	return SymbolRupeeEN + " " + digits
}
