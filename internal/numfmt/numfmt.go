// Package numfmt formats dashboard figures the Indian way: digits are grouped
// as 12,40,000 and large amounts of money are written in lakhs and crores.
package numfmt

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale is the locale used for digit grouping.
var Locale = language.MustParse("en-IN")

// CurrencySymbol is prepended to currency amounts.
const CurrencySymbol = "₹"

// CompactThreshold is the amount from which Currency switches to compact
// notation.
const CompactThreshold = 100000

type compactUnit struct {
	scale  float64
	suffix string
}

// compactUnits are ordered from the largest.
var compactUnits = []compactUnit{
	{1e12, "LCr"},
	{1e7, "Cr"},
	{1e5, "L"},
}

func printer() *message.Printer {
	return message.NewPrinter(Locale)
}

// roundTo rounds half away from zero to the given decimal places.
func roundTo(v float64, dec int) float64 {
	p := math.Pow(10, float64(dec))
	return math.Round(v*p) / p
}

// Number formats v as a whole number with Indian digit grouping.
func Number(v float64) string {
	return printer().Sprint(number.Decimal(roundTo(v, 0), number.MaxFractionDigits(0)))
}

// Decimal formats v with at most dec fraction digits and Indian digit
// grouping. Trailing zeros are dropped.
func Decimal(v float64, dec int) string {
	return printer().Sprint(number.Decimal(roundTo(v, dec), number.MaxFractionDigits(dec)))
}

// Currency formats an amount in rupees with at most one fraction digit.
// Amounts of at least CompactThreshold are abbreviated, so 1240000 becomes
// ₹12.4L.
func Currency(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	// Units are picked by the rounded mantissa, so 9999999 is ₹1Cr and not
	// ₹100L.
	if roundTo(v, 1) >= CompactThreshold {
		for _, unit := range compactUnits {
			if m := roundTo(v/unit.scale, 1); m >= 1 {
				return sign + CurrencySymbol + Decimal(m, 1) + unit.suffix
			}
		}
	}

	return sign + CurrencySymbol + Decimal(v, 1)
}

// Percent formats a percentage change with an explicit sign.
func Percent(v float64, dec int) string {
	return fmt.Sprintf("%+.*f%%", dec, v)
}
