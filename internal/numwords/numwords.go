// Package numwords spells whole numbers in English using the Indian
// numbering system (crore, lakh, thousand).
package numwords

import (
	"math"
	"strings"
)

const (
	crore    = 10000000
	lakh     = 100000
	thousand = 1000
)

var units = []string{
	"Zero", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Convert returns n in words, e.g. 1234567 -> "Twelve Lakh Thirty Four
// Thousand Five Hundred Sixty Seven". Negative numbers are out of range and
// yield an empty string.
func Convert(n int64) string {
	if n < 0 {
		return ""
	}
	if n == 0 {
		return units[0]
	}

	crores := n / crore
	n %= crore
	lakhs := n / lakh
	n %= lakh
	thousands := n / thousand
	n %= thousand

	parts := make([]string, 0, 7)
	if crores > 0 {
		// Beyond 999 crore the crore count is itself grouped.
		if crores >= thousand {
			parts = append(parts, Convert(crores), "Crore")
		} else {
			parts = append(parts, belowThousand(int(crores)), "Crore")
		}
	}
	if lakhs > 0 {
		parts = append(parts, belowThousand(int(lakhs)), "Lakh")
	}
	if thousands > 0 {
		parts = append(parts, belowThousand(int(thousands)), "Thousand")
	}
	if n > 0 {
		parts = append(parts, belowThousand(int(n)))
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// belowThousand spells a value in [0, 999].
func belowThousand(n int) string {
	switch {
	case n < 20:
		return units[n]
	case n < 100:
		if n%10 == 0 {
			return tens[n/10]
		}
		return tens[n/10] + " " + units[n%10]
	default:
		if n%100 == 0 {
			return units[n/100] + " Hundred"
		}
		return units[n/100] + " Hundred " + belowThousand(n%100)
	}
}

// TooLarge is what Rupees returns for amounts that do not fit in an int64.
const TooLarge = "Amount Too Large To Spell"

// Rupees renders the whole-rupee part of amount as "Rupees <words> Only".
// Paise are dropped, not rounded.
func Rupees(amount float64) string {
	if amount < 0 || math.IsNaN(amount) {
		amount = 0
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if amount >= math.MaxInt64 {
		return TooLarge
	}
	return "Rupees " + Convert(int64(math.Floor(amount))) + " Only"
}
