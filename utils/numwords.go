// utils/numwords.go
package utils

import (
	"math"
	"strings"
)

var numOnes = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}

var numTeens = []string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var numTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// twoDigitWords maps 0..99 to English words.
func twoDigitWords(n int64) string {
	switch {
	case n < 10:
		return numOnes[n]
	case n < 20:
		return numTeens[n-10]
	default:
		if n%10 == 0 {
			return numTens[n/10]
		}
		return numTens[n/10] + " " + numOnes[n%10]
	}
}

// integerWords spells a non-negative integer using Indian numbering:
// crore / lakh / thousand / hundred / remainder groups.
func integerWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if crore := n / 10000000; crore > 0 {
		parts = append(parts, integerWords(crore)+" Crore")
		n %= 10000000
	}
	if lakh := n / 100000; lakh > 0 {
		parts = append(parts, twoDigitWords(lakh)+" Lakh")
		n %= 100000
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, twoDigitWords(thousand)+" Thousand")
		n %= 1000
	}
	if hundred := n / 100; hundred > 0 {
		parts = append(parts, numOnes[hundred]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, twoDigitWords(n))
	}

	return strings.Join(parts, " ")
}

// NumberToWords spells a rupee amount in words using Indian numbering, e.g.
// 150000 -> "One Lakh Fifty Thousand Rupees". Fractional paise are appended
// as "and <words> Paise" when present.
func NumberToWords(amount float64) string {
	if amount < 0 {
		amount = 0
	}
	rupees := int64(math.Floor(amount))
	paise := int64(math.Round((amount - math.Floor(amount)) * 100))
	if paise >= 100 { // rounding pushed it over a full rupee
		rupees++
		paise = 0
	}

	words := integerWords(rupees)
	if words == "" {
		words = "Zero"
	}
	result := words + " Rupees"
	if paise > 0 {
		result += " and " + twoDigitWords(paise) + " Paise"
	}
	return result
}
