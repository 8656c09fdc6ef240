// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var gstinRegex = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{6,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateGSTIN checks the 15-character Indian GST number format. Empty is
// allowed; not every customer is registered.
func ValidateGSTIN(gstin string) bool {
	if gstin == "" {
		return true
	}
	return gstinRegex.MatchString(strings.ToUpper(strings.TrimSpace(gstin)))
}
