package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"9876543210",
		"+919876543210",
		"+91 98765 43210",
		"(980) 2345-6789",
	}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = false, want true", phone)
		}
	}

	invalid := []string{
		"",
		"12345",
		"not-a-phone",
		"0123456789",
		"++919876543210",
	}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("ValidatePhone(%q) = true, want false", phone)
		}
	}
}

func TestValidateGSTIN(t *testing.T) {
	if !ValidateGSTIN("") {
		t.Error("empty GSTIN should be allowed")
	}
	if !ValidateGSTIN("29ABCDE1234F1Z5") {
		t.Error("well-formed GSTIN rejected")
	}
	if !ValidateGSTIN("  29abcde1234f1z5  ") {
		t.Error("GSTIN should be trimmed and upper-cased before checking")
	}
	if ValidateGSTIN("29ABCDE1234F105") {
		t.Error("GSTIN missing Z marker should be rejected")
	}
	if ValidateGSTIN("TOO-SHORT") {
		t.Error("malformed GSTIN accepted")
	}
}
