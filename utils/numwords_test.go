package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees"},
		{7, "Seven Rupees"},
		{15, "Fifteen Rupees"},
		{40, "Forty Rupees"},
		{100, "One Hundred Rupees"},
		{236, "Two Hundred Thirty Six Rupees"},
		{999, "Nine Hundred Ninety Nine Rupees"},
		{1000, "One Thousand Rupees"},
		{150000, "One Lakh Fifty Thousand Rupees"},
		// lakh boundary
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine Rupees"},
		{100000, "One Lakh Rupees"},
		// crore boundary
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine Rupees"},
		{10000000, "One Crore Rupees"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees"},
		// above 99 crore the crore group recurses
		{2500000000, "Two Hundred Fifty Crore Rupees"},
	}

	for _, tc := range cases {
		if got := NumberToWords(tc.amount); got != tc.want {
			t.Errorf("NumberToWords(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestNumberToWordsPaise(t *testing.T) {
	if got := NumberToWords(472.50); got != "Four Hundred Seventy Two Rupees and Fifty Paise" {
		t.Errorf("unexpected paise rendering: %q", got)
	}
	if got := NumberToWords(100.004); got != "One Hundred Rupees" {
		t.Errorf("sub-paisa fractions must round away: %q", got)
	}
}
