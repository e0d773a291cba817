package cityname_test

import (
	"testing"

	"github.com/ainaweather/ainaweather/pkg/cityname"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"lowercases ascii", "Tokyo", "tokyo"},
		{"already lowercase", "tokyo", "tokyo"},
		{"strips surrounding spaces", " Tokyo ", "tokyo"},
		{"strips interior spaces", "new york", "newyork"},
		{"strips shi suffix", "大阪市", "大阪"},
		{"strips fu suffix", "大阪府", "大阪"},
		{"strips ken suffix", "愛知県", "愛知"},
		{"strips to suffix", "東京都", "東京"},
		{"strips gun suffix", "愛知郡", "愛知"},
		{"strips cho suffix", "大泉町", "大泉"},
		{"strips mura suffix", "白川村", "白川"},
		{"empty input", "", ""},
		{"suffix only", "市", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := cityname.Normalize(tc.raw); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

// Only the first matching suffix in scan order is removed. "大阪市県" ends
// with 県, which is stripped; the remaining 市 is left in place because
// removal never cascades.
func TestNormalize_SingleSuffixRemoval(t *testing.T) {
	if got := cityname.Normalize("大阪市県"); got != "大阪市" {
		t.Errorf("Normalize(%q) = %q, want %q", "大阪市県", got, "大阪市")
	}
}

func TestNormalize_EquivalentSpellings(t *testing.T) {
	canonical := cityname.Normalize("Tokyo")
	for _, raw := range []string{"tokyo", " Tokyo ", "TOKYO", "To kyo"} {
		if got := cityname.Normalize(raw); got != canonical {
			t.Errorf("Normalize(%q) = %q, want %q", raw, got, canonical)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Tokyo", " Tokyo ", "tokyo", "大阪市", "大阪府", "東京都",
		"New York", "sapporo", "愛知県", "白川村", "", "  ", "Kyoto",
	}
	for _, raw := range inputs {
		once := cityname.Normalize(raw)
		twice := cityname.Normalize(once)
		if once != twice {
			t.Errorf("Normalize is not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}
