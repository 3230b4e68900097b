// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"errors"
	"testing"
)

// TestParseLocaleRoundTrip checks that every supported locale survives a
// String -> ParseLocale round trip.
func TestParseLocaleRoundTrip(t *testing.T) {
	for _, loc := range Locales() {
		parsed, err := ParseLocale(loc.String())
		if err != nil {
			t.Fatalf("ParseLocale(%q) failed: %v", loc.String(), err)
		}

		if parsed != loc {
			t.Errorf("ParseLocale(%q) = %v, want %v", loc.String(), parsed, loc)
		}
	}
}

func TestParseLocaleVariants(t *testing.T) {
	tests := []struct {
		code string
		want Locale
	}{
		{"de-DE", DeDE},
		{"de_DE", DeDE},
		{"DE-de", DeDE},
		{"de", DeDE},
		{"en", EnGB},
		{"EN_gb", EnGB},
		{"pt_PT", PtPT},
		{"ru-RU", RuRU},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseLocale(tt.code)
			if err != nil {
				t.Fatalf("ParseLocale(%q) failed: %v", tt.code, err)
			}

			if got != tt.want {
				t.Errorf("ParseLocale(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestParseLocaleUnsupported(t *testing.T) {
	for _, code := range []string{"", "xx", "ja", "de-AT", "en_US", "not a locale"} {
		_, err := ParseLocale(code)
		if err == nil {
			t.Fatalf("ParseLocale(%q) succeeded, want error", code)
		}

		var unsupported *UnsupportedLocaleError
		if !errors.As(err, &unsupported) {
			t.Fatalf("ParseLocale(%q) returned %T, want *UnsupportedLocaleError", code, err)
		}

		if unsupported.Code != code {
			t.Errorf("error carries code %q, want %q", unsupported.Code, code)
		}
	}
}

func TestLocalesSortedAndCopied(t *testing.T) {
	locales := Locales()
	for i := 1; i < len(locales); i++ {
		if locales[i-1].String() >= locales[i].String() {
			t.Fatalf("Locales() not sorted: %v before %v", locales[i-1], locales[i])
		}
	}

	// Mutating the returned slice must not affect later calls.
	locales[0] = Locale{}

	if Locales()[0].IsZero() {
		t.Error("Locales() returned a shared slice")
	}
}
