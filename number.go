// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatInt renders n in loc's numeric conventions, applying the locale's
// digit grouping and sign placement. Deterministic: the same (n, loc) pair
// always yields the same string.
func FormatInt(n int64, loc Locale) string {
	return message.NewPrinter(loc.Tag()).Sprintf("%v", number.Decimal(n))
}

// FormatFloat renders f with exactly precision digits after the decimal
// point, using loc's grouping and decimal separators.
func FormatFloat(f float64, precision int, loc Locale) string {
	return message.NewPrinter(loc.Tag()).Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(precision),
		number.MaxFractionDigits(precision),
	))
}
