// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// The supported locales. The set is fixed at build time; catalogues for a
// subset of it are loaded at startup.
var (
	DeDE = Locale{tag: language.MustParse("de-DE")}
	EnGB = Locale{tag: language.MustParse("en-GB")}
	EsES = Locale{tag: language.MustParse("es-ES")}
	FrFR = Locale{tag: language.MustParse("fr-FR")}
	ItIT = Locale{tag: language.MustParse("it-IT")}
	PtPT = Locale{tag: language.MustParse("pt-PT")}
	RuRU = Locale{tag: language.MustParse("ru-RU")}
)

// DefaultLocale is used when no locale is set or negotiation fails.
var DefaultLocale = EnGB

// Locale identifies a supported language/region pair. It is an immutable
// value type, cheap to copy, and usable as a map key: two Locales are equal
// iff their canonical string forms are equal.
//
// The zero value is not a valid Locale; construct one via ParseLocale or
// use one of the exported locale variables.
type Locale struct {
	tag language.Tag
}

// supported lists every Locale, ordered by canonical tag string.
var supported = []Locale{DeDE, EnGB, EsES, FrFR, ItIT, PtPT, RuRU}

// byCode maps normalized locale codes, both the full "de-de" form and the
// bare "de" language subtag, to their Locale.
var byCode = func() map[string]Locale {
	m := make(map[string]Locale, 2*len(supported))

	for _, loc := range supported {
		m[strings.ToLower(loc.String())] = loc

		base, _ := loc.tag.Base()
		if _, taken := m[base.String()]; !taken {
			m[base.String()] = loc
		}
	}

	return m
}()

// supportedTags returns the language tags of all supported locales, with
// DefaultLocale first so it acts as the fallback during matching.
func supportedTags() []language.Tag {
	tags := make([]language.Tag, 0, len(supported))
	tags = append(tags, DefaultLocale.tag)

	for _, loc := range supported {
		if loc == DefaultLocale {
			continue
		}

		tags = append(tags, loc.tag)
	}

	return tags
}

// Locales returns all supported locales sorted by canonical tag string.
// The returned slice is a copy and safe to retain.
func Locales() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)

	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })

	return out
}

// ParseLocale parses a locale code such as "de-DE", "de_DE" or "de" into a
// Locale. Parsing is case-insensitive and accepts both hyphen and underscore
// separators. Codes that match no supported language/region combination fail
// with an *UnsupportedLocaleError.
func ParseLocale(code string) (Locale, error) {
	normalized := strings.ToLower(strings.ReplaceAll(code, "_", "-"))

	loc, ok := byCode[normalized]
	if !ok {
		return Locale{}, &UnsupportedLocaleError{Code: code}
	}

	return loc, nil
}

// String returns the canonical BCP 47 form, for example "de-DE". It is
// deterministic and round-trips through ParseLocale.
func (l Locale) String() string {
	return l.tag.String()
}

// Tag returns the language tag, for interop with golang.org/x/text.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// IsZero reports whether l is the zero value rather than a supported locale.
func (l Locale) IsZero() bool {
	return l.tag == language.Tag{}
}
