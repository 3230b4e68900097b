// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"errors"
)

// Tr returns the translated string for a source message id (msgid), which
// should be the original English UI text. If no translation is found, the
// msgid is returned unchanged, or visibly wrapped if strict mode is enabled.
//
// The returned string may still contain {name} placeholders; bind them with
// a FormatBuilder.
func (r *Registry) Tr(loc Locale, msgid string) string {
	return r.resolve(loc, "", msgid, "", 0, false)
}

// TrC translates a msgid with an explicit disambiguating context, similar to
// gettext's pgettext. The context is used only during lookup and never
// appears in the output.
func (r *Registry) TrC(loc Locale, contextKey, msgid string) string {
	return r.resolve(loc, contextKey, msgid, "", 0, false)
}

// TrN translates a singular or plural message depending on n, delegating
// plural-form selection to the catalogue's plural rule. If the catalogue has
// no entry, singular is chosen when n == 1 and plural otherwise.
func (r *Registry) TrN(loc Locale, singular, plural string, n int) string {
	return r.resolve(loc, "", singular, plural, n, true)
}

// TrNC is the contextual variant of TrN, similar to gettext's npgettext.
func (r *Registry) TrNC(loc Locale, contextKey, singular, plural string, n int) string {
	return r.resolve(loc, contextKey, singular, plural, n, true)
}

// resolve performs the catalogue lookup with source-text fallback.
//
// Lookup-level absence is never an error: a missing translation, or a locale
// without a registered catalogue, degrades to the untranslated source text.
// Calling before Init is a lifecycle bug and panics.
func (r *Registry) resolve(loc Locale, contextKey, singular, plural string, n int, pluralMode bool) string {
	cat, err := r.Catalog(loc)
	if errors.Is(err, ErrNotInitialized) {
		panic("getprose: Setup or Init must be called before translating")
	}

	// Fallback message
	base := singular
	if pluralMode && n != 1 {
		base = plural
	}

	finalText := base
	found := false

	if cat != nil {
		switch {
		case pluralMode && contextKey != "":
			found = cat.IsTranslatedNDC(r.domain, singular, n, contextKey)
			if found {
				finalText = cat.GetNDC(r.domain, singular, plural, n, contextKey)
			}
		case pluralMode:
			found = cat.IsTranslatedND(r.domain, singular, n)
			if found {
				finalText = cat.GetND(r.domain, singular, plural, n)
			}
		case contextKey != "":
			found = cat.IsTranslatedDC(r.domain, singular, contextKey)
			if found {
				finalText = cat.GetDC(r.domain, singular, contextKey)
			}
		default:
			found = cat.IsTranslatedD(r.domain, singular)
			if found {
				finalText = cat.GetD(r.domain, singular)
			}
		}
	}

	if !found && strictMissingKeys() {
		logMissingOnce(loc, buildLogKey(contextKey, singular))

		finalText = "⟦" + base + "⟧"
	}

	return finalText
}

// Tr translates msgid via the default registry. See Registry.Tr.
//
// Setup must have completed, otherwise Tr panics.
func (l Locale) Tr(msgid string) string {
	return Default().Tr(l, msgid)
}

// TrC translates msgid under a disambiguating context via the default
// registry. See Registry.TrC.
func (l Locale) TrC(contextKey, msgid string) string {
	return Default().TrC(l, contextKey, msgid)
}

// TrN translates a singular or plural message depending on n via the default
// registry. See Registry.TrN.
func (l Locale) TrN(singular, plural string, n int) string {
	return Default().TrN(l, singular, plural, n)
}

// TrNC is the contextual variant of TrN. See Registry.TrNC.
func (l Locale) TrNC(contextKey, singular, plural string, n int) string {
	return Default().TrNC(l, contextKey, singular, plural, n)
}
