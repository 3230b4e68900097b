// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type contextKeyType struct{}

var localeKey = contextKeyType{}

// LangParam is the name of the URL query parameter used by FromRequest to
// read a preferred UI language. LangCookie is its cookie counterpart.
const (
	LangParam  = "lang"
	LangCookie = "lang"
)

// matchTags lists the supported tags in matcher order, DefaultLocale first.
var matchTags = supportedTags()

// matcher negotiates request languages against the supported set.
var matcher = language.NewMatcher(matchTags)

// WithLocale stores loc in ctx and returns a derived context that carries it.
// The returned context should be passed to downstream code that translates
// via MsgKey or NewUserError.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, localeKey, loc)
}

// LocaleFrom returns the locale stored in ctx, or DefaultLocale if none is
// present or ctx is nil. It never returns the zero Locale.
func LocaleFrom(ctx context.Context) Locale {
	if ctx != nil {
		if loc, _ := ctx.Value(localeKey).(Locale); !loc.IsZero() {
			return loc
		}
	}

	return DefaultLocale
}

// FromRequest returns the best supported locale for r by inspecting user
// preferences in priority order:
//  1. query parameter LangParam
//  2. cookie LangCookie
//  3. Accept-Language header
//
// Special case: if LangParam is "auto" (case-insensitive), the cookie is
// ignored and only the Accept-Language header is considered.
//
// If r is nil or nothing matches, FromRequest returns DefaultLocale.
func FromRequest(r *http.Request) Locale {
	if r == nil {
		return DefaultLocale
	}

	// Highest priority: explicit query parameter.
	q := r.URL.Query().Get(LangParam)
	auto := strings.EqualFold(q, "auto")

	preferred := make([]string, 0, 3)
	if q != "" && !auto {
		// Tolerate underscore separators in explicit preferences.
		preferred = append(preferred, strings.ReplaceAll(q, "_", "-"))
	}

	// Next: cookie (skipped if "auto" was explicitly requested).
	if !auto {
		if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
			preferred = append(preferred, strings.ReplaceAll(c.Value, "_", "-"))
		}
	}

	// Finally: Accept-Language header.
	if al := r.Header.Get("Accept-Language"); al != "" {
		preferred = append(preferred, al)
	}

	_, index := language.MatchStrings(matcher, preferred...)

	return localeForTag(matchTags[index])
}

// WithRequest resolves the locale from r using FromRequest and installs it
// in the returned context. Equivalent to WithLocale(ctx, FromRequest(r)).
func WithRequest(ctx context.Context, r *http.Request) context.Context {
	return WithLocale(ctx, FromRequest(r))
}

// localeForTag maps a supported tag back to its Locale.
func localeForTag(t language.Tag) Locale {
	for _, loc := range supported {
		if loc.tag == t {
			return loc
		}
	}

	return DefaultLocale
}
