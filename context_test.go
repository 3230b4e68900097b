// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLocaleFrom(t *testing.T) {
	if got := LocaleFrom(context.Background()); got != DefaultLocale {
		t.Errorf("LocaleFrom(empty ctx) = %v, want DefaultLocale", got)
	}

	if got := LocaleFrom(nil); got != DefaultLocale { //nolint:staticcheck // nil ctx tolerance is part of the contract
		t.Errorf("LocaleFrom(nil) = %v, want DefaultLocale", got)
	}

	ctx := WithLocale(context.Background(), RuRU)
	if got := LocaleFrom(ctx); got != RuRU {
		t.Errorf("LocaleFrom = %v, want %v", got, RuRU)
	}

	// Storing the zero value clears any existing locale.
	if got := LocaleFrom(WithLocale(ctx, Locale{})); got != DefaultLocale {
		t.Errorf("LocaleFrom after clearing = %v, want DefaultLocale", got)
	}
}

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		cookie         string
		acceptLanguage string
		want           Locale
	}{
		{
			name: "no preferences",
			want: DefaultLocale,
		},
		{
			name:  "query parameter",
			query: "de-DE",
			want:  DeDE,
		},
		{
			name:  "query parameter with underscore",
			query: "pt_PT",
			want:  PtPT,
		},
		{
			name:   "cookie",
			cookie: "it-IT",
			want:   ItIT,
		},
		{
			name:   "query beats cookie",
			query:  "es-ES",
			cookie: "it-IT",
			want:   EsES,
		},
		{
			name:           "accept-language header",
			acceptLanguage: "fr-FR,en;q=0.8",
			want:           FrFR,
		},
		{
			name:           "accept-language base language",
			acceptLanguage: "ru",
			want:           RuRU,
		},
		{
			name:           "cookie beats accept-language",
			cookie:         "de-DE",
			acceptLanguage: "fr-FR",
			want:           DeDE,
		},
		{
			name:           "auto ignores cookie",
			query:          "auto",
			cookie:         "de-DE",
			acceptLanguage: "fr-FR",
			want:           FrFR,
		},
		{
			name:           "unsupported preferences fall back",
			acceptLanguage: "zh-CN",
			want:           DefaultLocale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/"
			if tt.query != "" {
				target += "?" + LangParam + "=" + tt.query
			}

			r := httptest.NewRequest("GET", target, nil)

			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: LangCookie, Value: tt.cookie})
			}

			if tt.acceptLanguage != "" {
				r.Header.Set("Accept-Language", tt.acceptLanguage)
			}

			if got := FromRequest(r); got != tt.want {
				t.Errorf("FromRequest = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromRequestNil(t *testing.T) {
	if got := FromRequest(nil); got != DefaultLocale {
		t.Errorf("FromRequest(nil) = %v, want DefaultLocale", got)
	}
}

func TestWithRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/?"+LangParam+"=de-DE", nil)

	ctx := WithRequest(context.Background(), r)
	if got := LocaleFrom(ctx); got != DeDE {
		t.Errorf("LocaleFrom(WithRequest) = %v, want %v", got, DeDE)
	}
}
