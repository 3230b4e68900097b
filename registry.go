// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"sync/atomic"

	"github.com/leonelquinteros/gotext"
)

// defaultDomain is the gettext domain used when none is configured.
const defaultDomain = "getprose"

// Registry holds one gettext catalogue per locale. It is populated exactly
// once via Init and is logically immutable afterwards, so any number of
// goroutines may call Catalog concurrently without synchronization.
//
// Most programs use the package-level default registry through Setup and the
// Tr family; an explicit Registry exists for tests and embedders that need
// isolated catalogue sets.
type Registry struct {
	domain   string
	catalogs atomic.Pointer[map[Locale]*gotext.Locale]
}

// NewRegistry returns an empty, uninitialized registry for the given gettext
// domain. An empty domain selects the package default.
func NewRegistry(domain string) *Registry {
	if domain == "" {
		domain = defaultDomain
	}

	return &Registry{domain: domain}
}

// Init installs the locale to catalogue mapping. It may be called exactly
// once per registry; a second call fails with ErrAlreadyInitialized rather
// than silently replacing the catalogue set, so lifecycle bugs surface early.
//
// The mapping is copied; the caller's map is not retained. A completed Init
// happens-before every subsequent Catalog call, so readers never observe a
// partially populated mapping.
func (r *Registry) Init(catalogs map[Locale]*gotext.Locale) error {
	m := make(map[Locale]*gotext.Locale, len(catalogs))
	for loc, cat := range catalogs {
		m[loc] = cat
	}

	if !r.catalogs.CompareAndSwap(nil, &m) {
		return ErrAlreadyInitialized
	}

	return nil
}

// Catalog resolves loc to its catalogue. It fails with ErrNotInitialized
// before Init has completed, and with a *LocaleNotRegisteredError when loc
// was not part of the initializing mapping; callers should treat the latter
// as a cue to fall back to DefaultLocale rather than propagate it to users.
func (r *Registry) Catalog(loc Locale) (*gotext.Locale, error) {
	m := r.catalogs.Load()
	if m == nil {
		return nil, ErrNotInitialized
	}

	cat, ok := (*m)[loc]
	if !ok {
		return nil, &LocaleNotRegisteredError{Locale: loc}
	}

	return cat, nil
}

// Initialized reports whether Init has completed.
func (r *Registry) Initialized() bool {
	return r.catalogs.Load() != nil
}

// Domain returns the gettext domain this registry looks translations up under.
func (r *Registry) Domain() string {
	return r.domain
}

// defaultRegistry backs the package-level API. Populated by Setup.
var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(NewRegistry(""))
}

// Default returns the package-level registry used by Setup and the Locale
// convenience methods.
func Default() *Registry {
	return defaultRegistry.Load()
}
