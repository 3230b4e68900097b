// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// setupMu serializes Setup so a double call reliably reports
// ErrAlreadyInitialized instead of racing on the default registry.
var setupMu sync.Mutex

// Setup initialises the package by loading gettext catalogues from fsys and
// installing them in the default registry.
//
// The expected layout is cfg.Dir containing one .po file per locale:
//
//	po/<locale>.po
//
// The <locale> filename part may use hyphens or underscores, for example
// "pt-PT.po" or "pt_PT.po". The template file ("<domain>.pot") is ignored,
// as are files for unsupported locales, with a warning. The default locale
// is always registered and acts as the fallback; if it has no .po file it
// gets an empty catalogue, since source text needs no translation.
//
// Setup may be called exactly once per process; a second call fails with
// ErrAlreadyInitialized.
func Setup(fsys fs.FS, cfg Config) error {
	setupMu.Lock()
	defer setupMu.Unlock()

	if Default().Initialized() {
		return ErrAlreadyInitialized
	}

	Logger = log.With().Str("sys", "i18n").Logger()

	SetStrictMissingKeys(cfg.StrictMissingKeys)

	fallback, err := ParseLocale(cfg.DefaultLocale)
	if err != nil {
		return fmt.Errorf("invalid default locale: %w", err)
	}

	domain := cfg.Domain
	if domain == "" {
		domain = defaultDomain
	}

	catalogs, err := LoadCatalogs(fsys, cfg.Dir, domain)
	if err != nil {
		return err
	}

	if _, ok := catalogs[fallback]; !ok {
		// The source language carries no catalogue of its own.
		catalogs[fallback] = gotext.NewLocale("", fallback.String())
	}

	reg := NewRegistry(domain)
	if err := reg.Init(catalogs); err != nil {
		return err
	}

	defaultRegistry.Store(reg)

	return nil
}

// LoadCatalogs scans dir in fsys for <locale>.po files and parses them into
// one gettext catalogue per supported locale, registered under domain.
//
// Files whose names parse to no supported locale are skipped with a warning.
// The "<domain>.pot" template file is ignored. Parsing runs concurrently,
// one goroutine per catalogue file.
func LoadCatalogs(fsys fs.FS, dir, domain string) (map[Locale]*gotext.Locale, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue directory %s: %w", dir, err)
	}

	var (
		mu       sync.Mutex
		catalogs = make(map[Locale]*gotext.Locale)
		g        errgroup.Group
	)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".po") {
			continue
		}

		fileName := entry.Name()
		if fileName == domain+".pot" {
			continue
		}

		loc, err := ParseLocale(strings.TrimSuffix(fileName, ".po"))
		if err != nil {
			Logger.Warn().Err(err).Str("file", fileName).Msg("Skipping unsupported locale file")

			continue
		}

		g.Go(func() error {
			po := gotext.NewPoFS(fsys)
			po.ParseFile(path.Join(dir, fileName))

			cat := gotext.NewLocale("", loc.String()) // Base path is unused when manually adding translators.
			cat.AddTranslator(domain, po)

			mu.Lock()
			catalogs[loc] = cat
			mu.Unlock()

			Logger.Info().
				Str("locale", loc.String()).
				Str("domain", domain).
				Msg("Loaded locale")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return catalogs, nil
}
