// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Logger is the logger used by package getprose. Setup tags it with the
	// subsystem name; replace it to redirect the package's output.
	Logger = log.With().Str("sys", "i18n").Logger()

	// strictKeys makes missing translations visible. See SetStrictMissingKeys.
	strictKeys atomic.Bool

	// missingKeyOnce deduplicates WARN logs for missing msgids in strict mode.
	// The key is locale+"\x00"+msgid.
	missingKeyOnce sync.Map
)

// SetStrictMissingKeys toggles strict mode: missing translations are logged
// once per locale+key and returned wrapped as "⟦...⟧" so they stand out
// during development. Setup applies Config.StrictMissingKeys through this.
func SetStrictMissingKeys(strict bool) {
	strictKeys.Store(strict)
}

func strictMissingKeys() bool {
	return strictKeys.Load()
}

// logMissingOnce logs a missing translation warning once per (locale, key) pair.
func logMissingOnce(loc Locale, key string) {
	id := loc.String() + "\x00" + key
	if _, loaded := missingKeyOnce.LoadOrStore(id, struct{}{}); !loaded {
		Logger.Warn().
			Str("locale", loc.String()).
			Str("key", key).
			Msg("Missing translation")
	}
}

// buildLogKey composes the logging key like gettext "ctx<sep>msgid" when a
// context is present.
func buildLogKey(ctxKey, id string) string {
	if ctxKey != "" {
		return ctxKey + gotext.EotSeparator + id
	}

	return id
}

// isTerminal returns true if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd())
}

// ConsoleWriter returns a zerolog writer for f with color disabled when f is
// not a terminal.
func ConsoleWriter(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{Out: f, NoColor: !isTerminal(f), TimeFormat: time.DateTime}
}
