// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

/*
Package getprose provides locale-aware translation and formatting of
user-facing text, backed by GNU gettext .po catalogues. It resolves a
translated message for a locale, selects the correct plural form, and
substitutes named placeholders with locale-formatted values.

# Quick start

Load catalogues once at startup, then translate using the original English
UI text as the msgid; do not invent keys.

	if err := getprose.Setup(os.DirFS("."), getprose.DefaultConfig()); err != nil {
		log.Fatal().Err(err).Msg("Failed to load translations")
	}

	loc, err := getprose.ParseLocale("de_DE")
	if err != nil {
		loc = getprose.EnGB
	}

	loc.Tr("Are you sure you want to quit?")
	loc.TrC("menu", "Open") // disambiguation via context

Plural messages return a template that still contains its placeholders;
bind them with a FormatBuilder:

	n := 20
	msg, err := getprose.NewFormat(loc.TrN("{count} file", "{count} files", n)).
		ArgInt("count", int64(n), loc).
		Format()

# Missing translations

Missing translations are never an error: lookups degrade to the source
text, choosing singular or plural by the count when no catalogue entry
exists. When Config.StrictMissingKeys is enabled, missing lookups are
logged once per locale+key and the returned text is visibly wrapped as
"⟦...⟧".

# Formatting

Templates use single-brace named placeholders such as {count}. Placeholder
names are opaque, case-sensitive identifiers and must not contain '}'.
Every placeholder must be satisfied by an argument or Format returns a
MissingArgumentError; extra arguments are ignored. Inserted values are
never re-scanned for placeholders.

Numbers are not localised automatically; render them first with FormatInt
or FormatFloat, or use ArgInt.

# Message extraction

cmd/prose_extract scans Go sources for Tr calls and MsgKey values and
emits a stable .pot template for translators.
*/
package getprose
