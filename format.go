// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"strings"
)

// Placeholder marker characters. A placeholder is the name between an
// opening and a closing marker, for example {count}. Names are opaque,
// case-sensitive identifiers and must not contain the closing marker.
const (
	placeholderStart = '{'
	placeholderEnd   = '}'
)

// FormatBuilder accumulates named arguments for a template and substitutes
// them in a single terminal Format call.
//
// A builder is a short-lived, single-use value: build it, add arguments in
// any order, format once. It is not safe for concurrent use and must not be
// reused after formatting.
type FormatBuilder struct {
	tpl  string
	args map[string]string
}

// NewFormat returns a builder for tpl. The template may contain zero or more
// {name} placeholders; a template without placeholders formats to itself.
func NewFormat(tpl string) *FormatBuilder {
	return &FormatBuilder{
		tpl:  tpl,
		args: make(map[string]string),
	}
}

// Arg adds a ready-to-insert value for the named placeholder. Adding the
// same name twice overwrites the earlier value.
func (b *FormatBuilder) Arg(name, value string) *FormatBuilder {
	b.args[name] = value

	return b
}

// ArgInt adds an integer value rendered in loc's numeric conventions.
// Shorthand for Arg(name, FormatInt(n, loc)).
func (b *FormatBuilder) ArgInt(name string, n int64, loc Locale) *FormatBuilder {
	return b.Arg(name, FormatInt(n, loc))
}

// Args adds every entry of args. Entries overwrite earlier values of the
// same name.
func (b *FormatBuilder) Args(args map[string]string) *FormatBuilder {
	for name, value := range args {
		b.args[name] = value
	}

	return b
}

// Format substitutes the accumulated arguments into the template and returns
// the final string.
//
// The template is scanned once, left to right: literal text is copied
// verbatim, and each {name} placeholder is replaced by its argument value.
// Values are inserted as-is and never re-scanned for placeholders. An
// unterminated placeholder fails with a *MalformedTemplateError; a
// placeholder without an argument fails with a *MissingArgumentError
// identifying the name. Arguments without a matching placeholder are
// silently ignored.
func (b *FormatBuilder) Format() (string, error) {
	var out strings.Builder

	out.Grow(len(b.tpl))

	for i := 0; i < len(b.tpl); {
		c := b.tpl[i]
		if c != placeholderStart {
			out.WriteByte(c)
			i++

			continue
		}

		end := strings.IndexByte(b.tpl[i+1:], placeholderEnd)
		if end < 0 {
			return "", &MalformedTemplateError{Template: b.tpl, Pos: i}
		}

		name := b.tpl[i+1 : i+1+end]

		value, ok := b.args[name]
		if !ok {
			return "", &MissingArgumentError{Name: name}
		}

		out.WriteString(value)

		i += end + 2
	}

	return out.String(), nil
}

// String formats like Format but degrades gracefully: on any formatting
// error it logs the error and returns the template unchanged. Intended for
// rendering paths where a literal placeholder is preferable to no output.
func (b *FormatBuilder) String() string {
	s, err := b.Format()
	if err != nil {
		Logger.Error().Err(err).Str("template", b.tpl).Msg("Template formatting failed")

		return b.tpl
	}

	return s
}
