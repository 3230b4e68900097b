// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when a catalogue is requested from a
	// registry whose Init has not completed.
	ErrNotInitialized = errors.New("getprose: registry not initialized")

	// ErrAlreadyInitialized is returned by a second Init call on the same
	// registry. A registry is populated exactly once per process.
	ErrAlreadyInitialized = errors.New("getprose: registry already initialized")
)

// UnsupportedLocaleError reports a locale code that matches no supported
// language/region combination. Callers should fall back to a default locale.
type UnsupportedLocaleError struct {
	Code string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("getprose: unsupported locale %q", e.Code)
}

// LocaleNotRegisteredError reports a structurally valid locale that was not
// part of the registry's initializing mapping.
type LocaleNotRegisteredError struct {
	Locale Locale
}

func (e *LocaleNotRegisteredError) Error() string {
	return fmt.Sprintf("getprose: no catalogue registered for locale %s", e.Locale)
}

// MalformedTemplateError reports a template with an unterminated placeholder.
// This indicates a translation-content bug and should be surfaced to
// developers or translators, not end users.
type MalformedTemplateError struct {
	Template string
	Pos      int
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("getprose: unterminated placeholder at byte %d in template %q", e.Pos, e.Template)
}

// MissingArgumentError reports a placeholder for which no argument was
// supplied. Formatting stops at the first unsatisfied placeholder.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("getprose: missing argument for placeholder {%s}", e.Name)
}
