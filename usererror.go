// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"context"
)

// NewUserError creates a UserError whose message is the translation of
// msgid for the locale carried by ctx, with args bound into its
// placeholders. Formatting degrades like FormatBuilder.String.
func NewUserError(ctx context.Context, msgid string, args map[string]string) *UserError {
	return &UserError{
		message: NewFormat(LocaleFrom(ctx).Tr(msgid)).Args(args).String(),
	}
}

// UserError is an error type whose message is a translated string.
// It is intended for errors that can be shown directly to the end user.
type UserError struct {
	message string
}

// Error returns the translated error message.
func (e *UserError) Error() string {
	return e.message
}
