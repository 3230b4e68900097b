// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"context"
	"io"
)

// Translatable is a value that can translate itself using a context.
// Types such as MsgKey implement Translatable.
type Translatable interface {
	Tr(ctx context.Context) string
}

// MsgKey is a source message id (msgid) string.
//
// Construct with MsgKey("Are you sure you want to quit?") and call Tr(ctx)
// to resolve using the locale carried by ctx.
//
// MsgKey should be the original English UI text, not an invented key.
type MsgKey string

// Tr translates this msgid using the locale in ctx and the default registry.
// The ctx may be nil, in which case DefaultLocale is used.
// Setup must have completed before using this.
func (s MsgKey) Tr(ctx context.Context) string {
	return LocaleFrom(ctx).Tr(string(s))
}

// Render writes the translated msgid to w.
func (s MsgKey) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, s.Tr(ctx))

	return err
}
