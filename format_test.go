// Copyright 2024 - 2026, the getprose contributors
// SPDX-License-Identifier: MIT

package getprose

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		args map[string]string
		want string
	}{
		{
			name: "no placeholders",
			tpl:  "plain text",
			want: "plain text",
		},
		{
			name: "no placeholders with extra args",
			tpl:  "plain text",
			args: map[string]string{"unused": "x"},
			want: "plain text",
		},
		{
			name: "empty template",
			tpl:  "",
			want: "",
		},
		{
			name: "single placeholder",
			tpl:  "{count} files",
			args: map[string]string{"count": "20"},
			want: "20 files",
		},
		{
			name: "placeholder mid-text",
			tpl:  "deleted {count} files today",
			args: map[string]string{"count": "3"},
			want: "deleted 3 files today",
		},
		{
			name: "placeholder at end",
			tpl:  "total: {count}",
			args: map[string]string{"count": "7"},
			want: "total: 7",
		},
		{
			name: "adjacent placeholders",
			tpl:  "{a}{b}",
			args: map[string]string{"a": "1", "b": "2"},
			want: "12",
		},
		{
			name: "repeated placeholder",
			tpl:  "{name} and {name}",
			args: map[string]string{"name": "x"},
			want: "x and x",
		},
		{
			name: "stray closing brace is literal",
			tpl:  "a } b",
			want: "a } b",
		},
		{
			name: "empty placeholder name",
			tpl:  "a{}b",
			args: map[string]string{"": "-"},
			want: "a-b",
		},
		{
			name: "value is not re-scanned",
			tpl:  "{a}",
			args: map[string]string{"a": "{b}"},
			want: "{b}",
		},
		{
			name: "extra arguments ignored",
			tpl:  "{count} files",
			args: map[string]string{"count": "2", "name": "x", "size": "9"},
			want: "2 files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFormat(tt.tpl).Args(tt.args).Format()
			if err != nil {
				t.Fatalf("Format() failed: %v", err)
			}

			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMissingArgument(t *testing.T) {
	_, err := NewFormat("hello {missing} world").Arg("present", "x").Format()
	if err == nil {
		t.Fatal("Format() succeeded, want MissingArgumentError")
	}

	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Fatalf("Format() returned %T, want *MissingArgumentError", err)
	}

	if missing.Name != "missing" {
		t.Errorf("error names placeholder %q, want %q", missing.Name, "missing")
	}
}

func TestFormatMalformedTemplate(t *testing.T) {
	tests := []struct {
		name string
		tpl  string
		pos  int
	}{
		{"unterminated at start", "{count files", 0},
		{"unterminated mid-text", "deleted {count", 8},
		{"bare opening brace at end", "oops {", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFormat(tt.tpl).Arg("count", "1").Format()

			var malformed *MalformedTemplateError
			if !errors.As(err, &malformed) {
				t.Fatalf("Format() returned %v, want *MalformedTemplateError", err)
			}

			if malformed.Pos != tt.pos {
				t.Errorf("error position = %d, want %d", malformed.Pos, tt.pos)
			}

			if malformed.Template != tt.tpl {
				t.Errorf("error template = %q, want %q", malformed.Template, tt.tpl)
			}
		})
	}
}

// TestFormatLastWriteWins checks the builder's override semantics: adding
// the same name again replaces the earlier value.
func TestFormatLastWriteWins(t *testing.T) {
	got, err := NewFormat("{count}").
		Arg("count", "1").
		Arg("count", "2").
		Format()
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if got != "2" {
		t.Errorf("Format() = %q, want %q", got, "2")
	}

	got, err = NewFormat("{count}").
		Arg("count", "1").
		Args(map[string]string{"count": "3"}).
		Format()
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if got != "3" {
		t.Errorf("Format() = %q, want %q", got, "3")
	}
}

func TestFormatArgInt(t *testing.T) {
	got, err := NewFormat("{count} Dateien").ArgInt("count", 1234, DeDE).Format()
	if err != nil {
		t.Fatalf("Format() failed: %v", err)
	}

	if got != "1.234 Dateien" {
		t.Errorf("Format() = %q, want %q", got, "1.234 Dateien")
	}
}

// TestFormatStringLenient checks the graceful variant: errors degrade to the
// unformatted template instead of failing.
func TestFormatStringLenient(t *testing.T) {
	if got := NewFormat("hello {missing}").String(); got != "hello {missing}" {
		t.Errorf("String() = %q, want template unchanged", got)
	}

	if got := NewFormat("{count} files").Arg("count", "2").String(); got != "2 files" {
		t.Errorf("String() = %q, want %q", got, "2 files")
	}
}
