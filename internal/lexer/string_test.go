package lexer

import (
	"testing"

	"github.com/jacobjonsson/packet/pkg/token"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{`"hello world"`, "hello world"},
		{`'hello world'`, "hello world"},
		{`""`, ""},
		{`''`, ""},
		{`"it's"`, "it's"},
		{`'say "hi"'`, `say "hi"`},
		// Escape sequences are copied verbatim, not decoded.
		{`"a\nb"`, `a\nb`},
		{`"a\"b"`, `a\"b`},
		{`'a\'b'`, `a\'b`},
		{`"A"`, `A`},
		// An escaped line terminator is a line continuation.
		{"\"a\\\nb\"", "a\\\nb"},
	}
	for _, tt := range tests {
		tok := scanOne(t, tt.input)
		if tok.Kind != token.STRING {
			t.Fatalf("%q scanned as %q, want string", tt.input, tok.Kind)
		}
		if tok.Text != tt.text {
			t.Errorf("%q text = %q, want %q", tt.input, tok.Text, tt.text)
		}
	}
}

func TestUnterminatedStrings(t *testing.T) {
	tests := []string{
		`"hello`,
		`'hello`,
		`'hello"`,
		`"hello'`,
		// An unescaped line terminator ends the line, not the string.
		"\"hello\nworld\"",
		"'a\rb'",
	}
	for _, input := range tests {
		l := testLexer(input)
		if err := l.Next(); err == nil {
			t.Errorf("%q - expected an unterminated string error", input)
		}
	}
}

func TestTemplates(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"`hello`", token.NO_SUBSTITUTION_TEMPLATE, "hello"},
		{"``", token.NO_SUBSTITUTION_TEMPLATE, ""},
		{"`hello $`", token.NO_SUBSTITUTION_TEMPLATE, "hello $"},
		{"`hello {`", token.NO_SUBSTITUTION_TEMPLATE, "hello {"},
		{"`line\nbreak`", token.NO_SUBSTITUTION_TEMPLATE, "line\nbreak"},
		{"`a \\` b`", token.NO_SUBSTITUTION_TEMPLATE, "a \\` b"},
		{"`hello ${", token.TEMPLATE_HEAD, "hello "},
		{"`${", token.TEMPLATE_HEAD, ""},
	}
	for _, tt := range tests {
		tok := scanOne(t, tt.input)
		if tok.Kind != tt.kind {
			t.Fatalf("%q scanned as %q, want %q", tt.input, tok.Kind, tt.kind)
		}
		if tok.Text != tt.text {
			t.Errorf("%q text = %q, want %q", tt.input, tok.Text, tt.text)
		}
	}
}

func TestTemplateSpans(t *testing.T) {
	// NextTemplateSpan resumes after the } that closed an interpolation.
	tests := []struct {
		input string
		kind  token.Kind
		text  string
	}{
		{"}hello`", token.TEMPLATE_TAIL, "hello"},
		{"}`", token.TEMPLATE_TAIL, ""},
		{"}hello ${", token.TEMPLATE_MIDDLE, "hello "},
		{"}${", token.TEMPLATE_MIDDLE, ""},
	}
	for _, tt := range tests {
		l := testLexer(tt.input)
		if err := l.Next(); err != nil {
			t.Fatalf("%q - unexpected error: %s", tt.input, err)
		}
		if l.Token().Kind != token.CLOSE_BRACE {
			t.Fatalf("%q - expected to start at a close brace", tt.input)
		}
		if err := l.NextTemplateSpan(); err != nil {
			t.Fatalf("%q - unexpected error: %s", tt.input, err)
		}
		tok := l.Token()
		if tok.Kind != tt.kind {
			t.Fatalf("%q scanned as %q, want %q", tt.input, tok.Kind, tt.kind)
		}
		if tok.Text != tt.text {
			t.Errorf("%q text = %q, want %q", tt.input, tok.Text, tt.text)
		}
	}
}

func TestUnterminatedTemplates(t *testing.T) {
	for _, input := range []string{"`", "`hello", "`hello ${"} {
		l := testLexer(input)
		if err := l.Next(); err != nil {
			if input == "`hello ${" {
				t.Errorf("%q - the head itself should scan", input)
			}
			continue
		}
		if l.Token().Kind == token.TEMPLATE_HEAD {
			// The head scanned; the dangling expression errors later, in
			// the parser.
			continue
		}
		t.Errorf("%q - expected an unterminated template error", input)
	}
}
