package lexer

import (
	"testing"

	"github.com/jacobjonsson/packet/pkg/token"
)

func scanOne(t *testing.T, input string) token.Token {
	t.Helper()
	l := testLexer(input)
	if err := l.Next(); err != nil {
		t.Fatalf("%q - unexpected error: %s", input, err)
	}
	return l.Token()
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		value float64
	}{
		{"0", 0},
		{"1", 1},
		{"120", 120},
		{"0.5", 0.5},
		{"10.25", 10.25},
		{".5", 0.5},
		{".0001", 0.0001},
		{"1e3", 1000},
		{"1E3", 1000},
		{"1.5e2", 150},
		{"2e-2", 0.02},
		{"2e+2", 200},
		{"1_000", 1000},
		{"1_000.5", 1000.5},
		{"0b101", 5},
		{"0B101", 5},
		{"0o17", 15},
		{"0O17", 15},
		{"0xFF", 255},
		{"0Xff", 255},
		{"0x1_0", 16},
	}
	for _, tt := range tests {
		tok := scanOne(t, tt.input)
		if tok.Kind != token.NUMBER {
			t.Fatalf("%q scanned as %q, want number", tt.input, tok.Kind)
		}
		if tok.Number != tt.value {
			t.Errorf("%q value = %v, want %v", tt.input, tok.Number, tt.value)
		}
	}
}

func TestBigIntLiterals(t *testing.T) {
	// The payload keeps the base prefix and drops the trailing n. Digit
	// separators are stripped.
	tests := []struct {
		input string
		text  string
	}{
		{"1n", "1"},
		{"10n", "10"},
		{"1_000n", "1000"},
		{"0b11n", "0b11"},
		{"0o17n", "0o17"},
		{"0x11n", "0x11"},
	}
	for _, tt := range tests {
		tok := scanOne(t, tt.input)
		if tok.Kind != token.BIGINT {
			t.Fatalf("%q scanned as %q, want bigint", tt.input, tok.Kind)
		}
		if tok.Text != tt.text {
			t.Errorf("%q text = %q, want %q", tt.input, tok.Text, tt.text)
		}
	}
}

func TestMalformedNumbers(t *testing.T) {
	tests := []string{
		// Identifier directly after a number.
		"3in",
		"10abc",
		"0x10x",
		// BigInt with a floating-point form.
		"1.2n",
		"1e3n",
		// Legacy octal.
		"00",
		// Missing digits.
		"0x",
		"0b",
		"0o2x",
		"1e",
		"1e+",
	}
	for _, input := range tests {
		l := testLexer(input)
		if err := l.Next(); err == nil {
			t.Errorf("%q - expected an error, got %q", input, l.Token().Kind)
		}
	}
}
