package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"let", LET},
		{"const", CONST},
		{"function", FUNCTION},
		{"instanceof", INSTANCEOF},
		{"await", AWAIT},
		{"enum", ENUM},
		// Contextual keywords are not reserved words.
		{"as", IDENT},
		{"from", IDENT},
		{"of", IDENT},
		{"async", IDENT},
		{"static", IDENT},
		{"get", IDENT},
		{"set", IDENT},
		{"foo", IDENT},
		{"Let", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.name); got != tt.kind {
			t.Errorf("LookupIdent(%q) = %q, want %q", tt.name, got, tt.kind)
		}
	}
}

func TestIsAssign(t *testing.T) {
	assigns := []Kind{
		EQUALS, PLUS_EQUALS, MINUS_EQUALS, ASTERISK_EQUALS, SLASH_EQUALS,
		PERCENT_EQUALS, ASTERISK_ASTERISK_EQUALS, LESS_THAN_LESS_THAN_EQUALS,
		GREATER_THAN_GREATER_THAN_EQUALS,
		GREATER_THAN_GREATER_THAN_GREATER_THAN_EQUALS, BAR_EQUALS,
		AMPERSAND_EQUALS, CARET_EQUALS, QUESTION_QUESTION_EQUALS,
		BAR_BAR_EQUALS, AMPERSAND_AMPERSAND_EQUALS,
	}
	for _, kind := range assigns {
		if !kind.IsAssign() {
			t.Errorf("%q.IsAssign() = false, want true", kind)
		}
	}
	for _, kind := range []Kind{EQUALS_EQUALS, EQUALS_EQUALS_EQUALS, PLUS, IDENT, LET} {
		if kind.IsAssign() {
			t.Errorf("%q.IsAssign() = true, want false", kind)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	for name, kind := range keywords {
		if !kind.IsKeyword() {
			t.Errorf("keyword %q is not classified as a keyword", name)
		}
	}
	for _, kind := range []Kind{IDENT, NUMBER, STRING, PLUS, EOF} {
		if kind.IsKeyword() {
			t.Errorf("%q.IsKeyword() = true, want false", kind)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		text string
	}{
		{EOF, "eof"},
		{IDENT, "Identifier"},
		{NUMBER, "NumericLiteral"},
		{TEMPLATE_HEAD, "TemplateHead"},
		{GREATER_THAN_GREATER_THAN_GREATER_THAN_EQUALS, ">>>="},
		{QUESTION_QUESTION, "??"},
		{EQUALS_GREATER_THAN, "=>"},
		{INSTANCEOF, "instanceof"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.text {
			t.Errorf("Kind.String() = %q, want %q", got, tt.text)
		}
	}
}
