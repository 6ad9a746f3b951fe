package lexer

import (
	"unicode"

	"github.com/jacobjonsson/packet/pkg/span"
	"github.com/jacobjonsson/packet/pkg/token"
)

// isIdentifierStart reports whether c can begin an identifier: an ASCII
// letter, _, $, or a code point with the Unicode ID_Start property.
func isIdentifierStart(c rune) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '$' {
		return true
	}
	if c < utf8RuneSelf {
		return false
	}
	return unicode.In(c, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

// isIdentifierContinue reports whether c can continue an identifier:
// ID_Continue plus _, $, ZWNJ, and ZWJ.
func isIdentifierContinue(c rune) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '$' {
		return true
	}
	if c == '\u200c' || c == '\u200d' {
		return true
	}
	if c < utf8RuneSelf {
		return false
	}
	return unicode.In(c, unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
}

const utf8RuneSelf = 0x80

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// scanIdentifier scans an identifier and classifies it against the keyword
// table. Contextual keywords come out as plain IDENT.
func (l *Lexer) scanIdentifier() {
	start := l.offset
	for isIdentifierContinue(l.ch) {
		l.readChar()
	}
	text := l.src.Contents[start:l.offset]
	l.tok = token.Token{
		Kind: token.LookupIdent(text),
		Span: span.New(start, l.offset),
		Text: text,
	}
}
