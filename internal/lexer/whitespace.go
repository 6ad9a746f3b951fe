package lexer

import (
	"unicode"

	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/span"
)

// isWhitespace reports whether c is whitespace per the ECMAScript
// WhiteSpace production. A byte-order mark is whitespace, which is what
// makes a leading BOM harmless.
func isWhitespace(c rune) bool {
	switch c {
	case '\t', '\v', '\f', ' ', '\u00a0', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, c)
}

// isLineTerminator reports whether c terminates a line: LF, CR, U+2028, or
// U+2029.
func isLineTerminator(c rune) bool {
	switch c {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

// skipWhitespace skips whitespace, line terminators, and comments. An
// unterminated block comment is fatal.
func (l *Lexer) skipWhitespace() error {
	for {
		switch {
		case isWhitespace(l.ch) || isLineTerminator(l.ch):
			l.readChar()

		case l.ch == '/' && l.peekChar() == '/':
			l.readChar()
			l.readChar()
			for l.ch != eof && !isLineTerminator(l.ch) {
				l.readChar()
			}

		case l.ch == '/' && l.peekChar() == '*':
			start := l.offset
			l.readChar()
			l.readChar()
			for {
				if l.ch == eof {
					return l.fatal(errors.UnterminatedBlockComment, span.New(start, l.offset))
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}

		default:
			return nil
		}
	}
}
