package lexer

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/span"
	"github.com/jacobjonsson/packet/pkg/token"
)

// scanString scans a single- or double-quoted string literal. The payload
// is the content between the quotes with escape sequences copied verbatim;
// no escape-value decoding happens here. A backslash escapes the next code
// unit, so an escaped line terminator is fine while an unescaped one is
// fatal.
func (l *Lexer) scanString() error {
	start := l.offset
	quote := l.ch
	l.readChar()

	for {
		switch {
		case l.ch == eof:
			return l.fatal(errors.UnterminatedString, span.New(start, l.offset))

		case isLineTerminator(l.ch):
			return l.fatal(errors.UnterminatedString, span.New(start, l.offset))

		case l.ch == '\\':
			l.readChar()
			if l.ch == eof {
				return l.fatal(errors.UnterminatedString, span.New(start, l.offset))
			}
			l.readChar()

		case l.ch == quote:
			text := l.src.Contents[start+1 : l.offset]
			l.readChar()
			l.tok = token.Token{Kind: token.STRING, Span: span.New(start, l.offset), Text: text}
			return nil

		default:
			l.readChar()
		}
	}
}
