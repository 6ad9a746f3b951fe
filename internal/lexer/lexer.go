// Package lexer implements the scanner for JavaScript source text.
//
// The scanner statefully advances a single cursor through the source and
// exposes exactly one current token. Punctuators are scanned with maximal
// munch: at each start byte the decision tree extends the match to the
// longest recognised operator (> >= >> >>= >>> >>>=). Whitespace, line
// terminators, and comments are skipped between tokens.
//
// Two specialised re-entry points share the same cursor: NextRegexp rescans
// the just-consumed / or /= as the start of a regexp literal, and
// NextTemplateSpan resumes template-body scanning after the closing } of an
// interpolated expression. There is no backtracking; the cursor is the only
// state that persists across advances.
package lexer

import (
	"unicode/utf8"

	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/source"
	"github.com/jacobjonsson/packet/pkg/span"
	"github.com/jacobjonsson/packet/pkg/token"
)

// eof is the sentinel rune used when the cursor is past the end of input.
const eof = -1

// Lexer scans one source file. The diagnostic sink is borrowed and must
// outlive the lexer.
type Lexer struct {
	src  *source.Source
	sink logger.Sink

	// offset is the byte position of ch; chWidth its encoded size.
	offset  int
	ch      rune
	chWidth int

	tok token.Token
}

// New creates a scanner over src. The first token is not scanned yet; call
// Next once to prime the token stream.
func New(src *source.Source, sink logger.Sink) *Lexer {
	l := &Lexer{src: src, sink: sink}
	l.chWidth = 0
	l.offset = 0
	l.ch = eof
	if len(src.Contents) > 0 {
		r, size := utf8.DecodeRuneInString(src.Contents)
		l.ch = r
		l.chWidth = size
	}
	return l
}

// Token returns the current token.
func (l *Lexer) Token() token.Token {
	return l.tok
}

// Raw returns the source slice covered by the current token.
func (l *Lexer) Raw() string {
	return l.src.Contents[l.tok.Span.Start:l.tok.Span.End]
}

// Source returns the buffer being scanned.
func (l *Lexer) Source() *source.Source {
	return l.src
}

// readChar advances the cursor by one rune.
func (l *Lexer) readChar() {
	l.offset += l.chWidth
	if l.offset >= len(l.src.Contents) {
		l.ch = eof
		l.chWidth = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.src.Contents[l.offset:])
	l.ch = r
	l.chWidth = size
}

// peekChar returns the rune after the current one without advancing.
func (l *Lexer) peekChar() rune {
	pos := l.offset + l.chWidth
	if pos >= len(l.src.Contents) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.src.Contents[pos:])
	return r
}

// fatal reports the error to the sink and returns it. All scanner errors
// are fatal: the parser stops on the first one.
func (l *Lexer) fatal(kind errors.Kind, loc span.Span) error {
	err := errors.New(kind, loc)
	l.sink.Report(l.src, loc, err.Error(), logger.Error)
	return err
}

func (l *Lexer) fatalf(kind errors.Kind, loc span.Span, format string, args ...any) error {
	err := errors.Newf(kind, loc, format, args...)
	l.sink.Report(l.src, loc, err.Error(), logger.Error)
	return err
}

// Next scans the next token into the current slot. Advancing past the end
// of input keeps producing EOF.
func (l *Lexer) Next() error {
	if err := l.skipWhitespace(); err != nil {
		return err
	}

	start := l.offset

	switch {
	case l.ch == eof:
		l.tok = token.Token{Kind: token.EOF, Span: span.New(start, start)}
		return nil

	case isIdentifierStart(l.ch):
		l.scanIdentifier()
		return nil

	case isDigit(l.ch):
		return l.scanNumber()

	case l.ch == '.' && isDigit(l.peekChar()):
		return l.scanNumber()

	case l.ch == '\'' || l.ch == '"':
		return l.scanString()

	case l.ch == '`':
		return l.scanTemplate()

	default:
		return l.scanPunctuator()
	}
}

// scanPunctuator scans the operator or delimiter starting at the cursor.
func (l *Lexer) scanPunctuator() error {
	start := l.offset
	kind := token.ILLEGAL

	switch l.ch {
	case '(':
		kind = token.OPEN_PAREN
		l.readChar()
	case ')':
		kind = token.CLOSE_PAREN
		l.readChar()
	case '{':
		kind = token.OPEN_BRACE
		l.readChar()
	case '}':
		kind = token.CLOSE_BRACE
		l.readChar()
	case '[':
		kind = token.OPEN_BRACKET
		l.readChar()
	case ']':
		kind = token.CLOSE_BRACKET
		l.readChar()
	case ';':
		kind = token.SEMICOLON
		l.readChar()
	case ',':
		kind = token.COMMA
		l.readChar()
	case ':':
		kind = token.COLON
		l.readChar()
	case '~':
		kind = token.TILDE
		l.readChar()

	case '.':
		l.readChar()
		if l.ch == '.' && l.peekChar() == '.' {
			l.readChar()
			l.readChar()
			kind = token.DOT_DOT_DOT
		} else {
			kind = token.DOT
		}

	case '?':
		l.readChar()
		switch l.ch {
		case '.':
			l.readChar()
			kind = token.QUESTION_DOT
		case '?':
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				kind = token.QUESTION_QUESTION_EQUALS
			} else {
				kind = token.QUESTION_QUESTION
			}
		default:
			kind = token.QUESTION
		}

	case '+':
		l.readChar()
		switch l.ch {
		case '+':
			l.readChar()
			kind = token.PLUS_PLUS
		case '=':
			l.readChar()
			kind = token.PLUS_EQUALS
		default:
			kind = token.PLUS
		}

	case '-':
		l.readChar()
		switch l.ch {
		case '-':
			l.readChar()
			kind = token.MINUS_MINUS
		case '=':
			l.readChar()
			kind = token.MINUS_EQUALS
		default:
			kind = token.MINUS
		}

	case '*':
		l.readChar()
		switch l.ch {
		case '*':
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				kind = token.ASTERISK_ASTERISK_EQUALS
			} else {
				kind = token.ASTERISK_ASTERISK
			}
		case '=':
			l.readChar()
			kind = token.ASTERISK_EQUALS
		default:
			kind = token.ASTERISK
		}

	case '/':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			kind = token.SLASH_EQUALS
		} else {
			kind = token.SLASH
		}

	case '%':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			kind = token.PERCENT_EQUALS
		} else {
			kind = token.PERCENT
		}

	case '<':
		l.readChar()
		switch l.ch {
		case '<':
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				kind = token.LESS_THAN_LESS_THAN_EQUALS
			} else {
				kind = token.LESS_THAN_LESS_THAN
			}
		case '=':
			l.readChar()
			kind = token.LESS_THAN_EQUALS
		default:
			kind = token.LESS_THAN
		}

	case '>':
		l.readChar()
		switch l.ch {
		case '>':
			l.readChar()
			switch l.ch {
			case '>':
				l.readChar()
				if l.ch == '=' {
					l.readChar()
					kind = token.GREATER_THAN_GREATER_THAN_GREATER_THAN_EQUALS
				} else {
					kind = token.GREATER_THAN_GREATER_THAN_GREATER_THAN
				}
			case '=':
				l.readChar()
				kind = token.GREATER_THAN_GREATER_THAN_EQUALS
			default:
				kind = token.GREATER_THAN_GREATER_THAN
			}
		case '=':
			l.readChar()
			kind = token.GREATER_THAN_EQUALS
		default:
			kind = token.GREATER_THAN
		}

	case '=':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				kind = token.EQUALS_EQUALS_EQUALS
			} else {
				kind = token.EQUALS_EQUALS
			}
		case '>':
			l.readChar()
			kind = token.EQUALS_GREATER_THAN
		default:
			kind = token.EQUALS
		}

	case '!':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				kind = token.EXCLAMATION_EQUALS_EQUALS
			} else {
				kind = token.EXCLAMATION_EQUALS
			}
		} else {
			kind = token.EXCLAMATION
		}

	case '&':
		l.readChar()
		switch l.ch {
		case '&':
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				kind = token.AMPERSAND_AMPERSAND_EQUALS
			} else {
				kind = token.AMPERSAND_AMPERSAND
			}
		case '=':
			l.readChar()
			kind = token.AMPERSAND_EQUALS
		default:
			kind = token.AMPERSAND
		}

	case '|':
		l.readChar()
		switch l.ch {
		case '|':
			l.readChar()
			if l.ch == '=' {
				l.readChar()
				kind = token.BAR_BAR_EQUALS
			} else {
				kind = token.BAR_BAR
			}
		case '=':
			l.readChar()
			kind = token.BAR_EQUALS
		default:
			kind = token.BAR
		}

	case '^':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			kind = token.CARET_EQUALS
		} else {
			kind = token.CARET
		}

	default:
		l.readChar()
	}

	l.tok = token.Token{Kind: kind, Span: span.New(start, l.offset)}
	if kind == token.ILLEGAL {
		return l.fatalf(errors.SyntaxError, l.tok.Span, "Unexpected character %q", l.src.Contents[start:l.offset])
	}
	return nil
}
