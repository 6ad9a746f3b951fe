package lexer

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/span"
	"github.com/jacobjonsson/packet/pkg/token"
)

// scanTemplate scans from the opening backtick. It emits either a
// NO_SUBSTITUTION_TEMPLATE (text up to the closing backtick, no ${ found)
// or a TEMPLATE_HEAD (text up to the first ${, which the span includes).
// The payload is the segment text only. A backslash escapes the next code
// unit, so \` is accepted literally. Line terminators are allowed inside
// templates.
func (l *Lexer) scanTemplate() error {
	start := l.offset
	l.readChar() // `
	textStart := l.offset

	for {
		switch {
		case l.ch == eof:
			return l.fatal(errors.UnterminatedTemplate, span.New(start, l.offset))

		case l.ch == '\\':
			l.readChar()
			if l.ch == eof {
				return l.fatal(errors.UnterminatedTemplate, span.New(start, l.offset))
			}
			l.readChar()

		case l.ch == '`':
			text := l.src.Contents[textStart:l.offset]
			l.readChar()
			l.tok = token.Token{Kind: token.NO_SUBSTITUTION_TEMPLATE, Span: span.New(start, l.offset), Text: text}
			return nil

		case l.ch == '$' && l.peekChar() == '{':
			text := l.src.Contents[textStart:l.offset]
			l.readChar()
			l.readChar()
			l.tok = token.Token{Kind: token.TEMPLATE_HEAD, Span: span.New(start, l.offset), Text: text}
			return nil

		default:
			l.readChar()
		}
	}
}

// NextTemplateSpan resumes template-body scanning after the closing } of an
// interpolated expression. The current token must be that CLOSE_BRACE; the
// cursor already sits just past it. The result is either TEMPLATE_MIDDLE
// (the segment ended at another ${) or TEMPLATE_TAIL (the segment ended at
// the closing backtick). The token span starts at the }.
func (l *Lexer) NextTemplateSpan() error {
	start := l.tok.Span.Start
	textStart := l.offset

	for {
		switch {
		case l.ch == eof:
			return l.fatal(errors.UnterminatedTemplate, span.New(start, l.offset))

		case l.ch == '\\':
			l.readChar()
			if l.ch == eof {
				return l.fatal(errors.UnterminatedTemplate, span.New(start, l.offset))
			}
			l.readChar()

		case l.ch == '`':
			text := l.src.Contents[textStart:l.offset]
			l.readChar()
			l.tok = token.Token{Kind: token.TEMPLATE_TAIL, Span: span.New(start, l.offset), Text: text}
			return nil

		case l.ch == '$' && l.peekChar() == '{':
			text := l.src.Contents[textStart:l.offset]
			l.readChar()
			l.readChar()
			l.tok = token.Token{Kind: token.TEMPLATE_MIDDLE, Span: span.New(start, l.offset), Text: text}
			return nil

		default:
			l.readChar()
		}
	}
}
