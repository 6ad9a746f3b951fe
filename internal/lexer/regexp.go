package lexer

import (
	"strings"

	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/span"
	"github.com/jacobjonsson/packet/pkg/token"
)

// NextRegexp rescans the current token as a regexp literal. The parser
// calls this in prefix position when the default scanner produced SLASH or
// SLASH_EQUALS; the scan restarts from that token's opening slash.
//
// Character classes [...] form an inner state in which / loses its
// terminator role and ] gains one. A backslash escapes the next code unit
// everywhere, but never across a line terminator. The trailing flag
// sequence may contain each of g i m s u y at most once.
func (l *Lexer) NextRegexp() error {
	start := l.tok.Span.Start

	// Rewind the cursor to just past the opening slash. A /= token means
	// the = was really the first pattern character.
	l.offset = start
	l.chWidth = 1 // the slash
	l.readChar()

	patternStart := l.offset
	inClass := false

	for {
		switch {
		case l.ch == eof || isLineTerminator(l.ch):
			return l.fatal(errors.UnterminatedRegexp, span.New(start, l.offset))

		case l.ch == '\\':
			l.readChar()
			if l.ch == eof || isLineTerminator(l.ch) {
				return l.fatal(errors.UnterminatedRegexp, span.New(start, l.offset))
			}
			l.readChar()

		case l.ch == '[':
			inClass = true
			l.readChar()

		case l.ch == ']':
			inClass = false
			l.readChar()

		case l.ch == '/' && !inClass:
			pattern := l.src.Contents[patternStart:l.offset]
			l.readChar()
			flags, err := l.scanRegexpFlags(start)
			if err != nil {
				return err
			}
			l.tok = token.Token{
				Kind:    token.REGEXP,
				Span:    span.New(start, l.offset),
				Text:    l.src.Contents[start:l.offset],
				Pattern: pattern,
				Flags:   flags,
			}
			return nil

		default:
			l.readChar()
		}
	}
}

func (l *Lexer) scanRegexpFlags(start int) (string, error) {
	flagsStart := l.offset
	var seen strings.Builder
	for isIdentifierContinue(l.ch) {
		switch l.ch {
		case 'g', 'i', 'm', 's', 'u', 'y':
			if strings.ContainsRune(seen.String(), l.ch) {
				return "", l.fatalf(errors.InvalidRegexpFlag,
					span.New(flagsStart, l.offset+l.chWidth), "Duplicate regexp flag %q", string(l.ch))
			}
			seen.WriteRune(l.ch)
			l.readChar()
		default:
			return "", l.fatal(errors.InvalidRegexpFlag, span.New(flagsStart, l.offset+l.chWidth))
		}
	}
	return l.src.Contents[flagsStart:l.offset], nil
}
