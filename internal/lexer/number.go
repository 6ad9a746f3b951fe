package lexer

import (
	"strconv"
	"strings"

	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/span"
	"github.com/jacobjonsson/packet/pkg/token"
)

// scanNumber scans a numeric or BigInt literal. Underscore digit
// separators are stripped before the value parse. The cursor sits on the
// first digit, or on a '.' directly followed by a digit.
func (l *Lexer) scanNumber() error {
	start := l.offset

	if l.ch == '0' {
		switch l.peekChar() {
		case 'b', 'B':
			return l.scanRadixNumber(start, 2)
		case 'o', 'O':
			return l.scanRadixNumber(start, 8)
		case 'x', 'X':
			return l.scanRadixNumber(start, 16)
		case '0':
			return l.fatal(errors.LegacyOctal, span.New(start, start+2))
		}
	}

	var digits strings.Builder
	isFloat := false

	if l.ch == '.' {
		// A leading . followed by a digit is a fractional literal.
		isFloat = true
		digits.WriteByte('0')
		digits.WriteByte('.')
		l.readChar()
	}

	l.readDigits(&digits)

	if !isFloat && l.ch == '.' {
		isFloat = true
		digits.WriteByte('.')
		l.readChar()
		l.readDigits(&digits)
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		digits.WriteByte('e')
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			digits.WriteRune(l.ch)
			l.readChar()
		}
		if !isDigit(l.ch) {
			return l.fatalf(errors.SyntaxError, span.New(start, l.offset), "Missing exponent digits")
		}
		l.readDigits(&digits)
	}

	if l.ch == 'n' {
		if isFloat {
			l.readChar()
			return l.fatal(errors.BigIntWithFraction, span.New(start, l.offset))
		}
		text := digits.String()
		l.readChar()
		if err := l.checkIdentifierAfterNumber(start); err != nil {
			return err
		}
		l.tok = token.Token{Kind: token.BIGINT, Span: span.New(start, l.offset), Text: text}
		return nil
	}

	if err := l.checkIdentifierAfterNumber(start); err != nil {
		return err
	}

	value, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return l.fatalf(errors.SyntaxError, span.New(start, l.offset), "Invalid numeric literal")
	}
	l.tok = token.Token{Kind: token.NUMBER, Span: span.New(start, l.offset), Number: value}
	return nil
}

// scanRadixNumber scans a 0b/0o/0x literal, or its BigInt form. The BigInt
// payload keeps the base prefix and drops the trailing n.
func (l *Lexer) scanRadixNumber(start int, radix int) error {
	l.readChar() // 0
	prefix := l.src.Contents[start : l.offset+l.chWidth]
	l.readChar() // b/o/x

	var digits strings.Builder
	for isRadixDigit(l.ch, radix) || l.ch == '_' {
		if l.ch != '_' {
			digits.WriteRune(l.ch)
		}
		l.readChar()
	}
	if digits.Len() == 0 {
		return l.fatalf(errors.SyntaxError, span.New(start, l.offset), "Missing digits after %q", prefix)
	}

	if l.ch == 'n' {
		text := prefix + digits.String()
		l.readChar()
		if err := l.checkIdentifierAfterNumber(start); err != nil {
			return err
		}
		l.tok = token.Token{Kind: token.BIGINT, Span: span.New(start, l.offset), Text: text}
		return nil
	}

	if err := l.checkIdentifierAfterNumber(start); err != nil {
		return err
	}

	value, err := strconv.ParseUint(digits.String(), radix, 64)
	if err != nil {
		return l.fatalf(errors.SyntaxError, span.New(start, l.offset), "Invalid numeric literal")
	}
	l.tok = token.Token{Kind: token.NUMBER, Span: span.New(start, l.offset), Number: float64(value)}
	return nil
}

// readDigits consumes decimal digits and separators, appending the digits
// to out.
func (l *Lexer) readDigits(out *strings.Builder) {
	for isDigit(l.ch) || l.ch == '_' {
		if l.ch != '_' {
			out.WriteRune(l.ch)
		}
		l.readChar()
	}
}

// checkIdentifierAfterNumber rejects an identifier-start character directly
// following the digit run, e.g. 3in.
func (l *Lexer) checkIdentifierAfterNumber(start int) error {
	if isIdentifierStart(l.ch) {
		return l.fatal(errors.IdentifierAfterNumber, span.New(start, l.offset+l.chWidth))
	}
	return nil
}

func isRadixDigit(c rune, radix int) bool {
	switch radix {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	default:
		return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
	}
}
