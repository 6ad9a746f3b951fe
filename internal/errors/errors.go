// Package errors defines the structured syntax errors shared by the scanner
// and the parser.
package errors

import (
	"fmt"

	"github.com/jacobjonsson/packet/pkg/span"
)

// Kind classifies a syntax error.
type Kind int

const (
	// SyntaxError is the generic "unexpected token" class.
	SyntaxError Kind = iota

	// Unterminated constructs.
	UnterminatedBlockComment
	UnterminatedString
	UnterminatedTemplate
	UnterminatedRegexp

	// Invalid literals.
	IdentifierAfterNumber
	InvalidRegexpFlag
	BigIntWithFraction
	LegacyOctal

	// Reclassification failures: an expression could not become a binding
	// where one was required.
	InvalidBindingTarget
)

func (k Kind) String() string {
	switch k {
	case UnterminatedBlockComment:
		return "Unterminated block comment"
	case UnterminatedString:
		return "Unterminated string literal"
	case UnterminatedTemplate:
		return "Unterminated template literal"
	case UnterminatedRegexp:
		return "Unterminated regexp"
	case IdentifierAfterNumber:
		return "Identifiers are not allowed directly after a number"
	case InvalidRegexpFlag:
		return "The regexp flag is invalid"
	case BigIntWithFraction:
		return "BigInt literals cannot have a fractional or exponent part"
	case LegacyOctal:
		return "Legacy octal literals are not allowed in strict mode"
	case InvalidBindingTarget:
		return "Invalid binding target"
	default:
		return "Syntax error"
	}
}

// Error is a syntax error anchored to a source region.
type Error struct {
	Kind    Kind
	Span    span.Span
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.String()
}

// New creates an error whose message is derived from its kind.
func New(kind Kind, loc span.Span) *Error {
	return &Error{Kind: kind, Span: loc}
}

// Newf creates an error with an explicit message.
func Newf(kind Kind, loc span.Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Span: loc, Message: fmt.Sprintf(format, args...)}
}
