// Package parser implements a recursive-descent statement recogniser
// layered over a Pratt expression engine.
//
// The parser owns the scanner and is its sole consumer. Expressions are
// parsed by precedence climbing over the ladder in pkg/ast: the main loop
// consumes the next infix or postfix operator only when its level is
// strictly greater than the caller's threshold, or greater-or-equal for the
// right-associative operators (assignment, exponentiation, conditional).
//
// Two productions are resolved after the fact by reclassification: a
// parenthesised expression list becomes an arrow-function parameter list
// when the token after the closing parenthesis is =>, and the left-hand
// side of an assignment becomes a destructuring binding when it has the
// right shape. See reclassify.go.
//
// Errors are reported to the diagnostic sink and halt parsing; there is no
// statement-level recovery.
package parser

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/internal/lexer"
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/source"
	"github.com/jacobjonsson/packet/pkg/span"
	"github.com/jacobjonsson/packet/pkg/token"
)

// Parser holds the parsing state.
type Parser struct {
	lex  *lexer.Lexer
	src  *source.Source
	sink logger.Sink

	// allowIn gates the in operator. It is false only while the init
	// clause of a for statement is being parsed, so that the in of
	// for (x in y) is not swallowed by the init expression.
	allowIn bool

	// prevEnd is the end offset of the most recently consumed token, used
	// to stamp node spans.
	prevEnd int
}

// New creates a parser over src and primes the token stream. The sink is
// borrowed and receives every syntax error.
func New(src *source.Source, sink logger.Sink) (*Parser, error) {
	p := &Parser{
		lex:     lexer.New(src, sink),
		src:     src,
		sink:    sink,
		allowIn: true,
	}
	if err := p.lex.Next(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseProgram parses the whole module.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{}
	for p.tok().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return program, err
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

func (p *Parser) tok() token.Token {
	return p.lex.Token()
}

// advance consumes the current token.
func (p *Parser) advance() error {
	p.prevEnd = p.tok().Span.End
	return p.lex.Next()
}

// spanFrom builds the span of a node that started at the given offset and
// ended with the last consumed token.
func (p *Parser) spanFrom(start int) span.Span {
	return span.New(start, p.prevEnd)
}

// fatal reports a syntax error to the sink and returns it.
func (p *Parser) fatal(kind errors.Kind, loc span.Span, format string, args ...any) error {
	err := errors.Newf(kind, loc, format, args...)
	p.sink.Report(p.src, loc, err.Error(), logger.Error)
	return err
}

// unexpected reports the current token as unexpected.
func (p *Parser) unexpected() error {
	return p.fatal(errors.SyntaxError, p.tok().Span, "Unexpected token %q", p.tok().Kind.String())
}

// expect asserts the current token kind without consuming it.
func (p *Parser) expect(kind token.Kind) error {
	if p.tok().Kind != kind {
		return p.fatal(errors.SyntaxError, p.tok().Span,
			"Expected %q but found %q", kind.String(), p.tok().Kind.String())
	}
	return nil
}

// eat asserts the current token kind and consumes it.
func (p *Parser) eat(kind token.Kind) error {
	if err := p.expect(kind); err != nil {
		return err
	}
	return p.advance()
}

// consumeSemicolon eats an optional semicolon after a statement. This is
// the entire extent of automatic semicolon handling: a present semicolon is
// consumed, an absent one is tolerated.
func (p *Parser) consumeSemicolon() error {
	if p.tok().Kind == token.SEMICOLON {
		return p.advance()
	}
	return nil
}

// isContextual reports whether the current token is the given contextual
// keyword, which is scanned as a plain identifier.
func (p *Parser) isContextual(name string) bool {
	t := p.tok()
	return t.Kind == token.IDENT && t.Text == name
}

// eatContextual consumes the given contextual keyword.
func (p *Parser) eatContextual(name string) error {
	if !p.isContextual(name) {
		return p.fatal(errors.SyntaxError, p.tok().Span,
			"Expected %q but found %q", name, p.tok().Kind.String())
	}
	return p.advance()
}

// parseIdentifier parses an ordinary identifier reference.
func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	if err := p.expect(token.IDENT); err != nil {
		return nil, err
	}
	ident := &ast.Identifier{Name: p.tok().Text}
	ident.SetSpan(p.tok().Span)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ident, nil
}

// parseIdentifierOrKeyword parses a name in positions where reserved words
// are allowed: property names, member access, import/export specifiers.
func (p *Parser) parseIdentifierOrKeyword() (*ast.Identifier, error) {
	if !p.tok().Kind.IsIdentifierOrKeyword() {
		return nil, p.fatal(errors.SyntaxError, p.tok().Span,
			"Expected an identifier but found %q", p.tok().Kind.String())
	}
	ident := &ast.Identifier{Name: p.tok().Text}
	ident.SetSpan(p.tok().Span)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return ident, nil
}

// parseStringLiteral parses the current STRING token.
func (p *Parser) parseStringLiteral() (*ast.StringLiteral, error) {
	if err := p.expect(token.STRING); err != nil {
		return nil, err
	}
	lit := &ast.StringLiteral{Value: p.tok().Text}
	lit.SetSpan(p.tok().Span)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return lit, nil
}

// parsePropertyName parses a literal property key: an identifier, a
// reserved word (accepted as-is for keys), a string, or a number.
func (p *Parser) parsePropertyName() (ast.PropertyKey, error) {
	t := p.tok()
	switch {
	case t.Kind == token.STRING:
		return p.parseStringLiteral()

	case t.Kind == token.NUMBER:
		lit := &ast.NumericLiteral{Value: t.Number}
		lit.SetSpan(t.Span)
		return lit, p.advance()

	case t.Kind.IsIdentifierOrKeyword():
		return p.parseIdentifierOrKeyword()

	default:
		return nil, p.fatal(errors.SyntaxError, t.Span,
			"Expected a property name but found %q", t.Kind.String())
	}
}
