package parser

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/token"
)

// parseBinding parses a binding target: an identifier, an object pattern,
// or an array pattern.
func (p *Parser) parseBinding() (ast.Binding, error) {
	switch p.tok().Kind {
	case token.IDENT:
		return p.parseIdentifier()
	case token.OPEN_BRACE:
		return p.parseObjectBinding()
	case token.OPEN_BRACKET:
		return p.parseArrayBinding()
	default:
		return nil, p.fatal(errors.InvalidBindingTarget, p.tok().Span,
			"Expected a binding but found %q", p.tok().Kind.String())
	}
}

// parseObjectBinding parses an object pattern. A rest property accepts an
// identifier only, which is a tighter constraint than rest elements in
// arrays.
func (p *Parser) parseObjectBinding() (*ast.ObjectBinding, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}

	binding := &ast.ObjectBinding{}
	for p.tok().Kind != token.CLOSE_BRACE {
		propStart := p.tok().Span.Start

		switch p.tok().Kind {
		// { ...a }
		case token.DOT_DOT_DOT:
			if err := p.advance(); err != nil {
				return nil, err
			}
			name, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			rest := &ast.RestBinding{Name: name}
			rest.SetSpan(p.spanFrom(propStart))
			binding.Properties = append(binding.Properties, rest)

		// { [a]: b }
		case token.OPEN_BRACKET:
			if err := p.advance(); err != nil {
				return nil, err
			}
			keyExpr, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			if err := p.eat(token.CLOSE_BRACKET); err != nil {
				return nil, err
			}
			key := &ast.ComputedKey{Expression: keyExpr}
			key.SetSpan(p.spanFrom(propStart))
			if err := p.eat(token.COLON); err != nil {
				return nil, err
			}
			value, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			def, err := p.parseOptionalDefault()
			if err != nil {
				return nil, err
			}
			prop := &ast.PropertyBinding{Key: key, Binding: value, Default: def}
			prop.SetSpan(p.spanFrom(propStart))
			binding.Properties = append(binding.Properties, prop)

		// { a }, { a = 1 }, { a: b }, { "a": b }, { 2: b }, { null: b }
		default:
			key, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			if p.tok().Kind != token.COLON {
				// Shorthand: the key narrows to an identifier.
				name, ok := key.(*ast.Identifier)
				if !ok {
					return nil, p.fatal(errors.SyntaxError, key.Span(),
						"Only an identifier is allowed as a shorthand property")
				}
				def, err := p.parseOptionalDefault()
				if err != nil {
					return nil, err
				}
				shorthand := &ast.ShorthandBinding{Name: name, Default: def}
				shorthand.SetSpan(p.spanFrom(propStart))
				binding.Properties = append(binding.Properties, shorthand)
			} else {
				if err := p.advance(); err != nil {
					return nil, err
				}
				value, err := p.parseBinding()
				if err != nil {
					return nil, err
				}
				def, err := p.parseOptionalDefault()
				if err != nil {
					return nil, err
				}
				prop := &ast.PropertyBinding{Key: key, Binding: value, Default: def}
				prop.SetSpan(p.spanFrom(propStart))
				binding.Properties = append(binding.Properties, prop)
			}
		}

		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(token.CLOSE_BRACE); err != nil {
		return nil, err
	}
	binding.SetSpan(p.spanFrom(start))
	return binding, nil
}

// parseArrayBinding parses an array pattern. Consecutive commas produce
// holes; a rest element must be the trailing item and never has a default.
func (p *Parser) parseArrayBinding() (*ast.ArrayBinding, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}

	binding := &ast.ArrayBinding{}
	for p.tok().Kind != token.CLOSE_BRACKET {
		switch p.tok().Kind {
		case token.COMMA:
			binding.Items = append(binding.Items, nil)

		case token.DOT_DOT_DOT:
			restStart := p.tok().Span.Start
			if err := p.advance(); err != nil {
				return nil, err
			}
			target, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			binding.Items = append(binding.Items, &ast.ArrayBindingItem{Binding: target, Rest: true})
			if p.tok().Kind != token.CLOSE_BRACKET {
				return nil, p.fatal(errors.SyntaxError, p.spanFrom(restStart),
					"A rest element must be the last element")
			}

		default:
			target, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			def, err := p.parseOptionalDefault()
			if err != nil {
				return nil, err
			}
			binding.Items = append(binding.Items, &ast.ArrayBindingItem{Binding: target, Default: def})
		}

		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(token.CLOSE_BRACKET); err != nil {
		return nil, err
	}
	binding.SetSpan(p.spanFrom(start))
	return binding, nil
}
