package parser

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/token"
)

// parseObjectExpression parses an object literal. Properties are comma
// separated and a trailing comma is allowed.
//
// The leading identifiers get and set are only accessor markers when a key
// follows them. The two-token lookahead is simulated by buffering the
// tentatively parsed identifier: when the follower turns out to be ( or :
// or anything else that ends a property, the buffered get/set is demoted to
// an ordinary key. Classes play the same trick, see classes.go.
func (p *Parser) parseObjectExpression() (ast.Expression, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}

	obj := &ast.ObjectExpression{}
	for p.tok().Kind != token.CLOSE_BRACE {
		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}

		propStart := p.tok().Span.Start

		// { ...a }
		if p.tok().Kind == token.DOT_DOT_DOT {
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			spread := &ast.SpreadProperty{Value: value}
			spread.SetSpan(p.spanFrom(propStart))
			obj.Properties = append(obj.Properties, spread)
			continue
		}

		// Tentatively consumed get/set that turned out to be a plain key.
		var buffered *ast.Identifier

		if p.isContextual("get") || p.isContextual("set") {
			kind := ast.MethodGet
			if p.isContextual("set") {
				kind = ast.MethodSet
			}
			marker := p.tok()
			if err := p.advance(); err != nil {
				return nil, err
			}

			if p.tok().Kind.IsIdentifierOrKeyword() || p.tok().Kind == token.STRING ||
				p.tok().Kind == token.NUMBER || p.tok().Kind == token.OPEN_BRACKET {
				key, err := p.parseMaybeComputedKey()
				if err != nil {
					return nil, err
				}
				method, err := p.finishObjectMethod(propStart, kind, key)
				if err != nil {
					return nil, err
				}
				obj.Properties = append(obj.Properties, method)
				continue
			}

			buffered = &ast.Identifier{Name: marker.Text}
			buffered.SetSpan(marker.Span)
		}

		// { [a]: b } and { [a]() {} }
		if buffered == nil && p.tok().Kind == token.OPEN_BRACKET {
			key, err := p.parseComputedKey()
			if err != nil {
				return nil, err
			}
			switch p.tok().Kind {
			case token.COLON:
				if err := p.advance(); err != nil {
					return nil, err
				}
				value, err := p.parseExpression(ast.Comma)
				if err != nil {
					return nil, err
				}
				prop := &ast.Property{Key: key, Value: value}
				prop.SetSpan(p.spanFrom(propStart))
				obj.Properties = append(obj.Properties, prop)
			case token.OPEN_PAREN:
				method, err := p.finishObjectMethod(propStart, ast.MethodOrdinary, key)
				if err != nil {
					return nil, err
				}
				obj.Properties = append(obj.Properties, method)
			default:
				return nil, p.unexpected()
			}
			continue
		}

		var key ast.PropertyKey
		if buffered != nil {
			key = buffered
		} else {
			var err error
			key, err = p.parsePropertyName()
			if err != nil {
				return nil, err
			}
		}

		switch p.tok().Kind {
		// { a: b }
		case token.COLON:
			if err := p.advance(); err != nil {
				return nil, err
			}
			value, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			prop := &ast.Property{Key: key, Value: value}
			prop.SetSpan(p.spanFrom(propStart))
			obj.Properties = append(obj.Properties, prop)

		// { a() {} }
		case token.OPEN_PAREN:
			method, err := p.finishObjectMethod(propStart, ast.MethodOrdinary, key)
			if err != nil {
				return nil, err
			}
			obj.Properties = append(obj.Properties, method)

		// { a }
		default:
			name, ok := key.(*ast.Identifier)
			if !ok {
				return nil, p.fatal(errors.SyntaxError, key.Span(),
					"Only an identifier is allowed as a shorthand property")
			}
			shorthand := &ast.ShorthandProperty{Name: name}
			shorthand.SetSpan(p.spanFrom(propStart))
			obj.Properties = append(obj.Properties, shorthand)
		}
	}

	if err := p.eat(token.CLOSE_BRACE); err != nil {
		return nil, err
	}
	obj.SetSpan(p.spanFrom(start))
	return obj, nil
}

// parseComputedKey parses [expr] in key position.
func (p *Parser) parseComputedKey() (*ast.ComputedKey, error) {
	start := p.tok().Span.Start
	if err := p.eat(token.OPEN_BRACKET); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(ast.Comma)
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.CLOSE_BRACKET); err != nil {
		return nil, err
	}
	key := &ast.ComputedKey{Expression: expr}
	key.SetSpan(p.spanFrom(start))
	return key, nil
}

// parseMaybeComputedKey parses either a literal property name or [expr].
func (p *Parser) parseMaybeComputedKey() (ast.PropertyKey, error) {
	if p.tok().Kind == token.OPEN_BRACKET {
		return p.parseComputedKey()
	}
	return p.parsePropertyName()
}

// finishObjectMethod parses the parameter list and body of a method whose
// key has already been consumed.
func (p *Parser) finishObjectMethod(start int, kind ast.MethodKind, key ast.PropertyKey) (*ast.ObjectMethod, error) {
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	method := &ast.ObjectMethod{Kind: kind, Key: key, Parameters: params, Body: body}
	method.SetSpan(p.spanFrom(start))
	return method, nil
}
