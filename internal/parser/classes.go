package parser

import (
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/token"
)

// parseClassBody parses the members between { and }. Semicolons are
// allowed as separators and ignored.
//
// static, get, and set are contextual markers that can also be member
// names: static() {} is a method named static. The marker is consumed
// tentatively and demoted to a name when the follower is an opening
// parenthesis, the same trick objects use for accessors.
func (p *Parser) parseClassBody() ([]ast.ClassMember, error) {
	if err := p.eat(token.OPEN_BRACE); err != nil {
		return nil, err
	}

	var members []ast.ClassMember
	for p.tok().Kind != token.CLOSE_BRACE {
		if p.tok().Kind == token.SEMICOLON {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}

		memberStart := p.tok().Span.Start
		var buffered *ast.Identifier

		isStatic := false
		if p.isContextual("static") {
			marker := p.tok()
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok().Kind == token.OPEN_PAREN {
				// static() {} — the marker was the method name.
				buffered = &ast.Identifier{Name: marker.Text}
				buffered.SetSpan(marker.Span)
			} else {
				isStatic = true
			}
		}

		// constructor(...) {} — a constructor cannot be a marker.
		if buffered == nil && p.isContextual("constructor") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			params, err := p.parseParameters()
			if err != nil {
				return nil, err
			}
			body, err := p.parseBlockStatement()
			if err != nil {
				return nil, err
			}
			ctor := &ast.ClassConstructor{IsStatic: isStatic, Parameters: params, Body: body}
			ctor.SetSpan(p.spanFrom(memberStart))
			members = append(members, ctor)
			continue
		}

		kind := ast.MethodOrdinary
		if buffered == nil && (p.isContextual("get") || p.isContextual("set")) {
			marker := p.tok()
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.tok().Kind == token.OPEN_PAREN {
				// get() {} — the marker was the method name.
				buffered = &ast.Identifier{Name: marker.Text}
				buffered.SetSpan(marker.Span)
			} else if marker.Text == "get" {
				kind = ast.MethodGet
			} else {
				kind = ast.MethodSet
			}
		}

		var key ast.PropertyKey
		if buffered != nil {
			key = buffered
		} else {
			var err error
			key, err = p.parseMaybeComputedKey()
			if err != nil {
				return nil, err
			}
		}

		params, err := p.parseParameters()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		method := &ast.ClassMethod{IsStatic: isStatic, Kind: kind, Key: key, Parameters: params, Body: body}
		method.SetSpan(p.spanFrom(memberStart))
		members = append(members, method)
	}

	if err := p.eat(token.CLOSE_BRACE); err != nil {
		return nil, err
	}
	return members, nil
}
