package parser

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/token"
)

// parseExpression parses a prefix production and then loops over infix and
// postfix operators whose precedence clears minPrec.
func (p *Parser) parseExpression(minPrec ast.Precedence) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	return p.parseSuffix(minPrec, left)
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	t := p.tok()
	start := t.Span.Start

	switch t.Kind {
	case token.NULL:
		expr := &ast.NullLiteral{}
		expr.SetSpan(t.Span)
		return expr, p.advance()

	case token.TRUE, token.FALSE:
		expr := &ast.BooleanLiteral{Value: t.Kind == token.TRUE}
		expr.SetSpan(t.Span)
		return expr, p.advance()

	case token.NUMBER:
		expr := &ast.NumericLiteral{Value: t.Number}
		expr.SetSpan(t.Span)
		return expr, p.advance()

	case token.BIGINT:
		expr := &ast.BigIntLiteral{Value: t.Text}
		expr.SetSpan(t.Span)
		return expr, p.advance()

	case token.STRING:
		return p.parseStringLiteral()

	case token.SLASH, token.SLASH_EQUALS:
		// A slash in prefix position starts a regexp literal: switch the
		// scanner into regexp mode and rescan from the slash.
		if err := p.lex.NextRegexp(); err != nil {
			return nil, err
		}
		expr := &ast.RegexpLiteral{Value: p.tok().Text}
		expr.SetSpan(p.tok().Span)
		return expr, p.advance()

	case token.NO_SUBSTITUTION_TEMPLATE:
		expr := &ast.TemplateLiteral{Head: t.Text}
		expr.SetSpan(t.Span)
		return expr, p.advance()

	case token.TEMPLATE_HEAD:
		return p.parseTemplateLiteral()

	case token.IDENT:
		ident, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		// A lone identifier followed by => is an arrow function with a
		// single parameter.
		if p.tok().Kind == token.EQUALS_GREATER_THAN {
			param := &ast.Parameter{Binding: ident}
			param.SetSpan(ident.Span())
			return p.parseArrowBody(start, []*ast.Parameter{param})
		}
		return ident, nil

	case token.EXCLAMATION:
		return p.parseUnary(ast.UnaryLogicalNot)
	case token.TILDE:
		return p.parseUnary(ast.UnaryBitwiseNot)
	case token.PLUS:
		return p.parseUnary(ast.UnaryPositive)
	case token.MINUS:
		return p.parseUnary(ast.UnaryNegative)
	case token.TYPEOF:
		return p.parseUnary(ast.UnaryTypeof)
	case token.VOID:
		return p.parseUnary(ast.UnaryVoid)
	case token.DELETE:
		return p.parseUnary(ast.UnaryDelete)

	case token.PLUS_PLUS, token.MINUS_MINUS:
		op := ast.UpdatePrefixIncrement
		if t.Kind == token.MINUS_MINUS {
			op = ast.UpdatePrefixDecrement
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpression(ast.Prefix)
		if err != nil {
			return nil, err
		}
		expr := &ast.UpdateExpression{Op: op, Argument: arg}
		expr.SetSpan(p.spanFrom(start))
		return expr, nil

	case token.OPEN_PAREN:
		return p.parseParenthesized()

	case token.OPEN_BRACKET:
		return p.parseArrayExpression()

	case token.OPEN_BRACE:
		return p.parseObjectExpression()

	case token.NEW:
		if err := p.advance(); err != nil {
			return nil, err
		}
		callee, err := p.parseExpression(ast.Member)
		if err != nil {
			return nil, err
		}
		var args []ast.Argument
		// The argument list is optional: new a is equivalent to new a().
		if p.tok().Kind == token.OPEN_PAREN {
			args, err = p.parseArguments()
			if err != nil {
				return nil, err
			}
		}
		expr := &ast.NewExpression{Callee: callee, Arguments: args}
		expr.SetSpan(p.spanFrom(start))
		return expr, nil

	case token.FUNCTION:
		return p.parseFunctionExpression()

	case token.CLASS:
		return p.parseClassExpression()

	case token.THIS:
		expr := &ast.ThisExpression{}
		expr.SetSpan(t.Span)
		return expr, p.advance()

	case token.SUPER:
		expr := &ast.SuperExpression{}
		expr.SetSpan(t.Span)
		return expr, p.advance()

	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseUnary(op ast.UnaryOp) (ast.Expression, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	arg, err := p.parseExpression(ast.Prefix)
	if err != nil {
		return nil, err
	}
	expr := &ast.UnaryExpression{Op: op, Argument: arg}
	expr.SetSpan(p.spanFrom(start))
	return expr, nil
}

// binaryOps maps infix token kinds to their binary operator.
var binaryOps = map[token.Kind]ast.BinaryOp{
	token.PLUS:                                   ast.BinaryAdd,
	token.MINUS:                                  ast.BinarySubtract,
	token.ASTERISK:                               ast.BinaryMultiply,
	token.SLASH:                                  ast.BinaryDivide,
	token.PERCENT:                                ast.BinaryRemainder,
	token.ASTERISK_ASTERISK:                      ast.BinaryExponent,
	token.LESS_THAN:                              ast.BinaryLessThan,
	token.LESS_THAN_EQUALS:                       ast.BinaryLessThanEquals,
	token.GREATER_THAN:                           ast.BinaryGreaterThan,
	token.GREATER_THAN_EQUALS:                    ast.BinaryGreaterThanEquals,
	token.IN:                                     ast.BinaryIn,
	token.INSTANCEOF:                             ast.BinaryInstanceof,
	token.LESS_THAN_LESS_THAN:                    ast.BinaryLeftShift,
	token.GREATER_THAN_GREATER_THAN:              ast.BinaryRightShift,
	token.GREATER_THAN_GREATER_THAN_GREATER_THAN: ast.BinaryUnsignedRightShift,
	token.EQUALS_EQUALS:                          ast.BinaryLooseEquals,
	token.EXCLAMATION_EQUALS:                     ast.BinaryLooseNotEquals,
	token.EQUALS_EQUALS_EQUALS:                   ast.BinaryStrictEquals,
	token.EXCLAMATION_EQUALS_EQUALS:              ast.BinaryStrictNotEquals,
	token.BAR:                                    ast.BinaryBitwiseOr,
	token.AMPERSAND:                              ast.BinaryBitwiseAnd,
	token.CARET:                                  ast.BinaryBitwiseXor,
}

// assignOps maps assignment token kinds to their operator.
var assignOps = map[token.Kind]ast.AssignOp{
	token.EQUALS:                     ast.AssignPlain,
	token.PLUS_EQUALS:                ast.AssignAdd,
	token.MINUS_EQUALS:               ast.AssignSubtract,
	token.ASTERISK_EQUALS:            ast.AssignMultiply,
	token.SLASH_EQUALS:               ast.AssignDivide,
	token.PERCENT_EQUALS:             ast.AssignRemainder,
	token.ASTERISK_ASTERISK_EQUALS:   ast.AssignExponent,
	token.LESS_THAN_LESS_THAN_EQUALS: ast.AssignLeftShift,
	token.GREATER_THAN_GREATER_THAN_EQUALS:              ast.AssignRightShift,
	token.GREATER_THAN_GREATER_THAN_GREATER_THAN_EQUALS: ast.AssignUnsignedRightShift,
	token.BAR_EQUALS:                 ast.AssignBitwiseOr,
	token.AMPERSAND_EQUALS:           ast.AssignBitwiseAnd,
	token.CARET_EQUALS:               ast.AssignBitwiseXor,
	token.QUESTION_QUESTION_EQUALS:   ast.AssignNullishCoalescing,
	token.BAR_BAR_EQUALS:             ast.AssignLogicalOr,
	token.AMPERSAND_AMPERSAND_EQUALS: ast.AssignLogicalAnd,
}

var logicalOps = map[token.Kind]ast.LogicalOp{
	token.BAR_BAR:             ast.LogicalOrOp,
	token.AMPERSAND_AMPERSAND: ast.LogicalAndOp,
	token.QUESTION_QUESTION:   ast.LogicalNullishCoalescingOp,
}

// parseSuffix consumes infix and postfix operators onto left for as long as
// their precedence clears minPrec.
func (p *Parser) parseSuffix(minPrec ast.Precedence, left ast.Expression) (ast.Expression, error) {
	expr := left
	start := left.Span().Start

	for {
		t := p.tok()

		switch t.Kind {
		// a.b
		case token.DOT:
			if err := p.advance(); err != nil {
				return nil, err
			}
			property, err := p.parseIdentifierOrKeyword()
			if err != nil {
				return nil, err
			}
			member := &ast.MemberExpression{Object: expr, Property: property}
			member.SetSpan(p.spanFrom(start))
			expr = member

		// a[b]
		case token.OPEN_BRACKET:
			if err := p.advance(); err != nil {
				return nil, err
			}
			property, err := p.parseExpression(ast.Lowest)
			if err != nil {
				return nil, err
			}
			if err := p.eat(token.CLOSE_BRACKET); err != nil {
				return nil, err
			}
			member := &ast.MemberExpression{Object: expr, Property: property, Computed: true}
			member.SetSpan(p.spanFrom(start))
			expr = member

		// a(b, ...c)
		case token.OPEN_PAREN:
			if minPrec >= ast.Call {
				return expr, nil
			}
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			call := &ast.CallExpression{Callee: expr, Arguments: args}
			call.SetSpan(p.spanFrom(start))
			expr = call

		// a++ / a--
		case token.PLUS_PLUS, token.MINUS_MINUS:
			if minPrec >= ast.Postfix {
				return expr, nil
			}
			op := ast.UpdatePostfixIncrement
			if t.Kind == token.MINUS_MINUS {
				op = ast.UpdatePostfixDecrement
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			update := &ast.UpdateExpression{Op: op, Argument: expr}
			update.SetSpan(p.spanFrom(start))
			expr = update

		// a ? b : c — right-associative; both branches stop short of the
		// comma, so a ? b : c, d groups as (a ? b : c), d.
		case token.QUESTION:
			if minPrec >= ast.Conditional {
				return expr, nil
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			consequent, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			if err := p.eat(token.COLON); err != nil {
				return nil, err
			}
			alternate, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			cond := &ast.ConditionalExpression{Test: expr, Consequent: consequent, Alternate: alternate}
			cond.SetSpan(p.spanFrom(start))
			expr = cond

		// a, b, c — consecutive commas collapse into one sequence node.
		case token.COMMA:
			if minPrec >= ast.Comma {
				return expr, nil
			}
			seq := &ast.SequenceExpression{Expressions: []ast.Expression{expr}}
			for p.tok().Kind == token.COMMA {
				if err := p.advance(); err != nil {
					return nil, err
				}
				next, err := p.parseExpression(ast.Comma)
				if err != nil {
					return nil, err
				}
				seq.Expressions = append(seq.Expressions, next)
			}
			seq.SetSpan(p.spanFrom(start))
			expr = seq

		default:
			if op, ok := assignOps[t.Kind]; ok {
				if minPrec >= ast.Assign {
					return expr, nil
				}
				next, err := p.parseAssignment(start, expr, op)
				if err != nil {
					return nil, err
				}
				expr = next
				continue
			}

			if op, ok := logicalOps[t.Kind]; ok {
				prec := op.Precedence()
				if minPrec >= prec {
					return expr, nil
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
				right, err := p.parseExpression(prec)
				if err != nil {
					return nil, err
				}
				logical := &ast.LogicalExpression{Left: expr, Op: op, Right: right}
				logical.SetSpan(p.spanFrom(start))
				expr = logical
				continue
			}

			if op, ok := binaryOps[t.Kind]; ok {
				if t.Kind == token.IN && !p.allowIn {
					return expr, nil
				}
				prec := op.Precedence()
				if minPrec >= prec {
					return expr, nil
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
				// A right-associative operator parses its right side one
				// level lower so the recursion re-consumes the operator.
				rightPrec := prec
				if op.IsRightAssociative() {
					rightPrec = prec.Lower()
				}
				right, err := p.parseExpression(rightPrec)
				if err != nil {
					return nil, err
				}
				binary := &ast.BinaryExpression{Left: expr, Op: op, Right: right}
				binary.SetSpan(p.spanFrom(start))
				expr = binary
				continue
			}

			return expr, nil
		}
	}
}

// parseAssignment builds an assignment expression. The left-hand side is
// handed to the reclassifier; when conversion fails the expression is kept
// as-is, which preserves targets like obj.x while enabling [a, b] = c.
func (p *Parser) parseAssignment(start int, left ast.Expression, op ast.AssignOp) (ast.Expression, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(ast.Assign.Lower())
	if err != nil {
		return nil, err
	}
	assign := &ast.AssignmentExpression{Op: op, Right: right}
	if binding, err := reclassifyExpression(left); err == nil {
		assign.Binding = binding
	} else {
		assign.Expr = left
	}
	assign.SetSpan(p.spanFrom(start))
	return assign, nil
}

// parseArguments parses a parenthesised argument list. An argument may be a
// ...spread.
func (p *Parser) parseArguments() ([]ast.Argument, error) {
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	var args []ast.Argument
	for p.tok().Kind != token.CLOSE_PAREN {
		spread := false
		if p.tok().Kind == token.DOT_DOT_DOT {
			spread = true
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
		expr, err := p.parseExpression(ast.Comma)
		if err != nil {
			return nil, err
		}
		args = append(args, ast.Argument{Expression: expr, Spread: spread})
		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseArrayExpression parses an array literal. Consecutive commas produce
// holes, stored as nil items.
func (p *Parser) parseArrayExpression() (ast.Expression, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	arr := &ast.ArrayExpression{}
	for p.tok().Kind != token.CLOSE_BRACKET {
		switch p.tok().Kind {
		case token.COMMA:
			arr.Items = append(arr.Items, nil)

		case token.DOT_DOT_DOT:
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, &ast.ArrayElement{Expression: expr, Spread: true})

		default:
			expr, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, &ast.ArrayElement{Expression: expr})
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
	arr.SetSpan(p.spanFrom(start))
	return arr, nil
}

// parseTemplateLiteral parses a template starting at a TEMPLATE_HEAD. After
// each interpolated expression the parser requires the closing brace and
// hands the cursor back to the scanner's template-span re-entry, which
// yields either a middle segment (loop again) or the tail (done).
func (p *Parser) parseTemplateLiteral() (ast.Expression, error) {
	start := p.tok().Span.Start
	tmpl := &ast.TemplateLiteral{Head: p.tok().Text}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for {
		expr, err := p.parseExpression(ast.Lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.CLOSE_BRACE); err != nil {
			return nil, err
		}
		if err := p.lex.NextTemplateSpan(); err != nil {
			return nil, err
		}
		tail := p.tok().Kind == token.TEMPLATE_TAIL
		tmpl.Parts = append(tmpl.Parts, ast.TemplatePart{Expression: expr, Text: p.tok().Text})
		if err := p.advance(); err != nil {
			return nil, err
		}
		if tail {
			break
		}
	}
	tmpl.SetSpan(p.spanFrom(start))
	return tmpl, nil
}

// parseParenthesized parses the ambiguous production opened by (. The
// contents are parsed as an expression list first; the token after the
// closing parenthesis decides what they were. => means this was an arrow
// parameter list and every expression reclassifies into a parameter;
// anything else means a parenthesised expression, where a rest element is
// an error and multiple expressions form a sequence.
func (p *Parser) parseParenthesized() (ast.Expression, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}

	var exprs []ast.Expression
	var rest *ast.Parameter

	for p.tok().Kind != token.CLOSE_PAREN {
		if p.tok().Kind == token.DOT_DOT_DOT {
			restStart := p.tok().Span.Start
			if err := p.advance(); err != nil {
				return nil, err
			}
			binding, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			rest = &ast.Parameter{Binding: binding, Rest: true}
			rest.SetSpan(p.spanFrom(restStart))
			if p.tok().Kind != token.CLOSE_PAREN {
				return nil, p.fatal(errors.SyntaxError, p.tok().Span,
					"A rest parameter must be the last parameter")
			}
		} else {
			expr, err := p.parseExpression(ast.Comma)
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
		}
		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}

	if p.tok().Kind == token.EQUALS_GREATER_THAN {
		var params []*ast.Parameter
		for _, expr := range exprs {
			binding, def, err := reclassifyWithDefault(expr)
			if err != nil {
				return nil, p.fatal(errors.InvalidBindingTarget, expr.Span(),
					"Invalid arrow function parameter")
			}
			param := &ast.Parameter{Binding: binding, Default: def}
			param.SetSpan(expr.Span())
			params = append(params, param)
		}
		if rest != nil {
			params = append(params, rest)
		}
		return p.parseArrowBody(start, params)
	}

	if rest != nil {
		return nil, p.fatal(errors.SyntaxError, rest.Span(),
			"Rest elements are only allowed in parameter lists")
	}

	if len(exprs) == 0 {
		return nil, p.fatal(errors.SyntaxError, p.spanFrom(start),
			"Unexpected empty parentheses")
	}

	if len(exprs) == 1 {
		return exprs[0], nil
	}

	seq := &ast.SequenceExpression{Expressions: exprs}
	seq.SetSpan(p.spanFrom(start))
	return seq, nil
}

// parseArrowBody parses the => and body of an arrow function whose
// parameters are already known.
func (p *Parser) parseArrowBody(start int, params []*ast.Parameter) (ast.Expression, error) {
	if err := p.eat(token.EQUALS_GREATER_THAN); err != nil {
		return nil, err
	}
	arrow := &ast.ArrowFunctionExpression{Parameters: params}
	if p.tok().Kind == token.OPEN_BRACE {
		body, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		arrow.BlockBody = body
	} else {
		body, err := p.parseExpression(ast.Comma)
		if err != nil {
			return nil, err
		}
		arrow.ExprBody = body
	}
	arrow.SetSpan(p.spanFrom(start))
	return arrow, nil
}

// parseParameters parses a full parameter list between parentheses. A rest
// parameter must be the trailing entry.
func (p *Parser) parseParameters() ([]*ast.Parameter, error) {
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	var params []*ast.Parameter
	for p.tok().Kind != token.CLOSE_PAREN {
		start := p.tok().Span.Start

		if p.tok().Kind == token.DOT_DOT_DOT {
			if err := p.advance(); err != nil {
				return nil, err
			}
			binding, err := p.parseBinding()
			if err != nil {
				return nil, err
			}
			param := &ast.Parameter{Binding: binding, Rest: true}
			param.SetSpan(p.spanFrom(start))
			params = append(params, param)
			if p.tok().Kind != token.CLOSE_PAREN {
				return nil, p.fatal(errors.SyntaxError, p.tok().Span,
					"A rest parameter must be the last parameter")
			}
			continue
		}

		binding, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		def, err := p.parseOptionalDefault()
		if err != nil {
			return nil, err
		}
		param := &ast.Parameter{Binding: binding, Default: def}
		param.SetSpan(p.spanFrom(start))
		params = append(params, param)

		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseOptionalDefault parses an optional = initializer.
func (p *Parser) parseOptionalDefault() (ast.Expression, error) {
	if p.tok().Kind != token.EQUALS {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseExpression(ast.Comma)
}

// parseFunctionExpression parses the expression form of function, with an
// optional generator marker and an optional name.
func (p *Parser) parseFunctionExpression() (ast.Expression, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	generator := false
	if p.tok().Kind == token.ASTERISK {
		generator = true
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	var name *ast.Identifier
	if p.tok().Kind == token.IDENT {
		var err error
		name, err = p.parseIdentifier()
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
	fn := &ast.FunctionExpression{Name: name, Generator: generator, Parameters: params, Body: body}
	fn.SetSpan(p.spanFrom(start))
	return fn, nil
}

// parseClassExpression parses the expression form of class.
func (p *Parser) parseClassExpression() (ast.Expression, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	var name *ast.Identifier
	if p.tok().Kind == token.IDENT {
		var err error
		name, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	extends, err := p.parseOptionalExtends()
	if err != nil {
		return nil, err
	}
	body, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	class := &ast.ClassExpression{Name: name, Extends: extends, Body: body}
	class.SetSpan(p.spanFrom(start))
	return class, nil
}

func (p *Parser) parseOptionalExtends() (ast.Expression, error) {
	if p.tok().Kind != token.EXTENDS {
		return nil, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p.parseExpression(ast.Comma)
}
