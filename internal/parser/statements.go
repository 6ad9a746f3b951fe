package parser

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/token"
)

// parseStatement dispatches on the first token of a statement.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.tok().Kind {
	case token.OPEN_BRACE:
		return p.parseBlockStatement()

	case token.SEMICOLON:
		stmt := &ast.EmptyStatement{}
		stmt.SetSpan(p.tok().Span)
		return stmt, p.advance()

	case token.VAR, token.LET, token.CONST:
		return p.parseVariableDeclaration()

	case token.FUNCTION:
		return p.parseFunctionDeclaration(true)

	case token.CLASS:
		return p.parseClassDeclaration(true)

	case token.IF:
		return p.parseIfStatement()

	case token.WHILE:
		return p.parseWhileStatement()

	case token.DO:
		return p.parseDoWhileStatement()

	case token.FOR:
		return p.parseForStatement()

	case token.SWITCH:
		return p.parseSwitchStatement()

	case token.WITH:
		return p.parseWithStatement()

	case token.CONTINUE:
		return p.parseContinueStatement()

	case token.BREAK:
		return p.parseBreakStatement()

	case token.RETURN:
		return p.parseReturnStatement()

	case token.THROW:
		return p.parseThrowStatement()

	case token.TRY:
		return p.parseTryStatement()

	case token.DEBUGGER:
		start := p.tok().Span.Start
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		stmt := &ast.DebuggerStatement{}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil

	case token.IMPORT:
		return p.parseImportDeclaration()

	case token.EXPORT:
		return p.parseExportDeclaration()

	case token.IDENT:
		return p.parseIdentifierStatement()

	default:
		return p.parseExpressionStatement()
	}
}

// parseIdentifierStatement disambiguates the statements that begin with an
// identifier: a labeled statement when a colon follows, an arrow function
// when => follows, and otherwise an ordinary expression statement.
func (p *Parser) parseIdentifierStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	ident, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if p.tok().Kind == token.COLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt := &ast.LabeledStatement{Label: ident, Body: body}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil
	}

	var expr ast.Expression
	if p.tok().Kind == token.EQUALS_GREATER_THAN {
		param := &ast.Parameter{Binding: ident}
		param.SetSpan(ident.Span())
		expr, err = p.parseArrowBody(start, []*ast.Parameter{param})
	} else {
		expr, err = p.parseSuffix(ast.Lowest, ident)
	}
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expression: expr}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	expr, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt := &ast.ExpressionStatement{Expression: expr}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseBlockStatement parses { statements }.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	start := p.tok().Span.Start
	if err := p.eat(token.OPEN_BRACE); err != nil {
		return nil, err
	}
	block := &ast.BlockStatement{}
	for p.tok().Kind != token.CLOSE_BRACE {
		if p.tok().Kind == token.EOF {
			return nil, p.fatal(errors.SyntaxError, p.tok().Span, "Expected \"}\" but found end of file")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if err := p.eat(token.CLOSE_BRACE); err != nil {
		return nil, err
	}
	block.SetSpan(p.spanFrom(start))
	return block, nil
}

// parseVariableDeclaration parses var, let, or const with one or more
// declarators. Every const declarator must carry an initializer.
func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	start := p.tok().Span.Start
	kind := ast.VarVar
	switch p.tok().Kind {
	case token.LET:
		kind = ast.VarLet
	case token.CONST:
		kind = ast.VarConst
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	decl := &ast.VariableDeclaration{Kind: kind}
	for {
		declStart := p.tok().Span.Start
		binding, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		init, err := p.parseOptionalDefault()
		if err != nil {
			return nil, err
		}
		if kind == ast.VarConst && init == nil {
			return nil, p.fatal(errors.SyntaxError, p.spanFrom(declStart),
				"A const declaration must have an initializer")
		}
		declarator := &ast.VariableDeclarator{Binding: binding, Init: init}
		declarator.SetSpan(p.spanFrom(declStart))
		decl.Declarators = append(decl.Declarators, declarator)

		if p.tok().Kind != token.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	decl.SetSpan(p.spanFrom(start))
	return decl, nil
}

// parseFunctionDeclaration parses a function statement. When requireName
// is false the name may be omitted, which only export default allows.
func (p *Parser) parseFunctionDeclaration(requireName bool) (*ast.FunctionDeclaration, error) {
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
	if requireName || p.tok().Kind == token.IDENT {
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
	fn := &ast.FunctionDeclaration{Name: name, Generator: generator, Parameters: params, Body: body}
	fn.SetSpan(p.spanFrom(start))
	return fn, nil
}

// parseClassDeclaration parses a class statement. When requireName is false
// the name may be omitted, which only export default allows.
func (p *Parser) parseClassDeclaration(requireName bool) (*ast.ClassDeclaration, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	var name *ast.Identifier
	if requireName || p.tok().Kind == token.IDENT {
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
	class := &ast.ClassDeclaration{Name: name, Extends: extends, Body: body}
	class.SetSpan(p.spanFrom(start))
	return class, nil
}

// parseIfStatement parses if with an optional else. A function declaration
// directly as a branch is rejected in strict mode.
func (p *Parser) parseIfStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}

	consequent, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, ok := consequent.(*ast.FunctionDeclaration); ok {
		return nil, p.fatal(errors.SyntaxError, consequent.Span(),
			"A function declaration is not allowed as the body of an if statement")
	}

	var alternate ast.Statement
	if p.tok().Kind == token.ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		alternate, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
		if _, ok := alternate.(*ast.FunctionDeclaration); ok {
			return nil, p.fatal(errors.SyntaxError, alternate.Span(),
				"A function declaration is not allowed as the body of an if statement")
		}
	}

	stmt := &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.WhileStatement{Test: test, Body: body}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.WHILE); err != nil {
		return nil, err
	}
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt := &ast.DoWhileStatement{Test: test, Body: body}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseForStatement parses the three for forms. The init clause is parsed
// with the in operator disabled so that for (x in y) is recognised from the
// in token rather than swallowed into the init expression.
func (p *Parser) parseForStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}

	p.allowIn = false
	var init ast.Statement
	switch p.tok().Kind {
	case token.SEMICOLON:
		if err := p.advance(); err != nil {
			p.allowIn = true
			return nil, err
		}

	case token.VAR, token.LET, token.CONST:
		decl, err := p.parseForVariableDeclaration()
		if err != nil {
			p.allowIn = true
			return nil, err
		}
		init = decl

	default:
		exprStart := p.tok().Span.Start
		expr, err := p.parseExpression(ast.Lowest)
		if err != nil {
			p.allowIn = true
			return nil, err
		}
		exprStmt := &ast.ExpressionStatement{Expression: expr}
		exprStmt.SetSpan(p.spanFrom(exprStart))
		init = exprStmt
		if p.tok().Kind == token.SEMICOLON {
			if err := p.advance(); err != nil {
				p.allowIn = true
				return nil, err
			}
		}
	}
	p.allowIn = true

	if p.isContextual("of") {
		return p.parseForInOf(start, init, false)
	}
	if p.tok().Kind == token.IN {
		return p.parseForInOf(start, init, true)
	}

	var test ast.Expression
	if p.tok().Kind == token.SEMICOLON {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		var err error
		test, err = p.parseExpression(ast.Lowest)
		if err != nil {
			return nil, err
		}
		if err := p.eat(token.SEMICOLON); err != nil {
			return nil, err
		}
	}

	var update ast.Expression
	if p.tok().Kind == token.CLOSE_PAREN {
		if err := p.advance(); err != nil {
			return nil, err
		}
	} else {
		var err error
		update, err = p.parseExpression(ast.Lowest)
		if err != nil {
			return nil, err
		}
		if err := p.eat(token.CLOSE_PAREN); err != nil {
			return nil, err
		}
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseForVariableDeclaration parses a declaration in for-init position. It
// mirrors parseVariableDeclaration, but the const-initializer check and the
// consumption of the semicolon happen only when a semicolon follows (the
// three-clause form), since for (const x of xs) is valid without an
// initializer.
func (p *Parser) parseForVariableDeclaration() (*ast.VariableDeclaration, error) {
	start := p.tok().Span.Start
	kind := ast.VarVar
	switch p.tok().Kind {
	case token.LET:
		kind = ast.VarLet
	case token.CONST:
		kind = ast.VarConst
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	decl := &ast.VariableDeclaration{Kind: kind}
	for {
		declStart := p.tok().Span.Start
		binding, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		init, err := p.parseOptionalDefault()
		if err != nil {
			return nil, err
		}
		declarator := &ast.VariableDeclarator{Binding: binding, Init: init}
		declarator.SetSpan(p.spanFrom(declStart))
		decl.Declarators = append(decl.Declarators, declarator)

		if p.tok().Kind != token.COMMA {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	decl.SetSpan(p.spanFrom(start))
	if p.tok().Kind == token.SEMICOLON {
		// The classic three-clause form: the const check applies here.
		if decl.Kind == ast.VarConst {
			for _, d := range decl.Declarators {
				if d.Init == nil {
					return nil, p.fatal(errors.SyntaxError, d.Span(),
						"A const declaration must have an initializer")
				}
			}
		}
		return decl, p.advance()
	}
	return decl, nil
}

// parseForInOf finishes a for-in or for-of once the in/of token is current.
// The left side must be a single declarator with no initializer; anything
// else is reported rather than silently accepted.
func (p *Parser) parseForInOf(start int, init ast.Statement, isIn bool) (ast.Statement, error) {
	if init == nil {
		return nil, p.unexpected()
	}
	if decl, ok := init.(*ast.VariableDeclaration); ok {
		if len(decl.Declarators) != 1 {
			return nil, p.fatal(errors.SyntaxError, decl.Span(),
				"The variable declaration of a for-in or for-of loop must declare exactly one binding")
		}
		if decl.Declarators[0].Init != nil {
			return nil, p.fatal(errors.SyntaxError, decl.Declarators[0].Span(),
				"The variable declaration of a for-in or for-of loop cannot have an initializer")
		}
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if isIn {
		stmt := &ast.ForInStatement{Left: init, Right: right, Body: body}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil
	}
	stmt := &ast.ForOfStatement{Left: init, Right: right, Body: body}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseSwitchStatement parses switch. Each case clause collects statements
// until the next case, default, or closing brace. A second default clause
// is fatal.
func (p *Parser) parseSwitchStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	discriminant, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	if err := p.eat(token.OPEN_BRACE); err != nil {
		return nil, err
	}

	stmt := &ast.SwitchStatement{Discriminant: discriminant}
	foundDefault := false
	for p.tok().Kind != token.CLOSE_BRACE {
		caseStart := p.tok().Span.Start
		clause := &ast.SwitchCase{}

		if p.tok().Kind == token.DEFAULT {
			if foundDefault {
				return nil, p.fatal(errors.SyntaxError, p.tok().Span,
					"Multiple default clauses are not allowed")
			}
			foundDefault = true
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.eat(token.COLON); err != nil {
				return nil, err
			}
		} else {
			if err := p.eat(token.CASE); err != nil {
				return nil, err
			}
			clause.Test, err = p.parseExpression(ast.Lowest)
			if err != nil {
				return nil, err
			}
			if err := p.eat(token.COLON); err != nil {
				return nil, err
			}
		}

		for {
			kind := p.tok().Kind
			if kind == token.CLOSE_BRACE || kind == token.CASE || kind == token.DEFAULT {
				break
			}
			if kind == token.EOF {
				return nil, p.fatal(errors.SyntaxError, p.tok().Span, "Expected \"}\" but found end of file")
			}
			inner, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			clause.Consequent = append(clause.Consequent, inner)
		}

		clause.SetSpan(p.spanFrom(caseStart))
		stmt.Cases = append(stmt.Cases, clause)
	}

	if err := p.eat(token.CLOSE_BRACE); err != nil {
		return nil, err
	}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseWithStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.eat(token.OPEN_PAREN); err != nil {
		return nil, err
	}
	object, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.eat(token.CLOSE_PAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.WithStatement{Object: object, Body: body}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseContinueStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	var label *ast.Identifier
	if p.tok().Kind == token.IDENT {
		var err error
		label, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt := &ast.ContinueStatement{Label: label}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseBreakStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	var label *ast.Identifier
	if p.tok().Kind == token.IDENT {
		var err error
		label, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt := &ast.BreakStatement{Label: label}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}

	stmt := &ast.ReturnStatement{}
	switch p.tok().Kind {
	case token.SEMICOLON, token.CLOSE_BRACE, token.EOF:
	default:
		var err error
		stmt.Expression, err = p.parseExpression(ast.Lowest)
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	argument, err := p.parseExpression(ast.Lowest)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt := &ast.ThrowStatement{Argument: argument}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseTryStatement parses try. At least one of catch and finally must
// follow the block.
func (p *Parser) parseTryStatement() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}
	block, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.TryStatement{Block: block}
	if p.tok().Kind != token.CATCH && p.tok().Kind != token.FINALLY {
		return nil, p.fatal(errors.SyntaxError, p.tok().Span,
			"A try statement must have a catch or finally clause")
	}

	if p.tok().Kind == token.CATCH {
		catchStart := p.tok().Span.Start
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.eat(token.OPEN_PAREN); err != nil {
			return nil, err
		}
		param, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		if err := p.eat(token.CLOSE_PAREN); err != nil {
			return nil, err
		}
		body, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		handler := &ast.CatchClause{Param: param, Body: body}
		handler.SetSpan(p.spanFrom(catchStart))
		stmt.Handler = handler
	}

	if p.tok().Kind == token.FINALLY {
		if err := p.advance(); err != nil {
			return nil, err
		}
		stmt.Finalizer, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}
