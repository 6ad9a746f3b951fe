package parser

import (
	"github.com/jacobjonsson/packet/internal/errors"
	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/token"
)

// parseImportDeclaration parses every import form:
//
//	import "source";
//	import def from "source";
//	import def, * as ns from "source";
//	import def, { a as b } from "source";
//	import * as ns from "source";
//	import { a, default as b } from "source";
func (p *Parser) parseImportDeclaration() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.tok().Kind == token.OPEN_PAREN {
		return nil, p.fatal(errors.SyntaxError, p.tok().Span,
			"Import expressions are not supported")
	}

	stmt := &ast.ImportDeclaration{}

	// A bare side-effect import has no clause at all.
	if p.tok().Kind == token.STRING {
		source, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Source = source
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil
	}

	switch p.tok().Kind {
	case token.ASTERISK:
		ns, err := p.parseNamespaceClause()
		if err != nil {
			return nil, err
		}
		stmt.Namespace = ns

	case token.OPEN_BRACE:
		specifiers, err := p.parseImportSpecifiers()
		if err != nil {
			return nil, err
		}
		stmt.Specifiers = specifiers

	case token.IDENT:
		def, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		stmt.Default = def
		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			switch p.tok().Kind {
			case token.ASTERISK:
				ns, err := p.parseNamespaceClause()
				if err != nil {
					return nil, err
				}
				stmt.Namespace = ns
			case token.OPEN_BRACE:
				specifiers, err := p.parseImportSpecifiers()
				if err != nil {
					return nil, err
				}
				stmt.Specifiers = specifiers
			default:
				return nil, p.unexpected()
			}
		}

	default:
		return nil, p.unexpected()
	}

	if err := p.eatContextual("from"); err != nil {
		return nil, err
	}
	source, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}
	stmt.Source = source
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseNamespaceClause parses * as ns.
func (p *Parser) parseNamespaceClause() (*ast.Identifier, error) {
	if err := p.eat(token.ASTERISK); err != nil {
		return nil, err
	}
	if err := p.eatContextual("as"); err != nil {
		return nil, err
	}
	return p.parseIdentifier()
}

// parseImportSpecifiers parses { imported [as local], ... }. The imported
// name may be a reserved word, which is what permits import { default as x }.
func (p *Parser) parseImportSpecifiers() ([]*ast.ImportSpecifier, error) {
	if err := p.eat(token.OPEN_BRACE); err != nil {
		return nil, err
	}
	var specifiers []*ast.ImportSpecifier
	for p.tok().Kind != token.CLOSE_BRACE {
		start := p.tok().Span.Start
		imported, err := p.parseIdentifierOrKeyword()
		if err != nil {
			return nil, err
		}
		local := imported
		if p.isContextual("as") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			local, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
		} else if imported.Name != "" && token.LookupIdent(imported.Name) != token.IDENT {
			// A reserved word can only be imported under an alias.
			return nil, p.fatal(errors.SyntaxError, imported.Span(),
				"The reserved word %q must be aliased with \"as\"", imported.Name)
		}
		spec := &ast.ImportSpecifier{Imported: imported, Local: local}
		spec.SetSpan(p.spanFrom(start))
		specifiers = append(specifiers, spec)

		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(token.CLOSE_BRACE); err != nil {
		return nil, err
	}
	return specifiers, nil
}

// parseExportDeclaration parses every export form:
//
//	export * from "source";
//	export default <function|class|expression>;
//	export { a, b as c } [from "source"];
//	export <var|let|const|function|class> declaration
func (p *Parser) parseExportDeclaration() (ast.Statement, error) {
	start := p.tok().Span.Start
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch p.tok().Kind {
	case token.ASTERISK:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.eatContextual("from"); err != nil {
			return nil, err
		}
		source, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		stmt := &ast.ExportAllDeclaration{Source: source}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil

	case token.DEFAULT:
		return p.parseExportDefault(start)

	case token.OPEN_BRACE:
		return p.parseExportSpecifiers(start)

	case token.VAR, token.LET, token.CONST:
		decl, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		stmt := &ast.ExportNamedDeclaration{Declaration: decl}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil

	case token.FUNCTION:
		decl, err := p.parseFunctionDeclaration(true)
		if err != nil {
			return nil, err
		}
		stmt := &ast.ExportNamedDeclaration{Declaration: decl}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil

	case token.CLASS:
		decl, err := p.parseClassDeclaration(true)
		if err != nil {
			return nil, err
		}
		stmt := &ast.ExportNamedDeclaration{Declaration: decl}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil

	default:
		return nil, p.unexpected()
	}
}

// parseExportDefault parses export default followed by a function
// declaration, a class declaration, or an expression at assignment
// precedence.
func (p *Parser) parseExportDefault(start int) (ast.Statement, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	stmt := &ast.ExportDefaultDeclaration{}
	switch p.tok().Kind {
	case token.FUNCTION:
		decl, err := p.parseFunctionDeclaration(false)
		if err != nil {
			return nil, err
		}
		stmt.Declaration = decl

	case token.CLASS:
		decl, err := p.parseClassDeclaration(false)
		if err != nil {
			return nil, err
		}
		stmt.Declaration = decl

	default:
		expr, err := p.parseExpression(ast.Comma)
		if err != nil {
			return nil, err
		}
		stmt.Declaration = expr
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseExportSpecifiers parses export { local [as exported], ... } with an
// optional from clause. The local name may be a reserved word, which is
// only meaningful when re-exporting: export { default as x } from "m".
func (p *Parser) parseExportSpecifiers(start int) (ast.Statement, error) {
	if err := p.eat(token.OPEN_BRACE); err != nil {
		return nil, err
	}

	stmt := &ast.ExportNamedSpecifiers{}
	for p.tok().Kind != token.CLOSE_BRACE {
		specStart := p.tok().Span.Start
		local, err := p.parseIdentifierOrKeyword()
		if err != nil {
			return nil, err
		}
		exported := local
		if p.isContextual("as") {
			if err := p.advance(); err != nil {
				return nil, err
			}
			exported, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
		}
		spec := &ast.ExportSpecifier{Local: local, Exported: exported}
		spec.SetSpan(p.spanFrom(specStart))
		stmt.Specifiers = append(stmt.Specifiers, spec)

		if p.tok().Kind == token.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.eat(token.CLOSE_BRACE); err != nil {
		return nil, err
	}

	if p.isContextual("from") {
		if err := p.advance(); err != nil {
			return nil, err
		}
		source, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		stmt.Source = source
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}
