package parser

import (
	"testing"

	"github.com/jacobjonsson/packet/pkg/ast"
)

func TestImportForms(t *testing.T) {
	t.Run("bare import", func(t *testing.T) {
		program := parseProgram(t, `import "m";`)
		imp := program.Statements[0].(*ast.ImportDeclaration)
		if imp.Source.Value != "m" {
			t.Errorf("source = %q, want m", imp.Source.Value)
		}
		if imp.Default != nil || imp.Namespace != nil || len(imp.Specifiers) != 0 {
			t.Errorf("a bare import has no clause")
		}
	})

	t.Run("default import", func(t *testing.T) {
		program := parseProgram(t, `import d from "m";`)
		imp := program.Statements[0].(*ast.ImportDeclaration)
		if imp.Default == nil || imp.Default.Name != "d" {
			t.Errorf("default import should be d")
		}
	})

	t.Run("namespace import", func(t *testing.T) {
		program := parseProgram(t, `import * as ns from "m";`)
		imp := program.Statements[0].(*ast.ImportDeclaration)
		if imp.Namespace == nil || imp.Namespace.Name != "ns" {
			t.Errorf("namespace import should be ns")
		}
	})

	t.Run("default plus namespace", func(t *testing.T) {
		program := parseProgram(t, `import d, * as ns from "m";`)
		imp := program.Statements[0].(*ast.ImportDeclaration)
		if imp.Default == nil || imp.Namespace == nil {
			t.Errorf("both clauses should be present")
		}
	})

	t.Run("default plus specifiers with reserved word", func(t *testing.T) {
		program := parseProgram(t, `import d, { a as b, default as c } from "m";`)
		imp := program.Statements[0].(*ast.ImportDeclaration)
		if imp.Default == nil || imp.Default.Name != "d" {
			t.Fatalf("default import should be d")
		}
		if len(imp.Specifiers) != 2 {
			t.Fatalf("specifier count = %d, want 2", len(imp.Specifiers))
		}
		first := imp.Specifiers[0]
		if first.Imported.Name != "a" || first.Local.Name != "b" {
			t.Errorf("specifier 0 = %s as %s, want a as b", first.Imported.Name, first.Local.Name)
		}
		second := imp.Specifiers[1]
		if second.Imported.Name != "default" || second.Local.Name != "c" {
			t.Errorf("specifier 1 = %s as %s, want default as c", second.Imported.Name, second.Local.Name)
		}
		if imp.Source.Value != "m" {
			t.Errorf("source = %q, want m", imp.Source.Value)
		}
	})

	t.Run("reserved word without alias is fatal", func(t *testing.T) {
		parseError(t, `import { default } from "m";`)
	})

	t.Run("import expression is unsupported", func(t *testing.T) {
		parseError(t, `import("m");`)
	})
}

func TestExportForms(t *testing.T) {
	t.Run("export all", func(t *testing.T) {
		program := parseProgram(t, `export * from "m";`)
		exp := program.Statements[0].(*ast.ExportAllDeclaration)
		if exp.Source.Value != "m" {
			t.Errorf("source = %q, want m", exp.Source.Value)
		}
	})

	t.Run("export default expression", func(t *testing.T) {
		program := parseProgram(t, `export default a + b;`)
		exp := program.Statements[0].(*ast.ExportDefaultDeclaration)
		if _, ok := exp.Declaration.(*ast.BinaryExpression); !ok {
			t.Errorf("declaration is %T, want a binary expression", exp.Declaration)
		}
	})

	t.Run("export default anonymous function", func(t *testing.T) {
		program := parseProgram(t, `export default function() {}`)
		exp := program.Statements[0].(*ast.ExportDefaultDeclaration)
		fn, ok := exp.Declaration.(*ast.FunctionDeclaration)
		if !ok {
			t.Fatalf("declaration is %T, want a function declaration", exp.Declaration)
		}
		if fn.Name != nil {
			t.Errorf("the anonymous form has no name")
		}
	})

	t.Run("export default named class", func(t *testing.T) {
		program := parseProgram(t, `export default class A {}`)
		exp := program.Statements[0].(*ast.ExportDefaultDeclaration)
		class, ok := exp.Declaration.(*ast.ClassDeclaration)
		if !ok || class.Name == nil || class.Name.Name != "A" {
			t.Errorf("declaration should be class A")
		}
	})

	t.Run("export declaration", func(t *testing.T) {
		program := parseProgram(t, `export const a = 1;`)
		exp := program.Statements[0].(*ast.ExportNamedDeclaration)
		decl, ok := exp.Declaration.(*ast.VariableDeclaration)
		if !ok || decl.Kind != ast.VarConst {
			t.Errorf("declaration should be a const declaration")
		}
	})

	t.Run("export specifiers", func(t *testing.T) {
		program := parseProgram(t, `export { a, b as c };`)
		exp := program.Statements[0].(*ast.ExportNamedSpecifiers)
		if len(exp.Specifiers) != 2 {
			t.Fatalf("specifier count = %d, want 2", len(exp.Specifiers))
		}
		if exp.Specifiers[0].Local.Name != "a" || exp.Specifiers[0].Exported.Name != "a" {
			t.Errorf("specifier 0 should export a as a")
		}
		if exp.Specifiers[1].Local.Name != "b" || exp.Specifiers[1].Exported.Name != "c" {
			t.Errorf("specifier 1 should export b as c")
		}
		if exp.Source != nil {
			t.Errorf("no source clause was given")
		}
	})

	t.Run("re-export with reserved word", func(t *testing.T) {
		program := parseProgram(t, `export { default as x } from "m";`)
		exp := program.Statements[0].(*ast.ExportNamedSpecifiers)
		if exp.Specifiers[0].Local.Name != "default" || exp.Specifiers[0].Exported.Name != "x" {
			t.Errorf("specifier should re-export default as x")
		}
		if exp.Source == nil || exp.Source.Value != "m" {
			t.Errorf("source should be m")
		}
	})
}
