// Package printer serialises a syntax tree back to JavaScript source text.
//
// Parenthesisation is driven by the same precedence ladder the parser uses:
// a subexpression is wrapped exactly when the context's level is at least
// the subexpression's own operator level, with the left and right operand
// levels shifted by one step according to the operator's associativity.
package printer

import (
	"math"
	"strconv"
	"strings"

	"github.com/jacobjonsson/packet/pkg/ast"
)

// Printer accumulates output text. A printer is single-use.
type Printer struct {
	text strings.Builder

	// statementStart is the output length at the start of the current
	// statement. A function or object expression that would begin a
	// statement is wrapped in parentheses so it does not parse back as a
	// declaration or a block.
	statementStart int
}

// New creates an empty printer.
func New() *Printer {
	return &Printer{}
}

// Print serialises an entire program.
func Print(program *ast.Program) string {
	return New().PrintProgram(program)
}

// PrintProgram serialises the program and returns the accumulated text.
func (p *Printer) PrintProgram(program *ast.Program) string {
	for _, stmt := range program.Statements {
		p.printStatement(stmt)
	}
	return p.text.String()
}

func (p *Printer) print(text string) {
	p.text.WriteString(text)
}

func (p *Printer) printSpace() {
	p.print(" ")
}

func (p *Printer) printNewline() {
	p.print("\n")
}

func (p *Printer) printSemicolonAfterStatement() {
	p.print(";\n")
}

func (p *Printer) atStatementStart() bool {
	return p.text.Len() == p.statementStart
}

/* -------------------------------- Statements ------------------------------- */

func (p *Printer) printStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.EmptyStatement:
		p.print(";")

	case *ast.DebuggerStatement:
		p.print("debugger")
		p.printSemicolonAfterStatement()

	case *ast.ExpressionStatement:
		p.statementStart = p.text.Len()
		p.printExpression(s.Expression, ast.Lowest)
		p.printSemicolonAfterStatement()

	case *ast.BlockStatement:
		p.printBlock(s)

	case *ast.VariableDeclaration:
		p.printVariableDeclaration(s)
		p.printSemicolonAfterStatement()

	case *ast.FunctionDeclaration:
		p.printFunctionDeclaration(s)

	case *ast.ClassDeclaration:
		p.printClassDeclaration(s)

	case *ast.ReturnStatement:
		p.print("return")
		if s.Expression != nil {
			p.print(" ")
			p.printExpression(s.Expression, ast.Lowest)
		}
		p.printSemicolonAfterStatement()

	case *ast.IfStatement:
		p.print("if")
		p.printSpace()
		p.print("(")
		p.printExpression(s.Test, ast.Lowest)
		p.print(")")
		p.printSpace()
		p.printStatement(s.Consequent)
		if s.Alternate != nil {
			p.printSpace()
			p.print("else")
			p.printSpace()
			p.printStatement(s.Alternate)
		}

	case *ast.WhileStatement:
		p.print("while")
		p.printSpace()
		p.print("(")
		p.printExpression(s.Test, ast.Lowest)
		p.print(")")
		p.printSpace()
		p.printStatement(s.Body)

	case *ast.DoWhileStatement:
		p.print("do")
		p.printSpace()
		p.printStatement(s.Body)
		p.printSpace()
		p.print("while")
		p.printSpace()
		p.print("(")
		p.printExpression(s.Test, ast.Lowest)
		p.print(")")
		p.printSemicolonAfterStatement()

	case *ast.ForStatement:
		p.print("for")
		p.printSpace()
		p.print("(")
		if s.Init != nil {
			p.printForInit(s.Init)
		}
		p.print(";")
		p.printSpace()
		if s.Test != nil {
			p.printExpression(s.Test, ast.Lowest)
		}
		p.print(";")
		p.printSpace()
		if s.Update != nil {
			p.printExpression(s.Update, ast.Lowest)
		}
		p.print(")")
		p.printSpace()
		p.printStatement(s.Body)

	case *ast.ForInStatement:
		p.print("for")
		p.printSpace()
		p.print("(")
		p.printForInit(s.Left)
		p.print(" in ")
		p.printExpression(s.Right, ast.Lowest)
		p.print(")")
		p.printSpace()
		p.printStatement(s.Body)

	case *ast.ForOfStatement:
		p.print("for")
		p.printSpace()
		p.print("(")
		p.printForInit(s.Left)
		p.print(" of ")
		p.printExpression(s.Right, ast.Lowest)
		p.print(")")
		p.printSpace()
		p.printStatement(s.Body)

	case *ast.SwitchStatement:
		p.printSwitch(s)

	case *ast.LabeledStatement:
		p.print(s.Label.Name)
		p.print(":")
		p.printSpace()
		p.printStatement(s.Body)

	case *ast.ContinueStatement:
		p.print("continue")
		if s.Label != nil {
			p.print(" ")
			p.print(s.Label.Name)
		}
		p.printSemicolonAfterStatement()

	case *ast.BreakStatement:
		p.print("break")
		if s.Label != nil {
			p.print(" ")
			p.print(s.Label.Name)
		}
		p.printSemicolonAfterStatement()

	case *ast.ThrowStatement:
		p.print("throw ")
		p.printExpression(s.Argument, ast.Lowest)
		p.printSemicolonAfterStatement()

	case *ast.TryStatement:
		p.print("try")
		p.printSpace()
		p.printBlock(s.Block)
		if s.Handler != nil {
			p.printSpace()
			p.print("catch")
			p.printSpace()
			p.print("(")
			p.printBinding(s.Handler.Param)
			p.print(")")
			p.printSpace()
			p.printBlock(s.Handler.Body)
		}
		if s.Finalizer != nil {
			p.printSpace()
			p.print("finally")
			p.printSpace()
			p.printBlock(s.Finalizer)
		}

	case *ast.WithStatement:
		p.print("with")
		p.printSpace()
		p.print("(")
		p.printExpression(s.Object, ast.Lowest)
		p.print(")")
		p.printSpace()
		p.printStatement(s.Body)

	case *ast.ImportDeclaration:
		p.printImport(s)

	case *ast.ExportAllDeclaration:
		p.print("export * from ")
		p.printStringLiteral(s.Source)
		p.printSemicolonAfterStatement()

	case *ast.ExportNamedDeclaration:
		p.print("export ")
		p.printStatement(s.Declaration)

	case *ast.ExportNamedSpecifiers:
		p.printExportSpecifiers(s)

	case *ast.ExportDefaultDeclaration:
		p.print("export default ")
		switch d := s.Declaration.(type) {
		case *ast.FunctionDeclaration:
			p.printFunctionDeclaration(d)
		case *ast.ClassDeclaration:
			p.printClassDeclaration(d)
		case ast.Expression:
			p.printExpression(d, ast.Comma)
			p.printSemicolonAfterStatement()
		}
	}
}

// printForInit prints the init clause of a for statement, which never
// carries its own terminating semicolon.
func (p *Printer) printForInit(init ast.Statement) {
	switch s := init.(type) {
	case *ast.ExpressionStatement:
		p.printExpression(s.Expression, ast.Lowest)
	case *ast.VariableDeclaration:
		p.printVariableDeclaration(s)
	}
}

func (p *Printer) printVariableDeclaration(decl *ast.VariableDeclaration) {
	p.print(decl.Kind.Text())
	p.printSpace()
	for i, d := range decl.Declarators {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		p.printBinding(d.Binding)
		if d.Init != nil {
			p.printSpace()
			p.print("=")
			p.printSpace()
			p.printExpression(d.Init, ast.Comma)
		}
	}
}

func (p *Printer) printBlock(block *ast.BlockStatement) {
	if len(block.Statements) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.printSpace()
	for _, stmt := range block.Statements {
		p.printStatement(stmt)
	}
	p.printSpace()
	p.print("}")
}

func (p *Printer) printSwitch(s *ast.SwitchStatement) {
	p.print("switch")
	p.printSpace()
	p.print("(")
	p.printExpression(s.Discriminant, ast.Lowest)
	p.print(")")
	p.printSpace()
	p.print("{")
	if len(s.Cases) == 0 {
		p.print("}")
		return
	}
	p.printSpace()
	for i, clause := range s.Cases {
		if i != 0 {
			p.printSpace()
		}
		if clause.Test != nil {
			p.print("case ")
			p.printExpression(clause.Test, ast.LogicalAnd)
			p.print(":")
		} else {
			p.print("default:")
		}
		p.printSpace()
		for _, stmt := range clause.Consequent {
			p.printStatement(stmt)
		}
	}
	p.printSpace()
	p.print("}")
}

func (p *Printer) printImport(s *ast.ImportDeclaration) {
	p.print("import")
	p.printSpace()

	if s.Default != nil {
		p.print(s.Default.Name)
	}

	if s.Namespace != nil {
		if s.Default != nil {
			p.print(",")
			p.printSpace()
		}
		p.print("*")
		p.printSpace()
		p.print("as ")
		p.print(s.Namespace.Name)
	} else if len(s.Specifiers) > 0 {
		if s.Default != nil {
			p.print(",")
			p.printSpace()
		}
		p.print("{")
		p.printSpace()
		for i, spec := range s.Specifiers {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.print(spec.Imported.Name)
			if spec.Imported.Name != spec.Local.Name {
				p.print(" as ")
				p.print(spec.Local.Name)
			}
		}
		p.printSpace()
		p.print("}")
	}

	if s.Default != nil || s.Namespace != nil || len(s.Specifiers) > 0 {
		p.print(" from")
		p.printSpace()
	}
	p.printStringLiteral(s.Source)
	p.printSemicolonAfterStatement()
}

func (p *Printer) printExportSpecifiers(s *ast.ExportNamedSpecifiers) {
	p.print("export")
	p.printSpace()
	p.print("{")
	if len(s.Specifiers) > 0 {
		p.printSpace()
	}
	for i, spec := range s.Specifiers {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		p.print(spec.Local.Name)
		if spec.Local.Name != spec.Exported.Name {
			p.print(" as ")
			p.print(spec.Exported.Name)
		}
	}
	if len(s.Specifiers) > 0 {
		p.printSpace()
	}
	p.print("}")
	if s.Source != nil {
		p.printSpace()
		p.print("from")
		p.printSpace()
		p.printStringLiteral(s.Source)
	}
	p.printSemicolonAfterStatement()
}

func (p *Printer) printFunctionDeclaration(fn *ast.FunctionDeclaration) {
	p.print("function")
	if fn.Generator {
		p.print("*")
	}
	if fn.Name != nil {
		p.print(" ")
		p.print(fn.Name.Name)
	}
	p.print("(")
	p.printParameters(fn.Parameters)
	p.print(")")
	p.printSpace()
	p.printBlock(fn.Body)
}

func (p *Printer) printClassDeclaration(class *ast.ClassDeclaration) {
	p.print("class")
	if class.Name != nil {
		p.print(" ")
		p.print(class.Name.Name)
	}
	p.printSpace()
	if class.Extends != nil {
		p.print("extends ")
		p.printExpression(class.Extends, ast.Comma)
		p.printSpace()
	}
	p.printClassBody(class.Body)
}

func (p *Printer) printClassBody(members []ast.ClassMember) {
	if len(members) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.printSpace()
	for i, member := range members {
		if i != 0 {
			p.printNewline()
		}
		switch m := member.(type) {
		case *ast.ClassConstructor:
			if m.IsStatic {
				p.print("static ")
			}
			p.print("constructor(")
			p.printParameters(m.Parameters)
			p.print(")")
			p.printSpace()
			p.printBlock(m.Body)

		case *ast.ClassMethod:
			if m.IsStatic {
				p.print("static ")
			}
			switch m.Kind {
			case ast.MethodGet:
				p.print("get ")
			case ast.MethodSet:
				p.print("set ")
			}
			p.printPropertyKey(m.Key)
			p.print("(")
			p.printParameters(m.Parameters)
			p.print(")")
			p.printSpace()
			p.printBlock(m.Body)
		}
	}
	p.printSpace()
	p.print("}")
}

/* ------------------------------- Expressions ------------------------------- */

func (p *Printer) printExpression(expr ast.Expression, prec ast.Precedence) {
	switch e := expr.(type) {
	case *ast.NullLiteral:
		p.print("null")

	case *ast.BooleanLiteral:
		if e.Value {
			p.print("true")
		} else {
			p.print("false")
		}

	case *ast.NumericLiteral:
		p.print(formatNumber(e.Value))

	case *ast.BigIntLiteral:
		p.print(e.Value)
		p.print("n")

	case *ast.StringLiteral:
		p.printStringLiteral(e)

	case *ast.RegexpLiteral:
		p.print(e.Value)

	case *ast.TemplateLiteral:
		p.print("`")
		p.print(e.Head)
		for _, part := range e.Parts {
			p.print("${")
			p.printExpression(part.Expression, ast.Comma)
			p.print("}")
			p.print(part.Text)
		}
		p.print("`")

	case *ast.Identifier:
		p.print(e.Name)

	case *ast.ThisExpression:
		p.print("this")

	case *ast.SuperExpression:
		p.print("super")

	case *ast.ArrayExpression:
		p.print("[")
		for i, item := range e.Items {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			if item == nil {
				continue
			}
			if item.Spread {
				p.print("...")
				p.printExpression(item.Expression, ast.Comma)
			} else {
				p.printExpression(item.Expression, ast.Comma)
			}
		}
		p.print("]")

	case *ast.ObjectExpression:
		wrap := p.atStatementStart()
		if wrap {
			p.print("(")
		}
		p.print("{")
		for i, member := range e.Properties {
			if i == 0 {
				p.printSpace()
			} else {
				p.print(",")
				p.printSpace()
			}
			p.printObjectMember(member)
			if i == len(e.Properties)-1 {
				p.printSpace()
			}
		}
		p.print("}")
		if wrap {
			p.print(")")
		}

	case *ast.UnaryExpression:
		wrap := prec >= ast.Prefix
		if wrap {
			p.print("(")
		}
		p.print(e.Op.Text())
		if e.Op.IsKeyword() {
			p.print(" ")
		}
		p.printExpression(e.Argument, ast.Prefix.Lower())
		if wrap {
			p.print(")")
		}

	case *ast.UpdateExpression:
		if e.Op.IsPrefix() {
			p.print(e.Op.Text())
		}
		p.printExpression(e.Argument, ast.Prefix)
		if !e.Op.IsPrefix() {
			p.print(e.Op.Text())
		}

	case *ast.BinaryExpression:
		opPrec := e.Op.Precedence()
		wrap := prec >= opPrec
		if wrap {
			p.print("(")
		}
		leftPrec := opPrec.Lower()
		rightPrec := opPrec
		if e.Op.IsRightAssociative() {
			leftPrec = opPrec
			rightPrec = opPrec.Lower()
		}
		p.printExpression(e.Left, leftPrec)
		if e.Op.IsKeyword() {
			p.print(" ")
			p.print(e.Op.Text())
			p.print(" ")
		} else {
			p.printSpace()
			p.print(e.Op.Text())
			p.printSpace()
		}
		p.printExpression(e.Right, rightPrec)
		if wrap {
			p.print(")")
		}

	case *ast.LogicalExpression:
		opPrec := e.Op.Precedence()
		wrap := prec >= opPrec
		if wrap {
			p.print("(")
		}
		p.printExpression(e.Left, opPrec.Lower())
		p.printSpace()
		p.print(e.Op.Text())
		p.printSpace()
		p.printExpression(e.Right, opPrec)
		if wrap {
			p.print(")")
		}

	case *ast.AssignmentExpression:
		// Wrapped when the context binds at Assign or tighter, and when an
		// object pattern at statement start would parse back as a block.
		wrap := prec >= ast.Assign
		if p.atStatementStart() {
			if _, ok := e.Binding.(*ast.ObjectBinding); ok {
				wrap = true
			}
			if _, ok := e.Expr.(*ast.ObjectExpression); ok {
				wrap = true
			}
		}
		if wrap {
			p.print("(")
		}
		if e.Binding != nil {
			p.printBinding(e.Binding)
		} else {
			p.printExpression(e.Expr, ast.Comma)
		}
		p.printSpace()
		p.print(e.Op.Text())
		p.printSpace()
		p.printExpression(e.Right, ast.Assign.Lower())
		if wrap {
			p.print(")")
		}

	case *ast.ConditionalExpression:
		wrap := prec >= ast.Conditional
		if wrap {
			p.print("(")
		}
		p.printExpression(e.Test, ast.Conditional)
		p.print(" ? ")
		p.printExpression(e.Consequent, ast.Yield)
		p.print(" : ")
		p.printExpression(e.Alternate, ast.Yield)
		if wrap {
			p.print(")")
		}

	case *ast.SequenceExpression:
		wrap := prec >= ast.Comma
		if wrap {
			p.print("(")
		}
		for i, item := range e.Expressions {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.printExpression(item, ast.Comma)
		}
		if wrap {
			p.print(")")
		}

	case *ast.MemberExpression:
		p.printExpression(e.Object, ast.Postfix)
		if e.Computed {
			p.print("[")
			p.printExpression(e.Property, ast.Lowest)
			p.print("]")
		} else {
			p.print(".")
			p.printExpression(e.Property, ast.Lowest)
		}

	case *ast.CallExpression:
		p.printExpression(e.Callee, ast.Postfix)
		p.print("(")
		p.printArguments(e.Arguments)
		p.print(")")

	case *ast.NewExpression:
		p.print("new ")
		p.printExpression(e.Callee, ast.New)
		p.print("(")
		p.printArguments(e.Arguments)
		p.print(")")

	case *ast.FunctionExpression:
		wrap := p.atStatementStart()
		if wrap {
			p.print("(")
		}
		p.print("function")
		if e.Generator {
			p.print("*")
		}
		if e.Name != nil {
			p.printSpace()
			p.print(e.Name.Name)
		}
		p.print("(")
		p.printParameters(e.Parameters)
		p.print(")")
		p.printSpace()
		p.printBlock(e.Body)
		if wrap {
			p.print(")")
		}

	case *ast.ArrowFunctionExpression:
		p.print("(")
		p.printParameters(e.Parameters)
		p.print(")")
		p.printSpace()
		p.print("=>")
		p.printSpace()
		if e.BlockBody != nil {
			p.printBlock(e.BlockBody)
		} else {
			p.printExpression(e.ExprBody, ast.Comma)
		}

	case *ast.ClassExpression:
		p.print("class")
		if e.Name != nil {
			p.print(" ")
			p.print(e.Name.Name)
		}
		p.printSpace()
		if e.Extends != nil {
			p.print("extends ")
			p.printExpression(e.Extends, ast.Comma)
			p.printSpace()
		}
		p.printClassBody(e.Body)
	}
}

func (p *Printer) printArguments(args []ast.Argument) {
	for i, arg := range args {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		if arg.Spread {
			p.print("...")
		}
		p.printExpression(arg.Expression, ast.Comma)
	}
}

func (p *Printer) printObjectMember(member ast.ObjectMember) {
	switch m := member.(type) {
	case *ast.SpreadProperty:
		p.print("...")
		p.printExpression(m.Value, ast.Comma)

	case *ast.ShorthandProperty:
		p.print(m.Name.Name)

	case *ast.Property:
		p.printPropertyKey(m.Key)
		p.print(":")
		p.printSpace()
		p.printExpression(m.Value, ast.Comma)

	case *ast.ObjectMethod:
		switch m.Kind {
		case ast.MethodGet:
			p.print("get ")
		case ast.MethodSet:
			p.print("set ")
		}
		p.printPropertyKey(m.Key)
		p.print("(")
		p.printParameters(m.Parameters)
		p.print(")")
		p.printSpace()
		p.printBlock(m.Body)
	}
}

func (p *Printer) printPropertyKey(key ast.PropertyKey) {
	switch k := key.(type) {
	case *ast.Identifier:
		p.print(k.Name)
	case *ast.StringLiteral:
		p.printStringLiteral(k)
	case *ast.NumericLiteral:
		p.print(formatNumber(k.Value))
	case *ast.ComputedKey:
		p.print("[")
		p.printExpression(k.Expression, ast.Comma)
		p.print("]")
	}
}

func (p *Printer) printParameters(params []*ast.Parameter) {
	for i, param := range params {
		if i != 0 {
			p.print(",")
			p.printSpace()
		}
		if param.Rest {
			p.print("...")
		}
		p.printBinding(param.Binding)
		if param.Default != nil {
			p.printSpace()
			p.print("=")
			p.printSpace()
			p.printExpression(param.Default, ast.Comma)
		}
	}
}

/* --------------------------------- Bindings -------------------------------- */

func (p *Printer) printBinding(binding ast.Binding) {
	switch b := binding.(type) {
	case *ast.Identifier:
		p.print(b.Name)

	case *ast.ArrayBinding:
		if len(b.Items) == 0 {
			p.print("[]")
			return
		}
		p.print("[")
		for i, item := range b.Items {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			if item == nil {
				continue
			}
			if item.Rest {
				p.print("...")
				p.printBinding(item.Binding)
				continue
			}
			p.printBinding(item.Binding)
			if item.Default != nil {
				p.printSpace()
				p.print("=")
				p.printSpace()
				p.printExpression(item.Default, ast.Comma)
			}
		}
		p.print("]")

	case *ast.ObjectBinding:
		if len(b.Properties) == 0 {
			p.print("{}")
			return
		}
		p.print("{")
		p.printSpace()
		for i, member := range b.Properties {
			if i != 0 {
				p.print(",")
				p.printSpace()
			}
			p.printObjectBindingMember(member)
		}
		p.printSpace()
		p.print("}")
	}
}

func (p *Printer) printObjectBindingMember(member ast.ObjectBindingMember) {
	switch m := member.(type) {
	case *ast.ShorthandBinding:
		p.print(m.Name.Name)
		if m.Default != nil {
			p.printSpace()
			p.print("=")
			p.printSpace()
			p.printExpression(m.Default, ast.Comma)
		}

	case *ast.PropertyBinding:
		p.printPropertyKey(m.Key)
		p.print(":")
		p.printSpace()
		p.printBinding(m.Binding)
		if m.Default != nil {
			p.printSpace()
			p.print("=")
			p.printSpace()
			p.printExpression(m.Default, ast.Comma)
		}

	case *ast.RestBinding:
		p.print("...")
		p.print(m.Name.Name)
	}
}

/* --------------------------------- Literals -------------------------------- */

func (p *Printer) printStringLiteral(lit *ast.StringLiteral) {
	p.print("\"")
	p.print(lit.Value)
	p.print("\"")
}

// formatNumber renders an IEEE-754 double the way JavaScript source spells
// it: shortest decimal form, switching to exponent notation only for
// magnitudes the decimal form cannot express reasonably.
func formatNumber(value float64) string {
	if math.IsInf(value, 1) {
		return "Infinity"
	}
	if math.IsInf(value, -1) {
		return "-Infinity"
	}
	if math.IsNaN(value) {
		return "NaN"
	}
	abs := math.Abs(value)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.FormatFloat(value, 'e', -1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
