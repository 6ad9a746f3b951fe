package parser

import (
	"testing"

	"github.com/jacobjonsson/packet/pkg/ast"
	"github.com/jacobjonsson/packet/pkg/logger"
	"github.com/jacobjonsson/packet/pkg/source"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	src := source.New("<test>", input)
	sink := &logger.Recorder{}
	p, err := New(src, sink)
	if err != nil {
		t.Fatalf("parser creation failed: %s", err)
	}
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %s", err)
	}
	return program
}

// parseError parses input that must fail and returns the recorded messages.
func parseError(t *testing.T, input string) []logger.Message {
	t.Helper()
	src := source.New("<test>", input)
	sink := &logger.Recorder{}
	p, err := New(src, sink)
	if err == nil {
		_, err = p.ParseProgram()
	}
	if err == nil {
		t.Fatalf("expected a parse error for %q", input)
	}
	if len(sink.Messages) == 0 {
		t.Fatalf("error for %q was not reported to the sink", input)
	}
	return sink.Messages
}

// expressionAt returns statement i, which must be an expression statement.
func expressionAt(t *testing.T, program *ast.Program, i int) ast.Expression {
	t.Helper()
	if len(program.Statements) <= i {
		t.Fatalf("program has %d statements, want at least %d", len(program.Statements), i+1)
	}
	stmt, ok := program.Statements[i].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement %d is %T, want expression statement", i, program.Statements[i])
	}
	return stmt.Expression
}

func TestIdentifierExpression(t *testing.T) {
	program := parseProgram(t, "foobar;")
	ident, ok := expressionAt(t, program, 0).(*ast.Identifier)
	if !ok {
		t.Fatalf("expression is not an identifier")
	}
	if ident.Name != "foobar" {
		t.Errorf("ident.Name = %q, want %q", ident.Name, "foobar")
	}
}

func TestPrecedenceTotality(t *testing.T) {
	// The root of each tree is the operator that binds loosest.
	program := parseProgram(t, "3 + 4 * 5 == 3 * 1 + 4 * 5;")
	root, ok := expressionAt(t, program, 0).(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("root is not a binary expression")
	}
	if root.Op != ast.BinaryLooseEquals {
		t.Fatalf("root op = %q, want ==", root.Op.Text())
	}
	left, ok := root.Left.(*ast.BinaryExpression)
	if !ok || left.Op != ast.BinaryAdd {
		t.Errorf("left of == is not an addition")
	}
	right, ok := root.Right.(*ast.BinaryExpression)
	if !ok || right.Op != ast.BinaryAdd {
		t.Errorf("right of == is not an addition")
	}
}

func TestAdditionIsLeftAssociative(t *testing.T) {
	program := parseProgram(t, "a + b + c;")
	root := expressionAt(t, program, 0).(*ast.BinaryExpression)
	if root.Op != ast.BinaryAdd {
		t.Fatalf("root op = %q, want +", root.Op.Text())
	}
	if _, ok := root.Left.(*ast.BinaryExpression); !ok {
		t.Errorf("a + b + c should group as (a + b) + c")
	}
	if _, ok := root.Right.(*ast.Identifier); !ok {
		t.Errorf("right of the root should be the identifier c")
	}
}

func TestExponentiationIsRightAssociative(t *testing.T) {
	program := parseProgram(t, "a ** b ** c;")
	root := expressionAt(t, program, 0).(*ast.BinaryExpression)
	if root.Op != ast.BinaryExponent {
		t.Fatalf("root op = %q, want **", root.Op.Text())
	}
	if _, ok := root.Left.(*ast.Identifier); !ok {
		t.Errorf("a ** b ** c should group as a ** (b ** c)")
	}
	right, ok := root.Right.(*ast.BinaryExpression)
	if !ok || right.Op != ast.BinaryExponent {
		t.Errorf("right of the root should be b ** c")
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	program := parseProgram(t, "a = b = c;")
	root, ok := expressionAt(t, program, 0).(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("root is not an assignment")
	}
	if _, ok := root.Right.(*ast.AssignmentExpression); !ok {
		t.Errorf("a = b = c should group as a = (b = c)")
	}
}

func TestConditionalExpression(t *testing.T) {
	program := parseProgram(t, "a ? b : c;")
	cond, ok := expressionAt(t, program, 0).(*ast.ConditionalExpression)
	if !ok {
		t.Fatalf("expression is not a conditional")
	}
	if _, ok := cond.Test.(*ast.Identifier); !ok {
		t.Errorf("test is not an identifier")
	}
}

func TestConditionalStopsAtComma(t *testing.T) {
	// a ? b : c, d groups as (a ? b : c), d.
	program := parseProgram(t, "a ? b : c, d;")
	seq, ok := expressionAt(t, program, 0).(*ast.SequenceExpression)
	if !ok {
		t.Fatalf("expression is not a sequence")
	}
	if len(seq.Expressions) != 2 {
		t.Fatalf("sequence has %d operands, want 2", len(seq.Expressions))
	}
	if _, ok := seq.Expressions[0].(*ast.ConditionalExpression); !ok {
		t.Errorf("first operand should be the conditional")
	}
}

func TestSequenceCollapses(t *testing.T) {
	program := parseProgram(t, "a, b, c;")
	seq, ok := expressionAt(t, program, 0).(*ast.SequenceExpression)
	if !ok {
		t.Fatalf("expression is not a sequence")
	}
	if len(seq.Expressions) != 3 {
		t.Errorf("sequence has %d operands, want 3", len(seq.Expressions))
	}
}

func TestLogicalOperators(t *testing.T) {
	program := parseProgram(t, "a || b && c ?? d;")
	// Permissive about mixing ?? with || and &&.
	if _, ok := expressionAt(t, program, 0).(*ast.LogicalExpression); !ok {
		t.Fatalf("expression is not a logical expression")
	}
}

func TestInGating(t *testing.T) {
	// Outside a for-init the in operator is consumed.
	program := parseProgram(t, "x = a in b;")
	assign := expressionAt(t, program, 0).(*ast.AssignmentExpression)
	binary, ok := assign.Right.(*ast.BinaryExpression)
	if !ok || binary.Op != ast.BinaryIn {
		t.Errorf("right of the assignment should be a in b")
	}

	// Inside a for-init it is not, so the statement is a for-in.
	program = parseProgram(t, "for (x in y) ;")
	if _, ok := program.Statements[0].(*ast.ForInStatement); !ok {
		t.Errorf("statement is %T, want for-in", program.Statements[0])
	}

	// And the test clause of a classic for consumes it again.
	program = parseProgram(t, "for (var i = 0; i in xs;) ;")
	forStmt, ok := program.Statements[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("statement is %T, want for", program.Statements[0])
	}
	test, ok := forStmt.Test.(*ast.BinaryExpression)
	if !ok || test.Op != ast.BinaryIn {
		t.Errorf("for test should be i in xs")
	}
}

func TestForOf(t *testing.T) {
	program := parseProgram(t, "for (const x of xs) {}")
	forStmt, ok := program.Statements[0].(*ast.ForOfStatement)
	if !ok {
		t.Fatalf("statement is %T, want for-of", program.Statements[0])
	}
	decl, ok := forStmt.Left.(*ast.VariableDeclaration)
	if !ok || decl.Kind != ast.VarConst {
		t.Errorf("for-of left should be a const declaration")
	}
}

func TestForInWithInitializerIsFatal(t *testing.T) {
	parseError(t, "for (var i = 0 in obj) ;")
}

func TestConstWithoutInitializerIsFatal(t *testing.T) {
	parseError(t, "const a;")
}

func TestVariableDeclarations(t *testing.T) {
	program := parseProgram(t, "var a = 1, b = 2;")
	decl, ok := program.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement is %T, want variable declaration", program.Statements[0])
	}
	if decl.Kind != ast.VarVar {
		t.Errorf("kind = %v, want var", decl.Kind)
	}
	if len(decl.Declarators) != 2 {
		t.Fatalf("declarator count = %d, want 2", len(decl.Declarators))
	}
	if decl.Declarators[1].Init == nil {
		t.Errorf("second declarator should have an initializer")
	}
}

func TestDestructuringDeclaration(t *testing.T) {
	program := parseProgram(t, "let { a, b: c, [d]: e, ...rest } = obj;")
	decl := program.Statements[0].(*ast.VariableDeclaration)
	binding, ok := decl.Declarators[0].Binding.(*ast.ObjectBinding)
	if !ok {
		t.Fatalf("binding is %T, want object binding", decl.Declarators[0].Binding)
	}
	if len(binding.Properties) != 4 {
		t.Fatalf("property count = %d, want 4", len(binding.Properties))
	}
	if _, ok := binding.Properties[0].(*ast.ShorthandBinding); !ok {
		t.Errorf("property 0 should be shorthand")
	}
	if _, ok := binding.Properties[1].(*ast.PropertyBinding); !ok {
		t.Errorf("property 1 should be a named binding")
	}
	prop, ok := binding.Properties[2].(*ast.PropertyBinding)
	if !ok {
		t.Fatalf("property 2 should be a property binding")
	}
	if _, ok := prop.Key.(*ast.ComputedKey); !ok {
		t.Errorf("property 2 should have a computed key")
	}
	if _, ok := binding.Properties[3].(*ast.RestBinding); !ok {
		t.Errorf("property 3 should be a rest binding")
	}
}

func TestDestructuringAssignment(t *testing.T) {
	program := parseProgram(t, "[a, , ...rest] = xs;")
	assign, ok := expressionAt(t, program, 0).(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("expression is not an assignment")
	}
	binding, ok := assign.Binding.(*ast.ArrayBinding)
	if !ok {
		t.Fatalf("assignment target did not reclassify to an array binding")
	}
	if len(binding.Items) != 3 {
		t.Fatalf("item count = %d, want 3", len(binding.Items))
	}
	if binding.Items[1] != nil {
		t.Errorf("item 1 should be a hole")
	}
	if binding.Items[2] == nil || !binding.Items[2].Rest {
		t.Errorf("item 2 should be a rest element")
	}
}

func TestMemberAssignmentKeepsExpression(t *testing.T) {
	program := parseProgram(t, "obj.x = y;")
	assign := expressionAt(t, program, 0).(*ast.AssignmentExpression)
	if assign.Binding != nil {
		t.Errorf("member target should not reclassify")
	}
	if _, ok := assign.Expr.(*ast.MemberExpression); !ok {
		t.Errorf("assignment target should stay a member expression")
	}
}

func TestArrowFunctions(t *testing.T) {
	program := parseProgram(t, "(a, b = 1, ...c) => {};")
	arrow, ok := expressionAt(t, program, 0).(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expression is not an arrow function")
	}
	if len(arrow.Parameters) != 3 {
		t.Fatalf("parameter count = %d, want 3", len(arrow.Parameters))
	}
	if arrow.Parameters[1].Default == nil {
		t.Errorf("parameter 1 should have a default")
	}
	if !arrow.Parameters[2].Rest {
		t.Errorf("parameter 2 should be rest")
	}
	if arrow.BlockBody == nil {
		t.Errorf("body should be a block")
	}
}

func TestSingleParameterArrow(t *testing.T) {
	program := parseProgram(t, "a => b;")
	arrow, ok := expressionAt(t, program, 0).(*ast.ArrowFunctionExpression)
	if !ok {
		t.Fatalf("expression is not an arrow function")
	}
	if len(arrow.Parameters) != 1 {
		t.Fatalf("parameter count = %d, want 1", len(arrow.Parameters))
	}
	if arrow.ExprBody == nil {
		t.Errorf("body should be an expression")
	}
}

func TestArrowParameterReclassificationFailureIsFatal(t *testing.T) {
	parseError(t, "(a + b) => {};")
}

func TestRestOutsideParametersIsFatal(t *testing.T) {
	parseError(t, "(a, ...b);")
}

func TestTemplateLiterals(t *testing.T) {
	program := parseProgram(t, "`h ${x + 1} m ${y} t`;")
	tmpl, ok := expressionAt(t, program, 0).(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expression is not a template literal")
	}
	if tmpl.Head != "h " {
		t.Errorf("head = %q, want %q", tmpl.Head, "h ")
	}
	if len(tmpl.Parts) != 2 {
		t.Fatalf("part count = %d, want 2", len(tmpl.Parts))
	}
	if _, ok := tmpl.Parts[0].Expression.(*ast.BinaryExpression); !ok {
		t.Errorf("part 0 expression should be x + 1")
	}
	if tmpl.Parts[0].Text != " m " {
		t.Errorf("part 0 text = %q, want %q", tmpl.Parts[0].Text, " m ")
	}
	if tmpl.Parts[1].Text != " t" {
		t.Errorf("part 1 text = %q, want %q", tmpl.Parts[1].Text, " t")
	}
}

func TestTemplateWithoutSubstitution(t *testing.T) {
	program := parseProgram(t, "`hello`;")
	tmpl, ok := expressionAt(t, program, 0).(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expression is not a template literal")
	}
	if tmpl.Head != "hello" || len(tmpl.Parts) != 0 {
		t.Errorf("template should have head %q and no parts", "hello")
	}
}

func TestRegexpLiteral(t *testing.T) {
	program := parseProgram(t, "/ab+c/gi;")
	re, ok := expressionAt(t, program, 0).(*ast.RegexpLiteral)
	if !ok {
		t.Fatalf("expression is not a regexp literal")
	}
	if re.Value != "/ab+c/gi" {
		t.Errorf("value = %q, want %q", re.Value, "/ab+c/gi")
	}
}

func TestDivisionIsNotRegexp(t *testing.T) {
	program := parseProgram(t, "a / b;")
	binary, ok := expressionAt(t, program, 0).(*ast.BinaryExpression)
	if !ok || binary.Op != ast.BinaryDivide {
		t.Fatalf("expression should be a division")
	}
}

func TestNewExpression(t *testing.T) {
	program := parseProgram(t, "new a.b(c);")
	newExpr, ok := expressionAt(t, program, 0).(*ast.NewExpression)
	if !ok {
		t.Fatalf("expression is not a new expression")
	}
	if _, ok := newExpr.Callee.(*ast.MemberExpression); !ok {
		t.Errorf("callee should be a member expression")
	}
	if len(newExpr.Arguments) != 1 {
		t.Errorf("argument count = %d, want 1", len(newExpr.Arguments))
	}

	// The callee parses at Member precedence: the argument list of
	// new a()() belongs to the new expression, the second one is a call.
	program = parseProgram(t, "new a()();")
	call, ok := expressionAt(t, program, 0).(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression is not a call")
	}
	if _, ok := call.Callee.(*ast.NewExpression); !ok {
		t.Errorf("callee should be the new expression")
	}
}

func TestObjectLiteral(t *testing.T) {
	program := parseProgram(t, "x = { a, b: 1, [c]: 2, d() {}, get e() {}, set f(v) {}, ...g };")
	assign := expressionAt(t, program, 0).(*ast.AssignmentExpression)
	obj, ok := assign.Right.(*ast.ObjectExpression)
	if !ok {
		t.Fatalf("right is not an object literal")
	}
	if len(obj.Properties) != 7 {
		t.Fatalf("property count = %d, want 7", len(obj.Properties))
	}
	if _, ok := obj.Properties[0].(*ast.ShorthandProperty); !ok {
		t.Errorf("property 0 should be shorthand")
	}
	if _, ok := obj.Properties[1].(*ast.Property); !ok {
		t.Errorf("property 1 should be a named property")
	}
	prop2, ok := obj.Properties[2].(*ast.Property)
	if !ok {
		t.Fatalf("property 2 should be a property")
	}
	if _, ok := prop2.Key.(*ast.ComputedKey); !ok {
		t.Errorf("property 2 should have a computed key")
	}
	method, ok := obj.Properties[3].(*ast.ObjectMethod)
	if !ok || method.Kind != ast.MethodOrdinary {
		t.Errorf("property 3 should be an ordinary method")
	}
	getter, ok := obj.Properties[4].(*ast.ObjectMethod)
	if !ok || getter.Kind != ast.MethodGet {
		t.Errorf("property 4 should be a getter")
	}
	setter, ok := obj.Properties[5].(*ast.ObjectMethod)
	if !ok || setter.Kind != ast.MethodSet {
		t.Errorf("property 5 should be a setter")
	}
	if _, ok := obj.Properties[6].(*ast.SpreadProperty); !ok {
		t.Errorf("property 6 should be a spread")
	}
}

func TestGetAsOrdinaryKey(t *testing.T) {
	// get followed by : or ( is an ordinary identifier key.
	program := parseProgram(t, "x = { get: 1, set: 2 };")
	assign := expressionAt(t, program, 0).(*ast.AssignmentExpression)
	obj := assign.Right.(*ast.ObjectExpression)
	for i, want := range []string{"get", "set"} {
		prop, ok := obj.Properties[i].(*ast.Property)
		if !ok {
			t.Fatalf("property %d should be a named property", i)
		}
		key, ok := prop.Key.(*ast.Identifier)
		if !ok || key.Name != want {
			t.Errorf("property %d key should be the identifier %q", i, want)
		}
	}

	program = parseProgram(t, "x = { get() {} };")
	assign = expressionAt(t, program, 0).(*ast.AssignmentExpression)
	obj = assign.Right.(*ast.ObjectExpression)
	method, ok := obj.Properties[0].(*ast.ObjectMethod)
	if !ok || method.Kind != ast.MethodOrdinary {
		t.Fatalf("get() {} should be an ordinary method named get")
	}
	key, ok := method.Key.(*ast.Identifier)
	if !ok || key.Name != "get" {
		t.Errorf("method key should be the identifier get")
	}
}

func TestClassBodies(t *testing.T) {
	input := `class A extends B {
		constructor(a) {}
		m(x) {}
		static s() {}
		get g() {}
		set g(v) {}
		static get h() {}
		[k]() {}
		static() {}
	}`
	program := parseProgram(t, input)
	class, ok := program.Statements[0].(*ast.ClassDeclaration)
	if !ok {
		t.Fatalf("statement is %T, want class declaration", program.Statements[0])
	}
	if class.Name.Name != "A" {
		t.Errorf("class name = %q, want A", class.Name.Name)
	}
	if class.Extends == nil {
		t.Errorf("class should extend B")
	}
	if len(class.Body) != 8 {
		t.Fatalf("member count = %d, want 8", len(class.Body))
	}

	if _, ok := class.Body[0].(*ast.ClassConstructor); !ok {
		t.Errorf("member 0 should be the constructor")
	}
	static, ok := class.Body[2].(*ast.ClassMethod)
	if !ok || !static.IsStatic {
		t.Errorf("member 2 should be static")
	}
	getter, ok := class.Body[3].(*ast.ClassMethod)
	if !ok || getter.Kind != ast.MethodGet {
		t.Errorf("member 3 should be a getter")
	}
	staticGetter, ok := class.Body[5].(*ast.ClassMethod)
	if !ok || !staticGetter.IsStatic || staticGetter.Kind != ast.MethodGet {
		t.Errorf("member 5 should be a static getter")
	}
	computed, ok := class.Body[6].(*ast.ClassMethod)
	if !ok {
		t.Fatalf("member 6 should be a method")
	}
	if _, ok := computed.Key.(*ast.ComputedKey); !ok {
		t.Errorf("member 6 should have a computed key")
	}
	named, ok := class.Body[7].(*ast.ClassMethod)
	if !ok || named.IsStatic {
		t.Fatalf("member 7 should be a non-static method")
	}
	key, ok := named.Key.(*ast.Identifier)
	if !ok || key.Name != "static" {
		t.Errorf("member 7 should be a method named static")
	}
}

func TestLabeledStatement(t *testing.T) {
	program := parseProgram(t, "loop: while (a) { break loop; }")
	labeled, ok := program.Statements[0].(*ast.LabeledStatement)
	if !ok {
		t.Fatalf("statement is %T, want labeled statement", program.Statements[0])
	}
	if labeled.Label.Name != "loop" {
		t.Errorf("label = %q, want loop", labeled.Label.Name)
	}
	if _, ok := labeled.Body.(*ast.WhileStatement); !ok {
		t.Errorf("body should be a while statement")
	}
}

func TestSwitchStatement(t *testing.T) {
	program := parseProgram(t, "switch (a) { case 1: b(); case 2: default: c(); }")
	switchStmt, ok := program.Statements[0].(*ast.SwitchStatement)
	if !ok {
		t.Fatalf("statement is %T, want switch", program.Statements[0])
	}
	if len(switchStmt.Cases) != 3 {
		t.Fatalf("case count = %d, want 3", len(switchStmt.Cases))
	}
	if switchStmt.Cases[2].Test != nil {
		t.Errorf("case 2 should be the default clause")
	}
}

func TestSwitchSecondDefaultIsFatal(t *testing.T) {
	parseError(t, "switch (a) { default: default: }")
}

func TestTryStatement(t *testing.T) {
	program := parseProgram(t, "try { a(); } catch ({ message }) { b(); } finally { c(); }")
	tryStmt, ok := program.Statements[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("statement is %T, want try", program.Statements[0])
	}
	if tryStmt.Handler == nil || tryStmt.Finalizer == nil {
		t.Fatalf("try should have both handler and finalizer")
	}
	if _, ok := tryStmt.Handler.Param.(*ast.ObjectBinding); !ok {
		t.Errorf("catch parameter should accept any binding")
	}
}

func TestTryWithoutHandlerIsFatal(t *testing.T) {
	parseError(t, "try { a(); }")
}

func TestFunctionDeclarationAsIfBranchIsFatal(t *testing.T) {
	parseError(t, "if (a) function b() {}")
}

func TestDanglingElse(t *testing.T) {
	program := parseProgram(t, "if (a) if (b) c(); else d();")
	outer := program.Statements[0].(*ast.IfStatement)
	if outer.Alternate != nil {
		t.Errorf("else should bind to the inner if")
	}
	inner, ok := outer.Consequent.(*ast.IfStatement)
	if !ok {
		t.Fatalf("consequent should be the inner if")
	}
	if inner.Alternate == nil {
		t.Errorf("inner if should own the else branch")
	}
}

func TestThrowRequiresExpression(t *testing.T) {
	parseError(t, "throw;")
}

func TestSpanCoverage(t *testing.T) {
	input := "let answer = a + b * 2;"
	program := parseProgram(t, input)

	decl := program.Statements[0].(*ast.VariableDeclaration)
	if decl.Span().Start != 0 || decl.Span().End != len(input) {
		t.Errorf("declaration span = %v, want the whole input", decl.Span())
	}

	declarator := decl.Declarators[0]
	if !decl.Span().Contains(declarator.Span()) {
		t.Errorf("declaration span should contain the declarator span")
	}
	binary := declarator.Init.(*ast.BinaryExpression)
	if !declarator.Span().Contains(binary.Span()) {
		t.Errorf("declarator span should contain the initializer span")
	}
	if !binary.Span().Contains(binary.Left.Span()) || !binary.Span().Contains(binary.Right.Span()) {
		t.Errorf("binary span should contain both operand spans")
	}
	if binary.Left.Span().Len() == 0 || binary.Right.Span().Len() == 0 {
		t.Errorf("leaf spans should be non-empty")
	}
}
