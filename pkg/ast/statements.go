package ast

// BlockStatement is { ... }.
type BlockStatement struct {
	baseNode
	Statements []Statement
}

func (b *BlockStatement) statementNode() {}

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	baseNode
}

func (e *EmptyStatement) statementNode() {}

// DebuggerStatement is the debugger keyword.
type DebuggerStatement struct {
	baseNode
}

func (d *DebuggerStatement) statementNode() {}

// ExpressionStatement wraps an expression in statement position.
type ExpressionStatement struct {
	baseNode
	Expression Expression
}

func (e *ExpressionStatement) statementNode() {}

// VarKind selects between var, let, and const.
type VarKind int

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

func (k VarKind) Text() string {
	switch k {
	case VarLet:
		return "let"
	case VarConst:
		return "const"
	default:
		return "var"
	}
}

// VariableDeclarator is one binding = init pair of a declaration. A const
// declarator always has an initializer, except in a for-in or for-of head.
type VariableDeclarator struct {
	baseNode
	Binding Binding
	Init    Expression
}

// VariableDeclaration is var/let/const with one or more declarators.
type VariableDeclaration struct {
	baseNode
	Kind        VarKind
	Declarators []*VariableDeclarator
}

func (v *VariableDeclaration) statementNode() {}

// IfStatement is if (test) consequent [else alternate].
type IfStatement struct {
	baseNode
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (i *IfStatement) statementNode() {}

// WhileStatement is while (test) body.
type WhileStatement struct {
	baseNode
	Test Expression
	Body Statement
}

func (w *WhileStatement) statementNode() {}

// DoWhileStatement is do body while (test).
type DoWhileStatement struct {
	baseNode
	Test Expression
	Body Statement
}

func (d *DoWhileStatement) statementNode() {}

// ForStatement is the classic three-clause for. Init is nil, a
// *VariableDeclaration, or an *ExpressionStatement.
type ForStatement struct {
	baseNode
	Init   Statement
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) statementNode() {}

// ForInStatement is for (left in right) body. Left is a
// *VariableDeclaration or an *ExpressionStatement.
type ForInStatement struct {
	baseNode
	Left  Statement
	Right Expression
	Body  Statement
}

func (f *ForInStatement) statementNode() {}

// ForOfStatement is for (left of right) body.
type ForOfStatement struct {
	baseNode
	Left  Statement
	Right Expression
	Body  Statement
}

func (f *ForOfStatement) statementNode() {}

// SwitchCase is one case (or default, when Test is nil) clause.
type SwitchCase struct {
	baseNode
	Test       Expression
	Consequent []Statement
}

// SwitchStatement is switch (discriminant) { cases }.
type SwitchStatement struct {
	baseNode
	Discriminant Expression
	Cases        []*SwitchCase
}

func (s *SwitchStatement) statementNode() {}

// LabeledStatement is label: body.
type LabeledStatement struct {
	baseNode
	Label *Identifier
	Body  Statement
}

func (l *LabeledStatement) statementNode() {}

// ContinueStatement is continue with an optional label.
type ContinueStatement struct {
	baseNode
	Label *Identifier
}

func (c *ContinueStatement) statementNode() {}

// BreakStatement is break with an optional label.
type BreakStatement struct {
	baseNode
	Label *Identifier
}

func (b *BreakStatement) statementNode() {}

// ReturnStatement is return with an optional argument.
type ReturnStatement struct {
	baseNode
	Expression Expression
}

func (r *ReturnStatement) statementNode() {}

// ThrowStatement is throw argument.
type ThrowStatement struct {
	baseNode
	Argument Expression
}

func (t *ThrowStatement) statementNode() {}

// CatchClause is catch (param) { ... }. The parameter accepts any binding.
type CatchClause struct {
	baseNode
	Param Binding
	Body  *BlockStatement
}

// TryStatement is try block with at least one of handler and finalizer.
type TryStatement struct {
	baseNode
	Block     *BlockStatement
	Handler   *CatchClause
	Finalizer *BlockStatement
}

func (t *TryStatement) statementNode() {}

// WithStatement is with (object) body.
type WithStatement struct {
	baseNode
	Object Expression
	Body   Statement
}

func (w *WithStatement) statementNode() {}

// FunctionDeclaration is a function statement. Name is nil only for the
// anonymous form of export default.
type FunctionDeclaration struct {
	baseNode
	Name       *Identifier
	Generator  bool
	Parameters []*Parameter
	Body       *BlockStatement
}

func (f *FunctionDeclaration) statementNode() {}

// ClassDeclaration is a class statement. Name is nil only for the anonymous
// form of export default.
type ClassDeclaration struct {
	baseNode
	Name    *Identifier
	Extends Expression
	Body    []ClassMember
}

func (c *ClassDeclaration) statementNode() {}

// ImportSpecifier is one { imported as local } entry. Imported may be a
// reserved word, which is what allows import { default as x }.
type ImportSpecifier struct {
	baseNode
	Imported *Identifier
	Local    *Identifier
}

// ImportDeclaration covers every import form. A bare side-effect import has
// neither default, namespace, nor specifiers.
type ImportDeclaration struct {
	baseNode
	Default    *Identifier
	Namespace  *Identifier
	Specifiers []*ImportSpecifier
	Source     *StringLiteral
}

func (i *ImportDeclaration) statementNode() {}

// ExportAllDeclaration is export * from "source".
type ExportAllDeclaration struct {
	baseNode
	Source *StringLiteral
}

func (e *ExportAllDeclaration) statementNode() {}

// ExportNamedDeclaration is export followed by a var/let/const, function,
// or class declaration.
type ExportNamedDeclaration struct {
	baseNode
	Declaration Statement
}

func (e *ExportNamedDeclaration) statementNode() {}

// ExportSpecifier is one { local as exported } entry. Local may be a
// reserved word when re-exporting, e.g. export { default as x } from "m".
type ExportSpecifier struct {
	baseNode
	Local    *Identifier
	Exported *Identifier
}

// ExportNamedSpecifiers is export { specifiers } with an optional source.
type ExportNamedSpecifiers struct {
	baseNode
	Specifiers []*ExportSpecifier
	Source     *StringLiteral
}

func (e *ExportNamedSpecifiers) statementNode() {}

// ExportDefaultDeclaration is export default followed by a function
// declaration, a class declaration, or an expression. Declaration is a
// *FunctionDeclaration, a *ClassDeclaration, or an Expression.
type ExportDefaultDeclaration struct {
	baseNode
	Declaration Node
}

func (e *ExportDefaultDeclaration) statementNode() {}
