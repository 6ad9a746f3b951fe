package ast

// Identifier is a name reference. It doubles as the identifier form of a
// binding, which is what makes reclassification of simple targets the
// identity transformation.
type Identifier struct {
	baseNode
	Name string
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) bindingNode()    {}

// NullLiteral is the literal null.
type NullLiteral struct {
	baseNode
}

func (n *NullLiteral) expressionNode() {}

// BooleanLiteral is true or false.
type BooleanLiteral struct {
	baseNode
	Value bool
}

func (b *BooleanLiteral) expressionNode() {}

// NumericLiteral is a number literal. The value is the parsed IEEE-754
// double, with digit separators stripped before parsing.
type NumericLiteral struct {
	baseNode
	Value float64
}

func (n *NumericLiteral) expressionNode() {}

// BigIntLiteral retains the digit text verbatim, including any base prefix
// and excluding the trailing n, so no precision is lost.
type BigIntLiteral struct {
	baseNode
	Value string
}

func (b *BigIntLiteral) expressionNode() {}

// StringLiteral holds the text between the quotes with escape sequences
// copied verbatim.
type StringLiteral struct {
	baseNode
	Value string
}

func (s *StringLiteral) expressionNode() {}

// RegexpLiteral holds the full token slice including the delimiting slashes
// and the flags.
type RegexpLiteral struct {
	baseNode
	Value string
}

func (r *RegexpLiteral) expressionNode() {}

// TemplatePart is one (expression, following-text) pair of a template
// literal. The text of the last part is the tail segment.
type TemplatePart struct {
	Expression Expression
	Text       string
}

// TemplateLiteral is a template. A template without substitutions has Head
// set and no parts.
type TemplateLiteral struct {
	baseNode
	Head  string
	Parts []TemplatePart
}

func (t *TemplateLiteral) expressionNode() {}

// ThisExpression is the this keyword.
type ThisExpression struct {
	baseNode
}

func (t *ThisExpression) expressionNode() {}

// SuperExpression is the super keyword.
type SuperExpression struct {
	baseNode
}

func (s *SuperExpression) expressionNode() {}

// ArrayElement is one item of an array literal. A nil element in the items
// slice is a hole produced by consecutive commas.
type ArrayElement struct {
	Expression Expression
	Spread     bool
}

// ArrayExpression is [a, , ...b].
type ArrayExpression struct {
	baseNode
	Items []*ArrayElement
}

func (a *ArrayExpression) expressionNode() {}

// PropertyKey is a property name: an identifier, a string, a number, or a
// computed [expr] key.
type PropertyKey interface {
	Node
	propertyKeyNode()
}

func (i *Identifier) propertyKeyNode()     {}
func (s *StringLiteral) propertyKeyNode()  {}
func (n *NumericLiteral) propertyKeyNode() {}

// ComputedKey is the [expr] form of a property name.
type ComputedKey struct {
	baseNode
	Expression Expression
}

func (c *ComputedKey) propertyKeyNode() {}

// ObjectMember is one entry of an object literal.
type ObjectMember interface {
	Node
	objectMemberNode()
}

// SpreadProperty is { ...a }.
type SpreadProperty struct {
	baseNode
	Value Expression
}

func (s *SpreadProperty) objectMemberNode() {}

// Property is { key: value } with a literal or computed key.
type Property struct {
	baseNode
	Key   PropertyKey
	Value Expression
}

func (p *Property) objectMemberNode() {}

// ShorthandProperty is { a }.
type ShorthandProperty struct {
	baseNode
	Name *Identifier
}

func (s *ShorthandProperty) objectMemberNode() {}

// MethodKind distinguishes ordinary methods from accessors.
type MethodKind int

const (
	MethodOrdinary MethodKind = iota
	MethodGet
	MethodSet
)

// ObjectMethod is { key() {} }, { get key() {} }, or { set key(v) {} }.
type ObjectMethod struct {
	baseNode
	Kind       MethodKind
	Key        PropertyKey
	Parameters []*Parameter
	Body       *BlockStatement
}

func (m *ObjectMethod) objectMemberNode() {}

// ObjectExpression is an object literal.
type ObjectExpression struct {
	baseNode
	Properties []ObjectMember
}

func (o *ObjectExpression) expressionNode() {}

// UnaryExpression is a prefix operator application.
type UnaryExpression struct {
	baseNode
	Op       UnaryOp
	Argument Expression
}

func (u *UnaryExpression) expressionNode() {}

// UpdateExpression is ++ or -- in prefix or postfix position.
type UpdateExpression struct {
	baseNode
	Op       UpdateOp
	Argument Expression
}

func (u *UpdateExpression) expressionNode() {}

// BinaryExpression is a binary operator application.
type BinaryExpression struct {
	baseNode
	Left  Expression
	Op    BinaryOp
	Right Expression
}

func (b *BinaryExpression) expressionNode() {}

// LogicalExpression is &&, ||, or ??.
type LogicalExpression struct {
	baseNode
	Left  Expression
	Op    LogicalOp
	Right Expression
}

func (l *LogicalExpression) expressionNode() {}

// AssignmentExpression is an assignment. Exactly one of Binding and Expr is
// set as the target: Binding when the left-hand side reclassified into a
// destructuring pattern, Expr when it stayed an ordinary expression such as
// obj.x.
type AssignmentExpression struct {
	baseNode
	Binding Binding
	Expr    Expression
	Op      AssignOp
	Right   Expression
}

func (a *AssignmentExpression) expressionNode() {}

// ConditionalExpression is test ? consequent : alternate.
type ConditionalExpression struct {
	baseNode
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) expressionNode() {}

// SequenceExpression is a, b, c. Consecutive commas at the same level
// collapse into a single node holding all operands.
type SequenceExpression struct {
	baseNode
	Expressions []Expression
}

func (s *SequenceExpression) expressionNode() {}

// MemberExpression is a.b or a[b].
type MemberExpression struct {
	baseNode
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpression) expressionNode() {}

// Argument is one call or construction argument, optionally spread.
type Argument struct {
	Expression Expression
	Spread     bool
}

// CallExpression is callee(arguments).
type CallExpression struct {
	baseNode
	Callee    Expression
	Arguments []Argument
}

func (c *CallExpression) expressionNode() {}

// NewExpression is new callee(arguments). The argument list is optional in
// the source; new a and new a() produce the same shape.
type NewExpression struct {
	baseNode
	Callee    Expression
	Arguments []Argument
}

func (n *NewExpression) expressionNode() {}

// Parameter is a single function parameter. Rest parameters never carry a
// default value.
type Parameter struct {
	baseNode
	Binding Binding
	Default Expression
	Rest    bool
}

// FunctionExpression is the expression form of function, named or not.
type FunctionExpression struct {
	baseNode
	Name       *Identifier
	Generator  bool
	Parameters []*Parameter
	Body       *BlockStatement
}

func (f *FunctionExpression) expressionNode() {}

// ArrowFunctionExpression is (params) => body. Exactly one of BlockBody and
// ExprBody is set.
type ArrowFunctionExpression struct {
	baseNode
	Parameters []*Parameter
	BlockBody  *BlockStatement
	ExprBody   Expression
}

func (a *ArrowFunctionExpression) expressionNode() {}

// ClassExpression is the expression form of class.
type ClassExpression struct {
	baseNode
	Name    *Identifier
	Extends Expression
	Body    []ClassMember
}

func (c *ClassExpression) expressionNode() {}
