// Package ast defines the syntax tree produced by the parser.
//
// The tree is a strict hierarchy: parent nodes exclusively own their
// children and there are no back-pointers. Every node carries a half-open
// byte span into the source buffer; a parent's span contains the spans of
// all of its children. Nodes may hold string slices borrowed from the
// source buffer, so the buffer must outlive the tree.
package ast

import "github.com/jacobjonsson/packet/pkg/span"

// Node is the interface shared by every element of the tree.
type Node interface {
	Span() span.Span
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Binding is a node that introduces names: an identifier, an array pattern,
// or an object pattern.
type Binding interface {
	Node
	bindingNode()
}

// baseNode carries the source span shared by all node types.
type baseNode struct {
	Loc span.Span
}

func (n baseNode) Span() span.Span { return n.Loc }

// SetSpan stores the node's source region. It exists so the parser can
// stamp spans without knowing each concrete type.
func (n *baseNode) SetSpan(loc span.Span) { n.Loc = loc }

// Program is the root of the tree: an ordered sequence of module-level
// statements.
type Program struct {
	Statements []Statement
}

// Span covers all statements of the program.
func (p *Program) Span() span.Span {
	if len(p.Statements) == 0 {
		return span.Span{}
	}
	return p.Statements[0].Span().Union(p.Statements[len(p.Statements)-1].Span())
}
