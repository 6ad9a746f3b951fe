package ast

// ArrayBindingItem is one element of an array pattern. A nil item in the
// items slice is a hole. A rest item is only valid in trailing position and
// never carries a default.
type ArrayBindingItem struct {
	Binding Binding
	Default Expression
	Rest    bool
}

// ArrayBinding is [a, , b = 1, ...rest].
type ArrayBinding struct {
	baseNode
	Items []*ArrayBindingItem
}

func (a *ArrayBinding) bindingNode() {}

// ObjectBindingMember is one property of an object pattern.
type ObjectBindingMember interface {
	Node
	objectBindingMemberNode()
}

// ShorthandBinding is { a } or { a = 1 }.
type ShorthandBinding struct {
	baseNode
	Name    *Identifier
	Default Expression
}

func (s *ShorthandBinding) objectBindingMemberNode() {}

// PropertyBinding is { key: target } or { [key]: target }, optionally with
// a default.
type PropertyBinding struct {
	baseNode
	Key     PropertyKey
	Binding Binding
	Default Expression
}

func (p *PropertyBinding) objectBindingMemberNode() {}

// RestBinding is { ...a }. Inside an object pattern the rest target can
// only be an identifier.
type RestBinding struct {
	baseNode
	Name *Identifier
}

func (r *RestBinding) objectBindingMemberNode() {}

// ObjectBinding is an object pattern.
type ObjectBinding struct {
	baseNode
	Properties []ObjectBindingMember
}

func (o *ObjectBinding) bindingNode() {}
