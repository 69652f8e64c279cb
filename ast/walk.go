package ast

// Visitor's Visit method is invoked for each node encountered by Walk. If
// the result visitor w is not nil, Walk visits each of the node's children
// with w, then calls w.Visit(nil).
//
// Walk only ever visits a tree; it never evaluates a field against a source
// value or otherwise executes anything.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order: it calls v.Visit(node); if the
// visitor returned by v.Visit(node) is not nil, Walk visits each child of
// node with that visitor, then calls w.Visit(nil).
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	w := v.Visit(node)
	if w == nil {
		return
	}

	switch n := node.(type) {
	case *Document:
		for _, d := range n.Definitions {
			Walk(w, d)
		}
	case *OperationDefinition:
		if n.Name != nil {
			Walk(w, n.Name)
		}
		for _, vd := range n.VariableDefinitions {
			Walk(w, vd)
		}
		walkDirectives(w, n.Directives)
		Walk(w, n.SelectionSet)
	case *FragmentDefinition:
		Walk(w, n.Name)
		Walk(w, n.TypeCondition)
		walkDirectives(w, n.Directives)
		Walk(w, n.SelectionSet)
	case *VariableDefinition:
		Walk(w, n.Variable)
		Walk(w, n.Type)
		if n.DefaultValue != nil {
			Walk(w, n.DefaultValue)
		}
	case *SelectionSet:
		for _, s := range n.Selections {
			Walk(w, s)
		}
	case *Field:
		if n.Alias != nil {
			Walk(w, n.Alias)
		}
		Walk(w, n.Name)
		for _, a := range n.Arguments {
			Walk(w, a)
		}
		walkDirectives(w, n.Directives)
		if n.SelectionSet != nil {
			Walk(w, n.SelectionSet)
		}
	case *FragmentSpread:
		Walk(w, n.Name)
		walkDirectives(w, n.Directives)
	case *InlineFragment:
		if n.TypeCondition != nil {
			Walk(w, n.TypeCondition)
		}
		walkDirectives(w, n.Directives)
		Walk(w, n.SelectionSet)
	case *Directive:
		Walk(w, n.Name)
		for _, a := range n.Arguments {
			Walk(w, a)
		}
	case *Argument:
		Walk(w, n.Name)
		Walk(w, n.Value)
	case *ObjectField:
		Walk(w, n.Name)
		Walk(w, n.Value)
	case *NamedType:
		Walk(w, n.Name)
	case *ListType:
		Walk(w, n.Elem)
	case *NonNullNamedType:
		Walk(w, n.Type)
	case *NonNullListType:
		Walk(w, n.Type)
	case *Variable:
		Walk(w, n.Name)
	case *EnumValue:
		Walk(w, n.Name)
	case *ListValue:
		for _, e := range n.Values {
			Walk(w, e)
		}
	case *ObjectValue:
		for _, f := range n.Fields {
			Walk(w, f)
		}
	case *Name, *IntValue, *FloatValue, *StringValue, *BooleanValue:
		// leaves: no children
	}

	w.Visit(nil)
}

func walkDirectives(w Visitor, dirs []*Directive) {
	for _, d := range dirs {
		Walk(w, d)
	}
}

// inspector adapts a plain func(Node) bool into a Visitor, the same trick
// go/ast.Inspect uses.
type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses an AST calling f for each node; Walk stops descending
// into a subtree when f returns false for it.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
