// Package ast defines the abstract syntax tree produced by the parser for a
// GraphQL executable document. Every node type is a plain value type; the
// mutually recursive shapes (Value, Type) use a small amount of pointer
// indirection for their recursive variants since no cycles ever arise.
package ast

// Node is implemented by every AST node. It exposes the node's source range,
// which is absent only for synthetic nodes never produced by this parser.
type Node interface {
	Location() *Location
}

// Location is a half-open [Start, End) byte range into the Source body that
// produced a node. For any node and any of its children, the child's range
// is contained within the parent's.
type Location struct {
	Start int
	End   int
}

// Document is the root of a parse: a non-empty, ordered sequence of
// definitions.
type Document struct {
	Loc         *Location
	Definitions []Definition
}

func (d *Document) Location() *Location { return d.Loc }

// Definition is implemented by OperationDefinition and FragmentDefinition.
type Definition interface {
	Node
	isDefinition()
}

// Name is a bare identifier matching /[_A-Za-z][_0-9A-Za-z]*/. It is used
// directly for Alias, FragmentName, TypeCondition, and a VariableDefinition's
// variable, since those carry nothing but a name and a location; Variable,
// NamedType, and EnumValue are their own node types that wrap a Name.
type Name struct {
	Loc   *Location
	Value string
}

func (n *Name) Location() *Location { return n.Loc }

// Directive : @ Name Arguments?
type Directive struct {
	Loc       *Location
	Name      *Name
	Arguments []*Argument
}

func (d *Directive) Location() *Location { return d.Loc }

// Argument : Name : Value
type Argument struct {
	Loc   *Location
	Name  *Name
	Value Value
}

func (a *Argument) Location() *Location { return a.Loc }
