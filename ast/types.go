package ast

// Type is implemented by NamedType, ListType, NonNullNamedType, and
// NonNullListType.
//
// NonNull is modeled as two variants: one wrapping a named type, one
// wrapping a list type, rather than as a single type wrapping any Type.
// That mirrors the grammar's restriction that '!' can never follow '!': a
// general NonNull(Type) wrapper would let NonNull(NonNull(_)) type-check in
// Go even though the parser would never build one, whereas this encoding
// makes the non-nesting invariant syntactic.
type Type interface {
	Node
	isType()
}

// NamedType : Name
type NamedType struct {
	Loc  *Location
	Name *Name
}

func (t *NamedType) Location() *Location { return t.Loc }
func (t *NamedType) isType()             {}

// ListType : [ Type ]
type ListType struct {
	Loc  *Location
	Elem Type
}

func (t *ListType) Location() *Location { return t.Loc }
func (t *ListType) isType()             {}

// NonNullNamedType : NamedType !
type NonNullNamedType struct {
	Loc  *Location
	Type *NamedType
}

func (t *NonNullNamedType) Location() *Location { return t.Loc }
func (t *NonNullNamedType) isType()             {}

// NonNullListType : ListType !
type NonNullListType struct {
	Loc  *Location
	Type *ListType
}

func (t *NonNullListType) Location() *Location { return t.Loc }
func (t *NonNullListType) isType()             {}

// TypeCondition : on NamedType, reuses Name directly since a type
// condition carries nothing beyond the named type it references.
