package ast

// SelectionSet : { Selection+ }
type SelectionSet struct {
	Loc        *Location
	Selections []Selection
}

func (s *SelectionSet) Location() *Location { return s.Loc }

// Selection is implemented by Field, FragmentSpread, and InlineFragment.
type Selection interface {
	Node
	isSelection()
}

// Field : Alias? Name Arguments? Directives? SelectionSet?
type Field struct {
	Loc          *Location
	Alias        *Name // set only when a ':' followed the first Name
	Name         *Name
	Arguments    []*Argument
	Directives   []*Directive
	SelectionSet *SelectionSet // nil for leaf fields
}

func (f *Field) Location() *Location { return f.Loc }
func (f *Field) isSelection()        {}

// FragmentSpread : ... FragmentName Directives?
type FragmentSpread struct {
	Loc        *Location
	Name       *Name // never "on"
	Directives []*Directive
}

func (f *FragmentSpread) Location() *Location { return f.Loc }
func (f *FragmentSpread) isSelection()        {}

// InlineFragment : ... TypeCondition? Directives? SelectionSet
type InlineFragment struct {
	Loc           *Location
	TypeCondition *Name // nil when the fragment has no "on Type" clause
	Directives    []*Directive
	SelectionSet  *SelectionSet
}

func (f *InlineFragment) Location() *Location { return f.Loc }
func (f *InlineFragment) isSelection()        {}
