package ast

// Value is implemented by Variable, IntValue, FloatValue, StringValue,
// BooleanValue, EnumValue, ListValue, and ObjectValue. A Variable only ever
// appears in a non-constant context; default values and other constant
// positions never produce one.
type Value interface {
	Node
	isValue()
}

// Variable : $ Name
type Variable struct {
	Loc  *Location
	Name *Name
}

func (v *Variable) Location() *Location { return v.Loc }
func (v *Variable) isValue()            {}

// IntValue :: IntegerPart, the raw source text, not a parsed machine int;
// numeric conversion is left to consumers.
type IntValue struct {
	Loc  *Location
	Text string
}

func (v *IntValue) Location() *Location { return v.Loc }
func (v *IntValue) isValue()            {}

// FloatValue :: IntegerPart (FractionalPart | ExponentPart | both), raw
// source text, as with IntValue.
type FloatValue struct {
	Loc  *Location
	Text string
}

func (v *FloatValue) Location() *Location { return v.Loc }
func (v *FloatValue) isValue()            {}

// StringValue is always the decoded content: escape processing produces
// bytes not present in the input, so unlike Int/Float it cannot borrow from
// the source.
type StringValue struct {
	Loc   *Location
	Value string
}

func (v *StringValue) Location() *Location { return v.Loc }
func (v *StringValue) isValue()            {}

// BooleanValue : one of `true` `false`
type BooleanValue struct {
	Loc   *Location
	Value bool
}

func (v *BooleanValue) Location() *Location { return v.Loc }
func (v *BooleanValue) isValue()            {}

// EnumValue : Name but not `true`, `false`, or `null`
type EnumValue struct {
	Loc  *Location
	Name *Name
}

func (v *EnumValue) Location() *Location { return v.Loc }
func (v *EnumValue) isValue()            {}

// ListValue[Const] : [ ] | [ Value[?Const]+ ]
type ListValue struct {
	Loc    *Location
	Values []Value
}

func (v *ListValue) Location() *Location { return v.Loc }
func (v *ListValue) isValue()            {}

// ObjectValue[Const] : { } | { ObjectField[?Const]+ }
type ObjectValue struct {
	Loc    *Location
	Fields []*ObjectField
}

func (v *ObjectValue) Location() *Location { return v.Loc }
func (v *ObjectValue) isValue()            {}

// ObjectField[Const] : Name : Value[?Const]
type ObjectField struct {
	Loc   *Location
	Name  *Name
	Value Value
}

func (f *ObjectField) Location() *Location { return f.Loc }
