package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeql/graphql/ast"
	"github.com/latticeql/graphql/lexer"
	"github.com/latticeql/graphql/source"
)

func parse(t *testing.T, body string) (*ast.Document, error) {
	t.Helper()
	return New(lexer.New(source.New(body))).ParseDocument()
}

func mustParse(t *testing.T, body string) *ast.Document {
	t.Helper()
	doc, err := parse(t, body)
	require.NoError(t, err, "parsing %q", body)
	return doc
}

// ignoreLoc drops every *ast.Location field from a cmp comparison, so tests
// can assert on tree shape without hand-computing byte offsets.
var ignoreLoc = cmpopts.IgnoreTypes(&ast.Location{})

func TestShortFormOperation(t *testing.T) {
	doc := mustParse(t, `{ id name }`)
	require.Len(t, doc.Definitions, 1)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, ast.Query, op.Operation)
	assert.Nil(t, op.Name)
	require.Len(t, op.SelectionSet.Selections, 2)
	assert.Equal(t, "id", op.SelectionSet.Selections[0].(*ast.Field).Name.Value)
	assert.Equal(t, "name", op.SelectionSet.Selections[1].(*ast.Field).Name.Value)
}

func TestFullOperationWithVariablesAndDirectives(t *testing.T) {
	doc := mustParse(t, `query Greeting($name: String! = "world") @cached {
		hello(who: $name) @include(if: true)
	}`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	assert.Equal(t, ast.Query, op.Operation)
	require.NotNil(t, op.Name)
	assert.Equal(t, "Greeting", op.Name.Value)

	require.Len(t, op.VariableDefinitions, 1)
	vd := op.VariableDefinitions[0]
	assert.Equal(t, "name", vd.Variable.Value)
	nonNull, ok := vd.Type.(*ast.NonNullNamedType)
	require.True(t, ok, "expected NonNullNamedType, got %T", vd.Type)
	assert.Equal(t, "String", nonNull.Type.Name.Value)
	require.IsType(t, &ast.StringValue{}, vd.DefaultValue)
	assert.Equal(t, "world", vd.DefaultValue.(*ast.StringValue).Value)

	require.Len(t, op.Directives, 1)
	assert.Equal(t, "cached", op.Directives[0].Name.Value)

	require.Len(t, op.SelectionSet.Selections, 1)
	field := op.SelectionSet.Selections[0].(*ast.Field)
	assert.Equal(t, "hello", field.Name.Value)
	require.Len(t, field.Arguments, 1)
	assert.Equal(t, "who", field.Arguments[0].Name.Value)
	variable, ok := field.Arguments[0].Value.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "name", variable.Name.Value)
	require.Len(t, field.Directives, 1)
	assert.Equal(t, "include", field.Directives[0].Name.Value)
}

func TestMutationAndSubscriptionKeywords(t *testing.T) {
	doc := mustParse(t, `mutation { a } subscription { b }`)
	require.Len(t, doc.Definitions, 2)
	assert.Equal(t, ast.Mutation, doc.Definitions[0].(*ast.OperationDefinition).Operation)
	assert.Equal(t, ast.Subscription, doc.Definitions[1].(*ast.OperationDefinition).Operation)
}

func TestFieldAlias(t *testing.T) {
	doc := mustParse(t, `{ myAlias: realName }`)
	field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	require.NotNil(t, field.Alias)
	assert.Equal(t, "myAlias", field.Alias.Value)
	assert.Equal(t, "realName", field.Name.Value)
}

func TestFragmentDefinitionAndSpread(t *testing.T) {
	doc := mustParse(t, `
		query { user { ...basicFields } }
		fragment basicFields on User { id name }
	`)
	require.Len(t, doc.Definitions, 2)

	op := doc.Definitions[0].(*ast.OperationDefinition)
	userField := op.SelectionSet.Selections[0].(*ast.Field)
	spread := userField.SelectionSet.Selections[0].(*ast.FragmentSpread)
	assert.Equal(t, "basicFields", spread.Name.Value)

	frag := doc.Definitions[1].(*ast.FragmentDefinition)
	assert.Equal(t, "basicFields", frag.Name.Value)
	assert.Equal(t, "User", frag.TypeCondition.Value)
	require.Len(t, frag.SelectionSet.Selections, 2)
}

func TestInlineFragmentWithTypeCondition(t *testing.T) {
	doc := mustParse(t, `{ pet { ... on Cat { meows } ... on Dog { barks } } }`)
	petField := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	require.Len(t, petField.SelectionSet.Selections, 2)

	cat := petField.SelectionSet.Selections[0].(*ast.InlineFragment)
	require.NotNil(t, cat.TypeCondition)
	assert.Equal(t, "Cat", cat.TypeCondition.Value)
	assert.Equal(t, "meows", cat.SelectionSet.Selections[0].(*ast.Field).Name.Value)
}

func TestAnonymousInlineFragment(t *testing.T) {
	doc := mustParse(t, `{ node { ... @include(if: true) { id } } }`)
	nodeField := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	inline := nodeField.SelectionSet.Selections[0].(*ast.InlineFragment)
	assert.Nil(t, inline.TypeCondition)
	require.Len(t, inline.Directives, 1)
	assert.Equal(t, "include", inline.Directives[0].Name.Value)
}

func TestListAndObjectValues(t *testing.T) {
	doc := mustParse(t, `{ f(tags: ["a", "b"], meta: {k1: 1, k2: [true, false]}) }`)
	field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	require.Len(t, field.Arguments, 2)

	tags := field.Arguments[0].Value.(*ast.ListValue)
	require.Len(t, tags.Values, 2)
	assert.Equal(t, "a", tags.Values[0].(*ast.StringValue).Value)
	assert.Equal(t, "b", tags.Values[1].(*ast.StringValue).Value)

	meta := field.Arguments[1].Value.(*ast.ObjectValue)
	require.Len(t, meta.Fields, 2)
	assert.Equal(t, "k1", meta.Fields[0].Name.Value)
	assert.Equal(t, "1", meta.Fields[0].Value.(*ast.IntValue).Text)
	nestedList := meta.Fields[1].Value.(*ast.ListValue)
	require.Len(t, nestedList.Values, 2)
	assert.True(t, nestedList.Values[0].(*ast.BooleanValue).Value)
	assert.False(t, nestedList.Values[1].(*ast.BooleanValue).Value)
}

func TestEnumValue(t *testing.T) {
	doc := mustParse(t, `{ f(color: RED) }`)
	field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet.Selections[0].(*ast.Field)
	enum := field.Arguments[0].Value.(*ast.EnumValue)
	assert.Equal(t, "RED", enum.Name.Value)
}

func TestListAndNonNullTypes(t *testing.T) {
	doc := mustParse(t, `query Q($a: [Int], $b: [Int!]!) { f }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	require.Len(t, op.VariableDefinitions, 2)

	list, ok := op.VariableDefinitions[0].Type.(*ast.ListType)
	require.True(t, ok)
	_, ok = list.Elem.(*ast.NamedType)
	require.True(t, ok)

	nonNullList, ok := op.VariableDefinitions[1].Type.(*ast.NonNullListType)
	require.True(t, ok)
	_, ok = nonNullList.Type.Elem.(*ast.NonNullNamedType)
	require.True(t, ok)
}

func TestDuplicateInputObjectFieldIsAnError(t *testing.T) {
	_, err := parse(t, `{ f(obj: {a: 1, a: 2}) }`)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, DuplicateInputObjectField, perr.Kind)
}

func TestNullIsRejectedAsAValue(t *testing.T) {
	_, err := parse(t, `{ f(x: null) }`)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ExpectedValueNotFound, perr.Kind)
}

func TestVariableRejectedInConstContext(t *testing.T) {
	_, err := parse(t, `query Q($a: Int = $b) { f }`)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ExpectedValueNotFound, perr.Kind)
}

func TestUnknownKeywordIsUnknownOperation(t *testing.T) {
	_, err := parse(t, `spaghetti { a }`)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnknownOperation, perr.Kind)
}

func TestEmptyDocumentIsAnError(t *testing.T) {
	_, err := parse(t, ``)
	require.Error(t, err)
}

func TestEmptySelectionSetIsAnError(t *testing.T) {
	_, err := parse(t, `{ }`)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, MissingExpectedToken, perr.Kind)
}

func TestLexErrorIsWrapped(t *testing.T) {
	_, err := parse(t, `{ f(x: 00) }`)
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, LexerError, perr.Kind)
	require.NotNil(t, perr.Cause)
	assert.Equal(t, lexer.InvalidInt, perr.Cause.Kind)
}

func TestNodeLocationUsesTrueStartOffset(t *testing.T) {
	doc := mustParse(t, `  query Q { a }`)
	op := doc.Definitions[0].(*ast.OperationDefinition)
	// "query" begins at offset 2, not at the offset of the first token
	// consumed inside one of its children.
	assert.Equal(t, 2, op.Loc.Start)
}

// TestPrettyPrintedDocumentIsReadable checks that godebug/pretty formats a
// Document into a readable, deeply nested dump that follows pointers and
// shows field values such as names, rather than a Go %+v of bare pointers.
func TestPrettyPrintedDocumentIsReadable(t *testing.T) {
	doc := mustParse(t, `query Greeting { hero { name } }`)
	dump := pretty.Sprint(doc)
	assert.Contains(t, dump, `Value: "Greeting"`)
	assert.Contains(t, dump, `Value: "hero"`)
}

func TestFullDocumentShapeIgnoringLocations(t *testing.T) {
	doc := mustParse(t, `{ a }`)
	want := &ast.Document{
		Definitions: []ast.Definition{
			&ast.OperationDefinition{
				Operation: ast.Query,
				SelectionSet: &ast.SelectionSet{
					Selections: []ast.Selection{
						&ast.Field{Name: &ast.Name{Value: "a"}},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, doc, ignoreLoc); diff != "" {
		t.Errorf("document shape mismatch (-want +got):\n%s", diff)
	}
}
