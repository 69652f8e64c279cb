// Package graphql provides a GraphQL executable-document front end for Go:
// lexing, parsing, and an AST with a go/ast-style visitor. Query execution
// against a schema is out of scope for this package.
package graphql

import (
	"github.com/pkg/errors"

	"github.com/latticeql/graphql/ast"
	"github.com/latticeql/graphql/lexer"
	"github.com/latticeql/graphql/parser"
	"github.com/latticeql/graphql/source"
	"github.com/latticeql/graphql/token"
)

// ===========================
// Re-exported Types
// ===========================

// Token types
type (
	TokenKind = token.Kind
	Token     = token.Token
)

// Token kind constants
const (
	ILLEGAL  = token.ILLEGAL
	EOF      = token.EOF
	BANG     = token.BANG
	DOLLAR   = token.DOLLAR
	LPAREN   = token.LPAREN
	RPAREN   = token.RPAREN
	SPREAD   = token.SPREAD
	COLON    = token.COLON
	EQUALS   = token.EQUALS
	AT       = token.AT
	LBRACKET = token.LBRACKET
	RBRACKET = token.RBRACKET
	LBRACE   = token.LBRACE
	RBRACE   = token.RBRACE
	PIPE     = token.PIPE
	NAME     = token.NAME
	INT      = token.INT
	FLOAT    = token.FLOAT
	STRING   = token.STRING
)

// AST types
type (
	Node                = ast.Node
	Location            = ast.Location
	Document            = ast.Document
	Definition          = ast.Definition
	Name                = ast.Name
	OperationType       = ast.OperationType
	OperationDefinition = ast.OperationDefinition
	FragmentDefinition  = ast.FragmentDefinition
	VariableDefinition  = ast.VariableDefinition
	SelectionSet        = ast.SelectionSet
	Selection           = ast.Selection
	Field               = ast.Field
	FragmentSpread      = ast.FragmentSpread
	InlineFragment      = ast.InlineFragment
	Directive           = ast.Directive
	Argument            = ast.Argument
	Type                = ast.Type
	NamedType           = ast.NamedType
	ListType            = ast.ListType
	NonNullNamedType    = ast.NonNullNamedType
	NonNullListType     = ast.NonNullListType
	Value               = ast.Value
	Variable            = ast.Variable
	IntValue            = ast.IntValue
	FloatValue          = ast.FloatValue
	StringValue         = ast.StringValue
	BooleanValue        = ast.BooleanValue
	EnumValue           = ast.EnumValue
	ListValue           = ast.ListValue
	ObjectValue         = ast.ObjectValue
	ObjectField         = ast.ObjectField
	Visitor             = ast.Visitor
)

const (
	Query        = ast.Query
	Mutation     = ast.Mutation
	Subscription = ast.Subscription
)

// Lexer and Source types
type (
	Lexer  = lexer.Lexer
	Source = source.Source
)

// ===========================
// Convenience Functions
// ===========================

// NewSource wraps body as an unnamed Source.
func NewSource(body string) *Source {
	return source.New(body)
}

// NewLexer creates a lexer over src.
func NewLexer(src *Source) *Lexer {
	return lexer.New(src)
}

// Walk traverses node in depth-first order; see ast.Walk.
func Walk(v Visitor, node Node) {
	ast.Walk(v, node)
}

// Inspect traverses node calling f for each node; see ast.Inspect.
func Inspect(node Node, f func(Node) bool) {
	ast.Inspect(node, f)
}

// Parse parses body as a GraphQL executable document.
func Parse(body string) (*Document, error) {
	return ParseSource(source.New(body))
}

// ParseSource parses src as a GraphQL executable document.
func ParseSource(src *Source) (*Document, error) {
	p := parser.New(lexer.New(src))
	doc, err := p.ParseDocument()
	if err != nil {
		return nil, wrapParseErr(src, err)
	}
	return doc, nil
}

// ParseFile reads path and parses its contents as a GraphQL executable
// document. The file's base name becomes the resulting Source's name, which
// appears in Error.Error() for diagnostics.
func ParseFile(path string) (*Document, error) {
	src, err := source.FromFile(path)
	if err != nil {
		return nil, &Error{Io: err}
	}
	doc, err := ParseSource(src)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func wrapParseErr(src *Source, err error) error {
	if lexErr, ok := err.(*lexer.Error); ok {
		return &Error{Source: src, Lexer: lexErr}
	}
	if parseErr, ok := err.(*parser.Error); ok {
		if parseErr.Cause != nil {
			return &Error{Source: src, Lexer: parseErr.Cause}
		}
		return &Error{Source: src, Parser: parseErr}
	}
	return errors.Wrapf(err, "graphql: parsing %s", src.Name)
}
