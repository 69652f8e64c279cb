// Package parser implements a recursive-descent parser for the GraphQL
// executable-document grammar: queries, mutations, fragment definitions,
// and (as a straightforward extension) subscriptions. It consumes a
// lexer.Lexer token stream with a single token of lookahead and produces an
// ast.Document. Parsing is strict: the first error halts the parse and any
// partial AST is discarded.
package parser

import (
	"io"

	"github.com/latticeql/graphql/ast"
	"github.com/latticeql/graphql/lexer"
	"github.com/latticeql/graphql/token"
)

// Parser drives a lexer.Lexer with one token of lookahead.
type Parser struct {
	lex    *lexer.Lexer
	tok    token.Token
	tokErr error // nil, a *lexer.Error, or io.EOF once the stream is exhausted
	primed bool
	curr   int // end offset of the most recently consumed token
}

// New creates a Parser over lex.
func New(lex *lexer.Lexer) *Parser {
	return &Parser{lex: lex}
}

func (p *Parser) prime() {
	if p.primed {
		return
	}
	p.primed = true
	p.tok, p.tokErr = p.lex.Next()
}

// peek returns the next token without consuming it.
func (p *Parser) peek() (token.Token, error) {
	p.prime()
	switch err := p.tokErr.(type) {
	case nil:
		return p.tok, nil
	case *lexer.Error:
		return token.Token{}, fromLexError(err)
	default:
		if p.tokErr == io.EOF {
			return token.Token{}, &Error{Kind: UnexpectedEof}
		}
		return token.Token{}, p.tokErr
	}
}

// advance consumes and returns the next token, updating curr to its end
// offset so that loc() can compute node locations.
func (p *Parser) advance() (token.Token, error) {
	t, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	p.curr = t.End
	p.tok, p.tokErr = p.lex.Next()
	return t, nil
}

// loc builds a Location spanning from start (the byte offset of the first
// token consumed by the current production) to the end offset of the most
// recently consumed token.
func (p *Parser) loc(start int) *ast.Location {
	return &ast.Location{Start: start, End: p.curr}
}

// ParseDocument parses a complete Document: Definition+.
func (p *Parser) ParseDocument() (*ast.Document, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := tok.Start

	var defs []ast.Definition
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			break
		}
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		return nil, &Error{Kind: MissingExpectedToken, Offset: start}
	}
	return &ast.Document{Loc: p.loc(start), Definitions: defs}, nil
}

func (p *Parser) parseDefinition() (ast.Definition, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := tok.Start

	if tok.Kind == token.LBRACE {
		return p.parseShortOperation(start)
	}
	if tok.Kind != token.NAME {
		return nil, &Error{Kind: UnexpectedToken, Offset: tok.Start}
	}

	switch tok.Lit {
	case "query":
		p.advance()
		return p.parseOperationDefinition(ast.Query, start)
	case "mutation":
		p.advance()
		return p.parseOperationDefinition(ast.Mutation, start)
	case "subscription":
		p.advance()
		return p.parseOperationDefinition(ast.Subscription, start)
	case "fragment":
		p.advance()
		return p.parseFragmentDefinition(start)
	default:
		return nil, &Error{Kind: UnknownOperation, Offset: tok.Start}
	}
}

func (p *Parser) parseShortOperation(start int) (ast.Definition, error) {
	selSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}
	return &ast.OperationDefinition{
		Loc:          p.loc(start),
		Operation:    ast.Query,
		SelectionSet: selSet,
	}, nil
}

func (p *Parser) parseOperationDefinition(op ast.OperationType, start int) (ast.Definition, error) {
	var name *ast.Name
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.NAME {
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	}

	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	var varDefs []*ast.VariableDefinition
	if tok.Kind == token.LPAREN {
		varDefs, err = p.parseVariableDefinitions()
		if err != nil {
			return nil, err
		}
	}

	dirs, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	selSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.OperationDefinition{
		Loc:                 p.loc(start),
		Operation:           op,
		Name:                name,
		VariableDefinitions: varDefs,
		Directives:          dirs,
		SelectionSet:        selSet,
	}, nil
}

func (p *Parser) parseFragmentDefinition(start int) (ast.Definition, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if name.Value == "on" {
		return nil, &Error{Kind: UnexpectedToken, Offset: name.Loc.Start}
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.NAME || tok.Lit != "on" {
		return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
	}
	p.advance()

	typeCond, err := p.parseName()
	if err != nil {
		return nil, err
	}

	dirs, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	selSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	return &ast.FragmentDefinition{
		Loc:           p.loc(start),
		Name:          name,
		TypeCondition: typeCond,
		Directives:    dirs,
		SelectionSet:  selSet,
	}, nil
}

func (p *Parser) parseName() (*ast.Name, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.NAME {
		return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.Name{Loc: p.loc(tok.Start), Value: tok.Lit}, nil
}

func (p *Parser) parseSelectionSet() (*ast.SelectionSet, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.LBRACE {
		return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
	}
	start := tok.Start
	if _, err := p.advance(); err != nil {
		return nil, err
	}

	var sels []ast.Selection
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case token.NAME:
			sel, err := p.parseField()
			if err != nil {
				return nil, err
			}
			sels = append(sels, sel)
		case token.SPREAD:
			sel, err := p.parseFragmentOrSpread()
			if err != nil {
				return nil, err
			}
			sels = append(sels, sel)
		case token.RBRACE:
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			if len(sels) == 0 {
				return nil, &Error{Kind: MissingExpectedToken, Offset: start}
			}
			return &ast.SelectionSet{Loc: p.loc(start), Selections: sels}, nil
		default:
			return nil, &Error{Kind: UnexpectedToken, Offset: tok.Start}
		}
	}
}

func (p *Parser) parseField() (ast.Selection, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := tok.Start

	first, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name *ast.Name
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.COLON {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.NAME {
			return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
		}
		alias = first
		name, err = p.parseName()
		if err != nil {
			return nil, err
		}
	} else {
		name = first
	}

	args, err := p.parseArguments()
	if err != nil {
		return nil, err
	}
	dirs, err := p.parseDirectives()
	if err != nil {
		return nil, err
	}

	var selSet *ast.SelectionSet
	tok, err = p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.LBRACE {
		selSet, err = p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
	}

	return &ast.Field{
		Loc:          p.loc(start),
		Alias:        alias,
		Name:         name,
		Arguments:    args,
		Directives:   dirs,
		SelectionSet: selSet,
	}, nil
}

// parseArguments parses an optional Arguments block: ( Argument+ ). It
// returns (nil, nil) when the next token is not '('.
func (p *Parser) parseArguments() ([]*ast.Argument, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.LPAREN {
		return nil, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}

	var args []*ast.Argument
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RPAREN {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			break
		}
		if tok.Kind != token.NAME {
			return nil, &Error{Kind: UnexpectedToken, Offset: tok.Start}
		}
		start := tok.Start
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.COLON {
			return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		val, err := p.parseValue(false)
		if err != nil {
			return nil, err
		}
		args = append(args, &ast.Argument{Loc: p.loc(start), Name: name, Value: val})
	}
	if len(args) == 0 {
		return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
	}
	return args, nil
}

// parseDirectives parses zero or more '@ Name Arguments?' occurrences. It
// returns (nil, nil) when none are present.
func (p *Parser) parseDirectives() ([]*ast.Directive, error) {
	var dirs []*ast.Directive
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.AT {
			return dirs, nil
		}
		start := tok.Start
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		args, err := p.parseArguments()
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, &ast.Directive{Loc: p.loc(start), Name: name, Arguments: args})
	}
}

// parseFragmentOrSpread is called with '...' as the lookahead token. Three
// shapes follow it: 'on' NamedType marks an InlineFragment with a type
// condition; any other Name marks a FragmentSpread; anything else (an '@'
// or a bare '{') marks an anonymous InlineFragment with no type condition.
func (p *Parser) parseFragmentOrSpread() (ast.Selection, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := tok.Start
	if _, err := p.advance(); err != nil { // consume '...'
		return nil, err
	}

	tok, err = p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Kind == token.NAME && tok.Lit == "on" {
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		typeCond, err := p.parseName()
		if err != nil {
			return nil, err
		}
		dirs, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		selSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{Loc: p.loc(start), TypeCondition: typeCond, Directives: dirs, SelectionSet: selSet}, nil
	}

	if tok.Kind == token.NAME {
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		dirs, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		return &ast.FragmentSpread{Loc: p.loc(start), Name: name, Directives: dirs}, nil
	}

	if tok.Kind == token.AT || tok.Kind == token.LBRACE {
		dirs, err := p.parseDirectives()
		if err != nil {
			return nil, err
		}
		selSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return &ast.InlineFragment{Loc: p.loc(start), Directives: dirs, SelectionSet: selSet}, nil
	}

	return nil, &Error{Kind: UnexpectedToken, Offset: tok.Start}
}

// parseVariableDefinitions parses an optional '( $Name : Type (= ConstValue)? + )'.
// It returns (nil, nil) when the next token is not '('.
func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.LPAREN {
		return nil, nil
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}

	var vars []*ast.VariableDefinition
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RPAREN {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			break
		}
		if tok.Kind != token.DOLLAR {
			return nil, &Error{Kind: UnexpectedToken, Offset: tok.Start}
		}
		start := tok.Start
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		varName, err := p.parseName()
		if err != nil {
			return nil, err
		}

		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.COLON {
			return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}

		var def ast.Value
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EQUALS {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			def, err = p.parseValue(true)
			if err != nil {
				return nil, err
			}
		}

		vars = append(vars, &ast.VariableDefinition{Loc: p.loc(start), Variable: varName, Type: typ, DefaultValue: def})
	}
	if len(vars) == 0 {
		return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
	}
	return vars, nil
}

func (p *Parser) parseType() (ast.Type, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Kind == token.LBRACKET {
		start := tok.Start
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.RBRACKET {
			return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		list := &ast.ListType{Loc: p.loc(start), Elem: elem}

		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.BANG {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.NonNullListType{Loc: p.loc(start), Type: list}, nil
		}
		return list, nil
	}

	if tok.Kind == token.NAME {
		start := tok.Start
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		named := &ast.NamedType{Loc: p.loc(start), Name: name}

		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.BANG {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.NonNullNamedType{Loc: p.loc(start), Type: named}, nil
		}
		return named, nil
	}

	return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
}

// parseValue parses a Value production. When isConst is true, '$' (Variable)
// is rejected with ExpectedValueNotFound, matching the DefaultValue /
// constant-object-field contexts of the grammar.
func (p *Parser) parseValue(isConst bool) (ast.Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case token.LBRACKET:
		return p.parseListValue(isConst)
	case token.LBRACE:
		return p.parseObjectValue(isConst)
	case token.DOLLAR:
		if isConst {
			return nil, &Error{Kind: ExpectedValueNotFound, Offset: tok.Start}
		}
		return p.parseVariable()
	case token.NAME:
		switch tok.Lit {
		case "true", "false":
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.BooleanValue{Loc: p.loc(tok.Start), Value: tok.Lit == "true"}, nil
		case "null":
			return nil, &Error{Kind: ExpectedValueNotFound, Offset: tok.Start}
		default:
			name, err := p.parseName()
			if err != nil {
				return nil, err
			}
			return &ast.EnumValue{Loc: name.Loc, Name: name}, nil
		}
	case token.INT:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntValue{Loc: p.loc(tok.Start), Text: tok.Lit}, nil
	case token.FLOAT:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.FloatValue{Loc: p.loc(tok.Start), Text: tok.Lit}, nil
	case token.STRING:
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringValue{Loc: p.loc(tok.Start), Value: tok.Lit}, nil
	default:
		return nil, &Error{Kind: UnexpectedToken, Offset: tok.Start}
	}
}

func (p *Parser) parseVariable() (ast.Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := tok.Start
	if _, err := p.advance(); err != nil { // consume '$'
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Loc: p.loc(start), Name: name}, nil
}

func (p *Parser) parseListValue(isConst bool) (ast.Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := tok.Start
	if _, err := p.advance(); err != nil { // consume '['
		return nil, err
	}

	var vals []ast.Value
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RBRACKET {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.ListValue{Loc: p.loc(start), Values: vals}, nil
		}
		v, err := p.parseValue(isConst)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

func (p *Parser) parseObjectValue(isConst bool) (ast.Value, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	start := tok.Start
	if _, err := p.advance(); err != nil { // consume '{'
		return nil, err
	}

	seen := make(map[string]bool)
	var fields []*ast.ObjectField
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.RBRACE {
			if _, err := p.advance(); err != nil {
				return nil, err
			}
			return &ast.ObjectValue{Loc: p.loc(start), Fields: fields}, nil
		}
		if tok.Kind != token.NAME {
			return nil, &Error{Kind: UnexpectedToken, Offset: tok.Start}
		}
		fieldStart := tok.Start
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if seen[name.Value] {
			return nil, &Error{Kind: DuplicateInputObjectField, Offset: fieldStart}
		}
		seen[name.Value] = true

		tok, err = p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.COLON {
			return nil, &Error{Kind: MissingExpectedToken, Offset: tok.Start}
		}
		if _, err := p.advance(); err != nil {
			return nil, err
		}
		val, err := p.parseValue(isConst)
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.ObjectField{Loc: p.loc(fieldStart), Name: name, Value: val})
	}
}
