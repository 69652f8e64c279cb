package graphql

import (
	"fmt"

	"github.com/latticeql/graphql/lexer"
	"github.com/latticeql/graphql/parser"
	"github.com/latticeql/graphql/source"
)

// Error is the unified failure type returned by Parse, ParseSource, and
// ParseFile. Exactly one of Lexer, Parser, or Io is non-nil.
type Error struct {
	Source *source.Source
	Lexer  *lexer.Error
	Parser *parser.Error
	Io     error
}

func (e *Error) Error() string {
	switch {
	case e.Io != nil:
		return fmt.Sprintf("graphql: %s", e.Io)
	case e.Lexer != nil:
		line, col := e.Source.Position(e.Lexer.Offset)
		return fmt.Sprintf("graphql: %s:%d:%d: %s", e.Source.Name, line, col, e.Lexer.Kind)
	case e.Parser != nil:
		line, col := e.Source.Position(e.Parser.Offset)
		return fmt.Sprintf("graphql: %s:%d:%d: %s", e.Source.Name, line, col, e.Parser.Kind)
	default:
		return "graphql: unknown error"
	}
}

// Unwrap exposes the underlying lexer.Error, parser.Error, or I/O error so
// callers can use errors.As against the concrete cause.
func (e *Error) Unwrap() error {
	switch {
	case e.Io != nil:
		return e.Io
	case e.Lexer != nil:
		return e.Lexer
	case e.Parser != nil:
		return e.Parser
	default:
		return nil
	}
}
