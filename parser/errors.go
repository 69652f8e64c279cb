package parser

import (
	"fmt"

	"github.com/latticeql/graphql/lexer"
)

// ErrorKind classifies a syntactic failure.
type ErrorKind int

const (
	UnexpectedEof ErrorKind = iota // should never happen: peek() always sees a non-exhausted stream before Eof
	UnknownOperation
	UnexpectedToken
	MissingExpectedToken
	ExpectedValueNotFound
	DuplicateInputObjectField
	LexerError // wraps an underlying *lexer.Error; see Error.Cause
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedEof:
		return "end of input reached before it was expected"
	case UnknownOperation:
		return "unknown operation"
	case UnexpectedToken:
		return "unexpected token"
	case MissingExpectedToken:
		return "missing expected token"
	case ExpectedValueNotFound:
		return "expected a value"
	case DuplicateInputObjectField:
		return "duplicate input object field"
	case LexerError:
		return "lexical error"
	default:
		return "parse error"
	}
}

// Error is a syntactic failure at a specific byte offset. When Kind is
// LexerError, Cause holds the *lexer.Error that triggered it.
type Error struct {
	Kind   ErrorKind
	Offset int
	Cause  *lexer.Error
}

func (e *Error) Error() string {
	if e.Kind == LexerError && e.Cause != nil {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Unwrap lets callers use errors.As/errors.Is against the underlying lexer
// error when one is present.
func (e *Error) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return e.Cause
}

func fromLexError(err *lexer.Error) *Error {
	return &Error{Kind: LexerError, Offset: err.Offset, Cause: err}
}
