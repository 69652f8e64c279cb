// Package source holds the immutable (name, body) pair the lexer scans.
// Byte offsets into the body, not character indices, are the canonical
// position identifiers used throughout the lexer, parser, and AST.
package source

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultName is used when no display name is supplied.
const DefaultName = "GraphQL"

// Source is an immutable UTF-8 body paired with a human-readable name used
// only in error reporting. It is never normalized: no line-ending
// translation and no BOM stripping happen at construction time; the lexer
// treats a leading BOM as an ignored token instead.
type Source struct {
	Name string
	Body string
}

// New wraps body with the default display name.
func New(body string) *Source {
	return &Source{Name: DefaultName, Body: body}
}

// NewNamed wraps body with an explicit display name.
func NewNamed(name, body string) *Source {
	return &Source{Name: name, Body: body}
}

// FromFile reads the whole file at path into memory and names the Source
// after the file's basename, falling back to DefaultName when the path has
// no filename component.
func FromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source file %q", path)
	}
	return &Source{Name: baseName(path), Body: string(data)}, nil
}

// Position converts a byte offset into the body into a 1-based (line,
// column) pair, counting columns in runes rather than bytes. An offset past
// the end of the body is clamped to the body's length.
func (s *Source) Position(offset int) (line, column int) {
	if offset > len(s.Body) {
		offset = len(s.Body)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if s.Body[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	column = len([]rune(s.Body[lineStart:offset])) + 1
	return line, column
}

func baseName(path string) string {
	name := filepath.Base(path)
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultName
	}
	return name
}
