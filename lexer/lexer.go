// Package lexer turns UTF-8 GraphQL source text into a stream of tokens
// with byte-accurate source offsets. It is single-pass, pull-based, and
// holds no seek or clone capability: callers drive it one Next call at a
// time.
package lexer

import (
	"io"
	"unicode/utf8"

	"github.com/latticeql/graphql/internal/escape"
	"github.com/latticeql/graphql/source"
	"github.com/latticeql/graphql/token"
)

// Lexer scans a Source body into Tokens on demand.
type Lexer struct {
	src *source.Source

	pos  int  // byte offset of the rune under ch
	ch   rune // rune at pos; utf8.RuneError-sized 0 at end of input
	size int  // byte width of ch

	done bool // Eof already emitted
}

// New creates a Lexer over src.
func New(src *source.Source) *Lexer {
	l := &Lexer{src: src}
	l.readRune()
	return l
}

func (l *Lexer) readRune() {
	next := l.pos + l.size
	if next >= len(l.src.Body) {
		l.pos = len(l.src.Body)
		l.ch = 0
		l.size = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.src.Body[next:])
	l.pos = next
	l.ch = r
	l.size = size
}

// consumedAll reports whether the cursor has moved past the last rune of
// the body.
func (l *Lexer) consumedAll() bool {
	return l.pos >= len(l.src.Body)
}

// Next returns the next token. Once Eof has been returned, every subsequent
// call returns io.EOF to signal that the stream is exhausted; any other
// error is a lexical error and is terminal for this parse.
func (l *Lexer) Next() (token.Token, error) {
	if l.done {
		return token.Token{}, io.EOF
	}

	l.skipIgnored()
	if l.consumedAll() {
		l.done = true
		return token.Token{Kind: token.EOF, Start: len(l.src.Body), End: len(l.src.Body)}, nil
	}

	switch {
	case l.ch == '!':
		return l.punctuator(token.BANG)
	case l.ch == '$':
		return l.punctuator(token.DOLLAR)
	case l.ch == '(':
		return l.punctuator(token.LPAREN)
	case l.ch == ')':
		return l.punctuator(token.RPAREN)
	case l.ch == ':':
		return l.punctuator(token.COLON)
	case l.ch == '=':
		return l.punctuator(token.EQUALS)
	case l.ch == '@':
		return l.punctuator(token.AT)
	case l.ch == '[':
		return l.punctuator(token.LBRACKET)
	case l.ch == ']':
		return l.punctuator(token.RBRACKET)
	case l.ch == '{':
		return l.punctuator(token.LBRACE)
	case l.ch == '}':
		return l.punctuator(token.RBRACE)
	case l.ch == '|':
		return l.punctuator(token.PIPE)
	case l.ch == '.':
		return l.scanSpread()
	case isNameStart(l.ch):
		return l.scanName()
	case l.ch == '-' || isDigit(l.ch):
		return l.scanNumber()
	case l.ch == '"':
		return l.scanString()
	default:
		return token.Token{}, &Error{Kind: UnexpectedChar, Offset: l.pos}
	}
}

func (l *Lexer) punctuator(kind token.Kind) (token.Token, error) {
	start := l.pos
	l.readRune()
	return token.Token{Kind: kind, Start: start, End: l.pos}, nil
}

// skipIgnored consumes any run of BOM, ASCII whitespace, commas, and line
// comments. Commas are pure whitespace in GraphQL.
func (l *Lexer) skipIgnored() {
	for {
		if l.ch == '#' {
			for !l.consumedAll() && l.ch != '\r' && l.ch != '\n' {
				l.readRune()
			}
		}
		if l.consumedAll() {
			return
		}
		if l.ch == '\uFEFF' || l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' || l.ch == ',' {
			l.readRune()
			continue
		}
		return
	}
}

// scanSpread recognizes '...' only when three consecutive dots appear; a
// lone '.' or '..' is a lexical error.
func (l *Lexer) scanSpread() (token.Token, error) {
	start := l.pos
	for i := 0; i < 3; i++ {
		if l.ch != '.' {
			return token.Token{}, &Error{Kind: UnexpectedChar, Offset: start}
		}
		l.readRune()
	}
	return token.Token{Kind: token.SPREAD, Start: start, End: l.pos}, nil
}

func (l *Lexer) scanName() (token.Token, error) {
	start := l.pos
	for isNameStart(l.ch) || isDigit(l.ch) {
		l.readRune()
	}
	return token.Token{Kind: token.NAME, Start: start, End: l.pos, Lit: l.src.Body[start:l.pos]}, nil
}

// scanNumber is the shared Int/Float scanner: a single optional leading
// '-', then either a lone '0' or a non-zero digit run, optionally promoted
// to Float by a fractional and/or exponent part. The token after the
// numeric lexeme must be end-of-input, an ignored-token character, or a
// punctuator.
func (l *Lexer) scanNumber() (token.Token, error) {
	start := l.pos
	if l.ch == '-' {
		l.readRune()
	}

	switch {
	case l.ch == '0':
		l.readRune()
	case isDigit(l.ch):
		for isDigit(l.ch) {
			l.readRune()
		}
	default:
		return token.Token{}, &Error{Kind: InvalidInt, Offset: start}
	}

	isFloat := false
	if l.ch == '.' {
		isFloat = true
		l.readRune()
		if !isDigit(l.ch) {
			return token.Token{}, &Error{Kind: InvalidFloat, Offset: start}
		}
		for isDigit(l.ch) {
			l.readRune()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readRune()
		if l.ch == '+' || l.ch == '-' {
			l.readRune()
		}
		if !isDigit(l.ch) {
			return token.Token{}, &Error{Kind: InvalidFloat, Offset: start}
		}
		for isDigit(l.ch) {
			l.readRune()
		}
	}

	if !l.atNumberBoundary() {
		if isFloat {
			return token.Token{}, &Error{Kind: InvalidFloat, Offset: start}
		}
		return token.Token{}, &Error{Kind: InvalidInt, Offset: start}
	}

	if isFloat {
		return token.Token{Kind: token.FLOAT, Start: start, End: l.pos, Lit: l.src.Body[start:l.pos]}, nil
	}
	return token.Token{Kind: token.INT, Start: start, End: l.pos, Lit: l.src.Body[start:l.pos]}, nil
}

func (l *Lexer) atNumberBoundary() bool {
	if l.consumedAll() {
		return true
	}
	switch l.ch {
	case ' ', '\t', '\r', '\n', ',', '\uFEFF', '#':
		return true
	case '!', '$', '(', ')', ':', '=', '@', '[', ']', '{', '}', '|':
		return true
	case '.':
		// a following '...' (spread) also terminates the numeric lexeme
		return true
	default:
		return false
	}
}

// scanString reads a StringValue. The reported [Start, End) covers the
// content between the delimiting quotes.
func (l *Lexer) scanString() (token.Token, error) {
	quoteOffset := l.pos
	l.readRune() // consume opening quote
	contentStart := l.pos

	for {
		if l.consumedAll() {
			return token.Token{}, &Error{Kind: UnterminatedString, Offset: quoteOffset}
		}
		switch l.ch {
		case '"':
			raw := l.src.Body[contentStart:l.pos]
			end := l.pos
			l.readRune() // consume closing quote
			decoded, escErr := escape.Decode(raw)
			if escErr != nil {
				return token.Token{}, &Error{Kind: escapeErrorKind(escErr.Kind), Offset: contentStart + escErr.Offset}
			}
			return token.Token{Kind: token.STRING, Start: contentStart, End: end, Lit: decoded}, nil
		case '\r', '\n':
			return token.Token{}, &Error{Kind: UnterminatedString, Offset: l.pos}
		case '\\':
			l.readRune() // step over the backslash; escape.Decode validates what follows
			if l.consumedAll() {
				return token.Token{}, &Error{Kind: UnterminatedString, Offset: quoteOffset}
			}
			l.readRune()
		default:
			l.readRune()
		}
	}
}

func escapeErrorKind(k escape.ErrorKind) ErrorKind {
	switch k {
	case escape.BadUnicodeEscape:
		return BadUnicodeEscape
	case escape.InvalidUtfChar:
		return InvalidUtfChar
	default:
		return BadEscape
	}
}

func isNameStart(r rune) bool {
	return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
