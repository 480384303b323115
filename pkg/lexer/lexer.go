// Package lexer turns source text into the token sequence the parser consumes.
//
// It recognizes names, digit runs and a configurable set of single-rune
// symbols, skips whitespace, and ends every sequence with one EOF token.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/sandrolain/gopratt/pkg/token"
	"github.com/sandrolain/gopratt/pkg/types"
)

const eof = -1

// Lexer converts an expression into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go" technique.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
	symbols string // Runes that form single-rune tokens
	err     error  // First error encountered
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithSymbols replaces the set of single-rune symbols. Each rune r becomes a
// token of type token.Type(string(r)).
func WithSymbols(symbols string) Option {
	return func(l *Lexer) {
		l.symbols = symbols
	}
}

// New creates a lexer from the provided input string. The default symbol set
// is the one of the Bantam grammar.
func New(input string, opts ...Option) *Lexer {
	l := &Lexer{
		input:   input,
		length:  len(input),
		symbols: token.BantamSymbols(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Tokenize scans the whole input. The result ends with exactly one EOF token.
func Tokenize(input string, opts ...Option) ([]token.Token, error) {
	l := New(input, opts...)
	var tokens []token.Token
	for {
		t := l.Next()
		if l.err != nil {
			return nil, l.err
		}
		tokens = append(tokens, t)
		if t.Type == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns EOF for all subsequent calls.
// After an invalid character Next also returns EOF and Error reports the cause.
func (l *Lexer) Next() token.Token {
	l.acceptAll(unicode.IsSpace)
	l.ignore()

	ch := l.nextRune()
	if ch == eof {
		return l.eof()
	}

	if tt, ok := token.Punctuator(ch, l.symbols); ok {
		return l.newToken(tt)
	}

	if isDigit(ch) {
		l.acceptAll(isDigit)
		return l.newToken(token.Number)
	}

	if isNameStart(ch) {
		l.acceptAll(isNamePart)
		return l.newToken(token.Name)
	}

	l.err = types.NewError(types.ErrUnexpectedCharacter,
		fmt.Sprintf("Unexpected character %q", ch), l.start).WithToken(string(ch))
	return l.eof()
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

func (l *Lexer) eof() token.Token {
	return token.Token{Type: token.EOF, Position: l.length}
}

// newToken emits the text between start and current.
func (l *Lexer) newToken(tt token.Type) token.Token {
	t := token.Token{
		Type:     tt,
		Position: l.start,
	}
	if tt == token.Name || tt == token.Number {
		t.Text = l.input[l.start:l.current]
	}
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

// Character classification functions

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNamePart(r rune) bool {
	return isNameStart(r) || unicode.IsDigit(r)
}
