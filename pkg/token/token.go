// Package token defines the lexical units consumed by the expression engine.
//
// A token is an opaque type tag plus optional literal text. The engine never
// inspects the text except through the parselets that a grammar registers, so
// any tokenizer can feed it as long as the sequence ends with exactly one EOF.
package token

import "fmt"

// Type is the type tag of a token. Grammars key their parselet registries on it.
type Type string

// Token types used by the Bantam reference grammar.
const (
	// Special tokens
	EOF    Type = "EOF"
	Name   Type = "NAME"
	Number Type = "NUMBER"

	// Grouping symbols
	LeftParen  Type = "("
	RightParen Type = ")"

	// Separators
	Comma Type = ","
	Colon Type = ":"

	// Operators
	Assign   Type = "="
	Plus     Type = "+"
	Minus    Type = "-"
	Asterisk Type = "*"
	Slash    Type = "/"
	Caret    Type = "^"
	Tilde    Type = "~"
	Bang     Type = "!"
	Question Type = "?"
)

// String returns the tag itself.
func (t Type) String() string {
	return string(t)
}

// Token is a single immutable lexical unit.
type Token struct {
	Type     Type   // Type of the token
	Text     string // Literal text; set for names and numbers
	Position int    // Starting byte offset in the source, 0 for synthesized tokens
}

// New returns a token without text or position.
func New(tt Type) Token {
	return Token{Type: tt}
}

// NewName returns a NAME token carrying text.
func NewName(text string) Token {
	return Token{Type: Name, Text: text}
}

// String renders the token for error messages.
func (t Token) String() string {
	switch {
	case t.Type == EOF:
		return "end of input"
	case t.Text != "":
		return fmt.Sprintf("%s %q", t.Type, t.Text)
	default:
		return fmt.Sprintf("%q", string(t.Type))
	}
}

// bantamSymbols lists the single-rune punctuators of the reference grammar.
var bantamSymbols = [...]Type{
	LeftParen, RightParen, Comma, Assign, Plus, Minus, Asterisk,
	Slash, Caret, Tilde, Bang, Question, Colon,
}

// BantamSymbols returns the punctuator set of the reference grammar as a string,
// suitable for a lexer symbol set.
func BantamSymbols() string {
	var s string
	for _, tt := range bantamSymbols {
		s += string(tt)
	}
	return s
}

// Punctuator reports the token type for a single-rune symbol r when r is in symbols.
func Punctuator(r rune, symbols string) (Type, bool) {
	for _, s := range symbols {
		if s == r {
			return Type(string(r)), true
		}
	}
	return "", false
}
