package parser

import (
	"fmt"
	"sort"

	"github.com/sandrolain/gopratt/pkg/token"
)

// Grammar maps token types to the parselets that handle them, one map per
// role. A token type may have no handler, a prefix handler, an infix handler,
// or both: "!" can be prefix negation and postfix factorial at once.
//
// A Grammar is filled in once before parsing and must not change while a
// Parser uses it. Under that rule any number of parsers may share it
// concurrently.
type Grammar struct {
	prefix map[token.Type]PrefixParselet
	infix  map[token.Type]InfixParselet
}

// Role tells which registry an Entry comes from.
type Role string

// Parselet roles.
const (
	RolePrefix Role = "prefix"
	RoleInfix  Role = "infix"
)

// Entry describes one registration, for listings.
type Entry struct {
	Token      token.Type
	Role       Role
	Parselet   string
	Precedence Precedence // zero for prefix entries
}

// NewGrammar creates an empty grammar.
func NewGrammar() *Grammar {
	return &Grammar{
		prefix: make(map[token.Type]PrefixParselet),
		infix:  make(map[token.Type]InfixParselet),
	}
}

// SetPrefix registers the prefix parselet for tt, replacing any previous one.
func (g *Grammar) SetPrefix(tt token.Type, p PrefixParselet) {
	g.prefix[tt] = p
}

// SetInfix registers the infix parselet for tt, replacing any previous one.
func (g *Grammar) SetInfix(tt token.Type, p InfixParselet) {
	g.infix[tt] = p
}

// LookupPrefix returns the prefix parselet registered for tt.
func (g *Grammar) LookupPrefix(tt token.Type) (PrefixParselet, bool) {
	p, ok := g.prefix[tt]
	return p, ok
}

// LookupInfix returns the infix parselet registered for tt.
func (g *Grammar) LookupInfix(tt token.Type) (InfixParselet, bool) {
	p, ok := g.infix[tt]
	return p, ok
}

// Prefix registers a prefix unary operator.
func (g *Grammar) Prefix(tt token.Type, prec Precedence) {
	g.SetPrefix(tt, PrefixOperatorParselet{Prec: prec})
}

// Postfix registers a postfix unary operator.
func (g *Grammar) Postfix(tt token.Type, prec Precedence) {
	g.SetInfix(tt, PostfixOperatorParselet{Prec: prec})
}

// InfixLeft registers a left-associative binary operator.
func (g *Grammar) InfixLeft(tt token.Type, prec Precedence) {
	g.SetInfix(tt, BinaryOperatorParselet{Prec: prec})
}

// InfixRight registers a right-associative binary operator.
func (g *Grammar) InfixRight(tt token.Type, prec Precedence) {
	g.SetInfix(tt, BinaryOperatorParselet{Prec: prec, RightAssoc: true})
}

// Len returns the number of registrations across both roles.
func (g *Grammar) Len() int {
	return len(g.prefix) + len(g.infix)
}

// Entries lists every registration, prefix entries first, each role sorted by token type.
func (g *Grammar) Entries() []Entry {
	entries := make([]Entry, 0, g.Len())
	for tt, p := range g.prefix {
		entries = append(entries, Entry{Token: tt, Role: RolePrefix, Parselet: describe(p)})
	}
	for tt, p := range g.infix {
		entries = append(entries, Entry{Token: tt, Role: RoleInfix, Parselet: describe(p), Precedence: p.Precedence()})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Role != entries[j].Role {
			return entries[i].Role == RolePrefix
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

func describe(p interface{}) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
