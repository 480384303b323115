// Package bantam wires the Bantam reference grammar: names, grouping, calls,
// assignment, the ternary, prefix "+ - ~ !", postfix "!", and the binary
// operators "+ - * / ^".
//
//	a = b + c * d ^ e - f / g    (a = ((b + (c * (d ^ e))) - (f / g)))
package bantam

import (
	"github.com/sandrolain/gopratt/pkg/lexer"
	"github.com/sandrolain/gopratt/pkg/parser"
	"github.com/sandrolain/gopratt/pkg/token"
	"github.com/sandrolain/gopratt/pkg/types"
)

// Grammar returns a new grammar with every Bantam parselet registered.
func Grammar() *parser.Grammar {
	g := parser.NewGrammar()

	g.SetPrefix(token.Name, parser.NameParselet{})
	g.SetInfix(token.Assign, parser.AssignParselet{})
	g.SetInfix(token.Question, parser.ConditionalParselet{Separator: token.Colon})

	// "(" starts a group in prefix position and a call in infix position.
	g.SetPrefix(token.LeftParen, parser.GroupParselet{Close: token.RightParen})
	g.SetInfix(token.LeftParen, parser.CallParselet{Close: token.RightParen, Separator: token.Comma})

	g.Prefix(token.Plus, parser.PrefixLevel)
	g.Prefix(token.Minus, parser.PrefixLevel)
	g.Prefix(token.Tilde, parser.PrefixLevel)
	g.Prefix(token.Bang, parser.PrefixLevel)

	// "!" is both prefix and postfix, like "++" in C.
	g.Postfix(token.Bang, parser.PostfixLevel)

	g.InfixLeft(token.Plus, parser.Sum)
	g.InfixLeft(token.Minus, parser.Sum)
	g.InfixLeft(token.Asterisk, parser.Product)
	g.InfixLeft(token.Slash, parser.Product)
	g.InfixRight(token.Caret, parser.Exponent)

	return g
}

// Parse tokenizes and parses one Bantam expression.
func Parse(source string, opts ...parser.Option) (types.Node, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return parser.Parse(tokens, Grammar(), opts...)
}
