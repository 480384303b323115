// Package parser implements a grammar-agnostic Pratt expression parser.
//
// The parser knows nothing about any particular operator. A Grammar maps
// token types to parselets: prefix parselets start an expression, infix
// parselets extend one that is already parsed. The single recursive method
// ParseExpression hands each token to its parselet and lets the parselet call
// back for operands, passing down the precedence threshold that decides how
// far the nested call may reach.
//
// # Architecture
//
// The package consists of four parts:
//   - Precedence: the ordered binding-strength levels
//   - Parselets: PrefixParselet, InfixParselet and their standard variants
//   - Grammar: the two token-type registries, built once and then shared
//   - Parser: the engine, with its Peek/Consume/Expect/Match primitives
//
// # Example
//
//	g := parser.NewGrammar()
//	g.SetPrefix(token.Name, parser.NameParselet{})
//	g.InfixLeft(token.Plus, parser.Sum)
//	g.InfixLeft(token.Asterisk, parser.Product)
//
//	node, err := parser.Parse(tokens, g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(node) // (a + (b * c))
package parser

import (
	"github.com/rs/zerolog"

	"github.com/sandrolain/gopratt/pkg/token"
	"github.com/sandrolain/gopratt/pkg/types"
)

// DefaultMaxDepth is the nesting limit used when WithMaxDepth is not given.
const DefaultMaxDepth = 256

// Parse parses tokens as one complete expression using grammar g.
//
// Example:
//
//	node, err := parser.Parse(tokens, bantam.Grammar())
//	if err != nil {
//	    var pe *types.ParseError
//	    if errors.As(err, &pe) {
//	        fmt.Printf("Parse error at position %d\n", pe.Position)
//	    }
//	    return
//	}
func Parse(tokens []token.Token, g *Grammar, opts ...Option) (types.Node, error) {
	return New(tokens, g, opts...).Parse()
}

// Option configures a Parser.
type Option func(*Options)

// Options holds parser configuration.
type Options struct {
	// MaxDepth limits recursion depth to prevent stack overflow. Zero disables the limit.
	MaxDepth int
	// Logger receives trace events for every dispatch decision.
	Logger zerolog.Logger
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		opts.MaxDepth = depth
	}
}

// WithLogger sets the logger used for trace events.
func WithLogger(l zerolog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = l
	}
}
