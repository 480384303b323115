// Package gopratt provides a grammar-agnostic Pratt expression parser for Go.
//
// An expression grammar is a table: each token type maps to a prefix
// parselet, an infix parselet, or both, and each infix parselet carries a
// precedence. GoPratt ships the engine, the standard parselets, the Bantam
// reference grammar and a loader for grammar files, so most grammars need no
// Go code at all.
//
// # Quick Start
//
//	// Parse with the Bantam grammar
//	expr, err := gopratt.Parse("a = b + c * d")
//	fmt.Println(expr) // (a = (b + (c * d)))
//
//	// Build an engine once, parse many times
//	eng := gopratt.New(gopratt.WithCaching(1024))
//	expr, err := eng.Parse("f(a, b ? c : d)")
//
//	// Load a grammar from a file
//	cfg, err := grammar.Load("calc.yaml")
//	eng, err := gopratt.FromConfig(cfg)
//
// # Concurrency
//
// An Engine never changes after New. Any number of goroutines may parse
// with it at once; ParseAll does exactly that for a batch of sources.
//
// # More Information
//
// For detailed documentation, see:
//   - Parser: github.com/sandrolain/gopratt/pkg/parser
//   - Grammar files: github.com/sandrolain/gopratt/pkg/grammar
//   - Bantam: github.com/sandrolain/gopratt/pkg/bantam
//   - Types: github.com/sandrolain/gopratt/pkg/types
package gopratt

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sandrolain/gopratt/pkg/bantam"
	"github.com/sandrolain/gopratt/pkg/cache"
	"github.com/sandrolain/gopratt/pkg/grammar"
	"github.com/sandrolain/gopratt/pkg/lexer"
	"github.com/sandrolain/gopratt/pkg/parser"
	"github.com/sandrolain/gopratt/pkg/types"
)

// Version returns the current version of GoPratt.
func Version() string {
	return "v0.1.0-dev"
}

// Engine tokenizes and parses source text with one fixed grammar.
type Engine struct {
	grammar     *parser.Grammar
	lexOpts     []lexer.Option
	parseOpts   []parser.Option
	cache       *cache.Cache
	concurrency int
	log         zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithGrammar sets the grammar and the lexer options that produce its tokens.
func WithGrammar(g *parser.Grammar, lexOpts ...lexer.Option) Option {
	return func(e *Engine) {
		e.grammar = g
		e.lexOpts = lexOpts
	}
}

// WithCaching keeps up to size parsed expressions keyed by source text.
// A size of zero or less selects the cache default.
func WithCaching(size int) Option {
	return func(e *Engine) {
		e.cache = cache.New(size)
	}
}

// WithMaxDepth limits expression nesting. Zero disables the limit.
func WithMaxDepth(depth int) Option {
	return func(e *Engine) {
		e.parseOpts = append(e.parseOpts, parser.WithMaxDepth(depth))
	}
}

// WithConcurrency limits the number of parses ParseAll runs at once.
func WithConcurrency(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithLogger sets the logger. Engine events are logged at debug level and
// parser dispatch decisions at trace level.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// New creates an engine. Without WithGrammar it parses the Bantam grammar.
func New(opts ...Option) *Engine {
	e := &Engine{
		concurrency: runtime.GOMAXPROCS(0),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.grammar == nil {
		e.grammar = bantam.Grammar()
	}
	e.parseOpts = append(e.parseOpts, parser.WithLogger(e.log))
	return e
}

// FromConfig creates an engine for a grammar loaded from a file.
// Options given after the config override it.
func FromConfig(cfg *grammar.Config, opts ...Option) (*Engine, error) {
	g, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithGrammar(g, cfg.LexerOptions()...)}, opts...)
	return New(opts...), nil
}

// Grammar returns the engine's grammar. It must not be modified.
func (e *Engine) Grammar() *parser.Grammar {
	return e.grammar
}

// Parse parses one complete expression.
func (e *Engine) Parse(source string) (*types.Expression, error) {
	return e.ParseContext(context.Background(), source)
}

// ParseContext parses one complete expression, giving up once ctx is done.
func (e *Engine) ParseContext(ctx context.Context, source string) (*types.Expression, error) {
	if e.cache == nil {
		return e.parse(ctx, source)
	}
	return e.cache.GetOrParse(source, func() (*types.Expression, error) {
		return e.parse(ctx, source)
	})
}

func (e *Engine) parse(ctx context.Context, source string) (*types.Expression, error) {
	tokens, err := lexer.Tokenize(source, e.lexOpts...)
	if err != nil {
		e.log.Debug().Err(err).Str("source", source).Msg("tokenize failed")
		return nil, err
	}

	node, err := parser.New(tokens, e.grammar, e.parseOpts...).ParseContext(ctx)
	if err != nil {
		e.log.Debug().Err(err).Str("source", source).Msg("parse failed")
		return nil, err
	}

	e.log.Debug().Str("source", source).Int("tokens", len(tokens)).Msg("parsed")
	return types.NewExpression(node, source), nil
}

// ParseAll parses every source concurrently and returns the expressions in
// input order. The first failure cancels the remaining parses and is
// returned wrapped with the 1-based index of its source.
func (e *Engine) ParseAll(ctx context.Context, sources []string) ([]*types.Expression, error) {
	out := make([]*types.Expression, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			expr, err := e.ParseContext(ctx, src)
			if err != nil {
				return fmt.Errorf("expression %d: %w", i+1, err)
			}
			out[i] = expr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

var defaultEngine = New()

// Parse parses source with the Bantam grammar.
//
// Example:
//
//	expr, err := gopratt.Parse("a ? b : c ? d : e")
//	fmt.Println(expr) // (a ? b : (c ? d : e))
func Parse(source string) (*types.Expression, error) {
	return defaultEngine.Parse(source)
}

// MustParse is like Parse but panics if the expression cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(source string) *types.Expression {
	expr, err := Parse(source)
	if err != nil {
		panic(fmt.Sprintf("gopratt: Parse(%q): %v", source, err))
	}
	return expr
}
