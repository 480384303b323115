package parser

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sandrolain/gopratt/pkg/token"
	"github.com/sandrolain/gopratt/pkg/types"
)

// Parser drives one parse of one token sequence.
// It uses Pratt's "Top Down Operator Precedence" algorithm: the grammar's
// parselets decide what each token means, the parser only decides how far
// each nested call may reach.
//
// A Parser owns its cursor and borrows its Grammar. It is not safe for
// concurrent use; create one Parser per parse.
type Parser struct {
	tokens  []token.Token
	pos     int
	grammar *Grammar
	opts    Options
	depth   int
	ctx     context.Context
	log     zerolog.Logger
}

// New creates a parser over tokens, which should end with a single EOF token.
func New(tokens []token.Token, g *Grammar, opts ...Option) *Parser {
	options := Options{
		MaxDepth: DefaultMaxDepth,
		Logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &Parser{
		tokens:  tokens,
		grammar: g,
		opts:    options,
		ctx:     context.Background(),
		log:     options.Logger,
	}
}

// Parse parses one complete expression and requires the input to end there.
func (p *Parser) Parse() (types.Node, error) {
	return p.ParseContext(context.Background())
}

// ParseContext is like Parse but gives up with ErrCanceled once ctx is done.
// The context is checked each time the parser descends into a sub-expression.
func (p *Parser) ParseContext(ctx context.Context) (types.Node, error) {
	p.ctx = ctx
	defer func() { p.ctx = context.Background() }()

	node, err := p.ParseExpression(Lowest)
	if err != nil {
		return nil, err
	}

	if next, ok := p.Peek(); ok && next.Type != token.EOF {
		return nil, p.errorAt(next, types.ErrSyntaxError, fmt.Sprintf("Unexpected token: %s", next))
	}
	return node, nil
}

// ParseExpression parses an expression whose operators all bind tighter than
// minPrec. Parselets call it for their operands; the threshold they pass is what
// encodes precedence and associativity.
func (p *Parser) ParseExpression(minPrec Precedence) (types.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	head, err := p.Consume()
	if err != nil {
		return nil, err
	}

	prefix, ok := p.grammar.LookupPrefix(head.Type)
	if !ok {
		if head.Type == token.EOF {
			return nil, p.errorAt(head, types.ErrUnexpectedEnd, "Unexpected end of input")
		}
		return nil, p.errorAt(head, types.ErrSyntaxError, fmt.Sprintf("Could not parse token: %s", head))
	}

	p.log.Trace().Str("token", string(head.Type)).Stringer("min", minPrec).Int("depth", p.depth).Msg("prefix")
	left, err := prefix.Parse(p, head)
	if err != nil {
		return nil, err
	}

	for {
		next, ok := p.Peek()
		if !ok {
			return nil, p.endError("Unexpected end of token sequence")
		}
		if next.Type == token.EOF {
			break
		}

		// A token without an infix meaning ends this expression; it belongs
		// to an enclosing construct, like "," or ")".
		infix, ok := p.grammar.LookupInfix(next.Type)
		if !ok || infix.Precedence() <= minPrec {
			break
		}

		p.pos++
		p.log.Trace().Str("token", string(next.Type)).Stringer("prec", infix.Precedence()).
			Stringer("min", minPrec).Int("depth", p.depth).Msg("infix")
		left, err = infix.Parse(p, left, next)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// Peek returns the next token without consuming it. ok is false past the end.
func (p *Parser) Peek() (tok token.Token, ok bool) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// Consume returns the next token and advances past it.
func (p *Parser) Consume() (token.Token, error) {
	if p.pos >= len(p.tokens) {
		return token.Token{}, p.endError("Unexpected end of token sequence")
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, nil
}

// Expect consumes the next token if it has type tt and fails otherwise.
func (p *Parser) Expect(tt token.Type) (token.Token, error) {
	next, ok := p.Peek()
	if !ok {
		return token.Token{}, p.endError(fmt.Sprintf("Expected %q but the token sequence ended", string(tt)))
	}
	if next.Type != tt {
		if next.Type == token.EOF {
			return token.Token{}, p.errorAt(next, types.ErrExpectedToken,
				fmt.Sprintf("Expected %q but reached end of input", string(tt))).AtEnd()
		}
		return token.Token{}, p.errorAt(next, types.ErrExpectedToken,
			fmt.Sprintf("Expected %q but got %s", string(tt), next))
	}
	p.pos++
	return next, nil
}

// Match consumes the next token only if it has type tt, and reports whether it did.
func (p *Parser) Match(tt token.Type) bool {
	if next, ok := p.Peek(); ok && next.Type == tt {
		p.pos++
		return true
	}
	return false
}

// Grammar returns the grammar the parser dispatches on.
func (p *Parser) Grammar() *Grammar {
	return p.grammar
}

// enter guards recursion depth and cancellation.
func (p *Parser) enter() error {
	if err := p.ctx.Err(); err != nil {
		return p.error(types.ErrCanceled, "Parse canceled").WithCause(err)
	}
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		p.depth--
		return p.error(types.ErrMaxDepth, fmt.Sprintf("Expression nested deeper than %d levels", p.opts.MaxDepth))
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// error creates a parser error positioned at the next unread token.
func (p *Parser) error(code types.ErrorCode, message string) *types.ParseError {
	if next, ok := p.Peek(); ok {
		return p.errorAt(next, code, message)
	}
	err := p.endError(message)
	err.Code = code
	return err
}

// errorAt creates a parser error positioned at tok.
func (p *Parser) errorAt(tok token.Token, code types.ErrorCode, message string) *types.ParseError {
	return types.NewError(code, message, tok.Position).WithToken(tok.String())
}

// endError reports a read past the last token.
func (p *Parser) endError(message string) *types.ParseError {
	pos := 0
	if n := len(p.tokens); n > 0 {
		pos = p.tokens[n-1].Position
	}
	return types.NewError(types.ErrUnexpectedEnd, message, pos)
}
