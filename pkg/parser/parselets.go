package parser

import (
	"fmt"

	"github.com/sandrolain/gopratt/pkg/token"
	"github.com/sandrolain/gopratt/pkg/types"
)

// PrefixParselet starts an expression. It is called with its leading token
// already consumed and may call back into the parser for operands.
type PrefixParselet interface {
	Parse(p *Parser, tok token.Token) (types.Node, error)
}

// InfixParselet extends an already parsed left operand. It is called with
// the operator token already consumed. Postfix operators, calls, the ternary
// and assignment are infix parselets too: what they share is that something
// comes before the token.
type InfixParselet interface {
	Parse(p *Parser, left types.Node, tok token.Token) (types.Node, error)
	Precedence() Precedence
}

// PrefixFunc adapts a function to PrefixParselet.
type PrefixFunc func(p *Parser, tok token.Token) (types.Node, error)

// Parse calls f(p, tok).
func (f PrefixFunc) Parse(p *Parser, tok token.Token) (types.Node, error) {
	return f(p, tok)
}

// InfixFunc returns an InfixParselet with precedence prec that delegates to fn.
func InfixFunc(prec Precedence, fn func(p *Parser, left types.Node, tok token.Token) (types.Node, error)) InfixParselet {
	return infixFunc{prec: prec, fn: fn}
}

type infixFunc struct {
	prec Precedence
	fn   func(*Parser, types.Node, token.Token) (types.Node, error)
}

func (f infixFunc) Parse(p *Parser, left types.Node, tok token.Token) (types.Node, error) {
	return f.fn(p, left, tok)
}

func (f infixFunc) Precedence() Precedence { return f.prec }

func (f infixFunc) String() string { return "func" }

// NameParselet turns a name token into a Name leaf.
type NameParselet struct{}

// Parse implements PrefixParselet.
func (NameParselet) Parse(_ *Parser, tok token.Token) (types.Node, error) {
	return types.NewName(tok.Text), nil
}

func (NameParselet) String() string { return "name" }

// GroupParselet parses a parenthesized expression. The parentheses leave no
// trace in the tree.
type GroupParselet struct {
	Close token.Type
}

// Parse implements PrefixParselet.
func (g GroupParselet) Parse(p *Parser, _ token.Token) (types.Node, error) {
	expr, err := p.ParseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(g.Close); err != nil {
		return nil, err
	}
	return expr, nil
}

func (g GroupParselet) String() string { return "group " + string(g.Close) }

// PrefixOperatorParselet parses a prefix unary operator such as "-a".
type PrefixOperatorParselet struct {
	Prec Precedence
}

// Parse implements PrefixParselet.
func (op PrefixOperatorParselet) Parse(p *Parser, tok token.Token) (types.Node, error) {
	// The operand threshold is the operator's own level, so only operators
	// binding tighter than the prefix (postfix, call) attach to the operand.
	right, err := p.ParseExpression(op.Prec)
	if err != nil {
		return nil, err
	}
	return types.NewPrefix(tok.Type, right), nil
}

func (op PrefixOperatorParselet) String() string { return "operator" }

// PostfixOperatorParselet parses a postfix unary operator such as "a!".
type PostfixOperatorParselet struct {
	Prec Precedence
}

// Parse implements InfixParselet.
func (op PostfixOperatorParselet) Parse(_ *Parser, left types.Node, tok token.Token) (types.Node, error) {
	return types.NewPostfix(left, tok.Type), nil
}

// Precedence implements InfixParselet.
func (op PostfixOperatorParselet) Precedence() Precedence { return op.Prec }

func (op PostfixOperatorParselet) String() string { return "postfix" }

// BinaryOperatorParselet parses a binary operator. All arithmetic operators
// differ only in precedence and associativity, so one type serves them all.
type BinaryOperatorParselet struct {
	Prec       Precedence
	RightAssoc bool
}

// Parse implements InfixParselet.
func (op BinaryOperatorParselet) Parse(p *Parser, left types.Node, tok token.Token) (types.Node, error) {
	// One less for right associativity: an operator of the same level to
	// the right is then absorbed by the nested call.
	threshold := op.Prec
	if op.RightAssoc {
		threshold--
	}
	right, err := p.ParseExpression(threshold)
	if err != nil {
		return nil, err
	}
	return types.NewBinary(left, tok.Type, right), nil
}

// Precedence implements InfixParselet.
func (op BinaryOperatorParselet) Precedence() Precedence { return op.Prec }

func (op BinaryOperatorParselet) String() string {
	if op.RightAssoc {
		return "binary right"
	}
	return "binary left"
}

// AssignParselet parses "a = b". It is right associative and requires a
// plain name on its left.
type AssignParselet struct{}

// Parse implements InfixParselet.
func (a AssignParselet) Parse(p *Parser, left types.Node, tok token.Token) (types.Node, error) {
	right, err := p.ParseExpression(a.Precedence() - 1)
	if err != nil {
		return nil, err
	}
	name, ok := left.(*types.Name)
	if !ok {
		return nil, p.errorAt(tok, types.ErrLeftSideAssignment,
			fmt.Sprintf("Left-hand side of assignment must be a name, got %s", left.Type()))
	}
	return types.NewAssign(name.Value, right), nil
}

// Precedence implements InfixParselet.
func (AssignParselet) Precedence() Precedence { return Assignment }

func (AssignParselet) String() string { return "assign" }

// ConditionalParselet parses "a ? b : c". The middle operand is delimited by
// Separator, and the else branch nests to the right.
type ConditionalParselet struct {
	Separator token.Type
}

// Parse implements InfixParselet.
func (c ConditionalParselet) Parse(p *Parser, left types.Node, _ token.Token) (types.Node, error) {
	then, err := p.ParseExpression(Lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(c.Separator); err != nil {
		return nil, err
	}
	els, err := p.ParseExpression(c.Precedence() - 1)
	if err != nil {
		return nil, err
	}
	return types.NewConditional(left, then, els), nil
}

// Precedence implements InfixParselet.
func (ConditionalParselet) Precedence() Precedence { return Conditional }

func (c ConditionalParselet) String() string { return "conditional " + string(c.Separator) }

// CallParselet parses a call such as "a(b, c)" after its callee.
type CallParselet struct {
	Close     token.Type
	Separator token.Type
}

// Parse implements InfixParselet.
func (c CallParselet) Parse(p *Parser, left types.Node, _ token.Token) (types.Node, error) {
	args := []types.Node{}
	if p.Match(c.Close) {
		return types.NewCall(left, args), nil
	}
	for {
		arg, err := p.ParseExpression(Lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.Match(c.Separator) {
			break
		}
	}
	if _, err := p.Expect(c.Close); err != nil {
		return nil, err
	}
	return types.NewCall(left, args), nil
}

// Precedence implements InfixParselet.
func (CallParselet) Precedence() Precedence { return CallLevel }

func (c CallParselet) String() string { return "call " + string(c.Separator) + " " + string(c.Close) }
