package types

import (
	"strings"

	"github.com/sandrolain/gopratt/pkg/token"
)

// NodeType identifies the variant of an AST node.
type NodeType string

// AST node variants.
const (
	NodeName      NodeType = "name"      // Identifier leaf
	NodeAssign    NodeType = "assign"    // name = expr
	NodeCondition NodeType = "condition" // c ? a : b
	NodeCall      NodeType = "call"      // f(a, b)
	NodeBinary    NodeType = "binary"    // a + b
	NodePrefix    NodeType = "prefix"    // -a
	NodePostfix   NodeType = "postfix"   // a!
)

// Node is an immutable node of the syntax tree. The set of implementations is
// closed: Name, Assign, Conditional, Call, Binary, Prefix and Postfix.
//
// String renders the node fully parenthesized, so two trees print the same
// text exactly when they have the same shape.
type Node interface {
	Type() NodeType
	String() string
	node()
}

// Name is a simple identifier like "abc".
type Name struct {
	Value string
}

// Assign is an assignment like "a = b". The target is always a plain name.
type Assign struct {
	Name  string
	Right Node
}

// Conditional is a ternary expression like "a ? b : c".
type Conditional struct {
	Condition Node
	Then      Node
	Else      Node
}

// Call is a call like "a(b, c)". Args is never nil.
type Call struct {
	Callee Node
	Args   []Node
}

// Binary is an infix operator expression like "a + b".
type Binary struct {
	Left     Node
	Operator token.Type
	Right    Node
}

// Prefix is a prefix unary expression like "-a".
type Prefix struct {
	Operator token.Type
	Operand  Node
}

// Postfix is a postfix unary expression like "a!".
type Postfix struct {
	Operand  Node
	Operator token.Type
}

// NewName creates a Name leaf.
func NewName(value string) *Name {
	return &Name{Value: value}
}

// NewAssign creates an Assign node.
func NewAssign(name string, right Node) *Assign {
	return &Assign{Name: name, Right: right}
}

// NewConditional creates a Conditional node.
func NewConditional(cond, then, els Node) *Conditional {
	return &Conditional{Condition: cond, Then: then, Else: els}
}

// NewCall creates a Call node. The argument slice is copied so the node owns it.
func NewCall(callee Node, args []Node) *Call {
	owned := make([]Node, len(args))
	copy(owned, args)
	return &Call{Callee: callee, Args: owned}
}

// NewBinary creates a Binary node.
func NewBinary(left Node, op token.Type, right Node) *Binary {
	return &Binary{Left: left, Operator: op, Right: right}
}

// NewPrefix creates a Prefix node.
func NewPrefix(op token.Type, operand Node) *Prefix {
	return &Prefix{Operator: op, Operand: operand}
}

// NewPostfix creates a Postfix node.
func NewPostfix(operand Node, op token.Type) *Postfix {
	return &Postfix{Operand: operand, Operator: op}
}

func (*Name) Type() NodeType        { return NodeName }
func (*Assign) Type() NodeType      { return NodeAssign }
func (*Conditional) Type() NodeType { return NodeCondition }
func (*Call) Type() NodeType        { return NodeCall }
func (*Binary) Type() NodeType      { return NodeBinary }
func (*Prefix) Type() NodeType      { return NodePrefix }
func (*Postfix) Type() NodeType     { return NodePostfix }

func (*Name) node()        {}
func (*Assign) node()      {}
func (*Conditional) node() {}
func (*Call) node()        {}
func (*Binary) node()      {}
func (*Prefix) node()      {}
func (*Postfix) node()     {}

func (n *Name) String() string {
	return n.Value
}

func (n *Assign) String() string {
	return "(" + n.Name + " = " + n.Right.String() + ")"
}

func (n *Conditional) String() string {
	return "(" + n.Condition.String() + " ? " + n.Then.String() + " : " + n.Else.String() + ")"
}

func (n *Call) String() string {
	var b strings.Builder
	b.WriteString(n.Callee.String())
	b.WriteByte('(')
	for i, arg := range n.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + string(n.Operator) + " " + n.Right.String() + ")"
}

func (n *Prefix) String() string {
	return "(" + string(n.Operator) + n.Operand.String() + ")"
}

func (n *Postfix) String() string {
	return "(" + n.Operand.String() + string(n.Operator) + ")"
}
