// Package types defines the core data types of GoPratt.
//
// This package contains type definitions for:
//   - Node: the seven immutable AST variants produced by the engine
//   - Expression: a parsed top-level expression with its source text
//   - ParseError: the structured error returned on any failure
//   - Sexpr and Tree: alternative renderings of a tree
package types

// Expression represents a parsed top-level expression.
//
// An Expression never changes after parsing. It is safe for concurrent use
// by multiple goroutines and may be shared through a cache.
type Expression struct {
	ast    Node
	source string
}

// NewExpression creates a new Expression from an AST.
func NewExpression(ast Node, source string) *Expression {
	return &Expression{
		ast:    ast,
		source: source,
	}
}

// AST returns the root of the syntax tree.
func (e *Expression) AST() Node {
	return e.ast
}

// Source returns the original source text.
func (e *Expression) Source() string {
	return e.source
}

// String returns the fully parenthesized form of the tree.
func (e *Expression) String() string {
	if e.ast == nil {
		return ""
	}
	return e.ast.String()
}
