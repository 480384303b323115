package types

import (
	"fmt"
	"strings"
)

// Sexpr renders n as an S-expression: operators first, operands after.
//
//	a + b * c    (+ a (* b c))
//	-a!          (- (! a))
//	f(x, y)      (call f x y)
//	a = b        (= a b)
//	a ? b : c    (? a b c)
func Sexpr(n Node) string {
	var b strings.Builder
	writeSexpr(&b, n)
	return b.String()
}

func writeSexpr(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Name:
		b.WriteString(n.Value)
	case *Assign:
		b.WriteString("(= ")
		b.WriteString(n.Name)
		b.WriteByte(' ')
		writeSexpr(b, n.Right)
		b.WriteByte(')')
	case *Conditional:
		writeCons(b, "?", n.Condition, n.Then, n.Else)
	case *Call:
		b.WriteString("(call ")
		writeSexpr(b, n.Callee)
		for _, arg := range n.Args {
			b.WriteByte(' ')
			writeSexpr(b, arg)
		}
		b.WriteByte(')')
	case *Binary:
		writeCons(b, string(n.Operator), n.Left, n.Right)
	case *Prefix:
		writeCons(b, string(n.Operator), n.Operand)
	case *Postfix:
		writeCons(b, string(n.Operator), n.Operand)
	default:
		fmt.Fprintf(b, "<%T>", n)
	}
}

func writeCons(b *strings.Builder, head string, rest ...Node) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, n := range rest {
		b.WriteByte(' ')
		writeSexpr(b, n)
	}
	b.WriteByte(')')
}

// Tree renders n one node per line, children indented by two spaces.
func Tree(n Node) string {
	var b strings.Builder
	writeTree(&b, n, 0)
	return b.String()
}

func writeTree(b *strings.Builder, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	switch n := n.(type) {
	case *Name:
		fmt.Fprintf(b, "%s %s\n", n.Type(), n.Value)
	case *Assign:
		fmt.Fprintf(b, "%s %s\n", n.Type(), n.Name)
		writeTree(b, n.Right, depth+1)
	case *Conditional:
		fmt.Fprintf(b, "%s\n", n.Type())
		writeTree(b, n.Condition, depth+1)
		writeTree(b, n.Then, depth+1)
		writeTree(b, n.Else, depth+1)
	case *Call:
		fmt.Fprintf(b, "%s (%d args)\n", n.Type(), len(n.Args))
		writeTree(b, n.Callee, depth+1)
		for _, arg := range n.Args {
			writeTree(b, arg, depth+1)
		}
	case *Binary:
		fmt.Fprintf(b, "%s %s\n", n.Type(), n.Operator)
		writeTree(b, n.Left, depth+1)
		writeTree(b, n.Right, depth+1)
	case *Prefix:
		fmt.Fprintf(b, "%s %s\n", n.Type(), n.Operator)
		writeTree(b, n.Operand, depth+1)
	case *Postfix:
		fmt.Fprintf(b, "%s %s\n", n.Type(), n.Operator)
		writeTree(b, n.Operand, depth+1)
	default:
		fmt.Fprintf(b, "<%T>\n", n)
	}
}
