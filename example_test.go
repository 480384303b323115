package gopratt_test

import (
	"context"
	"fmt"

	"github.com/sandrolain/gopratt"
	"github.com/sandrolain/gopratt/pkg/grammar"
	"github.com/sandrolain/gopratt/pkg/types"
)

func ExampleParse() {
	expr, err := gopratt.Parse("a = b + c * d")
	if err != nil {
		panic(err)
	}
	fmt.Println(expr)
	fmt.Println(types.Sexpr(expr.AST()))
	// Output:
	// (a = (b + (c * d)))
	// (= a (+ b (* c d)))
}

func ExampleEngine_ParseAll() {
	eng := gopratt.New()
	exprs, err := eng.ParseAll(context.Background(), []string{"-a!", "a ^ b ^ c", "f(x)(y)"})
	if err != nil {
		panic(err)
	}
	for _, expr := range exprs {
		fmt.Println(expr)
	}
	// Output:
	// (-(a!))
	// (a ^ (b ^ c))
	// f(x)(y)
}

func ExampleFromConfig() {
	cfg, err := grammar.Decode([]byte(`
symbols = "+*"

[[prefix]]
token = "NAME"
kind = "name"

[[infix]]
token = "+"
kind = "binary"
precedence = "product"

[[infix]]
token = "*"
kind = "binary"
precedence = "sum"
`), grammar.FormatTOML)
	if err != nil {
		panic(err)
	}
	eng, err := gopratt.FromConfig(cfg)
	if err != nil {
		panic(err)
	}
	expr, err := eng.Parse("a + b * c")
	if err != nil {
		panic(err)
	}
	fmt.Println(expr)
	// Output:
	// ((a + b) * c)
}

func Example_errors() {
	_, err := gopratt.Parse("(a + b) = c")
	fmt.Println(err)
	fmt.Println(types.CodeOf(err))
	// Output:
	// T2001 at position 8: Left-hand side of assignment must be a name, got binary
	// T2001
}
