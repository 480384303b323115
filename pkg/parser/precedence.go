package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Precedence is a binding strength. A higher value binds tighter.
// Precedences are only ever compared; parselets pass them (or one less, for
// right associativity) as the threshold of a nested ParseExpression call.
type Precedence int

// Precedence levels, lowest first.
const (
	Lowest       Precedence = iota // threshold of a full expression
	Assignment                     // =
	Conditional                    // ?:
	Sum                            // + -
	Product                        // * /
	Exponent                       // ^
	PrefixLevel                    // -a !a
	PostfixLevel                   // a!
	CallLevel                      // a(b)
)

var precedenceNames = [...]string{
	Lowest:       "lowest",
	Assignment:   "assignment",
	Conditional:  "conditional",
	Sum:          "sum",
	Product:      "product",
	Exponent:     "exponent",
	PrefixLevel:  "prefix",
	PostfixLevel: "postfix",
	CallLevel:    "call",
}

// String returns the level name, or the number for unnamed values.
func (p Precedence) String() string {
	if p >= 0 && int(p) < len(precedenceNames) {
		return precedenceNames[p]
	}
	return strconv.Itoa(int(p))
}

// ParsePrecedence accepts a level name ("sum", "postfix") or a non-negative integer.
func ParsePrecedence(s string) (Precedence, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range precedenceNames {
		if s == name {
			return Precedence(i), nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("unknown precedence %q", s)
	}
	return Precedence(n), nil
}
