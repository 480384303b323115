// Package grammar loads parselet registries from TOML or YAML files, so a
// grammar can be changed without recompiling.
//
// A rule binds one token type to one parselet kind:
//
//	symbols = "()=,+-*/^~!?:"
//
//	[[prefix]]
//	token = "NAME"
//	kind = "name"
//
//	[[infix]]
//	token = "^"
//	kind = "binary"
//	precedence = "exponent"
//	assoc = "right"
package grammar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sandrolain/gopratt/pkg/lexer"
	"github.com/sandrolain/gopratt/pkg/parser"
	"github.com/sandrolain/gopratt/pkg/token"
	"github.com/sandrolain/gopratt/pkg/types"
)

// Format is the encoding of a grammar file.
type Format int

// Supported formats.
const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Prefix rule kinds.
const (
	KindName     = "name"
	KindGroup    = "group"
	KindOperator = "operator"
)

// Infix rule kinds.
const (
	KindBinary      = "binary"
	KindPostfix     = "postfix"
	KindAssign      = "assign"
	KindConditional = "conditional"
	KindCall        = "call"
)

// Rule binds a token type to a parselet.
type Rule struct {
	Token      string `toml:"token" yaml:"token"`
	Kind       string `toml:"kind" yaml:"kind"`
	Precedence string `toml:"precedence,omitempty" yaml:"precedence,omitempty"`
	Assoc      string `toml:"assoc,omitempty" yaml:"assoc,omitempty"`
	Close      string `toml:"close,omitempty" yaml:"close,omitempty"`
	Separator  string `toml:"separator,omitempty" yaml:"separator,omitempty"`
}

// Config is the decoded content of a grammar file.
type Config struct {
	// Symbols lists the runes the lexer emits as single-rune tokens.
	Symbols string `toml:"symbols" yaml:"symbols"`
	Prefix  []Rule `toml:"prefix" yaml:"prefix"`
	Infix   []Rule `toml:"infix" yaml:"infix"`
}

// Load reads a grammar file, choosing the format from its extension.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, invalid(fmt.Sprintf("cannot read grammar file %s", path)).WithCause(err)
	}
	return Decode(content, detectFormat(path))
}

// Decode parses grammar file content.
func Decode(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		meta, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&cfg)
		if err != nil {
			return nil, invalid("TOML parse error").WithCause(err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, invalid(fmt.Sprintf("unknown key %s", undecoded[0]))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, invalid("YAML parse error").WithCause(err)
		}
	default:
		return nil, invalid(fmt.Sprintf("unsupported format: %s", format))
	}

	return &cfg, nil
}

// detectFormat determines the grammar format from file extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// LexerOptions returns the lexer configuration the grammar needs.
func (c *Config) LexerOptions() []lexer.Option {
	if c.Symbols == "" {
		return nil
	}
	return []lexer.Option{lexer.WithSymbols(c.Symbols)}
}

// Build creates the parselet registry described by the config.
func (c *Config) Build() (*parser.Grammar, error) {
	g := parser.NewGrammar()

	for i, r := range c.Prefix {
		p, err := r.prefixParselet()
		if err != nil {
			return nil, invalid(fmt.Sprintf("prefix rule %d (%q): %v", i, r.Token, err))
		}
		g.SetPrefix(token.Type(r.Token), p)
	}

	for i, r := range c.Infix {
		p, err := r.infixParselet()
		if err != nil {
			return nil, invalid(fmt.Sprintf("infix rule %d (%q): %v", i, r.Token, err))
		}
		g.SetInfix(token.Type(r.Token), p)
	}

	return g, nil
}

func (r Rule) prefixParselet() (parser.PrefixParselet, error) {
	if r.Token == "" {
		return nil, fmt.Errorf("missing token")
	}

	switch r.Kind {
	case KindName:
		return parser.NameParselet{}, nil
	case KindGroup:
		return parser.GroupParselet{Close: r.closeType()}, nil
	case KindOperator:
		prec, err := r.precedence(parser.PrefixLevel)
		if err != nil {
			return nil, err
		}
		return parser.PrefixOperatorParselet{Prec: prec}, nil
	default:
		return nil, fmt.Errorf("unknown prefix kind %q", r.Kind)
	}
}

func (r Rule) infixParselet() (parser.InfixParselet, error) {
	if r.Token == "" {
		return nil, fmt.Errorf("missing token")
	}

	switch r.Kind {
	case KindBinary:
		prec, err := r.precedence(-1)
		if err != nil {
			return nil, err
		}
		var right bool
		switch strings.ToLower(r.Assoc) {
		case "", "left":
		case "right":
			right = true
		default:
			return nil, fmt.Errorf("unknown associativity %q", r.Assoc)
		}
		return parser.BinaryOperatorParselet{Prec: prec, RightAssoc: right}, nil
	case KindPostfix:
		prec, err := r.precedence(parser.PostfixLevel)
		if err != nil {
			return nil, err
		}
		return parser.PostfixOperatorParselet{Prec: prec}, nil
	case KindAssign:
		return parser.AssignParselet{}, nil
	case KindConditional:
		sep := r.Separator
		if sep == "" {
			sep = string(token.Colon)
		}
		return parser.ConditionalParselet{Separator: token.Type(sep)}, nil
	case KindCall:
		sep := r.Separator
		if sep == "" {
			sep = string(token.Comma)
		}
		return parser.CallParselet{Close: r.closeType(), Separator: token.Type(sep)}, nil
	default:
		return nil, fmt.Errorf("unknown infix kind %q", r.Kind)
	}
}

// precedence parses the rule's precedence, falling back to def when the rule
// has none. A negative def makes the precedence mandatory.
func (r Rule) precedence(def parser.Precedence) (parser.Precedence, error) {
	if r.Precedence == "" {
		if def < 0 {
			return 0, fmt.Errorf("missing precedence")
		}
		return def, nil
	}
	prec, err := parser.ParsePrecedence(r.Precedence)
	if err != nil {
		return 0, err
	}
	if prec == parser.Lowest {
		return 0, fmt.Errorf("precedence must be above %s", parser.Lowest)
	}
	return prec, nil
}

func (r Rule) closeType() token.Type {
	if r.Close == "" {
		return token.RightParen
	}
	return token.Type(r.Close)
}

func invalid(message string) *types.ParseError {
	return types.NewError(types.ErrInvalidGrammar, message, -1)
}
