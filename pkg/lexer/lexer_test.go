package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/gopratt/pkg/lexer"
	"github.com/sandrolain/gopratt/pkg/token"
	"github.com/sandrolain/gopratt/pkg/types"
)

type lexerTestCase struct {
	name     string
	input    string
	opts     []lexer.Option
	expected []token.Token
}

func runLexerTests(t *testing.T, tests []lexerTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lexer.Tokenize(tt.input, tt.opts...)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestLexerWhitespace(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "empty",
			input: "",
			expected: []token.Token{
				{Type: token.EOF, Position: 0},
			},
		},
		{
			name:  "only whitespace",
			input: " \t\n",
			expected: []token.Token{
				{Type: token.EOF, Position: 3},
			},
		},
		{
			name:  "leading whitespace",
			input: "   abc",
			expected: []token.Token{
				{Type: token.Name, Text: "abc", Position: 3},
				{Type: token.EOF, Position: 6},
			},
		},
		{
			name:  "mixed whitespace",
			input: " \t\n\r\vabc  ",
			expected: []token.Token{
				{Type: token.Name, Text: "abc", Position: 5},
				{Type: token.EOF, Position: 10},
			},
		},
	})
}

func TestLexerNames(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "identifiers",
			input: "a _b c2 déjà",
			expected: []token.Token{
				{Type: token.Name, Text: "a", Position: 0},
				{Type: token.Name, Text: "_b", Position: 2},
				{Type: token.Name, Text: "c2", Position: 5},
				{Type: token.Name, Text: "déjà", Position: 8},
				{Type: token.EOF, Position: 14},
			},
		},
		{
			name:  "digits then name",
			input: "12ab",
			expected: []token.Token{
				{Type: token.Number, Text: "12", Position: 0},
				{Type: token.Name, Text: "ab", Position: 2},
				{Type: token.EOF, Position: 4},
			},
		},
	})
}

func TestLexerPunctuators(t *testing.T) {
	runLexerTests(t, []lexerTestCase{
		{
			name:  "bantam expression",
			input: "a = -b(c, d)!",
			expected: []token.Token{
				{Type: token.Name, Text: "a", Position: 0},
				{Type: token.Assign, Position: 2},
				{Type: token.Minus, Position: 4},
				{Type: token.Name, Text: "b", Position: 5},
				{Type: token.LeftParen, Position: 6},
				{Type: token.Name, Text: "c", Position: 7},
				{Type: token.Comma, Position: 8},
				{Type: token.Name, Text: "d", Position: 10},
				{Type: token.RightParen, Position: 11},
				{Type: token.Bang, Position: 12},
				{Type: token.EOF, Position: 13},
			},
		},
		{
			name:  "adjacent operators",
			input: "~!?:^*/+",
			expected: []token.Token{
				{Type: token.Tilde, Position: 0},
				{Type: token.Bang, Position: 1},
				{Type: token.Question, Position: 2},
				{Type: token.Colon, Position: 3},
				{Type: token.Caret, Position: 4},
				{Type: token.Asterisk, Position: 5},
				{Type: token.Slash, Position: 6},
				{Type: token.Plus, Position: 7},
				{Type: token.EOF, Position: 8},
			},
		},
		{
			name:  "custom symbols",
			input: "a[b;c]#d",
			opts:  []lexer.Option{lexer.WithSymbols("[];#")},
			expected: []token.Token{
				{Type: token.Name, Text: "a", Position: 0},
				{Type: "[", Position: 1},
				{Type: token.Name, Text: "b", Position: 2},
				{Type: ";", Position: 3},
				{Type: token.Name, Text: "c", Position: 4},
				{Type: "]", Position: 5},
				{Type: "#", Position: 6},
				{Type: token.Name, Text: "d", Position: 7},
				{Type: token.EOF, Position: 8},
			},
		},
	})
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     []lexer.Option
		position int
		token    string
	}{
		{"unknown symbol", "a $ b", nil, 2, "$"},
		{"symbol outside custom set", "a + b", []lexer.Option{lexer.WithSymbols("*")}, 2, "+"},
		{"leading", "@a", nil, 0, "@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexer.Tokenize(tt.input, tt.opts...)
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}
			pe, ok := err.(*types.ParseError)
			if !ok {
				t.Fatalf("expected *types.ParseError, got %T", err)
			}
			if pe.Code != types.ErrUnexpectedCharacter {
				t.Errorf("expected code %s, got %s", types.ErrUnexpectedCharacter, pe.Code)
			}
			if pe.Position != tt.position {
				t.Errorf("expected position %d, got %d", tt.position, pe.Position)
			}
			if pe.Token != tt.token {
				t.Errorf("expected token %q, got %q", tt.token, pe.Token)
			}
		})
	}
}

func TestLexerNextAfterEnd(t *testing.T) {
	l := lexer.New("a")
	if tok := l.Next(); tok.Type != token.Name {
		t.Fatalf("expected NAME, got %s", tok.Type)
	}
	for i := 0; i < 3; i++ {
		if tok := l.Next(); tok.Type != token.EOF {
			t.Fatalf("call %d: expected EOF, got %s", i, tok.Type)
		}
	}
	if l.Error() != nil {
		t.Fatalf("unexpected error: %v", l.Error())
	}
}
