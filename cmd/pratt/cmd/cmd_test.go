package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gopratt"
	"github.com/sandrolain/gopratt/pkg/types"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// Flags are package state; reset them between runs.
	grammarFile, logLevel, noColor = "", "warn", true
	parseFile, parseFormat, parseJobs = "", formatInfix, 0

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, "", "parse", "--", "a = b + c * d", "a ^ b ^ c", "-a!")
	require.NoError(t, err)
	assert.Equal(t, "(a = (b + (c * d)))\n(a ^ (b ^ c))\n(-(a!))\n", out)
}

func TestParseCommandLeadingMinus(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"after separator", []string{"parse", "--", "-a!", "+b"}, "(-(a!))\n(+b)\n"},
		{"flags then separator", []string{"parse", "--format", "sexpr", "--", "-a!", "a ^ b ^ c"}, "(- (! a))\n(^ a (^ b c))\n"},
		{"not first", []string{"parse", "a", "-b"}, "a\n(-b)\n"},
		{"flag-like after first", []string{"parse", "a", "--jobs"}, "a\n(-(-jobs))\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestParseCommandFormats(t *testing.T) {
	out, err := run(t, "", "parse", "--format", "sexpr", "f(x, -y)")
	require.NoError(t, err)
	assert.Equal(t, "(call f x (- y))\n", out)

	out, err = run(t, "", "parse", "--format", "tree", "a + b")
	require.NoError(t, err)
	assert.Equal(t, "binary +\n  name a\n  name b\n", out)

	_, err = run(t, "", "parse", "--format", "json", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown --format")
}

func TestParseCommandStdin(t *testing.T) {
	out, err := run(t, "# comment\na + b\n\n  c ? d : e  \n", "parse")
	require.NoError(t, err)
	assert.Equal(t, "(a + b)\n(c ? d : e)\n", out)
}

func TestParseCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("a * b\n# skipped\nf()\n"), 0o600))

	out, err := run(t, "", "parse", "--jobs", "1", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "(a * b)\nf()\n", out)
}

func TestParseCommandError(t *testing.T) {
	_, err := run(t, "", "parse", "a", "(a + b) = c")
	require.Error(t, err)
	assert.Equal(t, types.ErrLeftSideAssignment, types.CodeOf(err))
	assert.Contains(t, err.Error(), "expression 2")
}

func TestParseCommandGrammarFile(t *testing.T) {
	path := filepath.Join("..", "..", "..", "pkg", "grammar", "testdata", "calc.yaml")
	out, err := run(t, "", "--grammar", path, "parse", "[a + b] # c % ")
	require.NoError(t, err)
	assert.Equal(t, "((a + b) # (c%))\n", out)
}

func TestGrammarCommand(t *testing.T) {
	out, err := run(t, "", "grammar")
	require.NoError(t, err)
	assert.Contains(t, out, "Token")
	assert.Contains(t, out, "binary right")
	assert.Contains(t, out, "exponent (5)")
	assert.Contains(t, out, "conditional :")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pratt "+gopratt.Version()))
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "", "--log-level", "loud", "version")
	require.Error(t, err)
}

// lines returns a prompt function that serves input lines, then io.EOF.
func lines(input ...string) (func(string) (string, error), *[]string) {
	var prompts []string
	return func(p string) (string, error) {
		prompts = append(prompts, p)
		if len(input) == 0 {
			return "", io.EOF
		}
		line := input[0]
		input = input[1:]
		return line, nil
	}, &prompts
}

func TestReadExpressionContinues(t *testing.T) {
	eng := gopratt.New()
	prompt, prompts := lines("a +", "f(b,", "c)")

	src, ok := readExpression(prompt, eng)
	require.True(t, ok)
	assert.Equal(t, "a +\nf(b,\nc)", src)
	assert.Equal(t, []string{promptMain, promptCont, promptCont}, *prompts)

	expr, err := eng.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "(a + f(b, c))", expr.String())
}

func TestReadExpressionStopsOnError(t *testing.T) {
	eng := gopratt.New()

	// A real syntax error is returned at once so the REPL can report it.
	prompt, _ := lines("a )", "unused")
	src, ok := readExpression(prompt, eng)
	require.True(t, ok)
	assert.Equal(t, "a )", src)

	prompt, _ = lines(":quit")
	src, ok = readExpression(prompt, eng)
	require.True(t, ok)
	assert.Equal(t, ":quit", src)

	prompt, _ = lines("a +")
	_, ok = readExpression(prompt, eng)
	assert.False(t, ok)
}

func TestReadExpressionAbortDropsPending(t *testing.T) {
	eng := gopratt.New()
	pending := []string{"a ?", "b"}
	prompt := func(p string) (string, error) {
		if len(pending) == 0 {
			return "", liner.ErrPromptAborted
		}
		line := pending[0]
		pending = pending[1:]
		return line, nil
	}

	src, ok := readExpression(prompt, eng)
	assert.True(t, ok, "Ctrl-C must not end the session")
	assert.Equal(t, "", src)

	// The next read starts fresh.
	next, _ := lines("c + d")
	src, ok = readExpression(next, eng)
	require.True(t, ok)
	assert.Equal(t, "c + d", src)
}

func TestReplEval(t *testing.T) {
	var out bytes.Buffer
	r := &repl{engine: gopratt.New(), format: formatInfix, out: &out}

	quit, err := r.eval("a ? b : c")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "(a ? b : c)")

	out.Reset()
	_, err = r.eval(":format sexpr")
	require.NoError(t, err)
	_, err = r.eval("a * -b")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "(* a (- b))")

	_, err = r.eval(":format")
	assert.Error(t, err)
	_, err = r.eval(":bogus")
	assert.Error(t, err)

	out.Reset()
	_, err = r.eval(":grammar")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "NAME")

	_, err = r.eval("a b")
	var pe *types.ParseError
	assert.True(t, errors.As(err, &pe))

	quit, err = r.eval(":quit")
	require.NoError(t, err)
	assert.True(t, quit)
}
