package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/sandrolain/gopratt"
	"github.com/sandrolain/gopratt/pkg/types"
)

const (
	historyFile = ".pratt_history"
	promptMain  = "pratt> "
	promptCont  = "  ...> "
	replCache   = 512
)

var replFormat string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse expressions interactively",
	Long: `Reads expressions line by line and prints their structure.

An expression that ends too early (an operator without its right operand,
an unclosed parenthesis) continues on the next line.

Commands:
  :format infix|sexpr|tree   switch output format
  :grammar                   list the active grammar
  :quit                      leave the REPL (Ctrl-D works too)`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replFormat, "format", formatInfix, "output format: infix, sexpr or tree")
}

func runRepl(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(gopratt.WithCaching(replCache))
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	fmt.Fprintf(out, "pratt %s. Type :quit to exit.\n", gopratt.Version())

	r := &repl{engine: eng, format: replFormat, out: out}
	for {
		src, ok := readExpression(ln.Prompt, eng)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		quit, err := r.eval(src)
		if err != nil {
			printError(errOut, err)
		}
		if quit {
			return nil
		}
	}
}

type repl struct {
	engine *gopratt.Engine
	format string
	out    io.Writer
}

// eval handles one REPL input: a command or an expression.
func (r *repl) eval(src string) (quit bool, err error) {
	line := strings.TrimSpace(src)
	if strings.HasPrefix(line, ":") {
		return r.command(strings.Fields(line))
	}

	expr, err := r.engine.Parse(src)
	if err != nil {
		return false, err
	}
	fmt.Fprint(r.out, color.CyanString("%s", render(expr, r.format)))
	return false, nil
}

func (r *repl) command(fields []string) (bool, error) {
	switch fields[0] {
	case ":quit", ":q":
		return true, nil
	case ":format":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: :format infix|sexpr|tree")
		}
		switch fields[1] {
		case formatInfix, formatSexpr, formatTree:
			r.format = fields[1]
			return false, nil
		default:
			return false, fmt.Errorf("unknown format %q", fields[1])
		}
	case ":grammar":
		for _, e := range r.engine.Grammar().Entries() {
			fmt.Fprintf(r.out, "%-6s %-6s %-16s %s\n", e.Token, e.Role, e.Parselet, precedenceCell(e))
		}
		return false, nil
	default:
		return false, fmt.Errorf("unknown command %s; try :format, :grammar or :quit", fields[0])
	}
}

// readExpression reads lines until they form an input that is not merely
// incomplete. ok is false when the input stream ends. Any other prompt error,
// such as Ctrl-C, drops the pending lines and returns an empty input.
func readExpression(prompt func(string) (string, error), eng *gopratt.Engine) (string, bool) {
	var b strings.Builder

	for {
		p := promptMain
		if b.Len() > 0 {
			p = promptCont
		}
		line, err := prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		if _, err := eng.Parse(src); types.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}
