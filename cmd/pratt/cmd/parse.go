package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandrolain/gopratt"
	"github.com/sandrolain/gopratt/pkg/types"
)

// Output formats.
const (
	formatInfix = "infix"
	formatSexpr = "sexpr"
	formatTree  = "tree"
)

var (
	parseFile   string
	parseFormat string
	parseJobs   int
)

var parseCmd = &cobra.Command{
	Use:   "parse [expression...]",
	Short: "Parse expressions and print their structure",
	Long: `Parses each expression and prints it in the selected format.

Expressions come from the arguments, from --file (one per line, blank lines
and lines starting with # are skipped), or from stdin when neither is given.
All expressions are parsed concurrently; output keeps the input order.

Flags go before the first expression. Put -- in front of the expressions
when the first one starts with - or +.

Formats:
  infix   fully parenthesized infix: (a + (b * c))
  sexpr   S-expression: (+ a (* b c))
  tree    one node per line, indented

Examples:
  pratt parse "a = b + c * d"
  pratt parse --format tree "f(a, -b!)"
  pratt parse --format sexpr -- "-a!" "a ^ b ^ c"
  pratt parse --file exprs.txt --jobs 4`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		switch parseFormat {
		case formatInfix, formatSexpr, formatTree:
			return nil
		default:
			return fmt.Errorf("unknown --format %q (want infix, sexpr or tree)", parseFormat)
		}
	},
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	// Expressions such as "-a" must not be read as flags.
	parseCmd.Flags().SetInterspersed(false)
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "read expressions from file, one per line")
	parseCmd.Flags().StringVar(&parseFormat, "format", formatInfix, "output format: infix, sexpr or tree")
	parseCmd.Flags().IntVarP(&parseJobs, "jobs", "j", 0, "maximum concurrent parses (default: GOMAXPROCS)")
}

func runParse(cmd *cobra.Command, args []string) error {
	sources := args
	if parseFile != "" {
		f, err := os.Open(parseFile)
		if err != nil {
			return err
		}
		defer f.Close()
		lines, err := readSources(f)
		if err != nil {
			return err
		}
		sources = append(sources, lines...)
	} else if len(sources) == 0 {
		lines, err := readSources(cmd.InOrStdin())
		if err != nil {
			return err
		}
		sources = lines
	}

	eng, err := newEngine(gopratt.WithConcurrency(parseJobs))
	if err != nil {
		return err
	}

	exprs, err := eng.ParseAll(cmd.Context(), sources)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, expr := range exprs {
		fmt.Fprint(out, render(expr, parseFormat))
	}
	return nil
}

// readSources returns the non-blank lines of r that are not # comments.
func readSources(r io.Reader) ([]string, error) {
	var sources []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sources = append(sources, line)
	}
	return sources, scanner.Err()
}

// render formats expr followed by a newline.
func render(expr *types.Expression, format string) string {
	switch format {
	case formatSexpr:
		return types.Sexpr(expr.AST()) + "\n"
	case formatTree:
		return types.Tree(expr.AST())
	default:
		return expr.String() + "\n"
	}
}
