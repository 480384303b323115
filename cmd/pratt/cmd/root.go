package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sandrolain/gopratt"
	"github.com/sandrolain/gopratt/pkg/grammar"
)

var (
	grammarFile string
	logLevel    string
	noColor     bool

	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "pratt",
	Short: "Operator-precedence expression parser",
	Long: `pratt parses expressions with a Pratt parser and prints their structure.

Without --grammar it uses the Bantam grammar: names, grouping, calls,
assignment, the ternary, prefix + - ~ !, postfix ! and the binary
operators + - * / ^. A grammar file in TOML or YAML format replaces it.

Examples:
  pratt parse "a = b + c * d"
  pratt parse --format sexpr -- "-a!" "a ^ b ^ c"
  pratt --grammar calc.yaml repl
  pratt grammar`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		color.NoColor = color.NoColor || noColor
		return setupLogger(cmd.ErrOrStderr())
	},
}

// Execute runs the root command and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&grammarFile, "grammar", "g", "", "grammar file (.toml or .yaml); default: Bantam")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func setupLogger(w io.Writer) error {
	level, err := zerolog.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q", logLevel)
	}
	zerolog.SetGlobalLevel(level)
	logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

// newEngine builds the engine for the selected grammar.
func newEngine(opts ...gopratt.Option) (*gopratt.Engine, error) {
	opts = append(opts, gopratt.WithLogger(logger))
	if grammarFile == "" {
		return gopratt.New(opts...), nil
	}

	cfg, err := grammar.Load(grammarFile)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("file", grammarFile).Int("prefix", len(cfg.Prefix)).Int("infix", len(cfg.Infix)).Msg("grammar loaded")
	return gopratt.FromConfig(cfg, opts...)
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintln(w, red("Error: "+err.Error()))
}
