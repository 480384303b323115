package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/sandrolain/gopratt/pkg/parser"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "List the parselets of the active grammar",
	Long: `Prints one row per registered parselet: the token type, whether it is
looked up in prefix or infix position, the parselet kind and, for infix
parselets, the precedence.

Examples:
  pratt grammar
  pratt --grammar calc.yaml grammar`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Token", "Role", "Parselet", "Precedence"})
		table.SetAutoFormatHeaders(false)
		for _, e := range eng.Grammar().Entries() {
			table.Append([]string{string(e.Token), string(e.Role), e.Parselet, precedenceCell(e)})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}

func precedenceCell(e parser.Entry) string {
	if e.Role == parser.RolePrefix {
		return "-"
	}
	return fmt.Sprintf("%s (%d)", e.Precedence, int(e.Precedence))
}
