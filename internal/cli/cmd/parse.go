package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/keymaster/internal/cli/styles"
	"github.com/bnema/keymaster/internal/ui/input"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Show how a shortcut expression is parsed",
	Long: `Split a shortcut expression into combinations and show the key code,
key name and modifiers of each. Combinations that can never match are
reported as inert.

Examples:
  keymaster parse "ctrl+shift+k"
  keymaster parse "a, ⌘+s, ctrl+,"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	combos := input.ParseShortcut(args[0])
	if len(combos) == 0 {
		return fmt.Errorf("no combinations in %q", args[0])
	}

	rows := make([]styles.CombinationRow, 0, len(combos))
	for _, c := range combos {
		rows = append(rows, styles.CombinationRow{
			Text:      c.Text,
			Code:      int(c.Key),
			KeyName:   c.Key.String(),
			Modifiers: c.Modifiers.String(),
			Valid:     c.Valid(),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderCombinations(theme(), rows))
	return nil
}
