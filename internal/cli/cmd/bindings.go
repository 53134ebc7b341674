package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/keymaster/internal/cli/styles"
	"github.com/bnema/keymaster/internal/ui/input"
)

var bindingsScope string

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "List configured bindings",
	Long: `Register the configured bindings in a fresh engine and list them
grouped by key. Use --scope to show a single scope.`,
	Args: cobra.NoArgs,
	RunE: runBindings,
}

func init() {
	rootCmd.AddCommand(bindingsCmd)
	bindingsCmd.Flags().StringVarP(&bindingsScope, "scope", "s", "", "only list bindings of this scope")
}

func runBindings(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	out := cmd.OutOrStdout()

	engine := input.NewEngine(app.Ctx())
	handler := input.NewKeyboardHandler(app.Ctx(), engine)
	if err := handler.Apply(app.Config); err != nil {
		if errors.Is(err, input.ErrNoBindings) {
			fmt.Fprintln(out, theme().Subtle.Render("No bindings configured in "+app.Manager.GetConfigFile()))
			return nil
		}
		return err
	}

	descriptions := make(map[string]string, len(app.Config.Bindings))
	for _, b := range app.Config.Bindings {
		descriptions[b.Scope+"\x00"+b.Action] = b.Description
	}

	bindings := engine.Bindings(bindingsScope)
	if len(bindings) == 0 {
		fmt.Fprintln(out, theme().Subtle.Render(fmt.Sprintf("No bindings in scope %q", bindingsScope)))
		return nil
	}

	rows := make([]styles.BindingRow, 0, len(bindings))
	for _, b := range bindings {
		action, _ := b.Context.(input.Action)
		shortcut := b.Shortcut
		if b.Key == input.KeyInvalid {
			shortcut += " (inert)"
		}
		rows = append(rows, styles.BindingRow{
			Shortcut:    shortcut,
			Scope:       b.Scope,
			Action:      string(action),
			Description: descriptions[b.Scope+"\x00"+string(action)],
		})
	}

	fmt.Fprintln(out, styles.RenderBindings(theme(), rows))
	return nil
}
