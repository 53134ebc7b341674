package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/keymaster/internal/cli/model"
	"github.com/bnema/keymaster/internal/infrastructure/config"
	"github.com/bnema/keymaster/internal/logging"
	"github.com/bnema/keymaster/internal/ui/adapter"
	"github.com/bnema/keymaster/internal/ui/input"
)

var tryCmd = &cobra.Command{
	Use:   "try",
	Short: "Try the configured bindings interactively",
	Long: `Open a playground where every key press goes through the engine.
Fired actions are listed as they happen. The built-in actions quit,
scope-next and scope-reset work as their names say.

The config file is watched: saved edits are applied immediately.`,
	Args: cobra.NoArgs,
	RunE: runTry,
}

func init() {
	rootCmd.AddCommand(tryCmd)
}

func runTry(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	engine := input.NewEngine(ctx)
	handler := input.NewKeyboardHandler(ctx, engine)
	if err := handler.Apply(app.Config); err != nil {
		return fmt.Errorf("apply bindings from %s: %w", app.Manager.GetConfigFile(), err)
	}

	source := adapter.NewTeaSource()
	engine.Attach(source)
	defer engine.Close()

	m := model.NewTryModel(ctx, app.Theme, handler, source, app.Config)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ConfigReloadedMsg{Config: cfg})
	})
	if err := app.Manager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}

	_, err := p.Run()
	return err
}
