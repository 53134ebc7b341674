// Package cmd provides Cobra CLI commands for keymaster.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/keymaster/internal/cli"
	"github.com/bnema/keymaster/internal/cli/styles"
	"github.com/bnema/keymaster/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "keymaster",
		Short: "Scope-aware keyboard shortcut engine",
		Long: `Keymaster binds shortcut expressions such as "ctrl+s, ⌘+s" to actions
and routes key presses to them, honoring exact modifier sets and scopes.

Bindings live in config.toml under $XDG_CONFIG_HOME/keymaster. Use
'keymaster try' to exercise them interactively, or 'keymaster parse' to see
how an expression is understood.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need the loaded config
			switch cmd.Name() {
			case "help", "completion", "parse", "path", "schema", "about":
				return nil
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/keymaster/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// theme returns the app theme, or the default one for commands running
// without an app.
func theme() *styles.Theme {
	if app != nil && app.Theme != nil {
		return app.Theme
	}
	return styles.NewTheme()
}
