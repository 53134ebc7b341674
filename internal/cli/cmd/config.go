package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/keymaster/internal/cli/styles"
	"github.com/bnema/keymaster/internal/infrastructure/config"
)

var schemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show the config file location or the JSON schema of its format.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Long: `Print the JSON schema describing config.toml, for editor completion
and validation. With --write, save it as config.schema.json next to the
config file instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write the schema next to the config file")
}

// resolveConfigFile returns the --config flag or the XDG default.
func resolveConfigFile() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(theme())

	path, err := resolveConfigFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}

	_, statErr := os.Stat(path)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !schemaWrite {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	path, err := resolveConfigFile()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	schemaFile, err := config.GenerateSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewConfigRenderer(theme()).RenderSchemaWritten(schemaFile))
	return nil
}
