package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/keymaster/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewAboutRenderer(theme())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
	return nil
}
