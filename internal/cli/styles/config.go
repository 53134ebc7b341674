package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	status := r.theme.SuccessStyle.Render("exists")
	if !exists {
		status = r.theme.WarningStyle.Render("not created yet")
	}
	return fmt.Sprintf("  %s Config %s (%s)", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path), status)
}

// RenderSchemaWritten renders the confirmation after writing the schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("  %s Schema written to %s", iconStyle.Render(IconCheck), r.theme.Subtle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("  %s %s", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
