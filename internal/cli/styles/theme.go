package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the base colors a Theme is built from.
type Palette struct {
	Background string
	Text       string
	Muted      string
	Accent     string
	Inactive   string
	Border     string
}

// Theme holds the colors and styles of the keymaster CLI.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Text styles
	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// KeyCap renders a key combination such as "ctrl+s".
	KeyCap        lipgloss.Style
	ActiveScope   lipgloss.Style
	InactiveScope lipgloss.Style
	BoxHeader     lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style

	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// DefaultDarkPalette returns hardcoded dark theme colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Text:       "#ffffff",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Inactive:   "#2d2d2d",
		Border:     "#333333",
	}
}

// NewTheme creates a Theme from the dark palette.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Text:    lipgloss.Color(p.Text),
		Muted:   lipgloss.Color(p.Muted),
		Accent:  lipgloss.Color(p.Accent),
		Border:  lipgloss.Color(p.Border),
		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color(p.Accent),
	}
	t.buildStyles(lipgloss.Color(p.Background), lipgloss.Color(p.Inactive))
	return t
}

func (t *Theme) buildStyles(background, inactive lipgloss.Color) {
	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.KeyCap = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(inactive).
		Padding(0, 1)

	t.ActiveScope = lipgloss.NewStyle().
		Foreground(background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)

	t.InactiveScope = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(inactive).
		Padding(0, 1)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	t.TableHeader = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Padding(0, 1)
	t.TableCell = lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	t.TableBorder = lipgloss.NewStyle().Foreground(t.Border)

	t.HelpKey = lipgloss.NewStyle().Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)
	t.HelpSeparator = lipgloss.NewStyle().Foreground(t.Border)
}

// ScopeBadge renders a scope name, accented when it is the active one.
func (t *Theme) ScopeBadge(scope string, active bool) string {
	if active {
		return t.ActiveScope.Render(scope)
	}
	return t.InactiveScope.Render(scope)
}
