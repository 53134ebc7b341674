package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// TryKeyMap lists the keys of the interactive playground. Configured
// bindings are shown as help entries; ForceQuit always works.
type TryKeyMap struct {
	Configured []key.Binding
	ForceQuit  key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k TryKeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(k.Configured)+1)
	out = append(out, k.Configured...)
	return append(out, k.ForceQuit)
}

// FullHelp returns keybindings for expanded help.
func (k TryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Configured, {k.ForceQuit}}
}

// DefaultTryKeyMap returns the playground keybindings with no configured entries.
func DefaultTryKeyMap() TryKeyMap {
	return TryKeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// HelpEntry builds a display-only help binding for a shortcut and its action.
func HelpEntry(shortcut, action string) key.Binding {
	return key.NewBinding(
		key.WithKeys(shortcut),
		key.WithHelp(shortcut, action),
	)
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	h.Styles.ShortSeparator = theme.HelpSeparator
	h.Styles.FullKey = theme.HelpKey
	h.Styles.FullDesc = theme.Normal
	h.Styles.FullSeparator = theme.HelpSeparator
	return h
}
