package styles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/keymaster/internal/domain/build"
)

func TestRenderCombinations(t *testing.T) {
	theme := NewTheme()

	out := RenderCombinations(theme, []CombinationRow{
		{Text: "ctrl+s", Code: 83, KeyName: "s", Modifiers: "ctrl", Valid: true},
		{Text: "hyper+a", Code: -1, KeyName: "invalid", Valid: false},
	})

	assert.Contains(t, out, "Combination")
	assert.Contains(t, out, "ctrl+s")
	assert.Contains(t, out, "83")
	assert.Contains(t, out, "hyper+a")
	assert.Contains(t, out, "inert")
}

func TestRenderBindings(t *testing.T) {
	out := RenderBindings(NewTheme(), []BindingRow{
		{Shortcut: "shift+ctrl+k", Scope: "editor", Action: "delete-line", Description: "Delete line"},
	})

	assert.Contains(t, out, "shift+ctrl+k")
	assert.Contains(t, out, "editor")
	assert.Contains(t, out, "Delete line")
}

func TestTryKeyMap(t *testing.T) {
	km := DefaultTryKeyMap()
	km.Configured = append(km.Configured, HelpEntry("ctrl+s", "save"))

	short := km.ShortHelp()
	assert.Len(t, short, 2)
	assert.Equal(t, "save", short[0].Help().Desc)
	assert.Equal(t, "ctrl+c", short[1].Help().Key)
	assert.Len(t, km.FullHelp(), 2)
}

func TestConfigRenderer(t *testing.T) {
	r := NewConfigRenderer(NewTheme())

	assert.Contains(t, r.RenderPath("/tmp/config.toml", false), "not created yet")
	assert.Contains(t, r.RenderPath("/tmp/config.toml", true), "/tmp/config.toml")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestAboutRenderer(t *testing.T) {
	out := NewAboutRenderer(NewTheme()).Render(build.Info{Version: "v1.2.3", Commit: "abc123"})

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
}

func TestThemeFromPalette(t *testing.T) {
	p := DefaultDarkPalette()
	p.Accent = "#ff00ff"
	theme := NewThemeFromPalette(p)

	assert.Equal(t, "#ff00ff", string(theme.Accent))
	assert.Equal(t, theme.Accent, theme.Success)
	assert.Contains(t, theme.ScopeBadge("editor", true), "editor")
	assert.Contains(t, theme.ScopeBadge("browser", false), "browser")
	assert.Contains(t, theme.KeyCap.Render("ctrl+s"), "ctrl+s")
}
