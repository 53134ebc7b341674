package styles

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// NewStyledTable creates a themed static table.
func NewStyledTable(theme *Theme, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.TableBorder).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeader
			}
			return theme.TableCell
		})
}

// CombinationRow is one parsed combination as shown by `keymaster parse`.
type CombinationRow struct {
	Text      string
	Code      int
	KeyName   string
	Modifiers string
	Valid     bool
}

// ToRow converts to table cells.
func (c CombinationRow) ToRow(theme *Theme) []string {
	valid := theme.SuccessStyle.Render(IconCheck + " yes")
	if !c.Valid {
		valid = theme.ErrorStyle.Render(IconX + " inert")
	}
	mods := c.Modifiers
	if mods == "" {
		mods = "-"
	}
	return []string{c.Text, strconv.Itoa(c.Code), c.KeyName, mods, valid}
}

// RenderCombinations renders parsed combinations as a table.
func RenderCombinations(theme *Theme, rows []CombinationRow) string {
	t := NewStyledTable(theme, "Combination", "Code", "Key", "Modifiers", "Valid")
	for _, r := range rows {
		t.Row(r.ToRow(theme)...)
	}
	return t.Render()
}

// BindingRow is one registered binding as shown by `keymaster bindings`.
type BindingRow struct {
	Shortcut    string
	Scope       string
	Action      string
	Description string
}

// RenderBindings renders registered bindings as a table.
func RenderBindings(theme *Theme, rows []BindingRow) string {
	t := NewStyledTable(theme, "Shortcut", "Scope", "Action", "Description")
	for _, r := range rows {
		t.Row(r.Shortcut, r.Scope, r.Action, r.Description)
	}
	return t.Render()
}
