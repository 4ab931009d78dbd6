// ABOUTME: huh form theme built from the active palette
// ABOUTME: Shared by the login and product form screens

package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme matching the active palette
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	p := Current

	t.Group.Title = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(p.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(p.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(p.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(p.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(p.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(p.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(p.Text)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(p.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(p.Muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(p.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(p.Text)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(p.Info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(p.Muted).
		Background(p.Surface).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(p.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(p.Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(p.Muted)

	return t
}
