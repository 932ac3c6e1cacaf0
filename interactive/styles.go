package interactive

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette shared by every editor pane.
type Theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Subtle    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Surface   lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#89ddff"),
		Secondary: lipgloss.Color("#c792ea"),
		Subtle:    lipgloss.Color("#546e7a"),
		Success:   lipgloss.Color("#c3e88d"),
		Warning:   lipgloss.Color("#ffcb6b"),
		Error:     lipgloss.Color("#f07178"),
		Surface:   lipgloss.Color("#212121"),
	}
}

// Styles holds all lipgloss styles for the editor TUI.
type Styles struct {
	theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Subtle   lipgloss.Style

	Header    lipgloss.Style
	StatusBar lipgloss.Style
	ErrorBar  lipgloss.Style

	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	TreeNode    lipgloss.Style
	TreeCursor  lipgloss.Style
	TreeProps   lipgloss.Style
	PaletteItem lipgloss.Style
	PalettePick lipgloss.Style

	MenuKey  lipgloss.Style
	MenuDesc lipgloss.Style
}

func NewStyles() *Styles {
	theme := DefaultTheme()
	return &Styles{
		theme: theme,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle: lipgloss.NewStyle().Foreground(theme.Secondary),
		Subtle:   lipgloss.NewStyle().Foreground(theme.Subtle),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Subtle),
		StatusBar: lipgloss.NewStyle().Foreground(theme.Success),
		ErrorBar:  lipgloss.NewStyle().Foreground(theme.Error),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Subtle).
			Padding(0, 1),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		TreeNode:    lipgloss.NewStyle(),
		TreeCursor:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		TreeProps:   lipgloss.NewStyle().Foreground(theme.Subtle),
		PaletteItem: lipgloss.NewStyle(),
		PalettePick: lipgloss.NewStyle().Bold(true).Foreground(theme.Warning),

		MenuKey:  lipgloss.NewStyle().Bold(true).Foreground(theme.Warning),
		MenuDesc: lipgloss.NewStyle().Foreground(theme.Subtle),
	}
}
