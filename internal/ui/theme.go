package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text      string
	Muted     string
	Accent    string
	Selection string
	Premium   string
	Favorite  string
	Success   string
	Warning   string
	Danger    string
	Border    string
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Selected  lipgloss.Style
	Premium   lipgloss.Style
	Favorite  lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
	Header    lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	Box       lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Selection)).Bold(true),
		Premium:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Premium)).Bold(true),
		Favorite: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Favorite)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Selection)).
			Bold(true).
			Underline(true),
		Tab: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),
	}
}

var themes = []Theme{
	{
		Name:      "Dracula",
		Text:      "#f8f8f2",
		Muted:     "#6272a4",
		Accent:    "#bd93f9",
		Selection: "#8be9fd",
		Premium:   "#ffb86c",
		Favorite:  "#ff79c6",
		Success:   "#50fa7b",
		Warning:   "#f1fa8c",
		Danger:    "#ff5555",
		Border:    "#44475a",
	},
	{
		Name:      "Nord",
		Text:      "#eceff4",
		Muted:     "#4c566a",
		Accent:    "#88c0d0",
		Selection: "#ebcb8b",
		Premium:   "#d08770",
		Favorite:  "#b48ead",
		Success:   "#a3be8c",
		Warning:   "#ebcb8b",
		Danger:    "#bf616a",
		Border:    "#3b4252",
	},
}

// GetTheme returns the named theme, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
