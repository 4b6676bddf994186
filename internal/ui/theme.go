package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the palette for the UI. Styles derives the lipgloss
// styles the renderers use.
type Theme struct {
	Name string

	Background    string
	Surface       string
	SelectionBg   string
	SelectionText string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles holds the derived lipgloss styles for a theme.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	ColumnHed lipgloss.Style
	Selected  lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Faint     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
	URL       lipgloss.Style
	Path      lipgloss.Style
	ToggleOn  lipgloss.Style
	ToggleOff lipgloss.Style
	Status    lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		ColumnHed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted)),
		Faint:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Warning)),
		Danger:  lipgloss.NewStyle().Foreground(lipgloss.Color(t.Danger)).Bold(true),
		URL: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Underline(true),
		Path: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		ToggleOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		ToggleOff: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)).
			Strikethrough(true),
		Status: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)),
	}
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Background:    "#282a36",
		Surface:       "#44475a",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
		Text:          "#f8f8f2",
		Muted:         "#9ea8c7",
		Faint:         "#6272a4",
		Accent:        "#bd93f9",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
	},
	{
		Name:          "Nord",
		Background:    "#2e3440",
		Surface:       "#3b4252",
		SelectionBg:   "#434c5e",
		SelectionText: "#eceff4",
		Text:          "#d8dee9",
		Muted:         "#a3b1c9",
		Faint:         "#4c566a",
		Accent:        "#88c0d0",
		Success:       "#a3be8c",
		Warning:       "#ebcb8b",
		Danger:        "#bf616a",
	},
	{
		Name:          "Gruvbox",
		Background:    "#282828",
		Surface:       "#3c3836",
		SelectionBg:   "#504945",
		SelectionText: "#fbf1c7",
		Text:          "#ebdbb2",
		Muted:         "#bdae93",
		Faint:         "#665c54",
		Accent:        "#83a598",
		Success:       "#b8bb26",
		Warning:       "#fabd2f",
		Danger:        "#fb4934",
	},
}

// GetTheme returns the named theme, defaulting to the first palette when
// the name is unknown.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, cycling.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
