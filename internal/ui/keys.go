package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Detail key.Binding
	Escape key.Binding

	// Engine controls
	CycleSort      key.Binding
	ToggleIphone   key.Binding
	ToggleAndroid  key.Binding
	ToggleUnknown  key.Binding
	ToggleGen17    key.Binding
	ToggleGen16    key.Binding
	ToggleGen15    key.Binding
	ToggleGen14    key.Binding
	ToggleGenOlder key.Binding
	ToggleGenNone  key.Binding

	// Actions
	OpenReference key.Binding
	Export        key.Binding
	Reload        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Row detail"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay"),
		),

		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Cycle price sort"),
		),
		ToggleIphone: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Toggle iPhone"),
		),
		ToggleAndroid: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Toggle Android"),
		),
		ToggleUnknown: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "Toggle other devices"),
		),
		ToggleGen17: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Toggle iPhone 17"),
		),
		ToggleGen16: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Toggle iPhone 16"),
		),
		ToggleGen15: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Toggle iPhone 15"),
		),
		ToggleGen14: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Toggle iPhone 14"),
		),
		ToggleGenOlder: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "Toggle older iPhones"),
		),
		ToggleGenNone: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "Toggle unknown generation"),
		),

		OpenReference: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Act on row reference"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Export view to CSV"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload dataset"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Detail},
		{k.ToggleIphone, k.ToggleAndroid, k.ToggleUnknown},
		{k.ToggleGen17, k.ToggleGen16, k.ToggleGen15, k.ToggleGen14, k.ToggleGenOlder, k.ToggleGenNone},
		{k.CycleSort, k.OpenReference, k.Export, k.Reload},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
