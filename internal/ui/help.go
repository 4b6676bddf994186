package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the full-screen help overlay from the key map.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	h := m.help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(styles.Title.Render("lotview — keys"))
	b.WriteString("\n\n")
	b.WriteString(h.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.Faint.Render("press any key to close"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
