package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwrend/lotview/internal/classify"
)

// renderDetail renders a full-record overlay for the selected row. Every
// cell shows its reference classification, and the model text is enriched
// with the derived storage/grade attributes.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	if m.selected >= len(m.rows) {
		return styles.Muted.Render("nothing selected")
	}
	row := m.rows[m.selected]
	headers := m.session.Headers()

	labelWidth := 0
	for _, h := range headers {
		if len(h) > labelWidth {
			labelWidth = len(h)
		}
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Listing detail"))
	b.WriteString("\n\n")

	for i, h := range headers {
		cell := row.Cells[i]
		b.WriteString(styles.Accent.Render(pad(h, labelWidth)))
		b.WriteString("  ")
		switch cell.Kind {
		case classify.CellEmpty:
			b.WriteString(styles.Faint.Render("—"))
		case classify.CellURL:
			b.WriteString(styles.URL.Render(cell.Value))
			b.WriteString(styles.Faint.Render("  (url, o to open)"))
		case classify.CellPath:
			b.WriteString(styles.Path.Render(cell.Value))
			b.WriteString(styles.Faint.Render("  (path)"))
		default:
			b.WriteString(styles.Text.Render(cell.Value))
		}
		b.WriteString("\n")
	}

	model := row.Record.Get(m.session.Fields().Model)
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("category %s", row.Category)))
	if row.Category == classify.DeviceIphone {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  generation %s", row.Generation)))
	}
	b.WriteString(styles.Muted.Render(fmt.Sprintf("  price %.2f", row.Price)))
	if storage := classify.Storage(model); storage != "" {
		b.WriteString(styles.Muted.Render("  storage " + storage))
	}
	if grade := classify.Grade(model); grade != "" {
		b.WriteString(styles.Muted.Render("  grade " + grade))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Faint.Render("esc/enter to close"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
