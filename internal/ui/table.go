package ui

import (
	"strings"

	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/view"
)

const (
	maxColumnWidth = 32
	columnGap      = 2
)

// renderTable renders the column header plus up to height data rows,
// scrolled so the selected row stays visible.
func (m Model) renderTable(height int) string {
	styles := m.theme.Styles()
	headers := m.session.Headers()

	if len(headers) == 0 || !m.hasData {
		return styles.Muted.Render("No data loaded.")
	}
	if len(m.rows) == 0 {
		return m.renderColumnHeader(headers) + "\n" +
			styles.Muted.Render("No rows match the active filters.")
	}

	if height < 1 {
		height = 1
	}
	start := 0
	if m.selected >= height {
		start = m.selected - height + 1
	}
	end := start + height
	if end > len(m.rows) {
		end = len(m.rows)
	}

	widths := m.columnWidths(headers)

	var b strings.Builder
	b.WriteString(m.renderColumnHeader(headers))
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(m.rows[i], widths, i == m.selected))
	}
	return b.String()
}

func (m Model) renderColumnHeader(headers []string) string {
	styles := m.theme.Styles()
	widths := m.columnWidths(headers)
	gap := strings.Repeat(" ", columnGap)

	cells := make([]string, len(headers))
	for i, h := range headers {
		label := h
		if h == m.session.Fields().Price {
			label += sortIndicator(m.session.Order())
		}
		cells[i] = styles.ColumnHed.Render(pad(truncate(label, widths[i]), widths[i]))
	}
	return strings.Join(cells, gap)
}

func (m Model) renderRow(row view.Row, widths []int, selected bool) string {
	styles := m.theme.Styles()
	gap := strings.Repeat(" ", columnGap)

	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		text := pad(truncate(cell.Value, widths[i]), widths[i])
		if selected {
			// Selection background wins over per-cell styling.
			cells[i] = text
			continue
		}
		switch cell.Kind {
		case classify.CellURL:
			cells[i] = styles.URL.Render(text)
		case classify.CellPath:
			cells[i] = styles.Path.Render(text)
		case classify.CellEmpty:
			cells[i] = text
		default:
			cells[i] = styles.Text.Render(text)
		}
	}

	line := strings.Join(cells, gap)
	if selected {
		return styles.Selected.Render(line)
	}
	return line
}

// columnWidths sizes each column to its widest value, capped so one long
// URL cannot push everything else off screen.
func (m Model) columnWidths(headers []string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		label := h
		if h == m.session.Fields().Price {
			label += sortIndicator(m.session.Order())
		}
		widths[i] = len([]rune(label))
	}
	for _, row := range m.rows {
		for i, cell := range row.Cells {
			if i >= len(widths) {
				break
			}
			if n := len([]rune(cell.Value)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func sortIndicator(o view.SortOrder) string {
	switch o {
	case view.SortAscending:
		return " ↑"
	case view.SortDescending:
		return " ↓"
	default:
		return ""
	}
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	if limit == 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

func pad(value string, width int) string {
	n := len([]rune(value))
	if n >= width {
		return value
	}
	return value + strings.Repeat(" ", width-n)
}
