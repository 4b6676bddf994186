package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwrend/lotview/internal/classify"
)

// renderMain renders the full UI: header, table, filter footer, status bar.
func (m Model) renderMain() string {
	tableHeight := m.height - 4 // header + column header + footer + status
	if tableHeight < 1 {
		tableHeight = 1
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTable(tableHeight))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// renderHeader renders the top bar: app name, dataset, row counts, errors.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	parts := []string{styles.Title.Render("lotview")}

	if m.config != nil && m.config.DataPath != "" {
		parts = append(parts, styles.Muted.Render(truncateMiddle(m.config.DataPath, 40)))
	}

	if m.hasData {
		parts = append(parts, styles.Text.Render(
			fmt.Sprintf("%d/%d rows", len(m.rows), m.session.Len())))
	} else {
		parts = append(parts, styles.Warning.Render("waiting for data"))
	}

	if !m.lastUpdated.IsZero() {
		parts = append(parts, styles.Faint.Render(m.lastUpdated.Format("15:04:05")))
	}

	if m.lastError != nil {
		parts = append(parts, styles.Danger.Render("LOAD ERROR ")+
			styles.Muted.Render(truncate(m.lastError.Error(), 60)))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderFooter renders the filter toggles annotated with live totals.
// Counts come from the unfiltered dataset, so they hold steady while
// toggles flip.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	counts := m.session.Counts()
	filters := m.session.Filters()

	deviceKeys := map[classify.DeviceCategory]string{
		classify.DeviceIphone:  "i",
		classify.DeviceAndroid: "a",
		classify.DeviceUnknown: "u",
	}
	genKeys := map[classify.Generation]string{
		classify.Gen17:      "1",
		classify.Gen16:      "2",
		classify.Gen15:      "3",
		classify.Gen14:      "4",
		classify.GenOlder:   "5",
		classify.GenUnknown: "6",
	}

	var device []string
	for _, c := range classify.DeviceCategories {
		device = append(device, renderToggle(styles,
			deviceKeys[c], fmt.Sprintf("%s %d", c, counts.Device[c]), filters.Device[c]))
	}

	var gens []string
	for _, g := range classify.Generations {
		gens = append(gens, renderToggle(styles,
			genKeys[g], fmt.Sprintf("%s %d", g, counts.Generation[g]), filters.Generation[g]))
	}

	return strings.Join(device, " ") +
		styles.Faint.Render("  │ gen ") +
		strings.Join(gens, " ")
}

func renderToggle(styles Styles, keyLabel, label string, on bool) string {
	body := styles.ToggleOff.Render(label)
	if on {
		body = styles.ToggleOn.Render(label)
	}
	return styles.Faint.Render("["+keyLabel+"]") + body
}

// renderStatusBar renders the transient status message plus short help.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles()

	left := m.status
	if left == "" {
		left = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	right := styles.Faint.Render(m.theme.Name)
	space := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return styles.Status.Width(m.width).Render(left + strings.Repeat(" ", space) + right)
}

func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}
