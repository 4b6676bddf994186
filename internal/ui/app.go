package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwrend/lotview/internal/classify"
	"github.com/mwrend/lotview/internal/config"
	"github.com/mwrend/lotview/internal/dataset"
	"github.com/mwrend/lotview/internal/prefs"
	"github.com/mwrend/lotview/internal/state"
	"github.com/mwrend/lotview/internal/view"
)

const defaultTick = time.Second

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	ThemeName string
	PrefsPath string
	Tick      time.Duration
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	prefsPath string
	tick      time.Duration

	// UI state
	keys     keyMap
	help     help.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	showRow  bool // detail overlay
	status   string

	// Engine state
	session  *view.Session
	rows     []view.Row
	selected int

	// Dataset meta
	hasData     bool
	loads       int
	lastUpdated time.Time
	lastError   error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	tick := opts.Tick
	if tick <= 0 {
		tick = defaultTick
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	fields := view.Fields{}
	if opts.Config != nil {
		fields = view.Fields{Model: opts.Config.ModelField, Price: opts.Config.PriceField}
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		config:    opts.Config,
		prefsPath: prefsPath,
		tick:      tick,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     GetTheme(themeName),
		session:   view.NewSession(dataset.Dataset{}, fields),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tick)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.tick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.applySnapshot(state.Snapshot(msg))
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("exported %d rows to %s", msg.rows, msg.path)
		}
		return m, nil
	}

	return m, nil
}

// applySnapshot folds a store snapshot into the model. Filter and sort
// state live in the session and survive dataset swaps.
func (m *Model) applySnapshot(snap state.Snapshot) {
	m.lastUpdated = snap.LastUpdated
	m.lastError = snap.LastError
	m.hasData = snap.HasData

	if snap.Loads != m.loads {
		m.loads = snap.Loads
		m.session.Reset(snap.Data)
		m.refresh()
	}
}

// refresh recomputes the materialized view after any state change.
func (m *Model) refresh() {
	m.rows = m.session.View()
	if m.selected >= len(m.rows) {
		m.selected = len(m.rows) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help.
		m.showHelp = false
		return m, nil
	}
	if m.showRow {
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Detail) || key.Matches(msg, m.keys.Quit) {
			m.showRow = false
		}
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rows)-1 {
			m.selected++
		}

	case key.Matches(msg, m.keys.Top):
		m.selected = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.rows) > 0 {
			m.selected = len(m.rows) - 1
		}

	case key.Matches(msg, m.keys.Detail):
		if len(m.rows) > 0 {
			m.showRow = true
		}

	case key.Matches(msg, m.keys.CycleSort):
		order := m.session.CycleSort()
		m.status = "price sort: " + order.String()
		m.refresh()

	case key.Matches(msg, m.keys.ToggleIphone):
		m.toggleDevice(classify.DeviceIphone)
	case key.Matches(msg, m.keys.ToggleAndroid):
		m.toggleDevice(classify.DeviceAndroid)
	case key.Matches(msg, m.keys.ToggleUnknown):
		m.toggleDevice(classify.DeviceUnknown)

	case key.Matches(msg, m.keys.ToggleGen17):
		m.toggleGeneration(classify.Gen17)
	case key.Matches(msg, m.keys.ToggleGen16):
		m.toggleGeneration(classify.Gen16)
	case key.Matches(msg, m.keys.ToggleGen15):
		m.toggleGeneration(classify.Gen15)
	case key.Matches(msg, m.keys.ToggleGen14):
		m.toggleGeneration(classify.Gen14)
	case key.Matches(msg, m.keys.ToggleGenOlder):
		m.toggleGeneration(classify.GenOlder)
	case key.Matches(msg, m.keys.ToggleGenNone):
		m.toggleGeneration(classify.GenUnknown)

	case key.Matches(msg, m.keys.OpenReference):
		m.actOnReference()

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.Reload):
		if m.config != nil && m.config.DataPath != "" {
			return m, reloadCmd(m.store, m.config.DataPath)
		}
	}

	return m, nil
}

func (m *Model) toggleDevice(c classify.DeviceCategory) {
	m.session.ToggleDeviceFilter(c)
	m.status = toggleStatus(c.String(), m.session.Filters().Device[c])
	m.refresh()
}

func (m *Model) toggleGeneration(g classify.Generation) {
	m.session.ToggleGenerationFilter(g)
	m.status = toggleStatus("iPhone "+g.String(), m.session.Filters().Generation[g])
	m.refresh()
}

func toggleStatus(label string, on bool) string {
	if on {
		return label + " filter: on"
	}
	return label + " filter: off"
}

// actOnReference surfaces the action for the selected row's first
// reference cell: URLs are offered for opening, paths are displayed for
// manual follow-up. No filesystem access is attempted either way.
func (m *Model) actOnReference() {
	if m.selected >= len(m.rows) {
		return
	}
	ref, ok := m.rows[m.selected].FirstReference()
	if !ok {
		m.status = "no reference in selected row"
		return
	}
	if ref.Kind == classify.CellURL {
		m.status = "open: " + ref.Value
	} else {
		m.status = "path (manual follow-up): " + ref.Value
	}
}

// exportCmd writes the current view to the configured export path.
func (m Model) exportCmd() tea.Cmd {
	headers := m.session.Headers()
	records := make([]dataset.Record, len(m.rows))
	for i, row := range m.rows {
		records[i] = row.Record
	}
	path := ""
	if m.config != nil {
		path = m.config.ExportPath
	}
	return func() tea.Msg {
		if path == "" {
			return exportDoneMsg{err: fmt.Errorf("no export path configured")}
		}
		if err := dataset.Export(path, headers, records); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{rows: len(records), path: path}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showRow {
		return m.renderDetail()
	}
	return m.renderMain()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type exportDoneMsg struct {
	rows int
	path string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// reloadCmd reloads the dataset immediately instead of waiting for the
// file watcher.
func reloadCmd(store *state.Store, path string) tea.Cmd {
	return func() tea.Msg {
		ds, err := dataset.Load(path)
		store.Update(ds, err)
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program. Cancelling the context (SIGINT from
// the CLI layer) shuts the program down cleanly.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
