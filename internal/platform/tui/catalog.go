package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-endgame/internal/config"
)

// CatalogKeyMap defines the key bindings for the word catalog browser.
type CatalogKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k CatalogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k CatalogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev},
		{k.Back, k.Quit},
	}
}

// DefaultCatalogKeyMap returns the default catalog key bindings.
func DefaultCatalogKeyMap() CatalogKeyMap {
	return CatalogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CatalogModel browses the words each difficulty preset draws from,
// together with the languages and number of lives it plays with.
type CatalogModel struct {
	base      config.EndgameConfig
	presetIdx int
	current   config.EndgameConfig // base with the selected preset applied
	table     table.Model
	help      help.Model
	keys      CatalogKeyMap
	renderer  *lipgloss.Renderer
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewCatalogModel creates a catalog browser for cfg. A nil renderer uses
// the local terminal's.
func NewCatalogModel(cfg config.EndgameConfig, width, height int, r *lipgloss.Renderer) CatalogModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	m := CatalogModel{
		base:     cfg,
		keys:     DefaultCatalogKeyMap(),
		help:     help.New(),
		renderer: r,
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.selectPreset(indexOfPreset(config.DifficultyNormal))
	return m
}

func indexOfPreset(p config.DifficultyPreset) int {
	for i, q := range config.Presets {
		if q == p {
			return i
		}
	}
	return 0
}

// createTable creates a new table sized to the window.
func (m *CatalogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Word", Width: 16},
		{Title: "Letters", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)), // Leave room for header, labels and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#1E1E1E")).
		Background(lipgloss.Color("#FCBA29")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selectPreset switches the table to the preset at index i.
func (m *CatalogModel) selectPreset(i int) {
	m.presetIdx = i
	m.current = config.ApplyPreset(m.base, config.Presets[i])
	m.updateTableRows()
}

// updateTableRows fills the table with the current preset's words.
func (m *CatalogModel) updateTableRows() {
	rows := make([]table.Row, len(m.current.Words))
	for i, w := range m.current.Words {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			strings.ToUpper(w),
			fmt.Sprintf("%d", len(w)),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the catalog model.
func (m CatalogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog.
func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.selectPreset((m.presetIdx + 1) % len(config.Presets))
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.selectPreset((m.presetIdx + len(config.Presets) - 1) % len(config.Presets))
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the catalog.
func (m CatalogModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	r := m.renderer
	var b strings.Builder
	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s))
		b.WriteString("\n")
	}

	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	center(titleStyle.Render("WORD CATALOG"))
	b.WriteString("\n")

	// Difficulty tabs
	tabStyle := r.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1E1E1E")).
		Background(lipgloss.Color("#FCBA29")).
		Padding(0, 1)
	tabs := make([]string, len(config.Presets))
	for i, p := range config.Presets {
		if i == m.presetIdx {
			tabs[i] = activeTabStyle.Render(string(p))
		} else {
			tabs[i] = tabStyle.Render(string(p))
		}
	}
	center(strings.Join(tabs, " "))
	b.WriteString("\n")

	center(m.renderLabels())
	infoStyle := r.NewStyle().Foreground(lipgloss.Color("#8E8E8E"))
	center(infoStyle.Render(fmt.Sprintf("%d words  ·  %d wrong guesses allowed", len(m.current.Words), m.lives())))
	b.WriteString("\n")

	tableStyle := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	center(tableStyle.Render(m.table.View()))

	helpStyle := r.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderLabels renders the language chips in their own colours.
func (m CatalogModel) renderLabels() string {
	chips := make([]string, len(m.current.Labels))
	for i, l := range m.current.Labels {
		chips[i] = m.renderer.NewStyle().
			Foreground(lipgloss.Color(l.Color)).
			Background(lipgloss.Color(l.BackgroundColor)).
			Padding(0, 1).
			Render(l.Name)
	}
	return strings.Join(chips, " ")
}

// lives returns the wrong-guess budget of the selected preset.
func (m CatalogModel) lives() int {
	if m.current.Lives > 0 {
		return m.current.Lives
	}
	return len(m.current.Labels) - 1
}

// Preset returns the difficulty preset currently shown.
func (m CatalogModel) Preset() config.DifficultyPreset {
	return config.Presets[m.presetIdx]
}

// IsGoingBack returns true if user wants to go back to menu.
func (m CatalogModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m CatalogModel) IsQuitting() bool {
	return m.quitting
}

// RunCatalog runs the catalog browser on the local terminal.
func RunCatalog(cfg config.EndgameConfig, width, height int) error {
	p := tea.NewProgram(
		NewCatalogModel(cfg, width, height, nil),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
