package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-endgame/internal/core"
	"github.com/vovakirdan/tui-endgame/internal/registry"
)

// MenuItem represents a selectable game variant in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

type menuStyles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	selected lipgloss.Style
	normal   lipgloss.Style
	desc     lipgloss.Style
	footer   lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	return menuStyles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9F4DA")).
			Background(lipgloss.Color("#2D519F")).
			Padding(0, 2),
		subtitle: r.NewStyle().Foreground(lipgloss.Color("#8E8E8E")),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FCBA29")),
		normal:   r.NewStyle().Foreground(lipgloss.Color("#F9F4DA")),
		desc:     r.NewStyle().Foreground(lipgloss.Color("#8E8E8E")).Italic(true),
		footer:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items       []MenuItem
	cursor      int
	width       int
	height      int
	config      core.RuntimeConfig
	keyMapper   *KeyMapper
	styles      menuStyles
	quitting    bool
	selected    *MenuItem // Set when user selects a game
	openCatalog bool      // True if user asked for the word catalog
}

// NewMenuModel creates a new menu model listing every registered game.
// A nil renderer uses the local terminal's.
func NewMenuModel(cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		styles:    newMenuStyles(r),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionCatalog:
		m.openCatalog = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	center := func(s string) {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(m.styles.title.Render("ASSEMBLY: ENDGAME"))
	b.WriteString("\n")
	center(m.styles.subtitle.Render("Save the programming world. Pick a difficulty."))
	b.WriteString("\n")

	for i, item := range m.items {
		line := "  " + m.styles.normal.Render(item.Title)
		if i == m.cursor {
			line = m.styles.selected.Render("> " + item.Title)
		}
		center(line)
		if item.Description != "" {
			center(m.styles.desc.Render(item.Description))
		}
	}

	b.WriteString("\n")
	center(m.styles.footer.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: Words  |  Q: Quit"))

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsCatalog returns true if user asked for the word catalog.
func (m MenuModel) WantsCatalog() bool {
	return m.openCatalog
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
