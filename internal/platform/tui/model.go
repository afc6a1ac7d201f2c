package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-endgame/internal/core"
	"github.com/vovakirdan/tui-endgame/internal/registry"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Model is the Bubble Tea model for running a game.
// Input is applied as soon as it arrives; there is no tick loop.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	renderer   *ScreenRenderer
	config     core.RuntimeConfig
	keys       GameKeyMap
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inSession  bool
	quitting   bool
	backToMenu bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer sets the screen renderer, e.g. one bound to an SSH session.
func WithRenderer(r *ScreenRenderer) ModelOption {
	return func(m *Model) { m.renderer = r }
}

// WithLogger logs finished rounds to l.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithBackToMenu makes Esc return to the menu instead of quitting.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.inSession = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:      game,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.renderer == nil {
		m.renderer = defaultScreenRenderer
	}

	backLabel := "quit"
	if m.inSession {
		backLabel = "menu"
	}
	m.keys = DefaultGameKeyMap(backLabel)
	m.help.Width = cfg.ScreenW

	w, h := m.gameSize()
	m.screen = core.NewScreen(w, h)
	return m
}

// gameSize returns the area available to the game below the help footer.
func (m Model) gameSize() (int, int) {
	return m.config.ScreenW, core.Max(0, m.config.ScreenH-helpHeight)
}

// Init starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenW, cfg.ScreenH = m.gameSize()
	m.game.Reset(cfg)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey applies a key press to the game immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	if m.keyMapper.MapKeyToFrame(msg, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionBack) {
		if m.inSession {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	result := m.game.Step(frame)
	if result.Accepted && frame.Has(core.ActionGuess) && result.State.GameOver && m.logger != nil {
		m.logger.Info("round over", "game", m.game.ID(), "won", result.State.Won)
	}

	return m, nil
}

// handleResize keeps the round in progress and only resizes the screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	w, h := m.gameSize()
	m.screen.Resize(w, h)
	m.game.Resize(w, h)

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
