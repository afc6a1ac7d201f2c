package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/core"
	"github.com/vovakirdan/tui-endgame/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewCatalog
)

// SessionModel manages the full session flow: menu -> game or catalog -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	catalog   config.EndgameConfig
	config    core.RuntimeConfig
	username  string
	renderer  *ScreenRenderer
	logger    *log.Logger
	view      sessionView
	menu      MenuModel
	gameModel *Model
	words     *CatalogModel
	quitting  bool

	// seeds hands each game started from the menu its own seed. It is
	// seeded from config.Seed, so a fixed --seed replays the same sequence.
	seeds *rand.Rand
}

// NewSessionModel creates a new session model. renderer and logger may be nil.
func NewSessionModel(cat config.EndgameConfig, cfg core.RuntimeConfig, username string, renderer *ScreenRenderer, logger *log.Logger) SessionModel {
	if renderer == nil {
		renderer = defaultScreenRenderer
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return SessionModel{
		seeds:    rand.New(rand.NewSource(seed)),
		catalog:  cat,
		config:   cfg,
		username: username,
		renderer: renderer,
		logger:   logger,
		menu:     NewMenuModel(cfg, renderer.Lipgloss()),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewCatalog:
		return m.updateCatalog(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu ends itself with
// tea.Quit on selection; that command is dropped here so the session lives on.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsCatalog() {
		words := NewCatalogModel(m.catalog, m.config.ScreenW, m.config.ScreenH, m.renderer.Lipgloss())
		m.words = &words
		m.view = viewCatalog
		return m, m.words.Init()
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			return m, nil
		}

		opts := []ModelOption{WithRenderer(m.renderer), WithBackToMenu()}
		if m.logger != nil {
			opts = append(opts, WithLogger(m.logger.With("user", m.username)))
		}
		gameCfg := m.config
		gameCfg.Seed = m.nextSeed()
		gameModel := NewModel(game, gameCfg, opts...)
		m.gameModel = &gameModel
		m.view = viewGame

		if m.logger != nil {
			m.logger.Info("game started", "user", m.username, "game", game.ID(), "seed", gameCfg.Seed)
		}
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		return m.returnToMenu()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateCatalog handles updates when browsing the word catalog.
func (m SessionModel) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.words.Update(msg)
	if words, ok := newModel.(CatalogModel); ok {
		m.words = &words
	}

	if m.words.IsGoingBack() {
		return m.returnToMenu()
	}

	if m.words.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// nextSeed never returns 0, which Game.Reset would replace with the clock.
func (m SessionModel) nextSeed() int64 {
	return m.seeds.Int63n(1<<62) + 1
}

func (m SessionModel) returnToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameModel = nil
	m.words = nil
	m.menu = NewMenuModel(m.config, m.renderer.Lipgloss())
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewCatalog:
		return m.words.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session on the local terminal.
func RunSession(cat config.EndgameConfig, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cat, cfg, "local", nil, nil),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
