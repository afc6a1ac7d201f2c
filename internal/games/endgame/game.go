// Package endgame implements "Assembly: Endgame", a hangman-style game in
// which every wrong guess costs one programming language. The round logic
// lives in the engine package; this package adapts it to the platform's
// Game interface and draws it.
package endgame

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/core"
	"github.com/vovakirdan/tui-endgame/internal/engine"
	"github.com/vovakirdan/tui-endgame/internal/registry"
	"github.com/vovakirdan/tui-endgame/internal/words"
)

// Minimum screen size needed to draw the board.
const (
	MinWidth  = 52
	MinHeight = 21
)

// ID is the base game identifier. Presets other than normal get a suffix.
const ID = "endgame"

var (
	cfgMu      sync.RWMutex
	baseConfig = config.Default()
)

// SetConfig replaces the catalog configuration used by games created
// afterwards. Every preset derived from cfg must be valid.
func SetConfig(cfg config.EndgameConfig) error {
	for _, p := range config.Presets {
		if err := config.Validate(config.ApplyPreset(cfg, p)); err != nil {
			return fmt.Errorf("endgame: preset %s: %w", p, err)
		}
	}

	cfgMu.Lock()
	defer cfgMu.Unlock()
	baseConfig = cfg
	return nil
}

func currentConfig() config.EndgameConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return baseConfig
}

// IDForPreset returns the registry ID of the variant for a preset.
func IDForPreset(p config.DifficultyPreset) string {
	if p == config.DifficultyNormal || p == "" {
		return ID
	}
	return ID + "_" + string(p)
}

func init() {
	registry.Register(IDForPreset(config.DifficultyNormal), "Words of 4-8 letters", func() registry.Game {
		return New(config.DifficultyNormal)
	})
	registry.Register(IDForPreset(config.DifficultyEasy), "Short words", func() registry.Game {
		return New(config.DifficultyEasy)
	})
	registry.Register(IDForPreset(config.DifficultyHard), "Long words, two fewer lives", func() registry.Game {
		return New(config.DifficultyHard)
	})
}

// Game adapts an engine.Engine to registry.Game.
type Game struct {
	preset config.DifficultyPreset
	cfg    config.EndgameConfig

	source      *words.Source
	engine      *engine.Engine
	unsubscribe func()

	round int // Rounds started, including the current one

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game for the given difficulty preset using the current
// catalog configuration.
func New(preset config.DifficultyPreset) *Game {
	return &Game{
		preset: preset,
		cfg:    config.ApplyPreset(currentConfig(), preset),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForPreset(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Assembly: Endgame (Easy)"
	case config.DifficultyHard:
		return "Assembly: Endgame (Hard)"
	default:
		return "Assembly: Endgame"
	}
}

// Reset builds a fresh word source from the seed and starts the first round.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	source, err := words.New(g.cfg.Catalog(), rand.New(rand.NewSource(seed)))
	if err != nil {
		// SetConfig validated every preset, so this is a programming error.
		panic(fmt.Sprintf("endgame: invalid catalog: %v", err))
	}

	if g.unsubscribe != nil {
		g.unsubscribe()
	}
	g.source = source
	g.engine = engine.New(source)
	g.unsubscribe = g.engine.Subscribe(g.onEvent)
	g.round = 1

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// onEvent counts rounds as the engine starts them.
func (g *Game) onEvent(ev engine.Event) {
	if ev.Kind == engine.EventReset {
		g.round++
	}
}

// Resize updates the screen dimensions. The round in progress is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < MinWidth || height < MinHeight
}

// Step applies one input frame. A restart is only honoured once the
// round is over; guesses are ignored while the window is too small.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	accepted := false
	switch {
	case in.Has(core.ActionRestart):
		if g.engine.IsOver() {
			g.engine.Reset()
			accepted = true
		}
	case in.Has(core.ActionGuess):
		accepted = g.engine.SubmitGuess(in.Letter)
	}

	return core.StepResult{State: g.State(), Accepted: accepted}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{TooSmall: g.tooSmall}
	}
	return core.GameState{
		GameOver: g.engine.IsOver(),
		Won:      g.engine.IsWon(),
		TooSmall: g.tooSmall,
	}
}

// Engine exposes the underlying engine for read-only inspection.
func (g *Game) Engine() *engine.Engine {
	return g.engine
}

// Round returns how many rounds have been started since Reset.
func (g *Game) Round() int {
	return g.round
}
