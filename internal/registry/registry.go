// Package registry maps variant IDs to game factories. Variants register
// themselves from init(), so the CLI, the menu and the SSH server can list
// and start them without importing each one.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-endgame/internal/core"
)

// ErrUnknownVariant is returned by Create for an ID nobody registered.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is what the TUI drives. Implementations know nothing about Bubble
// Tea: keys arrive as InputFrames and output goes into a core.Screen.
type Game interface {
	// ID is the registered variant ID, e.g. "endgame_hard".
	ID() string
	Title() string

	// Reset starts a fresh round sized and seeded from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step applies one input frame.
	Step(in core.InputFrame) core.StepResult

	// Resize changes the board size. The round in progress is kept.
	Resize(width, height int)

	Render(dst *core.Screen)
	State() core.GameState
}

// GameInfo describes a registered variant for listings.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory builds a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu       sync.RWMutex
	variants = make(map[string]entry)
)

// Register adds a variant. It panics if id is taken.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := variants[id]; dup {
		panic(fmt.Sprintf("registry: variant %q registered twice", id))
	}
	variants[id] = entry{
		factory: f,
		info:    GameInfo{ID: id, Title: f().Title(), Description: description},
	}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(variants))
	for _, e := range variants {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Create builds a new game for the variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := variants[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := variants[id]
	return ok
}
