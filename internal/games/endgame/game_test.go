package endgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-endgame/internal/config"
	"github.com/vovakirdan/tui-endgame/internal/core"
	"github.com/vovakirdan/tui-endgame/internal/registry"
	"github.com/vovakirdan/tui-endgame/internal/words"
)

var testRuntime = core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24}

// newTestGame returns a started game whose catalog holds only the given words.
func newTestGame(t *testing.T, ws ...string) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Words = ws
	require.NoError(t, config.Validate(cfg))

	g := &Game{preset: config.DifficultyNormal, cfg: cfg}
	g.Reset(testRuntime)
	return g
}

func guess(g *Game, letters string) {
	for _, r := range letters {
		g.Step(core.GuessFrame(r))
	}
}

func restartFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, p := range config.Presets {
		id := IDForPreset(p)
		require.True(t, registry.Exists(id), "variant %s", id)

		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}

	g, err := registry.Create("endgame_hard")
	require.NoError(t, err)
	assert.Equal(t, "Assembly: Endgame (Hard)", g.Title())
}

func TestDeterminism(t *testing.T) {
	g1 := New(config.DifficultyNormal)
	g1.Reset(testRuntime)
	g2 := New(config.DifficultyNormal)
	g2.Reset(testRuntime)

	guess(g1, "EAT")
	guess(g2, "EAT")
	assert.Equal(t, g1.Snapshot(), g2.Snapshot())

	g1.Step(restartFrame())
	g2.Step(restartFrame())
	assert.Equal(t, g1.Snapshot().Target, g2.Snapshot().Target)
}

func TestWinFlow(t *testing.T) {
	g := newTestGame(t, "go")

	res := g.Step(core.GuessFrame('g'))
	assert.True(t, res.Accepted)
	assert.False(t, res.State.GameOver)

	res = g.Step(core.GuessFrame('g'))
	assert.False(t, res.Accepted, "duplicate guess")

	res = g.Step(core.GuessFrame('O'))
	assert.True(t, res.Accepted)
	assert.Equal(t, core.GameState{GameOver: true, Won: true}, res.State)

	snap := g.Snapshot()
	assert.Equal(t, StateWin, snap.State)
	assert.Equal(t, "GO", snap.Revealed)
	assert.Equal(t, "GO", snap.Guessed)
	assert.Equal(t, 8, snap.AttemptsLeft)
}

func TestLossFlow(t *testing.T) {
	g := newTestGame(t, "go")

	guess(g, "ABCDEFH")
	assert.False(t, g.State().GameOver)
	assert.Equal(t, "__", g.Snapshot().Revealed)

	guess(g, "I")
	snap := g.Snapshot()
	assert.Equal(t, StateGameOver, snap.State)
	assert.Equal(t, 8, snap.WrongGuesses)
	assert.Equal(t, 0, snap.AttemptsLeft)
	assert.Equal(t, "GO", snap.Revealed, "target is revealed on loss")
	assert.Empty(t, snap.Farewell)

	res := g.Step(core.GuessFrame('G'))
	assert.False(t, res.Accepted, "round is frozen")
}

func TestFarewellAfterWrongGuess(t *testing.T) {
	g := newTestGame(t, "go")

	guess(g, "X")
	assert.Equal(t, "Farewell, HTML", g.Snapshot().Farewell)

	guess(g, "G")
	assert.Empty(t, g.Snapshot().Farewell, "correct guess clears the farewell")

	guess(g, "Y")
	assert.Contains(t, g.Snapshot().Farewell, "CSS")
}

func TestRestartOnlyWhenOver(t *testing.T) {
	g := newTestGame(t, "go")

	guess(g, "G")
	res := g.Step(restartFrame())
	assert.False(t, res.Accepted)
	assert.Equal(t, "G", g.Snapshot().Guessed)

	guess(g, "O")
	res = g.Step(restartFrame())
	assert.True(t, res.Accepted)
	assert.False(t, res.State.GameOver)

	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, 2, g.Round())
	assert.Empty(t, snap.Guessed)
	assert.Equal(t, StatePlaying, snap.State)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	_, _, ok := screen.FindText("Round 2")
	assert.True(t, ok, "title should show the round once past the first")
}

func TestTooSmallIgnoresInput(t *testing.T) {
	g := newTestGame(t, "go")

	g.Resize(30, 10)
	assert.True(t, g.State().TooSmall)
	assert.False(t, g.Step(core.GuessFrame('G')).Accepted)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	_, _, ok := screen.FindText("Window too small")
	assert.True(t, ok)

	g.Resize(80, 24)
	assert.True(t, g.Step(core.GuessFrame('G')).Accepted)
}

func TestHardPresetLives(t *testing.T) {
	g := New(config.DifficultyHard)
	g.Reset(testRuntime)
	assert.Equal(t, 6, g.Engine().MaxWrongGuesses())
	assert.GreaterOrEqual(t, len(g.Engine().TargetWord()), 7)
}

func TestStatusLine(t *testing.T) {
	g := newTestGame(t, "go")
	assert.Equal(t, "You have 8 attempts left.", g.StatusLine())
	assert.Equal(t, "Current word: blank. blank.", g.WordLine())

	guess(g, "G")
	assert.Equal(t, "Correct! The letter G is in the word. You have 8 attempts left.", g.StatusLine())
	assert.Equal(t, "Current word: G. blank.", g.WordLine())

	guess(g, "ABCDEF")
	assert.Equal(t, "Sorry, the letter F is not in the word. You have 2 attempts left.", g.StatusLine())

	guess(g, "H")
	assert.Equal(t, "Sorry, the letter H is not in the word. You have 1 attempt left.", g.StatusLine())
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, "go")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	_, _, ok := screen.FindText("Assembly: Endgame")
	assert.True(t, ok, "title")
	_, _, ok = screen.FindText("under 8 attempts")
	assert.True(t, ok, "subtitle")
	_, _, ok = screen.FindText(" _   _ ")
	assert.True(t, ok, "hidden word tiles")

	hx, hy, ok := screen.FindText(" HTML ")
	require.True(t, ok)
	assert.False(t, screen.GetCell(hx+1, hy).Style.Strike)
	assert.Equal(t, core.Color("#E2680F"), screen.GetCell(hx+1, hy).Style.Bg)

	guess(g, "X")
	g.Render(screen)
	assert.True(t, screen.GetCell(hx+1, hy).Style.Strike, "HTML is lost")
	_, _, ok = screen.FindText("Farewell, HTML")
	assert.True(t, ok)

	kx, ky, ok := screen.FindText(" X ")
	require.True(t, ok)
	assert.Equal(t, colorWrong, screen.GetCell(kx+1, ky).Style.Bg)
}

func TestRenderOutcome(t *testing.T) {
	g := newTestGame(t, "go")
	screen := core.NewScreen(80, 24)

	guess(g, "GO")
	g.Render(screen)
	_, _, ok := screen.FindText("You win!")
	assert.True(t, ok)
	_, _, ok = screen.FindText("New Game")
	assert.True(t, ok)

	g.Step(restartFrame())
	guess(g, "ABCDEFHI")
	g.Render(screen)
	_, _, ok = screen.FindText("Better start learning Assembly")
	assert.True(t, ok)

	// Missed letters of the target are revealed in red.
	x, y, ok := screen.FindText(" G   O ")
	require.True(t, ok)
	assert.Equal(t, colorWrong, screen.GetCell(x+1, y).Style.Fg)
}

func TestRenderMinimumSize(t *testing.T) {
	cfg := config.Default()
	cfg.Words = []string{"typescripter"}
	g := &Game{preset: config.DifficultyNormal, cfg: cfg}
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: MinWidth, ScreenH: MinHeight})

	screen := core.NewScreen(MinWidth, MinHeight)
	g.Render(screen)

	_, _, ok := screen.FindText(" T   Y ")
	assert.False(t, ok, "nothing is revealed yet")
	_, _, ok = screen.FindText(" Assembly ")
	assert.True(t, ok, "all labels fit")
	_, _, ok = screen.FindText("Type a letter to guess")
	assert.True(t, ok)
}

func TestSetConfig(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, SetConfig(config.Default())) })

	bad := config.Default()
	bad.Labels = nil
	assert.ErrorIs(t, SetConfig(bad), words.ErrNoLabels)

	custom := config.Default()
	custom.Words = []string{"gopher"}
	require.NoError(t, SetConfig(custom))

	g := New(config.DifficultyNormal)
	g.Reset(testRuntime)
	assert.Equal(t, "GOPHER", g.Engine().TargetWord())
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"", 10, nil},
		{"one two three", 7, []string{"one two", "three"}},
		{"one two three", 80, []string{"one two three"}},
		{"extraordinary word", 5, []string{"extraordinary", "word"}},
		{"anything", 0, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wrapText(tt.in, tt.width), "wrapText(%q, %d)", tt.in, tt.width)
	}
}
