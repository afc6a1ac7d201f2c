package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-endgame/internal/core"
)

// GameKeyMap defines the key bindings shown in the game's help footer.
// Every letter is a guess, so none of the control keys are letters.
type GameKeyMap struct {
	Guess   key.Binding
	NewGame key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Guess, k.NewGame, k.Back, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Guess, k.NewGame},
		{k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game key bindings. backLabel is
// the help text for Esc ("menu" inside a session, "quit" otherwise).
func DefaultGameKeyMap(backLabel string) GameKeyMap {
	return GameKeyMap{
		Guess: key.NewBinding(
			key.WithKeys(letterKeys()...),
			key.WithHelp("a-z", "guess"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", backLabel),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func letterKeys() []string {
	keys := make([]string, 0, 52)
	for r := 'a'; r <= 'z'; r++ {
		keys = append(keys, string(r), string(unicode.ToUpper(r)))
	}
	return keys
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap("quit")}
}

// MapKey translates a key message to a game action.
// Single letter keys become ActionGuess carrying the letter.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, letter rune) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, 0
	case key.Matches(msg, km.keys.NewGame):
		return core.ActionRestart, 0
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
		return core.ActionGuess, msg.Runes[0]
	}
	return core.ActionNone, 0
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, letter := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionGuess:
		frame.SetGuess(letter)
	default:
		frame.Set(action)
	}
	return action == core.ActionQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionCatalog
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
// Letters are free in menus, so the arcade-style shortcuts apply here.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "c":
		return MenuActionCatalog
	}

	return MenuActionNone
}
