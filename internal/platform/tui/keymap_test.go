package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-endgame/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantLetter rune
	}{
		{"lower letter", runeKey('a'), core.ActionGuess, 'a'},
		{"upper letter", runeKey('Q'), core.ActionGuess, 'Q'},
		{"q is a guess", runeKey('q'), core.ActionGuess, 'q'},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart, 0},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, 0},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{"digit", runeKey('7'), core.ActionNone, 0},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone, 0},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, core.ActionNone, 0},
		{"pasted text", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, core.ActionNone, 0},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, letter := km.MapKey(tt.msg)
			if action != tt.wantAction {
				t.Errorf("MapKey action = %v, want %v", action, tt.wantAction)
			}
			if letter != tt.wantLetter {
				t.Errorf("MapKey letter = %q, want %q", letter, tt.wantLetter)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	if km.MapKeyToFrame(runeKey('g'), &frame) {
		t.Fatal("letter should not quit")
	}
	if !frame.Has(core.ActionGuess) || frame.Letter != 'g' {
		t.Errorf("Expected guess of 'g', got %+v", frame)
	}

	frame.Clear()
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)
	if !frame.Has(core.ActionRestart) {
		t.Error("Expected enter to set ActionRestart")
	}

	frame.Clear()
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("Expected ctrl+c to request quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionCatalog},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap("menu")

	short := keys.ShortHelp()
	if len(short) != 4 {
		t.Fatalf("Expected 4 short help bindings, got %d", len(short))
	}
	for _, b := range short {
		if !b.Enabled() {
			t.Errorf("Binding %q should be enabled", b.Help().Key)
		}
	}
	if got := keys.Back.Help().Desc; got != "menu" {
		t.Errorf("Back help = %q, want %q", got, "menu")
	}
}
