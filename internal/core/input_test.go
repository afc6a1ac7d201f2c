package core

import "testing"

func TestInputFrameGuess(t *testing.T) {
	f := GuessFrame('q')

	if !f.Has(ActionGuess) {
		t.Fatal("GuessFrame should set ActionGuess")
	}
	if f.Letter != 'q' {
		t.Errorf("Letter = %q, expected 'q'", f.Letter)
	}

	f.Clear()

	if f.Has(ActionGuess) || f.Letter != 0 {
		t.Error("Clear should drop actions and the letter")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRestart) {
		t.Error("Zero frame should have no actions")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestActionString(t *testing.T) {
	if ActionGuess.String() != "Guess" {
		t.Errorf("ActionGuess.String() = %q", ActionGuess.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Unknown action should stringify as Unknown")
	}
}
