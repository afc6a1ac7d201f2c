package core

// Action is what a key press means to the game once the keymap has
// resolved it.
type Action int

const (
	ActionNone    Action = iota
	ActionGuess          // letter in InputFrame.Letter
	ActionBack           // leave the round
	ActionRestart        // new round, only honoured once over
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionGuess:
		return "Guess"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one Step call.
type InputFrame struct {
	Actions map[Action]bool
	Letter  rune
}

// NewInputFrame returns a frame with no actions.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// GuessFrame returns a frame guessing letter.
func GuessFrame(letter rune) InputFrame {
	f := NewInputFrame()
	f.SetGuess(letter)
	return f
}

// Set records a.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SetGuess marks ActionGuess and records the guessed letter.
func (f *InputFrame) SetGuess(letter rune) {
	f.Set(ActionGuess)
	f.Letter = letter
}

// Has reports whether a was recorded. A nil map reads as empty.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear empties the frame so it can be reused.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Letter = 0
}
