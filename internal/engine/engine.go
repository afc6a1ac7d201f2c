// Package engine implements the round state machine of the word-guessing
// game. An Engine owns one session (target word plus the ordered guesses)
// and derives every other value on demand, so there is no cached state to
// fall out of sync.
//
// The engine is synchronous and not safe for concurrent use; the host
// serializes SubmitGuess and Reset calls.
package engine

import (
	"strings"
	"unicode"

	"github.com/vovakirdan/tui-endgame/internal/words"
)

// Blank is returned by RevealedLetter for a hidden position.
const Blank rune = 0

// WordSource supplies target words and severity labels to the engine.
// *words.Source is the production implementation.
type WordSource interface {
	PickRandomWord() string
	MaxWrongGuesses() int
	SeverityLabelAt(rank int) words.SeverityLabel
	Labels() []words.SeverityLabel
	Farewell(rank int) string
}

// State is the round state.
type State int

const (
	StateInProgress State = iota
	StateWon
	StateLost
)

// String returns the state tag.
func (s State) String() string {
	switch s {
	case StateInProgress:
		return "IN_PROGRESS"
	case StateWon:
		return "WON"
	case StateLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Engine runs rounds against a WordSource.
type Engine struct {
	source  WordSource
	target  string
	guessed []rune

	listeners []listener
	nextID    int
}

// New creates an engine and starts its first round.
func New(source WordSource) *Engine {
	e := &Engine{source: source}
	e.startRound()
	return e
}

func (e *Engine) startRound() {
	e.target = strings.ToUpper(e.source.PickRandomWord())
	e.guessed = e.guessed[:0]
}

// Reset discards the current round and starts a new one with a fresh word.
// It is legal in any state.
func (e *Engine) Reset() {
	e.startRound()
	e.notify(Event{Kind: EventReset, State: e.State()})
}

// SubmitGuess applies a letter guess. The letter is case-normalised.
// It returns false, leaving the session untouched, when the letter is not
// A-Z, was already guessed, or the round is over.
func (e *Engine) SubmitGuess(letter rune) bool {
	letter = unicode.ToUpper(letter)
	if letter < 'A' || letter > 'Z' {
		return false
	}
	if e.IsOver() || e.IsGuessed(letter) {
		return false
	}

	e.guessed = append(e.guessed, letter)
	e.notify(Event{Kind: EventGuess, Letter: letter, State: e.State()})
	return true
}

// TargetWord returns the word of the current round.
func (e *Engine) TargetWord() string {
	return e.target
}

// GuessedLetters returns a copy of the guesses in submission order.
func (e *Engine) GuessedLetters() []rune {
	out := make([]rune, len(e.guessed))
	copy(out, e.guessed)
	return out
}

// MaxWrongGuesses returns the number of wrong guesses that loses the round.
func (e *Engine) MaxWrongGuesses() int {
	return e.source.MaxWrongGuesses()
}

// Labels returns the severity label catalog for status rendering.
func (e *Engine) Labels() []words.SeverityLabel {
	return e.source.Labels()
}

// State returns the current round state.
func (e *Engine) State() State {
	switch {
	case e.IsWon():
		return StateWon
	case e.IsLost():
		return StateLost
	default:
		return StateInProgress
	}
}

// IsWon reports whether every letter of the target has been guessed.
func (e *Engine) IsWon() bool {
	for _, r := range e.target {
		if !e.IsGuessed(r) {
			return false
		}
	}
	return true
}

// IsLost reports whether the wrong guesses have used up every life.
func (e *Engine) IsLost() bool {
	return !e.IsWon() && e.WrongGuessCount() >= e.MaxWrongGuesses()
}

// IsOver reports whether the round has reached a terminal state.
func (e *Engine) IsOver() bool {
	return e.State() != StateInProgress
}

// IsGuessed reports whether letter has been submitted this round.
func (e *Engine) IsGuessed(letter rune) bool {
	letter = unicode.ToUpper(letter)
	for _, g := range e.guessed {
		if g == letter {
			return true
		}
	}
	return false
}

func (e *Engine) inTarget(letter rune) bool {
	return strings.ContainsRune(e.target, unicode.ToUpper(letter))
}

// IsLetterCorrect reports whether letter was guessed and is in the target.
func (e *Engine) IsLetterCorrect(letter rune) bool {
	return e.IsGuessed(letter) && e.inTarget(letter)
}

// IsLetterWrong reports whether letter was guessed and is not in the target.
func (e *Engine) IsLetterWrong(letter rune) bool {
	return e.IsGuessed(letter) && !e.inTarget(letter)
}

// WrongGuessCount returns how many guessed letters are absent from the target.
func (e *Engine) WrongGuessCount() int {
	n := 0
	for _, g := range e.guessed {
		if !e.inTarget(g) {
			n++
		}
	}
	return n
}

// AttemptsRemaining returns the wrong guesses still allowed, never below zero.
func (e *Engine) AttemptsRemaining() int {
	left := e.MaxWrongGuesses() - e.WrongGuessCount()
	if left < 0 {
		return 0
	}
	return left
}

// LastGuessedLetter returns the most recent guess, if any.
func (e *Engine) LastGuessedLetter() (rune, bool) {
	if len(e.guessed) == 0 {
		return 0, false
	}
	return e.guessed[len(e.guessed)-1], true
}

// IsLastGuessIncorrect reports whether the latest guess missed while the
// round is still running. This is when a farewell is shown.
func (e *Engine) IsLastGuessIncorrect() bool {
	last, ok := e.LastGuessedLetter()
	return ok && !e.inTarget(last) && !e.IsOver()
}

// RevealedLetter returns the target letter at pos when it has been guessed
// or the round is over, and Blank otherwise or when pos is out of range.
func (e *Engine) RevealedLetter(pos int) rune {
	if pos < 0 || pos >= len(e.target) {
		return Blank
	}
	r := rune(e.target[pos])
	if e.IsOver() || e.IsGuessed(r) {
		return r
	}
	return Blank
}

// RevealedWord returns RevealedLetter for every position of the target.
func (e *Engine) RevealedWord() []rune {
	out := make([]rune, len(e.target))
	for i := range out {
		out[i] = e.RevealedLetter(i)
	}
	return out
}

// IsUnguessedOnLoss reports whether the round was lost without letter ever
// being guessed. Renderers use it to flag the letters the player missed.
func (e *Engine) IsUnguessedOnLoss(letter rune) bool {
	return e.IsLost() && !e.IsGuessed(letter)
}

// IsLabelLost reports whether the label at rank has been consumed by a
// wrong guess.
func (e *Engine) IsLabelLost(rank int) bool {
	return rank < e.WrongGuessCount()
}

// FarewellText returns the farewell for the label consumed by the latest
// wrong guess. ok is false unless IsLastGuessIncorrect holds.
func (e *Engine) FarewellText() (text string, ok bool) {
	if !e.IsLastGuessIncorrect() {
		return "", false
	}
	return e.source.Farewell(e.WrongGuessCount() - 1), true
}
