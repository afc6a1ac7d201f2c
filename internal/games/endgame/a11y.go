package endgame

import (
	"fmt"
	"strings"
)

// StatusLine returns the plain-language sentence announced after a guess,
// followed by the remaining attempts.
func (g *Game) StatusLine() string {
	e := g.engine
	var b strings.Builder

	if last, ok := e.LastGuessedLetter(); ok {
		if e.IsLetterCorrect(last) {
			fmt.Fprintf(&b, "Correct! The letter %c is in the word. ", last)
		} else {
			fmt.Fprintf(&b, "Sorry, the letter %c is not in the word. ", last)
		}
	}

	left := e.AttemptsRemaining()
	if left == 1 {
		b.WriteString("You have 1 attempt left.")
	} else {
		fmt.Fprintf(&b, "You have %d attempts left.", left)
	}
	return b.String()
}

// WordLine spells out the word as guessed so far, one token per letter.
// Unguessed positions read as "blank" even after the round ends.
func (g *Game) WordLine() string {
	e := g.engine
	target := e.TargetWord()

	parts := make([]string, 0, len(target))
	for _, r := range target {
		if e.IsGuessed(r) {
			parts = append(parts, string(r)+".")
		} else {
			parts = append(parts, "blank.")
		}
	}
	return "Current word: " + strings.Join(parts, " ")
}
