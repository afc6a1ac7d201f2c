package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeNotifiesOnMutation(t *testing.T) {
	e := newEngine(t, 9, "GO", "REACT")

	var events []Event
	e.Subscribe(func(ev Event) { events = append(events, ev) })

	e.SubmitGuess('G')
	e.SubmitGuess('G') // duplicate, no event
	e.SubmitGuess('7') // invalid, no event
	e.SubmitGuess('O')
	e.SubmitGuess('X') // after game over, no event
	e.Reset()

	require.Len(t, events, 3)
	assert.Equal(t, Event{Kind: EventGuess, Letter: 'G', State: StateInProgress}, events[0])
	assert.Equal(t, Event{Kind: EventGuess, Letter: 'O', State: StateWon}, events[1])
	assert.Equal(t, Event{Kind: EventReset, State: StateInProgress}, events[2])
}

func TestSubscriberSeesUpdatedState(t *testing.T) {
	e := newEngine(t, 9, "GO")

	var wrong []int
	e.Subscribe(func(Event) { wrong = append(wrong, e.WrongGuessCount()) })

	e.SubmitGuess('Q')
	e.SubmitGuess('G')
	e.SubmitGuess('W')

	assert.Equal(t, []int{1, 1, 2}, wrong)
}

func TestUnsubscribe(t *testing.T) {
	e := newEngine(t, 9, "GO")

	var a, b int
	unsubA := e.Subscribe(func(Event) { a++ })
	e.Subscribe(func(Event) { b++ })

	e.SubmitGuess('Q')
	unsubA()
	unsubA() // second call is a no-op
	e.SubmitGuess('W')

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	e := newEngine(t, 9, "GO")

	calls := 0
	var unsub func()
	unsub = e.Subscribe(func(Event) {
		calls++
		unsub()
	})

	e.SubmitGuess('Q')
	e.SubmitGuess('W')

	assert.Equal(t, 1, calls)
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "guess", EventGuess.String())
	assert.Equal(t, "reset", EventReset.String())
}
