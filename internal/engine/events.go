package engine

// EventKind identifies which mutation produced an Event.
type EventKind int

const (
	EventGuess EventKind = iota // An accepted letter guess
	EventReset                  // A new round was started
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGuess:
		return "guess"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after every state mutation.
type Event struct {
	Kind   EventKind
	Letter rune  // Guessed letter, zero for EventReset
	State  State // Round state after the mutation
}

type listener struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called synchronously at the end of every
// accepted guess and every reset. Rejected guesses do not notify.
// The returned function removes the subscription.
func (e *Engine) Subscribe(fn func(Event)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify(ev Event) {
	// Copy so a listener may unsubscribe while being notified.
	ls := make([]listener, len(e.listeners))
	copy(ls, e.listeners)
	for _, l := range ls {
		l.fn(ev)
	}
}
