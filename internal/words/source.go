// Package words holds the immutable reference data a round is played with:
// the catalog of candidate target words and the ordered catalog of severity
// labels whose length bounds the number of wrong guesses.
package words

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// NamePlaceholder is replaced by a label name in farewell phrase templates.
const NamePlaceholder = "{name}"

// Configuration errors returned by New.
var (
	ErrNoWords       = errors.New("words: word catalog is empty")
	ErrNoLabels      = errors.New("words: label catalog is empty")
	ErrInvalidWord   = errors.New("words: invalid word")
	ErrInvalidLabel  = errors.New("words: invalid label")
	ErrInvalidLives  = errors.New("words: invalid lives")
	ErrInvalidPhrase = errors.New("words: invalid farewell phrase")
)

// DefaultFarewell is used when a catalog carries no farewell phrases.
const DefaultFarewell = "Farewell, " + NamePlaceholder

// SeverityLabel is one ranked entry of the label catalog. Its index in the
// catalog is its severity rank. Colors are passed through to the renderer
// untouched.
type SeverityLabel struct {
	Name            string
	Color           string
	BackgroundColor string
}

// Catalog is the static configuration a Source is built from.
type Catalog struct {
	Words  []string
	Labels []SeverityLabel

	// Lives overrides the maximum wrong-guess count. Zero means
	// len(Labels)-1. When set it must lie in [1, len(Labels)-1] so that
	// every wrong guess still has a label to bid farewell to.
	Lives int

	// Farewells are phrase templates containing NamePlaceholder.
	Farewells []string
}

// Source supplies target words and label metadata.
// It has no mutable state beyond its random number generator.
type Source struct {
	words     []string
	labels    []SeverityLabel
	lives     int
	farewells []string
	rng       *rand.Rand
}

// New validates the catalog and builds a Source. Words are normalised to
// upper case and de-duplicated. A nil rng is replaced by a time-seeded one.
func New(c Catalog, rng *rand.Rand) (*Source, error) {
	if len(c.Words) == 0 {
		return nil, ErrNoWords
	}
	if len(c.Labels) == 0 {
		return nil, ErrNoLabels
	}

	seen := make(map[string]bool, len(c.Words))
	normalized := make([]string, 0, len(c.Words))
	for _, w := range c.Words {
		word := strings.ToUpper(strings.TrimSpace(w))
		if !IsWord(word) {
			return nil, fmt.Errorf("%w: %q must contain only letters A-Z", ErrInvalidWord, w)
		}
		if seen[word] {
			continue
		}
		seen[word] = true
		normalized = append(normalized, word)
	}

	labels := make([]SeverityLabel, len(c.Labels))
	for i, l := range c.Labels {
		if strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("%w: label %d has no name", ErrInvalidLabel, i)
		}
		labels[i] = l
	}

	maxLives := len(labels) - 1
	lives := maxLives
	if c.Lives != 0 {
		if c.Lives < 1 || c.Lives > maxLives {
			return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLives, c.Lives, maxLives)
		}
		lives = c.Lives
	}

	farewells := make([]string, 0, len(c.Farewells))
	for _, f := range c.Farewells {
		if !strings.Contains(f, NamePlaceholder) {
			return nil, fmt.Errorf("%w: %q lacks %s", ErrInvalidPhrase, f, NamePlaceholder)
		}
		farewells = append(farewells, f)
	}
	if len(farewells) == 0 {
		farewells = append(farewells, DefaultFarewell)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Source{
		words:     normalized,
		labels:    labels,
		lives:     lives,
		farewells: farewells,
		rng:       rng,
	}, nil
}

// IsWord reports whether s is a non-empty string of upper-case letters A-Z.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// PickRandomWord returns a word drawn uniformly at random from the catalog.
// Every call is an independent draw.
func (s *Source) PickRandomWord() string {
	return s.words[s.rng.Intn(len(s.words))]
}

// MaxWrongGuesses returns how many wrong guesses end a round.
func (s *Source) MaxWrongGuesses() int {
	return s.lives
}

// SeverityLabelAt returns the label at the given rank.
// An out-of-range rank is a programming error and panics.
func (s *Source) SeverityLabelAt(rank int) SeverityLabel {
	if rank < 0 || rank >= len(s.labels) {
		panic(fmt.Sprintf("words: severity rank %d out of range [0, %d]", rank, len(s.labels)-1))
	}
	return s.labels[rank]
}

// Farewell renders the farewell phrase for the label at rank. Phrases are
// picked by rank so the same rank always yields the same text.
func (s *Source) Farewell(rank int) string {
	label := s.SeverityLabelAt(rank)
	tmpl := s.farewells[rank%len(s.farewells)]
	return strings.ReplaceAll(tmpl, NamePlaceholder, label.Name)
}

// Labels returns a copy of the label catalog in rank order.
func (s *Source) Labels() []SeverityLabel {
	out := make([]SeverityLabel, len(s.labels))
	copy(out, s.labels)
	return out
}

// Words returns a copy of the normalised word catalog.
func (s *Source) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}
