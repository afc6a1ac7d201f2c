package core

// Color is a terminal colour understood by the renderer: either an ANSI
// palette index ("1", "208") or a hex value ("#E2680F"). The empty Color
// means the terminal default.
type Color string

// Colours shared by every screen. Game palettes use hex values.
const (
	ColorDefault Color = ""
	ColorRed     Color = "1"
)

// Style describes how a single screen cell is drawn.
// Style is comparable so renderers can cache per-style output.
type Style struct {
	Fg     Color
	Bg     Color
	Bold   bool
	Strike bool
}

// IsZero reports whether the style is the terminal default.
func (s Style) IsZero() bool {
	return s == Style{}
}
