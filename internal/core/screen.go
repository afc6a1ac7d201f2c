package core

import (
	"strings"
	"unicode/utf8"
)

// Cell is one character position on the board.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' '}

// Screen is the cell buffer the game draws into. The TUI layer turns it
// into terminal output, so game code never deals with escape sequences.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen returns a blank width by height buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Resize reallocates the buffer, keeping the overlapping top-left region.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}

	old := s.cells
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
		if y < len(old) {
			copy(s.cells[y], old[y][:Min(len(old[y]), width)])
		}
	}
	s.width, s.height = width, height
}

// Clear resets every cell to an unstyled space.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell writes c at x, y. Writes outside the buffer are dropped.
func (s *Screen) SetCell(x, y int, c Cell) {
	if s.inBounds(x, y) {
		s.cells[y][x] = c
	}
}

// GetCell returns the cell at x, y, or a blank outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y][x]
}

// DrawStyledText writes text left to right from x, y, clipping at the edges.
func (s *Screen) DrawStyledText(x, y int, text string, style Style) {
	for _, r := range text {
		s.SetCell(x, y, Cell{Rune: r, Style: style})
		x++
	}
}

// DrawStyledTextCentered writes text centred on row y.
func (s *Screen) DrawStyledTextCentered(y int, text string, style Style) {
	s.DrawStyledText((s.width-utf8.RuneCountInString(text))/2, y, text, style)
}

// FillRect paints every cell of r with c.
func (s *Screen) FillRect(r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, c)
		}
	}
}

// DrawStyledBox outlines r with box-drawing characters.
func (s *Screen) DrawStyledBox(r Rect, style Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	set := func(x, y int, ch rune) {
		s.SetCell(x, y, Cell{Rune: ch, Style: style})
	}

	for x := r.X + 1; x < r.Right()-1; x++ {
		set(x, r.Y, '─')
		set(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		set(r.X, y, '│')
		set(r.Right()-1, y, '│')
	}
	set(r.X, r.Y, '┌')
	set(r.Right()-1, r.Y, '┐')
	set(r.X, r.Bottom()-1, '└')
	set(r.Right()-1, r.Bottom()-1, '┘')
}

// Row returns row y as plain text. Rows outside the buffer are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String is the whole buffer as plain text, one line per row.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// FindText reports the cell position of the first occurrence of text,
// scanning rows top to bottom.
func (s *Screen) FindText(text string) (x, y int, ok bool) {
	for y := 0; y < s.height; y++ {
		row := s.Row(y)
		if idx := strings.Index(row, text); idx >= 0 {
			return utf8.RuneCountInString(row[:idx]), y, true
		}
	}
	return 0, 0, false
}
