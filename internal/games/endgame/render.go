package endgame

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-endgame/internal/core"
)

// Palette
const (
	colorText       core.Color = "#F9F4DA"
	colorDark       core.Color = "#1E1E1E"
	colorMuted      core.Color = "#8E8E8E"
	colorTile       core.Color = "#323232"
	colorKey        core.Color = "#FCBA29"
	colorCorrect    core.Color = "#10A95B"
	colorWrong      core.Color = "#EC5D49"
	colorFarewell   core.Color = "#7A5EA7"
	colorLostBanner core.Color = "#BA2A2A"
)

const (
	panelHeight = 4
	panelMaxW   = 56
	keysPerRow  = 10
	tileWidth   = 3 // " X "
	tileGap     = 1
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", MinWidth, MinHeight))
		return
	}
	if g.engine == nil {
		return
	}

	y := core.Max(0, (dst.Height()-MinHeight)/2)

	y = g.renderHeader(dst, y)
	y++
	g.renderPanel(dst, y)
	y += panelHeight + 1
	y = g.renderLabels(dst, y)
	y++
	g.renderWord(dst, y)
	y += 2
	y = g.renderKeyboard(dst, y)
	g.renderPrompt(dst, y)
	y += 2
	g.renderStatus(dst, y)
}

// renderHeader draws the title and the wrapped subtitle, returning the
// next free row.
func (g *Game) renderHeader(dst *core.Screen, y int) int {
	title := g.Title()
	if g.Round() > 1 {
		title = fmt.Sprintf("%s  ·  Round %d", title, g.Round())
	}
	dst.DrawStyledTextCentered(y, title, core.Style{Fg: colorText, Bold: true})
	y++

	sub := fmt.Sprintf("Guess the word in under %d attempts to keep the programming world safe from %s!",
		g.engine.MaxWrongGuesses(), g.lastLabelName())
	for i, line := range wrapText(sub, core.Min(dst.Width()-4, panelMaxW)) {
		if i == 2 {
			break
		}
		dst.DrawStyledTextCentered(y+i, line, core.Style{Fg: colorMuted})
	}
	return y + 2
}

// renderPanel draws the game status banner: win, loss or the farewell to
// the language just lost. Nothing is drawn mid-round otherwise.
func (g *Game) renderPanel(dst *core.Screen, y int) {
	e := g.engine

	var heading, message string
	var style core.Style
	switch {
	case e.IsWon():
		heading, message = "You win!", "Well done!"
		style = core.Style{Fg: colorText, Bg: colorCorrect}
	case e.IsLost():
		heading = "Game over!"
		message = fmt.Sprintf("You lose! Better start learning %s", g.lastLabelName())
		style = core.Style{Fg: colorText, Bg: colorLostBanner}
	default:
		text, ok := e.FarewellText()
		if !ok {
			return
		}
		heading = text
		style = core.Style{Fg: colorText, Bg: colorFarewell}
	}

	r := core.CenterRect(dst.Width(), 0, core.Clamp(dst.Width()-4, 0, panelMaxW), panelHeight)
	r.Y = y
	x, w := r.X, r.W
	dst.FillRect(r, core.Cell{Rune: ' ', Style: style})

	bold := style
	bold.Bold = true
	if message == "" {
		drawCenteredIn(dst, x, w, y+panelHeight/2-1, heading, bold)
		return
	}
	drawCenteredIn(dst, x, w, y+1, heading, bold)
	drawCenteredIn(dst, x, w, y+2, message, style)
}

// renderLabels lays the severity labels out as chips, wrapping to as many
// rows as needed. Lost labels are struck through and greyed out.
func (g *Game) renderLabels(dst *core.Screen, y int) int {
	labels := g.engine.Labels()
	maxW := dst.Width() - 2

	type chip struct {
		text  string
		style core.Style
	}
	var rows [][]chip
	var row []chip
	rowW := 0
	for i, l := range labels {
		c := chip{text: " " + l.Name + " "}
		if g.engine.IsLabelLost(i) {
			c.style = core.Style{Fg: colorMuted, Bg: colorTile, Strike: true}
		} else {
			c.style = core.Style{Fg: core.Color(l.Color), Bg: core.Color(l.BackgroundColor), Bold: true}
		}

		w := utf8.RuneCountInString(c.text)
		if len(row) > 0 && rowW+1+w > maxW {
			rows = append(rows, row)
			row, rowW = nil, 0
		}
		if len(row) > 0 {
			rowW++
		}
		row = append(row, c)
		rowW += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	for _, r := range rows {
		total := len(r) - 1
		for _, c := range r {
			total += utf8.RuneCountInString(c.text)
		}
		x := (dst.Width() - total) / 2
		for _, c := range r {
			dst.DrawStyledText(x, y, c.text, c.style)
			x += utf8.RuneCountInString(c.text) + 1
		}
		y++
	}
	return y
}

// renderWord draws one tile per letter of the target. Hidden letters show
// as an underscore; on loss the letters the player never found are red.
func (g *Game) renderWord(dst *core.Screen, y int) {
	e := g.engine
	revealed := e.RevealedWord()

	total := len(revealed)*(tileWidth+tileGap) - tileGap
	x := (dst.Width() - total) / 2
	for _, r := range revealed {
		style := core.Style{Fg: colorText, Bg: colorTile, Bold: true}
		ch := r
		switch {
		case r == 0:
			ch = '_'
			style.Fg = colorMuted
			style.Bold = false
		case e.IsUnguessedOnLoss(r):
			style.Fg = colorWrong
		}
		dst.DrawStyledText(x, y, " "+string(ch)+" ", style)
		x += tileWidth + tileGap
	}
}

// renderKeyboard draws the A-Z keys coloured by guess outcome and returns
// the next free row. Keys dim once the round is over.
func (g *Game) renderKeyboard(dst *core.Screen, y int) int {
	e := g.engine
	rowW := keysPerRow*(tileWidth+tileGap) - tileGap
	x0 := (dst.Width() - rowW) / 2

	for i := 0; i < 26; i++ {
		letter := rune('A' + i)
		if i > 0 && i%keysPerRow == 0 {
			y++
		}
		x := x0 + (i%keysPerRow)*(tileWidth+tileGap)

		var style core.Style
		switch {
		case e.IsLetterCorrect(letter):
			style = core.Style{Fg: colorDark, Bg: colorCorrect, Bold: true}
		case e.IsLetterWrong(letter):
			style = core.Style{Fg: colorText, Bg: colorWrong}
		case e.IsOver():
			style = core.Style{Fg: colorMuted, Bg: colorTile}
		default:
			style = core.Style{Fg: colorDark, Bg: colorKey, Bold: true}
		}
		dst.DrawStyledText(x, y, " "+string(letter)+" ", style)
	}
	return y + 2
}

// renderPrompt tells the player what to do next.
func (g *Game) renderPrompt(dst *core.Screen, y int) {
	if g.engine.IsOver() {
		dst.DrawStyledTextCentered(y, "[ New Game ]  press Enter", core.Style{Fg: colorKey, Bold: true})
		return
	}
	dst.DrawStyledTextCentered(y, "Type a letter to guess", core.Style{Fg: colorMuted})
}

// renderStatus fills the remaining rows with the accessible status text.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	width := dst.Width() - 4
	lines := wrapText(g.StatusLine(), width)
	lines = append(lines, wrapText(g.WordLine(), width)...)
	for _, line := range lines {
		if y >= dst.Height() {
			return
		}
		dst.DrawStyledTextCentered(y, line, core.Style{Fg: colorMuted})
		y++
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	r := core.CenterRect(dst.Width(), dst.Height(), boxW, 4)

	dst.FillRect(r, core.Cell{Rune: ' '})
	dst.DrawStyledBox(r, core.Style{Fg: colorMuted})
	dst.DrawStyledTextCentered(r.Y+1, line1, core.Style{Fg: colorWrong, Bold: true})
	dst.DrawStyledTextCentered(r.Y+2, line2, core.Style{Fg: colorText})
}

func (g *Game) lastLabelName() string {
	labels := g.engine.Labels()
	return labels[len(labels)-1].Name
}

func drawCenteredIn(dst *core.Screen, x, w, y int, text string, style core.Style) {
	n := utf8.RuneCountInString(text)
	dst.DrawStyledText(x+core.Max(0, (w-n)/2), y, text, style)
}

// wrapText breaks s into lines of at most width runes on word boundaries.
// Words longer than width are kept whole.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur strings.Builder
	curLen := 0
	for _, word := range strings.Fields(s) {
		n := utf8.RuneCountInString(word)
		if curLen > 0 && curLen+1+n > width {
			lines = append(lines, cur.String())
			cur.Reset()
			curLen = 0
		}
		if curLen > 0 {
			cur.WriteByte(' ')
			curLen++
		}
		cur.WriteString(word)
		curLen += n
	}
	if curLen > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
