package breaker

import (
	"fmt"

	"github.com/Adriancoding96/terminal-website/internal/core"
	"github.com/Adriancoding96/terminal-website/internal/scores"
)

// Visual characters for rendering
const (
	paddleChar = '='
	ballChar   = '●'
	trailChar  = '·'
)

// panelWidth is the fixed width of the scoreboard panel to the right of
// the playfield.
const panelWidth = 22

// nameColWidth is the name column inside a panel entry row.
const nameColWidth = 12

// Brick glyphs and colors by row (cycling through)
var (
	brickGlyphs = []rune{'█', '▓', '▒', '░'}
	brickColors = []core.Color{core.ColorRed, core.ColorYellow, core.ColorGreen, core.ColorCyan}
)

// render composes the full frame and pushes it to the surface, skipping
// the push when nothing changed since the previous frame.
func (e *Engine) render() {
	s := e.screen
	s.Clear()

	e.drawPlayfield(s)
	e.drawPanel(s)

	frame := s.String()
	if frame == e.prevFrame {
		return
	}
	e.prevFrame = frame
	e.host.Surface.Present(frame)
}

// drawPlayfield draws the bordered field, the live bricks, the paddle,
// the ball with its one-frame trail, and any prompt overlay.
func (e *Engine) drawPlayfield(s *core.Screen) {
	fw := e.cfg.Field.Width
	fh := e.cfg.Field.Height

	s.DrawBox(core.NewRect(0, 0, fw, fh))

	for _, b := range e.field.Bricks() {
		if !b.Alive {
			continue
		}
		row := b.Y - e.field.Top()
		glyph := brickGlyphs[row%len(brickGlyphs)]
		color := brickColors[row%len(brickColors)]
		for dx := 0; dx < b.W; dx++ {
			s.SetCell(b.X+dx, b.Y, core.Cell{Rune: glyph, Color: color})
		}
	}

	px := int(e.paddle.X)
	for i := 0; i < e.paddle.Width; i++ {
		s.SetCell(px+i, e.paddle.Y, core.Cell{Rune: paddleChar, Color: core.ColorCyan})
	}

	col, row := e.ball.Cell()
	if (col != e.trailCol || row != e.trailRow) && e.inField(e.trailCol, e.trailRow) {
		s.SetCell(e.trailCol, e.trailRow, core.Cell{Rune: trailChar, Color: core.ColorGray})
	}
	if e.inField(col, row) {
		s.SetCell(col, row, core.Cell{Rune: ballChar, Color: core.ColorBrightWhite})
	}
	e.trailCol, e.trailRow = col, row

	switch e.state {
	case StateGameOverPrompt:
		e.drawPromptBox(s, "GAME OVER",
			fmt.Sprintf("score: %d", e.score),
			"save score? y/n")
	case StateNameEntry:
		e.drawPromptBox(s, "NEW HIGH SCORE",
			fmt.Sprintf("name: %s_", string(e.nameBuf)),
			"enter to save")
	}
}

// inField reports whether a cell lies inside the playfield interior.
func (e *Engine) inField(col, row int) bool {
	return col >= 1 && col <= e.cfg.Field.Width-2 &&
		row >= 1 && row <= e.cfg.Field.Height-2
}

// drawPromptBox draws a bordered message box centered in the playfield.
func (e *Engine) drawPromptBox(s *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4

	boxX := (e.cfg.Field.Width - boxW) / 2
	boxY := (e.cfg.Field.Height - boxH) / 2

	s.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	s.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	s.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, l := range lines {
		s.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}

// drawPanel draws the scoreboard panel: the persisted top entries and
// the score of the round in progress.
func (e *Engine) drawPanel(s *core.Screen) {
	x0 := e.cfg.Field.Width + 1

	s.DrawTextColored(x0, 1, "HIGH SCORES", core.ColorBrightYellow)
	s.DrawHLine(x0, 2, panelWidth, '─')

	y := 3
	for i, en := range e.topEntries() {
		name := en.Name
		if len(name) > nameColWidth {
			name = name[:nameColWidth]
		}
		s.DrawText(x0, y+i, fmt.Sprintf("%2d. %-*s %5d", i+1, nameColWidth, name, en.Score))
	}

	scoreY := 3 + e.cfg.Scores.Display + 1
	s.DrawTextColored(x0, scoreY, fmt.Sprintf("SCORE %16d", e.score), core.ColorBrightGreen)

	s.DrawText(x0, e.cfg.Field.Height-3, "a/d or arrows: move")
	s.DrawText(x0, e.cfg.Field.Height-2, "esc: quit")
}

// topEntries returns the persisted leaderboard slice for the panel. A
// nil store shows an empty board.
func (e *Engine) topEntries() []scores.Entry {
	if e.store == nil {
		return nil
	}
	return e.store.Top(e.cfg.Scores.Display)
}
