// Package breaker implements the brick-breaking simulation embedded in
// the terminal site: fixed-timestep physics, the play/game-over/name-entry
// state machine, high score bookkeeping, and text frame rendering.
package breaker

import (
	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/core"
)

// Brick is a single destructible segment of the wave.
type Brick struct {
	X, Y  int // top-left cell
	W     int // width in cells
	Alive bool
}

// Bounds returns the one-row span of cells the brick covers.
func (b Brick) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, 1)
}

// BrickField lays out the brick wave inside the playfield and tracks
// which bricks are still alive. The layout is a pure function of the
// field geometry, so every regenerated wave is identical.
type BrickField struct {
	bricks []Brick
	top    int // first brick row
	bottom int // last brick row
}

// NewBrickField computes the wave layout for a playfield of the given
// total width (borders included) and marks every brick alive.
func NewBrickField(cfg config.BrickConfig, fieldWidth int) *BrickField {
	interior := fieldWidth - 2
	stride := cfg.Width + cfg.Gap

	cols := 0
	if stride > 0 {
		cols = (interior + cfg.Gap) / stride
	}
	if cols < 1 {
		cols = 1
	}

	used := cols*cfg.Width + (cols-1)*cfg.Gap
	pad := (interior - used) / 2
	if pad < 0 {
		pad = 0
	}

	f := &BrickField{
		bricks: make([]Brick, 0, cols*cfg.Rows),
		top:    cfg.Top,
		bottom: cfg.Top + cfg.Rows - 1,
	}
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cols; col++ {
			f.bricks = append(f.bricks, Brick{
				X:     1 + pad + col*stride,
				Y:     cfg.Top + row,
				W:     cfg.Width,
				Alive: true,
			})
		}
	}
	return f
}

// Regenerate revives every brick. The layout never changes.
func (f *BrickField) Regenerate() {
	for i := range f.bricks {
		f.bricks[i].Alive = true
	}
}

// TestHit kills the alive brick covering the given cell, if any, and
// reports whether one was hit.
func (f *BrickField) TestHit(col, row int) bool {
	for i := range f.bricks {
		b := &f.bricks[i]
		if b.Alive && b.Bounds().Contains(col, row) {
			b.Alive = false
			return true
		}
	}
	return false
}

// Remaining returns the number of alive bricks.
func (f *BrickField) Remaining() int {
	n := 0
	for i := range f.bricks {
		if f.bricks[i].Alive {
			n++
		}
	}
	return n
}

// InRowRange reports whether the given row lies within the brick rows.
func (f *BrickField) InRowRange(row int) bool {
	return row >= f.top && row <= f.bottom
}

// Top returns the first brick row.
func (f *BrickField) Top() int {
	return f.top
}

// Bricks exposes the wave for rendering. Callers must not mutate it.
func (f *BrickField) Bricks() []Brick {
	return f.bricks
}
