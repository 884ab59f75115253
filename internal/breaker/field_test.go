package breaker

import (
	"testing"

	"github.com/Adriancoding96/terminal-website/internal/config"
)

func TestFieldLayoutFillsRows(t *testing.T) {
	cfg := config.Default().Bricks
	f := NewBrickField(cfg, 64)

	// interior 62 cells, stride 7: nine 6-wide bricks per row
	perRow := 9
	want := perRow * cfg.Rows
	if got := f.Remaining(); got != want {
		t.Errorf("Remaining() = %d, want %d", got, want)
	}

	rows := map[int]int{}
	for _, b := range f.Bricks() {
		rows[b.Y]++
	}
	for y := cfg.Top; y < cfg.Top+cfg.Rows; y++ {
		if rows[y] != perRow {
			t.Errorf("row %d has %d bricks, want %d", y, rows[y], perRow)
		}
	}
}

func TestFieldLayoutStaysInBounds(t *testing.T) {
	cfg := config.Default().Bricks

	for _, width := range []int{20, 31, 47, 64, 80} {
		f := NewBrickField(cfg, width)
		for _, b := range f.Bricks() {
			if b.X < 1 || b.X+b.W > width-1 {
				t.Errorf("width %d: brick at x=%d w=%d crosses the border", width, b.X, b.W)
			}
		}
	}
}

func TestFieldLayoutNoOverlap(t *testing.T) {
	cfg := config.Default().Bricks
	f := NewBrickField(cfg, 64)

	bricks := f.Bricks()
	for i := range bricks {
		for j := i + 1; j < len(bricks); j++ {
			if bricks[i].Bounds().Intersects(bricks[j].Bounds()) {
				t.Fatalf("bricks %d and %d overlap: %+v, %+v", i, j, bricks[i], bricks[j])
			}
		}
	}
}

func TestFieldBrickBounds(t *testing.T) {
	cfg := config.Default().Bricks
	f := NewBrickField(cfg, 64)

	b := f.Bricks()[0]
	r := b.Bounds()
	if !r.Contains(b.X, b.Y) || !r.Contains(b.X+b.W-1, b.Y) {
		t.Errorf("Bounds() = %+v must cover both ends of brick %+v", r, b)
	}
	if r.Contains(b.X+b.W, b.Y) || r.Contains(b.X, b.Y+1) {
		t.Errorf("Bounds() = %+v leaks past brick %+v", r, b)
	}
}

func TestFieldTestHit(t *testing.T) {
	cfg := config.Default().Bricks
	f := NewBrickField(cfg, 64)
	total := f.Remaining()

	b := f.Bricks()[0]
	if !f.TestHit(b.X, b.Y) {
		t.Fatalf("TestHit(%d, %d) on an alive brick returned false", b.X, b.Y)
	}
	if f.Remaining() != total-1 {
		t.Errorf("Remaining() = %d after one hit, want %d", f.Remaining(), total-1)
	}

	// Same cell again: the brick is dead
	if f.TestHit(b.X, b.Y) {
		t.Error("TestHit on a dead brick returned true")
	}

	// Every cell of a brick kills it, not just the first
	b2 := f.Bricks()[1]
	if !f.TestHit(b2.X+b2.W-1, b2.Y) {
		t.Error("TestHit on the last cell of a brick returned false")
	}
}

func TestFieldTestHitGapAndOutside(t *testing.T) {
	cfg := config.Default().Bricks
	f := NewBrickField(cfg, 64)

	// The cell just past a brick's right edge is a gap
	b := f.Bricks()[0]
	if f.TestHit(b.X+b.W, b.Y) {
		t.Error("TestHit in the gap between bricks returned true")
	}
	if f.TestHit(b.X, b.Y-1) {
		t.Error("TestHit above the wave returned true")
	}
	if f.Remaining() != len(f.Bricks()) {
		t.Error("missed hits must not kill bricks")
	}
}

func TestFieldRegenerate(t *testing.T) {
	cfg := config.Default().Bricks
	f := NewBrickField(cfg, 64)

	before := make([]Brick, len(f.Bricks()))
	copy(before, f.Bricks())

	for _, b := range before {
		f.TestHit(b.X, b.Y)
	}
	if f.Remaining() != 0 {
		t.Fatalf("Remaining() = %d after killing every brick, want 0", f.Remaining())
	}

	f.Regenerate()
	if f.Remaining() != len(before) {
		t.Errorf("Remaining() = %d after Regenerate, want %d", f.Remaining(), len(before))
	}

	// Identical layout: same cells in the same order
	for i, b := range f.Bricks() {
		if b.X != before[i].X || b.Y != before[i].Y || b.W != before[i].W {
			t.Errorf("brick %d moved: %+v, want %+v", i, b, before[i])
		}
	}
}

func TestFieldInRowRange(t *testing.T) {
	cfg := config.Default().Bricks
	f := NewBrickField(cfg, 64)

	if f.InRowRange(cfg.Top - 1) {
		t.Error("row above the wave reported in range")
	}
	if !f.InRowRange(cfg.Top) {
		t.Error("first brick row reported out of range")
	}
	if !f.InRowRange(cfg.Top + cfg.Rows - 1) {
		t.Error("last brick row reported out of range")
	}
	if f.InRowRange(cfg.Top + cfg.Rows) {
		t.Error("row below the wave reported in range")
	}
}
