package breaker

import (
	"testing"
	"time"
)

func TestNoStepBeforeFullSlice(t *testing.T) {
	r := newRig(t)
	startY := r.e.ball.Y

	r.advance(16 * time.Millisecond) // under one 1/60s slice

	if r.e.ball.Y != startY {
		t.Errorf("ball.Y = %v after a partial slice, want unchanged %v", r.e.ball.Y, startY)
	}
}

func TestAccumulatorCompletesSlice(t *testing.T) {
	r := newRig(t)
	cfg := r.e.cfg
	dt := 1.0 / float64(cfg.Loop.TickRate)
	startY := r.e.ball.Y

	r.advance(16 * time.Millisecond)
	r.advance(1 * time.Millisecond) // 17ms total crosses the slice boundary

	want := startY + cfg.Ball.LaunchVY*dt
	if r.e.ball.Y != want {
		t.Errorf("ball.Y = %v after one slice, want %v", r.e.ball.Y, want)
	}
}

func TestHugeDeltaIsClamped(t *testing.T) {
	r := newRig(t)
	cfg := r.e.cfg
	dt := 1.0 / float64(cfg.Loop.TickRate)
	startX := r.e.paddle.X

	r.e.KeyDown("right")
	r.advance(10 * time.Second)

	// A 10s stall must collapse to at most MaxFrameDeltaMS of catch-up:
	// roughly 15 slices at the default config, never hundreds.
	moved := r.e.paddle.X - startX
	perStep := cfg.Paddle.Speed * dt
	if moved < 13*perStep || moved > 16*perStep {
		t.Errorf("paddle moved %v over a clamped stall, want about %v", moved, 15*perStep)
	}
}

func TestPromptResumesWithoutBurst(t *testing.T) {
	r := newRig(t)
	cfg := r.e.cfg
	dt := 1.0 / float64(cfg.Loop.TickRate)

	r.forceGameOver(t)
	for i := 0; i < 5; i++ {
		r.advance(200 * time.Millisecond) // drains with nothing stepping
	}

	r.e.KeyDown("n")
	startY := r.e.ball.Y
	r.advance(17 * time.Millisecond)

	// One slice, two at most from leftover fraction; a catch-up burst
	// after a second of prompt time would be a dozen.
	moved := startY - r.e.ball.Y
	maxMoved := 2 * -cfg.Ball.LaunchVY * dt
	if moved <= 0 {
		t.Error("simulation did not resume after the prompt")
	}
	if moved > maxMoved+1e-9 {
		t.Errorf("ball moved %v on the first tick after the prompt, want at most %v", moved, maxMoved)
	}
}

func TestTickRearmsUntilStopped(t *testing.T) {
	r := newRig(t)

	for i := 0; i < 3; i++ {
		r.advance(17 * time.Millisecond)
		if r.sched.pending == nil {
			t.Fatalf("tick %d did not re-arm the scheduler", i)
		}
	}

	r.e.Stop()
	if r.sched.pending != nil {
		t.Error("pending tick survived Stop")
	}
	if r.sched.fire(r.now) {
		t.Error("scheduler fired after Stop")
	}
}

func TestTickAfterStopIsInert(t *testing.T) {
	r := newRig(t)
	r.e.Stop()
	frames := len(r.surface.frames)

	r.e.tick(r.now.Add(17 * time.Millisecond))

	if len(r.surface.frames) != frames {
		t.Error("stopped engine still rendered")
	}
	if r.sched.pending != nil {
		t.Error("stopped engine re-armed the scheduler")
	}
}

func TestBackwardClockIsSafe(t *testing.T) {
	r := newRig(t)
	startY := r.e.ball.Y

	r.sched.fire(r.now.Add(-time.Second))

	if r.e.ball.Y != startY {
		t.Errorf("ball.Y = %v after a backward clock jump, want unchanged %v", r.e.ball.Y, startY)
	}
	if !r.e.Running() {
		t.Error("engine stopped on a backward clock jump")
	}
	if r.sched.pending == nil {
		t.Error("tick did not re-arm after a backward clock jump")
	}
}

func TestUnchangedFrameNotRepresented(t *testing.T) {
	r := newRig(t)
	r.forceGameOver(t)

	// The first prompt frames may still differ while the trail settles.
	r.advance(17 * time.Millisecond)
	r.advance(17 * time.Millisecond)
	frames := len(r.surface.frames)

	for i := 0; i < 4; i++ {
		r.advance(17 * time.Millisecond)
	}
	if len(r.surface.frames) != frames {
		t.Errorf("presented %d frozen frames, want 0", len(r.surface.frames)-frames)
	}
}
