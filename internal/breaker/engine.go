package breaker

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/core"
	"github.com/Adriancoding96/terminal-website/internal/scores"
)

// State is the game's lifecycle phase. Exactly one phase owns the
// keyboard at any time.
type State int

const (
	// StatePlaying runs the simulation; movement keys steer the paddle.
	StatePlaying State = iota
	// StateGameOverPrompt waits for y/n after the ball is lost.
	StateGameOverPrompt
	// StateNameEntry collects a leaderboard name.
	StateNameEntry
	// StateRestarting resets the round. It completes within the same
	// call that enters it and is never observable across a tick.
	StateRestarting
)

// String returns the phase name for logs and tests.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOverPrompt:
		return "gameover"
	case StateNameEntry:
		return "nameentry"
	case StateRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// Surface is the text display the engine draws into.
type Surface interface {
	// Mount prepares a surface of the given size in character cells.
	Mount(width, height int) error
	// Present replaces the displayed frame.
	Present(frame string)
	// Unmount releases the surface.
	Unmount()
}

// Notifier receives single-line notices printed outside the game frame.
type Notifier interface {
	Println(line string)
}

// Scheduler drives the simulation. ScheduleTick registers a one-shot
// callback for the next tick; the engine re-arms it from inside the
// callback. CancelTick drops a pending callback before it fires.
type Scheduler interface {
	ScheduleTick(fn func(now time.Time))
	CancelTick()
}

// Host bundles the platform collaborators the engine drives. All three
// must be non-nil.
type Host struct {
	Surface   Surface
	Notifier  Notifier
	Scheduler Scheduler
}

// Engine owns one complete game session: paddle, ball, brick wave,
// score, and the state machine. Everything runs on the host's event
// thread; the engine has no goroutines and no locks.
type Engine struct {
	cfg  config.Config
	host Host

	phys   *Physics
	field  *BrickField
	paddle *Paddle
	ball   *Ball

	state   State
	score   int
	nameBuf []rune

	left, right bool // held movement keys

	store *scores.Store // nil when storage is unavailable

	running bool
	lastNow time.Time
	acc     float64

	screen    *core.Screen
	prevFrame string
	trailCol  int // ball cell in the previously rendered frame
	trailRow  int
}

// FrameSize returns the terminal footprint of a session's frame: the
// bordered playfield plus the scoreboard panel.
func FrameSize(cfg config.Config) (width, height int) {
	return cfg.Field.Width + 1 + panelWidth, cfg.Field.Height
}

// New creates an engine. store may be nil; scores are then kept only for
// the current session's scoreboard and never persisted.
func New(cfg config.Config, host Host, store *scores.Store) *Engine {
	w, h := FrameSize(cfg)
	e := &Engine{
		cfg:   cfg,
		host:  host,
		phys:  NewPhysics(cfg),
		field: NewBrickField(cfg.Bricks, cfg.Field.Width),
		paddle: &Paddle{
			Y:     cfg.Field.Height - 2,
			Width: cfg.Paddle.Width,
			Speed: cfg.Paddle.Speed,
		},
		ball:   &Ball{},
		store:  store,
		screen: core.NewScreen(w, h),
	}
	e.resetRound()
	return e
}

// Start mounts the surface, resets the round, and schedules the first
// tick. now seeds the wall-clock delta tracking.
func (e *Engine) Start(now time.Time) error {
	if e.running {
		return nil
	}
	if err := e.host.Surface.Mount(e.screen.Width(), e.screen.Height()); err != nil {
		return fmt.Errorf("breaker: cannot mount surface: %w", err)
	}

	e.score = 0
	e.resetRound()
	e.state = StatePlaying
	e.lastNow = now
	e.acc = 0
	e.prevFrame = ""
	e.running = true

	e.render()
	e.host.Scheduler.ScheduleTick(e.tick)
	return nil
}

// Stop ends the session: it synchronously cancels any pending tick,
// unmounts the surface, and prints the exit notice. Safe to call from
// any state; stopping twice is a no-op.
func (e *Engine) Stop() {
	if !e.running {
		return
	}
	e.running = false
	e.host.Scheduler.CancelTick()
	e.host.Surface.Unmount()
	e.host.Notifier.Println(fmt.Sprintf("brick closed. final score: %d", e.score))
}

// KeyDown routes a pressed key. The current state owns the keyboard
// exclusively; keys another state would handle are ignored here.
func (e *Engine) KeyDown(key string) {
	if !e.running {
		return
	}
	if key == "esc" {
		e.Stop()
		return
	}

	switch e.state {
	case StatePlaying:
		switch key {
		case "left", "a":
			e.left = true
		case "right", "d":
			e.right = true
		}

	case StateGameOverPrompt:
		switch key {
		case "y":
			e.nameBuf = e.nameBuf[:0]
			e.state = StateNameEntry
		case "n":
			e.restart()
		}

	case StateNameEntry:
		switch key {
		case "enter":
			e.confirmName()
		case "backspace":
			if len(e.nameBuf) > 0 {
				e.nameBuf = e.nameBuf[:len(e.nameBuf)-1]
			}
		default:
			e.typeName(key)
		}

	case StateRestarting:
		// transient; never observable between calls
	}
}

// KeyUp releases a held movement key. Other keys act on press only.
func (e *Engine) KeyUp(key string) {
	switch key {
	case "left", "a":
		e.left = false
	case "right", "d":
		e.right = false
	}
}

// typeName appends one character to the name buffer. Characters outside
// the safe set and input beyond the length cap are silently ignored.
func (e *Engine) typeName(key string) {
	if len(e.nameBuf) >= e.cfg.Scores.NameMax {
		return
	}
	if key == "space" {
		key = " "
	}
	rs := []rune(key)
	if len(rs) != 1 {
		return
	}
	if !isNameRune(rs[0]) {
		return
	}
	e.nameBuf = append(e.nameBuf, rs[0])
}

// isNameRune reports whether r belongs to the leaderboard name charset.
func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ' || r == '-' || r == '_':
		return true
	}
	return false
}

// confirmName records the entry and restarts. An empty or all-space
// buffer falls back to the placeholder name. The write happens
// synchronously before play resumes.
func (e *Engine) confirmName() {
	name := strings.TrimSpace(string(e.nameBuf))
	if name == "" {
		name = e.cfg.Scores.DefaultName
	}
	if e.store != nil {
		e.store.Record(scores.Entry{Name: name, Score: e.score})
	}
	e.restart()
}

// restart passes through the transient Restarting phase and resumes play
// with a fresh round.
func (e *Engine) restart() {
	e.state = StateRestarting
	e.score = 0
	e.resetRound()
	e.state = StatePlaying
}

// resetRound recenters the paddle, relaunches the ball, and revives the
// wave. The launch position and velocity are fixed, so identical input
// timelines replay identically.
func (e *Engine) resetRound() {
	fw := e.cfg.Field.Width
	e.paddle.X = float64(fw-e.paddle.Width) / 2
	e.ball.X = float64(fw) / 2
	e.ball.Y = float64(e.cfg.Bricks.Top + e.cfg.Bricks.Rows + 2)
	e.ball.VX = e.cfg.Ball.LaunchVX
	e.ball.VY = e.cfg.Ball.LaunchVY
	e.field.Regenerate()
	e.nameBuf = e.nameBuf[:0]
	e.left, e.right = false, false
	e.trailCol, e.trailRow = e.ball.Cell()
}

// ballLost opens the game-over prompt. Held movement keys are dropped so
// the next round starts still.
func (e *Engine) ballLost() {
	e.state = StateGameOverPrompt
	e.left, e.right = false, false
}

// State returns the current phase.
func (e *Engine) State() State {
	return e.state
}

// Score returns the running score for the current round.
func (e *Engine) Score() int {
	return e.score
}

// Running reports whether the session is active.
func (e *Engine) Running() bool {
	return e.running
}

// NameBuffer returns the name being typed, for display.
func (e *Engine) NameBuffer() string {
	return string(e.nameBuf)
}

// Screen returns the engine's render buffer. Hosts able to style cells
// read colors from here; the Surface always receives the plain frame.
func (e *Engine) Screen() *core.Screen {
	return e.screen
}

// Snapshot captures the simulation state for determinism checks.
type Snapshot struct {
	BallX, BallY   float64
	BallVX, BallVY float64
	PaddleX        float64
	Score          int
	State          State
	BricksAlive    int
}

// Snapshot returns the current simulation state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		BallX:       e.ball.X,
		BallY:       e.ball.Y,
		BallVX:      e.ball.VX,
		BallVY:      e.ball.VY,
		PaddleX:     e.paddle.X,
		Score:       e.score,
		State:       e.state,
		BricksAlive: e.field.Remaining(),
	}
}

// Hash produces a compact fingerprint of the snapshot.
func (s Snapshot) Hash() string {
	return fmt.Sprintf("%x|%x|%x|%x|%x|%d|%d|%d",
		math.Float64bits(s.BallX),
		math.Float64bits(s.BallY),
		math.Float64bits(s.BallVX),
		math.Float64bits(s.BallVY),
		math.Float64bits(s.PaddleX),
		s.Score,
		s.State,
		s.BricksAlive,
	)
}
