package breaker

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/scores"
)

type fakeSurface struct {
	mountW, mountH int
	mountCalls     int
	mountErr       error
	unmounted      bool
	frames         []string
}

func (f *fakeSurface) Mount(w, h int) error {
	f.mountCalls++
	f.mountW, f.mountH = w, h
	return f.mountErr
}

func (f *fakeSurface) Present(frame string) {
	f.frames = append(f.frames, frame)
}

func (f *fakeSurface) Unmount() {
	f.unmounted = true
}

type fakeNotifier struct {
	lines []string
}

func (f *fakeNotifier) Println(line string) {
	f.lines = append(f.lines, line)
}

type fakeScheduler struct {
	pending func(now time.Time)
	cancels int
}

func (f *fakeScheduler) ScheduleTick(fn func(now time.Time)) {
	f.pending = fn
}

func (f *fakeScheduler) CancelTick() {
	f.pending = nil
	f.cancels++
}

// fire invokes the pending callback, if any, emptying the slot first so
// a re-arm from inside the callback is observable.
func (f *fakeScheduler) fire(now time.Time) bool {
	fn := f.pending
	if fn == nil {
		return false
	}
	f.pending = nil
	fn(now)
	return true
}

type rig struct {
	e        *Engine
	surface  *fakeSurface
	notifier *fakeNotifier
	sched    *fakeScheduler
	store    *scores.Store
	now      time.Time
}

func newRig(t *testing.T) *rig {
	t.Helper()

	backend, err := scores.NewJSONBackend(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("NewJSONBackend() failed: %v", err)
	}

	r := &rig{
		surface:  &fakeSurface{},
		notifier: &fakeNotifier{},
		sched:    &fakeScheduler{},
		store:    scores.Open(backend, 100, nil),
		now:      time.Unix(0, 0),
	}
	r.e = New(config.Default(), Host{
		Surface:   r.surface,
		Notifier:  r.notifier,
		Scheduler: r.sched,
	}, r.store)

	if err := r.e.Start(r.now); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return r
}

// advance moves the wall clock and fires the pending tick.
func (r *rig) advance(d time.Duration) {
	r.now = r.now.Add(d)
	r.sched.fire(r.now)
}

// lastFrame returns the most recently presented frame.
func (r *rig) lastFrame() string {
	if len(r.surface.frames) == 0 {
		return ""
	}
	return r.surface.frames[len(r.surface.frames)-1]
}

// forceGameOver drops the ball past the bottom boundary and ticks once.
func (r *rig) forceGameOver(t *testing.T) {
	t.Helper()
	r.e.ball.X = 40
	r.e.ball.Y = float64(r.e.cfg.Field.Height)
	r.e.ball.VY = 30
	r.advance(17 * time.Millisecond)
	if r.e.State() != StateGameOverPrompt {
		t.Fatalf("forceGameOver: state = %v, want %v", r.e.State(), StateGameOverPrompt)
	}
}

func TestStartMountsAndSchedules(t *testing.T) {
	r := newRig(t)

	wantW := r.e.cfg.Field.Width + 1 + panelWidth
	if r.surface.mountW != wantW || r.surface.mountH != r.e.cfg.Field.Height {
		t.Errorf("mounted %dx%d, want %dx%d", r.surface.mountW, r.surface.mountH, wantW, r.e.cfg.Field.Height)
	}
	if r.e.State() != StatePlaying {
		t.Errorf("state after Start = %v, want %v", r.e.State(), StatePlaying)
	}
	if len(r.surface.frames) == 0 {
		t.Fatal("Start must present an initial frame")
	}
	if !strings.Contains(r.lastFrame(), "HIGH SCORES") {
		t.Error("initial frame is missing the scoreboard panel")
	}
	if r.sched.pending == nil {
		t.Error("Start must schedule the first tick")
	}
}

func TestStartMountFailure(t *testing.T) {
	surface := &fakeSurface{mountErr: errors.New("no tty")}
	e := New(config.Default(), Host{
		Surface:   surface,
		Notifier:  &fakeNotifier{},
		Scheduler: &fakeScheduler{},
	}, nil)

	if err := e.Start(time.Unix(0, 0)); err == nil {
		t.Fatal("Start with a failing surface should return an error")
	}
	if e.Running() {
		t.Error("engine must not be running after a failed Start")
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	r := newRig(t)
	if err := r.e.Start(r.now); err != nil {
		t.Fatalf("second Start() returned error: %v", err)
	}
	if r.surface.mountCalls != 1 {
		t.Errorf("mount called %d times, want 1", r.surface.mountCalls)
	}
}

func TestMovementKeysSteerOnlyWhilePlaying(t *testing.T) {
	r := newRig(t)

	r.e.KeyDown("left")
	if !r.e.left {
		t.Error("left key not registered while playing")
	}
	r.e.KeyUp("left")
	if r.e.left {
		t.Error("left key not released")
	}

	r.forceGameOver(t)
	r.e.KeyDown("left")
	r.e.KeyDown("d")
	if r.e.left || r.e.right {
		t.Error("movement keys must be ignored while the game-over prompt is open")
	}
}

func TestGameOverPromptKeys(t *testing.T) {
	r := newRig(t)
	r.forceGameOver(t)

	// Unrelated keys leave the prompt open
	for _, key := range []string{"x", "space", "enter", "left", "backspace"} {
		r.e.KeyDown(key)
		if r.e.State() != StateGameOverPrompt {
			t.Fatalf("key %q moved state to %v", key, r.e.State())
		}
	}

	r.e.KeyDown("n")
	if r.e.State() != StatePlaying {
		t.Errorf("state after n = %v, want %v", r.e.State(), StatePlaying)
	}
}

func TestScenarioDeclineSave(t *testing.T) {
	r := newRig(t)
	r.e.score = 4
	r.forceGameOver(t)

	if !strings.Contains(r.lastFrame(), "GAME OVER") {
		t.Error("game-over frame is missing the prompt")
	}
	if !strings.Contains(r.lastFrame(), "score: 4") {
		t.Error("game-over prompt is missing the final score")
	}

	r.e.KeyDown("n")

	if r.e.State() != StatePlaying {
		t.Fatalf("state = %v, want %v", r.e.State(), StatePlaying)
	}
	if r.e.Score() != 0 {
		t.Errorf("score = %d after restart, want 0", r.e.Score())
	}
	if r.store.Len() != 0 {
		t.Errorf("declining must not persist anything, store has %d entries", r.store.Len())
	}
	if r.e.field.Remaining() != len(r.e.field.Bricks()) {
		t.Error("wave must be full after restart")
	}
}

func TestScenarioSaveScoreWithEditedName(t *testing.T) {
	r := newRig(t)
	r.e.score = 7
	r.forceGameOver(t)

	r.e.KeyDown("y")
	if r.e.State() != StateNameEntry {
		t.Fatalf("state after y = %v, want %v", r.e.State(), StateNameEntry)
	}

	r.e.KeyDown("A")
	r.e.KeyDown("B")
	r.e.KeyDown("backspace")
	r.e.KeyDown("C")
	if got := r.e.NameBuffer(); got != "AC" {
		t.Fatalf("name buffer = %q, want %q", got, "AC")
	}

	r.e.KeyDown("enter")

	if r.e.State() != StatePlaying {
		t.Errorf("state after enter = %v, want %v", r.e.State(), StatePlaying)
	}
	if r.e.Score() != 0 {
		t.Errorf("score = %d after restart, want 0", r.e.Score())
	}

	top := r.store.Top(1)
	if len(top) != 1 {
		t.Fatalf("store has %d entries, want 1", len(top))
	}
	if top[0] != (scores.Entry{Name: "AC", Score: 7}) {
		t.Errorf("recorded entry = %+v, want {AC 7}", top[0])
	}
}

func TestNameEntryCharsetAndCap(t *testing.T) {
	r := newRig(t)
	r.forceGameOver(t)
	r.e.KeyDown("y")

	for _, key := range []string{"a", "Z", "3", "-", "_", "space"} {
		r.e.KeyDown(key)
	}
	if got := r.e.NameBuffer(); got != "aZ3-_ " {
		t.Errorf("name buffer = %q, want %q", got, "aZ3-_ ")
	}

	// Out-of-range characters and unmapped keys are silently ignored
	for _, key := range []string{"!", "@", "#", "up", "left", "tab", "é"} {
		r.e.KeyDown(key)
	}
	if got := r.e.NameBuffer(); got != "aZ3-_ " {
		t.Errorf("invalid keys changed the buffer to %q", got)
	}

	for i := 0; i < 30; i++ {
		r.e.KeyDown("x")
	}
	if got := len(r.e.NameBuffer()); got != r.e.cfg.Scores.NameMax {
		t.Errorf("buffer length = %d, want capped at %d", got, r.e.cfg.Scores.NameMax)
	}
}

func TestNameEntryLettersDoNotAct(t *testing.T) {
	r := newRig(t)
	r.forceGameOver(t)
	r.e.KeyDown("y")

	// y and n must type, not answer a prompt; a/d must type, not steer
	for _, key := range []string{"y", "n", "a", "d"} {
		r.e.KeyDown(key)
	}
	if r.e.State() != StateNameEntry {
		t.Fatalf("state = %v, want still %v", r.e.State(), StateNameEntry)
	}
	if got := r.e.NameBuffer(); got != "ynad" {
		t.Errorf("name buffer = %q, want %q", got, "ynad")
	}
	if r.e.left || r.e.right {
		t.Error("typing must not steer the paddle")
	}
}

func TestNameEntryEmptyFallsBackToPlaceholder(t *testing.T) {
	r := newRig(t)
	r.e.score = 3
	r.forceGameOver(t)
	r.e.KeyDown("y")
	r.e.KeyDown("enter")

	top := r.store.Top(1)
	if len(top) != 1 {
		t.Fatalf("store has %d entries, want 1", len(top))
	}
	if top[0].Name != r.e.cfg.Scores.DefaultName {
		t.Errorf("empty name recorded as %q, want %q", top[0].Name, r.e.cfg.Scores.DefaultName)
	}
}

func TestNameEntryWhitespaceFallsBackToPlaceholder(t *testing.T) {
	r := newRig(t)
	r.forceGameOver(t)
	r.e.KeyDown("y")
	r.e.KeyDown("space")
	r.e.KeyDown("space")
	r.e.KeyDown("enter")

	top := r.store.Top(1)
	if len(top) != 1 || top[0].Name != r.e.cfg.Scores.DefaultName {
		t.Errorf("whitespace name should fall back to %q, got %v", r.e.cfg.Scores.DefaultName, top)
	}
}

func TestRestartResetsRound(t *testing.T) {
	r := newRig(t)

	// Disturb everything
	r.e.KeyDown("right")
	for i := 0; i < 30; i++ {
		r.advance(17 * time.Millisecond)
	}
	r.e.score = 9
	r.forceGameOver(t)
	r.e.KeyDown("n")

	cfg := r.e.cfg
	wantPaddleX := float64(cfg.Field.Width-cfg.Paddle.Width) / 2
	if r.e.paddle.X != wantPaddleX {
		t.Errorf("paddle.X = %v after restart, want %v", r.e.paddle.X, wantPaddleX)
	}
	if r.e.ball.X != float64(cfg.Field.Width)/2 {
		t.Errorf("ball.X = %v after restart, want %v", r.e.ball.X, float64(cfg.Field.Width)/2)
	}
	if r.e.ball.VX != cfg.Ball.LaunchVX || r.e.ball.VY != cfg.Ball.LaunchVY {
		t.Errorf("ball velocity = (%v, %v) after restart, want launch velocity", r.e.ball.VX, r.e.ball.VY)
	}
	if r.e.left || r.e.right {
		t.Error("held keys must be dropped on restart")
	}
}

func TestScoreCountsBricks(t *testing.T) {
	r := newRig(t)

	// Aim the ball straight up into the bottom brick row
	r.e.ball.X = float64(r.e.cfg.Field.Width) / 2
	r.e.ball.Y = float64(r.e.cfg.Bricks.Top+r.e.cfg.Bricks.Rows-1) + 0.5
	r.e.ball.VX, r.e.ball.VY = 0, -30

	r.advance(17 * time.Millisecond)

	if r.e.Score() != 1 {
		t.Errorf("score = %d after one brick, want 1", r.e.Score())
	}
}

func TestPromptFreezesSimulationAndScore(t *testing.T) {
	r := newRig(t)
	r.e.score = 6
	r.forceGameOver(t)

	before := r.e.Snapshot()
	for i := 0; i < 30; i++ {
		r.advance(17 * time.Millisecond)
	}
	after := r.e.Snapshot()

	if before != after {
		t.Errorf("simulation advanced during the prompt: %+v -> %+v", before, after)
	}
	if r.e.Score() != 6 {
		t.Errorf("score changed during the prompt: %d", r.e.Score())
	}
}

func TestExitFromEveryState(t *testing.T) {
	setups := map[string]func(*rig, *testing.T){
		"playing":   func(r *rig, t *testing.T) {},
		"gameover":  func(r *rig, t *testing.T) { r.forceGameOver(t) },
		"nameentry": func(r *rig, t *testing.T) { r.forceGameOver(t); r.e.KeyDown("y") },
	}

	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			r := newRig(t)
			setup(r, t)

			r.e.KeyDown("esc")

			if r.e.Running() {
				t.Error("engine still running after esc")
			}
			if r.sched.pending != nil {
				t.Error("pending tick not cancelled on exit")
			}
			if r.sched.cancels == 0 {
				t.Error("exit must cancel through the scheduler")
			}
			if !r.surface.unmounted {
				t.Error("surface not unmounted on exit")
			}
			if len(r.notifier.lines) != 1 || !strings.Contains(r.notifier.lines[0], "final score") {
				t.Errorf("exit notice = %v", r.notifier.lines)
			}

			// Everything after exit is inert
			r.e.KeyDown("left")
			if r.e.left {
				t.Error("keys must be ignored after exit")
			}
		})
	}
}

func TestStopIsIdempotent(t *testing.T) {
	r := newRig(t)
	r.e.Stop()
	r.e.Stop()

	if len(r.notifier.lines) != 1 {
		t.Errorf("notifier got %d lines after double Stop, want 1", len(r.notifier.lines))
	}
}

func TestNilStoreDegradesQuietly(t *testing.T) {
	surface := &fakeSurface{}
	sched := &fakeScheduler{}
	e := New(config.Default(), Host{
		Surface:   surface,
		Notifier:  &fakeNotifier{},
		Scheduler: sched,
	}, nil)
	if err := e.Start(time.Unix(0, 0)); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	e.ball.Y = float64(e.cfg.Field.Height)
	e.ball.VY = 30
	sched.fire(time.Unix(0, 0).Add(17 * time.Millisecond))
	if e.State() != StateGameOverPrompt {
		t.Fatalf("state = %v, want %v", e.State(), StateGameOverPrompt)
	}

	e.KeyDown("y")
	e.KeyDown("A")
	e.KeyDown("enter") // must not panic without a store

	if e.State() != StatePlaying {
		t.Errorf("state = %v after confirming without a store, want %v", e.State(), StatePlaying)
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(r *rig) {
		r.e.KeyDown("right")
		for i := 0; i < 40; i++ {
			r.advance(17 * time.Millisecond)
		}
		r.e.KeyUp("right")
		r.e.KeyDown("left")
		for i := 0; i < 25; i++ {
			r.advance(16 * time.Millisecond)
		}
		r.e.KeyUp("left")
		for i := 0; i < 90; i++ {
			r.advance(21 * time.Millisecond)
		}
	}

	a := newRig(t)
	b := newRig(t)
	script(a)
	script(b)

	if a.e.Snapshot().Hash() != b.e.Snapshot().Hash() {
		t.Errorf("identical timelines diverged:\n a = %+v\n b = %+v", a.e.Snapshot(), b.e.Snapshot())
	}
}
