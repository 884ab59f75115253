package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Adriancoding96/terminal-website/internal/breaker"
	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/scores"
)

// keyHoldTicks is how many ticks a movement key stays held after a key
// event. Terminals deliver autorepeat presses but no release events, so
// a held key decays unless the repeat refreshes it.
const keyHoldTicks = 9

// gameHost adapts Bubble Tea to the engine's host contract. The engine
// pushes plain composed frames into Present; ScheduleTick parks the
// callback until the next TickMsg arrives.
type gameHost struct {
	frame   string
	pending func(now time.Time)
	notify  func(line string)
}

func (h *gameHost) Mount(width, height int) error { return nil }

func (h *gameHost) Present(frame string) { h.frame = frame }

func (h *gameHost) Unmount() { h.frame = "" }

func (h *gameHost) Println(line string) {
	if h.notify != nil {
		h.notify(line)
	}
}

func (h *gameHost) ScheduleTick(fn func(now time.Time)) { h.pending = fn }

func (h *gameHost) CancelTick() { h.pending = nil }

// GameModel runs one engine session inside a Bubble Tea program. It can
// be embedded in the shell, which takes the screen back once the engine
// stops, or run standalone, which quits the program instead.
type GameModel struct {
	engine *breaker.Engine
	host   *gameHost
	cfg    config.Config

	leftHold   int
	rightHold  int
	standalone bool
}

// NewGameModel creates a game model. notify receives the engine's exit
// notice; nil drops it.
func NewGameModel(cfg config.Config, store *scores.Store, notify func(line string)) GameModel {
	host := &gameHost{notify: notify}
	return GameModel{
		engine: breaker.New(cfg, breaker.Host{
			Surface:   host,
			Notifier:  host,
			Scheduler: host,
		}, store),
		host: host,
		cfg:  cfg,
	}
}

// Init starts the engine and the tick loop.
func (m GameModel) Init() tea.Cmd {
	//nolint:errcheck // this host's surface cannot fail to mount
	m.engine.Start(time.Now())
	return m.tickIfPending()
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey forwards raw key strings to the engine, which owns all
// interpretation. Movement keys refresh the autorepeat hold window.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.engine.Stop()
		return m, tea.Quit
	}

	switch key {
	case "left", "a":
		m.leftHold = keyHoldTicks
	case "right", "d":
		m.rightHold = keyHoldTicks
	}

	m.engine.KeyDown(key)

	if m.standalone && !m.engine.Running() {
		return m, tea.Quit
	}
	return m, nil
}

// handleTick fires the pending engine callback and decays held keys.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	fn := m.host.pending
	m.host.pending = nil
	if fn == nil {
		return m, nil
	}
	fn(now)

	if m.leftHold > 0 {
		m.leftHold--
		if m.leftHold == 0 {
			m.engine.KeyUp("left")
		}
	}
	if m.rightHold > 0 {
		m.rightHold--
		if m.rightHold == 0 {
			m.engine.KeyUp("right")
		}
	}

	if m.standalone && !m.engine.Running() {
		return m, tea.Quit
	}
	return m, m.tickIfPending()
}

// tickIfPending re-arms the tea tick only while the engine keeps a
// callback scheduled.
func (m GameModel) tickIfPending() tea.Cmd {
	if m.host.pending == nil {
		return nil
	}
	return tickCmd(m.cfg.Loop.TickRate)
}

// Done reports whether the engine has shut down and the screen can go
// back to whoever embedded the game.
func (m GameModel) Done() bool {
	return !m.engine.Running()
}

// View renders the engine's screen with cell colors applied.
func (m GameModel) View() string {
	if !m.engine.Running() {
		return ""
	}
	return RenderScreen(m.engine.Screen())
}

// RunGame runs the game alone in the local terminal, outside the shell.
func RunGame(cfg config.Config, store *scores.Store) error {
	var notice string
	m := NewGameModel(cfg, store, func(line string) { notice = line })
	m.standalone = true

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if notice != "" {
		fmt.Println(notice)
	}
	return nil
}
