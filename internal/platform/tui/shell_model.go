package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/scores"
	"github.com/Adriancoding96/terminal-website/internal/shell"
)

// view selects which screen owns the terminal.
type view int

const (
	viewBoot view = iota
	viewShell
	viewGame
	viewScores
)

// Boot animation pacing.
const (
	bootTypeInterval = 25 * time.Millisecond
	bootCharsPerTick = 2
)

// bootTickMsg advances the boot typing animation.
type bootTickMsg struct{}

func bootTick() tea.Cmd {
	return tea.Tick(bootTypeInterval, func(time.Time) tea.Msg {
		return bootTickMsg{}
	})
}

var (
	bootStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scrollbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// ShellModel is the top-level Bubble Tea model: it boots the console,
// runs the command session, and hands the screen to the game or the
// scoreboard when a command asks for them.
type ShellModel struct {
	cfg     config.Config
	store   *scores.Store
	session *shell.Session
	input   textinput.Model

	view      view
	bootLines []string
	bootLine  int
	bootCol   int

	game       GameModel
	scoreboard ScoreboardModel

	width    int
	height   int
	quitting bool
}

// NewShellModel creates the console model for one user session.
func NewShellModel(cfg config.Config, store *scores.Store) ShellModel {
	ti := textinput.New()
	ti.Prompt = cfg.Shell.Prompt()
	ti.PromptStyle = promptStyle
	ti.CharLimit = 256
	ti.Focus()

	m := ShellModel{
		cfg:       cfg,
		store:     store,
		session:   shell.NewSession(cfg, store),
		input:     ti,
		view:      viewBoot,
		bootLines: shell.BootLines(cfg),
		width:     80,
		height:    24,
	}
	if !cfg.Shell.BootAnim {
		m.skipBoot()
	}
	return m
}

// Init starts the boot animation, or the cursor blink when booting is
// disabled.
func (m ShellModel) Init() tea.Cmd {
	if m.view == viewBoot {
		return bootTick()
	}
	return textinput.Blink
}

// Update routes messages to whichever screen owns the terminal.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.input.Width = wsm.Width - len(m.input.Prompt) - 1
	}

	switch m.view {
	case viewBoot:
		return m.updateBoot(msg)
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateShell(msg)
	}
}

// updateBoot advances or skips the typing animation.
func (m ShellModel) updateBoot(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bootTickMsg:
		m.advanceBoot(bootCharsPerTick)
		if m.view == viewBoot {
			return m, bootTick()
		}
		return m, textinput.Blink

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		m.skipBoot()
		return m, textinput.Blink
	}
	return m, nil
}

// advanceBoot reveals the next chars characters of the boot banner.
func (m *ShellModel) advanceBoot(chars int) {
	for i := 0; i < chars && m.bootLine < len(m.bootLines); i++ {
		if m.bootCol < len(m.bootLines[m.bootLine]) {
			m.bootCol++
		} else {
			m.bootLine++
			m.bootCol = 0
		}
	}
	if m.bootLine >= len(m.bootLines) {
		m.finishBoot()
	}
}

func (m *ShellModel) skipBoot() {
	m.bootLine = len(m.bootLines)
	m.bootCol = 0
	m.finishBoot()
}

// finishBoot moves the banner into the scrollback and opens the prompt.
func (m *ShellModel) finishBoot() {
	for _, l := range m.bootLines {
		m.session.Println(l)
	}
	m.view = viewShell
}

// updateShell feeds the prompt line and executes it on enter.
func (m ShellModel) updateShell(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "ctrl+d":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.execLine()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execLine runs the typed command and acts on its control signal.
func (m ShellModel) execLine() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	res := m.session.Exec(line)
	switch res.Control {
	case shell.ControlLaunchGame:
		m.game = NewGameModel(m.cfg, m.store, m.session.Println)
		m.view = viewGame
		return m, m.game.Init()

	case shell.ControlOpenScores:
		m.scoreboard = NewScoreboardModel(m.store, m.width, m.height)
		m.view = viewScores
		return m, m.scoreboard.Init()

	case shell.ControlExit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateGame forwards messages to the game until it finishes. Ctrl+c
// still quits the whole program; the game's esc exit hands the screen
// back to the shell.
func (m ShellModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Done() {
		m.view = viewShell
		return m, textinput.Blink
	}
	return m, cmd
}

// updateScores forwards messages to the scoreboard until it closes.
func (m ShellModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		m.view = viewShell
		return m, textinput.Blink
	}
	return m, cmd
}

// View renders whichever screen owns the terminal.
func (m ShellModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewBoot:
		return m.bootView()
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scoreboard.View()
	default:
		return m.shellView()
	}
}

// bootView shows the partially typed banner with a block cursor.
func (m ShellModel) bootView() string {
	var b strings.Builder
	for i := 0; i < m.bootLine && i < len(m.bootLines); i++ {
		b.WriteString(m.bootLines[i])
		b.WriteByte('\n')
	}
	if m.bootLine < len(m.bootLines) {
		b.WriteString(m.bootLines[m.bootLine][:m.bootCol])
		b.WriteRune('█')
	}
	return bootStyle.Render(b.String())
}

// shellView shows the tail of the scrollback above the prompt.
func (m ShellModel) shellView() string {
	lines := m.session.Scrollback()
	visible := m.height - 2
	if visible < 1 {
		visible = 1
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(scrollbackStyle.Render(l))
		b.WriteByte('\n')
	}
	b.WriteString(m.input.View())
	return b.String()
}

// RunShell boots the console in the local terminal.
func RunShell(cfg config.Config, store *scores.Store) error {
	p := tea.NewProgram(NewShellModel(cfg, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
