package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Adriancoding96/terminal-website/internal/scores"
)

// maxScoreRows is the most entries the table will load.
const maxScoreRows = 100

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	scoreBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	scoreEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
	scoreHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ScoreboardModel is the Bubble Tea model for the high-score table.
type ScoreboardModel struct {
	store      *scores.Store
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	standalone bool
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a scoreboard over the shared store, which
// may be nil.
func NewScoreboardModel(store *scores.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadRows()
	return m
}

// createTable creates the rank/name/score table.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 16},
		{Title: "Score", Width: 10},
	}

	tableHeight := m.height - 7
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRows fills the table from the store.
func (m *ScoreboardModel) loadRows() {
	var top []scores.Entry
	if m.store != nil {
		top = m.store.Top(maxScoreRows)
	}

	rows := make([]table.Row, len(top))
	for i, e := range top {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if len(m.table.Rows()) == 0 {
		body = scoreEmptyStyle.Render("No scores recorded yet.\nType 'brick' in the shell to set one!")
	} else {
		body = scoreBorderStyle.Render(m.table.View())
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		scoreTitleStyle.Render("HIGH SCORES"),
		"",
		body,
		"",
		scoreHelpStyle.Render(m.help.View(m.keys)),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

// IsGoingBack returns true if the user closed the table to return to the
// shell.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the table alone in the local terminal.
func RunScoreboard(store *scores.Store, width, height int) error {
	m := NewScoreboardModel(store, width, height)
	m.standalone = true

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
