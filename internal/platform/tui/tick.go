// Package tui provides the Bubble Tea layer of the site: the boot
// animation, the console model, the embedded game host, the scoreboard
// view, and the SSH server that serves all of it remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the game host to fire its pending engine callback.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
