package shell

import (
	"fmt"

	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/scores"
)

// Control tells the host what to do after a command ran. Actions the
// session cannot perform itself, like switching screens or ending the
// program, are carried up as controls.
type Control int

const (
	ControlNone Control = iota
	// ControlClear empties the scrollback.
	ControlClear
	// ControlLaunchGame switches the host to the brick game.
	ControlLaunchGame
	// ControlOpenScores switches the host to the scoreboard view.
	ControlOpenScores
	// ControlExit ends the session.
	ControlExit
)

// Result is the outcome of one executed line.
type Result struct {
	Lines   []string
	Control Control
}

// scrollbackLimit bounds the retained output.
const scrollbackLimit = 400

// Session is one user's console: configuration, score access, and the
// scrollback of everything printed so far. Sessions are not safe for
// concurrent use; each connection owns its own.
type Session struct {
	cfg   config.Config
	store *scores.Store // nil when storage is unavailable
	lines []string
}

// NewSession creates a session. store may be nil; the scores command
// then reports storage as unavailable.
func NewSession(cfg config.Config, store *scores.Store) *Session {
	return &Session{cfg: cfg, store: store}
}

// Prompt returns the prefix shown before user input.
func (s *Session) Prompt() string {
	return s.cfg.Shell.Prompt()
}

// Exec runs one input line. The prompt and the raw line are echoed into
// the scrollback first, the way a terminal would, then the command's
// output follows. Unknown commands produce a hint instead of an error.
func (s *Session) Exec(line string) Result {
	s.push(s.Prompt() + line)

	args := Tokenize(line)
	if len(args) == 0 {
		return Result{}
	}

	cmd, ok := Lookup(args[0])
	if !ok {
		return s.emit(Result{
			Lines: []string{fmt.Sprintf("%s: command not found (try 'help')", args[0])},
		})
	}

	return s.emit(cmd.Run(s, args[1:]))
}

// emit records the result's lines and applies scrollback controls.
func (s *Session) emit(res Result) Result {
	for _, l := range res.Lines {
		s.push(l)
	}
	if res.Control == ControlClear {
		s.lines = s.lines[:0]
	}
	return res
}

// Println appends a line produced outside command dispatch, such as the
// game's exit notice.
func (s *Session) Println(line string) {
	s.push(line)
}

func (s *Session) push(line string) {
	s.lines = append(s.lines, line)
	if len(s.lines) > scrollbackLimit {
		s.lines = s.lines[len(s.lines)-scrollbackLimit:]
	}
}

// Scrollback returns a copy of the retained output lines.
func (s *Session) Scrollback() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Config returns the session's configuration.
func (s *Session) Config() config.Config {
	return s.cfg
}

// Store returns the score store. May be nil.
func (s *Session) Store() *scores.Store {
	return s.store
}
