package shell

import (
	"fmt"
	"strings"
)

func init() {
	Register(Command{
		Name:    "help",
		Summary: "list available commands",
		Run:     runHelp,
	})
	Register(Command{
		Name:    "ls",
		Summary: "list files",
		Run:     runLs,
	})
	Register(Command{
		Name:    "cat",
		Summary: "print a file",
		Usage:   "cat <file>",
		Run:     runCat,
	})
	Register(Command{
		Name:    "echo",
		Summary: "print arguments",
		Run:     runEcho,
	})
	Register(Command{
		Name:    "clear",
		Summary: "clear the screen",
		Run:     runClear,
	})
	Register(Command{
		Name:    "whoami",
		Summary: "print the current user",
		Run:     runWhoami,
	})
	Register(Command{
		Name:    "scores",
		Summary: "open the high score table",
		Run:     runScores,
	})
	Register(Command{
		Name:    "brick",
		Summary: "???",
		Run:     runBrick,
	})
	Register(Command{
		Name:    "exit",
		Summary: "close the session",
		Run:     runExit,
	})
}

func runHelp(s *Session, args []string) Result {
	cmds := List()

	width := 0
	for _, c := range cmds {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}

	lines := make([]string, 0, len(cmds)+1)
	lines = append(lines, "available commands:")
	for _, c := range cmds {
		lines = append(lines, fmt.Sprintf("  %-*s  %s", width, c.Name, c.Summary))
	}
	return Result{Lines: lines}
}

func runLs(s *Session, args []string) Result {
	lines := make([]string, 0, len(files))
	for _, f := range Files() {
		lines = append(lines, f.Name)
	}
	return Result{Lines: lines}
}

func runCat(s *Session, args []string) Result {
	if len(args) != 1 {
		return Result{Lines: []string{"usage: cat <file>"}}
	}
	content, ok := ReadFile(args[0])
	if !ok {
		return Result{Lines: []string{fmt.Sprintf("cat: %s: no such file", args[0])}}
	}
	return Result{Lines: strings.Split(content, "\n")}
}

func runEcho(s *Session, args []string) Result {
	return Result{Lines: []string{strings.Join(args, " ")}}
}

func runClear(s *Session, args []string) Result {
	return Result{Control: ControlClear}
}

func runWhoami(s *Session, args []string) Result {
	return Result{Lines: []string{s.cfg.Shell.User}}
}

func runScores(s *Session, args []string) Result {
	if s.store == nil {
		return Result{Lines: []string{"scores: storage unavailable"}}
	}
	return Result{
		Lines:   []string{"opening high scores... esc to return"},
		Control: ControlOpenScores,
	}
}

func runBrick(s *Session, args []string) Result {
	return Result{
		Lines:   []string{"launching brick. a/d or arrows to move, esc to quit."},
		Control: ControlLaunchGame,
	}
}

func runExit(s *Session, args []string) Result {
	return Result{
		Lines:   []string{"logout"},
		Control: ControlExit,
	}
}
