// Package shell implements the interactive console the site boots into:
// a command registry, a tokenizer, a read-only virtual file listing, and
// the session that executes input lines. The package contains pure logic
// with no external dependencies (especially no Bubble Tea); the platform
// decides how scrollback, prompts, and screen switches are displayed.
package shell

import (
	"fmt"
	"sort"
	"sync"
)

// Command is one console command. Commands register themselves in init()
// functions, allowing the session to dispatch without hardcoded tables.
type Command struct {
	// Name is the word that invokes the command.
	Name string

	// Summary is the one-line description shown by help.
	Summary string

	// Usage is the argument shape shown when a call is malformed.
	Usage string

	// Run executes the command against the owning session. args holds
	// the tokens after the command name.
	Run func(s *Session, args []string) Result
}

var (
	commands = make(map[string]Command)
	mu       sync.RWMutex
)

// Register adds a command to the registry.
// Panics if a command with the same name is already registered.
func Register(cmd Command) {
	mu.Lock()
	defer mu.Unlock()

	if cmd.Name == "" || cmd.Run == nil {
		panic("shell: command must have a name and a Run func")
	}
	if _, exists := commands[cmd.Name]; exists {
		panic(fmt.Sprintf("shell: command %q already registered", cmd.Name))
	}

	commands[cmd.Name] = cmd
}

// List returns all registered commands, sorted by name.
func List() []Command {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Command, 0, len(commands))
	for _, cmd := range commands {
		result = append(result, cmd)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup resolves a command by name.
func Lookup(name string) (Command, bool) {
	mu.RLock()
	defer mu.RUnlock()

	cmd, ok := commands[name]
	return cmd, ok
}
