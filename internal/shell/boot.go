package shell

import (
	"fmt"

	"github.com/Adriancoding96/terminal-website/internal/config"
)

// BootLines is the banner shown when the console starts. The TUI layer
// reveals it with a typing animation unless the config turns that off.
func BootLines(cfg config.Config) []string {
	return []string{
		fmt.Sprintf("%s bios v2.4 // terminal ready", cfg.Shell.Host),
		"mounting /home ............. ok",
		"starting score daemon ...... ok",
		fmt.Sprintf("logging in as %s", cfg.Shell.User),
		"",
		fmt.Sprintf("welcome to %s. type 'help' to look around.", cfg.Shell.Host),
		"",
	}
}
