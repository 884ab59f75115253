// termsite is a personal website that lives in the terminal.
//
// Usage:
//
//	termsite                  - Open the interactive shell
//	termsite play             - Jump straight into the brick game
//	termsite scores           - Show the high score table
//	termsite serve            - Serve the site over SSH
//
// Global flags:
//
//	--config <path>  - Set config file path (default: ~/.termsite/config.yaml)
//	--db <path>      - Set score storage path (default: ~/.termsite/scores.json)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Adriancoding96/terminal-website/internal/config"
	"github.com/Adriancoding96/terminal-website/internal/platform/tui"
	"github.com/Adriancoding96/terminal-website/internal/scores"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsite",
	Short: "A personal website that lives in the terminal",
	Long: `termsite boots a small console shell in your terminal. Wander around
with ls and cat, and try the command the help listing won't explain.

Available commands:
  play     - Jump straight into the brick game
  scores   - View the high score table
  serve    - Serve the site over SSH

Examples:
  termsite
  termsite play
  termsite scores --tui
  termsite serve --ssh :2222`,
	Run: runShell,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: ~/.termsite/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to score storage (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the site configuration and applies global flag
// overrides. Errors are fatal: a config file was named but unusable.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Scores.Path = flagDBPath
	}
	return cfg
}

// openStore opens score storage, or returns nil when it is unavailable.
// The site still works without it.
func openStore(cfg config.Config) *scores.Store {
	backend, err := scores.OpenBackend(cfg.Scores.Driver, cfg.Scores.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score storage: %v\n", err)
		return nil
	}
	return scores.Open(backend, cfg.Scores.Cap, nil)
}

func closeStore(store *scores.Store) {
	if store != nil {
		store.Close() //nolint:errcheck // best-effort close on exit
	}
}

func runShell(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := openStore(cfg)
	defer closeStore(store)

	if err := tui.RunShell(cfg, store); err != nil {
		fmt.Fprintf(os.Stderr, "Error running shell: %v\n", err)
		os.Exit(1)
	}
}
