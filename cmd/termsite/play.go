package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Adriancoding96/terminal-website/internal/breaker"
	"github.com/Adriancoding96/terminal-website/internal/platform/tui"
)

var flagTick int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the brick game",
	Long: `Start the brick game directly, skipping the shell.

Controls:
  A/D or arrows  - Move the paddle
  Y/N            - Answer the save prompt
  Enter          - Confirm your name
  Esc            - Quit

Examples:
  termsite play
  termsite play --tick 120
  termsite play --config ./my-site.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagTick, "tick", 0, "Simulation steps per second (0 = config value)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagTick > 0 {
		cfg.Loop.TickRate = flagTick
	}

	// The frame has a fixed footprint; refuse terminals it cannot fit
	needW, needH := breaker.FrameSize(cfg)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, the game needs at least %dx%d\n", w, h, needW, needH)
		os.Exit(1)
	}

	store := openStore(cfg)

	runErr := tui.RunGame(cfg, store)

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
