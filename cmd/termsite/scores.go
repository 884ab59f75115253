package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Adriancoding96/terminal-website/internal/platform/tui"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top high scores recorded by the brick game.

Examples:
  termsite scores
  termsite scores --tui`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store := openStore(cfg)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: score storage is unavailable")
		os.Exit(1)
	}
	defer closeStore(store)

	if flagScoresTUI {
		width, height := 80, 24 // Defaults
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	entries := store.Top(cfg.Scores.Display)

	fmt.Println("High Scores - brick")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'termsite play' to set the first high score!")
		return
	}

	// Calculate name column width
	nameW := 4 // "Name" header
	for _, e := range entries {
		if len(e.Name) > nameW {
			nameW = len(e.Name)
		}
	}

	// Print header
	fmt.Printf("  %-4s  %-*s  %s\n", "Rank", nameW, "Name", "Score")
	fmt.Printf("  %-4s  %-*s  %s\n", "----", nameW, "----", "-----")

	// Print entries
	for i, e := range entries {
		fmt.Printf("  %-4d  %-*s  %d\n", i+1, nameW, e.Name, e.Score)
	}
}
