package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	snakecore "github.com/vovakirdan/torus-snake/internal/games/snake/core"
	"github.com/vovakirdan/torus-snake/internal/platform/tui"
	"github.com/vovakirdan/torus-snake/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best finished runs, optionally for one autopilot mode.

Examples:
  snake scores
  snake scores trap
  snake scores --limit 25
  snake scores -i
  snake scores food --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs instead of showing them")
}

// modeArg normalizes the optional mode argument; "" means every mode.
func modeArg(args []string) (string, error) {
	if len(args) == 0 || args[0] == "all" {
		return "", nil
	}
	mode, err := snakecore.ParseMode(args[0])
	if err != nil {
		return "", fmt.Errorf("unknown autopilot mode %q; run 'snake modes' to list them", args[0])
	}
	return mode.String(), nil
}

func runScores(_ *cobra.Command, args []string) {
	mode, err := modeArg(args)
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearScores(mode); err != nil {
			store.Close()
			exitf("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", modeTitle(mode))
		return

	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScores(store, mode, width, height); err != nil {
			store.Close()
			exitf("%v", err)
		}
		return
	}

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", modeTitle(mode))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'snake play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-7s  %-9s  %-7s  %-7s  %s\n", "Rank", "Score", "Mode", "Outcome", "Grid", "Rounds", "Date")
	fmt.Printf("  %-4s  %-6s  %-7s  %-9s  %-7s  %-7s  %s\n", "----", "-----", "----", "-------", "----", "------", "----")

	for i, e := range scores {
		grid := fmt.Sprintf("%dx%d", e.Width, e.Height)
		fmt.Printf("  %-4d  %-6d  %-7s  %-9s  %-7s  %-7d  %s\n",
			i+1, e.Score, e.Mode, e.Outcome, grid, e.Rounds, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func modeTitle(mode string) string {
	if mode == "" {
		return "all modes"
	}
	return mode
}
