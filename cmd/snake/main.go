// snake is a terminal snake game on a board whose edges wrap around, with
// three autopilots that can take over the steering.
//
// Usage:
//
//	snake                  - Play (same as snake play)
//	snake play             - Play a game
//	snake scores [mode]    - Show high scores, optionally for one autopilot mode
//	snake modes            - List autopilot modes
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.snake/scores.db)
//	--log <path>        - Write a debug log to a file
//	--log-level <lvl>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a wrap-around board, with autopilots",
	Long: `Snake is played on a board whose edges wrap around: leaving one side
brings the snake back on the opposite one. Eat food to grow; running
into a wall or into the snake ends the game.

Any time during play an autopilot can take over the steering:
  food    - heads straight for the food
  hazard  - keeps going and only turns away from an immediate collision
  trap    - seeks food unless the next move leads into a dead end

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  modes    - List autopilot modes

Examples:
  snake
  snake -x 30 -y 15 --autopilot trap
  snake scores trap`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to a log file (default: no log)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
}

// newLogger builds the file logger. The terminal belongs to the UI, so
// without --log everything is discarded.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogPath == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(level)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, f, nil
}
