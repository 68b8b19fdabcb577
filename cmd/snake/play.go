package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
	snakecore "github.com/vovakirdan/torus-snake/internal/games/snake/core"
	"github.com/vovakirdan/torus-snake/internal/platform/tui"
	"github.com/vovakirdan/torus-snake/internal/storage"
)

var (
	flagWidth      int
	flagHeight     int
	flagSquare     int
	flagScale      int
	flagConfig     string
	flagDifficulty string
	flagAutopilot  string
	flagPick       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls:
  W/A/S/D, arrows - Steer
  E               - Speed up
  Q               - Slow down
  F               - Hazard-avoiding autopilot
  T               - Trap-avoiding autopilot
  G               - Food-seeking autopilot
  M               - Manual control
  H/P             - Help and pause (any other key resumes)
  R               - Restart
  Esc/Ctrl+C      - Quit

Difficulty options set the starting move interval:
  easy   - 280ms
  normal - 200ms
  hard   - 110ms

Examples:
  snake play
  snake play --square 12
  snake play -x 40 -y 20 --scale 10
  snake play --autopilot food --difficulty hard
  snake play --pick
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&flagWidth, "width", "x", 0, "Board width in cells (default from config)")
	f.IntVarP(&flagHeight, "height", "y", 0, "Board height in cells (default from config)")
	f.IntVar(&flagSquare, "square", 0, "Square board size; sets both width and height")
	f.IntVarP(&flagScale, "scale", "s", 0, "Cell scale; every 10 is one terminal column (default from config)")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	f.StringVar(&flagAutopilot, "autopilot", "", "Starting autopilot: manual, food, hazard, trap")
	f.BoolVar(&flagPick, "pick", false, "Choose autopilot and speed from a menu before playing")
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadPlayConfig loads the config file and applies the command-line overrides.
func loadPlayConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySnakePreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}

	if flagSquare > 0 {
		cfg.Grid.Width, cfg.Grid.Height = flagSquare, flagSquare
	}
	if flagWidth > 0 {
		cfg.Grid.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Grid.Height = flagHeight
	}
	if flagScale > 0 {
		cfg.Grid.Scale = flagScale
	}
	if flagAutopilot != "" {
		cfg.Autopilot.Mode = flagAutopilot
	}
	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadPlayConfig()
	if err != nil {
		exitf("%v", err)
	}

	logger, logFile, err := newLogger()
	if err != nil {
		exitf("%v", err)
	}
	defer logFile.Close()

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed

	if flagPick {
		mode, err := snakecore.ParseMode(cfg.Autopilot.Mode)
		if err != nil {
			exitf("%v", err)
		}
		preset := config.DifficultyPreset(flagDifficulty)
		if preset == "" {
			preset = config.DifficultyNormal
		}

		sel, err := tui.RunPicker(rt, mode, preset)
		if err != nil {
			exitf("%v", err)
		}
		if sel == nil {
			return
		}
		cfg.Autopilot.Mode = sel.Mode.String()
		if err := config.ApplySnakePreset(&cfg, sel.Difficulty); err != nil {
			exitf("%v", err)
		}
	}

	opts := []snake.Option{snake.WithLogger(logger)}
	if rt.Seed != 0 {
		opts = append(opts, snake.WithSeed(rt.Seed))
	}
	game, err := snake.New(cfg, opts...)
	if err != nil {
		exitf("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "err", err)
		store = nil
	}

	logger.Info("starting", "width", cfg.Grid.Width, "height", cfg.Grid.Height,
		"interval", cfg.Timing.MoveInterval, "autopilot", cfg.Autopilot.Mode)
	runErr := tui.Run(game, store, rt, cfg.Timing.SpeedFactor, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}
