package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration, used when no file
// is found and the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
			Scale:  20,
		},
		Timing: TimingConfig{
			MoveInterval: 200 * time.Millisecond,
			SpeedFactor:  0.8,
			RestartDelay: 2 * time.Second,
		},
		Autopilot: AutopilotConfig{
			Mode: "manual",
		},
	}
}
