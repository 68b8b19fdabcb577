// Package config provides YAML-based configuration loading, presets and
// validation for the snake game.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Timing    TimingConfig    `yaml:"timing"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
}

// GridConfig defines the board.
type GridConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"` // Tile size in pixels; terminal columns per cell = scale/10
	Walls  []Wall `yaml:"walls"`
}

// Wall is a fixed obstacle cell.
type Wall struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines movement pacing.
type TimingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	SpeedFactor  float64       `yaml:"speed_factor"`  // Interval multiplier for one "speed up" step
	RestartDelay time.Duration `yaml:"restart_delay"` // Autopilot restart delay after game over
}

// AutopilotConfig selects the autopilot mode a game starts in.
type AutopilotConfig struct {
	Mode string `yaml:"mode"`
}

// CellColumns returns how many terminal columns one grid cell occupies.
func (g GridConfig) CellColumns() int {
	return max(1, g.Scale/10)
}

// DifficultyPreset represents a named difficulty level. Presets only change
// the move interval.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// IntervalForPreset returns the move interval for a preset.
func IntervalForPreset(preset DifficultyPreset) (time.Duration, error) {
	switch preset {
	case DifficultyEasy:
		return 280 * time.Millisecond, nil
	case DifficultyNormal:
		return 200 * time.Millisecond, nil
	case DifficultyHard:
		return 110 * time.Millisecond, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}
