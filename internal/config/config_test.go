package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	// yaml decodes "walls: []" to an empty slice
	cfg.Grid.Walls = nil
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 12
  walls:
    - {x: 1, y: 1}
    - {x: 2, y: 1}
timing:
  move_interval: 150ms
autopilot:
  mode: trap
`)

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Grid.Width != 12 {
		t.Errorf("Width = %d, expected 12", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 20 {
		t.Errorf("Height = %d, expected default 20", cfg.Grid.Height)
	}
	if len(cfg.Grid.Walls) != 2 || cfg.Grid.Walls[1] != (Wall{X: 2, Y: 1}) {
		t.Errorf("Walls = %v", cfg.Grid.Walls)
	}
	if cfg.Timing.MoveInterval != 150*time.Millisecond {
		t.Errorf("MoveInterval = %s, expected 150ms", cfg.Timing.MoveInterval)
	}
	if cfg.Timing.RestartDelay != 2*time.Second {
		t.Errorf("RestartDelay = %s, expected default 2s", cfg.Timing.RestartDelay)
	}
	if cfg.Autopilot.Mode != "trap" {
		t.Errorf("Mode = %q, expected trap", cfg.Autopilot.Mode)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	path := writeConfig(t, "grid: [not, a, map]\n")
	if _, err := LoadSnake(path); err == nil {
		t.Error("expected an error for a malformed custom config")
	}
}

func TestLoadUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".snake", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("grid:\n  height: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Height != 9 || cfg.Grid.Width != 20 {
		t.Errorf("grid = %dx%d, expected 20x9", cfg.Grid.Width, cfg.Grid.Height)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		expected time.Duration
	}{
		{DifficultyEasy, 280 * time.Millisecond},
		{DifficultyNormal, 200 * time.Millisecond},
		{DifficultyHard, 110 * time.Millisecond},
		{"", 175 * time.Millisecond},
	}

	for _, tt := range tests {
		cfg := DefaultSnakeConfig()
		cfg.Timing.MoveInterval = 175 * time.Millisecond
		if err := ApplySnakePreset(&cfg, tt.preset); err != nil {
			t.Fatalf("ApplySnakePreset(%q) failed: %v", tt.preset, err)
		}
		if cfg.Timing.MoveInterval != tt.expected {
			t.Errorf("preset %q: interval = %s, expected %s", tt.preset, cfg.Timing.MoveInterval, tt.expected)
		}
		if !reflect.DeepEqual(cfg.Grid, DefaultSnakeConfig().Grid) {
			t.Errorf("preset %q changed the grid", tt.preset)
		}
	}

	cfg := DefaultSnakeConfig()
	if err := ApplySnakePreset(&cfg, "fixed"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SnakeConfig)
		wantErr string
	}{
		{"default", func(*SnakeConfig) {}, ""},
		{"zero width", func(c *SnakeConfig) { c.Grid.Width = 0 }, "positive"},
		{"negative height", func(c *SnakeConfig) { c.Grid.Height = -3 }, "positive"},
		{"too narrow", func(c *SnakeConfig) { c.Grid.Width = 2 }, "at least"},
		{"no room for food", func(c *SnakeConfig) { c.Grid.Width, c.Grid.Height = 3, 1 }, "no room"},
		{"smallest playable", func(c *SnakeConfig) { c.Grid.Width, c.Grid.Height = 4, 1 }, ""},
		{"zero scale", func(c *SnakeConfig) { c.Grid.Scale = 0 }, "scale"},
		{"wall on spawn", func(c *SnakeConfig) { c.Grid.Walls = []Wall{{X: 9, Y: 10}} }, "starting body"},
		{"wrapped wall on spawn", func(c *SnakeConfig) { c.Grid.Walls = []Wall{{X: 30, Y: -10}} }, "starting body"},
		{"wall elsewhere", func(c *SnakeConfig) { c.Grid.Walls = []Wall{{X: 0, Y: 0}} }, ""},
		{"walls fill board", func(c *SnakeConfig) {
			c.Grid.Width, c.Grid.Height = 4, 2
			c.Grid.Walls = []Wall{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}}
		}, "walls leave"},
		{"zero interval", func(c *SnakeConfig) { c.Timing.MoveInterval = 0 }, "move_interval"},
		{"speed factor one", func(c *SnakeConfig) { c.Timing.SpeedFactor = 1 }, "speed_factor"},
		{"negative restart", func(c *SnakeConfig) { c.Timing.RestartDelay = -time.Second }, "restart_delay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, expected it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCellColumns(t *testing.T) {
	tests := []struct{ scale, expected int }{
		{20, 2},
		{10, 1},
		{5, 1},
		{35, 3},
	}
	for _, tt := range tests {
		g := GridConfig{Scale: tt.scale}
		if got := g.CellColumns(); got != tt.expected {
			t.Errorf("CellColumns() with scale %d = %d, expected %d", tt.scale, got, tt.expected)
		}
	}
}
