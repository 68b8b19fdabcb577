package main

import (
	"testing"
	"time"
)

func resetPlayFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagWidth, flagHeight, flagSquare, flagScale = 0, 0, 0, 0
	flagConfig, flagDifficulty, flagAutopilot = "", "", ""
}

func TestLoadPlayConfigOverrides(t *testing.T) {
	resetPlayFlags(t)
	flagSquare = 12
	flagHeight = 9
	flagScale = 10
	flagDifficulty = "hard"
	flagAutopilot = "trap"

	cfg, err := loadPlayConfig()
	if err != nil {
		t.Fatalf("loadPlayConfig() failed: %v", err)
	}
	if cfg.Grid.Width != 12 || cfg.Grid.Height != 9 {
		t.Errorf("grid = %dx%d, expected 12x9", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.Scale != 10 {
		t.Errorf("Scale = %d, expected 10", cfg.Grid.Scale)
	}
	if cfg.Timing.MoveInterval != 110*time.Millisecond {
		t.Errorf("MoveInterval = %v, expected 110ms", cfg.Timing.MoveInterval)
	}
	if cfg.Autopilot.Mode != "trap" {
		t.Errorf("Mode = %q, expected trap", cfg.Autopilot.Mode)
	}
}

func TestLoadPlayConfigDefaults(t *testing.T) {
	resetPlayFlags(t)

	cfg, err := loadPlayConfig()
	if err != nil {
		t.Fatalf("loadPlayConfig() failed: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 20 || cfg.Grid.Scale != 20 {
		t.Errorf("unexpected default grid: %+v", cfg.Grid)
	}
	if cfg.Timing.MoveInterval != 200*time.Millisecond {
		t.Errorf("MoveInterval = %v, expected 200ms", cfg.Timing.MoveInterval)
	}
}

func TestLoadPlayConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		set  func()
	}{
		{"narrow board", func() { flagWidth = 2 }},
		{"unknown difficulty", func() { flagDifficulty = "insane" }},
		{"missing config file", func() { flagConfig = "/nonexistent/snake.yaml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetPlayFlags(t)
			tt.set()
			if _, err := loadPlayConfig(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestModeArg(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{nil, "", false},
		{[]string{"all"}, "", false},
		{[]string{"trap"}, "trap", false},
		{[]string{"smart"}, "trap", false},
		{[]string{"manual"}, "manual", false},
		{[]string{"turbo"}, "", true},
	}

	for _, tt := range tests {
		got, err := modeArg(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("modeArg(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("modeArg(%v) = %q, expected %q", tt.args, got, tt.want)
		}
	}
}
