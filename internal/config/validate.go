package config

import (
	"errors"
	"fmt"
)

// MinWidth is the narrowest board the three-cell starting body fits on
// without overlapping itself.
const MinWidth = 3

// Validate reports the first problem that would make the config unplayable.
func (c SnakeConfig) Validate() error {
	g := c.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.Width < MinWidth {
		return fmt.Errorf("config: grid width must be at least %d, got %d", MinWidth, g.Width)
	}
	if g.Width*g.Height < MinWidth+1 {
		return fmt.Errorf("config: %dx%d grid leaves no room for food", g.Width, g.Height)
	}
	if g.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, got %d", g.Scale)
	}

	spawn := make(map[Wall]bool, MinWidth)
	for i := 0; i < MinWidth; i++ {
		spawn[Wall{X: wrap(g.Width/2-i, g.Width), Y: wrap(g.Height/2, g.Height)}] = true
	}
	for _, w := range g.Walls {
		n := Wall{X: wrap(w.X, g.Width), Y: wrap(w.Y, g.Height)}
		if spawn[n] {
			return fmt.Errorf("config: wall at (%d,%d) overlaps the starting body", w.X, w.Y)
		}
	}
	if g.Width*g.Height-len(dedupe(g.Walls, g.Width, g.Height)) < MinWidth+1 {
		return errors.New("config: walls leave no room for food")
	}

	t := c.Timing
	if t.MoveInterval <= 0 {
		return fmt.Errorf("config: move_interval must be positive, got %s", t.MoveInterval)
	}
	if t.SpeedFactor <= 0 || t.SpeedFactor >= 1 {
		return fmt.Errorf("config: speed_factor must be in (0, 1), got %g", t.SpeedFactor)
	}
	if t.RestartDelay < 0 {
		return fmt.Errorf("config: restart_delay must not be negative, got %s", t.RestartDelay)
	}
	return nil
}

func dedupe(walls []Wall, w, h int) map[Wall]bool {
	set := make(map[Wall]bool, len(walls))
	for _, c := range walls {
		set[Wall{X: wrap(c.X, w), Y: wrap(c.Y, h)}] = true
	}
	return set
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
