package snake

import (
	"time"

	"github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

// Command is a discrete input to the game. Commands are queued by Handle and
// applied at the start of the next Update, so input never lands mid-move.
type Command interface {
	apply(g *Game)
}

// TurnTo steers the snake in manual mode. A turn back onto the last
// committed heading is ignored.
type TurnTo struct {
	Dir core.Dir
}

// ChangeSpeed multiplies the move interval. Factors below 1 speed the game
// up; non-positive factors are ignored.
type ChangeSpeed struct {
	Factor float64
}

// SetAutopilot switches who steers.
type SetAutopilot struct {
	Mode core.Mode
}

// ToggleHelp pauses the game and shows help, or resumes it.
type ToggleHelp struct{}

// Resume continues a paused game. It does nothing otherwise.
type Resume struct{}

// Restart starts a new game on a fresh board.
type Restart struct{}

// minInterval keeps repeated speed-ups from reaching a zero interval.
const minInterval = time.Millisecond

func (c TurnTo) apply(g *Game) {
	if g.body.WouldReverse(c.Dir) {
		return
	}
	g.queued = c.Dir
	g.hasQueued = true
}

func (c ChangeSpeed) apply(g *Game) {
	if c.Factor <= 0 {
		return
	}
	g.interval = max(minInterval, time.Duration(float64(g.interval)*c.Factor))
	g.sinceMove = min(g.sinceMove, g.interval)
	g.dirty = true
	g.logger.Debug("speed changed", "interval", g.interval)
}

func (c SetAutopilot) apply(g *Game) {
	if c.Mode == g.mode {
		return
	}
	g.logger.Info("autopilot", "from", g.mode, "to", c.Mode)
	g.mode = c.Mode
	g.hasQueued = false
	g.dirty = true
}

func (ToggleHelp) apply(g *Game) {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
		g.showHelp = true
	case StatePaused:
		g.state = StatePlaying
		g.showHelp = false
	default:
		g.showHelp = !g.showHelp
	}
	g.dirty = true
}

func (Resume) apply(g *Game) {
	if g.state != StatePaused {
		return
	}
	g.state = StatePlaying
	g.showHelp = false
	g.dirty = true
}

func (Restart) apply(g *Game) {
	g.logger.Info("restart", "run", g.runID, "score", g.score)
	g.restart()
}
