// Package snake runs a game of snake on a toroidal grid: it owns the board
// and the body, resolves one move per interval and applies player or
// autopilot steering.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

// Game is the snake controller. It is not safe for concurrent use; the
// platform calls Handle and Update from its single update loop.
type Game struct {
	cfg    config.SnakeConfig
	rng    *rand.Rand
	logger *log.Logger

	grid *core.Grid
	body *core.Body

	mode      core.Mode
	state     State
	interval  time.Duration
	sinceMove time.Duration
	sinceOver time.Duration // Time spent in GameOver, for the autopilot restart

	round      uint64
	fatalRound uint64
	score      int
	showHelp   bool
	dirty      bool
	runID      uuid.UUID

	pending   []Command
	queued    core.Dir
	hasQueued bool
}

// Option configures a Game.
type Option func(*Game)

// WithSeed seeds food placement and autopilot tie-breaking.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// New validates cfg and starts a game in the configured autopilot mode.
func New(cfg config.SnakeConfig, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	mode, err := core.ParseMode(cfg.Autopilot.Mode)
	if err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		mode:     mode,
		interval: cfg.Timing.MoveInterval,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.restart()
	return g, nil
}

// restart lays out a fresh board. Mode and speed carry over.
func (g *Game) restart() {
	g.grid = core.NewGrid(g.cfg.Grid.Width, g.cfg.Grid.Height)
	for _, w := range g.cfg.Grid.Walls {
		g.grid.SetWall(core.C(w.X, w.Y))
	}
	g.body = core.SpawnBody(g.grid)
	g.grid.PlaceFood(g.rng)

	g.state = StatePlaying
	g.sinceMove = 0
	g.sinceOver = 0
	g.round = 0
	g.fatalRound = 0
	g.score = 0
	g.showHelp = false
	g.hasQueued = false
	g.dirty = true
	g.runID = uuid.New()

	g.logger.Debug("new game", "run", g.runID, "mode", g.mode,
		"width", g.grid.Width(), "height", g.grid.Height())
}

// Handle queues a command for the next Update.
func (g *Game) Handle(cmd Command) {
	g.pending = append(g.pending, cmd)
}

// Update drains queued commands and advances the game clock by dt,
// resolving at most one move.
func (g *Game) Update(dt time.Duration) {
	g.drain()

	switch g.state {
	case StatePaused, StateWon:
		return

	case StateGameOver:
		if g.mode == core.Manual {
			return
		}
		g.sinceOver += dt
		if g.sinceOver >= g.cfg.Timing.RestartDelay {
			g.logger.Info("autopilot restart", "run", g.runID, "score", g.score)
			g.restart()
		}
		return
	}

	g.sinceMove += dt
	if g.sinceMove < g.interval {
		return
	}
	// A long stall still resolves a single move; keep at most one interval
	// of backlog for the next call.
	g.sinceMove = min(g.sinceMove-g.interval, g.interval)
	g.move()
}

func (g *Game) drain() {
	cmds := g.pending
	g.pending = nil
	for _, cmd := range cmds {
		cmd.apply(g)
	}
}

// move resolves one round: steer, classify the next cell, then commit.
func (g *Game) move() {
	g.round++
	g.dirty = true

	// A queued manual turn only counts for this move
	queued := g.hasQueued
	g.hasQueued = false

	if g.mode == core.Manual {
		if queued {
			g.body.Turn(g.queued)
		}
	} else if d, ok := core.Decide(g.mode, g.grid, g.body, g.rng); ok {
		g.body.Turn(d)
	}

	next := g.body.Peek(g.grid)
	switch cell := g.grid.At(next); cell {
	case core.Snake, core.Wall:
		g.state = StateGameOver
		g.fatalRound = g.round
		g.sinceOver = 0
		g.logger.Info("game over", "run", g.runID, "score", g.score,
			"round", g.round, "hit", cell, "at", next, "mode", g.mode)

	case core.Food:
		g.body.Grow()
		if g.grid.EmptyCount() == 0 {
			// The food sits on the last free cell
			g.body.Step(g.grid)
			g.grid.RemoveFood()
			g.state = StateWon
			g.logger.Info("board filled", "run", g.runID, "score", g.score+1, "round", g.round)
		} else {
			g.grid.PlaceFood(g.rng)
			g.body.Step(g.grid)
		}
		g.score++

	default:
		g.body.Step(g.grid)
	}
}

// Dirty reports whether the game changed since the last ClearDirty.
func (g *Game) Dirty() bool {
	return g.dirty
}

// ClearDirty marks the current state as drawn.
func (g *Game) ClearDirty() {
	g.dirty = false
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Score returns the number of food cells eaten this run.
func (g *Game) Score() int {
	return g.score
}

// Mode returns the active autopilot mode.
func (g *Game) Mode() core.Mode {
	return g.mode
}

// RunID identifies the current run; it changes on every restart.
func (g *Game) RunID() uuid.UUID {
	return g.runID
}
