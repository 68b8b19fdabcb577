package snake

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

// State is the controller's lifecycle state.
type State uint8

const (
	StatePlaying State = iota
	StatePaused
	StateGameOver
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Finished reports whether the state ends a run.
func (s State) Finished() bool {
	return s == StateGameOver || s == StateWon
}

// Snapshot is a read-only copy of everything a renderer needs, in grid
// coordinates.
type Snapshot struct {
	Width, Height int
	Body          []core.Coord // Head first
	Heading       core.Dir
	Food          core.Coord
	HasFood       bool
	Walls         []core.Coord
	Score         int
	State         State
	Mode          core.Mode
	Interval      time.Duration
	Round         uint64
	FatalRound    uint64 // Round of the fatal move; 0 unless the game is over
	ShowHelp      bool
	RunID         uuid.UUID
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:      g.grid.Width(),
		Height:     g.grid.Height(),
		Body:       g.body.Cells(),
		Heading:    g.body.Heading(),
		Food:       g.grid.Food(),
		HasFood:    g.grid.HasFood(),
		Walls:      g.grid.Walls(),
		Score:      g.score,
		State:      g.state,
		Mode:       g.mode,
		Interval:   g.interval,
		Round:      g.round,
		FatalRound: g.fatalRound,
		ShowHelp:   g.showHelp,
		RunID:      g.runID,
	}
}
