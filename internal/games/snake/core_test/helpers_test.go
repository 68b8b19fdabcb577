package core_test

import (
	"github.com/vovakirdan/torus-snake/internal/games/snake/core"
)

// fixedRand always returns the same value modulo n.
type fixedRand int

func (r fixedRand) Intn(n int) int {
	return int(r) % n
}

// board builds a w x h grid with the given walls and a body laid out from
// head-first cells.
func board(w, h int, cells []core.Coord, heading core.Dir, walls ...core.Coord) (*core.Grid, *core.Body) {
	g := core.NewGrid(w, h)
	for _, c := range walls {
		g.SetWall(c)
	}
	b := core.NewBody(cells, heading)
	b.Place(g)
	return g, b
}
