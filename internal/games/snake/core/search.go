package core

import (
	"container/heap"
	"fmt"
)

// Reachability is the verdict of a path search.
type Reachability bool

const (
	Unreachable Reachability = false
	Reachable   Reachability = true
)

// String returns the string representation of the verdict.
func (r Reachability) String() string {
	if r {
		return "reachable"
	}
	return "unreachable"
}

// SearchReachable runs a greedy best-first search from start toward target
// over the 4-connected periodic board. Empty and food cells are walkable;
// walls and snake are not. The target is reached once a node adjacent to it
// is expanded, so target itself may be an obstacle (e.g. the tail end).
//
// The frontier is ordered by periodic Manhattan distance to target. Each cell
// is queued at most once. The result says nothing about path length.
func SearchReachable(g *Grid, start, target Coord) Reachability {
	start, target = g.Normalize(start), g.Normalize(target)
	limit := g.Width() + g.Height()

	seen := map[Coord]bool{start: true}
	pq := &frontier{}
	heap.Push(pq, node{at: start, dist: g.Distance(start, target)})

	for pq.Len() > 0 {
		n := heap.Pop(pq).(node)
		if n.dist > limit {
			panic(fmt.Sprintf("core: search distance %d exceeds board bound %d at %v", n.dist, limit, n.at))
		}
		if n.dist == 1 {
			return Reachable
		}

		for _, next := range g.Neighbors(n.at) {
			if seen[next] || !g.At(next).Walkable() {
				continue
			}
			seen[next] = true
			heap.Push(pq, node{at: next, dist: g.Distance(next, target), seq: pq.pushed})
		}
	}

	return Unreachable
}

// node is a frontier entry. seq breaks distance ties in queue order.
type node struct {
	at   Coord
	dist int
	seq  int
}

// frontier is a min-heap on (dist, seq) for container/heap.
type frontier struct {
	items  []node
	pushed int
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	if f.items[i].dist != f.items[j].dist {
		return f.items[i].dist < f.items[j].dist
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) {
	f.items = append(f.items, x.(node))
	f.pushed++
}

func (f *frontier) Pop() any {
	last := len(f.items) - 1
	n := f.items[last]
	f.items = f.items[:last]
	return n
}
