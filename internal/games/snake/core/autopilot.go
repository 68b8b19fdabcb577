package core

import "fmt"

// Mode selects who steers the snake.
type Mode uint8

const (
	Manual Mode = iota
	FoodSeeking
	HazardAvoiding
	TrapAvoiding
)

// Modes lists every mode in display order.
var Modes = []Mode{Manual, FoodSeeking, HazardAvoiding, TrapAvoiding}

// String returns the config/CLI name of the mode.
func (m Mode) String() string {
	switch m {
	case Manual:
		return "manual"
	case FoodSeeking:
		return "food"
	case HazardAvoiding:
		return "hazard"
	case TrapAvoiding:
		return "trap"
	default:
		return "unknown"
	}
}

// Description returns a one-line summary of the mode.
func (m Mode) Description() string {
	switch m {
	case Manual:
		return "player steers"
	case FoodSeeking:
		return "heads for the food, never turns into an obstacle"
	case HazardAvoiding:
		return "dodges obstacles straight ahead, otherwise seeks food"
	case TrapAvoiding:
		return "keeps its tail reachable, otherwise seeks food"
	default:
		return ""
	}
}

// ParseMode parses a mode name. "none" and "" are accepted for Manual,
// "stupid" and "smart" for the hazard and trap modes.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "manual", "none":
		return Manual, nil
	case "food":
		return FoodSeeking, nil
	case "hazard", "stupid":
		return HazardAvoiding, nil
	case "trap", "smart":
		return TrapAvoiding, nil
	}
	return Manual, fmt.Errorf("core: unknown autopilot mode %q", s)
}

// Decider proposes a heading for the coming move. It reads g and b but never
// mutates them. ok is false when it has no opinion.
type Decider func(g *Grid, b *Body, rng Rand) (d Dir, ok bool)

// Policy returns the deciders for m in priority order.
func (m Mode) Policy() []Decider {
	switch m {
	case FoodSeeking:
		return []Decider{SeekFood}
	case HazardAvoiding:
		return []Decider{AvoidHazard, SeekFood}
	case TrapAvoiding:
		return []Decider{AvoidTrap, SeekFood}
	default:
		return nil
	}
}

// Decide evaluates the policy of m; the first decider with an opinion wins.
func Decide(m Mode, g *Grid, b *Body, rng Rand) (Dir, bool) {
	for _, decide := range m.Policy() {
		if d, ok := decide(g, b, rng); ok {
			return d, true
		}
	}
	return b.Heading(), false
}

// IsHazard reports whether moving in d from the head would be fatal.
func IsHazard(g *Grid, b *Body, d Dir) bool {
	return g.At(b.PeekNext(g, d)).Hazard()
}

// SeekFood steers along the periodic shortest offset to the food, fixing
// the vertical axis first. It only proposes a turn onto the other axis and
// drops any turn that leads into an obstacle.
func SeekFood(g *Grid, b *Body, _ Rand) (Dir, bool) {
	if !g.HasFood() {
		return b.Heading(), false
	}

	dx, dy := g.Delta(b.Head(), g.Food())
	cur := b.Heading()

	var want Dir
	switch {
	case dy > 0:
		want = South
	case dy < 0:
		want = North
	case dx > 0:
		want = East
	case dx < 0:
		want = West
	default:
		return cur, false
	}

	if want.Vertical() == cur.Vertical() {
		return cur, false
	}
	if IsHazard(g, b, want) {
		return cur, false
	}
	return want, true
}

// AvoidHazard reacts only when the cell straight ahead is fatal: it turns
// left or right at random and takes the other side if the first is blocked
// too.
func AvoidHazard(g *Grid, b *Body, rng Rand) (Dir, bool) {
	return avoidHazardFrom(g, b, b.Heading(), rng)
}

func avoidHazardFrom(g *Grid, b *Body, heading Dir, rng Rand) (Dir, bool) {
	if !IsHazard(g, b, heading) {
		return heading, false
	}

	first, second := heading.Left(), heading.Right()
	if rng.Intn(2) == 1 {
		first, second = second, first
	}
	if IsHazard(g, b, first) {
		return second, true
	}
	return first, true
}

// OccupiedAround counts walls and snake cells among the eight cells
// surrounding the head.
func OccupiedAround(g *Grid, b *Body) int {
	n := 0
	for _, c := range g.Surrounding(b.Head()) {
		if g.At(c).Hazard() {
			n++
		}
	}
	return n
}

// AvoidTrap rejects headings after which the tail end can no longer be
// reached. It tries straight, then left, then right, in that fixed order.
// If the pick is immediately fatal it falls back to AvoidHazard from the
// original heading, keeping the original heading when that has no opinion.
// With at most one occupied cell around the head no trap is possible and
// it defers to the next policy.
func AvoidTrap(g *Grid, b *Body, rng Rand) (Dir, bool) {
	if OccupiedAround(g, b) <= 1 {
		return b.Heading(), false
	}

	original := b.Heading()
	tail := b.TailEnd()
	safe := func(d Dir) bool {
		if IsHazard(g, b, d) {
			return false
		}
		return SearchReachable(g, b.PeekNext(g, d), tail) == Reachable
	}

	if safe(original) {
		return original, false
	}

	choice := original.Left()
	if !safe(choice) {
		choice = choice.Opposite()
	}

	if IsHazard(g, b, choice) {
		if d, ok := avoidHazardFrom(g, b, original, rng); ok {
			return d, true
		}
		return original, true
	}
	return choice, true
}
