package world

import "fmt"

// VisitPolicy decides what happens to previously visited chunks when the
// camera moves.
type VisitPolicy int

const (
	// PolicyNeighborhood resets the visited set to the neighborhood of the
	// current chunk on every update.
	PolicyNeighborhood VisitPolicy = iota
	// PolicyAccumulate keeps every chunk ever visited. The set grows without bound.
	PolicyAccumulate
)

func (p VisitPolicy) String() string {
	switch p {
	case PolicyNeighborhood:
		return "neighborhood"
	case PolicyAccumulate:
		return "accumulate"
	default:
		return fmt.Sprintf("VisitPolicy(%d)", int(p))
	}
}

// ParseVisitPolicy maps a settings string to a policy.
func ParseVisitPolicy(s string) (VisitPolicy, error) {
	switch s {
	case "neighborhood", "":
		return PolicyNeighborhood, nil
	case "accumulate":
		return PolicyAccumulate, nil
	default:
		return 0, fmt.Errorf("unknown visit policy %q", s)
	}
}

// Tracker maintains the set of chunks eligible for rendering.
type Tracker struct {
	policy  VisitPolicy
	radius  int
	current ChunkCoord
	visited map[ChunkCoord]struct{}
}

// NewTracker creates an empty tracker. radius 1 yields a 3x3 neighborhood.
func NewTracker(policy VisitPolicy, radius int) *Tracker {
	if radius < 0 {
		radius = 0
	}
	return &Tracker{
		policy:  policy,
		radius:  radius,
		visited: make(map[ChunkCoord]struct{}),
	}
}

// Update recomputes the visited set for the chunk the camera is in.
func (t *Tracker) Update(current ChunkCoord) {
	t.current = current
	if t.policy == PolicyNeighborhood {
		clear(t.visited)
	}
	for _, c := range current.Neighborhood(t.radius) {
		t.visited[c] = struct{}{}
	}
}

// Visited returns the visited chunks ordered by X then Z.
func (t *Tracker) Visited() []ChunkCoord {
	out := make([]ChunkCoord, 0, len(t.visited))
	for c := range t.visited {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

func (t *Tracker) Contains(c ChunkCoord) bool {
	_, ok := t.visited[c]
	return ok
}

func (t *Tracker) Len() int { return len(t.visited) }

// Current is the chunk passed to the last Update.
func (t *Tracker) Current() ChunkCoord { return t.current }

func (t *Tracker) Policy() VisitPolicy { return t.policy }
