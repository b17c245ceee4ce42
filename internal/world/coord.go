package world

import (
	"math"
	"sort"
)

// DefaultChunkSize is the edge length of a chunk in unit cubes.
const DefaultChunkSize = 10

// ChunkCoord identifies a chunk column on the XZ plane.
type ChunkCoord struct {
	X, Z int
}

// CurrentChunk returns the chunk containing world position (x, z).
// Negative positions round toward negative infinity, so x=-1 with size 10
// lands in chunk -1.
func CurrentChunk(x, z float32, size int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(int(math.Floor(float64(x))), size),
		Z: floorDiv(int(math.Floor(float64(z))), size),
	}
}

// Neighborhood returns the (2*radius+1)^2 chunks centered on c.
func (c ChunkCoord) Neighborhood(radius int) []ChunkCoord {
	side := 2*radius + 1
	out := make([]ChunkCoord, 0, side*side)
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			out = append(out, ChunkCoord{X: c.X + dx, Z: c.Z + dz})
		}
	}
	return out
}

// Parity is 0 for chunks on the "even" squares of a checkerboard and 1 otherwise.
func (c ChunkCoord) Parity() int {
	return (c.X + c.Z) & 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func sortCoords(cs []ChunkCoord) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].X != cs[j].X {
			return cs[i].X < cs[j].X
		}
		return cs[i].Z < cs[j].Z
	})
}
