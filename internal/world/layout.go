package world

// Layout describes how unit cubes fill a chunk.
// Flat chunks hold a single layer at Y=0; cubic chunks stack Size layers from Y=0.
type Layout struct {
	ChunkSize int
	Cubic     bool
}

// Layers is the number of Y layers per chunk.
func (l Layout) Layers() int {
	if l.Cubic {
		return l.ChunkSize
	}
	return 1
}

func (l Layout) CubesPerChunk() int {
	return l.ChunkSize * l.ChunkSize * l.Layers()
}

// Footprint calls fn for every cube position inside chunk c.
func (l Layout) Footprint(c ChunkCoord, fn func(x, y, z int)) {
	x0, z0 := c.X*l.ChunkSize, c.Z*l.ChunkSize
	layers := l.Layers()
	for x := x0; x < x0+l.ChunkSize; x++ {
		for z := z0; z < z0+l.ChunkSize; z++ {
			for y := 0; y < layers; y++ {
				fn(x, y, z)
			}
		}
	}
}
