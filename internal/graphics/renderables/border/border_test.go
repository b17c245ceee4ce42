package border

import (
	"testing"

	"chunkview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestBoxModelEnclosesChunk(t *testing.T) {
	layout := world.Layout{ChunkSize: 10}
	m := BoxModel(layout, world.ChunkCoord{X: -1, Z: 2})

	lo := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	hi := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})

	// cubes of chunk (-1,2) are centered on x in [-10,-1], z in [20,29]
	assert.InDelta(t, -10.51, lo.X(), 1e-4)
	assert.InDelta(t, -0.51, lo.Y(), 1e-4)
	assert.InDelta(t, 19.49, lo.Z(), 1e-4)
	assert.InDelta(t, -0.49, hi.X(), 1e-4)
	assert.InDelta(t, 0.51, hi.Y(), 1e-4)
	assert.InDelta(t, 29.51, hi.Z(), 1e-4)
}

func TestBoxModelCubicHeight(t *testing.T) {
	m := BoxModel(world.Layout{ChunkSize: 4, Cubic: true}, world.ChunkCoord{})
	top := m.Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, 3.51, top.Y(), 1e-4)
}

func TestBoxEdgesAreSegments(t *testing.T) {
	assert.Len(t, boxEdges, 12*2*3)
}
