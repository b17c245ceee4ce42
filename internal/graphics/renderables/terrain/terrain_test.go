package terrain

import (
	"testing"

	"chunkview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOriginCentersHeightmap(t *testing.T) {
	hm := &world.Heightmap{Width: 5, Depth: 3, Heights: make([]float32, 15)}
	o := Origin(hm)
	assert.Equal(t, mgl32.Vec3{-2, -1, -1}, o)

	verts := world.TerrainVertices(hm, 4, o)
	minX, maxX := verts[0], verts[0]
	for i := 0; i < len(verts); i += 3 {
		minX = min(minX, verts[i])
		maxX = max(maxX, verts[i])
	}
	assert.Equal(t, float32(-2), minX)
	assert.Equal(t, float32(2), maxX)
}
