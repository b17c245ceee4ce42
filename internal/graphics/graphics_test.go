package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeVerticesWindOutward(t *testing.T) {
	require.Len(t, CubeVertices, 36*3)

	at := func(i int) mgl32.Vec3 {
		return mgl32.Vec3{CubeVertices[i*3], CubeVertices[i*3+1], CubeVertices[i*3+2]}
	}
	for tri := 0; tri < 12; tri++ {
		a, b, c := at(tri*3), at(tri*3+1), at(tri*3+2)
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, normal.Dot(centroid), float32(0), "triangle %d faces inward", tri)
	}
}

func TestProjectionViewport(t *testing.T) {
	p := NewProjection(800, 600, 45, 0.1, 100)
	assert.InDelta(t, 800.0/600.0, p.AspectRatio, 1e-6)

	p.SetViewport(0, 0)
	assert.InDelta(t, 800.0/600.0, p.AspectRatio, 1e-6)

	p.SetViewport(1000, 500)
	assert.InDelta(t, 2.0, p.AspectRatio, 1e-6)

	want := mgl32.Perspective(mgl32.DegToRad(45), 2, 0.1, 100)
	assert.Equal(t, want, p.Matrix())
}
