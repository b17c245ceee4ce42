package border

import (
	"path/filepath"

	"chunkview/internal/graphics"
	renderer "chunkview/internal/graphics/renderer"
	"chunkview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Color of the outline around the camera's chunk
var Color = mgl32.Vec4{1.0, 0.2, 0.2, 1.0}

// Edges of a unit cube spanning [0,1]^3, as 12 line segments
var boxEdges = []float32{
	// bottom
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1,
	1, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 0, 0,
	// top
	0, 1, 0, 1, 1, 0,
	1, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 1, 0,
	// verticals
	0, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, 0,
	1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1,
}

// Border outlines the chunk the camera is currently in
type Border struct {
	shaderDir string
	layout    world.Layout

	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewBorder(shaderDir string, layout world.Layout) *Border {
	return &Border{shaderDir: shaderDir, layout: layout}
}

// Init reuses the grid shader, which only needs a position attribute
func (b *Border) Init() error {
	var err error
	b.shader, err = graphics.NewShader(
		filepath.Join(b.shaderDir, "grid", "grid.vert"),
		filepath.Join(b.shaderDir, "grid", "grid.frag"),
	)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(boxEdges)*4, gl.Ptr(boxEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

func (b *Border) Render(ctx renderer.RenderContext) {
	pos := ctx.Camera.Position
	c := world.CurrentChunk(pos.X(), pos.Z(), b.layout.ChunkSize)

	b.shader.Use()
	b.shader.SetMatrix4("view", ctx.View)
	b.shader.SetMatrix4("projection", ctx.Proj)
	b.shader.SetMatrix4("model", BoxModel(b.layout, c))
	b.shader.SetVector4("color", Color)

	gl.BindVertexArray(b.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(boxEdges)/3))
	gl.BindVertexArray(0)
	ctx.Stats.DrawCalls++
}

func (b *Border) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}

// BoxModel maps the unit box onto the outer faces of chunk c's cubes.
// Cubes are centered on integer positions, so the box starts half a unit
// before the first cube and is slightly inflated to avoid z-fighting.
func BoxModel(l world.Layout, c world.ChunkCoord) mgl32.Mat4 {
	const pad = 0.01
	size := float32(l.ChunkSize)
	height := float32(l.Layers())
	origin := mgl32.Vec3{
		float32(c.X)*size - 0.5 - pad,
		-0.5 - pad,
		float32(c.Z)*size - 0.5 - pad,
	}
	return mgl32.Translate3D(origin.X(), origin.Y(), origin.Z()).
		Mul4(mgl32.Scale3D(size+2*pad, height+2*pad, size+2*pad))
}
