package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// CubeVertices is a unit cube centered on the origin, 36 positions with
// counter-clockwise front faces.
var CubeVertices = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5, -0.5,

	// Left face
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,

	// Right face
	0.5, 0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5,

	// Top face
	-0.5, 0.5, -0.5, -0.5, 0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5, -0.5, 0.5, -0.5,

	// Bottom face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
}

// Mesh is a position-only vertex buffer uploaded once and drawn many times.
type Mesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// NewMesh uploads xyz triplets to a static buffer.
func NewMesh(vertices []float32) *Mesh {
	m := &Mesh{count: int32(len(vertices) / 3)}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// VertexCount is the number of vertices in the buffer.
func (m *Mesh) VertexCount() int32 { return m.count }

// Bind makes the mesh current for subsequent DrawBound calls.
func (m *Mesh) Bind() {
	gl.BindVertexArray(m.vao)
}

// DrawBound issues one draw call for the currently bound mesh.
func (m *Mesh) DrawBound() {
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

func (m *Mesh) Draw() {
	m.Bind()
	m.DrawBound()
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
}
