package grid

import (
	"path/filepath"

	"chunkview/internal/graphics"
	renderer "chunkview/internal/graphics/renderer"
	"chunkview/internal/profiling"
	"chunkview/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// FillColor is the solid color of every cube.
	FillColor = mgl32.Vec4{0.0, 0.5, 0.2, 1.0}

	evenEdgeColor = mgl32.Vec4{1.0, 1.0, 1.0, 1.0}
	oddEdgeColor  = mgl32.Vec4{1.0, 0.75, 0.2, 1.0}
)

// EdgeColor is the wireframe color for cubes of chunk c. Neighboring chunks
// alternate like a checkerboard so chunk borders stand out.
func EdgeColor(c world.ChunkCoord) mgl32.Vec4 {
	if c.Parity() == 0 {
		return evenEdgeColor
	}
	return oddEdgeColor
}

// drawer issues the per-cube draw calls.
type drawer interface {
	SetModel(m mgl32.Mat4)
	DrawFilled(color mgl32.Vec4)
	DrawWireframe(color mgl32.Vec4)
}

// drawChunks draws every cube of every chunk, filled then outlined, and
// returns the number of draw calls issued.
func drawChunks(d drawer, layout world.Layout, chunks []world.ChunkCoord) int {
	calls := 0
	for _, c := range chunks {
		edge := EdgeColor(c)
		layout.Footprint(c, func(x, y, z int) {
			d.SetModel(mgl32.Translate3D(float32(x), float32(y), float32(z)))
			d.DrawFilled(FillColor)
			d.DrawWireframe(edge)
			calls += 2
		})
	}
	return calls
}

// Grid renders unit cubes in the chunks around the camera
type Grid struct {
	shaderDir string
	layout    world.Layout
	tracker   *world.Tracker

	shader *graphics.Shader
	cube   *graphics.Mesh
}

// NewGrid creates a grid renderable. GL resources are created in Init.
func NewGrid(shaderDir string, layout world.Layout, tracker *world.Tracker) *Grid {
	return &Grid{
		shaderDir: shaderDir,
		layout:    layout,
		tracker:   tracker,
	}
}

// Init compiles the grid shader and uploads the cube mesh
func (g *Grid) Init() error {
	shader, err := graphics.NewShader(
		filepath.Join(g.shaderDir, "grid", "grid.vert"),
		filepath.Join(g.shaderDir, "grid", "grid.frag"),
	)
	if err != nil {
		return err
	}
	g.shader = shader
	g.cube = graphics.NewMesh(graphics.CubeVertices)
	return nil
}

// Render updates the visited chunks from the camera position and draws them
func (g *Grid) Render(ctx renderer.RenderContext) {
	defer profiling.Track("grid.Render")()

	pos := ctx.Camera.Position
	g.tracker.Update(world.CurrentChunk(pos.X(), pos.Z(), g.layout.ChunkSize))
	chunks := g.tracker.Visited()

	g.shader.Use()
	g.shader.SetMatrix4("view", ctx.View)
	g.shader.SetMatrix4("projection", ctx.Proj)
	g.cube.Bind()

	calls := drawChunks(glDrawer{shader: g.shader, cube: g.cube}, g.layout, chunks)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)

	ctx.Stats.DrawCalls += calls
	ctx.Stats.VisibleChunks += len(chunks)
}

// Dispose releases the mesh and shader
func (g *Grid) Dispose() {
	if g.cube != nil {
		g.cube.Delete()
	}
	if g.shader != nil {
		g.shader.Delete()
	}
}

type glDrawer struct {
	shader *graphics.Shader
	cube   *graphics.Mesh
}

func (d glDrawer) SetModel(m mgl32.Mat4) {
	d.shader.SetMatrix4("model", m)
}

func (d glDrawer) DrawFilled(color mgl32.Vec4) {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	d.shader.SetVector4("color", color)
	d.cube.DrawBound()
}

func (d glDrawer) DrawWireframe(color mgl32.Vec4) {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	d.shader.SetVector4("color", color)
	d.cube.DrawBound()
}
