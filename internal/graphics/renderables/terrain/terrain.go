package terrain

import (
	"path/filepath"

	"chunkview/internal/graphics"
	renderer "chunkview/internal/graphics/renderer"
	"chunkview/internal/profiling"
	"chunkview/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is the solid color of the height-map surface
var Color = mgl32.Vec4{0.45, 0.36, 0.25, 1.0}

// Terrain draws a static mesh built from a height-map
type Terrain struct {
	shaderDir string
	heightmap *world.Heightmap
	scale     float32
	origin    mgl32.Vec3

	shader *graphics.Shader
	mesh   *graphics.Mesh
}

// NewTerrain centers the height-map on the world origin just below the cube layer.
func NewTerrain(shaderDir string, hm *world.Heightmap, scale float32) *Terrain {
	return &Terrain{
		shaderDir: shaderDir,
		heightmap: hm,
		scale:     scale,
		origin:    Origin(hm),
	}
}

// Origin is where grid cell (0,0) of hm is placed.
func Origin(hm *world.Heightmap) mgl32.Vec3 {
	return mgl32.Vec3{-float32(hm.Width-1) / 2, -1, -float32(hm.Depth-1) / 2}
}

// Init compiles the terrain shader and uploads the mesh once
func (t *Terrain) Init() error {
	shader, err := graphics.NewShader(
		filepath.Join(t.shaderDir, "terrain", "terrain.vert"),
		filepath.Join(t.shaderDir, "terrain", "terrain.frag"),
	)
	if err != nil {
		return err
	}
	t.shader = shader
	t.mesh = graphics.NewMesh(world.TerrainVertices(t.heightmap, t.scale, t.origin))
	return nil
}

func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("terrain.Render")()

	t.shader.Use()
	t.shader.SetMatrix4("view", ctx.View)
	t.shader.SetMatrix4("projection", ctx.Proj)
	t.shader.SetFloat("maxHeight", t.scale)
	t.shader.SetVector4("color", Color)
	t.mesh.Draw()
	ctx.Stats.DrawCalls++
}

func (t *Terrain) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}
