package game

import (
	"fmt"
	"log/slog"
	"time"

	"chunkview/internal/camera"
	"chunkview/internal/config"
	"chunkview/internal/graphics"
	"chunkview/internal/graphics/renderables/border"
	"chunkview/internal/graphics/renderables/grid"
	"chunkview/internal/graphics/renderables/terrain"
	"chunkview/internal/graphics/renderer"
	"chunkview/internal/input"
	"chunkview/internal/profiling"
	"chunkview/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const slowFrame = 50 * time.Millisecond

// App owns the window, the camera and every GPU resource for the lifetime of the process
type App struct {
	window       *glfw.Window
	camera       *camera.Camera
	renderer     *renderer.Renderer
	inputManager *input.InputManager
	mouse        input.MouseTracker
	fpsLimiter   *FPSLimiter

	paused   bool
	lastTime time.Time
}

// NewApp builds the scene described by s. The window's context must be current.
func NewApp(window *glfw.Window, s config.Settings) (*App, error) {
	policy, err := world.ParseVisitPolicy(s.Chunks.VisitPolicy)
	if err != nil {
		return nil, err
	}

	cam := camera.New(mgl32.Vec3(s.Camera.Start))
	cam.Speed = s.Camera.Speed
	cam.Sensitivity = s.Camera.Sensitivity
	cam.FastMultiplier = s.Camera.FastMultiplier

	layout := world.Layout{ChunkSize: s.Chunks.Size, Cubic: s.Chunks.Cubic}
	renderables := []renderer.Renderable{
		grid.NewGrid(s.Render.ShaderDir, layout, world.NewTracker(policy, s.Chunks.VisitRadius)),
		border.NewBorder(s.Render.ShaderDir, layout),
	}

	hm, err := loadTerrain(s.Terrain)
	if err != nil {
		return nil, err
	}
	if hm != nil {
		renderables = append(renderables, terrain.NewTerrain(s.Render.ShaderDir, hm, s.Terrain.Scale))
	}

	winW, winH := window.GetSize()
	proj := graphics.NewProjection(winW, winH, s.Render.FOV, s.Render.NearPlane, s.Render.FarPlane)
	r, err := renderer.NewRenderer(proj, renderables...)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	slog.Info("scene ready",
		"chunk_size", layout.ChunkSize,
		"cubic", layout.Cubic,
		"policy", policy,
		"radius", s.Chunks.VisitRadius,
	)

	app := &App{
		window:       window,
		camera:       cam,
		renderer:     r,
		inputManager: input.NewInputManager(),
		fpsLimiter:   NewFPSLimiter(s.Render.FPSLimit),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(app)
	return app, nil
}

// loadTerrain returns nil when no terrain is configured
func loadTerrain(ts config.TerrainSettings) (*world.Heightmap, error) {
	switch {
	case ts.Heightmap != "":
		hm, err := world.LoadHeightmap(ts.Heightmap)
		if err != nil {
			return nil, err
		}
		slog.Info("heightmap loaded", "path", ts.Heightmap, "width", hm.Width, "depth", hm.Depth)
		return hm, nil
	case ts.Procedural:
		slog.Info("generating heightmap", "seed", ts.Seed, "size", ts.Size)
		return world.GenerateHeightmap(ts.Size, ts.Size, world.DefaultNoiseParams(ts.Seed)), nil
	default:
		return nil, nil
	}
}

// Run renders frames until the window is closed
func (a *App) Run() {
	frames := 0
	lastFPSCheck := time.Now()

	for !a.window.ShouldClose() {
		a.tick()
		frames++

		if time.Since(lastFPSCheck) >= time.Second {
			stats := a.renderer.Stats()
			slog.Debug("frame stats",
				"fps", frames,
				"draw_calls", stats.DrawCalls,
				"chunks", stats.VisibleChunks,
				"position", a.camera.Position,
			)
			frames = 0
			lastFPSCheck = time.Now()
		}
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(input.ActionPause) {
		a.SetPaused(!a.paused)
	}
	if !a.paused {
		a.camera.ProcessKeyboard(a.inputManager.Movement(), float32(dt))
	}

	a.renderer.Render(a.camera, dt)
	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if took := time.Since(now); took > slowFrame {
		slog.Warn("slow frame", "took", took, "top", profiling.TopN(3))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

// SetPaused releases the cursor while paused and recaptures it on resume
func (a *App) SetPaused(paused bool) {
	a.paused = paused
	if paused {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		a.inputManager.ReleaseAll()
	} else {
		a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		a.mouse.Reset()
	}
}

// Close releases GPU resources. The window is destroyed by the caller.
func (a *App) Close() {
	a.renderer.Dispose()
}
