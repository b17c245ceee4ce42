package renderer

import (
	"chunkview/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameStats collects counters for the frame being rendered
type FrameStats struct {
	DrawCalls     int
	VisibleChunks int
}

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Camera *camera.Camera
	DT     float64
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	Stats  *FrameStats
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
