package renderer

import (
	"fmt"

	"chunkview/internal/camera"
	"chunkview/internal/graphics"
	"chunkview/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
	stats       FrameStats
}

// NewRenderer configures GL state and initializes the given renderables in order.
// On failure the renderables initialized so far are disposed.
func NewRenderer(proj *graphics.Projection, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	r := &Renderer{projection: proj}
	for _, rb := range rs {
		if err := rb.Init(); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("init %T: %w", rb, err)
		}
		r.renderables = append(r.renderables, rb)
	}
	return r, nil
}

// Render clears the frame and draws every renderable from the camera's point of view
func (r *Renderer) Render(cam *camera.Camera, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.1, 0.1, 0.12, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.stats = FrameStats{}
	ctx := RenderContext{
		Camera: cam,
		DT:     dt,
		View:   cam.ViewMatrix(),
		Proj:   r.projection.Matrix(),
		Stats:  &r.stats,
	}

	for _, rb := range r.renderables {
		rb.Render(ctx)
	}
}

// Stats returns the counters of the last rendered frame
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// UpdateViewport updates the projection's aspect ratio
func (r *Renderer) UpdateViewport(width, height int) {
	r.projection.SetViewport(width, height)
}
