package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	// Mouse position callback
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if app.paused {
			return
		}
		dx, dy := app.mouse.Offset(xpos, ypos)
		app.camera.ProcessMouseMovement(dx, dy)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		app.renderer.UpdateViewport(winW, winH)
	})

	// Focus callback
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused && !app.paused {
			app.SetPaused(true)
		}
	})
}
