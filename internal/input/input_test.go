package input

import (
	"testing"

	"chunkview/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestMovementFromKeys(t *testing.T) {
	im := NewInputManager()
	assert.Equal(t, camera.Movement(0), im.Movement())

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeftShift, glfw.Repeat)
	assert.Equal(t, camera.MoveForward|camera.MoveRight|camera.MoveFast, im.Movement())

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	assert.Equal(t, camera.MoveRight|camera.MoveFast, im.Movement())

	im.ReleaseAll()
	assert.Equal(t, camera.Movement(0), im.Movement())
}

func TestArrowKeysShareActions(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyDown, glfw.Press)
	assert.True(t, im.IsActive(ActionMoveBackward))
	assert.Equal(t, camera.MoveBackward, im.Movement())
}

func TestJustPressedEdge(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	assert.True(t, im.JustPressed(ActionPause))

	im.PostUpdate()
	assert.False(t, im.JustPressed(ActionPause))
	assert.True(t, im.IsActive(ActionPause))

	// key repeat while held is not a new press
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Repeat)
	assert.False(t, im.JustPressed(ActionPause))

	assert.False(t, im.IsActive(ActionCount))
	assert.False(t, im.JustPressed(Action(-1)))
}

func TestUnboundKeysIgnored(t *testing.T) {
	im := NewInputManager()
	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyF12, glfw.Press)
	assert.Equal(t, camera.Movement(0), im.Movement())
}

func TestMouseTracker(t *testing.T) {
	var mt MouseTracker
	dx, dy := mt.Offset(400, 300)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	dx, dy = mt.Offset(410, 280)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(20), dy)

	mt.Reset()
	dx, dy = mt.Offset(0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
