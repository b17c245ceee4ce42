package input

import (
	"chunkview/internal/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionMoveFast
	ActionPause
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and tracks their state.
// GLFW delivers events on the main thread during PollEvents, so no locking is needed.
type InputManager struct {
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyLeftShift, ActionMoveFast)
	im.BindKey(glfw.KeyEscape, ActionPause)
	im.BindKey(glfw.KeyQ, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event from the GLFW key callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	actions, ok := im.keyToActions[key]
	if !ok {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// PostUpdate must be called at the end of each frame to reset edge detection
func (im *InputManager) PostUpdate() {
	im.justPressed = [ActionCount]bool{}
}

// ReleaseAll clears held state, e.g. when the window loses focus
func (im *InputManager) ReleaseAll() {
	im.currentState = [ActionCount]bool{}
	im.justPressed = [ActionCount]bool{}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.justPressed[action]
}

// Movement converts the held movement actions to camera keys
func (im *InputManager) Movement() camera.Movement {
	var m camera.Movement
	if im.IsActive(ActionMoveForward) {
		m |= camera.MoveForward
	}
	if im.IsActive(ActionMoveBackward) {
		m |= camera.MoveBackward
	}
	if im.IsActive(ActionMoveLeft) {
		m |= camera.MoveLeft
	}
	if im.IsActive(ActionMoveRight) {
		m |= camera.MoveRight
	}
	if im.IsActive(ActionMoveFast) {
		m |= camera.MoveFast
	}
	return m
}

// MouseTracker turns absolute cursor positions into per-event offsets.
// The first sample after Reset only establishes the reference point.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Reset discards the reference point, e.g. after the cursor was released
func (mt *MouseTracker) Reset() {
	mt.primed = false
}

// Offset returns the movement since the previous sample. dy is positive when
// the cursor moves up the screen.
func (mt *MouseTracker) Offset(xpos, ypos float64) (dx, dy float32) {
	if !mt.primed {
		mt.lastX, mt.lastY = xpos, ypos
		mt.primed = true
		return 0, 0
	}
	dx = float32(xpos - mt.lastX)
	dy = float32(mt.lastY - ypos)
	mt.lastX, mt.lastY = xpos, ypos
	return dx, dy
}
