package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultYaw            = -90.0
	DefaultPitch          = 0.0
	DefaultSpeed          = 2.5
	DefaultSensitivity    = 0.1
	DefaultFastMultiplier = 2.0

	// MaxPitch keeps the camera from flipping over the vertical.
	MaxPitch = 89.0
)

// Movement is the set of movement keys held during a frame.
type Movement uint8

const (
	MoveForward Movement = 1 << iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveFast
)

// Has reports whether all keys in m are set.
func (k Movement) Has(m Movement) bool {
	return k&m == m
}

// Camera is a free-fly camera driven by yaw and pitch in degrees.
// Front, Up and Right are derived and recomputed whenever the angles change.
type Camera struct {
	Position mgl32.Vec3
	WorldUp  mgl32.Vec3

	Yaw   float32
	Pitch float32

	Speed          float32
	Sensitivity    float32
	FastMultiplier float32

	front mgl32.Vec3
	up    mgl32.Vec3
	right mgl32.Vec3
}

// New creates a camera at position looking down -Z.
func New(position mgl32.Vec3) *Camera {
	c := &Camera{
		Position:       position,
		WorldUp:        mgl32.Vec3{0, 1, 0},
		Yaw:            DefaultYaw,
		Pitch:          DefaultPitch,
		Speed:          DefaultSpeed,
		Sensitivity:    DefaultSensitivity,
		FastMultiplier: DefaultFastMultiplier,
	}
	c.updateVectors()
	return c
}

func (c *Camera) Front() mgl32.Vec3 { return c.front }
func (c *Camera) Up() mgl32.Vec3    { return c.up }
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// ProcessKeyboard moves the camera along Front and Right for dt seconds.
func (c *Camera) ProcessKeyboard(keys Movement, dt float32) {
	velocity := c.Speed * dt
	var direction mgl32.Vec3

	if keys.Has(MoveForward) {
		direction = direction.Add(c.front)
	}
	if keys.Has(MoveBackward) {
		direction = direction.Sub(c.front)
	}
	if keys.Has(MoveLeft) {
		direction = direction.Sub(c.right)
	}
	if keys.Has(MoveRight) {
		direction = direction.Add(c.right)
	}
	if keys.Has(MoveFast) {
		velocity *= c.FastMultiplier
	}

	c.Position = c.Position.Add(direction.Mul(velocity))
}

// ProcessMouseMovement turns the camera by cursor offsets in pixels.
// Positive dy looks up.
func (c *Camera) ProcessMouseMovement(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}

	c.updateVectors()
}

// SetOrientation sets yaw and pitch directly, clamping pitch.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	c.Yaw = yaw
	c.Pitch = mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
	c.updateVectors()
}

// ViewMatrix returns the look-at transform for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
