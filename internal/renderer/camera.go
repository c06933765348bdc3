// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	// HOT DATA - Accessed every frame for view/projection calculations
	Position   mgl32.Vec3 // Camera position in world space
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle (vertical rotation)
	Yaw        float32    // Yaw angle (horizontal rotation)

	// COLD DATA - Configuration and input handling, accessed less frequently
	WorldUp      mgl32.Vec3 // World up vector (usually (0,1,0))
	Speed        float32    // Movement speed
	Sensitivity  float32    // Mouse sensitivity
	Fov          float32    // Vertical field of view in degrees
	Near         float32    // Near clipping plane
	Far          float32    // Far clipping plane
	AspectRatio  float32    // Screen aspect ratio (width / height)
	LastX, LastY float32    // Last mouse position
	InvertMouse  bool       // Invert mouse Y axis
	firstMouse   bool       // First mouse movement flag

	// Identification
	Name     string // Camera name for diagnostics
	IsActive bool   // Whether this is the active camera
}

func NewDefaultCamera(width int32, height int32) *Camera {
	camera := Camera{
		Position:    mgl32.Vec3{0, 20, 100},
		Front:       mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         -90.0,
		Speed:       70,
		Sensitivity: 0.1,
		Fov:         60.0,
		Near:        0.1,
		Far:         10000.0,
		LastX:       float32(width) / 2,
		LastY:       float32(height) / 2,
		AspectRatio: float32(width) / float32(height),
		firstMouse:  true,
		InvertMouse: true,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// Setter methods that automatically update projection
func (c *Camera) SetNear(near float32) {
	c.Near = near
	c.UpdateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.Far = far
	c.UpdateProjection()
}

func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	view := mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
	return c.Projection.Mul4(view)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

// ViewportToWorld maps a normalized viewport coordinate (u,v in [0,1]) at
// the given view depth to a world space point. The horizon locator relies
// on this being exact for the frustum described by Fov/AspectRatio.
func (c *Camera) ViewportToWorld(u, v, depth float32) mgl32.Vec3 {
	halfH := depth * float32(math.Tan(float64(mgl32.DegToRad(c.Fov)/2)))
	halfW := halfH * c.AspectRatio

	p := c.Position.Add(c.Front.Mul(depth))
	p = p.Add(c.Right.Mul((2*u - 1) * halfW))
	return p.Add(c.Up.Mul((2*v - 1) * halfH))
}

// Eye selects one of the stereo viewpoints.
type Eye int

const (
	EyeCenter Eye = iota
	EyeLeft
	EyeRight
)

// EyeView is a per-eye view of the camera: the camera shifted along its
// right axis by half the eye separation. It satisfies the horizon
// package's ViewProjector.
type EyeView struct {
	cam    *Camera
	offset mgl32.Vec3
}

func (e EyeView) ViewportToWorld(u, v, depth float32) mgl32.Vec3 {
	return e.cam.ViewportToWorld(u, v, depth).Add(e.offset)
}

// EyeProjector returns the projector for one eye. ipd is the eye
// separation in world units; EyeCenter ignores it.
func (c *Camera) EyeProjector(eye Eye, ipd float32) EyeView {
	switch eye {
	case EyeLeft:
		return EyeView{cam: c, offset: c.Right.Mul(-ipd / 2)}
	case EyeRight:
		return EyeView{cam: c, offset: c.Right.Mul(ipd / 2)}
	default:
		return EyeView{cam: c}
	}
}

func (c *Camera) ProcessKeyboard(window *glfw.Window, deltaTime float32) {
	baseVelocity := c.Speed * deltaTime

	// If Shift is pressed, multiply the velocity by a factor (e.g., 2.5)
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press || window.GetKey(glfw.KeyRightShift) == glfw.Press {
		baseVelocity *= 2.5
	}

	if window.GetKey(glfw.KeyW) == glfw.Press {
		c.Position = c.Position.Add(c.Front.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		c.Position = c.Position.Sub(c.Front.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		c.Position = c.Position.Sub(c.Right.Mul(baseVelocity))
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		c.Position = c.Position.Add(c.Right.Mul(baseVelocity))
	}
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset

	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0) // Prevent extreme pitch values
	}
	c.updateCameraVectors()
}

func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := c.Position.Sub(target).Normalize()
	c.Yaw = float32(math.Atan2(float64(direction.Z()), float64(direction.X())))
	c.Pitch = float32(math.Atan2(float64(direction.Y()), math.Sqrt(float64(direction.X()*direction.X()+direction.Z()*direction.Z()))))
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
