// Package underwater implements the underwater post-process effect: it
// turns the horizon locator's output plus the ocean frame data into shader
// properties for the ocean mask and composite passes.
package underwater

import (
	"Mariner3D/internal/horizon"
	"Mariner3D/internal/ocean"
	"Mariner3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// PropertyBinder is the capability the effect needs to push shader
// properties. renderer.UniformCache implements it; tests use a recorder.
type PropertyBinder interface {
	SetFloat(name string, value float32)
	SetVec2(name string, x, y float32)
	SetVec3(name string, x, y, z float32)
	SetInt(name string, value int32)
}

// HeightSampler reports the water surface height at a world position.
// ocean.Simulation implements it.
type HeightSampler interface {
	HeightAt(x, z, t float32) float32
}

// Effect drives the underwater rendering state for one camera.
type Effect struct {
	Enabled       bool
	Stereo        bool
	EyeSeparation float32 // world units, used only when Stereo is set

	// Appearance
	DepthFogColor   mgl32.Vec3
	DepthFogDensity mgl32.Vec3 // per channel absorption, red highest
	FogFalloff      float32
	MeniscusWidth   float32

	camera *renderer.Camera
	sim    *ocean.Simulation
	light  *renderer.Light

	frame ocean.FrameData
}

// NewEffect creates the effect with natural open-water fog defaults.
func NewEffect(camera *renderer.Camera, sim *ocean.Simulation) *Effect {
	return &Effect{
		Enabled:         true,
		EyeSeparation:   0.064,
		DepthFogColor:   mgl32.Vec3{0.0, 0.45, 0.35},
		DepthFogDensity: mgl32.Vec3{0.28, 0.16, 0.24},
		FogFalloff:      0.02,
		MeniscusWidth:   0.008,
		camera:          camera,
		sim:             sim,
	}
}

// SetLight sets the directional light used for underwater sun scattering.
func (e *Effect) SetLight(light *renderer.Light) {
	e.light = light
}

// Frame returns the ocean snapshot taken by the last Update.
func (e *Effect) Frame() ocean.FrameData {
	return e.frame
}

// Submerged reports whether the camera sits below the water surface,
// sampling the simulated surface directly under it.
func (e *Effect) Submerged() bool {
	return e.depthBelowSurface() > 0
}

// depthBelowSurface returns how far the camera sits below the simulated
// surface directly above it, or 0 when the camera is dry.
func (e *Effect) depthBelowSurface() float32 {
	h := e.sim.HeightAt(e.camera.Position.X(), e.camera.Position.Z(), e.frame.Time)
	if d := h - e.camera.Position.Y(); d > 0 {
		return d
	}
	return 0
}

// Behaviour interface: snapshot the ocean once per frame before the render
// passes read it.

func (e *Effect) Start() {}

func (e *Effect) Update() {
	e.frame = e.sim.FrameData()
}

func (e *Effect) UpdateFixed() {}

// BindEye computes the horizon for one eye and binds every property the
// mask and composite shaders read. Returns the horizon locator's error
// unchanged; a degenerate frustum/plane configuration is unrecoverable and
// the caller aborts the frame on it.
func (e *Effect) BindEye(eye renderer.Eye, binder PropertyBinder) error {
	proj := e.camera.EyeProjector(eye, e.EyeSeparation)

	res, err := horizon.Locate(proj, e.camera.Far, e.frame.SeaLevel, e.camera.Right)
	if err != nil {
		return err
	}

	forceUnderwater, forceDry := int32(0), int32(0)
	if !res.Crossed {
		// Sentinel result: the far plane never crossed the water
		switch res.Pos {
		case horizon.Submerged:
			forceUnderwater = 1
		case horizon.AboveWater:
			forceDry = 1
		}
	}

	binder.SetVec2("horizonPos", res.Pos.X(), res.Pos.Y())
	binder.SetVec2("horizonNormal", res.Normal.X(), res.Normal.Y())
	binder.SetInt("forceUnderwater", forceUnderwater)
	binder.SetInt("forceDry", forceDry)

	// Camera submersion drives the full-depth fog ramp: light reaching a
	// submerged eye already travelled through the water column above it.
	cameraSubmerged, cameraDepth := int32(0), float32(0)
	if d := e.depthBelowSurface(); d > 0 {
		cameraSubmerged = 1
		cameraDepth = d
	}
	binder.SetInt("cameraSubmerged", cameraSubmerged)
	binder.SetFloat("cameraDepth", cameraDepth)

	binder.SetVec3("depthFogColor", e.DepthFogColor.X(), e.DepthFogColor.Y(), e.DepthFogColor.Z())
	binder.SetVec3("depthFogDensity", e.DepthFogDensity.X(), e.DepthFogDensity.Y(), e.DepthFogDensity.Z())
	binder.SetFloat("fogFalloff", e.FogFalloff)
	binder.SetFloat("meniscusWidth", e.MeniscusWidth)
	binder.SetFloat("nearClip", e.camera.Near)
	binder.SetFloat("farClip", e.camera.Far)

	if e.light != nil {
		dir := e.light.Direction.Mul(-1) // toward the sun
		binder.SetVec3("sunDirection", dir.X(), dir.Y(), dir.Z())
		binder.SetVec3("sunColor", e.light.Color.X(), e.light.Color.Y(), e.light.Color.Z())
	} else {
		binder.SetVec3("sunDirection", 0, 1, 0)
		binder.SetVec3("sunColor", 1, 1, 1)
	}

	return nil
}

// Eyes returns the set of eyes to render this frame.
func (e *Effect) Eyes() []renderer.Eye {
	if e.Stereo {
		return []renderer.Eye{renderer.EyeLeft, renderer.EyeRight}
	}
	return []renderer.Eye{renderer.EyeCenter}
}
