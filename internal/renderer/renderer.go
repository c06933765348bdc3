package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType int

var FrustumCullingEnabled bool = true
var Debug bool = false
var ClearColorR float32 = 0.35 // Background clear color red
var ClearColorG float32 = 0.55 // Background clear color green
var ClearColorB float32 = 0.8  // Background clear color blue

const (
	STATIC_LIGHT LightType = iota
	DYNAMIC_LIGHT
)

type Light struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
	Type      LightType // "static", "dynamic"
	Mode      string    // "directional", "point"
}

// CreateDirectionalLight creates a directional light (like the sun)
func CreateDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *Light {
	return &Light{
		Position:  mgl32.Vec3{0.0, 1500.0, 0.0},
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
		Mode:      "directional",
	}
}

// CreateSunlight creates a realistic sun light
func CreateSunlight(direction mgl32.Vec3) *Light {
	return CreateDirectionalLight(direction, mgl32.Vec3{1.0, 0.95, 0.8}, 1.2)
}
