// Package horizon locates the line where a horizontal water plane crosses
// the far plane of a view frustum, expressed in normalized viewport space.
// The underwater post effect uses the result to split the screen into the
// above-water and below-water halves.
package horizon

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

// ViewProjector maps a normalized viewport coordinate (u,v in [0,1]) at a
// given view depth to a world space point. renderer.Camera implements this.
type ViewProjector interface {
	ViewportToWorld(u, v, depth float32) mgl32.Vec3
}

// Result describes the horizon line in normalized viewport space.
// Normal is not unit length: its magnitude is proportional to the screen
// space length of the horizon segment and is consumed downstream as a
// gradient direction.
type Result struct {
	Pos    mgl32.Vec2
	Normal mgl32.Vec2
	// Crossed reports whether Pos and Normal describe a real horizon
	// line. When false the far plane never crossed the water plane and
	// Pos holds one of the sentinels. Callers branch on this rather
	// than comparing Normal against the sentinel default, which a
	// perfectly level camera can legitimately reproduce.
	Crossed bool
}

// Sentinel positions reported when the far plane does not cross the water
// plane at all.
var (
	// Submerged means every far plane corner sits below the water.
	Submerged = mgl32.Vec2{0, 0}
	// AboveWater means every far plane corner sits above the water.
	AboveWater = mgl32.Vec2{0, 1}
)

// ErrDegenerateFrustumPlane is returned when all four far plane corners lie
// exactly at the water height, so no horizon side can be determined. This
// never happens for a sane camera and callers should treat it as fatal.
var ErrDegenerateFrustumPlane = errors.New("horizon: all frustum far plane corners coplanar with water plane")

// Far plane corners in cyclic order, so corner i shares an edge with
// corner (i+1)%4.
var corners = [4]mgl32.Vec2{
	{0, 0},
	{0, 1},
	{1, 1},
	{1, 0},
}

// Locate finds where the water plane at height seaLevel crosses the far
// plane of the view frustum described by proj and farClip. camRight is the
// camera's world space right axis, used only to orient the normal toward
// the above-water half. Pure function of its inputs.
func Locate(proj ViewProjector, farClip, seaLevel float32, camRight mgl32.Vec3) (Result, error) {
	var world [4]mgl32.Vec3
	var height [4]float32
	for i, c := range corners {
		world[i] = proj.ViewportToWorld(c.X(), c.Y(), farClip)
		height[i] = world[i].Y() - seaLevel
	}

	// Walk the four edges of the far plane quad and collect plane
	// crossings. A convex quad against one plane yields 0 or 2.
	var crossUV [2]mgl32.Vec2
	var crossWorld [2]mgl32.Vec3
	count := 0
	for i := 0; i < 4 && count < 2; i++ {
		j := (i + 1) % 4
		if height[i]*height[j] >= 0 {
			continue
		}
		t := -height[i] / (height[j] - height[i])
		crossUV[count] = lerp2(corners[i], corners[j], t)
		crossWorld[count] = lerp3(world[i], world[j], t)
		count++
	}

	if count == 2 {
		tangent := crossUV[0].Sub(crossUV[1])
		normal := mgl32.Vec2{-tangent.Y(), tangent.X()}
		// The rotated tangent can point either way depending on which
		// edge pair was hit first. Orient it consistently using the
		// world displacement between the crossings.
		if crossWorld[1].Sub(crossWorld[0]).Dot(camRight) > 0 {
			normal = normal.Mul(-1)
		}
		return Result{Pos: crossUV[0], Normal: normal, Crossed: true}, nil
	}

	// No crossing: the far plane sits entirely on one side of the water.
	res := Result{Normal: mgl32.Vec2{0, 1}}
	for i := 0; i < 4; i++ {
		if height[i] < 0 {
			res.Pos = Submerged
			return res, nil
		}
	}
	for i := 0; i < 4; i++ {
		if height[i] > 0 {
			res.Pos = AboveWater
			return res, nil
		}
	}
	return Result{}, ErrDegenerateFrustumPlane
}

func lerp2(a, b mgl32.Vec2, t float32) mgl32.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerp3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
