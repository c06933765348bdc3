package horizon

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// pinhole is a minimal test projector: a camera at Pos looking down +Z with
// symmetric vertical fov and aspect ratio, no roll.
type pinhole struct {
	Pos    mgl32.Vec3
	FovY   float32 // degrees
	Aspect float32
}

func (p pinhole) ViewportToWorld(u, v, depth float32) mgl32.Vec3 {
	halfH := depth * float32(math.Tan(float64(mgl32.DegToRad(p.FovY/2))))
	halfW := halfH * p.Aspect
	return mgl32.Vec3{
		p.Pos.X() + (2*u-1)*halfW,
		p.Pos.Y() + (2*v-1)*halfH,
		p.Pos.Z() + depth,
	}
}

// flat maps every viewport coordinate to the same height, for the
// degenerate coplanar case.
type flat struct {
	Height float32
}

func (f flat) ViewportToWorld(u, v, depth float32) mgl32.Vec3 {
	return mgl32.Vec3{u, f.Height, depth}
}

var right = mgl32.Vec3{1, 0, 0}

func TestLocateTwoCrossings(t *testing.T) {
	cam := pinhole{Pos: mgl32.Vec3{0, 5, 0}, FovY: 60, Aspect: 16.0 / 9.0}

	res, err := Locate(cam, 1000, 0, right)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}

	// Camera barely above the water with a 1000 unit far clip: the
	// horizon should sit close to the vertical middle of the frame.
	if math.Abs(float64(res.Pos.Y())-0.5) > 0.05 {
		t.Errorf("Horizon v should be near 0.5, got %f", res.Pos.Y())
	}

	// Normal should be dominantly vertical and point toward the
	// above-water half (up).
	if math.Abs(float64(res.Normal.Y())) <= math.Abs(float64(res.Normal.X())) {
		t.Errorf("Normal should be vertical dominant, got %v", res.Normal)
	}
	if res.Normal.Y() <= 0 {
		t.Errorf("Normal should point up for an upright camera, got %v", res.Normal)
	}
	if !res.Crossed {
		t.Error("A genuine horizon should report Crossed")
	}
}

func TestLocateNormalLengthMatchesSegment(t *testing.T) {
	cam := pinhole{Pos: mgl32.Vec3{0, 5, 0}, FovY: 60, Aspect: 1}

	res, err := Locate(cam, 1000, 0, right)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}

	// The horizon spans the full frame width here, so the rotated
	// tangent should have length close to 1.
	if math.Abs(float64(res.Normal.Len())-1.0) > 0.05 {
		t.Errorf("Normal length should be near 1, got %f", res.Normal.Len())
	}
}

// rolled is a pinhole camera rotated by Roll degrees about its forward
// axis. Rolling past 45 degrees moves the horizon crossings onto the
// horizontal frame edges instead of the vertical ones, so the crossings
// are found in a different traversal order.
type rolled struct {
	Pos  mgl32.Vec3
	Roll float32 // degrees
}

func (r rolled) axes() (mgl32.Vec3, mgl32.Vec3) {
	s := float32(math.Sin(float64(mgl32.DegToRad(r.Roll))))
	c := float32(math.Cos(float64(mgl32.DegToRad(r.Roll))))
	return mgl32.Vec3{c, s, 0}, mgl32.Vec3{-s, c, 0}
}

func (r rolled) ViewportToWorld(u, v, depth float32) mgl32.Vec3 {
	half := depth * float32(math.Tan(float64(mgl32.DegToRad(30))))
	rt, up := r.axes()
	p := r.Pos.Add(rt.Mul((2*u - 1) * half))
	p = p.Add(up.Mul((2*v - 1) * half))
	return p.Add(mgl32.Vec3{0, 0, depth})
}

func TestLocateOrientationIgnoresTraversalOrder(t *testing.T) {
	// Opposite rolls hit opposite edge pairs and opposite traversal
	// orders, but the normal must keep pointing toward the viewport
	// image of world up in both cases.
	for _, roll := range []float32{0, 60, -60} {
		cam := rolled{Pos: mgl32.Vec3{0, 5, 0}, Roll: roll}
		camRt, _ := cam.axes()

		res, err := Locate(cam, 1000, 0, camRt)
		if err != nil {
			t.Fatalf("Locate with roll %v returned error: %v", roll, err)
		}

		// World up expressed in viewport coordinates.
		rt, up := cam.axes()
		worldUp := mgl32.Vec3{0, 1, 0}
		upVP := mgl32.Vec2{worldUp.Dot(rt), worldUp.Dot(up)}

		if res.Normal.Dot(upVP) <= 0 {
			t.Errorf("Roll %v: normal %v should point toward above-water direction %v", roll, res.Normal, upVP)
		}
	}
}

func TestLocateFullyAboveWater(t *testing.T) {
	cam := pinhole{Pos: mgl32.Vec3{0, 2000, 0}, FovY: 60, Aspect: 16.0 / 9.0}

	res, err := Locate(cam, 1000, 0, right)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}

	if res.Pos != AboveWater {
		t.Errorf("Expected above-water sentinel %v, got %v", AboveWater, res.Pos)
	}
	if res.Crossed {
		t.Error("Sentinel result should not report Crossed")
	}
}

func TestLocateFullySubmerged(t *testing.T) {
	cam := pinhole{Pos: mgl32.Vec3{0, -2000, 0}, FovY: 60, Aspect: 16.0 / 9.0}

	res, err := Locate(cam, 1000, 0, right)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}

	if res.Pos != Submerged {
		t.Errorf("Expected submerged sentinel %v, got %v", Submerged, res.Pos)
	}
	if res.Normal != (mgl32.Vec2{0, 1}) {
		t.Errorf("Sentinel normal should default to up, got %v", res.Normal)
	}
	if res.Crossed {
		t.Error("Sentinel result should not report Crossed")
	}
}

func TestLocateLevelCameraCrossedDespiteUpNormal(t *testing.T) {
	// A level camera at the waterline yields a horizon normal of exactly
	// (0,1), identical to the sentinel default. Crossed must still
	// distinguish the genuine horizon from the sentinel results.
	cam := pinhole{Pos: mgl32.Vec3{0, 0, 0}, FovY: 60, Aspect: 16.0 / 9.0}

	res, err := Locate(cam, 1000, 0, right)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}

	if res.Normal != (mgl32.Vec2{0, 1}) {
		t.Fatalf("Waterline camera should produce the exact up normal, got %v", res.Normal)
	}
	if !res.Crossed {
		t.Error("Waterline camera horizon must report Crossed, not a sentinel")
	}
}

func TestLocateDegenerateCoplanar(t *testing.T) {
	_, err := Locate(flat{Height: 0}, 1000, 0, right)
	if err != ErrDegenerateFrustumPlane {
		t.Errorf("Expected ErrDegenerateFrustumPlane, got %v", err)
	}
}

func TestLocateCrossingCount(t *testing.T) {
	// Plane strictly between the lowest and highest corner with no
	// corner exactly on it must produce a genuine horizon, not a
	// sentinel.
	cam := pinhole{Pos: mgl32.Vec3{0, 100, 0}, FovY: 60, Aspect: 1}

	res, err := Locate(cam, 1000, 0, right)
	if err != nil {
		t.Fatalf("Locate returned error: %v", err)
	}

	if res.Pos == Submerged || res.Pos == AboveWater {
		t.Errorf("Expected a real horizon position, got sentinel %v", res.Pos)
	}
	if res.Normal.Len() == 0 {
		t.Error("Normal should not be zero for a crossing horizon")
	}
}
