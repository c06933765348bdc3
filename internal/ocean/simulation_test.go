package ocean

import (
	"math"
	"testing"
)

func TestNewSimulation(t *testing.T) {
	sim := NewSimulation(10000, 5)

	if sim == nil {
		t.Fatal("NewSimulation returned nil")
	}

	if sim.WaveCount != MaxWaves {
		t.Errorf("Expected %d waves, got %d", MaxWaves, sim.WaveCount)
	}

	for i, dir := range sim.WaveDirections {
		if math.Abs(float64(dir.Len())-1.0) > 0.01 {
			t.Errorf("Wave direction %d should be normalized, length=%f", i, dir.Len())
		}
		if dir.Y() != 0 {
			t.Errorf("Wave direction %d should be horizontal, got %v", i, dir)
		}
	}
}

func TestHeightAtDeterministic(t *testing.T) {
	a := NewSimulation(10000, 5)
	b := NewSimulation(10000, 5)

	for _, p := range [][2]float32{{0, 0}, {123, -456}, {-9999, 4321}} {
		ha := a.HeightAt(p[0], p[1], 3.5)
		hb := b.HeightAt(p[0], p[1], 3.5)
		if ha != hb {
			t.Errorf("Height at %v should be deterministic, got %f and %f", p, ha, hb)
		}
	}
}

func TestHeightAtBounded(t *testing.T) {
	sim := NewSimulation(10000, 5)
	bound := sim.MaxVertDisplacement()

	for x := float32(-5000); x <= 5000; x += 500 {
		for z := float32(-5000); z <= 5000; z += 500 {
			h := sim.HeightAt(x, z, 12.0)
			if float32(math.Abs(float64(h-sim.SeaLevel))) > bound {
				t.Fatalf("Height %f at (%f,%f) exceeds max displacement %f", h, x, z, bound)
			}
		}
	}
}

func TestSeaLevelShiftsHeights(t *testing.T) {
	sim := NewSimulation(10000, 5)
	h0 := sim.HeightAt(100, 100, 1)

	sim.SeaLevel = 50
	h1 := sim.HeightAt(100, 100, 1)

	if math.Abs(float64(h1-h0-50)) > 0.001 {
		t.Errorf("Raising sea level by 50 should raise heights by 50, got delta %f", h1-h0)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	sim := NewSimulation(10000, 5)
	sim.SeaLevel = 12
	sim.WaveHeight = 2.5
	sim.WaveRandomness = 0.3
	sim.ApplyChanges()

	config := sim.GetConfig()

	other := NewSimulation(1, 1)
	other.ApplyConfig(config)

	if other.SeaLevel != 12 || other.WaveHeight != 2.5 {
		t.Errorf("Config round trip lost values: %+v", other.GetConfig())
	}

	// Same config must reproduce the same surface
	if got, want := other.HeightAt(42, 42, 2), sim.HeightAt(42, 42, 2); got != want {
		t.Errorf("Configured sims should agree, got %f want %f", got, want)
	}
}

func TestFrameData(t *testing.T) {
	sim := NewSimulation(10000, 5)
	sim.SeaLevel = 3

	fd := sim.FrameData()

	if fd.SeaLevel != 3 {
		t.Errorf("FrameData sea level should be 3, got %f", fd.SeaLevel)
	}
	if fd.MaxVertDisplacement <= 0 {
		t.Error("Max displacement should be positive")
	}
	for i := 1; i < LODCount; i++ {
		if fd.LODs[i].Extent != fd.LODs[i-1].Extent*2 {
			t.Errorf("LOD %d extent should double the previous ring", i)
		}
	}
	if fd.LODs[LODCount-1].Extent != sim.OceanSize {
		t.Errorf("Outermost LOD should cover the ocean, got %f want %f", fd.LODs[LODCount-1].Extent, sim.OceanSize)
	}
}
