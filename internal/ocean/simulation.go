// Package ocean provides the Gerstner wave ocean simulation. It owns the
// authoritative sea state: the underwater post effect and the renderer both
// read from it through per-frame FrameData snapshots.
package ocean

import (
	"math"
	"time"

	"github.com/aquilax/go-perlin"
	mgl32 "github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxWaves is the maximum number of Gerstner waves
	MaxWaves = 4
	// detailScale is the spatial frequency of the perlin swell detail
	detailScale = 0.004
)

// Simulation holds the wave state for one body of water
type Simulation struct {
	StartTime       time.Time
	WaveCount       int
	WaveDirections  []mgl32.Vec3
	WaveAmplitudes  []float32
	WaveFrequencies []float32
	WaveSpeeds      []float32
	WavePhases      []float32
	WaveSteepness   []float32
	CurrentTime     float32

	// Config
	OceanSize     float32
	BaseAmplitude float32
	SeaLevel      float32

	// Editable properties
	WaterColor          mgl32.Vec3
	Transparency        float32
	WaveSpeedMultiplier float32
	WaveHeight          float32
	WaveRandomness      float32
	DetailAmplitude     float32

	noise *perlin.Perlin
}

// Config is an exportable config for saving/loading ocean settings
type Config struct {
	OceanSize           float32    `json:"ocean_size"`
	BaseAmplitude       float32    `json:"base_amplitude"`
	SeaLevel            float32    `json:"sea_level"`
	WaterColor          [3]float32 `json:"water_color"`
	Transparency        float32    `json:"transparency"`
	WaveSpeedMultiplier float32    `json:"wave_speed_multiplier"`
	WaveHeight          float32    `json:"wave_height"`
	WaveRandomness      float32    `json:"wave_randomness"`
	DetailAmplitude     float32    `json:"detail_amplitude"`
}

// NewSimulation creates an ocean simulation with the given extent and base
// wave amplitude. Sea level defaults to zero.
func NewSimulation(size float32, amplitude float32) *Simulation {
	sim := &Simulation{
		StartTime:           time.Now(),
		WaveCount:           MaxWaves,
		WaveDirections:      make([]mgl32.Vec3, MaxWaves),
		WaveAmplitudes:      make([]float32, MaxWaves),
		WaveFrequencies:     make([]float32, MaxWaves),
		WaveSpeeds:          make([]float32, MaxWaves),
		WavePhases:          make([]float32, MaxWaves),
		WaveSteepness:       make([]float32, MaxWaves),
		OceanSize:           size,
		BaseAmplitude:       amplitude,
		SeaLevel:            0,
		WaterColor:          mgl32.Vec3{0.06, 0.22, 0.45}, // Natural ocean blue
		Transparency:        0.85,
		WaveSpeedMultiplier: 1.0,
		WaveHeight:          1.0,
		WaveRandomness:      0.0,
		DetailAmplitude:     amplitude * 0.05,
		noise:               perlin.NewPerlin(2, 2, 3, 1337),
	}
	sim.seedWaves()
	return sim
}

// seedWaves assigns the wave spectrum: one long primary swell plus shorter
// secondary waves, each rotated 45 degrees from the last. WaveRandomness
// perturbs amplitudes and directions through the perlin source so two
// simulations with the same randomness stay identical.
func (sim *Simulation) seedWaves() {
	for i := 0; i < MaxWaves; i++ {
		var amp, freq float32
		switch i {
		case 0:
			amp = sim.BaseAmplitude * 1.2
			freq = 0.00008
		case 1:
			amp = sim.BaseAmplitude * 0.8
			freq = 0.00015
		case 2:
			amp = sim.BaseAmplitude * 0.6
			freq = 0.0004
		default:
			amp = sim.BaseAmplitude * 0.4
			freq = 0.0008
		}

		baseAngle := float32(i) * 45.0 * math.Pi / 180.0
		if sim.WaveRandomness > 0 {
			jitter := float32(sim.noise.Noise1D(float64(i) * 7.31))
			baseAngle += jitter * sim.WaveRandomness * math.Pi / 4
			amp *= 1 + jitter*sim.WaveRandomness*0.5
		}

		dirX := float32(math.Cos(float64(baseAngle)))
		dirZ := float32(math.Sin(float64(baseAngle)))
		sim.WaveDirections[i] = mgl32.Vec3{dirX, 0.0, dirZ}.Normalize()
		sim.WaveAmplitudes[i] = amp
		sim.WaveFrequencies[i] = freq

		wavelength := 2.0 * math.Pi / float64(freq)
		sim.WaveSpeeds[i] = float32(0.002 * math.Sqrt(wavelength))
		sim.WavePhases[i] = float32(i) * math.Pi / 3.0
		sim.WaveSteepness[i] = 0.2 + float32(i)*0.1
	}
}

// HeightAt returns the water surface height at world position (x,z) at
// time t: the Gerstner vertical terms plus perlin swell detail, on top of
// the sea level baseline.
func (sim *Simulation) HeightAt(x, z, t float32) float32 {
	h := sim.SeaLevel
	for i := 0; i < sim.WaveCount; i++ {
		dir := sim.WaveDirections[i]
		theta := (x*dir.X()+z*dir.Z())*sim.WaveFrequencies[i] -
			sim.WaveSpeeds[i]*sim.WaveSpeedMultiplier*t + sim.WavePhases[i]
		h += sim.WaveAmplitudes[i] * sim.WaveHeight * float32(math.Sin(float64(theta)))
	}
	if sim.DetailAmplitude > 0 {
		h += sim.DetailAmplitude * float32(sim.noise.Noise2D(
			float64(x)*detailScale+float64(t)*0.05,
			float64(z)*detailScale))
	}
	return h
}

// MaxVertDisplacement is the largest distance the surface can move away
// from sea level, used for conservative above/below tests.
func (sim *Simulation) MaxVertDisplacement() float32 {
	var total float32
	for i := 0; i < sim.WaveCount; i++ {
		total += sim.WaveAmplitudes[i] * sim.WaveHeight
	}
	return total + sim.DetailAmplitude
}

// Behaviour interface: the engine loop drives the simulation clock.

func (sim *Simulation) Start() {}

func (sim *Simulation) Update() {
	sim.CurrentTime = float32(time.Since(sim.StartTime).Seconds())
}

func (sim *Simulation) UpdateFixed() {}

// ApplyChanges re-derives wave state after editable properties change
func (sim *Simulation) ApplyChanges() {
	sim.seedWaves()
}

// GetConfig returns the current configuration for saving
func (sim *Simulation) GetConfig() Config {
	return Config{
		OceanSize:           sim.OceanSize,
		BaseAmplitude:       sim.BaseAmplitude,
		SeaLevel:            sim.SeaLevel,
		WaterColor:          [3]float32{sim.WaterColor.X(), sim.WaterColor.Y(), sim.WaterColor.Z()},
		Transparency:        sim.Transparency,
		WaveSpeedMultiplier: sim.WaveSpeedMultiplier,
		WaveHeight:          sim.WaveHeight,
		WaveRandomness:      sim.WaveRandomness,
		DetailAmplitude:     sim.DetailAmplitude,
	}
}

// ApplyConfig applies a saved configuration to the simulation
func (sim *Simulation) ApplyConfig(config Config) {
	sim.OceanSize = config.OceanSize
	sim.BaseAmplitude = config.BaseAmplitude
	sim.SeaLevel = config.SeaLevel
	sim.WaterColor = mgl32.Vec3{config.WaterColor[0], config.WaterColor[1], config.WaterColor[2]}
	sim.Transparency = config.Transparency
	sim.WaveSpeedMultiplier = config.WaveSpeedMultiplier
	sim.WaveHeight = config.WaveHeight
	sim.WaveRandomness = config.WaveRandomness
	sim.DetailAmplitude = config.DetailAmplitude
	sim.seedWaves()
}
