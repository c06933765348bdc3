package underwater

import "github.com/go-gl/mathgl/mgl32"

// Config is an exportable config for saving/loading underwater settings
type Config struct {
	Enabled         bool       `json:"enabled"`
	Stereo          bool       `json:"stereo"`
	EyeSeparation   float32    `json:"eye_separation"`
	DepthFogColor   [3]float32 `json:"depth_fog_color"`
	DepthFogDensity [3]float32 `json:"depth_fog_density"`
	FogFalloff      float32    `json:"fog_falloff"`
	MeniscusWidth   float32    `json:"meniscus_width"`
}

// GetConfig returns the current configuration for saving
func (e *Effect) GetConfig() Config {
	return Config{
		Enabled:         e.Enabled,
		Stereo:          e.Stereo,
		EyeSeparation:   e.EyeSeparation,
		DepthFogColor:   [3]float32{e.DepthFogColor.X(), e.DepthFogColor.Y(), e.DepthFogColor.Z()},
		DepthFogDensity: [3]float32{e.DepthFogDensity.X(), e.DepthFogDensity.Y(), e.DepthFogDensity.Z()},
		FogFalloff:      e.FogFalloff,
		MeniscusWidth:   e.MeniscusWidth,
	}
}

// ApplyConfig applies a saved configuration to the effect
func (e *Effect) ApplyConfig(config Config) {
	e.Enabled = config.Enabled
	e.Stereo = config.Stereo
	e.EyeSeparation = config.EyeSeparation
	e.DepthFogColor = mgl32.Vec3{config.DepthFogColor[0], config.DepthFogColor[1], config.DepthFogColor[2]}
	e.DepthFogDensity = mgl32.Vec3{config.DepthFogDensity[0], config.DepthFogDensity[1], config.DepthFogDensity[2]}
	e.FogFalloff = config.FogFalloff
	e.MeniscusWidth = config.MeniscusWidth
}
