package ocean

// LODCount is the number of detail rings in the ocean LOD chain. Each ring
// doubles the texel size of the previous one.
const LODCount = 7

// LOD describes one ring of the ocean detail chain.
type LOD struct {
	Index      int
	Extent     float32 // world size covered by this ring
	TexelWidth float32 // world units per simulation texel
}

// FrameData is the per-frame snapshot of the simulation that downstream
// consumers (the underwater effect, tile culling) read. It is a plain
// value: taking one never blocks or mutates the simulation.
type FrameData struct {
	Time                float32
	SeaLevel            float32
	MaxVertDisplacement float32
	LODs                [LODCount]LOD
}

// FrameData captures the current simulation state.
func (sim *Simulation) FrameData() FrameData {
	fd := FrameData{
		Time:                sim.CurrentTime,
		SeaLevel:            sim.SeaLevel,
		MaxVertDisplacement: sim.MaxVertDisplacement(),
	}
	extent := sim.OceanSize / float32(int(1)<<(LODCount-1))
	for i := 0; i < LODCount; i++ {
		fd.LODs[i] = LOD{
			Index:      i,
			Extent:     extent,
			TexelWidth: extent / 256,
		}
		extent *= 2
	}
	return fd
}
