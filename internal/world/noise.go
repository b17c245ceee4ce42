package world

import (
	"math"
)

// Deterministic 2D value noise with multiple octaves, used to synthesize a
// heightmap when no image is configured.

// NoiseParams controls GenerateHeightmap.
type NoiseParams struct {
	Seed        int64
	Frequency   float64 // lattice cells per grid cell
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultNoiseParams gives gently rolling hills on a 64x64 grid.
func DefaultNoiseParams(seed int64) NoiseParams {
	return NoiseParams{
		Seed:        seed,
		Frequency:   1.0 / 16,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// GenerateHeightmap fills a width x depth heightmap with octave value noise in [0,1].
func GenerateHeightmap(width, depth int, p NoiseParams) *Heightmap {
	hm := &Heightmap{Width: width, Depth: depth, Heights: make([]float32, width*depth)}
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			v := octaveNoise2D(float64(x)*p.Frequency, float64(z)*p.Frequency, p.Seed, p.Octaves, p.Persistence, p.Lacunarity)
			hm.Heights[z*width+x] = float32(v)
		}
	}
	return hm
}

// 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// SplitMix64 style integer hash, stable across runs for same inputs
func hash2(x int64, z int64, seed int64) uint64 {
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

func latticeValue(x int64, z int64, seed int64) float64 {
	h := hash2(x, z, seed)
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

func valueNoise2D(x float64, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := latticeValue(int64(x0), int64(z0), seed)
	v10 := latticeValue(int64(x0)+1, int64(z0), seed)
	v01 := latticeValue(int64(x0), int64(z0)+1, seed)
	v11 := latticeValue(int64(x0)+1, int64(z0)+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}

func octaveNoise2D(x float64, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += valueNoise2D(x*frequency, z*frequency, seed+int64(i*131)) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
