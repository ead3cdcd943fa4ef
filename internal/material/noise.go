package material

import "math"

// hash64 is a splitmix64 finalizer. It turns a seed and two lattice
// coordinates into a well-mixed 64-bit value without any table state, so
// equal inputs always hash equal across processes.
func hash64(seed int64, x, y int64) uint64 {
	h := uint64(seed) ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return h
}

// hashUnit maps a seed and lattice point to [0,1).
func hashUnit(seed int64, x, y int64) float64 {
	return float64(hash64(seed, x, y)>>11) / float64(1<<53)
}

// ValueNoise samples seeded 2D value noise at (x, y): bilinear blend of
// hashed lattice corners with a smoothstep fade. Output is in [0,1).
// The same (seed, x, y) always yields the same value, which is what keeps
// baked patterns reproducible.
func ValueNoise(seed int64, x, y float64) float64 {
	x0 := int64(math.Floor(x))
	y0 := int64(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	// Smoothstep fade
	fx = fx * fx * (3 - 2*fx)
	fy = fy * fy * (3 - 2*fy)

	v00 := hashUnit(seed, x0, y0)
	v10 := hashUnit(seed, x0+1, y0)
	v01 := hashUnit(seed, x0, y0+1)
	v11 := hashUnit(seed, x0+1, y0+1)

	top := v00 + (v10-v00)*fx
	bottom := v01 + (v11-v01)*fx
	return top + (bottom-top)*fy
}

// FBm layers octaves of ValueNoise with halving amplitude. Used for the
// organic stain and discoloration patterns on procedural surfaces.
func FBm(seed int64, x, y float64, octaves int) float64 {
	sum := 0.0
	amp := 0.5
	freq := 1.0
	norm := 0.0
	for i := 0; i < octaves; i++ {
		sum += ValueNoise(seed+int64(i), x*freq, y*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
