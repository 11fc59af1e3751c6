package ink

import "math"

// FNV-1a, hand-rolled so the hash stays stable across Go versions
// and doesn't allocate through hash/fnv interfaces.
const fnvOffset64 = 0xCBF29CE484222325
const fnvPrime64 = 0x100000001B3

// Returns a stable identity hash of the stroke's geometry and
// rendering parameters, suitable as a stroke mask cache key. Strokes
// with identical points, width, color and pressure hash identically;
// training metadata and anchors don't affect rendering, so they
// don't participate.
func (self Stroke) Hash() uint64 {
	hash := uint64(fnvOffset64)
	hash = fnvMix(hash, math.Float64bits(self.Width))
	hash = fnvMix(hash, uint64(self.Color.R) | uint64(self.Color.G) << 8 | uint64(self.Color.B) << 16 | uint64(self.Color.A) << 24)
	for _, point := range self.Points {
		hash = fnvMix(hash, math.Float64bits(point.X))
		hash = fnvMix(hash, math.Float64bits(point.Y))
		hash = fnvMix(hash, math.Float64bits(point.Pressure))
	}
	return hash
}

func fnvMix(hash, value uint64) uint64 {
	for i := 0; i < 8; i++ {
		hash ^= (value >> (i*8)) & 0xFF
		hash *= fnvPrime64
	}
	return hash
}
