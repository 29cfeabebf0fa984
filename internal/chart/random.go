package chart

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Random is the single source of randomness for a chart: bar colors,
// randomized heights and star placement all draw from it, so a seed
// reproduces a whole session.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Color picks a uniformly random 24-bit color.
func (r *Random) Color() colorful.Color {
	return HexColor(uint32(r.rng.Intn(0x1000000)))
}

// Float64 returns a value in [0, 1).
func (r *Random) Float64() float64 { return r.rng.Float64() }

// Range returns a value in [lo, hi).
func (r *Random) Range(lo, hi float64) float64 { return lo + r.rng.Float64()*(hi-lo) }

// HexColor converts a 0xRRGGBB value.
func HexColor(hex uint32) colorful.Color {
	return colorful.Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
}
