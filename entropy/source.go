// Package entropy turns noisy analog readings into bounded pseudo-random integers.
// Nothing here is cryptographic; the goal is cheap, reseedable, uniform-ish draws.
package entropy

import (
	"math"

	"github.com/lixenwraith/despar/vmath"
)

// Source returns a non-negative integer with at most digits significant decimal digits
// digits == 0 yields 0; digits >= 10 yields the full 32-bit range
type Source interface {
	Rand(digits uint) uint32
}

// AnalogIn is one opaque analog reading normalised to [0, 1]
type AnalogIn interface {
	Read() float64
}

// maxDigits is the widest reduction that still fits a uint32 result
const maxDigits = 9

// Mixer folds three analog channels into a seeded xorshift generator on every draw
// Equal seeds fed equal readings reproduce equal outputs. Not safe for concurrent use
type Mixer struct {
	light  AnalogIn
	temp   AnalogIn
	button AnalogIn
	rng    *vmath.FastRand
}

// NewMixer creates a mixer over the three channels
func NewMixer(light, temp, button AnalogIn, seed uint64) *Mixer {
	return &Mixer{
		light:  light,
		temp:   temp,
		button: button,
		rng:    vmath.NewFastRand(seed),
	}
}

// Seed resets the generator state, discarding accumulated readings
func (m *Mixer) Seed(seed uint64) {
	m.rng.Seed(seed)
}

// Rand implements Source
func (m *Mixer) Rand(digits uint) uint32 {
	if digits == 0 {
		return 0
	}

	m.rng.Mix(m.sample())
	v := m.rng.Next()

	if digits > maxDigits {
		return uint32(v)
	}
	return uint32(v % vmath.Pow10(digits))
}

// sample packs the float32 bit patterns of all three channels into one word
func (m *Mixer) sample() uint64 {
	l := uint64(math.Float32bits(float32(m.light.Read())))
	t := uint64(math.Float32bits(float32(m.temp.Read())))
	b := uint64(math.Float32bits(float32(m.button.Read())))
	return l<<32 ^ t<<16 ^ b
}

// Sign returns +1 or -1 from the parity of a one-digit draw
func Sign(src Source) float64 {
	if src.Rand(1)%2 == 0 {
		return 1
	}
	return -1
}
