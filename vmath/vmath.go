package vmath

import "math"

// --- Randomness ---

// FastRand is a xorshift64 generator; not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	r := &FastRand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator; zero is remapped because xorshift has a zero fixed point
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

// Mix folds external entropy into the state without discarding it
func (r *FastRand) Mix(v uint64) {
	r.Seed(r.state ^ SplitMix64(v))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// SplitMix64 is a bijective avalanche mix, used to spread low-entropy inputs across all bits
func SplitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// --- Decimal ---

// Pow10 returns 10^n for n in [0, 19]; larger n saturates
func Pow10(n uint) uint64 {
	if n > 19 {
		return math.MaxUint64
	}
	p := uint64(1)
	for i := uint(0); i < n; i++ {
		p *= 10
	}
	return p
}

// Digits returns the number of decimal digits of v (1 for zero)
func Digits(v uint64) uint {
	d := uint(1)
	for v >= 10 {
		v /= 10
		d++
	}
	return d
}

// --- Geometry ---

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
