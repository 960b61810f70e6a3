package entropy

import (
	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/despar/vmath"
)

// Perlin parameters: smoothness, frequency scaling, octaves
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// NoiseChannel simulates a drifting ADC input with 1-D perlin noise
// Each Read advances the sample point by Step
type NoiseChannel struct {
	noise *perlin.Perlin
	t     float64

	// Step is the sample point advance per read; integers alias to lattice points where noise is zero
	Step float64
	// Base is the reading around which the channel drifts
	Base float64
	// Amplitude scales the noise in [-1, 1] before it is added to Base
	Amplitude float64
}

// NewNoiseChannel creates a channel drifting around base by up to amplitude
func NewNoiseChannel(seed int64, base, amplitude float64) *NoiseChannel {
	return &NoiseChannel{
		noise:     perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
		t:         float64(seed%1000) * 0.01,
		Step:      0.137,
		Base:      base,
		Amplitude: amplitude,
	}
}

// Read implements AnalogIn
func (c *NoiseChannel) Read() float64 {
	c.t += c.Step
	return vmath.Clamp(c.Base+c.Amplitude*c.noise.Noise1D(c.t), 0, 1)
}

// ConstantChannel always reads the same value
type ConstantChannel float64

// Read implements AnalogIn
func (c ConstantChannel) Read() float64 {
	return float64(c)
}

// Board groups the three analog inputs the entropy mixer consumes and the sensor used for temperature
type Board struct {
	Light  AnalogIn
	Temp   AnalogIn
	Button AnalogIn
}

// Simulated board readings: the light sensor and floating button pin swing widely,
// the TMP36 hovers near 25°C (0.75V on a 3.3V reference)
const (
	lightBase       = 0.5
	lightAmplitude  = 0.45
	tempBase        = 0.75 / 3.3
	tempAmplitude   = 0.01
	buttonBase      = 0.5
	buttonAmplitude = 0.5
)

// NewSimulatedBoard returns perlin-driven stand-ins for the board's light, temperature and button inputs
func NewSimulatedBoard(seed int64) Board {
	return Board{
		Light:  NewNoiseChannel(seed, lightBase, lightAmplitude),
		Temp:   NewNoiseChannel(seed+1, tempBase, tempAmplitude),
		Button: NewNoiseChannel(seed+2, buttonBase, buttonAmplitude),
	}
}

// Mixer builds an entropy mixer over the board's channels
func (b Board) Mixer(seed uint64) *Mixer {
	return NewMixer(b.Light, b.Temp, b.Button, seed)
}

// Thermometer reads the board's temperature channel as a TMP36
func (b Board) Thermometer() TMP36 {
	return TMP36{In: b.Temp}
}
