package physics

import (
	"math"

	"github.com/lixenwraith/despar/constants"
)

// ThermalSpeed returns the 2-D most-probable molecular speed at kelvin, scaled to world units per tick
// v = scale * sqrt(2kT/m); non-positive temperatures yield zero
func ThermalSpeed(kelvin float64) float64 {
	if kelvin <= 0 {
		return 0
	}
	return constants.ThermalSpeedScale * math.Sqrt(2*constants.BoltzmannConstant*kelvin/constants.ParticleMass)
}

// SplitSpeed derives the vertical component so that hypot(vx, vy) == speed
// vx is clamped to [-speed, speed]; sign chooses the direction of vy
func SplitSpeed(vx, speed, sign float64) (float64, float64) {
	if vx > speed {
		vx = speed
	} else if vx < -speed {
		vx = -speed
	}
	vy := math.Sqrt(math.Max(speed*speed-vx*vx, 0))
	if sign < 0 {
		vy = -vy
	}
	return vx, vy
}
