package engine

import (
	"math"

	"github.com/lixenwraith/despar/constants"
	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/entropy"
	"github.com/lixenwraith/despar/physics"
	"github.com/lixenwraith/despar/vmath"
)

const radiusDigits = 9

// Spawn places a new particle away from the avatar and appends it to the store
// Returns false without change when the store is full, or below capacity when
// SpawnMaxAttempts draws all fall outside the margins or inside the avatar's clearance
// A duplicate ID or the avatar ID panics
func (s *Simulation) Spawn(id core.ID, avatar core.Particle) (core.Particle, bool) {
	if s.box.Full() {
		return core.Particle{}, false
	}

	x, y, ok := s.placement(avatar)
	if !ok {
		return core.Particle{}, false
	}

	p := core.Particle{
		ID:     id,
		X:      x,
		Y:      y,
		Radius: s.radius(),
	}
	p.VX, p.VY = s.velocity()

	s.box.Append(p)
	return p, true
}

// placement rejection-samples a point inside the spawn margins and outside the avatar's clearance square
func (s *Simulation) placement(avatar core.Particle) (float64, float64, bool) {
	a := s.cfg.Arena
	digits := vmath.Digits(uint64(max(a.Width, a.Height)))

	lo := float64(s.cfg.MaxParticleSize)
	hiX := float64(a.Width - s.cfg.SpawnFarMargin)
	hiY := float64(a.Height - s.cfg.SpawnFarMargin)

	for attempt := 0; attempt < s.cfg.SpawnMaxAttempts; attempt++ {
		x := float64(s.rng.Rand(digits))
		y := float64(s.rng.Rand(digits))

		if x < lo || x >= hiX || y < lo || y >= hiY {
			continue
		}
		if math.Abs(x-avatar.X) <= s.cfg.SpawnClearance && math.Abs(y-avatar.Y) <= s.cfg.SpawnClearance {
			continue
		}
		return x, y, true
	}
	return 0, 0, false
}

// radius draws from [MinParticleRadius, MaxParticleSize-1]
// The draw is nine digits wide so the modulo bias across the span is negligible
func (s *Simulation) radius() uint8 {
	span := uint32(s.cfg.MaxParticleSize) - constants.MinParticleRadius
	draw := s.rng.Rand(radiusDigits)
	return uint8(draw%span) + constants.MinParticleRadius
}

// velocity draws a signed horizontal fraction and derives the vertical part so the speed is thermal
func (s *Simulation) velocity() (float64, float64) {
	speed := physics.ThermalSpeed(s.therm.Kelvin())
	vx := entropy.Sign(s.rng) * float64(s.rng.Rand(4)%constants.VelocityXRange) / constants.VelocityXDivisor
	return physics.SplitSpeed(vx, speed, entropy.Sign(s.rng))
}
