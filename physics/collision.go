package physics

import "github.com/lixenwraith/despar/core"

// ExchangeVelocities resolves a contact as an equal-mass elastic collision: velocity vectors swap wholesale
// Radius plays no part; heavier-looking discs bounce exactly like light ones
func ExchangeVelocities(a, b *core.Particle) {
	a.VX, b.VX = b.VX, a.VX
	a.VY, b.VY = b.VY, a.VY
}
