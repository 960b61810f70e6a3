package physics

import "github.com/lixenwraith/despar/core"

// Integrate advances position by one tick of velocity: p = p + v
func Integrate(p *core.Particle) {
	p.X += p.VX
	p.Y += p.VY
}
