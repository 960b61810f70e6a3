package physics

import "github.com/lixenwraith/despar/core"

// ReflectBoundsX handles horizontal wall contact, returns true if reflection occurred
// Clamps the center to [radius, maxX-radius] and negates VX
func ReflectBoundsX(p *core.Particle, maxX float64) bool {
	r := p.R()
	if p.X > maxX-r {
		p.X = maxX - r
		p.VX = -p.VX
		return true
	}
	if p.X < r {
		p.X = r
		p.VX = -p.VX
		return true
	}
	return false
}

// ReflectBoundsY handles vertical wall contact, returns true if reflection occurred
// Clamps the center to [radius, maxY-radius] and negates VY
func ReflectBoundsY(p *core.Particle, maxY float64) bool {
	r := p.R()
	if p.Y > maxY-r {
		p.Y = maxY - r
		p.VY = -p.VY
		return true
	}
	if p.Y < r {
		p.Y = r
		p.VY = -p.VY
		return true
	}
	return false
}

// ResolveBoundary handles both axes independently, returns true if any reflection occurred
func ResolveBoundary(p *core.Particle, arena core.Arena) bool {
	rx := ReflectBoundsX(p, arena.MaxX())
	ry := ReflectBoundsY(p, arena.MaxY())
	return rx || ry
}

