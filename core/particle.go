package core

import "github.com/lixenwraith/despar/constants"

// ID identifies a live particle; AvatarID is reserved
type ID uint16

// AvatarID marks the avatar, which never lives in a Box
const AvatarID ID = constants.AvatarID

// Particle is a disc moving in world units per tick
type Particle struct {
	// Radius is the disc radius in world units
	Radius uint8
	// X and Y are the disc center
	X, Y float64
	// VX and VY are displacement per tick
	VX, VY float64
	ID     ID
}

// R returns the radius as a float for geometry
func (p *Particle) R() float64 {
	return float64(p.Radius)
}

// IsAvatar reports whether the particle carries the reserved avatar ID
func (p *Particle) IsAvatar() bool {
	return p.ID == AvatarID
}

// NewAvatar builds the avatar entity at (x, y)
func NewAvatar(x, y float64, radius uint8) Particle {
	return Particle{
		Radius: radius,
		X:      x,
		Y:      y,
		ID:     AvatarID,
	}
}
