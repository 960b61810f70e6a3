package physics

import "github.com/lixenwraith/despar/core"

// OverlapX tests the sweep axis for a pair already ordered by X (lower.X <= upper.X)
// Only the lower particle's forward extent and the upper particle's backward extent are compared
func OverlapX(lower, upper *core.Particle) bool {
	return lower.X+lower.R() >= upper.X-upper.R()
}

// OverlapXDirectional tests the X axis for an unordered pair by picking the leading entity first
func OverlapXDirectional(a, b *core.Particle) bool {
	if a.X < b.X {
		return a.X+a.R() >= b.X-b.R()
	}
	return b.X+b.R() >= a.X-a.R()
}

// OverlapY tests vertical interval intersection: |a.Y - b.Y| <= a.R + b.R
func OverlapY(a, b *core.Particle) bool {
	if a.Y < b.Y {
		return a.Y+a.R() >= b.Y-b.R()
	}
	return b.Y+b.R() >= a.Y-a.R()
}

// Colliding is the particle-particle test; the pair must be ordered by X
func Colliding(lower, upper *core.Particle) bool {
	return OverlapX(lower, upper) && OverlapY(lower, upper)
}

// AvatarColliding is the order-free test used against the avatar, which is never sorted with the store
func AvatarColliding(a, b *core.Particle) bool {
	return OverlapXDirectional(a, b) && OverlapY(a, b)
}
