package engine

import (
	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/physics"
)

// AvatarTouches reports whether any live particle overlaps the avatar
func (s *Simulation) AvatarTouches(avatar core.Particle) bool {
	ps := s.box.Slice()
	for i := range ps {
		if physics.AvatarColliding(&ps[i], &avatar) {
			return true
		}
	}
	return false
}

// AvatarDestroys removes every particle overlapping the avatar and returns how many went
// Contacts are purged when either member overlaps the avatar, before removal
func (s *Simulation) AvatarDestroys(avatar core.Particle) int {
	if s.contacts.Len() > 0 {
		s.contacts.RemoveIf(func(p Pair) bool {
			a, okA := s.box.Find(p.A)
			b, okB := s.box.Find(p.B)
			if !okA || !okB {
				return true
			}
			return physics.AvatarColliding(&avatar, &a) || physics.AvatarColliding(&avatar, &b)
		})
	}

	return s.box.RemoveIf(func(p *core.Particle) bool {
		return physics.AvatarColliding(p, &avatar)
	})
}
