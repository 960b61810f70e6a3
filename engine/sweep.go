package engine

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/physics"
)

// SweepAndPrune sorts the store by X, prunes stale contacts, then resolves adjacent pairs
// Returns the number of new contacts resolved this call
//
// Only neighbours in X order are tested. Discs are small relative to their spacing, so
// an overlapping pair is assumed to be adjacent after the sort
func (s *Simulation) SweepAndPrune() int {
	ps := s.box.Slice()
	if len(ps) < 2 {
		return 0
	}

	slices.SortStableFunc(ps, func(a, b core.Particle) int {
		return cmp.Compare(a.X, b.X)
	})

	s.prune(ps)

	added := 0
	n := len(ps)
	for i := 0; i+1 < n; i++ {
		// Tied X with a follower: settle the whole triple, next pair examined is (i+2, i+3)
		if ps[i].X == ps[i+1].X && i+2 < n {
			added += s.resolve(ps, i, i+1)
			added += s.resolve(ps, i, i+2)
			added += s.resolve(ps, i+1, i+2)
			i++
			continue
		}
		added += s.resolve(ps, i, i+1)
	}
	return added
}

// prune drops contacts for pairs that no longer overlap; ps must be sorted by X
func (s *Simulation) prune(ps []core.Particle) {
	if s.contacts.Len() == 0 {
		return
	}

	for i := 0; i+1 < len(ps); i++ {
		if !physics.Colliding(&ps[i], &ps[i+1]) {
			s.contacts.Remove(ps[i].ID, ps[i+1].ID)
		}
	}

	if s.contacts.Len() == 0 {
		return
	}

	// Pairs separated by a third particle in X order are not seen above
	clear(s.index)
	for i := range ps {
		s.index[ps[i].ID] = i
	}
	s.contacts.RemoveIf(func(p Pair) bool {
		i, okA := s.index[p.A]
		j, okB := s.index[p.B]
		if !okA || !okB {
			return true
		}
		if i > j {
			i, j = j, i
		}
		return !physics.Colliding(&ps[i], &ps[j])
	})
}

// resolve applies the velocity exchange once per contact; i < j in sorted order
func (s *Simulation) resolve(ps []core.Particle, i, j int) int {
	a, b := &ps[i], &ps[j]
	if !physics.Colliding(a, b) || s.contacts.Contains(a.ID, b.ID) {
		return 0
	}
	physics.ExchangeVelocities(a, b)
	s.contacts.Add(a.ID, b.ID)
	return 1
}
