package engine

import (
	"testing"

	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/entropy"
)

const roomKelvin = entropy.FixedKelvin(298.15)

// scriptedSource replays draws in order, cycling when exhausted, reduced to the requested digits
type scriptedSource struct {
	draws []uint32
	pos   int
}

func (s *scriptedSource) Rand(digits uint) uint32 {
	if digits == 0 || len(s.draws) == 0 {
		return 0
	}
	v := s.draws[s.pos%len(s.draws)]
	s.pos++
	mod := uint32(1)
	for i := uint(0); i < digits && i < 9; i++ {
		mod *= 10
	}
	return v % mod
}

func newMixer(seed uint64) *entropy.Mixer {
	return entropy.NewMixer(entropy.ConstantChannel(0.41), entropy.ConstantChannel(0.23), entropy.ConstantChannel(0.67), seed)
}

func newTestSimulation(t *testing.T) *Simulation {
	t.Helper()
	return NewSimulation(DefaultConfig(), newMixer(1), roomKelvin)
}

// place appends particles directly, bypassing spawn placement
func place(t *testing.T, s *Simulation, ps ...core.Particle) {
	t.Helper()
	for _, p := range ps {
		if !s.Insert(p) {
			t.Fatalf("Failed to place particle %d", p.ID)
		}
	}
}

func find(t *testing.T, s *Simulation, id core.ID) core.Particle {
	t.Helper()
	p, ok := s.Store().Find(id)
	if !ok {
		t.Fatalf("Particle %d not found", id)
	}
	return p
}
