package engine

import (
	"fmt"

	"github.com/lixenwraith/despar/constants"
	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/entropy"
	"github.com/lixenwraith/despar/physics"
)

// Config holds the simulation tuning
type Config struct {
	Arena            core.Arena
	Capacity         int
	MaxParticleSize  uint8
	SpawnClearance   float64
	SpawnFarMargin   int
	SpawnMaxAttempts int
}

// DefaultConfig returns the 84x48 arena tuning
func DefaultConfig() Config {
	return Config{
		Arena:            core.Arena{Width: constants.ArenaWidth, Height: constants.ArenaHeight},
		Capacity:         constants.MaxParticles,
		MaxParticleSize:  constants.MaxParticleSize,
		SpawnClearance:   constants.SpawnClearance,
		SpawnFarMargin:   constants.SpawnFarMargin,
		SpawnMaxAttempts: constants.SpawnMaxAttempts,
	}
}

// Simulation owns the particle store and the contact set
// Single-threaded: every method must run on the caller's tick loop, never concurrently
type Simulation struct {
	cfg      Config
	box      *core.Box
	contacts *ContactSet
	rng      entropy.Source
	therm    entropy.Thermometer

	// index maps ID to sorted position, reused across ticks
	index map[core.ID]int
}

// NewSimulation creates an empty simulation; an unusable config is a programmer error and panics
func NewSimulation(cfg Config, rng entropy.Source, therm entropy.Thermometer) *Simulation {
	if rng == nil || therm == nil {
		panic("simulation: entropy source and thermometer are required")
	}
	if cfg.MaxParticleSize < constants.MinParticleRadius+1 {
		panic(fmt.Sprintf("simulation: max particle size %d leaves no radius range", cfg.MaxParticleSize))
	}
	if cfg.Arena.Width <= 2*int(cfg.MaxParticleSize) || cfg.Arena.Height <= 2*int(cfg.MaxParticleSize) {
		panic(fmt.Sprintf("simulation: arena %dx%d too small", cfg.Arena.Width, cfg.Arena.Height))
	}
	return &Simulation{
		cfg:      cfg,
		box:      core.NewBox(cfg.Capacity),
		contacts: NewContactSet(),
		rng:      rng,
		therm:    therm,
		index:    make(map[core.ID]int, cfg.Capacity),
	}
}

// Store returns a read-only view of the particle store
func (s *Simulation) Store() core.View {
	return s.box.View()
}

// Insert appends a fully specified particle, bypassing spawn placement
// Used for scripted scenarios; returns false at capacity, panics on a duplicate or avatar ID
func (s *Simulation) Insert(p core.Particle) bool {
	return s.box.Append(p)
}

// Contacts returns the still-colliding set
func (s *Simulation) Contacts() *ContactSet {
	return s.contacts
}

// Arena returns the playfield
func (s *Simulation) Arena() core.Arena {
	return s.cfg.Arena
}

// Config returns the tuning in use
func (s *Simulation) Config() Config {
	return s.cfg
}

// RandomInt draws from the injected entropy source
func (s *Simulation) RandomInt(digits uint) uint32 {
	return s.rng.Rand(digits)
}

// Advance runs one tick: collision engine, integration, boundary resolution
func (s *Simulation) Advance() {
	if s.box.Len() >= 2 {
		s.SweepAndPrune()
	}
	s.integrate()
}

func (s *Simulation) integrate() {
	ps := s.box.Slice()
	for i := range ps {
		physics.Integrate(&ps[i])
		physics.ResolveBoundary(&ps[i], s.cfg.Arena)
	}
}
