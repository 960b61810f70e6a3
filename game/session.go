// Package game drives the collision core as a survival session: difficulty growth,
// random panic and click events, scoring and avatar steering, all counted in ticks.
package game

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/despar/config"
	"github.com/lixenwraith/despar/constants"
	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/engine"
	"github.com/lixenwraith/despar/vmath"
)

// Event is a random event started during a tick
type Event uint8

const (
	EventNone Event = iota
	// EventPanic: touching any particle ends the session until it expires
	EventPanic
	// EventClickPrompt: the player must click within the window or lose
	EventClickPrompt
)

func (e Event) String() string {
	switch e {
	case EventPanic:
		return "panic"
	case EventClickPrompt:
		return "click"
	default:
		return "none"
	}
}

// Input is the per-tick steering reading; Angle is in degrees clockwise from up
type Input struct {
	Magnitude float64
	Angle     float64
}

// Report summarises one tick for the front-end
type Report struct {
	Tick          int
	Destroyed     int
	Spawned       int
	Event         Event
	ClickResolved bool
	PanicEnded    bool
	Over          bool
	Score         uint64
}

// Timing holds session timers in ticks
type Timing struct {
	DifficultyTicks  int
	PanicTicks       int
	ClickWindowTicks int
	EventMaxSeconds  int
}

// Session is the caller of the collision core; not safe for concurrent use apart from its Flags
type Session struct {
	cfg    *config.Config
	sim    *engine.Simulation
	flags  *Flags
	logger *log.Logger
	timing Timing

	avatar core.Particle

	started bool
	over    bool
	score   uint64
	tick    int

	// target is the particle count difficulty aims for; increment grows by one per raise
	target    int
	increment int

	difficultyIn int
	eventIn      int
	panicLeft    int
	clickLeft    int
}

// NewSession places the avatar and the initial particles
func NewSession(cfg *config.Config, sim *engine.Simulation, flags *Flags, logger *log.Logger) *Session {
	s := &Session{
		cfg:    cfg,
		sim:    sim,
		flags:  flags,
		logger: logger,
		timing: Timing{
			DifficultyTicks:  cfg.Ticks(cfg.Timing.Difficulty.Duration),
			PanicTicks:       cfg.Ticks(cfg.Timing.Panic.Duration),
			ClickWindowTicks: cfg.Ticks(cfg.Timing.ClickWindow.Duration),
			EventMaxSeconds:  int(cfg.Timing.EventMaxInterval.Duration / time.Second),
		},
		avatar:    core.NewAvatar(cfg.Avatar.X, cfg.Avatar.Y, cfg.Avatar.Radius),
		target:    cfg.Particles.Initial,
		increment: constants.DifficultyInitialIncrement,
	}
	s.clampAvatar()
	s.difficultyIn = s.timing.DifficultyTicks
	s.eventIn = s.eventDelay()

	spawned := s.fill()
	s.logger.Debug("session created", "particles", spawned, "avatar_x", s.avatar.X, "avatar_y", s.avatar.Y)
	return s
}

// Tick runs one step of the session; idle until the start flag is seen, inert once over
func (s *Session) Tick(in Input) Report {
	if s.over {
		return Report{Tick: s.tick, Over: true, Score: s.score}
	}
	if !s.started {
		if !s.flags.takeStart() {
			return Report{}
		}
		s.started = true
		s.logger.Info("session started", "particles", s.sim.Store().Len())
	}

	s.tick++
	r := Report{Tick: s.tick}
	// Only a prompt already open when the tick begins can be answered
	answerable := s.clickLeft > 0
	click := s.flags.takeClick() && answerable

	if s.clickLeft == 0 {
		s.eventIn--
		if s.eventIn <= 0 {
			r.Event = s.startEvent()
			s.eventIn = s.eventDelay()
		}
	}

	if s.clickLeft > 0 {
		if click {
			s.clickLeft = 0
			r.ClickResolved = true
			r.Destroyed += s.sim.AvatarDestroys(s.avatar)
			s.score++
			s.logger.Info("click answered", "destroyed", r.Destroyed)
		} else {
			s.clickLeft--
			if s.clickLeft == 0 {
				return s.end(r, "click window missed")
			}
		}
	}

	if s.panicLeft > 0 {
		if s.sim.AvatarTouches(s.avatar) {
			return s.end(r, "touched a particle in panic mode")
		}
		s.panicLeft--
		if s.panicLeft == 0 {
			r.PanicEnded = true
			s.logger.Info("panic mode over")
		}
	} else {
		n := s.sim.AvatarDestroys(s.avatar)
		if n > 0 {
			s.logger.Debug("particles destroyed", "count", n)
		}
		r.Destroyed += n
		s.score++
	}

	s.sim.Advance()
	s.steer(in)

	s.difficultyIn--
	if s.difficultyIn <= 0 {
		s.difficultyIn = s.timing.DifficultyTicks
		s.target = min(s.target+s.increment, s.sim.Store().Cap())
		s.increment++
		r.Spawned = s.fill()
		s.logger.Info("difficulty raised", "target", s.target, "spawned", r.Spawned)
	}

	r.Score = s.score
	return r
}

func (s *Session) end(r Report, reason string) Report {
	s.over = true
	r.Over = true
	r.Score = s.score
	s.logger.Info("game over", "reason", reason, "score", s.score, "tick", s.tick)
	return r
}

func (s *Session) startEvent() Event {
	if s.sim.RandomInt(1)%2 == 0 {
		s.panicLeft = s.timing.PanicTicks
		s.logger.Info("panic mode", "ticks", s.panicLeft)
		return EventPanic
	}
	s.clickLeft = s.timing.ClickWindowTicks
	s.logger.Info("click prompt", "ticks", s.clickLeft)
	return EventClickPrompt
}

// eventDelay draws the next event delay in whole seconds from [1, EventMaxSeconds]
func (s *Session) eventDelay() int {
	maxSec := max(s.timing.EventMaxSeconds, 1)
	draw := s.sim.RandomInt(vmath.Digits(uint64(maxSec)))
	sec := int(draw)%maxSec + 1
	return s.cfg.Ticks(time.Duration(sec) * time.Second)
}

// fill spawns particles until the store reaches the target, returns how many were added
func (s *Session) fill() int {
	added := 0
	box := s.sim.Store()
	for box.Len() < s.target {
		id := s.nextID()
		if _, ok := s.sim.Spawn(id, s.avatar); !ok {
			s.logger.Warn("spawn skipped", "id", id, "count", box.Len(), "target", s.target)
			break
		}
		added++
	}
	return added
}

// nextID returns the lowest ID not held by a live particle
func (s *Session) nextID() core.ID {
	box := s.sim.Store()
	for id := core.ID(0); id < core.AvatarID; id++ {
		if !box.Contains(id) {
			return id
		}
	}
	panic("session: particle IDs exhausted")
}

// steer moves the avatar along the joystick direction, faster as difficulty rises
func (s *Session) steer(in Input) {
	mag := vmath.Clamp(in.Magnitude, 0, 1)
	if mag == 0 {
		return
	}
	rot := in.Angle * math.Pi / 180
	speed := mag * float64(s.target) * s.cfg.Avatar.SpeedFactor
	s.avatar.X += math.Sin(rot) * speed
	s.avatar.Y -= math.Cos(rot) * speed
	s.clampAvatar()
}

func (s *Session) clampAvatar() {
	arena := s.sim.Arena()
	r := s.avatar.R()
	s.avatar.X = vmath.Clamp(s.avatar.X, r, arena.MaxX()-r)
	s.avatar.Y = vmath.Clamp(s.avatar.Y, r, arena.MaxY()-r)
}

// Avatar returns the avatar entity
func (s *Session) Avatar() core.Particle { return s.avatar }

// Simulation returns the collision core
func (s *Session) Simulation() *engine.Simulation { return s.sim }

func (s *Session) Score() uint64      { return s.score }
func (s *Session) Started() bool      { return s.started }
func (s *Session) Over() bool         { return s.over }
func (s *Session) Target() int        { return s.target }
func (s *Session) PanicActive() bool  { return s.panicLeft > 0 }
func (s *Session) ClickPending() bool { return s.clickLeft > 0 }
