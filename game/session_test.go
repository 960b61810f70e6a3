package game

import (
	"io"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/despar/config"
	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/engine"
	"github.com/lixenwraith/despar/entropy"
)

const noEvents = math.MaxInt32

func newTestSession(t *testing.T, mutate func(*config.Config)) (*Session, *Flags) {
	t.Helper()
	cfg := config.Default()
	cfg.Particles.Initial = 0
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Invalid test config: %v", err)
	}

	mixer := entropy.NewMixer(entropy.ConstantChannel(0.3), entropy.ConstantChannel(0.2), entropy.ConstantChannel(0.8), 17)
	sim := engine.NewSimulation(cfg.Engine(), mixer, entropy.FixedKelvin(298.15))
	flags := &Flags{}
	s := NewSession(cfg, sim, flags, log.New(io.Discard))
	s.eventIn = noEvents
	return s, flags
}

func start(t *testing.T, s *Session, flags *Flags) {
	t.Helper()
	flags.PressStart()
	s.Tick(Input{})
	if !s.Started() {
		t.Fatal("Session did not start")
	}
}

// placeOnAvatar appends a stationary particle overlapping the avatar
func placeOnAvatar(t *testing.T, s *Session, id core.ID) {
	t.Helper()
	a := s.Avatar()
	if !s.Simulation().Insert(core.Particle{ID: id, Radius: 2, X: a.X + 1, Y: a.Y}) {
		t.Fatal("Failed to place particle")
	}
}

func TestSession_IdleUntilStart(t *testing.T) {
	s, flags := newTestSession(t, nil)
	s.Simulation().Insert(core.Particle{ID: 1, Radius: 2, X: 10, Y: 10, VX: 1})

	if r := s.Tick(Input{}); r != (Report{}) {
		t.Errorf("Expected empty report before start, got %+v", r)
	}
	if p, _ := s.Simulation().Store().Find(1); p.X != 10 {
		t.Error("Simulation advanced before start")
	}

	flags.PressStart()
	r := s.Tick(Input{})
	if !s.Started() || r.Tick != 1 {
		t.Errorf("Expected first tick after start, got %+v", r)
	}
	if p, _ := s.Simulation().Store().Find(1); p.X != 11 {
		t.Errorf("Expected particle to advance to 11, got %f", p.X)
	}
}

func TestNewSession_SpawnsInitialParticles(t *testing.T) {
	s, _ := newTestSession(t, func(c *config.Config) { c.Particles.Initial = 3 })
	if n := s.Simulation().Store().Len(); n != 3 {
		t.Errorf("Expected 3 initial particles, got %d", n)
	}
	if s.Target() != 3 {
		t.Errorf("Expected target 3, got %d", s.Target())
	}
}

func TestSession_DestroysAndScores(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)
	score := s.Score()

	placeOnAvatar(t, s, 1)
	r := s.Tick(Input{})

	if r.Destroyed != 1 {
		t.Errorf("Expected 1 destroyed, got %d", r.Destroyed)
	}
	if s.Simulation().Store().Len() != 0 {
		t.Error("Expected store empty after destruction")
	}
	if r.Score != score+1 {
		t.Errorf("Expected score %d, got %d", score+1, r.Score)
	}
}

func TestSession_PanicTouchEndsGame(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)
	s.panicLeft = 5
	placeOnAvatar(t, s, 1)

	r := s.Tick(Input{})

	if !r.Over || !s.Over() {
		t.Fatal("Expected game over on touch during panic")
	}
	if s.Simulation().Store().Len() != 1 {
		t.Error("Panic mode must not destroy particles")
	}

	score := s.Score()
	r = s.Tick(Input{})
	if !r.Over || r.Score != score {
		t.Errorf("Finished session should be inert, got %+v", r)
	}
}

func TestSession_PanicExpires(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)
	s.panicLeft = 2
	score := s.Score()

	s.Tick(Input{})
	if s.Score() != score {
		t.Error("No score while panic mode is active")
	}
	if r := s.Tick(Input{}); !r.PanicEnded {
		t.Error("Expected panic mode to end on second tick")
	}
	if s.PanicActive() {
		t.Error("Panic still active")
	}
	s.Tick(Input{})
	if s.Score() != score+1 {
		t.Errorf("Expected scoring to resume, got %d", s.Score())
	}
}

func TestSession_ClickWindowMissed(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)
	s.clickLeft = 2

	if r := s.Tick(Input{}); r.Over {
		t.Fatal("Game ended before window closed")
	}
	if r := s.Tick(Input{}); !r.Over {
		t.Error("Expected game over when click window closes")
	}
}

func TestSession_ClickAnswered(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)
	s.clickLeft = 3
	placeOnAvatar(t, s, 1)
	score := s.Score()

	flags.PressClick()
	r := s.Tick(Input{})

	if !r.ClickResolved || s.ClickPending() {
		t.Fatal("Expected click prompt resolved")
	}
	if r.Destroyed != 1 {
		t.Errorf("Expected 1 destroyed, got %d", r.Destroyed)
	}
	if r.Score != score+2 {
		t.Errorf("Expected score +2 (click and tick), got %d", r.Score-score)
	}
}

func TestSession_StaleClickIgnored(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)

	flags.PressClick()
	s.Tick(Input{})

	s.clickLeft = 1
	if r := s.Tick(Input{}); !r.Over {
		t.Error("A click pressed before the prompt must not answer it")
	}
}

func TestSession_ClickBeforePromptOpensIgnored(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)

	for attempt := 0; attempt < 64; attempt++ {
		s.eventIn = 1
		s.panicLeft = 0
		flags.PressClick()

		r := s.Tick(Input{})
		if r.Event != EventClickPrompt {
			continue
		}
		if r.ClickResolved {
			t.Fatal("A click pressed on the tick the prompt opens must not answer it")
		}
		if !s.ClickPending() {
			t.Fatal("Expected the prompt to stay pending")
		}
		return
	}
	t.Fatal("No click prompt started in 64 event ticks")
}

func TestSession_DifficultyRaisesTarget(t *testing.T) {
	s, flags := newTestSession(t, func(c *config.Config) {
		c.Particles.Initial = 3
		c.Timing.TickRate = 10
		c.Timing.Difficulty = config.Duration{Duration: 200 * time.Millisecond}
	})
	flags.PressStart()

	s.Tick(Input{})
	r := s.Tick(Input{})
	if s.Target() != 5 || r.Spawned != 2 {
		t.Fatalf("Expected target 5 with 2 spawned, got target %d spawned %d", s.Target(), r.Spawned)
	}
	if n := s.Simulation().Store().Len(); n != 5 {
		t.Errorf("Expected 5 particles, got %d", n)
	}

	s.Tick(Input{})
	s.Tick(Input{})
	if s.Target() != 8 {
		t.Errorf("Expected increment to grow to 3, target 8, got %d", s.Target())
	}
	if n := s.Simulation().Store().Len(); n != 8 {
		t.Errorf("Expected 8 particles, got %d", n)
	}
}

func TestSession_TargetCappedAtCapacity(t *testing.T) {
	s, flags := newTestSession(t, func(c *config.Config) {
		c.Particles.MaxCount = 4
		c.Particles.Initial = 3
		c.Timing.TickRate = 10
		c.Timing.Difficulty = config.Duration{Duration: 100 * time.Millisecond}
	})
	start(t, s, flags)

	for i := 0; i < 3; i++ {
		s.Tick(Input{})
	}
	if s.Target() != 4 || s.Simulation().Store().Len() > 4 {
		t.Errorf("Expected target capped at 4, got %d with %d particles", s.Target(), s.Simulation().Store().Len())
	}
}

func TestSession_Steering(t *testing.T) {
	s, flags := newTestSession(t, func(c *config.Config) { c.Particles.Initial = 3 })
	start(t, s, flags)
	before := s.Avatar()

	s.Tick(Input{Magnitude: 1, Angle: 90})

	after := s.Avatar()
	want := before.X + 3*0.3
	if math.Abs(after.X-want) > 1e-9 {
		t.Errorf("Expected X %f, got %f", want, after.X)
	}
	if math.Abs(after.Y-before.Y) > 1e-9 {
		t.Errorf("Expected Y unchanged, got %f", after.Y)
	}

	s.Tick(Input{Magnitude: 1, Angle: 0})
	if s.Avatar().Y >= after.Y {
		t.Error("Angle 0 should move the avatar up")
	}
}

func TestSession_AvatarClamped(t *testing.T) {
	s, flags := newTestSession(t, func(c *config.Config) { c.Particles.Initial = 3 })
	start(t, s, flags)

	for i := 0; i < 500; i++ {
		s.Tick(Input{Magnitude: 5, Angle: 270})
		s.Tick(Input{Magnitude: 5, Angle: 180})
	}

	a := s.Avatar()
	if math.Abs(a.X-a.R()) > 1e-9 {
		t.Errorf("Expected avatar X clamped to %f, got %f", a.R(), a.X)
	}
	if want := s.Simulation().Arena().MaxY() - a.R(); math.Abs(a.Y-want) > 1e-9 {
		t.Errorf("Expected avatar Y clamped to %f, got %f", want, a.Y)
	}
}

func TestSession_NextIDReusesGaps(t *testing.T) {
	s, _ := newTestSession(t, nil)
	for _, id := range []core.ID{0, 1, 3} {
		s.Simulation().Insert(core.Particle{ID: id, Radius: 2, X: 10 + float64(id)*10, Y: 10})
	}
	if id := s.nextID(); id != 2 {
		t.Errorf("Expected lowest free ID 2, got %d", id)
	}
}

func TestSession_EventStarts(t *testing.T) {
	s, flags := newTestSession(t, nil)
	start(t, s, flags)
	s.eventIn = 1

	r := s.Tick(Input{})

	switch r.Event {
	case EventPanic:
		if !s.PanicActive() {
			t.Error("Panic event without panic mode")
		}
	case EventClickPrompt:
		if !s.ClickPending() {
			t.Error("Click event without pending prompt")
		}
	default:
		t.Fatal("Expected an event to start")
	}
	if s.eventIn <= 0 {
		t.Error("Expected next event to be rescheduled")
	}
}

func TestSession_EventDelayRange(t *testing.T) {
	s, _ := newTestSession(t, nil)
	maxTicks := s.cfg.Ticks(s.cfg.Timing.EventMaxInterval.Duration)
	minTicks := s.cfg.Ticks(time.Second)
	for i := 0; i < 200; i++ {
		d := s.eventDelay()
		if d < minTicks || d > maxTicks {
			t.Fatalf("Event delay %d outside [%d, %d]", d, minTicks, maxTicks)
		}
	}
}

func TestFlags_ConcurrentPresses(t *testing.T) {
	flags := &Flags{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flags.PressClick()
		}()
	}
	wg.Wait()

	if !flags.takeClick() {
		t.Error("Expected click flag set")
	}
	if flags.takeClick() {
		t.Error("Flag must clear after being taken")
	}
}

func TestEvent_String(t *testing.T) {
	if EventPanic.String() != "panic" || EventClickPrompt.String() != "click" || EventNone.String() != "none" {
		t.Error("Unexpected event names")
	}
}
