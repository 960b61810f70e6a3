package game

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/despar/core"
)

// Clock runs a tick function on a fixed interval with drift correction
// Ticks are held while paused reports true; no catch-up burst follows a pause
type Clock struct {
	interval time.Duration
	paused   func() bool
	tick     func()

	ticks atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClock creates a stopped clock; paused may be nil
func NewClock(interval time.Duration, paused func() bool, tick func()) *Clock {
	if interval <= 0 {
		panic("clock: interval must be positive")
	}
	if paused == nil {
		paused = func() bool { return false }
	}
	return &Clock{
		interval: interval,
		paused:   paused,
		tick:     tick,
		stopChan: make(chan struct{}),
	}
}

// Start begins the tick loop
func (c *Clock) Start() {
	if c.running.CompareAndSwap(false, true) {
		c.wg.Add(1)
		core.Go(c.loop)
	}
}

// Stop halts the loop and waits for an in-flight tick to finish
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
		if c.running.Load() {
			c.wg.Wait()
		}
	})
}

// Ticks returns the number of ticks run
func (c *Clock) Ticks() uint64 {
	return c.ticks.Load()
}

func (c *Clock) loop() {
	defer c.wg.Done()

	timer := time.NewTimer(c.interval)
	defer timer.Stop()

	deadline := time.Now().Add(c.interval)
	for {
		select {
		case <-c.stopChan:
			return
		case <-timer.C:
		}

		now := time.Now()
		switch {
		case c.paused():
			deadline = now.Add(c.interval)
		case !now.Before(deadline):
			c.tick()
			c.ticks.Add(1)

			deadline = deadline.Add(c.interval)
			if now.Sub(deadline) > 2*c.interval {
				deadline = now.Add(c.interval)
			}
		}

		wait := time.Until(deadline)
		if wait < 0 {
			wait = 0
		}
		timer.Reset(wait)
	}
}
