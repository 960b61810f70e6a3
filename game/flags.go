package game

import "sync/atomic"

// Flags are set asynchronously by input handlers and consumed once per tick
// Handlers only ever store true; the session clears a flag when it reads it
type Flags struct {
	start atomic.Bool
	click atomic.Bool
	quit  atomic.Bool
	pause atomic.Bool
}

// PressStart requests the session to begin
func (f *Flags) PressStart() { f.start.Store(true) }

// PressClick answers a click prompt
func (f *Flags) PressClick() { f.click.Store(true) }

// RequestQuit asks the driving loop to stop
func (f *Flags) RequestQuit() { f.quit.Store(true) }

// QuitRequested reports a pending quit without clearing it
func (f *Flags) QuitRequested() bool { return f.quit.Load() }

// TogglePause flips the pause state and returns the new value
func (f *Flags) TogglePause() bool {
	for {
		old := f.pause.Load()
		if f.pause.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether the clock should hold ticks
func (f *Flags) Paused() bool { return f.pause.Load() }

func (f *Flags) takeStart() bool { return f.start.Swap(false) }

func (f *Flags) takeClick() bool { return f.click.Swap(false) }
