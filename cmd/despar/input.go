package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/game"
)

// stick turns key presses into joystick readings; terminals report no key release,
// so each press holds for exactly one tick and key repeat keeps the avatar moving
type stick struct {
	mu      sync.Mutex
	pending game.Input
}

func (s *stick) push(angle float64) {
	s.mu.Lock()
	s.pending = game.Input{Magnitude: 1, Angle: angle}
	s.mu.Unlock()
}

// take returns the latest reading and recentres the stick
func (s *stick) take() game.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.pending
	s.pending = game.Input{}
	return in
}

// keyAction tells the input loop what a key did beyond setting flags
type keyAction int

const (
	actionNone keyAction = iota
	actionQuit
	actionPause
	actionResume
)

// handleKey maps one key event onto the session flags and the stick
func handleKey(ev *tcell.EventKey, flags *game.Flags, st *stick) keyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		flags.RequestQuit()
		return actionQuit
	case tcell.KeyEnter:
		flags.PressStart()
		return actionNone
	case tcell.KeyUp:
		st.push(0)
		return actionNone
	case tcell.KeyRight:
		st.push(90)
		return actionNone
	case tcell.KeyDown:
		st.push(180)
		return actionNone
	case tcell.KeyLeft:
		st.push(270)
		return actionNone
	case tcell.KeyRune:
	default:
		return actionNone
	}

	switch ev.Rune() {
	case 'q', 'Q':
		flags.RequestQuit()
		return actionQuit
	case 'd', 'D':
		flags.PressStart()
	case 'b', 'B', ' ':
		flags.PressClick()
	case 'p', 'P':
		if flags.TogglePause() {
			return actionPause
		}
		return actionResume
	case 'k':
		st.push(0)
	case 'l':
		st.push(90)
	case 'j':
		st.push(180)
	case 'h':
		st.push(270)
	}
	return actionNone
}

// pollInput forwards terminal events until quit or the screen is finalized
// Paused sessions receive no ticks, so the pause banner is drawn from here
func pollInput(screen tcell.Screen, flags *game.Flags, st *stick, arena core.Arena, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			quit()
			return
		case *tcell.EventKey:
			switch handleKey(ev, flags, st) {
			case actionQuit:
				quit()
				return
			case actionPause:
				drawPaused(screen, arena)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
