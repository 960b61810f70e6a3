package main

import (
	"github.com/lixenwraith/despar/audio"
	"github.com/lixenwraith/despar/game"
)

// cues lists the sounds a tick report asks for; wasOver suppresses repeats after the session ends
func cues(r game.Report, wasOver bool) []audio.Cue {
	if wasOver {
		return nil
	}

	var out []audio.Cue
	if r.Destroyed > 0 {
		out = append(out, audio.CueDestroy)
	}
	switch r.Event {
	case game.EventPanic:
		out = append(out, audio.CuePanic)
	case game.EventClickPrompt:
		out = append(out, audio.CuePrompt)
	}
	if r.Over {
		out = append(out, audio.CueGameOver)
	}
	return out
}
