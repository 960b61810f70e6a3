package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/despar/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq   float64
	phase  float64
	remain int
	wave   WaveType
	rate   beep.SampleRate
}

// NewOscillator creates a tone of the given length
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		remain: rate.N(duration),
		wave:   wave,
		rate:   rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.remain <= 0 {
		return 0, false
	}
	for i := range samples {
		if o.remain <= 0 {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1.0
			if o.phase >= 0.5 {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.remain--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s so it fades in over attack and out over release within duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(float64(remaining)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf, so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shapedTone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateDestroySound is a short rising pop
func CreateDestroySound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(shapedTone(660, WaveSine, constants.DestroySoundDuration, constants.DestroySoundAttack, constants.DestroySoundRelease, rate), 0.7),
		newVolume(shapedTone(1320, WaveSine, constants.DestroySoundDuration, constants.DestroySoundAttack, constants.DestroySoundRelease/2, rate), 0.3),
	)
}

// CreatePanicSound is a two-tone saw alarm
func CreatePanicSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := constants.PanicSoundNoteDuration, constants.PanicSoundAttack, constants.PanicSoundRelease
	return beep.Seq(
		shapedTone(880, WaveSaw, d, a, r, rate),
		shapedTone(587.33, WaveSaw, d, a, r, rate),
		shapedTone(880, WaveSaw, d, a, r, rate),
		shapedTone(587.33, WaveSaw, d, a, r, rate),
	)
}

// CreatePromptSound is a single square blip
func CreatePromptSound(rate beep.SampleRate) beep.Streamer {
	return shapedTone(1046.5, WaveSquare, constants.PromptSoundDuration, constants.PromptSoundAttack, constants.PromptSoundRelease, rate)
}

// CreateGameOverSound is a descending square triad
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	d, a, r := constants.GameOverNoteDuration, constants.GameOverAttack, constants.GameOverRelease
	return beep.Seq(
		shapedTone(523.25, WaveSquare, d, a, r, rate),
		shapedTone(392.00, WaveSquare, d, a, r, rate),
		shapedTone(261.63, WaveSquare, 2*d, a, 2*r, rate),
	)
}

// CueStreamer returns the sound for a cue at the given volume, nil for unknown cues
func CueStreamer(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueDestroy:
		s = CreateDestroySound(rate)
	case CuePanic:
		s = CreatePanicSound(rate)
	case CuePrompt:
		s = CreatePromptSound(rate)
	case CueGameOver:
		s = CreateGameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}
