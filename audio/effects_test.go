package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to completion and returns the total sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1.0 || buf[j][0] > 1.0 || buf[j][1] < -1.0 || buf[j][1] > 1.0 {
				t.Fatalf("Sample %d out of range: %v", total+j, buf[j])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("Streamer did not terminate")
	return total
}

// TestOscillatorLength verifies a tone streams exactly its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if got, want := drain(t, osc), rate.N(100*time.Millisecond); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square waves only take the two extremes
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)
	if !ok || n != 50 {
		t.Fatalf("Expected 50 samples, got %d (ok=%v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, v)
		}
	}
}

// TestEnvelopeAttack verifies the first sample is silent and the envelope ends quiet
func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(100, d, WaveSquare, rate), d, 5*time.Millisecond, 5*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(d))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if last := samples[n-1][0]; last > 0.01 || last < -0.01 {
		t.Errorf("Expected near-silent last sample, got %f", last)
	}
	mid := samples[n/2][0]
	if mid != 1.0 && mid != -1.0 {
		t.Errorf("Expected full volume in sustain, got %f", mid)
	}
}

// TestCueStreamers verifies every cue terminates with in-range samples
func TestCueStreamers(t *testing.T) {
	rate := beep.SampleRate(22050)
	for cue := Cue(0); cue < cueCount; cue++ {
		s := CueStreamer(cue, rate, 0.8)
		if s == nil {
			t.Fatalf("Cue %s has no streamer", cue)
		}
		if n := drain(t, s); n == 0 {
			t.Errorf("Cue %s produced no samples", cue)
		}
	}
	if CueStreamer(cueCount, rate, 1) != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

// TestCueGameOverLength verifies the sequence covers all notes
func TestCueGameOverLength(t *testing.T) {
	rate := beep.SampleRate(22050)
	got := drain(t, CreateGameOverSound(rate))
	want := rate.N(250*time.Millisecond)*2 + rate.N(500*time.Millisecond)
	if got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}
}

// TestSoundManagerUninitialized verifies Play is a no-op without a speaker
func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.Play(CueDestroy)
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("Manager should not report initialized")
	}
}
