package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Destroy Sound Timing
const (
	DestroySoundDuration = 120 * time.Millisecond
	DestroySoundAttack   = 5 * time.Millisecond
	DestroySoundRelease  = 90 * time.Millisecond
)

// Panic Alarm Timing
const (
	PanicSoundNoteDuration = 150 * time.Millisecond
	PanicSoundAttack       = 5 * time.Millisecond
	PanicSoundRelease      = 40 * time.Millisecond
)

// Click Prompt Timing
const (
	PromptSoundDuration = 80 * time.Millisecond
	PromptSoundAttack   = 2 * time.Millisecond
	PromptSoundRelease  = 30 * time.Millisecond
)

// Game Over Timing
const (
	GameOverNoteDuration = 250 * time.Millisecond
	GameOverAttack       = 10 * time.Millisecond
	GameOverRelease      = 120 * time.Millisecond
)
