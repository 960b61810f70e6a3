package constants

import "time"

// Avatar
const (
	// AvatarRadius is the avatar's collision radius
	AvatarRadius = 3

	// AvatarStartX is the avatar's initial horizontal position
	AvatarStartX = 47

	// AvatarStartY is the avatar's initial vertical position
	AvatarStartY = 23

	// AvatarSpeedFactor scales joystick magnitude by the current difficulty level
	AvatarSpeedFactor = 0.3
)

// Difficulty
const (
	// DifficultyInitialIncrement is the first raise of the target particle count
	DifficultyInitialIncrement = 2
)

// Session Timing
// Durations are converted to ticks by the caller's frame rate; the core never reads a clock
const (
	// TickRate is the default simulation cadence in ticks per second
	TickRate = 18

	// DifficultyInterval is how often the target particle count rises
	DifficultyInterval = 30 * time.Second

	// PanicDuration is how long panic mode lasts once triggered
	PanicDuration = 8 * time.Second

	// ClickWindow is how long the player has to answer a click prompt
	ClickWindow = 500 * time.Millisecond

	// EventMaxInterval bounds the random delay between events (drawn in [1s, EventMaxInterval])
	EventMaxInterval = 20 * time.Second
)
