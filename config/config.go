// Package config loads session tuning from an optional TOML file layered over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/despar/constants"
	"github.com/lixenwraith/despar/core"
	"github.com/lixenwraith/despar/engine"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full tunable surface; zero-valued fields in a file keep their defaults
type Config struct {
	Arena     ArenaConfig     `toml:"arena"`
	Particles ParticlesConfig `toml:"particles"`
	Avatar    AvatarConfig    `toml:"avatar"`
	Timing    TimingConfig    `toml:"timing"`
	Entropy   EntropyConfig   `toml:"entropy"`
	Audio     AudioConfig     `toml:"audio"`
}

type ArenaConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ParticlesConfig struct {
	MaxCount         int     `toml:"max_count"`
	MaxSize          uint8   `toml:"max_size"`
	Initial          int     `toml:"initial"`
	SpawnClearance   float64 `toml:"spawn_clearance"`
	SpawnFarMargin   int     `toml:"spawn_far_margin"`
	SpawnMaxAttempts int     `toml:"spawn_max_attempts"`
}

type AvatarConfig struct {
	Radius      uint8   `toml:"radius"`
	X           float64 `toml:"x"`
	Y           float64 `toml:"y"`
	SpeedFactor float64 `toml:"speed_factor"`
}

// TimingConfig durations are converted to ticks at TickRate
type TimingConfig struct {
	TickRate         int      `toml:"tick_rate"`
	Difficulty       Duration `toml:"difficulty"`
	Panic            Duration `toml:"panic"`
	ClickWindow      Duration `toml:"click_window"`
	EventMaxInterval Duration `toml:"event_max_interval"`
}

type EntropyConfig struct {
	// Seed of zero picks a seed from the clock at startup
	Seed uint64 `toml:"seed"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Duration decodes TOML strings such as "30s" or "500ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Arena: ArenaConfig{
			Width:  constants.ArenaWidth,
			Height: constants.ArenaHeight,
		},
		Particles: ParticlesConfig{
			MaxCount:         constants.MaxParticles,
			MaxSize:          constants.MaxParticleSize,
			Initial:          constants.InitialParticles,
			SpawnClearance:   constants.SpawnClearance,
			SpawnFarMargin:   constants.SpawnFarMargin,
			SpawnMaxAttempts: constants.SpawnMaxAttempts,
		},
		Avatar: AvatarConfig{
			Radius:      constants.AvatarRadius,
			X:           constants.AvatarStartX,
			Y:           constants.AvatarStartY,
			SpeedFactor: constants.AvatarSpeedFactor,
		},
		Timing: TimingConfig{
			TickRate:         constants.TickRate,
			Difficulty:       Duration{constants.DifficultyInterval},
			Panic:            Duration{constants.PanicDuration},
			ClickWindow:      Duration{constants.ClickWindow},
			EventMaxInterval: Duration{constants.EventMaxInterval},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
	}
}

// Load decodes path over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks ranges the engine relies on
func (c *Config) Validate() error {
	size := int(c.Particles.MaxSize)
	switch {
	case c.Particles.MaxSize < constants.MinParticleRadius+1:
		return fmt.Errorf("%w: particles.max_size must be at least %d", ErrInvalid, constants.MinParticleRadius+1)
	case c.Arena.Width <= 2*size+c.Particles.SpawnFarMargin || c.Arena.Height <= 2*size+c.Particles.SpawnFarMargin:
		return fmt.Errorf("%w: arena %dx%d too small for particle size %d", ErrInvalid, c.Arena.Width, c.Arena.Height, size)
	case c.Particles.MaxCount <= 0 || c.Particles.MaxCount > int(core.AvatarID):
		return fmt.Errorf("%w: particles.max_count must be in [1, %d]", ErrInvalid, int(core.AvatarID))
	case c.Particles.Initial < 0 || c.Particles.Initial > c.Particles.MaxCount:
		return fmt.Errorf("%w: particles.initial must be in [0, max_count]", ErrInvalid)
	case c.Particles.SpawnMaxAttempts <= 0:
		return fmt.Errorf("%w: particles.spawn_max_attempts must be positive", ErrInvalid)
	case c.Particles.SpawnClearance < 0:
		return fmt.Errorf("%w: particles.spawn_clearance must not be negative", ErrInvalid)
	case c.Avatar.Radius == 0:
		return fmt.Errorf("%w: avatar.radius must be positive", ErrInvalid)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: timing.tick_rate must be positive", ErrInvalid)
	case c.Timing.Difficulty.Duration <= 0 || c.Timing.Panic.Duration <= 0 ||
		c.Timing.ClickWindow.Duration <= 0 || c.Timing.EventMaxInterval.Duration < time.Second:
		return fmt.Errorf("%w: timing durations must be positive and event_max_interval at least 1s", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1]", ErrInvalid)
	}
	return nil
}

// Engine converts to the simulation tuning
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Arena:            core.Arena{Width: c.Arena.Width, Height: c.Arena.Height},
		Capacity:         c.Particles.MaxCount,
		MaxParticleSize:  c.Particles.MaxSize,
		SpawnClearance:   c.Particles.SpawnClearance,
		SpawnFarMargin:   c.Particles.SpawnFarMargin,
		SpawnMaxAttempts: c.Particles.SpawnMaxAttempts,
	}
}

// Ticks converts a duration to whole ticks at the configured rate, never less than one
func (c *Config) Ticks(d time.Duration) int {
	n := int(d * time.Duration(c.Timing.TickRate) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}

// TickInterval is the wall-clock period between ticks for a caller driving the loop
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.TickRate)
}
