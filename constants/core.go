package constants

import "math"

// Arena
const (
	// ArenaWidth is the horizontal extent of the arena in world units (84x48 LCD)
	ArenaWidth = 84

	// ArenaHeight is the vertical extent of the arena in world units
	ArenaHeight = 48
)

// Particle Store Limits
const (
	// MaxParticles is the capacity of the particle store
	MaxParticles = 100

	// MaxParticleSize is the exclusive upper bound for spawned radii
	// Spawned radii fall in [MinParticleRadius, MaxParticleSize-1]
	MaxParticleSize = 5

	// MinParticleRadius is the smallest spawned radius
	MinParticleRadius = 2

	// InitialParticles is the particle count at session start
	InitialParticles = 3
)

// Spawn Placement
const (
	// SpawnClearance is the half-width of the square around the avatar where spawns are rejected
	SpawnClearance = 12

	// SpawnFarMargin is subtracted from an arena dimension to get the exclusive upper spawn coordinate
	SpawnFarMargin = 7

	// SpawnMaxAttempts bounds rejection sampling; a spawn that exhausts it is dropped
	SpawnMaxAttempts = 100
)

// Thermal Speed Model
const (
	// BoltzmannConstant in J/K
	BoltzmannConstant = 1.3806503e-23

	// ParticleMass is the molecular mass used by the speed model (kg, ~O2)
	ParticleMass = 4.8e-26

	// ThermalSpeedScale maps molecular speed (m/s) to world units per tick
	ThermalSpeedScale = 2e-3

	// VelocityXRange is the modulus of the raw horizontal velocity draw
	VelocityXRange = 8192

	// VelocityXDivisor scales the raw horizontal velocity draw into world units per tick
	VelocityXDivisor = 1e4
)

// Sensor Model (TMP36 on a 3.3V ADC)
const (
	// ADCReference is the ADC reference voltage
	ADCReference = 3.3

	// TMP36Offset is the sensor output offset in volts at 0°C, expressed as °C (0.5V * 100)
	TMP36Offset = 50.0

	// TMP36Scale is degrees Celsius per volt
	TMP36Scale = 100.0

	// CelsiusToKelvin is the offset between the two scales
	CelsiusToKelvin = 273.15
)

// AvatarID is reserved for the avatar and never handed to ordinary particles
const AvatarID = math.MaxUint16
