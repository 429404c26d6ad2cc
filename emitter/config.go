package emitter

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInvalidConfig wraps every validation failure reported by Config.Validate.
	ErrInvalidConfig = errors.New("emitter: invalid config")
)

const (
	// ParticleSize is the side length of every emitted body. Sprites larger
	// than this are scaled down when drawn.
	ParticleSize = 20

	// DefaultFrictionAir is the per-tick velocity loss applied when Config.AirFriction is zero.
	DefaultFrictionAir = 0.01
)

// Position is where the geyser sits on the canvas.
type Position struct {
	Top  float64
	Left float64
}

// Config describes one geyser burst. It is treated as immutable once activated.
type Config struct {
	Position Position
	// Angle is the launch direction in degrees, measured clockwise from +X in
	// screen space (Y grows downward).
	Angle float64
	// Spread is the width in degrees of the window centred on Angle.
	Spread float64
	// Velocity is the base launch speed in units per tick.
	Velocity float64
	// Volatility is the fractional deviation around Velocity.
	Volatility float64
	// AngularVelocity is the maximum spin in radians per tick.
	AngularVelocity float64
	// Concentration is the emission rate in particles per second.
	Concentration float64
	// Duration is how long the geyser runs after activation.
	Duration time.Duration
	// Sprites names the images a particle may be drawn with.
	Sprites []string

	CollisionsEnabled bool

	// AirFriction overrides DefaultFrictionAir when positive.
	AirFriction float64
}

// Interval is the time between emissions derived from Concentration. It is
// only meaningful for a config that passes validateSchedule.
func (c Config) Interval() time.Duration {
	return time.Duration(float64(time.Second) / c.Concentration)
}

// Validate checks every invariant a geyser needs before it may start emitting.
func (c Config) Validate() error {
	if err := c.validateSchedule(); err != nil {
		return err
	}
	if c.Volatility < 0 || math.IsNaN(c.Volatility) {
		return fmt.Errorf("%w: volatility must be >= 0, got %v", ErrInvalidConfig, c.Volatility)
	}
	if len(c.Sprites) == 0 {
		return fmt.Errorf("%w: sprites must not be empty", ErrInvalidConfig)
	}
	for i, s := range c.Sprites {
		if s == "" {
			return fmt.Errorf("%w: sprite %d has an empty name", ErrInvalidConfig, i)
		}
	}
	if c.AirFriction < 0 || c.AirFriction >= 1 {
		return fmt.Errorf("%w: air friction must be in [0,1), got %v", ErrInvalidConfig, c.AirFriction)
	}
	return nil
}

func (c Config) validateSchedule() error {
	if math.IsNaN(c.Concentration) || math.IsInf(c.Concentration, 0) || c.Concentration <= 0 {
		return fmt.Errorf("%w: concentration must be > 0, got %v", ErrInvalidConfig, c.Concentration)
	}
	if c.Interval() <= 0 {
		return fmt.Errorf("%w: concentration %v is too high to schedule", ErrInvalidConfig, c.Concentration)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration must be >= 0, got %v", ErrInvalidConfig, c.Duration)
	}
	return nil
}

func (c Config) frictionAir() float64 {
	if c.AirFriction > 0 {
		return c.AirFriction
	}
	return DefaultFrictionAir
}
