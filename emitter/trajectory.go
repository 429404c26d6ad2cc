package emitter

import (
	"math"

	"github.com/milk9111/confetti/common"
)

// Rand is the randomness a geyser consumes. *rand.Rand from math/rand/v2
// satisfies it.
type Rand interface {
	// Float64 returns a uniform sample in [0,1).
	Float64() float64
	// IntN returns a uniform sample in [0,n).
	IntN(n int) int
}

type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Trajectory is the randomized launch of one particle.
type Trajectory struct {
	Direction       Vec2
	AngularVelocity float64
}

// Sampler draws trajectories around a config's base angle and velocity.
type Sampler struct {
	rng Rand
}

func NewSampler(rng Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Sample returns one trajectory. Spin is scaled by the same sample as speed, so
// faster particles also spin faster.
func (s *Sampler) Sample(cfg Config) Trajectory {
	uAngle := s.rng.Float64()
	uVel := s.rng.Float64()

	halfSpread := cfg.Spread / 2
	angle := common.Lerp(uAngle, cfg.Angle-halfSpread, cfg.Angle+halfSpread)

	deviation := cfg.Velocity * cfg.Volatility
	speed := common.Lerp(uVel, cfg.Velocity-deviation, cfg.Velocity+deviation)

	rad := common.DegToRad(angle)
	return Trajectory{
		Direction: Vec2{
			X: math.Cos(rad) * speed,
			Y: math.Sin(rad) * speed,
		},
		AngularVelocity: cfg.AngularVelocity * uVel,
	}
}
