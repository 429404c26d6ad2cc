package emitter

// CollisionCategory tags a body for the simulation's collision pairing.
type CollisionCategory uint8

const (
	// CollisionNone keeps a body out of every collision pair.
	CollisionNone CollisionCategory = iota
	// CollisionDefault is the engine's shared category; bodies collide with each
	// other and with the environment.
	CollisionDefault
)

func (c CollisionCategory) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionDefault:
		return "default"
	default:
		return "unknown"
	}
}

// ParticleDescriptor is everything the simulation needs to create one confetti
// body. The simulation owns the body after AddBody.
type ParticleDescriptor struct {
	X               float64
	Y               float64
	Width           float64
	Height          float64
	Sprite          string
	Collision       CollisionCategory
	FrictionAir     float64
	Velocity        Vec2
	AngularVelocity float64
}

// Factory turns sampled trajectories into particle descriptors.
type Factory struct {
	rng Rand
}

func NewFactory(rng Rand) *Factory {
	return &Factory{rng: rng}
}

// Build assumes cfg has passed Validate.
func (f *Factory) Build(pos Position, t Trajectory, cfg Config) ParticleDescriptor {
	category := CollisionNone
	if cfg.CollisionsEnabled {
		category = CollisionDefault
	}
	return ParticleDescriptor{
		X:               pos.Left,
		Y:               pos.Top,
		Width:           ParticleSize,
		Height:          ParticleSize,
		Sprite:          cfg.Sprites[f.rng.IntN(len(cfg.Sprites))],
		Collision:       category,
		FrictionAir:     cfg.frictionAir(),
		Velocity:        t.Direction,
		AngularVelocity: t.AngularVelocity,
	}
}
