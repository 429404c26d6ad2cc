package physics

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/confetti/common"
	"github.com/milk9111/confetti/emitter"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeConfetti
)

const (
	defaultMaxBodies = 2000
	// cullMargin is how far past the world edge a body may travel before it is removed.
	cullMargin       = 100.0
	wallThickness    = 1.0
)

// WorldConfig sizes the simulated canvas.
type WorldConfig struct {
	Width     float64
	Height    float64
	Gravity   float64
	Floor     bool
	Walls     bool
	MaxBodies int
}

// Particle is a confetti body owned by the world.
type Particle struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Sprite    string
	Width     float64
	Height    float64
	Collision emitter.CollisionCategory
}

// World owns the Chipmunk space the geyser appends confetti to.
type World struct {
	cfg       WorldConfig
	space     *cp.Space
	particles []*Particle
	removed   int
}

// NewWorld creates a space with gravity and the optional static bounds.
func NewWorld(cfg WorldConfig) *World {
	if cfg.Gravity == 0 {
		cfg.Gravity = common.Gravity
	}
	if cfg.MaxBodies <= 0 {
		cfg.MaxBodies = defaultMaxBodies
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	w := &World{cfg: cfg, space: space}
	w.buildStaticShapes()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Ready reports whether bodies can be added.
func (w *World) Ready() bool {
	return w != nil && w.space != nil
}

// Count returns the number of live confetti bodies.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return len(w.particles)
}

// Removed returns how many bodies the world has culled or evicted.
func (w *World) Removed() int {
	if w == nil {
		return 0
	}
	return w.removed
}

// AddBody creates a dynamic rectangle for d and inserts it into the space.
func (w *World) AddBody(d emitter.ParticleDescriptor) {
	if !w.Ready() {
		return
	}
	if d.Width <= 0 || d.Height <= 0 {
		log.Printf("PhysicsWorld: ignoring %vx%v body", d.Width, d.Height)
		return
	}

	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForBox(mass, d.Width, d.Height))
	body.SetPosition(cp.Vector{X: d.X, Y: d.Y})
	body.SetVelocity(d.Velocity.X, d.Velocity.Y)
	body.SetAngularVelocity(d.AngularVelocity)

	keep := 1 - d.FrictionAir
	if keep < 0 {
		keep = 0
	}
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, gravity, damping*keep, dt)
	})

	shape := cp.NewBox(body, d.Width, d.Height, 0)
	shape.SetFriction(0.8)
	shape.SetElasticity(0.2)
	shape.SetCollisionType(collisionTypeConfetti)
	shape.SetFilter(filterFor(d.Collision))

	w.space.AddBody(body)
	w.space.AddShape(shape)

	p := &Particle{
		Body:      body,
		Shape:     shape,
		Sprite:    d.Sprite,
		Width:     d.Width,
		Height:    d.Height,
		Collision: d.Collision,
	}
	body.UserData = p
	w.particles = append(w.particles, p)

	for len(w.particles) > w.cfg.MaxBodies {
		w.remove(0)
	}
}

func filterFor(c emitter.CollisionCategory) cp.ShapeFilter {
	if c == emitter.CollisionDefault {
		return cp.SHAPE_FILTER_ALL
	}
	// no categories and an empty mask: never pairs with anything
	return cp.SHAPE_FILTER_NONE
}

// Step advances the simulation and drops bodies that left the canvas.
func (w *World) Step(dt float64) {
	if !w.Ready() {
		return
	}
	w.space.Step(dt)

	for i := len(w.particles) - 1; i >= 0; i-- {
		if w.outOfBounds(w.particles[i].Body.Position()) {
			w.remove(i)
		}
	}
}

// EachParticle calls fn for every live body, oldest first.
func (w *World) EachParticle(fn func(p *Particle)) {
	if w == nil || fn == nil {
		return
	}
	for _, p := range w.particles {
		fn(p)
	}
}

func (w *World) outOfBounds(pos cp.Vector) bool {
	return pos.Y > w.cfg.Height+cullMargin ||
		pos.X < -cullMargin ||
		pos.X > w.cfg.Width+cullMargin
}

func (w *World) remove(i int) {
	p := w.particles[i]
	w.space.RemoveShape(p.Shape)
	w.space.RemoveBody(p.Body)
	w.particles = append(w.particles[:i], w.particles[i+1:]...)
	w.removed++
}

func (w *World) buildStaticShapes() {
	if w.cfg.Width <= 0 || w.cfg.Height <= 0 {
		return
	}
	var segments []struct{ a, b cp.Vector }
	if w.cfg.Floor {
		segments = append(segments, struct{ a, b cp.Vector }{
			a: cp.Vector{X: 0, Y: w.cfg.Height}, b: cp.Vector{X: w.cfg.Width, Y: w.cfg.Height},
		})
	}
	if w.cfg.Walls {
		segments = append(segments,
			struct{ a, b cp.Vector }{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: w.cfg.Height}},
			struct{ a, b cp.Vector }{a: cp.Vector{X: w.cfg.Width, Y: 0}, b: cp.Vector{X: w.cfg.Width, Y: w.cfg.Height}},
		)
	}
	for _, seg := range segments {
		shape := cp.NewSegment(w.space.StaticBody, seg.a, seg.b, wallThickness)
		shape.SetFriction(0.8)
		shape.SetCollisionType(collisionTypeSolid)
		w.space.AddShape(shape)
	}
}
