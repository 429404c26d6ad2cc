package emitter

import (
	"log"

	"github.com/milk9111/confetti/timer"
)

// World is the simulation the geyser appends bodies to. It may also implement
// Ready() bool to signal that it is still initialising.
type World interface {
	AddBody(d ParticleDescriptor)
}

type readiness interface {
	Ready() bool
}

// Geyser wires the scheduler, sampler and factory to a simulation world.
type Geyser struct {
	world     World
	scheduler *Scheduler
	sampler   *Sampler
	factory   *Factory
	logger    *log.Logger
}

// NewGeyser builds a geyser. A nil logger logs through log.Default().
func NewGeyser(world World, timers timer.Facility, clock timer.Clock, rng Rand, logger *log.Logger) *Geyser {
	if logger == nil {
		logger = log.Default()
	}
	return &Geyser{
		world:     world,
		scheduler: NewScheduler(timers, clock),
		sampler:   NewSampler(rng),
		factory:   NewFactory(rng),
		logger:    logger,
	}
}

// SetWorld swaps the simulation world, for hosts that construct it late.
func (g *Geyser) SetWorld(world World) {
	if g == nil {
		return
	}
	g.world = world
}

func (g *Geyser) worldReady() bool {
	if g.world == nil {
		return false
	}
	if r, ok := g.world.(readiness); ok {
		return r.Ready()
	}
	return true
}

// Activate validates cfg and starts emitting. When the world is not ready the
// call does nothing and returns a nil handle and nil error; the host is
// expected to activate again once it is.
func (g *Geyser) Activate(cfg Config) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !g.worldReady() {
		g.logger.Printf("Geyser: world not ready, skipping activation")
		return nil, nil
	}

	cfg.Sprites = append([]string(nil), cfg.Sprites...)
	h, err := g.scheduler.Activate(cfg, func() { g.emit(cfg) })
	if err != nil {
		return nil, err
	}
	h.onStop = func() {
		g.logger.Printf("Geyser: stopped after %d particles", h.emitted)
	}
	g.logger.Printf("Geyser: activated at (%.0f, %.0f), %.2fms interval for %v",
		cfg.Position.Left, cfg.Position.Top, h.IntervalMs(), cfg.Duration)
	return h, nil
}

// Deactivate stops future emissions. Bodies already in the world stay there.
func (g *Geyser) Deactivate(h *Handle) {
	g.scheduler.Deactivate(h)
}

func (g *Geyser) emit(cfg Config) {
	if !g.worldReady() {
		return
	}
	t := g.sampler.Sample(cfg)
	g.world.AddBody(g.factory.Build(cfg.Position, t, cfg))
}
