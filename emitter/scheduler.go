package emitter

import (
	"time"

	"github.com/milk9111/confetti/timer"
)

// Scheduler drives emission timing on a host timer facility.
type Scheduler struct {
	timers timer.Facility
	clock  timer.Clock
}

func NewScheduler(timers timer.Facility, clock timer.Clock) *Scheduler {
	return &Scheduler{timers: timers, clock: clock}
}

// Handle is the live schedule of one activation. Only the scheduler's tick and
// Deactivate touch it.
type Handle struct {
	timers    timer.Facility
	tok       timer.Token
	startedAt time.Duration
	interval  time.Duration
	duration  time.Duration
	active    bool
	emitted   int
	onStop    func()
}

// Active reports whether the schedule will still emit.
func (h *Handle) Active() bool {
	return h != nil && h.active
}

// Emitted is the number of onEmit calls made so far.
func (h *Handle) Emitted() int {
	if h == nil {
		return 0
	}
	return h.emitted
}

func (h *Handle) StartedAt() time.Duration {
	if h == nil {
		return 0
	}
	return h.startedAt
}

func (h *Handle) Interval() time.Duration {
	if h == nil {
		return 0
	}
	return h.interval
}

// IntervalMs is Interval in fractional milliseconds (1000/concentration).
func (h *Handle) IntervalMs() float64 {
	return float64(h.Interval()) / float64(time.Millisecond)
}

// Activate validates the schedule fields of cfg and starts a periodic tick that
// calls onEmit until cfg.Duration has elapsed. Nothing is scheduled on error.
func (s *Scheduler) Activate(cfg Config, onEmit func()) (*Handle, error) {
	if err := cfg.validateSchedule(); err != nil {
		return nil, err
	}
	h := &Handle{
		timers:    s.timers,
		startedAt: s.clock.Now(),
		interval:  cfg.Interval(),
		duration:  cfg.Duration,
		active:    true,
	}
	h.tok = s.timers.SchedulePeriodic(func() { s.tick(h, onEmit) }, h.interval)
	if !h.tok.Valid() {
		h.active = false
	}
	return h, nil
}

// Deactivate stops the schedule. It is safe to call on a nil, stopped or
// self-terminated handle.
func (s *Scheduler) Deactivate(h *Handle) {
	h.stop()
}

func (s *Scheduler) tick(h *Handle, onEmit func()) {
	if !h.active {
		return
	}
	// Checked before emitting so a zero duration never emits.
	if s.clock.Now()-h.startedAt > h.duration {
		h.stop()
		return
	}
	h.emitted++
	if onEmit != nil {
		onEmit()
	}
}

func (h *Handle) stop() {
	if h == nil || !h.active {
		return
	}
	h.active = false
	if h.timers != nil {
		h.timers.Cancel(h.tok)
	}
	if h.onStop != nil {
		h.onStop()
	}
}
