package timer

import "time"

// Clock reports monotonic time relative to an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// Facility schedules periodic callbacks on the host event loop.
type Facility interface {
	SchedulePeriodic(fn func(), interval time.Duration) Token
	Cancel(tok Token)
}

// Token identifies a scheduled callback. The zero Token is never issued.
type Token uint64

// Valid reports whether the token was issued by a facility.
func (t Token) Valid() bool {
	return t != 0
}

type periodic struct {
	tok      Token
	fn       func()
	interval time.Duration
	next     time.Duration
}

// Loop is a frame-driven timer facility and clock. The host advances it once per
// update tick; callbacks run synchronously on the caller's goroutine, so nothing
// here is safe for concurrent use.
type Loop struct {
	now    time.Duration
	lastID Token
	timers []*periodic
}

func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's virtual time.
func (l *Loop) Now() time.Duration {
	if l == nil {
		return 0
	}
	return l.now
}

// SchedulePeriodic runs fn every interval starting one interval from now.
func (l *Loop) SchedulePeriodic(fn func(), interval time.Duration) Token {
	if l == nil || fn == nil || interval <= 0 {
		return 0
	}
	l.lastID++
	l.timers = append(l.timers, &periodic{
		tok:      l.lastID,
		fn:       fn,
		interval: interval,
		next:     l.now + interval,
	})
	return l.lastID
}

// Cancel stops a scheduled callback. Unknown or already cancelled tokens are ignored.
func (l *Loop) Cancel(tok Token) {
	if l == nil || !tok.Valid() {
		return
	}
	for i, p := range l.timers {
		if p.tok == tok {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}

// Pending returns the number of live periodic callbacks.
func (l *Loop) Pending() int {
	if l == nil {
		return 0
	}
	return len(l.timers)
}

// Advance moves time forward by dt, firing every callback that falls due in
// timestamp order. Ties fire in scheduling order.
func (l *Loop) Advance(dt time.Duration) {
	if l == nil || dt < 0 {
		return
	}
	target := l.now + dt
	for {
		p := l.earliest(target)
		if p == nil {
			break
		}
		l.now = p.next
		p.next += p.interval
		p.fn()
	}
	l.now = target
}

func (l *Loop) earliest(limit time.Duration) *periodic {
	var best *periodic
	for _, p := range l.timers {
		if p.next > limit {
			continue
		}
		if best == nil || p.next < best.next || (p.next == best.next && p.tok < best.tok) {
			best = p
		}
	}
	return best
}
