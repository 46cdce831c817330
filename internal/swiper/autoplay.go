package swiper

import "time"

// Autoplay is a cancellable one-shot timer that advances the swiper and
// re-arms itself. At most one timer is live at any time.
type Autoplay struct {
	sched    Scheduler
	interval time.Duration
	count    func() int
	advance  func()
	cancel   func()
}

// NewAutoplay creates an unarmed scheduler. count reports the current
// panel count and advance moves one page forward.
func NewAutoplay(sched Scheduler, interval time.Duration, count func() int, advance func()) *Autoplay {
	return &Autoplay{
		sched:    sched,
		interval: interval,
		count:    count,
		advance:  advance,
	}
}

// Schedule arms the timer, replacing any pending one. It does nothing when
// autoplay is disabled or there is nothing to page between.
func (a *Autoplay) Schedule() {
	if a.interval <= 0 || a.count() <= 1 {
		return
	}
	a.Cancel()
	a.cancel = a.sched.AfterFunc(a.interval, func() {
		a.cancel = nil
		a.advance()
		a.Schedule()
	})
}

// Cancel clears the pending timer. Idempotent.
func (a *Autoplay) Cancel() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

// Armed reports whether a timer is pending
func (a *Autoplay) Armed() bool {
	return a.cancel != nil
}

// Interval returns the configured delay
func (a *Autoplay) Interval() time.Duration {
	return a.interval
}

// SetInterval changes the delay used by the next Schedule.
func (a *Autoplay) SetInterval(d time.Duration) {
	if d < 0 {
		d = 0
	}
	a.interval = d
}
