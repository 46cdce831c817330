// Package swipertest provides a deterministic host for driving a swiper in
// tests: a fake clock, a frame queue and cancellable timers, all advanced
// explicitly by the test.
package swipertest

import (
	"sort"
	"time"
)

// FrameInterval is the simulated time between animation frames.
const FrameInterval = 16 * time.Millisecond

type timer struct {
	id        int
	at        time.Time
	fn        func()
	cancelled bool
}

// Host implements swiper.Scheduler and swiper.Clock. It is not safe for
// concurrent use; tests drive it from one goroutine like a UI loop.
type Host struct {
	now     time.Time
	frames  []func()
	timers  []*timer
	nextID  int
	Frames  int // frame callbacks run so far
	Expired int // timers fired so far
}

// NewHost returns a host whose clock starts at a fixed epoch.
func NewHost() *Host {
	return &Host{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the fake time
func (h *Host) Now() time.Time {
	return h.now
}

// RequestFrame queues fn for the next frame
func (h *Host) RequestFrame(fn func()) {
	h.frames = append(h.frames, fn)
}

// AfterFunc arms a one-shot timer on the fake clock
func (h *Host) AfterFunc(d time.Duration, fn func()) func() {
	h.nextID++
	t := &timer{id: h.nextID, at: h.now.Add(d), fn: fn}
	h.timers = append(h.timers, t)
	return func() { t.cancelled = true }
}

// PendingFrames returns the number of queued frame callbacks
func (h *Host) PendingFrames() int {
	return len(h.frames)
}

// ActiveTimers returns the number of armed, uncancelled timers
func (h *Host) ActiveTimers() int {
	n := 0
	for _, t := range h.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Frame runs one animation frame: every callback queued before it started.
// Callbacks queued while it runs wait for the next frame.
func (h *Host) Frame() bool {
	if len(h.frames) == 0 {
		return false
	}
	h.now = h.now.Add(FrameInterval)
	batch := h.frames
	h.frames = nil
	for _, fn := range batch {
		h.Frames++
		fn()
	}
	return true
}

// RunFrames runs frames until the queue is empty. Timers are not fired.
func (h *Host) RunFrames() {
	for i := 0; i < 10000 && h.Frame(); i++ {
	}
}

// Sleep moves the clock without running frames or timers.
func (h *Host) Sleep(d time.Duration) {
	h.now = h.now.Add(d)
}

// Advance moves the clock forward by d, firing timers and frames in time
// order as they fall due.
func (h *Host) Advance(d time.Duration) {
	end := h.now.Add(d)
	for {
		h.compact()
		var next *timer
		if len(h.timers) > 0 {
			next = h.timers[0]
		}
		frameAt := h.now.Add(FrameInterval)
		hasFrame := len(h.frames) > 0 && !frameAt.After(end)

		switch {
		case hasFrame && (next == nil || !next.at.Before(frameAt)):
			h.Frame()
		case next != nil && !next.at.After(end):
			if next.at.After(h.now) {
				h.now = next.at
			}
			next.cancelled = true
			h.Expired++
			next.fn()
		default:
			h.now = end
			return
		}
	}
}

// compact drops cancelled timers and orders the rest by deadline.
func (h *Host) compact() {
	live := h.timers[:0]
	for _, t := range h.timers {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	h.timers = live
	sort.SliceStable(h.timers, func(i, j int) bool {
		if h.timers[i].at.Equal(h.timers[j].at) {
			return h.timers[i].id < h.timers[j].id
		}
		return h.timers[i].at.Before(h.timers[j].at)
	})
}
