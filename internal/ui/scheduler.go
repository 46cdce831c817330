package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg runs queued frame callbacks
type frameMsg struct{}

// timerMsg fires the timer with the given id if it is still armed
type timerMsg struct {
	id int
}

// frameScheduler implements swiper.Scheduler on top of Bubble Tea ticks.
// It is only touched from Update, so it needs no locking. Requests made
// during Update turn into commands collected by Drain.
type frameScheduler struct {
	interval   time.Duration
	frames     []func()
	timers     map[int]func()
	nextID     int
	frameArmed bool
	wantFrame  bool
	cmds       []tea.Cmd
}

func newFrameScheduler(interval time.Duration) *frameScheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &frameScheduler{
		interval: interval,
		timers:   make(map[int]func()),
	}
}

// RequestFrame queues fn for the next frame tick
func (s *frameScheduler) RequestFrame(fn func()) {
	s.frames = append(s.frames, fn)
	s.wantFrame = true
}

// AfterFunc arms a one-shot timer; the returned func disarms it
func (s *frameScheduler) AfterFunc(d time.Duration, fn func()) func() {
	s.nextID++
	id := s.nextID
	s.timers[id] = fn
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return func() {
		delete(s.timers, id)
	}
}

// KeepAlive asks for another frame tick even with no callbacks queued,
// used while the rendered offset is still easing.
func (s *frameScheduler) KeepAlive() {
	s.wantFrame = true
}

// runFrame runs the callbacks queued before this frame. Callbacks they
// queue wait for the next one.
func (s *frameScheduler) runFrame() {
	s.frameArmed = false
	batch := s.frames
	s.frames = nil
	for _, fn := range batch {
		fn()
	}
}

// fire runs an armed timer. Returns false for cancelled or unknown ids.
func (s *frameScheduler) fire(id int) bool {
	fn, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	fn()
	return true
}

// armedTimers returns the number of timers still armed
func (s *frameScheduler) armedTimers() int {
	return len(s.timers)
}

// pendingFrames returns the number of queued frame callbacks
func (s *frameScheduler) pendingFrames() int {
	return len(s.frames)
}

// Drain returns the commands produced since the last call, including a
// frame tick when one is wanted and none is in flight.
func (s *frameScheduler) Drain() tea.Cmd {
	if s.wantFrame && !s.frameArmed {
		s.frameArmed = true
		s.cmds = append(s.cmds, tea.Tick(s.interval, func(time.Time) tea.Msg {
			return frameMsg{}
		}))
	}
	s.wantFrame = false

	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}
