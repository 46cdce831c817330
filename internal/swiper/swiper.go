package swiper

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// FlingSpeed is the release speed, in cells per millisecond, above which a
// drag pages regardless of distance.
const FlingSpeed = 0.3

// Swiper is the position controller. It owns the active index, offset and
// moving flag and is the only writer of PositionState. All methods must be
// called from the goroutine that delivers the Scheduler callbacks.
type Swiper struct {
	id     string
	opts   Options
	count  int
	sched  Scheduler
	clock  Clock
	logger Logger

	geom      Geometry
	container Rect
	measured  bool
	ready     bool
	mounted   bool // ready at least once since New or Unmount

	state     PositionState
	overrides []float64
	touch     *TouchTracker
	autoplay  *Autoplay
	seq       navSequence
	deferred  []navRequest

	onChange func(page int)
	onPaint  func(Frame)
}

// New creates an unmounted swiper over count panels. Nothing is painted
// until the first Measure.
func New(opts Options, count int, sched Scheduler) *Swiper {
	opts = opts.Normalize()
	s := &Swiper{
		id:        uuid.NewString(),
		opts:      opts,
		count:     max(count, 0),
		sched:     sched,
		clock:     systemClock{},
		logger:    nopLogger{},
		overrides: make([]float64, max(count, 0)),
		touch:     NewTouchTracker(opts.Axis),
	}
	s.autoplay = NewAutoplay(sched, opts.AutoPlay, s.Count, s.autoAdvance)
	return s
}

// ID returns the instance id used in log lines and events
func (s *Swiper) ID() string { return s.id }

// SetClock replaces the gesture clock
func (s *Swiper) SetClock(c Clock) { s.clock = c }

// SetLogger replaces the logger
func (s *Swiper) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	s.logger = l
}

// OnChange registers the page-change callback. It receives the logical page.
func (s *Swiper) OnChange(fn func(page int)) { s.onChange = fn }

// OnPaint registers the paint callback
func (s *Swiper) OnPaint(fn func(Frame)) { s.onPaint = fn }

// Count returns the number of panels
func (s *Swiper) Count() int { return s.count }

// Options returns the active options
func (s *Swiper) Options() Options { return s.opts }

// State returns a copy of the position state
func (s *Swiper) State() PositionState { return s.state }

// Geometry returns the current geometry
func (s *Swiper) Geometry() Geometry { return s.geom }

// Ready reports whether the swiper has been measured with usable geometry
func (s *Swiper) Ready() bool { return s.ready }

// Logical returns the active page normalized to [0, count)
func (s *Swiper) Logical() int { return Logical(s.state.Active, s.count) }

// Autoplay exposes the autoplay scheduler
func (s *Swiper) Autoplay() *Autoplay { return s.autoplay }

// Tracker exposes the touch tracker
func (s *Swiper) Tracker() *TouchTracker { return s.touch }

// Frame returns the current paint snapshot.
func (s *Swiper) Frame() Frame {
	overrides := make([]float64, len(s.overrides))
	copy(overrides, s.overrides)
	return Frame{
		Active:    s.state.Active,
		Logical:   s.Logical(),
		Count:     s.count,
		Offset:    s.state.Offset,
		Moving:    s.state.Moving,
		Axis:      s.opts.Axis,
		Geometry:  s.geom,
		Duration:  s.opts.Duration,
		Overrides: overrides,
	}
}

// Measure mounts the swiper against a container size, or re-initializes
// it after a resize. InitPage applies only until the first successful
// mount; later resizes keep the active page, even through a container
// that was too small to lay out.
func (s *Swiper) Measure(container Rect) {
	s.container = container
	s.measured = true
	if !s.mounted {
		s.init(s.opts.InitPage, false)
		return
	}
	s.logf("resize to %.0fx%.0f", container.Width, container.Height)
	s.init(s.Logical(), false)
}

// SetCount replaces the panel set size. Geometry, overrides and the
// position are re-derived synchronously.
func (s *Swiper) SetCount(count int) {
	count = max(count, 0)
	if count == s.count {
		return
	}
	s.logf("panel count %d -> %d", s.count, count)
	active := s.Logical()
	s.count = count
	s.overrides = make([]float64, count)
	if !s.measured {
		return
	}
	s.init(active, false)
	s.autoplay.Cancel()
	if s.ready {
		s.autoplay.Schedule()
	}
}

// SetOptions applies new options. A changed InitPage re-runs
// initialization with a transition; changed geometry options re-measure.
func (s *Swiper) SetOptions(opts Options) {
	opts = opts.Normalize()
	prev := s.opts
	s.opts = opts
	s.touch.SetAxis(opts.Axis)
	s.autoplay.SetInterval(opts.AutoPlay)

	if !s.measured {
		return
	}
	switch {
	case prev.InitPage != opts.InitPage:
		s.init(opts.InitPage, true)
	case prev.Width != opts.Width || prev.Height != opts.Height || prev.Axis != opts.Axis || prev.Loop != opts.Loop:
		s.init(s.Logical(), false)
	}
	if prev.AutoPlay != opts.AutoPlay {
		s.autoplay.Cancel()
		if s.ready {
			s.autoplay.Schedule()
		}
	}
}

// SetAutoPlay changes the autoplay interval at runtime. Zero stops it.
func (s *Swiper) SetAutoPlay(d time.Duration) {
	opts := s.opts
	opts.AutoPlay = d
	s.SetOptions(opts)
}

// Unmount cancels the autoplay timer and invalidates pending frames.
func (s *Swiper) Unmount() {
	s.autoplay.Cancel()
	s.seq.reset()
	s.touch.Reset()
	s.deferred = nil
	s.ready = false
	s.measured = false
	s.mounted = false
	s.logf("unmounted")
}

// init recomputes geometry and places the swiper at page active.
func (s *Swiper) init(active int, animate bool) {
	s.seq.reset()
	s.touch.Reset()

	s.geom = ComputeGeometry(s.opts.Axis, s.opts.Width, s.opts.Height, s.container, s.count)
	if !s.geom.Ready() {
		s.logf("container not laid out yet, deferring")
		s.ready = false
		// re-armed once the container is usable again
		s.autoplay.Cancel()
		return
	}

	for i := range s.overrides {
		s.overrides[i] = 0
	}
	active = rangeInt(active, 0, max(s.count-1, 0))
	s.state = PositionState{
		Active: active,
		Offset: TargetOffset(active, 0, s.geom, s.opts.Loop),
		Moving: !animate,
	}
	s.paint()

	if !s.ready {
		s.ready = true
		s.mounted = true
		s.logf("ready: %d panels, page size %.0f", s.count, s.geom.PageSize)
		s.autoplay.Cancel()
		s.autoplay.Schedule()
		pending := s.deferred
		s.deferred = nil
		for _, req := range pending {
			s.navigate(req)
		}
	}
}

// To navigates to index. Indexes outside [0, count) are normalized.
func (s *Swiper) To(index int) {
	s.navigate(navRequest{name: "to", pace: func(active int) int {
		n := s.count
		var target int
		if s.opts.Loop && index == n {
			target = index
			if active == 0 {
				target = 0
			}
		} else {
			target = Logical(index, n)
		}
		return target - active
	}})
}

// Next advances one page
func (s *Swiper) Next() {
	s.navigate(navRequest{name: "next", pace: func(int) int { return 1 }})
}

// autoAdvance is the autoplay tick. Ticks are dropped while the swiper is
// not laid out; only user navigations are deferred.
func (s *Swiper) autoAdvance() {
	if !s.ready {
		return
	}
	s.Next()
}

// Prev goes back one page
func (s *Swiper) Prev() {
	s.navigate(navRequest{name: "prev", pace: func(int) int { return -1 }})
}

func (s *Swiper) navigate(req navRequest) {
	if s.count <= 1 {
		return
	}
	s.touch.Reset()
	if !s.ready {
		s.deferred = append(s.deferred, req)
		return
	}
	if s.seq.busy() {
		s.seq.push(req)
		return
	}
	s.startSequence(req)
}

func (s *Swiper) startSequence(req navRequest) {
	s.state.Moving = true
	s.seq.phase = phasePendingSnap
	s.seq.current = req
	epoch := s.seq.epoch
	s.sched.RequestFrame(func() { s.snapFrame(epoch) })
}

func (s *Swiper) snapFrame(epoch int) {
	if epoch != s.seq.epoch || s.seq.phase != phasePendingSnap {
		return
	}
	s.resetPosition()
	s.seq.phase = phasePendingAnimate
	s.sched.RequestFrame(func() { s.animateFrame(epoch) })
}

func (s *Swiper) animateFrame(epoch int) {
	if epoch != s.seq.epoch || s.seq.phase != phasePendingAnimate {
		return
	}
	req := s.seq.current
	s.seq.phase = phaseIdle
	s.seq.current = navRequest{}

	s.state.Moving = false
	s.move(req.pace(s.state.Active), 0, true)

	if next, ok := s.seq.pop(); ok {
		s.startSequence(next)
	}
}

// resetPosition brings an active index left outside [0, count) by a loop
// wrap back into range without a visible transition.
func (s *Swiper) resetPosition() {
	s.state.Moving = true
	if s.state.Active <= -1 {
		s.move(s.count, 0, false)
	}
	if s.state.Active >= s.count {
		s.move(-s.count, 0, false)
	}
}

// move is the single place where PositionState changes after init.
func (s *Swiper) move(pace int, drag float64, emit bool) {
	n := s.count
	if n <= 1 || !s.geom.Ready() {
		return
	}

	target := s.state.Active
	if pace != 0 {
		target = WrapIndex(s.state.Active+pace, s.opts.Loop, n)
	}
	offset := TargetOffset(target, drag, s.geom, s.opts.Loop)

	if s.opts.Loop {
		s.relocate(offset)
	}

	if emit && Logical(target, n) != Logical(s.state.Active, n) {
		page := Logical(target, n)
		if s.onChange != nil {
			s.onChange(page)
		}
	}

	s.state.Active = target
	s.state.Offset = offset
	s.paint()
}

// relocate shifts the boundary panels so the wrap neighbour sits next to
// the visible page.
func (s *Swiper) relocate(offset float64) {
	last := s.count - 1
	if offset != s.geom.MinOffset {
		if offset < s.geom.MinOffset {
			s.overrides[0] = s.geom.TrackSize
		} else {
			s.overrides[0] = 0
		}
	}
	if offset != 0 {
		if offset > 0 {
			s.overrides[last] = -s.geom.TrackSize
		} else {
			s.overrides[last] = 0
		}
	}
}

// Overrides returns a copy of the per-panel relocation table
func (s *Swiper) Overrides() []float64 {
	out := make([]float64, len(s.overrides))
	copy(out, s.overrides)
	return out
}

// TouchStart begins a drag. It applies the event flags first, even when
// dragging is disabled.
func (s *Swiper) TouchStart(ev *TouchEvent) {
	if s.opts.PreventDefault {
		ev.PreventDefault()
	}
	if s.opts.StopPropagation {
		ev.StopPropagation()
	}
	if !s.opts.Touchable || s.count <= 1 || !s.ready {
		return
	}
	s.touch.Start(ev.X, ev.Y, s.clock.Now())
	s.autoplay.Cancel()
	// A grab takes over from any programmatic navigation still in flight.
	s.seq.reset()
	s.resetPosition()
}

// TouchMove follows the finger 1:1 along the axis. Cross-axis drags are
// tracked but do not pan.
func (s *Swiper) TouchMove(ev *TouchEvent) {
	if !s.opts.Touchable || !s.touch.Tracking() {
		return
	}
	delta, dir := s.touch.Update(ev.X, ev.Y)
	if dir.Matches(s.opts.Axis) {
		s.move(0, delta, false)
	}
}

// TouchEnd settles the drag on a page and re-arms autoplay.
func (s *Swiper) TouchEnd(ev *TouchEvent) {
	if !s.opts.Touchable || !s.touch.Tracking() {
		return
	}
	res := s.touch.End(s.clock.Now())
	s.state.Moving = false

	switch pace, ok := s.gesturePace(res); {
	case ok:
		s.move(pace, 0, true)
	case res.Delta != 0:
		s.move(0, 0, false)
	default:
		s.paint()
	}
	s.autoplay.Schedule()
}

// gesturePace decides whether a finished drag pages, and by how much.
func (s *Swiper) gesturePace(res TouchResult) (int, bool) {
	if !res.Direction.Matches(s.opts.Axis) || !s.geom.Ready() {
		return 0, false
	}
	elapsed := float64(res.Elapsed) / 1e6
	if elapsed < 1 {
		elapsed = 1
	}
	speed := res.Delta / elapsed
	fling := math.Abs(speed) > FlingSpeed
	far := math.Abs(res.Delta) > math.Round(s.geom.PageSize/2*100)/100
	if !fling && !far {
		return 0, false
	}

	if s.opts.Loop {
		if res.OffsetAlong(s.opts.Axis) <= 0 {
			return 0, true
		}
		if res.Delta > 0 {
			return -1, true
		}
		return 1, true
	}

	pages := res.Delta / s.geom.PageSize
	if res.Delta > 0 {
		return -int(math.Ceil(pages)), true
	}
	return -int(math.Floor(pages)), true
}

func (s *Swiper) paint() {
	if s.onPaint != nil {
		s.onPaint(s.Frame())
	}
}

func (s *Swiper) logf(format string, args ...any) {
	s.logger.Printf("swiper[%s] "+format, append([]any{s.id[:8]}, args...)...)
}
