package swiper

import (
	"math"
	"time"
)

// DirectionThreshold is the displacement in cells a drag must exceed
// before its direction locks.
const DirectionThreshold = 5.0

// Direction is the locked direction of a drag.
type Direction int

const (
	Undetermined Direction = iota
	DirHorizontal
	DirVertical
)

func (d Direction) String() string {
	switch d {
	case DirHorizontal:
		return "horizontal"
	case DirVertical:
		return "vertical"
	default:
		return ""
	}
}

// Matches reports whether the drag direction pans along axis.
func (d Direction) Matches(axis Axis) bool {
	switch d {
	case DirHorizontal:
		return axis == Horizontal
	case DirVertical:
		return axis == Vertical
	}
	return false
}

// TouchState is the record of the gesture in progress.
type TouchState struct {
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Direction Direction
	StartTime time.Time
}

// TouchResult summarizes a finished gesture.
type TouchResult struct {
	Delta     float64 // displacement along the configured axis
	Elapsed   time.Duration
	OffsetX   float64
	OffsetY   float64
	Direction Direction
}

// OffsetAlong returns the absolute displacement along axis
func (r TouchResult) OffsetAlong(axis Axis) float64 {
	if axis == Vertical {
		return r.OffsetY
	}
	return r.OffsetX
}

// TouchTracker accumulates one drag at a time: idle -> tracking -> idle.
// It owns its TouchState and never touches the position state.
type TouchTracker struct {
	axis      Axis
	threshold float64
	state     TouchState
	tracking  bool
}

// NewTouchTracker creates a tracker for drags along axis
func NewTouchTracker(axis Axis) *TouchTracker {
	return &TouchTracker{axis: axis, threshold: DirectionThreshold}
}

// SetAxis changes the axis used to pick the primary delta.
func (t *TouchTracker) SetAxis(axis Axis) {
	t.axis = axis
}

// Start records the gesture origin and enters tracking.
func (t *TouchTracker) Start(x, y float64, now time.Time) {
	t.Reset()
	t.state.StartX = x
	t.state.StartY = y
	t.state.StartTime = now
	t.tracking = true
}

// Update records the latest touch point and returns the displacement along
// the axis plus the locked direction (Undetermined until locked).
func (t *TouchTracker) Update(x, y float64) (float64, Direction) {
	if !t.tracking {
		return 0, Undetermined
	}
	t.state.DeltaX = x - t.state.StartX
	t.state.DeltaY = y - t.state.StartY
	if t.state.Direction == Undetermined {
		t.state.Direction = t.classify(math.Abs(t.state.DeltaX), math.Abs(t.state.DeltaY))
	}
	return t.delta(), t.state.Direction
}

// End finishes the gesture and returns its summary. The tracker is idle
// afterwards.
func (t *TouchTracker) End(now time.Time) TouchResult {
	res := TouchResult{
		Delta:     t.delta(),
		OffsetX:   math.Abs(t.state.DeltaX),
		OffsetY:   math.Abs(t.state.DeltaY),
		Direction: t.state.Direction,
	}
	if !t.state.StartTime.IsZero() {
		res.Elapsed = now.Sub(t.state.StartTime)
	}
	t.Reset()
	return res
}

// Reset clears the gesture record and returns to idle.
func (t *TouchTracker) Reset() {
	t.state = TouchState{}
	t.tracking = false
}

// Tracking reports whether a gesture is in progress
func (t *TouchTracker) Tracking() bool {
	return t.tracking
}

// State returns a copy of the current gesture record
func (t *TouchTracker) State() TouchState {
	return t.state
}

func (t *TouchTracker) delta() float64 {
	if t.axis == Vertical {
		return t.state.DeltaY
	}
	return t.state.DeltaX
}

func (t *TouchTracker) classify(x, y float64) Direction {
	if x > y && x > t.threshold {
		return DirHorizontal
	}
	if y > x && y > t.threshold {
		return DirVertical
	}
	return Undetermined
}
