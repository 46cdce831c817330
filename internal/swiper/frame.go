package swiper

import "time"

// PositionState is owned by the Swiper. Active may sit at -1 or count
// while a loop wrap is in flight.
type PositionState struct {
	Active int
	Offset float64
	Moving bool
}

// Frame is everything a render adapter needs for one paint. It is a
// snapshot; mutating it has no effect on the swiper.
type Frame struct {
	Active    int
	Logical   int
	Count     int
	Offset    float64
	Moving    bool
	Axis      Axis
	Geometry  Geometry
	Duration  time.Duration
	Overrides []float64
}

// PanelPosition is the distance of panel i from the container start
// along the axis, including its loop relocation.
func (f Frame) PanelPosition(i int) float64 {
	pos := float64(i)*f.Geometry.PageSize + f.Offset
	if i >= 0 && i < len(f.Overrides) {
		pos += f.Overrides[i]
	}
	return pos
}

// Transition is how long the adapter should take to reach Offset.
func (f Frame) Transition() time.Duration {
	if f.Moving {
		return 0
	}
	return f.Duration
}

// TouchEvent wraps one normalized touch point delivered to the swiper.
type TouchEvent struct {
	X float64
	Y float64

	defaultPrevented   bool
	propagationStopped bool
}

// NewTouchEvent creates an event at (x, y)
func NewTouchEvent(x, y float64) *TouchEvent {
	return &TouchEvent{X: x, Y: y}
}

// PreventDefault suppresses the host's default action for this event.
func (e *TouchEvent) PreventDefault() { e.defaultPrevented = true }

// StopPropagation keeps the event from reaching outer handlers.
func (e *TouchEvent) StopPropagation() { e.propagationStopped = true }

func (e *TouchEvent) DefaultPrevented() bool   { return e.defaultPrevented }
func (e *TouchEvent) PropagationStopped() bool { return e.propagationStopped }
