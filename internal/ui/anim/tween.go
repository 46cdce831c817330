// Package anim eases the rendered track offset towards the offset the
// swiper engine last painted.
package anim

import "time"

// Tween interpolates a single value towards a target over a duration.
// The zero value rests at 0.
type Tween struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
	curve    Curve
}

// NewTween returns a tween resting at v
func NewTween(v float64, curve Curve) *Tween {
	if curve == nil {
		curve = Linear
	}
	return &Tween{from: v, to: v, curve: curve}
}

// Jump moves to v immediately and cancels any transition
func (tw *Tween) Jump(v float64) {
	tw.from = v
	tw.to = v
	tw.duration = 0
}

// AnimateTo starts a transition from the current value to v. A
// non-positive duration behaves like Jump.
func (tw *Tween) AnimateTo(v float64, d time.Duration, now time.Time) {
	if d <= 0 {
		tw.Jump(v)
		return
	}
	if v == tw.to && tw.Active(now) {
		return
	}
	tw.from = tw.Value(now)
	tw.to = v
	tw.start = now
	tw.duration = d
}

// Value returns the eased value at now
func (tw *Tween) Value(now time.Time) float64 {
	if !tw.Active(now) {
		return tw.to
	}
	p := float64(now.Sub(tw.start)) / float64(tw.duration)
	if p < 0 {
		p = 0
	}
	curve := tw.curve
	if curve == nil {
		curve = Linear
	}
	return tw.from + (tw.to-tw.from)*curve(p)
}

// Active reports whether a transition is still running at now
func (tw *Tween) Active(now time.Time) bool {
	return tw.duration > 0 && now.Before(tw.start.Add(tw.duration))
}

// Target returns the value the tween is heading to
func (tw *Tween) Target() float64 {
	return tw.to
}
