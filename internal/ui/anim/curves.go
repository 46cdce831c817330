package anim

import "math"

// Curve maps linear progress in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 {
	return t
}

// Ease matches CSS ease, the default timing function of a CSS transition.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseOut decelerates into the target.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// CubicBezier returns an easing function matching CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := sample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sample(y1, y2, clampUnit(u))
			}
			dx := derivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton failed; bisect.
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := sample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return sample(y1, y2, u)
	}
}

func sample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func derivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
