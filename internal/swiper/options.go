package swiper

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Axis is the paging axis of a swiper. It is fixed for the lifetime of a mount.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// String returns the configuration name of the axis
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis parses "horizontal" or "vertical" (case-insensitive)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown direction %q", s)
	}
}

// Options holds the recognized swiper options.
type Options struct {
	// Width and Height are explicit page dimensions in cells. Zero falls
	// back to the measured container.
	Width  float64
	Height float64

	// Duration is the settle time of non-drag transitions.
	Duration time.Duration

	// InitPage is the initial active index, re-applied whenever it changes.
	InitPage int

	// AutoPlay is the delay between automatic advances. Zero disables it.
	AutoPlay time.Duration

	Axis Axis

	PaginationColor   string
	PaginationVisible bool

	Loop      bool
	Touchable bool

	// PreventDefault and StopPropagation are applied to every touch-start event.
	PreventDefault  bool
	StopPropagation bool
}

// DefaultOptions returns the options a swiper uses when none are given
func DefaultOptions() Options {
	return Options{
		Duration:        500 * time.Millisecond,
		Axis:            Horizontal,
		PaginationColor: "#fff",
		Loop:            true,
		Touchable:       true,
		PreventDefault:  true,
		StopPropagation: true,
	}
}

// Validate reports every option that Normalize would have to correct.
func (o Options) Validate() error {
	var errs []error
	if o.Width < 0 {
		errs = append(errs, fmt.Errorf("width must not be negative: %v", o.Width))
	}
	if o.Height < 0 {
		errs = append(errs, fmt.Errorf("height must not be negative: %v", o.Height))
	}
	if o.Duration < 0 {
		errs = append(errs, fmt.Errorf("duration must not be negative: %v", o.Duration))
	}
	if o.AutoPlay < 0 {
		errs = append(errs, fmt.Errorf("autoplay must not be negative: %v", o.AutoPlay))
	}
	if o.InitPage < 0 {
		errs = append(errs, fmt.Errorf("init page must not be negative: %d", o.InitPage))
	}
	if o.Axis != Horizontal && o.Axis != Vertical {
		errs = append(errs, fmt.Errorf("unknown axis: %v", o.Axis))
	}
	return errors.Join(errs...)
}

// Normalize returns a copy with invalid values replaced so the swiper
// degrades to a static display instead of misbehaving.
func (o Options) Normalize() Options {
	if o.Width < 0 {
		o.Width = 0
	}
	if o.Height < 0 {
		o.Height = 0
	}
	if o.Duration < 0 {
		o.Duration = 0
	}
	if o.AutoPlay < 0 {
		o.AutoPlay = 0
	}
	if o.InitPage < 0 {
		o.InitPage = 0
	}
	if o.Axis != Horizontal && o.Axis != Vertical {
		o.Axis = Horizontal
	}
	return o
}
