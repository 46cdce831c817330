package swiper

import "time"

// Scheduler is the host's deferral primitive. Both callbacks must be
// delivered on the same goroutine that drives the swiper.
type Scheduler interface {
	// RequestFrame runs fn on the next animation frame. Frames requested
	// from inside a frame callback run on the following frame.
	RequestFrame(fn func())
	// AfterFunc runs fn once after d. The returned func cancels it and
	// is safe to call more than once.
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

// Clock provides gesture timestamps. Tests inject a fake one.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Logger is satisfied by *log.Logger.
type Logger interface {
	Printf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
