package frametime

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrClockUnavailable is returned by clocks that cannot currently be read.
//
var ErrClockUnavailable = errors.New("clock unavailable")

// Clock is a monotonic time source.
//
// Now returns the time elapsed since an arbitrary but fixed epoch. Successive
// calls must never return decreasing values. Implementations may fail, in
// which case the returned error should wrap ErrClockUnavailable.
//
type Clock interface {
	Now() (time.Duration, error)
}

// ClockFunc adapts an ordinary function to the Clock interface.
//
type ClockFunc func() (time.Duration, error)

// Now calls f().
//
func (f ClockFunc) Now() (time.Duration, error) {
	return f()
}

// SystemClock is a Clock backed by the monotonic reading of the Go runtime
// clock. It never fails.
//
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a SystemClock whose epoch is the current time.
//
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created.
//
func (c *SystemClock) Now() (time.Duration, error) {
	return time.Since(c.start), nil
}

// ManualClock is a Clock that only moves when told to. It is meant for tests
// and for replaying recorded frame times.
//
type ManualClock struct {
	mu  sync.Mutex
	now time.Duration
	err error
}

// Now returns the current manual time, or the error set with Fail.
//
func (c *ManualClock) Now() (time.Duration, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	return c.now, nil
}

// Advance moves the clock forward by d. Negative values are ignored.
//
func (c *ManualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// Fail makes subsequent calls to Now return err. Fail(nil) restores the clock.
//
func (c *ManualClock) Fail(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}
