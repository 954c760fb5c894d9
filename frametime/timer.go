// Package frametime provides a smoothed and clamped frame time source.
//
// Raw frame times are clamped to a maximum value before they enter a moving
// average over the last few frames. A single abnormally long frame (a debugger
// breakpoint, a window move, a vsync hiccup) therefore cannot inject a
// multi-second delta into the integrators that depend on it.
//
// A Timer is owned by the host loop: call Update once per frame, then read
// Delta or Seconds any number of times.
//
package frametime

import (
	"time"

	"github.com/pkg/errors"
)

// Default timer settings.
//
const (
	DefaultWindow   = 5
	DefaultMaxDelta = 250 * time.Millisecond // never report slower than 4 fps
	DefaultInitial  = 100 * time.Microsecond
	DefaultMinDelta = time.Microsecond
	DefaultRetries  = 8
)

type config struct {
	window   int
	maxDelta time.Duration
	initial  time.Duration
	minDelta time.Duration
	retries  int
}

func (cfg *config) validate() error {
	switch {
	case cfg.window < 1:
		return errors.Errorf("frametime: invalid window size %d", cfg.window)
	case cfg.maxDelta <= 0:
		return errors.Errorf("frametime: invalid max delta %v", cfg.maxDelta)
	case cfg.initial <= 0 || cfg.initial > cfg.maxDelta:
		return errors.Errorf("frametime: initial delta %v out of range (0, %v]", cfg.initial, cfg.maxDelta)
	case cfg.minDelta <= 0 || cfg.minDelta > cfg.maxDelta:
		return errors.Errorf("frametime: min delta %v out of range (0, %v]", cfg.minDelta, cfg.maxDelta)
	case cfg.retries < 0:
		return errors.Errorf("frametime: invalid retry count %d", cfg.retries)
	}
	return nil
}

// Option is implemented by option functions passed as arguments to New.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// Window sets the number of frames in the moving average.
//
func Window(n int) Option {
	return cfn(func(cfg *config) {
		cfg.window = n
	})
}

// MaxDelta sets the ceiling applied to every raw frame time.
//
func MaxDelta(d time.Duration) Option {
	return cfn(func(cfg *config) {
		cfg.maxDelta = d
	})
}

// Initial sets the value reported before the first Update.
//
func Initial(d time.Duration) Option {
	return cfn(func(cfg *config) {
		cfg.initial = d
	})
}

// MinDelta sets the frame time recorded when the clock did not advance after
// all retries. This is the "one tick" guarantee for coarse clocks.
//
func MinDelta(d time.Duration) Option {
	return cfn(func(cfg *config) {
		cfg.minDelta = d
	})
}

// Retries sets how many times Update re-samples a clock that did not advance.
//
func Retries(n int) Option {
	return cfn(func(cfg *config) {
		cfg.retries = n
	})
}

// Timer computes a smoothed per-frame time delta.
//
// The reported delta is always the arithmetic mean of the most recent window
// clamped samples, so it never exceeds the MaxDelta ceiling and is never
// zero.
//
type Timer struct {
	clock   Clock
	cfg     config
	prev    time.Duration
	samples []time.Duration
	index   int
	avg     time.Duration
	raw     time.Duration
}

// New returns a new Timer using the given clock and captures the first clock
// sample. It fails if the options are invalid or if the clock cannot be read.
//
func New(c Clock, opts ...Option) (*Timer, error) {
	cfg := config{
		window:   DefaultWindow,
		maxDelta: DefaultMaxDelta,
		initial:  DefaultInitial,
		minDelta: DefaultMinDelta,
		retries:  DefaultRetries,
	}
	for _, o := range opts {
		o.set(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Timer{
		clock:   c,
		cfg:     cfg,
		samples: make([]time.Duration, cfg.window),
	}
	if err := t.Reset(); err != nil {
		return nil, err
	}
	return t, nil
}

// Reset restores the initial state of the timer and takes a fresh baseline
// sample from the clock.
//
func (t *Timer) Reset() error {
	now, err := t.clock.Now()
	if err != nil {
		return errors.Wrap(err, "frametime: initialize")
	}
	t.prev = now
	for i := range t.samples {
		t.samples[i] = t.cfg.initial
	}
	t.index = 0
	t.avg = t.cfg.initial
	t.raw = t.cfg.initial
	return nil
}

// Update samples the clock and records the time elapsed since the previous
// sample.
//
// If the clock cannot be read, the update is skipped: the timer keeps
// reporting its previous value and the error is returned for the caller to
// log.
//
func (t *Timer) Update() error {
	var (
		now time.Duration
		raw time.Duration
		err error
	)
	for i := 0; i <= t.cfg.retries; i++ {
		if now, err = t.clock.Now(); err != nil {
			return errors.Wrap(err, "frametime: update")
		}
		if raw = now - t.prev; raw > 0 {
			break
		}
	}
	if raw <= 0 {
		raw = t.cfg.minDelta
	}
	if raw > t.cfg.maxDelta {
		raw = t.cfg.maxDelta
	}
	t.prev = now
	t.raw = raw
	t.samples[t.index] = raw
	t.index = (t.index + 1) % len(t.samples)

	var sum time.Duration
	for _, s := range t.samples {
		sum += s
	}
	t.avg = sum / time.Duration(len(t.samples))
	return nil
}

// Delta returns the smoothed frame time.
//
func (t *Timer) Delta() time.Duration {
	return t.avg
}

// Seconds returns the smoothed frame time in seconds.
//
func (t *Timer) Seconds() float32 {
	return float32(t.avg.Seconds())
}

// Raw returns the last clamped sample, before averaging.
//
func (t *Timer) Raw() time.Duration {
	return t.raw
}

// FPS returns the frame rate matching the smoothed frame time.
//
func (t *Timer) FPS() float64 {
	return float64(time.Second) / float64(t.avg)
}
