// Package loop provides the host loops that drive an application: a simple
// wait-for-event loop, a smoothed variable timestep loop and a fixed timestep
// loop.
//
// All loops read time from a frametime.Clock. The zero value of each loop uses
// a frametime.SystemClock.
//
package loop

import (
	"log"
	"time"

	"github.com/db47h/chasecam/frametime"
)

// EventProcessor wraps the ProcessEvents method.
//
// It is up to the implementation to either poll events or wait for events.
// Applications using a wait-for-event model should however only use the Simple
// event loop.
//
// Graphical applications that need to swap buffers should swap their buffers in
// their ProcessEvents method, before actually processing events.
//
type EventProcessor interface {
	ProcessEvents() (quit bool)
}

// FrameStarter is the interface implemented by any App that wants the time
// stamp at the beginning of each loop iteration.
//
type FrameStarter interface {
	FrameStart(now time.Duration)
}

// SimpleUpdater is run by the Simple loop.
//
type SimpleUpdater interface {
	EventProcessor
	Update()
	Draw()
}

// Simple provides a very simple event loop suited for applications that use a
// wait-for-event model.
//
type Simple struct {
	Clock frametime.Clock

	ticker *time.Ticker
	minFT  time.Duration
}

// MinFrameTime sets the minimum frame time.
//
// If the t value is greater than 0, the frame rate will be clamped
// to time.Second/t.
//
func (l *Simple) MinFrameTime(t time.Duration) {
	if t == l.minFT {
		return
	}
	l.stopTicker()
	l.minFT = t
	if l.minFT > 0 {
		l.ticker = time.NewTicker(l.minFT)
	}
}

func (l *Simple) clock() frametime.Clock {
	if l.Clock == nil {
		l.Clock = frametime.NewSystemClock()
	}
	return l.Clock
}

func (l *Simple) wait() {
	if l.ticker != nil {
		<-l.ticker.C
	}
}

// now waits for the next tick, if any, and reads the clock. A clock error is
// logged and reported as ok == false.
//
func (l *Simple) now() (t time.Duration, ok bool) {
	l.wait()
	t, err := l.clock().Now()
	if err != nil {
		log.Printf("loop: %v", err)
		return 0, false
	}
	return t, true
}

func (l *Simple) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
}

// Run runs the loop until a.ProcessEvents returns true.
//
func (l *Simple) Run(a SimpleUpdater) {
	fStart, _ := a.(FrameStarter)
	for !a.ProcessEvents() {
		if now, ok := l.now(); ok && fStart != nil {
			fStart.FrameStart(now)
		}
		a.Update()
		a.Draw()
	}
	l.stopTicker()
}

// SmoothedUpdater is run by the Smoothed loop. Update receives the smoothed
// frame time.
//
type SmoothedUpdater interface {
	EventProcessor
	Update(dt time.Duration)
	Draw()
}

// Smoothed is a variable timestep loop: each frame, the Timer is updated once
// and the application is updated with the smoothed and clamped frame time.
//
// If the clock fails during a frame, the error is logged and the previous
// frame time is used.
//
type Smoothed struct {
	Simple
	Timer *frametime.Timer
}

// Run runs the loop until a.ProcessEvents returns true. If l.Timer is nil, a
// Timer with default settings is created over l.Clock. Run only fails if
// that timer cannot be created.
//
func (l *Smoothed) Run(a SmoothedUpdater) error {
	if l.Timer == nil {
		t, err := frametime.New(l.clock())
		if err != nil {
			return err
		}
		l.Timer = t
	}
	fStart, _ := a.(FrameStarter)
	for !a.ProcessEvents() {
		l.wait()
		if err := l.Timer.Update(); err != nil {
			log.Printf("loop: %v", err)
		}
		if fStart != nil {
			if now, err := l.clock().Now(); err == nil {
				fStart.FrameStart(now)
			}
		}
		a.Update(l.Timer.Delta())
		a.Draw()
	}
	l.stopTicker()
	return nil
}

// FixedStepUpdater is run by the FixedStep loop.
//
type FixedStepUpdater interface {
	EventProcessor
	Update(timestep time.Duration)
	Draw(frameTime, partialTimestep time.Duration)
}

// FixedStep runs updates with a constant timestep. Frame times are clamped
// to MaxFT before they are accumulated.
//
type FixedStep struct {
	Simple
	MaxFT time.Duration // maximum frame time
	DT    time.Duration // timestep
}

// Default timings for FixedStep.
//
const (
	DefaultDT    time.Duration = time.Second / 240
	DefaultMaxFT time.Duration = frametime.DefaultMaxDelta
)

// Run runs the loop until a.ProcessEvents returns true.
//
// A frame during which the clock cannot be read contributes no time to the
// accumulator.
//
func (l *FixedStep) Run(a FixedStepUpdater) {
	var (
		tPrev, _ = l.clock().Now()
		tAcc     time.Duration
		fStart   FrameStarter
	)

	fStart, _ = a.(FrameStarter)

	if l.DT == 0 {
		l.DT = DefaultDT
	}
	if l.MaxFT == 0 {
		l.MaxFT = DefaultMaxFT
	}

	for !a.ProcessEvents() {
		var ft time.Duration
		now, ok := l.now()
		if ok {
			ft = now - tPrev
			if ft > l.MaxFT {
				ft = l.MaxFT
			}
			if ft < 0 {
				ft = 0
			}
			tPrev = now
			if fStart != nil {
				fStart.FrameStart(now)
			}
		}
		tAcc += ft
		for dt := l.DT; tAcc >= dt; tAcc -= dt {
			a.Update(dt)
		}
		a.Draw(ft, tAcc)
	}
	l.stopTicker()
}
