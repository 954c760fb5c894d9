package loop

import (
	"testing"
	"time"

	"github.com/db47h/chasecam/frametime"
)

// fakeApp advances a manual clock by a scripted frame time each time its
// events are processed, and quits when the script is exhausted.
//
type fakeApp struct {
	clock   *frametime.ManualClock
	frames  []time.Duration
	frame   int
	updates []time.Duration
	draws   int
	partial time.Duration
	starts  []time.Duration
}

func (a *fakeApp) ProcessEvents() bool {
	if a.frame >= len(a.frames) {
		return true
	}
	a.clock.Advance(a.frames[a.frame])
	a.frame++
	return false
}

func (a *fakeApp) FrameStart(now time.Duration) { a.starts = append(a.starts, now) }

type simpleApp struct{ fakeApp }

func (a *simpleApp) Update() { a.updates = append(a.updates, 0) }
func (a *simpleApp) Draw()   { a.draws++ }

type smoothedApp struct{ fakeApp }

func (a *smoothedApp) Update(dt time.Duration) { a.updates = append(a.updates, dt) }
func (a *smoothedApp) Draw()                   { a.draws++ }

type fixedApp struct{ fakeApp }

func (a *fixedApp) Update(dt time.Duration) { a.updates = append(a.updates, dt) }
func (a *fixedApp) Draw(ft, partial time.Duration) {
	a.draws++
	a.partial = partial
}

func repeat(d time.Duration, n int) []time.Duration {
	s := make([]time.Duration, n)
	for i := range s {
		s[i] = d
	}
	return s
}

func TestSimple(t *testing.T) {
	c := new(frametime.ManualClock)
	a := &simpleApp{fakeApp{clock: c, frames: repeat(10*time.Millisecond, 3)}}
	l := Simple{Clock: c}
	l.Run(a)
	if len(a.updates) != 3 || a.draws != 3 {
		t.Fatalf("Expected 3 updates and draws, got %d, %d", len(a.updates), a.draws)
	}
	if len(a.starts) != 3 || a.starts[2] != 30*time.Millisecond {
		t.Errorf("Unexpected frame start times %v", a.starts)
	}
}

func TestSmoothed(t *testing.T) {
	c := new(frametime.ManualClock)
	frames := append(repeat(20*time.Millisecond, 5), time.Hour)
	a := &smoothedApp{fakeApp{clock: c, frames: frames}}
	l := Smoothed{Simple: Simple{Clock: c}}
	if err := l.Run(a); err != nil {
		t.Fatal(err)
	}
	if len(a.updates) != 6 {
		t.Fatalf("Expected 6 updates, got %d", len(a.updates))
	}
	if dt := a.updates[4]; dt != 20*time.Millisecond {
		t.Errorf("Expected a full window of 20ms frames to give 20ms, got %v", dt)
	}
	want := (4*20*time.Millisecond + frametime.DefaultMaxDelta) / 5
	if dt := a.updates[5]; dt != want {
		t.Errorf("Expected stall to be clamped and averaged to %v, got %v", want, dt)
	}
}

func TestSmoothedClockFailure(t *testing.T) {
	c := new(frametime.ManualClock)
	a := &smoothedApp{fakeApp{clock: c, frames: repeat(20*time.Millisecond, 5)}}
	tm, err := frametime.New(c)
	if err != nil {
		t.Fatal(err)
	}
	l := Smoothed{Simple: Simple{Clock: c}, Timer: tm}
	c.Fail(frametime.ErrClockUnavailable)
	if err := l.Run(a); err != nil {
		t.Fatal(err)
	}
	for i, dt := range a.updates {
		if dt != frametime.DefaultInitial {
			t.Errorf("frame %d: expected previous delta to be reused, got %v", i, dt)
		}
	}
	if len(a.starts) != 0 {
		t.Errorf("Expected no frame start without a clock, got %v", a.starts)
	}
}

func TestFixedStep(t *testing.T) {
	c := new(frametime.ManualClock)
	a := &fixedApp{fakeApp{clock: c, frames: []time.Duration{
		25 * time.Millisecond,
		25 * time.Millisecond,
		time.Minute,
	}}}
	l := FixedStep{Simple: Simple{Clock: c}, DT: 10 * time.Millisecond, MaxFT: 100 * time.Millisecond}
	l.Run(a)
	// 25ms -> 2 updates, 5ms left; 25ms -> 3 updates, 0 left; clamped 100ms -> 10 updates
	if len(a.updates) != 15 {
		t.Errorf("Expected 15 updates, got %d", len(a.updates))
	}
	if a.draws != 3 {
		t.Errorf("Expected 3 draws, got %d", a.draws)
	}
	if a.partial != 0 {
		t.Errorf("Expected no partial timestep, got %v", a.partial)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	c := new(frametime.ManualClock)
	a := &fixedApp{fakeApp{clock: c, frames: []time.Duration{time.Second}}}
	l := FixedStep{Simple: Simple{Clock: c}}
	l.Run(a)
	if l.DT != DefaultDT || l.MaxFT != DefaultMaxFT {
		t.Errorf("Expected defaults to be set, got DT %v, MaxFT %v", l.DT, l.MaxFT)
	}
	if n := len(a.updates); n != int(DefaultMaxFT/DefaultDT) {
		t.Errorf("Expected %d updates, got %d", DefaultMaxFT/DefaultDT, n)
	}
}
