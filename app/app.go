// Package app runs an application inside a native window.
//
// The driver opens a window with an OpenGL 2.1 context, translates native
// input callbacks into package event values and leaves the choice of the main
// loop to the application: Main calls the application's Run method, which is
// expected to drive one of the loops in package loop, pulling events with
// Window.ProcessEvents.
//
package app

import (
	"runtime"
	"time"

	"github.com/db47h/chasecam"
	"github.com/db47h/chasecam/app/event"
	"github.com/db47h/chasecam/frametime"
)

func init() {
	runtime.LockOSThread()
}

// Main opens a window, then calls a.Init, a.Run and a.Terminate in sequence.
// It returns the first error encountered. a.Terminate is called whenever
// a.Init succeeded.
//
func Main(a Interface, opts ...WindowOption) error {
	if err := drv.init(opts...); err != nil {
		return err
	}
	defer drv.terminate()
	w := drv.window()
	defer w.Destroy()
	if err := a.Init(w); err != nil {
		return err
	}
	err := a.Run(w)
	if terr := a.Terminate(); err == nil {
		err = terr
	}
	return err
}

// Clock returns a frametime.Clock backed by the driver's timer. It reports
// frametime.ErrClockUnavailable when no window is open.
//
func Clock() frametime.Clock {
	return frametime.ClockFunc(drv.now)
}

// Window is a native window with an OpenGL context.
//
type Window interface {
	NativeHandle() interface{}
	FrameBuffer() *chasecam.FrameBuffer

	// ProcessEvents swaps buffers, then collects pending events, waiting for
	// at least one if wait is true, and passes them to h in order. It returns
	// true once the window has been asked to close.
	ProcessEvents(wait bool, h Handler) (quit bool)

	Destroy()
}

// Handler handles events.
//
type Handler interface {
	HandleEvent(event.Interface)
}

// HandlerFunc adapts a function to the Handler interface.
//
type HandlerFunc func(event.Interface)

// HandleEvent calls f(ev).
//
func (f HandlerFunc) HandleEvent(ev event.Interface) {
	f(ev)
}

type driver interface {
	init(...WindowOption) error
	terminate()
	window() Window
	now() (time.Duration, error)
}

// Interface is implemented by applications.
//
type Interface interface {
	Init(Window) error
	Run(Window) error
	Terminate() error
}

// WindowOption configures the window opened by Main.
//
type WindowOption interface {
	set(*winCfg)
}

type winCfg struct {
	fullScreen bool
	hidden     bool
	vsync      bool
	samples    int
	x, y, w, h int
	title      string
}

type winOption func(*winCfg)

func (f winOption) set(cfg *winCfg) {
	f(cfg)
}

// Title sets the window title.
//
func Title(title string) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.title = title
	})
}

// Pos sets the window position. Negative values let the system decide.
//
func Pos(x, y int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.x, cfg.y = x, y
	})
}

// Size sets the window size in screen coordinates.
//
func Size(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.w, cfg.h = w, h
	})
}

// FullScreen opens a full screen window on the primary monitor.
//
func FullScreen() WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.fullScreen = true
	})
}

// Visible sets the initial visibility of the window.
//
func Visible(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.hidden = !b
	})
}

// VSync enables or disables synchronization of buffer swaps with the
// display refresh rate. It is enabled by default.
//
func VSync(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.vsync = b
	})
}

// Samples sets the number of samples used for multisampling. 0 disables it.
//
func Samples(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.samples = n
	})
}

func defaultWinCfg() winCfg {
	return winCfg{title: "chasecam", x: -1, y: -1, w: 800, h: 600, vsync: true, samples: 4}
}
