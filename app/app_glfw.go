package app

import (
	"fmt"
	"time"

	"github.com/db47h/chasecam"
	"github.com/db47h/chasecam/app/event"
	"github.com/db47h/chasecam/frametime"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/pkg/errors"
)

// DriverVersion returns a description of the windowing and OpenGL
// implementations. It must be called from Init or later.
//
func DriverVersion() string {
	return fmt.Sprintf("GLFW %s - %s %s", glfw.GetVersionString(),
		gl.GoStr(gl.GetString(gl.VENDOR)), gl.GoStr(gl.GetString(gl.VERSION)))
}

var drv driver = new(glfwDriver)

type glfwDriver struct {
	w           *window
	initialized bool
}

func (d *glfwDriver) init(opts ...WindowOption) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}
	d.initialized = true

	cfg := defaultWinCfg()
	for _, o := range opts {
		o.set(&cfg)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Samples, cfg.samples)

	if err := d.createWindow(&cfg); err != nil {
		d.terminate()
		return err
	}
	return nil
}

func (d *glfwDriver) terminate() {
	if d.initialized {
		glfw.Terminate()
		d.initialized = false
	}
}

func (d *glfwDriver) now() (time.Duration, error) {
	if !d.initialized {
		return 0, frametime.ErrClockUnavailable
	}
	return time.Duration(glfw.GetTime() * float64(time.Second)), nil
}

func (d *glfwDriver) createWindow(cfg *winCfg) error {
	var (
		monitor *glfw.Monitor
		width   = cfg.w
		height  = cfg.h
	)
	if cfg.fullScreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		glfw.WindowHint(glfw.RedBits, mode.RedBits)
		glfw.WindowHint(glfw.GreenBits, mode.GreenBits)
		glfw.WindowHint(glfw.BlueBits, mode.BlueBits)
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
		width = mode.Width
		height = mode.Height
	}
	if cfg.hidden || (!cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0) {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}
	w, err := glfw.CreateWindow(width, height, cfg.title, monitor, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	if !cfg.fullScreen && cfg.x >= 0 && cfg.y >= 0 {
		w.SetPos(cfg.x, cfg.y)
		if !cfg.hidden {
			w.Show()
		}
	}

	w.MakeContextCurrent()
	if err = gl.Init(); err != nil {
		w.Destroy()
		return errors.Wrap(err, "gl init")
	}

	if cfg.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	fw, fh := w.GetFramebufferSize()
	d.w = &window{glfw: w, fb: chasecam.FrameBuffer{W: fw, H: fh}}
	d.w.setCallbacks()
	gl.Viewport(0, 0, int32(fw), int32(fh))

	return nil
}

func (d *glfwDriver) window() Window {
	return d.w
}

type window struct {
	fb     chasecam.FrameBuffer
	glfw   *glfw.Window
	queue  []event.Interface
	frames int

	setViewport bool
}

func (w *window) NativeHandle() interface{} {
	return w.glfw
}

func (w *window) FrameBuffer() *chasecam.FrameBuffer {
	return &w.fb
}

func (w *window) Destroy() {
	if w.glfw != nil {
		w.glfw.Destroy()
		w.glfw = nil
	}
}

func (w *window) ProcessEvents(wait bool, h Handler) bool {
	if w.frames > 0 {
		w.glfw.SwapBuffers()
	}
	w.frames++
	if wait {
		glfw.WaitEvents()
	} else {
		glfw.PollEvents()
	}
	if w.setViewport {
		gl.Viewport(0, 0, int32(w.fb.W), int32(w.fb.H))
		w.setViewport = false
	}
	for i, ev := range w.queue {
		if h != nil {
			h.HandleEvent(ev)
		}
		w.queue[i] = nil
	}
	w.queue = w.queue[:0]
	return w.glfw.ShouldClose()
}

func (w *window) push(ev event.Interface) {
	w.queue = append(w.queue, ev)
}

func (w *window) setCallbacks() {
	w.glfw.SetFramebufferSizeCallback(w.glfwFrameBufferSizeCallback)
	w.glfw.SetCloseCallback(func(*glfw.Window) {
		w.push(event.WindowClose{})
	})
	w.glfw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := keyMap[key]
		switch action {
		case glfw.Press, glfw.Repeat:
			w.push(event.KeyDown{Key: k})
		case glfw.Release:
			w.push(event.KeyUp{Key: k})
		}
	})
	w.glfw.SetMouseButtonCallback(func(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := buttonMap[button]
		if !ok {
			return
		}
		x, y := gw.GetCursorPos()
		switch action {
		case glfw.Press:
			w.push(event.MouseDown{Button: b, X: float32(x), Y: float32(y)})
		case glfw.Release:
			w.push(event.MouseUp{Button: b, X: float32(x), Y: float32(y)})
		}
	})
	w.glfw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(event.MouseMove{X: float32(x), Y: float32(y)})
	})
}

func (w *window) glfwFrameBufferSizeCallback(_ *glfw.Window, width int, height int) {
	w.fb.W, w.fb.H = width, height
	w.setViewport = true
	w.push(event.FrameBufferSize{Width: width, Height: height})
}

var keyMap = map[glfw.Key]event.Key{
	glfw.KeyW:      event.KeyW,
	glfw.KeyA:      event.KeyA,
	glfw.KeyS:      event.KeyS,
	glfw.KeyD:      event.KeyD,
	glfw.KeyQ:      event.KeyQ,
	glfw.KeyE:      event.KeyE,
	glfw.KeyUp:     event.KeyArrowUp,
	glfw.KeyDown:   event.KeyArrowDown,
	glfw.KeyLeft:   event.KeyArrowLeft,
	glfw.KeyRight:  event.KeyArrowRight,
	glfw.KeySpace:  event.KeySpace,
	glfw.KeyHome:   event.KeyHome,
	glfw.KeyEscape: event.KeyEscape,
}

var buttonMap = map[glfw.MouseButton]event.MouseButton{
	glfw.MouseButtonLeft:   event.ButtonLeft,
	glfw.MouseButtonRight:  event.ButtonRight,
	glfw.MouseButtonMiddle: event.ButtonMiddle,
}
