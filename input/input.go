// Package input tracks keyboard state and turns mouse drags into look deltas.
//
package input

import (
	"github.com/db47h/chasecam/app/event"
)

// DefaultSensitivity is the look rotation applied per pixel of mouse motion,
// in degrees.
//
const DefaultSensitivity = 0.3

// State accumulates input events between two frames.
//
// Keys stay down until their KeyUp event is received. Mouse motion while the
// left button is held is converted into yaw and pitch deltas that the camera
// collects once per frame with TakeLook.
//
type State struct {
	Sensitivity float32 // degrees per pixel

	keys     [event.Count]bool
	dragging bool
	tracking bool
	lastX    float32
	lastY    float32
	yaw      float32
	pitch    float32
	quit     bool
}

// New returns a new State with the default sensitivity.
//
func New() *State {
	return &State{Sensitivity: DefaultSensitivity}
}

// Handle updates the state from a single event. Unknown events are ignored.
//
func (s *State) Handle(ev event.Interface) {
	switch ev := ev.(type) {
	case event.KeyDown:
		s.setKey(ev.Key, true)
		if ev.Key == event.KeyEscape {
			s.quit = true
		}
	case event.KeyUp:
		s.setKey(ev.Key, false)
	case event.MouseDown:
		if ev.Button == event.ButtonLeft {
			s.dragging = true
			s.moveTo(ev.X, ev.Y)
		}
	case event.MouseUp:
		if ev.Button == event.ButtonLeft {
			s.dragging = false
		}
	case event.MouseMove:
		dx, dy := s.moveTo(ev.X, ev.Y)
		if s.dragging {
			s.yaw += s.Sensitivity * dx
			s.pitch -= s.Sensitivity * dy
		}
	case event.WindowClose, event.Quit:
		s.quit = true
	}
}

func (s *State) setKey(k event.Key, down bool) {
	if k <= event.KeyUnknown || int(k) >= len(s.keys) {
		return
	}
	s.keys[k] = down
}

// moveTo records the cursor position and returns the motion since the last
// known position.
//
func (s *State) moveTo(x, y float32) (dx, dy float32) {
	if s.tracking {
		dx, dy = x-s.lastX, y-s.lastY
	}
	s.lastX, s.lastY = x, y
	s.tracking = true
	return dx, dy
}

// Down reports whether the given key is currently held down.
//
func (s *State) Down(k event.Key) bool {
	if k <= event.KeyUnknown || int(k) >= len(s.keys) {
		return false
	}
	return s.keys[k]
}

// Dragging reports whether a mouse look drag is in progress.
//
func (s *State) Dragging() bool {
	return s.dragging
}

// TakeLook returns the yaw and pitch deltas accumulated since the last call,
// in degrees, and clears them.
//
func (s *State) TakeLook() (yaw, pitch float32) {
	yaw, pitch = s.yaw, s.pitch
	s.yaw, s.pitch = 0, 0
	return yaw, pitch
}

// Quit reports whether the user asked to quit.
//
func (s *State) Quit() bool {
	return s.quit
}
