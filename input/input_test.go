package input

import (
	"testing"

	"github.com/db47h/chasecam/app/event"
)

func TestKeys(t *testing.T) {
	s := New()
	s.Handle(event.KeyDown{Key: event.KeyW})
	s.Handle(event.KeyDown{Key: event.KeyA})
	if !s.Down(event.KeyW) || !s.Down(event.KeyA) {
		t.Fatal("Expected w and a to be down")
	}
	s.Handle(event.KeyUp{Key: event.KeyW})
	if s.Down(event.KeyW) {
		t.Error("Expected w to be released")
	}
	if !s.Down(event.KeyA) {
		t.Error("Expected a to still be down")
	}

	// out of range keys are ignored
	s.Handle(event.KeyDown{Key: event.Key(1000)})
	s.Handle(event.KeyDown{Key: event.Key(-3)})
	if s.Down(event.Key(1000)) || s.Down(event.KeyUnknown) {
		t.Error("Expected unknown keys to never be down")
	}
}

func TestMouseLook(t *testing.T) {
	s := New()
	// motion without a drag only tracks the cursor
	s.Handle(event.MouseMove{X: 10, Y: 10})
	s.Handle(event.MouseMove{X: 50, Y: 50})
	if y, p := s.TakeLook(); y != 0 || p != 0 {
		t.Fatalf("Expected no look delta without drag, got %g, %g", y, p)
	}

	s.Handle(event.MouseDown{Button: event.ButtonLeft, X: 100, Y: 100})
	s.Handle(event.MouseMove{X: 110, Y: 95})
	s.Handle(event.MouseMove{X: 120, Y: 90})
	yaw, pitch := s.TakeLook()
	if yaw != 20*DefaultSensitivity {
		t.Errorf("Expected yaw %g, got %g", 20*DefaultSensitivity, yaw)
	}
	if pitch != 10*DefaultSensitivity {
		t.Errorf("Expected pitch %g, got %g", 10*DefaultSensitivity, pitch)
	}
	if y, p := s.TakeLook(); y != 0 || p != 0 {
		t.Errorf("Expected TakeLook to clear deltas, got %g, %g", y, p)
	}

	s.Handle(event.MouseUp{Button: event.ButtonLeft, X: 120, Y: 90})
	if s.Dragging() {
		t.Error("Expected drag to end on button release")
	}
	s.Handle(event.MouseMove{X: 200, Y: 200})
	if y, p := s.TakeLook(); y != 0 || p != 0 {
		t.Errorf("Expected no look delta after release, got %g, %g", y, p)
	}
}

func TestRightButtonIgnored(t *testing.T) {
	s := New()
	s.Handle(event.MouseDown{Button: event.ButtonRight, X: 0, Y: 0})
	s.Handle(event.MouseMove{X: 10, Y: 0})
	if y, _ := s.TakeLook(); y != 0 {
		t.Errorf("Expected right button drags to be ignored, got yaw %g", y)
	}
}

func TestQuit(t *testing.T) {
	for _, ev := range []event.Interface{
		event.KeyDown{Key: event.KeyEscape},
		event.WindowClose{},
		event.Quit{},
	} {
		s := New()
		s.Handle(ev)
		if !s.Quit() {
			t.Errorf("%T: expected quit request", ev)
		}
	}
}
