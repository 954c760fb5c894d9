package debug

import (
	"image"
	"testing"
	"time"

	"github.com/db47h/chasecam"
)

func TestTimer(t *testing.T) {
	var tm Timer
	if tm.Average() != 0 || tm.AveragePerSecond() != 0 {
		t.Fatal("Expected an empty timer to report 0")
	}
	tm.Add(10 * time.Millisecond)
	tm.Add(30 * time.Millisecond)
	if avg := tm.Average(); avg != 20*time.Millisecond {
		t.Errorf("Expected 20ms average over recorded frames, got %v", avg)
	}
	if fps := tm.AveragePerSecond(); fps != 50 {
		t.Errorf("Expected 50 fps, got %g", fps)
	}
	for i := 0; i < samples; i++ {
		tm.Add(5 * time.Millisecond)
	}
	if avg := tm.Average(); avg != 5*time.Millisecond {
		t.Errorf("Expected old samples to be overwritten, got %v", avg)
	}
	tm.Add(time.Second)
	if m := tm.Max(); m != time.Second {
		t.Errorf("Expected max 1s, got %v", m)
	}
}

func TestBoxRect(t *testing.T) {
	fb := &chasecam.FrameBuffer{W: 640, H: 480}
	sz := image.Pt(100, 40)
	if r := BoxRect(fb, TopLeft, sz); r != image.Rect(0, 0, 100, 40) {
		t.Errorf("Unexpected top left box %v", r)
	}
	if r := BoxRect(fb, TopRight, sz); r != image.Rect(540, 0, 640, 40) {
		t.Errorf("Unexpected top right box %v", r)
	}
}
