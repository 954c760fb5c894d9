package main

import (
	"strings"
	"testing"

	"github.com/db47h/chasecam/spring"
	"github.com/go-gl/mathgl/mgl32"
)

func TestTrace(t *testing.T) {
	f := spring.Follower{Params: spring.DefaultParams}
	target := mgl32.Vec3{0, 2, 0}
	s := trace(f, mgl32.Vec3{}, target, float32(1)/60, 1000)
	if len(s) < 2 {
		t.Fatalf("Expected at least one step, got %d samples", len(s))
	}
	if s[0].step != 0 || s[0].dist != 2 {
		t.Errorf("Expected first sample to be the start position, got %+v", s[0])
	}
	for i := 1; i < len(s); i++ {
		if s[i].dist >= s[i-1].dist {
			t.Fatalf("step %d: distance went from %g to %g", i, s[i-1].dist, s[i].dist)
		}
	}
	last := s[len(s)-1]
	if last.dist >= f.DeadZone {
		t.Errorf("Expected final distance below the dead zone, got %g", last.dist)
	}
	_, n := f.Converge(mgl32.Vec3{}, target, float32(1)/60, 1000)
	if last.step != n {
		t.Errorf("Expected %d steps as reported by Converge, got %d", n, last.step)
	}

	if s := trace(f, mgl32.Vec3{}, target, float32(1)/60, 3); len(s) != 4 {
		t.Errorf("Expected 4 samples with maxSteps = 3, got %d", len(s))
	}
}

func TestRender(t *testing.T) {
	f := spring.Follower{Params: spring.DefaultParams}
	s := trace(f, mgl32.Vec3{}, mgl32.Vec3{0, 2, 0}, float32(1)/60, 1000)
	out := render(s, 10, f.DeadZone)
	for _, h := range []string{"step", "distance", "2.000000"} {
		if !strings.Contains(out, h) {
			t.Errorf("Expected output to contain %q", h)
		}
	}
	// first row, every tenth row and the last row
	want := (len(s)-1)/10 + 1
	if (len(s)-1)%10 != 0 {
		want++
	}
	lines := strings.Count(out, "\n") + 1
	// 3 border lines plus the header and the data rows
	if lines != want+4 {
		t.Errorf("Expected %d lines, got %d:\n%s", want+4, lines, out)
	}
}

func TestParseVec(t *testing.T) {
	v, err := parseVec(" 1, -2.5,3 ")
	if err != nil {
		t.Fatal(err)
	}
	if v != (mgl32.Vec3{1, -2.5, 3}) {
		t.Errorf("Expected (1, -2.5, 3), got %v", v)
	}
	for _, s := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		if _, err := parseVec(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}
