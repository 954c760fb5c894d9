package camera

import (
	"testing"

	"github.com/db47h/chasecam/app/event"
	"github.com/db47h/chasecam/spring"
	"github.com/go-gl/mathgl/mgl32"
)

type fakeInput struct {
	keys       map[event.Key]bool
	yaw, pitch float32
}

func (f *fakeInput) Down(k event.Key) bool { return f.keys[k] }

func (f *fakeInput) TakeLook() (float32, float32) {
	y, p := f.yaw, f.pitch
	f.yaw, f.pitch = 0, 0
	return y, p
}

func keys(ks ...event.Key) *fakeInput {
	f := &fakeInput{keys: make(map[event.Key]bool)}
	for _, k := range ks {
		f.keys[k] = true
	}
	return f
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestInitialState(t *testing.T) {
	c := New(spring.Follower{Params: spring.DefaultParams})
	if c.Position() != DefaultPosition || c.Target() != DefaultTarget {
		t.Fatalf("Unexpected initial state %v -> %v", c.Position(), c.Target())
	}
	if f := c.Forward(); !vecNear(f, mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("Expected forward to be -z, got %v", f)
	}
	if r := c.Right(); !vecNear(r, mgl32.Vec3{1, 0, 0}, 1e-6) {
		t.Errorf("Expected right to be +x, got %v", r)
	}
}

func TestMoveTarget(t *testing.T) {
	const dt = 0.01
	c := New(spring.Follower{Params: spring.DefaultParams})
	c.Place(mgl32.Vec3{0, 2, 0})
	c.Update(keys(event.KeyW), dt)
	want := mgl32.Vec3{0, 2, -DefaultSpeed * dt}
	if !vecNear(c.Target(), want, 1e-6) {
		t.Errorf("Expected target %v, got %v", want, c.Target())
	}
	// the position lags behind the target
	if p := c.Position(); p[2] >= 0 || p[2] <= want[2] {
		t.Errorf("Expected position strictly between start and target, got %v", p)
	}

	c.Look(90, 0)
	c.Place(mgl32.Vec3{})
	c.Update(keys(event.KeyD), dt)
	want = mgl32.Vec3{0, 0, DefaultSpeed * dt}
	if !vecNear(c.Target(), want, 1e-6) {
		t.Errorf("Expected strafe right at yaw 90 to move toward +z, got %v", c.Target())
	}

	// opposite keys cancel out
	c.Place(mgl32.Vec3{})
	c.Update(keys(event.KeyW, event.KeyS, event.KeyA, event.KeyD), dt)
	if !vecNear(c.Target(), mgl32.Vec3{}, 1e-6) {
		t.Errorf("Expected opposite keys to cancel out, got %v", c.Target())
	}
}

func TestFollow(t *testing.T) {
	c := New(spring.Follower{Params: spring.DefaultParams})
	in := keys()
	for i := 0; i < 600; i++ {
		c.Update(in, 1.0/60)
	}
	if d := c.Target().Sub(c.Position()).Len(); d >= spring.DefaultParams.DeadZone {
		t.Errorf("Expected camera to reach its target, distance %g", d)
	}
}

func TestLook(t *testing.T) {
	c := New(spring.Follower{Params: spring.DefaultParams})
	in := &fakeInput{yaw: 30, pitch: 200}
	c.Update(in, 1.0/60)
	if c.Yaw() != 30 {
		t.Errorf("Expected yaw 30, got %g", c.Yaw())
	}
	if c.Pitch() != DefaultMaxPitch {
		t.Errorf("Expected pitch to be clamped to %d, got %g", DefaultMaxPitch, c.Pitch())
	}
}

func TestLookSmoothing(t *testing.T) {
	c := New(spring.Follower{Params: spring.DefaultParams})
	c.LookFrequency = 6
	c.LookDamping = 1
	in := &fakeInput{yaw: 90}
	c.Update(in, 1.0/60)
	if y := c.Yaw(); y <= 0 || y >= 90 {
		t.Errorf("Expected eased yaw in (0, 90) after one frame, got %g", y)
	}
	for i := 0; i < 300; i++ {
		c.Update(in, 1.0/60)
	}
	if y := c.Yaw(); mgl32.Abs(y-90) > 0.01 {
		t.Errorf("Expected yaw to settle at 90, got %g", y)
	}
}

func TestView(t *testing.T) {
	c := New(spring.Follower{Params: spring.DefaultParams})
	c.Place(mgl32.Vec3{3, -1, 7})
	for _, look := range [][2]float32{{0, 0}, {30, 0}, {-120, 20}, {200, -45}} {
		c.Look(look[0], look[1])
		v := c.View()
		o := mgl32.TransformCoordinate(c.Position(), v)
		if !vecNear(o, mgl32.Vec3{}, 1e-4) {
			t.Errorf("%v: expected position to map to origin, got %v", look, o)
		}
		// the looking direction, pitch included, maps to -z in view space
		sy, cy := sincos(look[0])
		sp, cp := sincos(look[1])
		dir := mgl32.Vec3{sy * cp, sp, -cy * cp}
		got := mgl32.TransformCoordinate(c.Position().Add(dir), v)
		if !vecNear(got, mgl32.Vec3{0, 0, -1}, 1e-4) {
			t.Errorf("%v: expected view direction %v to map to -z, got %v", look, dir, got)
		}
	}
}
