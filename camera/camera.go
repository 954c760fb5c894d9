// Package camera implements a first person camera whose position chases a
// target point driven by the keyboard.
//
// The keys move the target immediately; the camera position then follows it
// through a spring.Follower, which gives movement its eased start and stop.
//
package camera

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/db47h/chasecam/app/event"
	"github.com/db47h/chasecam/spring"
	"github.com/go-gl/mathgl/mgl32"
)

// Default camera settings.
//
const (
	DefaultSpeed    = 5  // target units per second
	DefaultMaxPitch = 89 // degrees
)

// Default start position and target.
//
var (
	DefaultPosition = mgl32.Vec3{0, 2, 0}
	DefaultTarget   = mgl32.Vec3{0, 2, -3}
)

// Input is the input state consumed by Update. It is implemented by
// *input.State.
//
type Input interface {
	Down(event.Key) bool
	TakeLook() (yaw, pitch float32)
}

// Camera is a chase camera.
//
// Yaw is measured in degrees clockwise from the -z axis when looking down
// from +y. Pitch is in degrees, positive values look up.
//
type Camera struct {
	Speed    float32
	MaxPitch float32
	Follower spring.Follower

	// LookFrequency and LookDamping configure an optional harmonica spring
	// that eases yaw and pitch toward their requested values. A zero
	// LookFrequency applies look changes immediately.
	LookFrequency float64
	LookDamping   float64

	position mgl32.Vec3
	target   mgl32.Vec3

	yaw, pitch         float32 // current orientation
	goalYaw, goalPitch float32 // requested orientation
	yawVel, pitchVel   float64
}

// New returns a camera at DefaultPosition looking at DefaultTarget, using the
// given follower.
//
func New(f spring.Follower) *Camera {
	return &Camera{
		Speed:    DefaultSpeed,
		MaxPitch: DefaultMaxPitch,
		Follower: f,
		position: DefaultPosition,
		target:   DefaultTarget,
	}
}

// Position returns the current camera position.
//
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Target returns the point the camera is chasing.
//
func (c *Camera) Target() mgl32.Vec3 { return c.target }

// Yaw returns the current yaw in degrees.
//
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the current pitch in degrees.
//
func (c *Camera) Pitch() float32 { return c.pitch }

// Place moves both the camera and its target to p, stopping any motion.
//
func (c *Camera) Place(p mgl32.Vec3) {
	c.position = p
	c.target = p
}

// SetTarget sets the point the camera chases.
//
func (c *Camera) SetTarget(t mgl32.Vec3) {
	c.target = t
}

// Look sets the requested orientation. With look smoothing disabled, it also
// sets the current orientation.
//
func (c *Camera) Look(yaw, pitch float32) {
	c.goalYaw = yaw
	c.goalPitch = c.clampPitch(pitch)
	if c.LookFrequency <= 0 {
		c.yaw, c.pitch = c.goalYaw, c.goalPitch
		c.yawVel, c.pitchVel = 0, 0
	}
}

// Forward returns the horizontal unit vector the camera faces.
//
func (c *Camera) Forward() mgl32.Vec3 {
	s, co := sincos(c.yaw)
	return mgl32.Vec3{s, 0, -co}
}

// Right returns the horizontal unit vector pointing to the right of the
// camera.
//
func (c *Camera) Right() mgl32.Vec3 {
	s, co := sincos(c.yaw)
	return mgl32.Vec3{co, 0, s}
}

// Update advances the camera by dt seconds: it applies look deltas, moves the
// target according to the keys held down, then steps the position toward the
// target.
//
func (c *Camera) Update(in Input, dt float32) {
	dy, dp := in.TakeLook()
	c.goalYaw += dy
	c.goalPitch = c.clampPitch(c.goalPitch + dp)
	c.updateLook(dt)

	step := c.Speed * dt
	fwd, right := c.Forward(), c.Right()
	if in.Down(event.KeyW) {
		c.target = c.target.Add(fwd.Mul(step))
	}
	if in.Down(event.KeyS) {
		c.target = c.target.Sub(fwd.Mul(step))
	}
	if in.Down(event.KeyD) {
		c.target = c.target.Add(right.Mul(step))
	}
	if in.Down(event.KeyA) {
		c.target = c.target.Sub(right.Mul(step))
	}
	c.position = c.Follower.Step(c.position, c.target, dt)
}

func (c *Camera) updateLook(dt float32) {
	if c.LookFrequency <= 0 || dt <= 0 {
		c.yaw, c.pitch = c.goalYaw, c.goalPitch
		return
	}
	s := harmonica.NewSpring(float64(dt), c.LookFrequency, c.LookDamping)
	var y, p float64
	y, c.yawVel = s.Update(float64(c.yaw), c.yawVel, float64(c.goalYaw))
	p, c.pitchVel = s.Update(float64(c.pitch), c.pitchVel, float64(c.goalPitch))
	c.yaw = float32(y)
	c.pitch = c.clampPitch(float32(p))
}

func (c *Camera) clampPitch(p float32) float32 {
	m := c.MaxPitch
	if m <= 0 {
		return p
	}
	return mgl32.Clamp(p, -m, m)
}

// View returns the view matrix: the world is translated so that the camera
// sits at the origin, then rotated by yaw about the Y axis and by pitch about
// the X axis.
//
func (c *Camera) View() mgl32.Mat4 {
	p := c.position
	return mgl32.HomogRotate3DX(mgl32.DegToRad(-c.pitch)).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(c.yaw))).
		Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}

func sincos(deg float32) (float32, float32) {
	s, c := math.Sincos(float64(mgl32.DegToRad(deg)))
	return float32(s), float32(c)
}
