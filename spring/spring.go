// Package spring implements a velocity-free damped spring used to make a
// position chase a moving target.
//
// The spring is a first-order positional filter, not a mass-spring-damper
// simulation: each step moves the current position a distance dependent
// fraction of the way toward the target. The correction grows with distance,
// so far targets are caught up with quickly, while a small damping offset
// keeps the correction from vanishing close to the target.
//
// Step only produces smooth motion for small time steps. Callers are expected
// to feed it a bounded delta such as the one reported by package frametime,
// whose clamp keeps dt at or below 0.25s.
//
package spring

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Params holds the tunable constants of a spring.
//
type Params struct {
	Stiffness     float32 // correction rate per unit of distance, in 1/s
	DampingOffset float32 // offsets the 1/distance term near the target
	DeadZone      float32 // distance below which no correction is applied
}

// DefaultParams are the constants used by the chase camera.
//
var DefaultParams = Params{
	Stiffness:     10,
	DampingOffset: 0.00065,
	DeadZone:      0.001,
}

// Validate checks that all parameters are finite and in range.
//
func (p Params) Validate() error {
	switch {
	case !finite(p.Stiffness) || p.Stiffness <= 0:
		return errors.Errorf("spring: invalid stiffness %g", p.Stiffness)
	case !finite(p.DampingOffset) || p.DampingOffset < 0:
		return errors.Errorf("spring: invalid damping offset %g", p.DampingOffset)
	case !finite(p.DeadZone) || p.DeadZone <= 0:
		return errors.Errorf("spring: invalid dead zone %g", p.DeadZone)
	}
	return nil
}

// OvershootFreeDistance returns the smallest distance to the target from which
// a single uncapped step of length dt does not move past the target.
//
// The step scalar is Stiffness*dt + DampingOffset*dt/distance², which stays at
// or below 1 as long as distance >= sqrt(DampingOffset*dt / (1-Stiffness*dt)).
// If Stiffness*dt >= 1, every step would overshoot and +Inf is returned.
//
// With DefaultParams and dt = 1/60s, this is about 0.0036. Step caps the scalar
// to 1 below that distance.
//
func (p Params) OvershootFreeDistance(dt float32) float32 {
	kdt := float64(p.Stiffness) * float64(dt)
	if kdt >= 1 {
		return float32(math.Inf(1))
	}
	return float32(math.Sqrt(float64(p.DampingOffset) * float64(dt) / (1 - kdt)))
}

// Follower moves positions toward targets.
//
// The zero value is not usable; use NewFollower or set Params to a valid set
// of parameters such as DefaultParams.
//
type Follower struct {
	Params
}

// NewFollower returns a Follower with the given parameters after validating
// them.
//
func NewFollower(p Params) (Follower, error) {
	if err := p.Validate(); err != nil {
		return Follower{}, err
	}
	return Follower{p}, nil
}

// Step returns the position reached by moving current toward target during dt
// seconds.
//
// Step returns current unchanged when the distance to the target is below the
// dead zone, or when any input is not finite or dt is negative. A step never
// moves past the target: when the computed fraction of the remaining distance
// reaches 1, target is returned.
//
func (f Follower) Step(current, target mgl32.Vec3, dt float32) mgl32.Vec3 {
	if !finiteVec(current) || !finiteVec(target) || !finite(dt) || dt < 0 {
		return current
	}
	d := target.Sub(current)
	dist := d.Len()
	if dist < f.DeadZone || dist == 0 || !finite(dist) {
		return current
	}
	mag := f.Stiffness*dist + f.DampingOffset/dist
	s := mag / dist * dt
	if s >= 1 {
		return target
	}
	return current.Add(d.Mul(s))
}

// Converge steps current toward target with a fixed dt until the position
// stops moving or maxSteps steps have been taken. It returns the final
// position and the number of steps that moved the position.
//
func (f Follower) Converge(current, target mgl32.Vec3, dt float32, maxSteps int) (mgl32.Vec3, int) {
	n := 0
	for ; n < maxSteps; n++ {
		next := f.Step(current, target, dt)
		if next == current {
			break
		}
		current = next
	}
	return current, n
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func finiteVec(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
