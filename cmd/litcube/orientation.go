package main

import (
	"github.com/db47h/chasecam/app/event"
	"github.com/go-gl/mathgl/mgl32"
)

// key rotations in degrees, applied in object space
var keyRotations = map[event.Key]struct {
	axis  mgl32.Vec3
	angle float32
}{
	event.KeyW: {mgl32.Vec3{1, 0, 0}, 2},
	event.KeyS: {mgl32.Vec3{1, 0, 0}, -2},
	event.KeyA: {mgl32.Vec3{0, 0, 1}, -1},
	event.KeyD: {mgl32.Vec3{0, 0, 1}, 2},
}

// orientation is the modelview matrix of the cube.
//
type orientation struct {
	m mgl32.Mat4
}

func newOrientation() *orientation {
	m := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	m = m.Mul4(mgl32.Translate3D(0, 0, -1))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(60)))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(60)))
	return &orientation{m}
}

// rotate applies the rotation bound to k and reports whether k is bound.
//
func (o *orientation) rotate(k event.Key) bool {
	r, ok := keyRotations[k]
	if !ok {
		return false
	}
	o.m = o.m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(r.angle), r.axis))
	return true
}
