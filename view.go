// Package chasecam holds the view and framebuffer types shared by the chase
// camera demos.
//
package chasecam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// View describes a perspective projection.
//
type View struct {
	FovY float32 // vertical field of view, in degrees
	Near float32
	Far  float32
}

// DefaultView matches a 45° field of view with clipping planes at 0.1 and 100.
//
var DefaultView = View{FovY: 45, Near: 0.1, Far: 100}

// Projection returns the projection matrix for the given framebuffer.
//
func (v *View) Projection(fb FrameBuffer) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(v.FovY), fb.Aspect(), v.Near, v.Far)
}
