package chasecam

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameBuffer represents the size in pixels of a render target.
//
type FrameBuffer struct {
	W, H int
}

// Size returns the framebuffer size.
//
func (fb FrameBuffer) Size() image.Point {
	return image.Pt(fb.W, fb.H)
}

// Aspect returns the width to height ratio of the framebuffer. A zero height,
// as reported for minimized windows, is treated as 1.
//
func (fb FrameBuffer) Aspect() float32 {
	h := fb.H
	if h <= 0 {
		h = 1
	}
	return float32(fb.W) / float32(h)
}

// ScreenProjection returns an orthographic projection that maps framebuffer
// pixel coordinates to GL coordinates in range [-1, 1]. (0,0) is the top-left
// corner of the framebuffer.
//
func (fb FrameBuffer) ScreenProjection() mgl32.Mat4 {
	return mgl32.Ortho(0, float32(fb.W), float32(fb.H), 0, -1, 1)
}

// FbToGL converts framebuffer pixel coordinates to GL coordinates in range [-1, 1].
//
func (fb FrameBuffer) FbToGL(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		2.0*p[0]/float32(fb.W) - 1.0,
		-2.0*p[1]/float32(fb.H) + 1.0,
	}
}
