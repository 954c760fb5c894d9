// Package debug provides frame statistics and an on-screen info box.
//
package debug

import (
	"image"
	"time"

	"github.com/db47h/chasecam"
	"github.com/db47h/chasecam/scene"
	"github.com/db47h/chasecam/text"
	"github.com/db47h/chasecam/texture"
	"github.com/go-gl/gl/v2.1/gl"
)

const samples = 32

// Timer keeps the last 32 raw frame times.
//
type Timer struct {
	times [samples]time.Duration
	index int
	n     int
}

// Add records a frame time.
//
func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (samples - 1)
	if t.n < samples {
		t.n++
	}
}

// Average returns the average of the recorded frame times, or 0 if none has
// been recorded.
//
func (t *Timer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var avg time.Duration
	for _, dt := range t.times[:t.n] {
		avg += dt
	}
	return avg / time.Duration(t.n)
}

// AveragePerSecond returns the frame rate matching Average.
//
func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Max returns the longest recorded frame time.
//
func (t *Timer) Max() time.Duration {
	var m time.Duration
	for _, dt := range t.times[:t.n] {
		if dt > m {
			m = dt
		}
	}
	return m
}

// Corner selects where an InfoBox is drawn.
//
type Corner int

// Corner values.
//
const (
	TopLeft Corner = iota
	TopRight
)

// Debug draws text overlays.
//
type Debug struct {
	TD         *text.Drawer
	Color      scene.Color
	Background scene.Color
}

// BoxRect returns the screen rectangle of an info box of the given size placed
// in corner c of fb.
//
func BoxRect(fb *chasecam.FrameBuffer, c Corner, sz image.Point) image.Rectangle {
	switch c {
	case TopRight:
		return image.Rect(fb.W-sz.X, 0, fb.W, sz.Y)
	default:
		return image.Rectangle{Max: sz}
	}
}

// InfoBox draws lines of text on an opaque background in corner pos of the
// frame buffer. It saves and restores the GL state it changes.
//
func (dbg *Debug) InfoBox(fb *chasecam.FrameBuffer, pos Corner, lines []string) {
	const pad = 2
	m := dbg.TD.Face().Metrics()
	lh := m.Height.Ceil()
	w := 0
	for _, l := range lines {
		if a := dbg.TD.MeasureString(l).Ceil(); a > w {
			w = a
		}
	}
	r := BoxRect(fb, pos, image.Pt(w+2*pad, lh*len(lines)+2*pad))

	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.COLOR_BUFFER_BIT | gl.TRANSFORM_BIT)
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	proj := fb.ScreenProjection()
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	bg := dbg.Background
	gl.Color4f(bg.R, bg.G, bg.B, bg.A)
	gl.Begin(gl.QUADS)
	gl.Vertex2f(float32(r.Min.X), float32(r.Min.Y))
	gl.Vertex2f(float32(r.Min.X), float32(r.Max.Y))
	gl.Vertex2f(float32(r.Max.X), float32(r.Max.Y))
	gl.Vertex2f(float32(r.Max.X), float32(r.Min.Y))
	gl.End()

	gl.Enable(gl.TEXTURE_2D)
	x := float32(r.Min.X + pad)
	y := float32(r.Min.Y+pad) + float32(m.Ascent.Ceil())
	for i, l := range lines {
		dbg.TD.DrawString(x, y+float32(i*lh), l, dbg.Color)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.PopAttrib()
}

// Crosshair draws a texture centered on the frame buffer.
//
func Crosshair(fb *chasecam.FrameBuffer, d texture.Drawable) {
	gl.PushAttrib(gl.ENABLE_BIT | gl.CURRENT_BIT | gl.COLOR_BUFFER_BIT | gl.TRANSFORM_BIT)
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	proj := fb.ScreenProjection()
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.LIGHTING)
	gl.Enable(gl.TEXTURE_2D)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)

	sz := d.Size()
	texture.Draw(d, float32(fb.W-sz.X)/2, float32(fb.H-sz.Y)/2, scene.White)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.PopAttrib()
}
