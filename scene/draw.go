// Package scene draws the demo scenes with the OpenGL 2.1 fixed function
// pipeline.
//
// All drawing functions must be called from the goroutine owning the GL
// context. The geometry helpers in this package do not need a context.
//
package scene

import (
	"github.com/db47h/chasecam/mesh"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// LoadProjection replaces the projection matrix with m and leaves the
// modelview matrix current.
//
func LoadProjection(m mgl32.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&m[0])
	gl.MatrixMode(gl.MODELVIEW)
}

// LoadModelView replaces the modelview matrix with m.
//
func LoadModelView(m mgl32.Mat4) {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixf(&m[0])
}

// Clear clears the color buffer to c, and the depth buffer if depth is true.
//
func Clear(c Color, depth bool) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	var mask uint32 = gl.COLOR_BUFFER_BIT
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

// Grid is a square grid of lines on the ground plane.
//
type Grid struct {
	Color Color
	pts   []mgl32.Vec3
}

// NewGrid returns a grid with lines at every integer coordinate in
// [-half, half].
//
func NewGrid(half int, c Color) *Grid {
	return &Grid{Color: c, pts: GridLines(half)}
}

// Draw draws the grid.
//
func (g *Grid) Draw() {
	gl.Color4f(g.Color.R, g.Color.G, g.Color.B, g.Color.A)
	gl.Begin(gl.LINES)
	for _, p := range g.pts {
		gl.Vertex3f(p[0], p[1], p[2])
	}
	gl.End()
}

// PointList is a point cloud compiled into a display list.
//
type PointList struct {
	id   uint32
	n    int
	size float32
}

// NewPointList compiles the points of pc into a new display list. Points are
// drawn size pixels wide.
//
func NewPointList(pc *mesh.PointCloud, size float32) *PointList {
	l := &PointList{id: gl.GenLists(1), n: pc.Len(), size: size}
	gl.NewList(l.id, gl.COMPILE)
	gl.Begin(gl.POINTS)
	for _, p := range pc.Points {
		gl.Vertex3f(p[0], p[1], p[2])
	}
	gl.End()
	gl.EndList()
	return l
}

// Len returns the number of points in the list.
//
func (l *PointList) Len() int { return l.n }

// Draw draws the points rotated by angle degrees about the Y axis.
//
func (l *PointList) Draw(angle float32, c Color) {
	gl.PointSize(l.size)
	gl.Color4f(c.R, c.G, c.B, c.A)
	gl.PushMatrix()
	gl.Rotatef(angle, 0, 1, 0)
	gl.CallList(l.id)
	gl.PopMatrix()
}

// Delete deletes the display list.
//
func (l *PointList) Delete() {
	if l.id != 0 {
		gl.DeleteLists(l.id, 1)
		l.id = 0
	}
}

// DrawCube draws the cube returned by CubeFaces with flat normals.
//
func DrawCube() {
	for _, f := range CubeFaces() {
		gl.Begin(gl.QUADS)
		gl.Normal3f(f.Normal[0], f.Normal[1], f.Normal[2])
		for _, v := range f.Verts {
			gl.Vertex3f(v[0], v[1], v[2])
		}
		gl.End()
	}
}

// Light is a fixed function pipeline light. A Position with w = 0 is a
// directional light.
//
type Light struct {
	Diffuse  Color
	Position [4]float32
}

// CubeLights are the lights of the cube demo: a green light from the upper
// right front and a blue light from above, both at infinity.
//
var CubeLights = []Light{
	{Diffuse: Green, Position: [4]float32{1, 1, 1, 0}},
	{Diffuse: Blue, Position: [4]float32{0, 1, 0, 0}},
}

// EnableLights sets up the given lights in order, starting with GL_LIGHT0,
// and enables lighting. Light positions are transformed by the current
// modelview matrix.
//
func EnableLights(lights ...Light) {
	for i, l := range lights {
		id := uint32(gl.LIGHT0 + i)
		d := l.Diffuse.Vec4()
		p := l.Position
		gl.Lightfv(id, gl.DIFFUSE, &d[0])
		gl.Lightfv(id, gl.POSITION, &p[0])
		gl.Enable(id)
	}
	gl.Enable(gl.LIGHTING)
}
