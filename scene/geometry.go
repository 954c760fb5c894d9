package scene

import "github.com/go-gl/mathgl/mgl32"

// GridLines returns the end points of the lines of a square grid lying in the
// y = 0 plane, centered on the origin, with lines at every integer coordinate
// in [-half, half] along both axes. Points come in pairs, one pair per line.
//
func GridLines(half int) []mgl32.Vec3 {
	if half < 0 {
		return nil
	}
	h := float32(half)
	pts := make([]mgl32.Vec3, 0, (2*half+1)*4)
	for i := -half; i <= half; i++ {
		f := float32(i)
		pts = append(pts,
			mgl32.Vec3{f, 0, -h}, mgl32.Vec3{f, 0, h},
			mgl32.Vec3{h, 0, f}, mgl32.Vec3{-h, 0, f})
	}
	return pts
}

// Face is a quad with a flat normal.
//
type Face struct {
	Normal mgl32.Vec3
	Verts  [4]mgl32.Vec3
}

// cube vertices: x is -1 for 0-3, +1 for 4-7
var cubeVerts = [8]mgl32.Vec3{
	{-1, -1, 1}, {-1, -1, -1}, {-1, 1, -1}, {-1, 1, 1},
	{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1},
}

var cubeFaces = [6]struct {
	n   mgl32.Vec3
	idx [4]int
}{
	{mgl32.Vec3{-1, 0, 0}, [4]int{0, 1, 2, 3}},
	{mgl32.Vec3{0, 1, 0}, [4]int{3, 2, 6, 7}},
	{mgl32.Vec3{1, 0, 0}, [4]int{7, 6, 5, 4}},
	{mgl32.Vec3{0, -1, 0}, [4]int{4, 5, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, [4]int{5, 6, 2, 1}},
	{mgl32.Vec3{0, 0, 1}, [4]int{7, 4, 0, 3}},
}

// CubeFaces returns the six faces of the cube spanning [-1, 1] on all axes.
//
func CubeFaces() [6]Face {
	var fs [6]Face
	for i, f := range cubeFaces {
		fs[i].Normal = f.n
		for j, k := range f.idx {
			fs[i].Verts[j] = cubeVerts[k]
		}
	}
	return fs
}
