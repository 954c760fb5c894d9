// Package mesh loads vertex positions from Wavefront OBJ files.
//
// Only geometric vertices ("v" statements) are read. Faces, normals, texture
// coordinates and all other statements are skipped, so the result is a point
// cloud.
//
package mesh

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// PointCloud is an unordered set of vertex positions.
//
type PointCloud struct {
	Name   string
	Points []mgl32.Vec3
}

// ReadOBJ reads vertex positions from r.
//
// A "v" statement must have at least three coordinates. An optional fourth
// (w) coordinate is accepted and ignored. Parse errors report the offending
// line number.
//
func ReadOBJ(r io.Reader) (*PointCloud, error) {
	var pc PointCloud
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := s.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "o":
			if pc.Name == "" && len(fields) > 1 {
				pc.Name = strings.Join(fields[1:], " ")
			}
		case "v":
			if len(fields) < 4 || len(fields) > 5 {
				return nil, errors.Errorf("obj: line %d: expected 3 or 4 coordinates, got %d", line, len(fields)-1)
			}
			var p mgl32.Vec3
			for i := range p {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, errors.Wrapf(err, "obj: line %d", line)
				}
				p[i] = float32(f)
			}
			pc.Points = append(pc.Points, p)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "obj: read")
	}
	return &pc, nil
}

// Len returns the number of points in the cloud.
//
func (pc *PointCloud) Len() int {
	return len(pc.Points)
}

// Bounds returns the minimum and maximum corners of the axis aligned box
// enclosing all points. An empty cloud has zero bounds.
//
func (pc *PointCloud) Bounds() (min, max mgl32.Vec3) {
	if len(pc.Points) == 0 {
		return
	}
	min, max = pc.Points[0], pc.Points[0]
	for _, p := range pc.Points[1:] {
		for i := range p {
			mgl32.SetMin(&min[i], &p[i])
			mgl32.SetMax(&max[i], &p[i])
		}
	}
	return min, max
}

// Translate moves every point by offset.
//
func (pc *PointCloud) Translate(offset mgl32.Vec3) {
	for i := range pc.Points {
		pc.Points[i] = pc.Points[i].Add(offset)
	}
}

// Clone returns a deep copy of pc.
//
func (pc *PointCloud) Clone() *PointCloud {
	c := &PointCloud{Name: pc.Name, Points: make([]mgl32.Vec3, len(pc.Points))}
	copy(c.Points, pc.Points)
	return c
}
