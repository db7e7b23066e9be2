package scene

import (
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"
)

// Extrude lifts a planar multipolygon into a prism of height h. The top cap
// is triangulated per polygon; every ring, outer and hole alike, gets its
// own wall strip of two triangles per boundary edge. There is no bottom
// cap: solids sit on the ground plane.
func Extrude(mp orb.MultiPolygon, h float64) Mesh {
	var m Mesh
	for _, poly := range mp {
		extrudeTop(&m, poly, h)
		for _, ring := range poly {
			extrudeWall(&m, ring, h)
		}
	}
	return m
}

func extrudeTop(m *Mesh, poly orb.Polygon, h float64) {
	verts, faces := triangulate(poly)
	if len(faces) == 0 {
		return
	}
	off := len(m.Points)
	for _, p := range verts {
		m.Points = append(m.Points, r3.Vec{X: p[0], Y: p[1], Z: h})
	}
	for _, f := range faces {
		m.Faces = append(m.Faces, Tri{off + f[0], off + f[1], off + f[2]})
	}
}

// extrudeWall adds four vertices and two triangles per ring edge,
// connecting z=0 to z=h.
func extrudeWall(m *Mesh, ring orb.Ring, h float64) {
	b := openRing(ring)
	n := len(b)
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		p1 := b[i]
		p2 := b[(i+1)%n]
		off := len(m.Points)
		m.Points = append(m.Points,
			r3.Vec{X: p1[0], Y: p1[1], Z: h}, // top1
			r3.Vec{X: p2[0], Y: p2[1], Z: h}, // top2
			r3.Vec{X: p1[0], Y: p1[1]},       // bot1
			r3.Vec{X: p2[0], Y: p2[1]},       // bot2
		)
		m.Faces = append(m.Faces,
			Tri{off + 0, off + 1, off + 2},
			Tri{off + 1, off + 3, off + 2},
		)
	}
}
