package scene

import "gonum.org/v1/gonum/spatial/r3"

// Tri indexes three mesh vertices, counter-clockwise seen from outside.
type Tri [3]int

// Mesh is the triangle mesh of one extruded region: a triangulated top cap
// plus one wall strip per boundary ring.
type Mesh struct {
	Points []r3.Vec
	Faces  []Tri
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Points) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Faces) }

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Points) == 0 }

// Normal returns the unit normal of face i. Degenerate faces report +Z.
func (m *Mesh) Normal(i int) r3.Vec {
	f := m.Faces[i]
	a, b, c := m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]
	n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
	if r3.Norm(n) == 0 {
		return r3.Vec{Z: 1}
	}
	return r3.Unit(n)
}

// Centroid returns the mean vertex of face i.
func (m *Mesh) Centroid(i int) r3.Vec {
	f := m.Faces[i]
	a, b, c := m.Points[f[0]], m.Points[f[1]], m.Points[f[2]]
	return r3.Scale(1.0/3.0, r3.Add(a, r3.Add(b, c)))
}
