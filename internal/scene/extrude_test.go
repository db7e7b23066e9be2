package scene

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestExtrudeSquare(t *testing.T) {
	base := orb.MultiPolygon{{{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}}
	m := Extrude(base, 2)

	// top cap: 4 verts, 2 tris; wall: 4 edges x (4 verts, 2 tris)
	require.Equal(t, 4+16, m.VertexCount())
	require.Equal(t, 2+8, m.TriangleCount())

	for _, f := range m.Faces {
		for _, vi := range f {
			require.GreaterOrEqual(t, vi, 0)
			require.Less(t, vi, m.VertexCount())
		}
	}
}

func TestExtrudeWallCountPerRing(t *testing.T) {
	base := orb.MultiPolygon{{
		{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
		{{3, 3}, {3, 7}, {7, 7}, {7, 3}, {3, 3}},
	}}
	m := Extrude(base, 5)

	wallTris := 0
	for i := range m.Faces {
		n := m.Normal(i)
		if n.Z > -0.5 && n.Z < 0.5 {
			wallTris++
		}
	}
	// two triangles per boundary edge, outer ring and hole alike
	require.Equal(t, 2*(4+4), wallTris)
}

func TestExtrudeBaseRingRoundTrip(t *testing.T) {
	ring := orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	base := orb.MultiPolygon{{ring}}
	m := Extrude(base, 7)

	seen := map[orb.Point]bool{}
	for _, p := range m.Points {
		if p.Z == 0 {
			seen[orb.Point{p.X, p.Y}] = true
		}
	}
	for _, pt := range ring {
		require.True(t, seen[pt], "base vertex %v must survive extrusion at z=0", pt)
	}
	require.Len(t, seen, 4)
}

func TestExtrudeHeights(t *testing.T) {
	base := orb.MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}
	m := Extrude(base, 3)
	for _, p := range m.Points {
		require.True(t, p.Z == 0 || p.Z == 3, "vertices only at base and cap")
	}
}

func TestExtrudeZeroHeight(t *testing.T) {
	base := orb.MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}}
	m := Extrude(base, 0)
	require.False(t, m.IsEmpty())
	for _, p := range m.Points {
		require.Equal(t, 0.0, p.Z)
	}
}

func TestMeshNormal(t *testing.T) {
	base := orb.MultiPolygon{{{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {0, 0}}}}
	m := Extrude(base, 1)
	// the first faces are the top cap
	n := m.Normal(0)
	require.InDelta(t, 1.0, n.Z, 1e-9, "cap normal points up")
}

func TestMeshCentroid(t *testing.T) {
	base := orb.MultiPolygon{{{{0, 0}, {3, 0}, {0, 3}, {0, 0}}}}
	m := Extrude(base, 6)
	c := m.Centroid(0)
	require.InDelta(t, 1.0, c.X, 1e-9)
	require.InDelta(t, 1.0, c.Y, 1e-9)
	require.InDelta(t, 6.0, c.Z, 1e-9)
}
