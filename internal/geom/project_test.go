package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func ohioBound() orb.Bound {
	return orb.Bound{Min: orb.Point{-84.8, 38.4}, Max: orb.Point{-80.5, 42.0}}
}

func TestProjectionRoundTrip(t *testing.T) {
	proj := NewProjection(ohioBound())
	pts := []orb.Point{
		{-83.0, 40.0},
		{-84.8, 38.4},
		{-80.5, 42.0},
	}
	for _, pt := range pts {
		back := proj.Inverse(proj.Forward(pt))
		require.InDelta(t, pt[0], back[0], 1e-9)
		require.InDelta(t, pt[1], back[1], 1e-9)
	}
}

func TestProjectionScale(t *testing.T) {
	proj := NewProjection(ohioBound())
	c := ohioBound().Center()
	a := proj.Forward(c)
	b := proj.Forward(orb.Point{c[0], c[1] + 1})
	// one degree of latitude is about 111.19 km on a 6371 km sphere
	require.InDelta(t, 111194.9, b[1]-a[1], 1.0)
	require.InDelta(t, 0, b[0]-a[0], 1e-9)
}

func TestProjectionCenterIsOrigin(t *testing.T) {
	proj := NewProjection(ohioBound())
	p := proj.Forward(ohioBound().Center())
	require.InDelta(t, 0, p[0], 1e-9)
	require.InDelta(t, 0, p[1], 1e-9)
}

func TestProjectCopies(t *testing.T) {
	proj := NewProjection(ohioBound())
	mp := orb.MultiPolygon{{{{-83, 40}, {-82, 40}, {-82, 41}, {-83, 40}}}}
	orig := mp[0][0][0]
	out := proj.Project(mp)
	require.Equal(t, orig, mp[0][0][0], "input must not be modified")
	require.False(t, math.IsNaN(out[0][0][0][0]))
	require.NotEqual(t, mp[0][0][0], out[0][0][0])
}
