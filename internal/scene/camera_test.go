package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestViewUnprojectBaseRoundTrip(t *testing.T) {
	sc, err := Build(testRegions(), testTable(), Options{Logger: testLogger()})
	require.NoError(t, err)

	cams := []Camera{
		DefaultCamera(),
		{YawDeg: 35, PitchDeg: 70, Zoom: 2},
		{YawDeg: -120, PitchDeg: 20, Zoom: 0.5},
	}
	pts := []r3.Vec{
		{X: sc.Bound.Min[0], Y: sc.Bound.Min[1]},
		{X: sc.Bound.Max[0], Y: sc.Bound.Max[1]},
		{X: sc.Bound.Center()[0], Y: sc.Bound.Center()[1]},
	}
	for _, cam := range cams {
		v := NewView(sc, cam)
		for _, p := range pts {
			u, w, _ := v.Project(p)
			back, ok := v.UnprojectBase(u, w)
			require.True(t, ok)
			require.InDelta(t, p.X, back[0], 1e-6)
			require.InDelta(t, p.Y, back[1], 1e-6)
		}
	}
}

func TestViewUnprojectEdgeOn(t *testing.T) {
	sc, err := Build(testRegions(), testTable(), Options{Logger: testLogger()})
	require.NoError(t, err)
	v := NewView(sc, Camera{YawDeg: 0, PitchDeg: 0, Zoom: 1})
	_, ok := v.UnprojectBase(0, 0)
	require.False(t, ok, "ground plane is invisible edge-on")
}

func TestViewDepthOrdering(t *testing.T) {
	sc, err := Build(testRegions(), testTable(), Options{Logger: testLogger()})
	require.NoError(t, err)
	v := NewView(sc, DefaultCamera())

	c := sc.Bound.Center()
	near := r3.Vec{X: c[0], Y: c[1] - 1000}
	far := r3.Vec{X: c[0], Y: c[1] + 1000}
	_, _, dNear := v.Project(near)
	_, _, dFar := v.Project(far)
	require.Greater(t, dFar, dNear, "larger depth means farther from the camera")
}

func TestViewZoomScalesCoordinates(t *testing.T) {
	sc, err := Build(testRegions(), testTable(), Options{Logger: testLogger()})
	require.NoError(t, err)
	p := r3.Vec{X: sc.Bound.Max[0], Y: sc.Bound.Max[1]}

	u1, _, _ := NewView(sc, Camera{PitchDeg: 55, Zoom: 1}).Project(p)
	u2, _, _ := NewView(sc, Camera{PitchDeg: 55, Zoom: 2}).Project(p)
	require.InDelta(t, 2*u1, u2, 1e-9)
}
