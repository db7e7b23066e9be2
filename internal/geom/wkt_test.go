package geom

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

func TestParseWKTPolygon(t *testing.T) {
	mp, err := ParseWKTPolygon("POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")
	require.NoError(t, err)
	require.Len(t, mp, 1)
	require.Len(t, mp[0], 1)
	require.Len(t, mp[0][0], 5)
	require.Equal(t, orb.Point{4, 4}, mp[0][0][2])
}

func TestParseWKTPolygonWithHole(t *testing.T) {
	mp, err := ParseWKTPolygon("POLYGON((0 0, 10 0, 10 10, 0 10, 0 0), (3 3, 7 3, 7 7, 3 7, 3 3))")
	require.NoError(t, err)
	require.Len(t, mp[0], 2)
	require.Len(t, mp[0][1], 5)
}

func TestParseWKTPolygonClosesOpenRing(t *testing.T) {
	mp, err := ParseWKTPolygon("POLYGON((0 0, 1 0, 1 1))")
	require.NoError(t, err)
	ring := mp[0][0]
	require.Len(t, ring, 4)
	require.Equal(t, ring[0], ring[len(ring)-1])
}

func TestParseWKTMultiPolygon(t *testing.T) {
	mp, err := ParseWKTPolygon("MULTIPOLYGON(((0 0, 1 0, 1 1, 0 0)), ((5 5, 6 5, 6 6, 5 5)))")
	require.NoError(t, err)
	require.Len(t, mp, 2)
	// every ring keeps all of its points, closing vertex included
	require.Len(t, mp[0][0], 4)
	require.Len(t, mp[1][0], 4)
	require.Equal(t, orb.Point{0, 0}, mp[0][0][0])
	require.Equal(t, orb.Point{5, 5}, mp[1][0][0])
	require.Equal(t, orb.Point{6, 6}, mp[1][0][2])
}

func TestParseWKTMultiPolygonWithHole(t *testing.T) {
	mp, err := ParseWKTPolygon(
		"MULTIPOLYGON(((0 0, 10 0, 10 10, 0 10, 0 0), (3 3, 7 3, 7 7, 3 7, 3 3)), ((20 0, 22 0, 22 2, 20 0)))")
	require.NoError(t, err)
	require.Len(t, mp, 2)
	require.Len(t, mp[0], 2, "first part keeps its hole")
	require.Len(t, mp[0][1], 5)
	require.Len(t, mp[1], 1)
}

func TestParseWKTUnsupported(t *testing.T) {
	_, err := ParseWKTPolygon("LINESTRING(0 0, 1 1)")
	require.Error(t, err)
	_, err = ParseWKTPolygon("")
	require.Error(t, err)
}

func TestLoadWKT(t *testing.T) {
	p := writeFile(t, "regions.wkt", `# two boxes
Franklin;POLYGON((0 0, 2 0, 2 2, 0 2, 0 0))

Adams;POLYGON((3 0, 5 0, 5 2, 3 2, 3 0))
`)
	regions, err := LoadWKT(p)
	require.NoError(t, err)
	require.Len(t, regions, 2)
	require.Equal(t, "Franklin", regions[0].Name)
	require.Equal(t, "adams", regions[1].Key)
}

func TestLoadWKTUnnamedLine(t *testing.T) {
	p := writeFile(t, "bare.wkt", "POLYGON((0 0, 1 0, 1 1, 0 0))\n")
	regions, err := LoadWKT(p)
	require.NoError(t, err)
	require.Len(t, regions, 1)
	require.Equal(t, "region 1", regions[0].Name)
}

func TestLoadWKTBadLine(t *testing.T) {
	p := writeFile(t, "bad.wkt", "x;POINT(1 1)\n")
	_, err := LoadWKT(p)
	require.Error(t, err)
}
