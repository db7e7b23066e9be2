package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadGeometryDispatch(t *testing.T) {
	wkt := writeFile(t, "a.wkt", "Franklin;POLYGON((0 0, 1 0, 1 1, 0 0))\n")
	regions, err := LoadGeometry(wkt, "")
	require.NoError(t, err)
	require.Len(t, regions, 1)

	gj := writeFile(t, "b.GeoJSON", countiesJSON)
	regions, err = LoadGeometry(gj, "")
	require.NoError(t, err)
	require.Len(t, regions, 2, "extension match is case-insensitive")

	_, err = LoadGeometry(writeFile(t, "c.shp", "x"), "")
	require.Error(t, err)
}
