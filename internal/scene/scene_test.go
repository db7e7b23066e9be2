package scene

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"reliefmap/internal/geom"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func box(name string, minLon, minLat, maxLon, maxLat float64) geom.Region {
	return geom.Region{
		Name: name,
		Key:  geom.NormalizeKey(name),
		Boundary: orb.MultiPolygon{{{
			{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
		}}},
	}
}

func testRegions() []geom.Region {
	return []geom.Region{
		box("Franklin", -83.2, 39.8, -82.7, 40.2),
		box("Adams", -83.7, 38.6, -83.2, 39.0),
		box("Vinton", -82.6, 39.2, -82.2, 39.5),
	}
}

func testTable() geom.Table {
	return geom.Table{
		KeyColumn:   "county",
		ValueColumn: "median_income",
		Rows: []geom.Row{
			{Key: "franklin", Name: "Franklin", Value: 70000},
			{Key: "adams", Name: "Adams", Value: 40000},
			{Key: "vinton", Name: "Vinton", Value: 55000},
		},
	}
}

func TestBuildJoinsAndScales(t *testing.T) {
	sc, err := Build(testRegions(), testTable(), Options{Logger: testLogger()})
	require.NoError(t, err)
	require.Len(t, sc.Solids, 3)

	byName := map[string]Solid{}
	for _, s := range sc.Solids {
		byName[s.Name] = s
	}
	require.Equal(t, 0.0, byName["Adams"].Height, "minimum value sits on the ground")
	require.Equal(t, DefaultMaxHeight, byName["Franklin"].Height, "maximum value hits the ceiling")
	require.Greater(t, byName["Vinton"].Height, byName["Adams"].Height)
	require.Less(t, byName["Vinton"].Height, byName["Franklin"].Height)

	for _, s := range sc.Solids {
		require.False(t, s.Mesh.IsEmpty())
		require.False(t, s.Missing)
	}
}

func TestBuildMissingSkip(t *testing.T) {
	table := testTable()
	table.Rows = table.Rows[:2] // no row for Vinton
	sc, err := Build(testRegions(), table, Options{Missing: MissingSkip, Logger: testLogger()})
	require.NoError(t, err)
	require.Len(t, sc.Solids, 2)
	for _, s := range sc.Solids {
		require.NotEqual(t, "Vinton", s.Name)
	}
}

func TestBuildMissingZero(t *testing.T) {
	table := testTable()
	table.Rows[2].Value = math.NaN() // blank cell
	sc, err := Build(testRegions(), table, Options{Missing: MissingZero, Logger: testLogger()})
	require.NoError(t, err)
	require.Len(t, sc.Solids, 3)

	var vinton Solid
	for _, s := range sc.Solids {
		if s.Name == "Vinton" {
			vinton = s
		}
	}
	require.True(t, vinton.Missing)
	require.Equal(t, 0.0, vinton.Height)
	require.True(t, math.IsNaN(vinton.Value))
	require.False(t, vinton.Mesh.IsEmpty(), "flat solids still render a top cap")
}

func TestBuildMissingFail(t *testing.T) {
	table := testTable()
	table.Rows = table.Rows[:2]
	_, err := Build(testRegions(), table, Options{Missing: MissingFail, Logger: testLogger()})
	require.True(t, errors.Is(err, ErrUnmatched))
}

func TestBuildDuplicateKeyLastWins(t *testing.T) {
	table := testTable()
	table.Rows = append(table.Rows, geom.Row{Key: "adams", Name: "Adams", Value: 99000})
	sc, err := Build(testRegions(), table, Options{Logger: testLogger()})
	require.NoError(t, err)
	for _, s := range sc.Solids {
		if s.Name == "Adams" {
			require.Equal(t, 99000.0, s.Value)
		}
	}
}

func TestBuildAllEqualValues(t *testing.T) {
	table := testTable()
	for i := range table.Rows {
		table.Rows[i].Value = 60000
	}
	sc, err := Build(testRegions(), table, Options{MaxHeight: 9000, Logger: testLogger()})
	require.NoError(t, err)
	for _, s := range sc.Solids {
		require.Equal(t, 9000.0, s.Height, "uniform data keeps a uniform relief")
	}
}

func TestBuildNoRegions(t *testing.T) {
	_, err := Build(nil, testTable(), Options{Logger: testLogger()})
	require.True(t, errors.Is(err, ErrNoSolids))
}

func TestBuildZeroPolicyAllMissing(t *testing.T) {
	table := testTable()
	for i := range table.Rows {
		table.Rows[i].Value = math.NaN()
	}
	sc, err := Build(testRegions(), table, Options{Missing: MissingZero, Logger: testLogger()})
	require.NoError(t, err, "zero policy keeps regions even when no value is defined")
	require.Len(t, sc.Solids, 3)
	for _, s := range sc.Solids {
		require.True(t, s.Missing)
		require.Equal(t, 0.0, s.Height)
		require.False(t, s.Mesh.IsEmpty())
	}
	require.Equal(t, DefaultMaxHeight, sc.Scale.MaxHeight)

	sum := sc.Summarize(3)
	require.Equal(t, 3, sum.Solids)
	require.Equal(t, 0.0, sum.MeanValue)
}

func TestBuildNothingSurvives(t *testing.T) {
	_, err := Build(testRegions(), geom.Table{Rows: []geom.Row{{Key: "elsewhere", Value: 1}}},
		Options{Missing: MissingSkip, Logger: testLogger()})
	require.True(t, errors.Is(err, ErrNoSolids))
}

func TestParseMissingPolicy(t *testing.T) {
	for _, s := range []string{"skip", "zero", "fail"} {
		p, err := ParseMissingPolicy(s)
		require.NoError(t, err)
		require.Equal(t, MissingPolicy(s), p)
	}
	_, err := ParseMissingPolicy("ignore")
	require.Error(t, err)
}

func TestSummarize(t *testing.T) {
	sc, err := Build(testRegions(), testTable(), Options{Logger: testLogger()})
	require.NoError(t, err)
	sum := sc.Summarize(4) // pretend one region was dropped before the join
	require.Equal(t, 3, sum.Solids)
	require.Equal(t, 1, sum.Skipped)
	require.Equal(t, 40000.0, sum.MinValue)
	require.Equal(t, 70000.0, sum.MaxValue)
	require.InDelta(t, 55000.0, sum.MeanValue, 1e-9)
	require.Greater(t, sum.AreaKm2, 0.0)
}
