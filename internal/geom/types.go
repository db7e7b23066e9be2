package geom

import (
	"errors"
	"strings"

	"github.com/paulmach/orb"
)

// ErrSchema reports input that opened fine but is missing the fields the
// pipeline needs (polygon geometry, key or value columns).
var ErrSchema = errors.New("schema: required field not found")

// Region is one administrative boundary plus its join key.
type Region struct {
	Name     string
	Key      string // normalized Name, used for joining
	Boundary orb.MultiPolygon
	Props    map[string]any // raw feature properties, if any
}

// Row is one attribute record from the tabular input.
// Value is NaN when the source cell was blank or non-numeric.
type Row struct {
	Key   string
	Name  string
	Value float64
}

// Table is the attribute side of the join, kept in file order.
type Table struct {
	KeyColumn   string
	ValueColumn string
	Rows        []Row
}

// NormalizeKey lowercases and trims a join key so "Franklin " matches
// "franklin".
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Bound returns the geographic bounding box covering all regions.
func Bound(regions []Region) orb.Bound {
	var b orb.Bound
	for i, r := range regions {
		if i == 0 {
			b = r.Boundary.Bound()
			continue
		}
		b = b.Union(r.Boundary.Bound())
	}
	return b
}
