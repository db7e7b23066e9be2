package geom

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusM = 6371000.0

// Projection maps geographic coordinates onto a local planar grid in meters,
// equirectangular about a reference point. Accurate enough at county scale
// and cheap to invert, which cursor picking needs.
type Projection struct {
	lon0    float64 // radians
	lat0    float64 // radians
	cosLat0 float64
}

// NewProjection centers a projection on the given geographic bound.
func NewProjection(b orb.Bound) Projection {
	c := b.Center()
	lat0 := c[1] * math.Pi / 180
	return Projection{
		lon0:    c[0] * math.Pi / 180,
		lat0:    lat0,
		cosLat0: math.Cos(lat0),
	}
}

// Forward converts lon/lat degrees to planar meters.
func (p Projection) Forward(pt orb.Point) orb.Point {
	lon := pt[0] * math.Pi / 180
	lat := pt[1] * math.Pi / 180
	return orb.Point{
		earthRadiusM * (lon - p.lon0) * p.cosLat0,
		earthRadiusM * (lat - p.lat0),
	}
}

// Inverse converts planar meters back to lon/lat degrees.
func (p Projection) Inverse(pt orb.Point) orb.Point {
	lon := p.lon0 + pt[0]/(earthRadiusM*p.cosLat0)
	lat := p.lat0 + pt[1]/earthRadiusM
	return orb.Point{lon * 180 / math.Pi, lat * 180 / math.Pi}
}

// Project returns a planar copy of mp; the input is not modified.
func (p Projection) Project(mp orb.MultiPolygon) orb.MultiPolygon {
	out := make(orb.MultiPolygon, len(mp))
	for i, poly := range mp {
		op := make(orb.Polygon, len(poly))
		for j, ring := range poly {
			or := make(orb.Ring, len(ring))
			for k, pt := range ring {
				or[k] = p.Forward(pt)
			}
			op[j] = or
		}
		out[i] = op
	}
	return out
}
