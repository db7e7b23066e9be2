package geom

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// LoadKML extracts Placemark polygons from a KML file. KML coordinates are
// "lon,lat[,alt]" tuples separated by whitespace; altitude is ignored.
func LoadKML(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	type kmlRing struct {
		Coordinates string `xml:"LinearRing>coordinates"`
	}
	type kmlPolygon struct {
		Outer kmlRing   `xml:"outerBoundaryIs"`
		Inner []kmlRing `xml:"innerBoundaryIs"`
	}
	type kmlPlacemark struct {
		Name     string       `xml:"name"`
		Polygons []kmlPolygon `xml:"Polygon"`
		MultiGeo []kmlPolygon `xml:"MultiGeometry>Polygon"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Document>Placemark"`
		TopLevel   []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("kml %s: %w", path, err)
	}
	placemarks := append(doc.Placemarks, doc.TopLevel...)

	var regions []Region
	for i, pm := range placemarks {
		polys := append(pm.Polygons, pm.MultiGeo...)
		var mp orb.MultiPolygon
		for _, kp := range polys {
			outer := parseKMLRing(kp.Outer.Coordinates)
			if len(outer) < 3 {
				continue
			}
			poly := orb.Polygon{outer}
			for _, in := range kp.Inner {
				if hole := parseKMLRing(in.Coordinates); len(hole) >= 3 {
					poly = append(poly, hole)
				}
			}
			mp = append(mp, poly)
		}
		if len(mp) == 0 {
			continue
		}
		name := strings.TrimSpace(pm.Name)
		if name == "" {
			name = fmt.Sprintf("placemark %d", i)
		}
		regions = append(regions, Region{Name: name, Key: NormalizeKey(name), Boundary: mp})
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: no polygon placemarks in %s", ErrSchema, path)
	}
	return regions, nil
}

func parseKMLRing(coords string) orb.Ring {
	var ring orb.Ring
	for _, tuple := range strings.Fields(coords) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ring = append(ring, orb.Point{lon, lat})
	}
	if len(ring) >= 3 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}
