package geom

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// nameProps are tried in order when no name property is configured.
// Census-style exports label counties inconsistently.
var nameProps = []string{"name", "NAME", "Name", "county_name", "NAMELSAD", "COUNTY", "GEOID", "id"}

// LoadRegions reads a GeoJSON file and returns its polygonal features as
// regions. nameProp selects the property holding the region name; when empty
// the usual suspects are tried. Non-polygon features are ignored.
func LoadRegions(path, nameProp string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		// allow a bare Feature as well
		f, ferr := geojson.UnmarshalFeature(data)
		if ferr != nil {
			return nil, fmt.Errorf("geojson %s: %w", path, err)
		}
		fc = geojson.NewFeatureCollection()
		fc.Append(f)
	}

	var regions []Region
	for i, f := range fc.Features {
		var mp orb.MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			mp = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			mp = g
		default:
			continue
		}
		if len(mp) == 0 || len(mp[0]) == 0 || len(mp[0][0]) < 3 {
			continue
		}
		name, err := featureName(f.Properties, nameProp, i)
		if err != nil {
			return nil, err
		}
		regions = append(regions, Region{
			Name:     name,
			Key:      NormalizeKey(name),
			Boundary: mp,
			Props:    f.Properties,
		})
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: no polygon features in %s", ErrSchema, path)
	}
	return regions, nil
}

func featureName(props geojson.Properties, nameProp string, idx int) (string, error) {
	if nameProp != "" {
		if s, ok := props[nameProp].(string); ok && s != "" {
			return s, nil
		}
		return "", fmt.Errorf("%w: property %q missing on feature %d", ErrSchema, nameProp, idx)
	}
	for _, k := range nameProps {
		if s, ok := props[k].(string); ok && s != "" {
			return s, nil
		}
	}
	// unnamed features keep a stable synthetic name; the join policy decides
	// what happens to them
	return fmt.Sprintf("feature %d", idx), nil
}
