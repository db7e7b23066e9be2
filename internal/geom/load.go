package geom

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadGeometry loads regions from a path, dispatching on the extension.
func LoadGeometry(path, nameProp string) ([]Region, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return LoadRegions(path, nameProp)
	case ".wkt":
		return LoadWKT(path)
	case ".kml":
		return LoadKML(path)
	}
	return nil, fmt.Errorf("unsupported geometry format %q", filepath.Ext(path))
}
