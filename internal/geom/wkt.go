package geom

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ParseWKTPolygon parses POLYGON and MULTIPOLYGON text into a multipolygon.
// Rings keep their source order: first outer, then holes.
func ParseWKTPolygon(wkt string) (orb.MultiPolygon, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOLYGON"):
		body, err := parenBody(s)
		if err != nil {
			return nil, fmt.Errorf("wkt multipolygon: %w", err)
		}
		var mp orb.MultiPolygon
		for _, group := range splitTopLevel(body) {
			// each group is a parenthesized polygon: ((ring), (ring)...)
			inner, err := parenBody(strings.TrimSpace(group))
			if err != nil {
				return nil, fmt.Errorf("wkt multipolygon: %w", err)
			}
			poly, err := parsePolygonBody(inner)
			if err != nil {
				return nil, err
			}
			mp = append(mp, poly)
		}
		if len(mp) == 0 {
			return nil, errors.New("wkt multipolygon: no polygons")
		}
		return mp, nil
	case strings.HasPrefix(up, "POLYGON"):
		body, err := parenBody(s)
		if err != nil {
			return nil, fmt.Errorf("wkt polygon: %w", err)
		}
		poly, err := parsePolygonBody(body)
		if err != nil {
			return nil, err
		}
		return orb.MultiPolygon{poly}, nil
	}
	return nil, errors.New("unsupported wkt type")
}

// LoadWKT reads a file of "name;wkt" lines (one region per line) and
// returns the regions. Blank lines and #-comments are skipped.
func LoadWKT(path string) ([]Region, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var regions []Region
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, wkt, found := strings.Cut(line, ";")
		if !found {
			name, wkt = fmt.Sprintf("region %d", lineNo), line
		}
		mp, err := ParseWKTPolygon(wkt)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		name = strings.TrimSpace(name)
		regions = append(regions, Region{Name: name, Key: NormalizeKey(name), Boundary: mp})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: no polygons in %s", ErrSchema, path)
	}
	return regions, nil
}

// parsePolygonBody parses "(x y, ...),(x y, ...)" ring groups.
func parsePolygonBody(body string) (orb.Polygon, error) {
	var poly orb.Polygon
	for _, group := range splitTopLevel(body) {
		group = strings.TrimSpace(group)
		group = strings.TrimPrefix(group, "(")
		group = strings.TrimSuffix(group, ")")
		ring := parseTuples(group)
		if len(ring) < 3 {
			return nil, errors.New("wkt ring: fewer than 3 points")
		}
		// close the ring if the source left it open
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}
		poly = append(poly, ring)
	}
	if len(poly) == 0 {
		return nil, errors.New("wkt polygon: no rings")
	}
	return poly, nil
}

// parenBody returns the text between the outermost parentheses.
func parenBody(s string) (string, error) {
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return "", errors.New("invalid parentheses")
	}
	return s[i+1 : j], nil
}

// splitTopLevel splits on commas at parenthesis depth zero.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// parseTuples splits "x y, x y, ..." into points.
func parseTuples(block string) orb.Ring {
	var out orb.Ring
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, e1 := strconv.ParseFloat(parts[0], 64)
		y, e2 := strconv.ParseFloat(parts[1], 64)
		if e1 != nil || e2 != nil {
			continue
		}
		out = append(out, orb.Point{x, y})
	}
	return out
}
