package scene

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
)

// triangulate ear-clips a planar polygon into triangles. Holes are bridged
// into the outer ring first, so the result covers outer minus holes. The
// returned faces index into the returned vertex slice.
func triangulate(poly orb.Polygon) ([]orb.Point, []Tri) {
	if len(poly) == 0 {
		return nil, nil
	}
	outer := openRing(poly[0])
	if len(outer) < 3 {
		return nil, nil
	}
	if signedArea(outer) < 0 {
		reverse(outer)
	}
	var holes [][]orb.Point
	for _, h := range poly[1:] {
		hole := openRing(h)
		if len(hole) < 3 {
			continue
		}
		// holes wind opposite to the outer ring
		if signedArea(hole) > 0 {
			reverse(hole)
		}
		holes = append(holes, hole)
	}
	// bridge right to left: holes still waiting sit left of every bridge,
	// so they cannot be crossed by one
	sort.SliceStable(holes, func(i, j int) bool {
		return rightmostX(holes[i]) > rightmostX(holes[j])
	})
	for _, hole := range holes {
		outer = bridgeHole(outer, hole)
	}
	return outer, earClip(outer)
}

// openRing copies a ring without its duplicate closing vertex.
func openRing(r orb.Ring) []orb.Point {
	n := len(r)
	if n > 1 && r[0] == r[n-1] {
		n--
	}
	out := make([]orb.Point, n)
	copy(out, r[:n])
	return out
}

func reverse(pts []orb.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func signedArea(pts []orb.Point) float64 {
	var a float64
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		a += p[0]*q[1] - q[0]*p[1]
	}
	return a / 2
}

func rightmostX(pts []orb.Point) float64 {
	x := math.Inf(-1)
	for _, p := range pts {
		if p[0] > x {
			x = p[0]
		}
	}
	return x
}

// bridgeHole splices a hole into the outer ring through a zero-width bridge
// so the combined boundary is a single ring ear clipping can handle. The
// bridge runs from the hole's rightmost vertex to the nearest outer vertex
// the segment can reach without crossing the boundary, preferring vertices
// at or right of the hole.
func bridgeHole(outer, hole []orb.Point) []orb.Point {
	mi := 0
	for i, p := range hole {
		if p[0] > hole[mi][0] {
			mi = i
		}
	}
	m := hole[mi]

	pick := func(needRight, needClear bool) int {
		pi, best := -1, math.Inf(1)
		for i, p := range outer {
			if needRight && p[0] < m[0] {
				continue
			}
			if needClear && !clearSegment(outer, m, p) {
				continue
			}
			if d := dist2(p, m); d < best {
				best = d
				pi = i
			}
		}
		return pi
	}
	pi := pick(true, true)
	if pi == -1 {
		pi = pick(false, true)
	}
	if pi == -1 {
		pi = pick(false, false)
	}

	merged := make([]orb.Point, 0, len(outer)+len(hole)+2)
	merged = append(merged, outer[:pi+1]...)
	for k := 0; k <= len(hole); k++ {
		merged = append(merged, hole[(mi+k)%len(hole)])
	}
	merged = append(merged, outer[pi])
	merged = append(merged, outer[pi+1:]...)
	return merged
}

func dist2(a, b orb.Point) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

// clearSegment reports whether segment a-b crosses no edge of the ring.
// Edges sharing an endpoint with the segment do not count.
func clearSegment(ring []orb.Point, a, b orb.Point) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		if p == a || q == a || p == b || q == b {
			continue
		}
		if segmentsCross(a, b, p, q) {
			return false
		}
	}
	return true
}

// segmentsCross reports a proper crossing of segments ab and cd.
func segmentsCross(a, b, c, d orb.Point) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// earClip triangulates a counter-clockwise simple ring (bridge duplicates
// allowed). Indices in the result refer to the input slice.
func earClip(pts []orb.Point) []Tri {
	n := len(pts)
	if n < 3 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var faces []Tri
	guard := 0
	for len(idx) > 3 {
		clipped := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i-1+len(idx))%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isEar(pts, idx, prev, cur, next) {
				continue
			}
			faces = append(faces, Tri{prev, cur, next})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// numerically stuck; fan out the remainder rather than spin
			for i := 1; i+1 < len(idx); i++ {
				faces = append(faces, Tri{idx[0], idx[i], idx[i+1]})
			}
			return faces
		}
		guard++
		if guard > 4*n {
			break
		}
	}
	if len(idx) == 3 {
		faces = append(faces, Tri{idx[0], idx[1], idx[2]})
	}
	return faces
}

func isEar(pts []orb.Point, idx []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	if cross(a, b, c) <= 0 { // reflex or collinear corner
		return false
	}
	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		p := pts[j]
		// bridge duplicates share coordinates with the corner points
		if p == a || p == b || p == c {
			continue
		}
		if inTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

func inTriangle(p, a, b, c orb.Point) bool {
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
