package scene

import (
	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	indexMinChildren = 2
	indexMaxChildren = 8
	indexDimensions  = 2
)

// solidItem wraps a Solid for R-Tree indexing by its base bounding box.
type solidItem struct {
	solid *Solid
	rect  *rtreego.Rect
}

func (si *solidItem) Bounds() *rtreego.Rect { return si.rect }

// Index answers "which solid covers this planar point": R-Tree candidates
// first, exact multipolygon containment second.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds a pick index over the scene's solids. The returned index
// borrows the slice; do not mutate it afterwards.
func NewIndex(solids []Solid) *Index {
	tree := rtreego.NewTree(indexDimensions, indexMinChildren, indexMaxChildren)
	for i := range solids {
		b := solids[i].Base.Bound()
		dx := b.Max[0] - b.Min[0]
		dy := b.Max[1] - b.Min[1]
		if dx <= 0 {
			dx = 1e-9
		}
		if dy <= 0 {
			dy = 1e-9
		}
		rect, err := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{dx, dy})
		if err != nil {
			continue
		}
		tree.Insert(&solidItem{solid: &solids[i], rect: rect})
	}
	return &Index{tree: tree}
}

// At returns the solid whose base contains the planar point, or nil.
func (ix *Index) At(pt orb.Point) *Solid {
	probe, err := rtreego.NewRect(rtreego.Point{pt[0], pt[1]}, []float64{1e-9, 1e-9})
	if err != nil {
		return nil
	}
	for _, item := range ix.tree.SearchIntersect(probe) {
		si, ok := item.(*solidItem)
		if !ok {
			continue
		}
		if planar.MultiPolygonContains(si.solid.Base, pt) {
			return si.solid
		}
	}
	return nil
}
