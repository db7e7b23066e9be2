package scene

import "gonum.org/v1/gonum/floats"

// DefaultMaxHeight is the extrusion ceiling in scene meters. County spans
// run to hundreds of kilometers, so the relief needs heavy exaggeration to
// read at all.
const DefaultMaxHeight = 50000.0

// Scale maps attribute values linearly onto extrusion heights: the dataset
// minimum lands at 0 and the maximum exactly at MaxHeight.
type Scale struct {
	Min       float64
	Max       float64
	MaxHeight float64
}

// NewScale derives a scale from the defined attribute values.
// values must be non-empty and free of NaN.
func NewScale(values []float64, maxHeight float64) Scale {
	if maxHeight <= 0 {
		maxHeight = DefaultMaxHeight
	}
	return Scale{
		Min:       floats.Min(values),
		Max:       floats.Max(values),
		MaxHeight: maxHeight,
	}
}

// Height maps v onto [0, MaxHeight]. A degenerate all-equal range maps
// every value to MaxHeight so the relief stays uniform instead of dividing
// by zero.
func (s Scale) Height(v float64) float64 {
	if s.Max == s.Min {
		return s.MaxHeight
	}
	return (v - s.Min) / (s.Max - s.Min) * s.MaxHeight
}

// Norm maps v onto [0, 1] for color ramps, with the same degenerate-range
// rule as Height.
func (s Scale) Norm(v float64) float64 {
	if s.Max == s.Min {
		return 1
	}
	return (v - s.Min) / (s.Max - s.Min)
}
