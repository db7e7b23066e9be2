package scene

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"reliefmap/internal/geom"
)

// MissingPolicy controls what happens to regions with no usable attribute
// value (no table row, or a blank/non-numeric cell).
type MissingPolicy string

const (
	MissingSkip MissingPolicy = "skip" // drop the region with a warning
	MissingZero MissingPolicy = "zero" // keep it flat at height 0
	MissingFail MissingPolicy = "fail" // abort the run
)

// ParseMissingPolicy validates a policy flag value.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch MissingPolicy(s) {
	case MissingSkip, MissingZero, MissingFail:
		return MissingPolicy(s), nil
	}
	return "", fmt.Errorf("unknown missing policy %q (want skip, zero or fail)", s)
}

var (
	// ErrNoSolids means nothing survived the join.
	ErrNoSolids = errors.New("scene: no regions left to extrude")
	// ErrUnmatched surfaces under the fail policy.
	ErrUnmatched = errors.New("scene: region has no attribute value")
)

// Options configures a scene build.
type Options struct {
	MaxHeight float64 // extrusion ceiling in meters; 0 means DefaultMaxHeight
	Missing   MissingPolicy
	Logger    logrus.FieldLogger
}

// Solid is one extruded region.
type Solid struct {
	Name    string
	Value   float64 // NaN when kept under the zero policy
	Height  float64
	Base    orb.MultiPolygon // planar meters, z=0
	Mesh    Mesh
	Color   colorful.Color
	Missing bool
}

// Scene is the full extruded dataset, in planar meters.
type Scene struct {
	Solids     []Solid
	Bound      orb.Bound // planar
	Scale      Scale
	Projection geom.Projection
}

// Build joins regions with the attribute table, maps values to heights and
// extrudes every surviving region. Exactly one solid is produced per region
// that passes the missing-value policy.
func Build(regions []geom.Region, table geom.Table, opts Options) (*Scene, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	if len(regions) == 0 {
		return nil, ErrNoSolids
	}
	if opts.Missing == "" {
		opts.Missing = MissingSkip
	}

	rows := make(map[string]geom.Row, len(table.Rows))
	for _, row := range table.Rows {
		if _, dup := rows[row.Key]; dup {
			log.WithField("key", row.Name).Warn("duplicate attribute key, last row wins")
		}
		rows[row.Key] = row
	}

	type joined struct {
		region  geom.Region
		value   float64
		missing bool
	}
	var (
		kept   []joined
		values []float64
	)
	for _, r := range regions {
		row, ok := rows[r.Key]
		if !ok || math.IsNaN(row.Value) {
			switch opts.Missing {
			case MissingFail:
				return nil, fmt.Errorf("%w: %s", ErrUnmatched, r.Name)
			case MissingZero:
				kept = append(kept, joined{region: r, value: math.NaN(), missing: true})
			default:
				log.WithField("region", r.Name).Warn("no attribute value, skipping")
			}
			continue
		}
		kept = append(kept, joined{region: r, value: row.Value})
		values = append(values, row.Value)
	}
	if len(kept) == 0 {
		return nil, ErrNoSolids
	}

	// an all-missing table under the zero policy still yields flat solids
	scale := Scale{MaxHeight: opts.MaxHeight}
	if scale.MaxHeight <= 0 {
		scale.MaxHeight = DefaultMaxHeight
	}
	if len(values) > 0 {
		scale = NewScale(values, opts.MaxHeight)
	}
	keptRegions := make([]geom.Region, len(kept))
	for i, j := range kept {
		keptRegions[i] = j.region
	}
	proj := geom.NewProjection(geom.Bound(keptRegions))

	sc := &Scene{Scale: scale, Projection: proj}
	for i, j := range kept {
		base := proj.Project(j.region.Boundary)
		var h float64
		color := missingColor
		if !j.missing {
			h = scale.Height(j.value)
			color = RampColor(scale.Norm(j.value))
		}
		sc.Solids = append(sc.Solids, Solid{
			Name:    j.region.Name,
			Value:   j.value,
			Height:  h,
			Base:    base,
			Mesh:    Extrude(base, h),
			Color:   color,
			Missing: j.missing,
		})
		b := base.Bound()
		if i == 0 {
			sc.Bound = b
		} else {
			sc.Bound = sc.Bound.Union(b)
		}
	}
	return sc, nil
}

// Summary describes a built scene for the info command.
type Summary struct {
	Solids    int
	Skipped   int // regions that did not survive the join
	MinValue  float64
	MaxValue  float64
	MeanValue float64
	MaxHeight float64
	AreaKm2   float64
}

// Summarize computes dataset statistics. totalRegions is the pre-join
// region count.
func (sc *Scene) Summarize(totalRegions int) Summary {
	var (
		values []float64
		area   float64
	)
	for _, s := range sc.Solids {
		if !s.Missing {
			values = append(values, s.Value)
		}
		area += planar.Area(s.Base)
	}
	sum := Summary{
		Solids:    len(sc.Solids),
		Skipped:   totalRegions - len(sc.Solids),
		MaxHeight: sc.Scale.MaxHeight,
		AreaKm2:   area / 1e6,
	}
	if len(values) > 0 {
		sum.MinValue = sc.Scale.Min
		sum.MaxValue = sc.Scale.Max
		sum.MeanValue = stat.Mean(values, nil)
	}
	return sum
}
