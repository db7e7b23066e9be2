package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"

	"reliefmap/internal/scene"
)

// Quantizing the value ramp keeps the palette bounded no matter how many
// regions the dataset has.
const rampSteps = 48

const (
	colMissingTop  = 2*rampSteps + 1
	colMissingWall = 2*rampSteps + 2
	colHighlight   = 2*rampSteps + 3
)

func buildPalette() *palette {
	styles := make([]lipgloss.Style, colHighlight+1)
	for i := 1; i <= rampSteps; i++ {
		t := (float64(i) - 0.5) / rampSteps
		c := scene.RampColor(t)
		styles[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		styles[rampSteps+i] = lipgloss.NewStyle().Foreground(lipgloss.Color(scene.Shade(c, 0.3).Hex()))
	}
	styles[colMissingTop] = lipgloss.NewStyle().Foreground(lipgloss.Color("#737373"))
	styles[colMissingWall] = lipgloss.NewStyle().Foreground(lipgloss.Color("#4D4D4D"))
	styles[colHighlight] = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500"))
	return &palette{styles: styles}
}

// solidColor picks the palette index for a solid's top cap or walls.
func (m Model) solidColor(s *scene.Solid, wall bool) uint8 {
	if s.Missing {
		if wall {
			return colMissingWall
		}
		return colMissingTop
	}
	step := int(m.sc.Scale.Norm(s.Value) * rampSteps)
	if step < 0 {
		step = 0
	}
	if step >= rampSteps {
		step = rampSteps - 1
	}
	if wall {
		return uint8(rampSteps + step + 1)
	}
	return uint8(step + 1)
}

// microScale is the uniform view-to-microgrid factor; braille micro pixels
// are close enough to square that one factor serves both axes.
func microScale(w, h int) float64 {
	return 0.9 * float64(min(w*2, h*4))
}

func (m Model) viewToMicro(u, v float64, w, h int) (int, int) {
	s := microScale(w, h)
	mx := int(math.Round(float64(w*2)/2 + u*s))
	my := int(math.Round(float64(h*4)/2 - v*s))
	return mx, my
}

func (m Model) microToView(mx, my, w, h int) (float64, float64) {
	s := microScale(w, h)
	u := (float64(mx) - float64(w*2)/2) / s
	v := (float64(h*4)/2 - float64(my)) / s
	return u, v
}

// solidAtCell picks the solid whose base covers the map cell, unprojecting
// the cursor onto the ground plane first.
func (m Model) solidAtCell(cx, cy, w, h int) (*scene.Solid, orb.Point, bool) {
	if m.sc == nil || m.index == nil {
		return nil, orb.Point{}, false
	}
	u, v := m.microToView(cx*2+1, cy*4+2, w, h)
	view := scene.NewView(m.sc, m.cam)
	planarPt, ok := view.UnprojectBase(u, v)
	if !ok {
		return nil, orb.Point{}, false
	}
	geo := m.sc.Projection.Inverse(planarPt)
	return m.index.At(planarPt), geo, true
}

// paint items are triangles or silhouette edges, depth-sorted together so
// near solids overwrite far ones.
type paintTri struct {
	x, y  [3]int
	depth float64
	col   uint8
}

type paintEdge struct {
	x0, y0, x1, y1 int
	depth          float64
	col            uint8
}

func (m Model) renderReliefMap(w, h int) string {
	if m.sc == nil || len(m.sc.Solids) == 0 {
		hint := dimStyle.Render("no dataset loaded ─ press Tab and pick a boundary file, or p to paste")
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, hint)
	}

	br := newBrailleBuf(w, h)
	view := scene.NewView(m.sc, m.cam)

	var (
		tris  []paintTri
		edges []paintEdge
	)
	for si := range m.sc.Solids {
		s := &m.sc.Solids[si]
		topCol := m.solidColor(s, false)
		wallCol := m.solidColor(s, true)
		for fi, f := range s.Mesh.Faces {
			var pt paintTri
			for j := 0; j < 3; j++ {
				u, v, d := view.Project(s.Mesh.Points[f[j]])
				pt.x[j], pt.y[j] = m.viewToMicro(u, v, w, h)
				pt.depth += d / 3
			}
			n := s.Mesh.Normal(fi)
			if math.Abs(n.Z) < 0.5 {
				pt.col = wallCol
			} else {
				pt.col = topCol
			}
			tris = append(tris, pt)
		}
		// top-cap rim, drawn in paint order with the fills
		for _, poly := range s.Base {
			for _, ring := range poly {
				n := len(ring)
				for i := 0; i < n-1; i++ {
					a, b := ring[i], ring[i+1]
					u0, v0, d0 := view.Project(vec3(a, s.Height))
					u1, v1, d1 := view.Project(vec3(b, s.Height))
					e := paintEdge{depth: (d0+d1)/2 - 1e-6, col: wallCol}
					e.x0, e.y0 = m.viewToMicro(u0, v0, w, h)
					e.x1, e.y1 = m.viewToMicro(u1, v1, w, h)
					edges = append(edges, e)
				}
			}
		}
	}

	// far to near; edges nudge ahead of coplanar fills via their depth bias
	order := make([]int, len(tris)+len(edges))
	for i := range order {
		order[i] = i
	}
	depthOf := func(i int) float64 {
		if i < len(tris) {
			return tris[i].depth
		}
		return edges[i-len(tris)].depth
	}
	sort.SliceStable(order, func(a, b int) bool { return depthOf(order[a]) > depthOf(order[b]) })
	for _, i := range order {
		if i < len(tris) {
			t := tris[i]
			br.fillTriangleMicro(t.x[0], t.y[0], t.x[1], t.y[1], t.x[2], t.y[2], t.col)
		} else {
			e := edges[i-len(tris)]
			br.drawLineMicro(e.x0, e.y0, e.x1, e.y1, e.col)
		}
	}

	return strings.Join(br.toStyledLines(m.pal), "\n")
}

func vec3(p orb.Point, z float64) r3.Vec {
	return r3.Vec{X: p[0], Y: p[1], Z: z}
}

// renderHelp mirrors the footer key list.
func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"←→ rotate",
		"↑↓ tilt",
		"+/- zoom",
		"Tab files",
		"Enter open",
		"p paste",
		"a attrs",
		"i inspect",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}

func (m Model) statusCounts() string {
	if m.sc == nil {
		return ""
	}
	return fmt.Sprintf("solids=%d skipped=%d", len(m.sc.Solids), m.regionCount-len(m.sc.Solids))
}
