package scene

import (
	"math"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/r3"
)

// Camera is an orthographic orbit camera around the scene center.
type Camera struct {
	YawDeg   float64 // rotation around the vertical axis
	PitchDeg float64 // elevation: 0 side view, 90 top-down
	Zoom     float64
}

// DefaultCamera is the starting viewpoint of the viewer and the png export.
func DefaultCamera() Camera {
	return Camera{YawDeg: 0, PitchDeg: 55, Zoom: 1}
}

// View binds a camera to a scene's extents so vertices can be projected to
// normalized coordinates: u,v roughly in [-0.5,0.5] at zoom 1 and a depth
// where larger means farther from the camera.
type View struct {
	cam                Camera
	cx, cy, cz         float64
	k                  float64 // zoom / scene span
	sinYaw, cosYaw     float64
	sinPitch, cosPitch float64
}

// NewView derives a view over the scene from the camera.
func NewView(sc *Scene, cam Camera) View {
	if cam.Zoom <= 0 {
		cam.Zoom = 1
	}
	b := sc.Bound
	span := math.Max(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1])
	span = math.Max(span, sc.Scale.MaxHeight)
	if span <= 0 {
		span = 1
	}
	yaw := cam.YawDeg * math.Pi / 180
	pitch := cam.PitchDeg * math.Pi / 180
	c := b.Center()
	return View{
		cam:      cam,
		cx:       c[0],
		cy:       c[1],
		cz:       sc.Scale.MaxHeight / 2,
		k:        cam.Zoom / span,
		sinYaw:   math.Sin(yaw),
		cosYaw:   math.Cos(yaw),
		sinPitch: math.Sin(pitch),
		cosPitch: math.Cos(pitch),
	}
}

// Project maps a scene-space vertex to view coordinates.
func (v View) Project(p r3.Vec) (u, w, depth float64) {
	x := p.X - v.cx
	y := p.Y - v.cy
	z := p.Z - v.cz
	xr := x*v.cosYaw - y*v.sinYaw
	yr := x*v.sinYaw + y*v.cosYaw
	u = xr * v.k
	w = (yr*v.sinPitch + z*v.cosPitch) * v.k
	depth = yr*v.cosPitch - z*v.sinPitch
	return u, w, depth
}

// UnprojectBase inverts Project on the ground plane (z=0): given view
// coordinates it returns the planar point the cursor is over. Fails when
// the camera looks edge-on at the ground.
func (v View) UnprojectBase(u, w float64) (orb.Point, bool) {
	if math.Abs(v.sinPitch) < 1e-6 {
		return orb.Point{}, false
	}
	z := -v.cz
	xr := u / v.k
	yr := (w/v.k - z*v.cosPitch) / v.sinPitch
	x := xr*v.cosYaw + yr*v.sinYaw
	y := -xr*v.sinYaw + yr*v.cosYaw
	return orb.Point{x + v.cx, y + v.cy}, true
}
