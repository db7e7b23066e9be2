package scene

import colorful "github.com/lucasb-eyer/go-colorful"

// ramp endpoints: deep blue for the lowest values through gold for the
// highest
var (
	rampLow  = colorful.Color{R: 0.16, G: 0.24, B: 0.58}
	rampHigh = colorful.Color{R: 0.95, G: 0.78, B: 0.25}

	// missingColor marks solids kept under the "zero" policy
	missingColor = colorful.Color{R: 0.45, G: 0.45, B: 0.45}
)

// RampColor maps a normalized value in [0,1] onto the scene color ramp.
func RampColor(t float64) colorful.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return rampLow.BlendLuv(rampHigh, t).Clamped()
}

// Shade darkens a color by a Lambert factor in [0,1].
func Shade(c colorful.Color, lambert float64) colorful.Color {
	if lambert < 0 {
		lambert = 0
	}
	if lambert > 1 {
		lambert = 1
	}
	// keep a floor so far-facing walls stay visible
	k := 0.35 + 0.65*lambert
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}
