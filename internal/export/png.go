package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"
	"sort"

	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"reliefmap/internal/scene"
)

// lightDir is the fixed scene light for flat shading, normalized.
var lightDir = r3.Unit(r3.Vec{X: -0.4, Y: -0.3, Z: 0.85})

var background = color.RGBA{R: 0x0b, G: 0x0f, B: 0x14, A: 0xff}

// RenderPNG renders the scene with the painter's algorithm: every triangle
// projected through the camera, sorted far to near, flat-shaded from its
// normal and rasterized.
func RenderPNG(sc *scene.Scene, width, height int, cam scene.Camera) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{background}, image.Point{}, draw.Src)

	view := scene.NewView(sc, cam)
	pxScale := 0.9 * math.Min(float64(width), float64(height))
	toPx := func(u, v float64) (float32, float32) {
		return float32(float64(width)/2 + u*pxScale), float32(float64(height)/2 - v*pxScale)
	}

	type shadedTri struct {
		x, y  [3]float32
		depth float64
		col   color.RGBA
	}
	var tris []shadedTri
	for _, s := range sc.Solids {
		for i, f := range s.Mesh.Faces {
			var st shadedTri
			for j := 0; j < 3; j++ {
				u, v, d := view.Project(s.Mesh.Points[f[j]])
				st.x[j], st.y[j] = toPx(u, v)
				st.depth += d / 3
			}
			lambert := math.Abs(r3.Dot(s.Mesh.Normal(i), lightDir))
			r, g, b := scene.Shade(s.Color, lambert).RGB255()
			st.col = color.RGBA{R: r, G: g, B: b, A: 0xff}
			tris = append(tris, st)
		}
	}
	// far first so near triangles overwrite
	sort.SliceStable(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })

	ras := vector.NewRasterizer(width, height)
	for _, t := range tris {
		ras.Reset(width, height)
		ras.MoveTo(t.x[0], t.y[0])
		ras.LineTo(t.x[1], t.y[1])
		ras.LineTo(t.x[2], t.y[2])
		ras.ClosePath()
		ras.Draw(img, img.Bounds(), &image.Uniform{t.col}, image.Point{})
	}
	return img
}

// SavePNG renders and encodes the scene to a file.
func SavePNG(path string, sc *scene.Scene, width, height int, cam scene.Camera) error {
	img := RenderPNG(sc, width, height, cam)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("png %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("png %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("png %s: %w", path, err)
	}
	return nil
}
