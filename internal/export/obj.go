// Package export writes built scenes to disk: Wavefront OBJ scene files
// and software-rendered PNG stills.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"reliefmap/internal/scene"
)

// WriteOBJ writes the scene as Wavefront OBJ text: one object group per
// solid, vertices in meters, faces 1-based as the format demands. Output is
// deterministic for unchanged input.
func WriteOBJ(w io.Writer, sc *scene.Scene) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# reliefmap extruded scene\n")
	fmt.Fprintf(bw, "# solids: %d\n", len(sc.Solids))
	fmt.Fprintf(bw, "# value range: %g .. %g -> height 0 .. %g m\n",
		sc.Scale.Min, sc.Scale.Max, sc.Scale.MaxHeight)
	offset := 1
	for _, s := range sc.Solids {
		fmt.Fprintf(bw, "o %s\n", objName(s.Name))
		if s.Missing {
			fmt.Fprintf(bw, "# value: missing, height: 0\n")
		} else {
			fmt.Fprintf(bw, "# value: %g, height: %.2f\n", s.Value, s.Height)
		}
		for _, p := range s.Mesh.Points {
			fmt.Fprintf(bw, "v %.4f %.4f %.4f\n", p.X, p.Y, p.Z)
		}
		for _, f := range s.Mesh.Faces {
			fmt.Fprintf(bw, "f %d %d %d\n", offset+f[0], offset+f[1], offset+f[2])
		}
		offset += s.Mesh.VertexCount()
	}
	return bw.Flush()
}

// SaveOBJ writes the scene to a file.
func SaveOBJ(path string, sc *scene.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("obj %s: %w", path, err)
	}
	if err := WriteOBJ(f, sc); err != nil {
		f.Close()
		return fmt.Errorf("obj %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("obj %s: %w", path, err)
	}
	return nil
}

// objName makes a region name safe for an OBJ object record.
func objName(name string) string {
	if name == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return '_'
		}
		return r
	}, name)
}
