package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"reliefmap/internal/geom"
	"reliefmap/internal/scene"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		p := filepath.Join(m.cwd, name)
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".geojson" || ext == ".json" || ext == ".wkt" || ext == ".kml" {
			desc := ext
			if csv := siblingCSV(p); csv != "" {
				desc += " + " + filepath.Base(csv)
			}
			items = append(items, fileItem{title: name, desc: desc, path: p})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no boundary files in current directory"
	}
}

// siblingCSV finds the attribute table that pairs with a geometry file:
// same basename first, then any lone csv next to it.
func siblingCSV(geomPath string) string {
	base := strings.TrimSuffix(geomPath, filepath.Ext(geomPath))
	if _, err := os.Stat(base + ".csv"); err == nil {
		return base + ".csv"
	}
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(geomPath), "*.csv"))
	if len(matches) == 1 {
		return matches[0]
	}
	return ""
}

// loadPaths runs the whole pipeline for a geometry/data pair and installs
// the resulting scene.
func (m *Model) loadPaths(geomPath, dataPath string) {
	if dataPath == "" {
		dataPath = siblingCSV(geomPath)
	}
	if dataPath == "" {
		m.status = "no attribute csv found next to " + filepath.Base(geomPath)
		return
	}
	regions, err := geom.LoadGeometry(geomPath, m.cfg.NameProp)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	table, err := geom.LoadTable(dataPath, m.cfg.KeyColumn, m.cfg.ValueColumn)
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	sc, err := scene.Build(regions, table, scene.Options{
		MaxHeight: m.cfg.MaxHeight,
		Missing:   m.cfg.Missing,
		Logger:    silentLogger(),
	})
	if err != nil {
		m.status = "build error: " + err.Error()
		return
	}
	m.installScene(sc, len(regions), filepath.Base(geomPath))
	m.selPath = geomPath
}

// loadPasted extrudes "name;wkt;value" lines typed into the textarea.
func (m *Model) loadPasted(text string) {
	var (
		regions []geom.Region
		table   geom.Table
	)
	table.KeyColumn, table.ValueColumn = "name", "value"
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ";", 3)
		if len(parts) < 2 {
			m.status = fmt.Sprintf("paste line %d: want name;wkt[;value]", i+1)
			return
		}
		name := strings.TrimSpace(parts[0])
		mp, err := geom.ParseWKTPolygon(parts[1])
		if err != nil {
			m.status = fmt.Sprintf("paste line %d: %v", i+1, err)
			return
		}
		regions = append(regions, geom.Region{Name: name, Key: geom.NormalizeKey(name), Boundary: mp})
		v := math.NaN()
		if len(parts) == 3 {
			if f, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err == nil {
				v = f
			}
		}
		table.Rows = append(table.Rows, geom.Row{Key: geom.NormalizeKey(name), Name: name, Value: v})
	}
	if len(regions) == 0 {
		m.status = "paste: empty"
		return
	}
	sc, err := scene.Build(regions, table, scene.Options{
		MaxHeight: m.cfg.MaxHeight,
		Missing:   scene.MissingZero, // pasted lines may omit values
		Logger:    silentLogger(),
	})
	if err != nil {
		m.status = "build error: " + err.Error()
		return
	}
	m.installScene(sc, len(regions), "<pasted>")
	m.selPath = ""
}

func (m *Model) installScene(sc *scene.Scene, regionCount int, label string) {
	m.sc = sc
	m.index = scene.NewIndex(sc.Solids)
	m.pal = buildPalette()
	m.regionCount = regionCount
	m.cam = scene.DefaultCamera()
	m.hoverSolid = nil
	m.inspectPopup = ""
	m.status = "loaded: " + label + "  " + m.statusCounts()
	if m.showAttrs {
		m.refreshAttrs()
	}
}
