package tui

import (
	"io"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"reliefmap/internal/scene"
)

// Config carries the pipeline knobs from the CLI into the viewer.
type Config struct {
	NameProp    string
	KeyColumn   string
	ValueColumn string
	MaxHeight   float64
	Missing     scene.MissingPolicy
}

type Model struct {
	cfg Config

	width  int
	height int

	showSidebar bool
	helpVisible bool

	cam scene.Camera

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	sc          *scene.Scene
	index       *scene.Index
	pal         *palette
	regionCount int

	// last rendered map size (for picking)
	mapW int
	mapH int

	// paste mode: "name;wkt;value" lines
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverSolid *scene.Solid
	hoverGeo   bool
	hoverLon   float64
	hoverLat   float64

	// attributes table
	showAttrs bool
	tbl       table.Model
}

func New(cfg Config) Model {
	m := Model{
		cfg:         cfg,
		showSidebar: false,
		helpVisible: true,
		cam:         scene.DefaultCamera(),
		status:      "reliefmap ready",
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Boundary files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste regions, one per line: name;POLYGON((x y, ...));value. Press Enter to extrude; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// attributes table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPaths preloads a geometry/data file pair at launch.
func NewWithPaths(cfg Config, geomPath, dataPath string) Model {
	m := New(cfg)
	m.loadPaths(geomPath, dataPath)
	return m
}

// silentLogger keeps pipeline warnings off the alt screen; the status line
// reports counts instead.
func silentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (m Model) Init() tea.Cmd { return nil }
