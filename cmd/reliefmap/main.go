package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"reliefmap/internal/export"
	"reliefmap/internal/geom"
	"reliefmap/internal/scene"
	"reliefmap/internal/tui"
)

var (
	geometryFile string
	dataFile     string
	nameProp     string
	keyColumn    string
	valueColumn  string
	maxHeight    float64
	missing      string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "reliefmap",
	Short: "Extrude region boundaries into a 3D relief scaled by a data column",
	Long: `reliefmap joins polygon boundaries (GeoJSON, WKT, KML) with a CSV
attribute table, extrudes every region into a prism whose height tracks its
value, and either shows the result in the terminal or exports it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive terminal viewer",
	Long:  `Render the extruded scene on a braille canvas: rotate, tilt, zoom, and hover regions for their values.`,
	RunE:  runView,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the extruded scene to an OBJ or PNG file",
	RunE:  runExport,
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print dataset, join and height-scale statistics",
	RunE:  runInfo,
}

var (
	outFile   string
	outFormat string
	outWidth  int
	outHeight int
	yawDeg    float64
	pitchDeg  float64
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&geometryFile, "geometry", "g", "", "Boundary file (.geojson, .json, .wkt, .kml)")
	pf.StringVarP(&dataFile, "data", "d", "", "Attribute CSV file")
	pf.StringVar(&nameProp, "name-property", "", "GeoJSON property holding the region name")
	pf.StringVar(&keyColumn, "key-column", "", "CSV column holding the join key")
	pf.StringVar(&valueColumn, "value-column", "", "CSV column holding the numeric value")
	pf.Float64Var(&maxHeight, "max-height", scene.DefaultMaxHeight, "Extrusion ceiling in meters")
	pf.StringVar(&missing, "missing", string(scene.MissingSkip), "Policy for regions without a value: skip, zero or fail")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	exportCmd.Flags().StringVarP(&outFile, "out", "o", "scene.obj", "Output file path")
	exportCmd.Flags().StringVar(&outFormat, "format", "", "Output format: obj or png (default: from extension)")
	exportCmd.Flags().IntVar(&outWidth, "width", 1600, "PNG width in pixels")
	exportCmd.Flags().IntVar(&outHeight, "height", 1200, "PNG height in pixels")
	exportCmd.Flags().Float64Var(&yawDeg, "yaw", 0, "PNG camera rotation in degrees")
	exportCmd.Flags().Float64Var(&pitchDeg, "pitch", 55, "PNG camera elevation in degrees")

	rootCmd.AddCommand(viewCmd, exportCmd, infoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func pipelineConfig() (tui.Config, error) {
	policy, err := scene.ParseMissingPolicy(missing)
	if err != nil {
		return tui.Config{}, err
	}
	return tui.Config{
		NameProp:    nameProp,
		KeyColumn:   keyColumn,
		ValueColumn: valueColumn,
		MaxHeight:   maxHeight,
		Missing:     policy,
	}, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}
	var m tea.Model
	if geometryFile != "" {
		m = tui.NewWithPaths(cfg, geometryFile, dataFile)
	} else {
		m = tui.New(cfg)
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

// buildScene runs the batch pipeline for export and info.
func buildScene() (*scene.Scene, int, error) {
	if geometryFile == "" || dataFile == "" {
		return nil, 0, fmt.Errorf("--geometry and --data are required")
	}
	policy, err := scene.ParseMissingPolicy(missing)
	if err != nil {
		return nil, 0, err
	}
	regions, err := geom.LoadGeometry(geometryFile, nameProp)
	if err != nil {
		return nil, 0, err
	}
	logrus.WithFields(logrus.Fields{"file": geometryFile, "regions": len(regions)}).Debug("loaded geometry")
	table, err := geom.LoadTable(dataFile, keyColumn, valueColumn)
	if err != nil {
		return nil, 0, err
	}
	logrus.WithFields(logrus.Fields{"file": dataFile, "rows": len(table.Rows)}).Debug("loaded attributes")
	sc, err := scene.Build(regions, table, scene.Options{
		MaxHeight: maxHeight,
		Missing:   policy,
	})
	if err != nil {
		return nil, 0, err
	}
	return sc, len(regions), nil
}

func runExport(cmd *cobra.Command, args []string) error {
	sc, _, err := buildScene()
	if err != nil {
		return err
	}
	format := outFormat
	if format == "" {
		if strings.HasSuffix(strings.ToLower(outFile), ".png") {
			format = "png"
		} else {
			format = "obj"
		}
	}
	switch format {
	case "obj":
		err = export.SaveOBJ(outFile, sc)
	case "png":
		cam := scene.Camera{YawDeg: yawDeg, PitchDeg: pitchDeg, Zoom: 1}
		err = export.SavePNG(outFile, sc, outWidth, outHeight, cam)
	default:
		return fmt.Errorf("unknown format %q (want obj or png)", format)
	}
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{"file": outFile, "format": format, "solids": len(sc.Solids)}).Info("scene written")
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	sc, total, err := buildScene()
	if err != nil {
		return err
	}
	sum := sc.Summarize(total)
	fmt.Printf("regions:    %d (%d extruded, %d skipped)\n", total, sum.Solids, sum.Skipped)
	fmt.Printf("values:     %g .. %g (mean %.1f)\n", sum.MinValue, sum.MaxValue, sum.MeanValue)
	fmt.Printf("heights:    0 .. %g m\n", sum.MaxHeight)
	fmt.Printf("base area:  %.0f km²\n", sum.AreaKm2)
	return nil
}
