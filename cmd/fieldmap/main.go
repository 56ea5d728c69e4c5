package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fieldmap/internal/analysis"
	"github.com/san-kum/fieldmap/internal/config"
	"github.com/san-kum/fieldmap/internal/coulomb"
	"github.com/san-kum/fieldmap/internal/export"
	"github.com/san-kum/fieldmap/internal/field"
	"github.com/san-kum/fieldmap/internal/gui"
	"github.com/san-kum/fieldmap/internal/tui"
	"github.com/san-kum/fieldmap/internal/viz"
	"github.com/spf13/cobra"
)

var (
	chargeSpecs []string
	preset      string
	configFile  string
	gridSize    int
	extent      float64
	minRadius   float64
	mode        string
	themeName   string
	percentile  float64
	levels      int
	quantity    string
	axis        string
	at          float64
	format      string
	outPath     string
	viewWidth   int
	viewHeight  int
	showArrows  bool
	pixelScale  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldmap",
		Short: "electrostatic field and potential explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Plain invocation opens the preset menu; any field flag
			// jumps straight into the configured view.
			if cmd.Flags().NFlag() == 0 {
				return tui.Run(nil)
			}
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addFieldFlags(rootCmd)
	rootCmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "view mode (heat, stream, contour, surface)")
	rootCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the field once to stdout",
		RunE:  renderField,
	}
	addFieldFlags(renderCmd)
	renderCmd.Flags().StringVar(&mode, "mode", config.DefaultMode, "view mode (heat, stream, contour, surface)")
	renderCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")
	renderCmd.Flags().Float64Var(&percentile, "percentile", analysis.DefaultQuantile, "color scale percentile")
	renderCmd.Flags().IntVar(&levels, "levels", analysis.DefaultLevels, "number of contour levels")
	renderCmd.Flags().IntVar(&viewWidth, "width", 72, "view width in cells")
	renderCmd.Flags().IntVar(&viewHeight, "height", 36, "view height in cells")
	renderCmd.Flags().BoolVar(&showArrows, "arrows", false, "overlay direction arrows (heat mode)")

	probeCmd := &cobra.Command{
		Use:   "probe [x] [y]",
		Short: "evaluate the field at one point",
		Args:  cobra.ExactArgs(2),
		RunE:  probePoint,
	}
	addFieldFlags(probeCmd)

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot a quantity along a grid line",
		RunE:  plotProfile,
	}
	addFieldFlags(profileCmd)
	profileCmd.Flags().StringVar(&quantity, "quantity", analysis.QuantityV, "quantity to sample (v, ex, ey, mag)")
	profileCmd.Flags().StringVar(&axis, "axis", analysis.AxisRow, "line orientation (row, col)")
	profileCmd.Flags().Float64Var(&at, "at", 0, "fixed coordinate of the line")
	profileCmd.Flags().StringVar(&outPath, "out", "", "also save a chart png")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the computed field",
		RunE:  exportField,
	}
	addFieldFlags(exportCmd)
	exportCmd.Flags().StringVar(&format, "format", "json", "output format (json, csv, svg, png)")
	exportCmd.Flags().StringVar(&outPath, "out", "", "output path (json defaults to stdout)")
	exportCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme (svg, png)")
	exportCmd.Flags().Float64Var(&percentile, "percentile", analysis.DefaultQuantile, "color scale percentile")
	exportCmd.Flags().IntVar(&levels, "levels", analysis.DefaultLevels, "number of contour levels")
	exportCmd.Flags().IntVar(&pixelScale, "pixel-scale", 8, "pixels per grid node (png)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list charge presets",
		RunE:  listPresets,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the windowed explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(cfg)
		},
	}
	addFieldFlags(guiCmd)
	guiCmd.Flags().StringVar(&themeName, "theme", config.DefaultTheme, "color theme")

	rootCmd.AddCommand(renderCmd, probeCmd, profileCmd, exportCmd, presetsCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addFieldFlags attaches the flags shared by every command that computes a
// field: the charge set and the grid it is sampled on.
func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&chargeSpecs, "charge", nil, "charge as q,x,y (repeatable)")
	cmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&gridSize, "grid", field.DefaultSize, "grid points per axis")
	cmd.Flags().Float64Var(&extent, "extent", field.DefaultExtent, "half-width of the sampled square")
	cmd.Flags().Float64Var(&minRadius, "min-radius", coulomb.DefaultMinRadius, "clamp radius around each charge")
}

// buildConfig layers the sources for one invocation. Flags win over the
// config file, the config file wins over the preset, and everything falls
// back to the defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	f := cmd.Flags()
	if f.Changed("grid") {
		cfg.Grid.Size = gridSize
	}
	if f.Changed("extent") {
		cfg.Grid.Extent = extent
	}
	if f.Changed("min-radius") {
		cfg.Solver.MinRadius = minRadius
		cfg.Solver.MinRadiusSq = minRadius * minRadius
	}
	if f.Changed("mode") {
		cfg.Render.Mode = mode
	}
	if f.Changed("theme") {
		cfg.Render.Theme = themeName
	}
	if f.Changed("percentile") {
		cfg.Render.Quantile = percentile
	}
	if f.Changed("levels") {
		cfg.Render.Levels = levels
	}

	if len(chargeSpecs) > 0 {
		charges, err := parseCharges(chargeSpecs)
		if err != nil {
			return nil, err
		}
		cfg.Charges = config.FromCharges(charges)
	}

	return cfg, nil
}

func parseCharges(specs []string) ([]coulomb.Charge, error) {
	charges := make([]coulomb.Charge, 0, len(specs))

	for _, spec := range specs {
		parts := strings.Split(spec, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid charge %q: want q,x,y", spec)
		}

		var vals [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid charge %q: %v", spec, err)
			}
			vals[i] = v
		}

		charges = append(charges, coulomb.Charge{Q: vals[0], X: vals[1], Y: vals[2]})
	}

	return coulomb.Normalize(charges), nil
}

func computeField(cmd *cobra.Command) (*config.Config, *coulomb.Solver, *field.Map, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	s := cfg.NewSolver()
	m := field.Compute(s, cfg.ToCharges(), cfg.GridSpec())
	return cfg, s, m, nil
}

func renderField(cmd *cobra.Command, args []string) error {
	cfg, s, m, err := computeField(cmd)
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Render.Theme)
	sc := analysis.NewScale(m.V, cfg.Render.Quantile, cfg.Render.Levels)

	switch cfg.Render.Mode {
	case "heat":
		fmt.Println(viz.HeatView{Map: m, Scale: sc, Width: viewWidth, Height: viewHeight, Arrows: showArrows}.Render())
		fmt.Println(viz.Legend(sc.Limit, viewWidth/2))
	case "stream":
		tracer := viz.NewStreamTracer(s, m.Charges, m.Extent)
		fmt.Println(viz.StreamView{Map: m, Tracer: tracer, Width: viewWidth, Height: viewHeight}.Render())
	case "contour":
		fmt.Println(viz.ContourView{Map: m, Levels: sc.Levels, Width: viewWidth, Height: viewHeight}.Render())
	case "surface":
		stride := m.Size / 24
		if stride < 1 {
			stride = 1
		}
		fmt.Println(viz.SurfaceView{Map: m, Scale: sc, Camera: viz.NewCamera(), Stride: stride, Width: viewWidth, Height: viewHeight}.Render())
	default:
		return fmt.Errorf("unknown mode: %s (want heat, stream, contour or surface)", cfg.Render.Mode)
	}

	return nil
}

func probePoint(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid x %q: %v", args[0], err)
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid y %q: %v", args[1], err)
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	s := cfg.NewSolver()
	charges := cfg.ToCharges()
	ex, ey := s.FieldAt(charges, x, y)
	v := s.PotentialAt(charges, x, y)

	fmt.Printf("point (%g, %g):\n", x, y)
	fmt.Printf("  ex:  %.6g N/C\n", ex)
	fmt.Printf("  ey:  %.6g N/C\n", ey)
	fmt.Printf("  |e|: %.6g N/C\n", math.Hypot(ex, ey))
	fmt.Printf("  v:   %.6g V\n", v)

	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	_, _, m, err := computeField(cmd)
	if err != nil {
		return err
	}

	line, err := analysis.Profile(m, quantity, axis, at)
	if err != nil {
		return err
	}

	fixed := "y"
	if line.Axis == analysis.AxisCol {
		fixed = "x"
	}

	graph := asciigraph.Plot(line.Values,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s along %s = %.2f", line.Quantity, fixed, line.At)),
	)
	fmt.Println(graph)

	if outPath != "" {
		if err := export.ExportProfileChart(outPath, line); err != nil {
			return err
		}
		fmt.Printf("saved %s\n", outPath)
	}

	return nil
}

func exportField(cmd *cobra.Command, args []string) error {
	cfg, s, m, err := computeField(cmd)
	if err != nil {
		return err
	}

	viz.SetTheme(cfg.Render.Theme)
	switch format {
	case "json":
		if outPath == "" {
			return export.ExportJSONStdout(s, m)
		}
		if err := export.ExportJSON(outPath, s, m); err != nil {
			return err
		}
	case "csv":
		if outPath == "" {
			outPath = "field.csv"
		}
		if err := export.ExportCSV(outPath, m); err != nil {
			return err
		}
	case "svg":
		if outPath == "" {
			outPath = "field.svg"
		}
		sc := analysis.NewScale(m.V, cfg.Render.Quantile, cfg.Render.Levels)
		if err := export.ExportSVG(outPath, s, m, sc); err != nil {
			return err
		}
	case "png":
		if outPath == "" {
			outPath = "field.png"
		}
		sc := analysis.NewScale(m.V, cfg.Render.Quantile, cfg.Render.Levels)
		if err := export.ExportPNG(outPath, m, sc, pixelScale); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (want json, csv, svg or png)", format)
	}

	fmt.Printf("exported %s\n", outPath)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHARGES")

	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		parts := make([]string, 0, len(cfg.Charges))
		for _, c := range cfg.Charges {
			parts = append(parts, fmt.Sprintf("%+g@(%g,%g)", c.Q, c.X, c.Y))
		}
		fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(parts, "  "))
	}

	return w.Flush()
}
