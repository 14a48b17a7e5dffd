package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rootviz/internal/analysis"
	"github.com/san-kum/rootviz/internal/config"
	"github.com/san-kum/rootviz/internal/e8"
	"github.com/san-kum/rootviz/internal/export"
	"github.com/san-kum/rootviz/internal/geom"
	"github.com/san-kum/rootviz/internal/gui"
	"github.com/san-kum/rootviz/internal/scene"
	"github.com/san-kum/rootviz/internal/storage"
	"github.com/san-kum/rootviz/internal/viz"
)

var (
	dataDir    string
	planeSet   string
	outDim     int
	threshold  float64
	angles     []float64
	rates      []float64
	fps        int
	theme      string
	configFile string
	preset     string
	svgSize    float64
	parallel   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rootviz",
		Short: "E8 root system visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live TUI when no command given.
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".rootviz", "data directory")

	addViewFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&planeSet, "planes", config.DefaultPlaneSet, "rotation plane set")
		cmd.Flags().IntVar(&outDim, "dim", config.DefaultOutDim, "projection output dimension (2 or 3)")
		cmd.Flags().Float64Var(&threshold, "threshold", config.DefaultThreshold, "adjacency distance threshold")
		cmd.Flags().Float64SliceVar(&angles, "angles", nil, "initial plane angles (radians)")
		cmd.Flags().Float64SliceVar(&rates, "rates", nil, "plane spin rates (radians/sec)")
		cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
		cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
		cmd.Flags().BoolVar(&parallel, "parallel", false, "parallel adjacency scan")
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "root system summary",
		RunE:  runInfo,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to the terminal",
		RunE:  runRender,
	}
	addViewFlags(renderCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animated terminal view",
		RunE:  runLive,
	}
	addViewFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "native 3D window",
		RunE:  runGUI,
	}
	addViewFlags(guiCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "compute a frame and save it",
		RunE:  runSnapshot,
	}
	addViewFlags(snapshotCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved snapshots",
		RunE:  runList,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [snapshot_id]",
		Short: "export a snapshot (or a fresh frame) to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportSVG,
	}
	addViewFlags(exportSVGCmd)
	exportSVGCmd.Flags().Float64Var(&svgSize, "size", 800, "svg edge length in pixels")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [snapshot_id]",
		Short: "export projected points to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportCSV,
	}
	addViewFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [snapshot_id]",
		Short: "export a frame to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExportJSON,
	}
	addViewFlags(exportJSONCmd)

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "pairwise distance spectrum",
		RunE:  runAnalyze,
	}
	addViewFlags(analyzeCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark rotation, projection and adjacency",
		RunE:  runBench,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and plane sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-8s planes=%s dim=%d\n", name, cfg.PlaneSet, cfg.OutDim)
			}
			fmt.Println("plane sets:")
			for _, name := range scene.ListPlaneSets() {
				planes, _ := scene.GetPlaneSet(name)
				fmt.Printf("  %-8s %d planes\n", name, len(planes))
			}
			return nil
		},
	}

	rootCmd.AddCommand(infoCmd, renderCmd, liveCmd, guiCmd, snapshotCmd, listCmd,
		exportSVGCmd, exportCSVCmd, exportJSONCmd, analyzeCmd, benchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildConfig folds preset, config file and CLI flags into one
// Config. Precedence, lowest to highest: defaults, preset, config
// file, flags the user actually set.
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

	flags := cmd.Flags()
	if flags.Changed("planes") {
		cfg.PlaneSet = planeSet
	}
	if flags.Changed("dim") {
		cfg.OutDim = outDim
	}
	if flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if flags.Changed("angles") {
		cfg.Angles = angles
	}
	if flags.Changed("rates") {
		cfg.Rates = rates
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildScene(cmd *cobra.Command) (*scene.Scene, *config.Config, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := cfg.BuildScene(e8.Generate())
	if err != nil {
		return nil, nil, err
	}
	if parallel {
		s.SetFinder(scene.NewParallel(0))
	}
	return s, cfg, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	rs := e8.Generate()
	integer, half := rs.CountByFamily()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "roots\t%d\n", len(rs.Roots))
	fmt.Fprintf(w, "  integer type\t%d\n", integer)
	fmt.Fprintf(w, "  half-integer type\t%d\n", half)
	fmt.Fprintf(w, "dimension\t%d\n", rs.Dim)
	fmt.Fprintf(w, "rank\t%d\n", rs.Rank)
	fmt.Fprintf(w, "weyl group order\t%d\n", rs.WeylOrder)
	w.Flush()

	fmt.Println("\ncartan matrix:")
	for i := 0; i < rs.Dim; i++ {
		row := make([]string, rs.Dim)
		for j := 0; j < rs.Dim; j++ {
			row[j] = fmt.Sprintf("%2d", rs.Cartan[i][j])
		}
		fmt.Printf("  %s\n", strings.Join(row, " "))
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	s, _, err := buildScene(cmd)
	if err != nil {
		return err
	}

	f, err := s.Frame()
	if err != nil {
		return err
	}

	canvas := viz.NewCanvas(80, 28)
	viz.RenderFrame(canvas, f, viz.NewCamera())
	fmt.Print(canvas.String())
	fmt.Printf("%d roots, %d edges at threshold %.2f\n", len(f.Points), len(f.Edges), s.Threshold())
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildScene(cmd)
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)

	m := viz.NewModel(s, cfg.FPS)
	p := tea.NewProgram(m)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	s, _, err := buildScene(cmd)
	if err != nil {
		return err
	}
	return gui.Run(s)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, cfg, err := buildScene(cmd)
	if err != nil {
		return err
	}

	f, err := s.Frame()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	id, err := st.Save(cfg.PlaneSet, cfg.Threshold, f)
	if err != nil {
		return err
	}

	fmt.Printf("snapshot id: %s\n", id)
	fmt.Printf("points: %d\n", len(f.Points))
	fmt.Printf("edges: %d\n", len(f.Edges))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	snaps, err := st.List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Println("no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tPLANES\tDIM\tPOINTS\tEDGES")
	for _, snap := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			snap.ID,
			snap.Timestamp.Format("2006-01-02 15:04:05"),
			snap.PlaneSet,
			snap.OutDim,
			snap.NumPoints,
			snap.NumEdges,
		)
	}
	return w.Flush()
}

// frameFor loads a stored snapshot when an id is given, otherwise
// computes a fresh frame from the view flags.
func frameFor(cmd *cobra.Command, args []string) (*scene.Frame, error) {
	if len(args) == 1 {
		return storage.New(dataDir).LoadFrame(args[0])
	}
	s, _, err := buildScene(cmd)
	if err != nil {
		return nil, err
	}
	return s.Frame()
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	f, err := frameFor(cmd, args)
	if err != nil {
		return err
	}
	_, err = fmt.Print(export.FrameToSVG(f, svgSize))
	return err
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	f, err := frameFor(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteCSV(os.Stdout, f)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	f, err := frameFor(cmd, args)
	if err != nil {
		return err
	}
	return export.WriteJSON(os.Stdout, f)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	rs := e8.Generate()
	points := rs.Points()

	fmt.Println("8d pairwise distance spectrum:")
	for _, d := range analysis.DistinctDistances(points, 1e-9) {
		fmt.Printf("  %.6f\n", d)
	}

	h := analysis.DistanceHistogram(points, 48)
	graph := asciigraph.Plot(h.Counts,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("pair count per distance bin (8d)"))
	fmt.Println(graph)
	fmt.Println()

	s, _, err := buildScene(cmd)
	if err != nil {
		return err
	}
	f, err := s.Frame()
	if err != nil {
		return err
	}

	sweep := analysis.ThresholdSweep(f.Points, 2.0, 40)
	graph = asciigraph.Plot(sweep,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("projected edge count vs threshold (0..2)"))
	fmt.Println(graph)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	rs := e8.Generate()
	points := rs.Points()
	allAngles := make([]float64, geom.NumPlanes(e8.Dim))
	for i := range allAngles {
		allAngles[i] = 0.01 * float64(i+1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STAGE\tITERATIONS\tTOTAL\tPER-OP")

	bench := func(name string, iters int, fn func() error) error {
		start := time.Now()
		for i := 0; i < iters; i++ {
			if err := fn(); err != nil {
				return err
			}
		}
		elapsed := time.Since(start)
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\n", name, iters, elapsed, elapsed/time.Duration(iters))
		return nil
	}

	if err := bench("rotation build (28 planes)", 200, func() error {
		_, err := geom.NewRotation(e8.Dim, allAngles)
		return err
	}); err != nil {
		return err
	}

	rot, err := geom.NewRotation(e8.Dim, allAngles)
	if err != nil {
		return err
	}
	if err := bench("rotate 240 roots", 500, func() error {
		_, err := rot.ApplyAll(points)
		return err
	}); err != nil {
		return err
	}

	rotated, err := rot.ApplyAll(points)
	if err != nil {
		return err
	}
	if err := bench("project 240 to 3d", 500, func() error {
		_, err := geom.Project(rotated, geom.Default8to3)
		return err
	}); err != nil {
		return err
	}

	projected, err := geom.Project(rotated, geom.Default8to3)
	if err != nil {
		return err
	}
	brute := scene.NewBruteForce()
	if err := bench("adjacency 240 points", 200, func() error {
		brute.Edges(projected, scene.DefaultThreshold)
		return nil
	}); err != nil {
		return err
	}

	return w.Flush()
}
