package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/backdrop/internal/anim"
	"github.com/san-kum/backdrop/internal/circuit"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/experiment"
	"github.com/san-kum/backdrop/internal/export"
	"github.com/san-kum/backdrop/internal/gui"
	"github.com/san-kum/backdrop/internal/rng"
	"github.com/san-kum/backdrop/internal/storage"
	"github.com/san-kum/backdrop/internal/theme"
	"github.com/san-kum/backdrop/internal/viz"
)

var (
	dataDir string
	verbose bool
	logFile string
	// Engine configuration
	configFile  string
	preset      string
	themeName   string
	seed        int64
	width       float64
	height      float64
	fps         int
	frames      int
	count       int
	scheme      string
	connect     bool
	interactive bool
	density     string
	speed       string
	color       string
	pulse       bool
	// Output
	scale    float64
	gifOut   bool
	gifEvery int
	gifScale float64
	runs     int
	outPath  string
	svgPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "backdrop",
		Short:             "procedural background animations: particle field and circuit pattern",
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".backdrop", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file")
	addEngineFlags(rootCmd)

	liveCmd := &cobra.Command{
		Use:   "live [engine]",
		Short: "run an engine in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addEngineFlags(liveCmd)
	liveCmd.Flags().Float64Var(&scale, "scale", viz.DefaultScale, "pixels per braille dot")

	guiCmd := &cobra.Command{
		Use:   "gui [engine]",
		Short: "run an engine in a resizable window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addEngineFlags(guiCmd)

	renderCmd := &cobra.Command{
		Use:   "render [engine]",
		Short: "run an engine headlessly and store the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderRun,
	}
	addEngineFlags(renderCmd)
	renderCmd.Flags().BoolVar(&gifOut, "gif", false, "also record an animated GIF")
	renderCmd.Flags().IntVar(&gifEvery, "gif-every", 2, "capture every n-th frame")
	renderCmd.Flags().Float64Var(&gifScale, "gif-scale", 0.5, "GIF frame scale")

	benchCmd := &cobra.Command{
		Use:   "bench [engine]",
		Short: "benchmark an engine over parallel seeded runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchEngine,
	}
	addEngineFlags(benchCmd)
	benchCmd.Flags().IntVar(&runs, "runs", 4, "number of parallel runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot per-frame stats of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the links series as SVG")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [engine]",
		Short: "list available presets for an engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for engine: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(liveCmd, guiCmd, renderCmd, benchCmd, listCmd, plotCmd, exportCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
	}
	return nil
}

func addEngineFlags(cmd *cobra.Command) {
	def := config.DefaultConfig()
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
	f.StringVar(&themeName, "theme", string(def.Theme), "dark or light")
	f.Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	f.Float64Var(&width, "width", def.Width, "surface width in pixels")
	f.Float64Var(&height, "height", def.Height, "surface height in pixels")
	f.IntVar(&fps, "fps", def.FPS, "frame rate")
	f.IntVar(&frames, "frames", def.Frames, "frames to run (render, bench)")
	f.IntVar(&count, "count", def.Particles.Count, "particle count")
	f.StringVar(&scheme, "scheme", string(def.Particles.Scheme), "particle colour scheme")
	f.BoolVar(&connect, "connect", def.Particles.Connect, "draw links between near particles")
	f.BoolVar(&interactive, "interactive", def.Particles.Interactive, "repel particles from the pointer")
	f.StringVar(&density, "density", string(def.Circuit.Density), "circuit density: low, medium, high")
	f.StringVar(&speed, "speed", string(def.Circuit.Speed), "circuit speed: slow, medium, fast")
	f.StringVar(&color, "color", def.Circuit.Color, "circuit accent colour")
	f.BoolVar(&pulse, "pulse", def.Circuit.PulseEffect, "draw halos around active nodes")
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	engine := config.DefaultEngine
	if len(args) > 0 {
		engine = args[0]
	}

	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(engine, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(engine))
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 || cfg.Engine == "" {
		cfg.Engine = engine
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme.Theme(themeName)
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("count") {
		cfg.Particles.Count = count
	}
	if flags.Changed("scheme") {
		cfg.Particles.Scheme = theme.Scheme(scheme)
	}
	if flags.Changed("connect") {
		cfg.Particles.Connect = connect
	}
	if flags.Changed("interactive") {
		cfg.Particles.Interactive = interactive
	}
	if flags.Changed("density") {
		cfg.Circuit.Density = circuit.Density(density)
	}
	if flags.Changed("speed") {
		cfg.Circuit.Speed = circuit.Speed(speed)
	}
	if flags.Changed("color") {
		cfg.Circuit.Color = color
	}
	if flags.Changed("pulse") {
		cfg.Circuit.PulseEffect = pulse
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Debug("config loaded", "engine", cfg.Engine, "theme", cfg.Theme, "seed", cfg.Seed)
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if scale <= 0 {
		scale = viz.DefaultScale
	}
	return viz.Run(experiment.NewRegistry(), cfg, rng.New(cfg.Seed), scale)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	return gui.Run(experiment.NewRegistry(), cfg, rng.New(cfg.Seed))
}

func renderRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	engine, err := registry.GetEngine(cfg.Engine, cfg, rng.New(cfg.Seed))
	if err != nil {
		return err
	}

	exp := experiment.New(cfg)
	if err := exp.Setup(engine, registry.DefaultMetrics(cfg.Engine)); err != nil {
		return err
	}

	var recorder *export.GIFRecorder
	if gifOut {
		recorder = export.NewGIFRecorder(cfg.Theme.Background(), gifEvery, gifScale, cfg.FPS)
		exp.AddObserver(recorder)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("rendering", "engine", cfg.Engine, "frames", cfg.Frames, "size", fmt.Sprintf("%.0fx%.0f", cfg.Width, cfg.Height), "seed", cfg.Seed)
	result, err := exp.Run(ctx)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	svg := export.FrameToSVG(exp.Recorder().Snapshot(), cfg.Width, cfg.Height, cfg.Theme.Background())
	if err := os.WriteFile(st.ArtifactPath(runID, "last.svg"), []byte(svg), 0644); err != nil {
		return err
	}
	if err := st.AddArtifact(runID, "last.svg"); err != nil {
		return err
	}

	if recorder != nil {
		if err := recorder.Save(st.ArtifactPath(runID, "frames.gif")); err != nil {
			return err
		}
		if err := st.AddArtifact(runID, "frames.gif"); err != nil {
			return err
		}
	}

	fmt.Printf("run: %s\n", runID)
	fmt.Printf("frames: %d in %v\n", result.FramesRun, result.Elapsed)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, m := range registry.DefaultMetrics(cfg.Engine) {
		fmt.Fprintf(w, "  %s\t%.3f\n", m.Name(), result.Metrics[m.Name()])
	}
	return w.Flush()
}

func benchEngine(cmd *cobra.Command, args []string) error {
	if runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", runs)
	}
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s: %d runs of %d frames at %.0fx%.0f\n\n", cfg.Engine, runs, cfg.Frames, cfg.Width, cfg.Height)

	start := time.Now()
	results, err := experiment.NewEnsemble(experiment.NewRegistry(), cfg, runs).Run(context.Background())
	if err != nil {
		return err
	}
	wall := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tTIME\tFRAMES/SEC\tLINKS\tPULSES")

	total := 0
	for i, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%.1f\t%.2f\n",
			cfg.Seed+int64(i),
			r.FramesRun,
			r.Elapsed.Round(time.Microsecond),
			rate(r.FramesRun, r.Elapsed),
			r.Metrics["links"],
			r.Metrics["pulses"],
		)
		total += r.FramesRun
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d frames in %v (%.0f frames/sec overall)\n", total, wall.Round(time.Millisecond), rate(total, wall))
	return nil
}

// rate returns frames per second, or 0 when no time was measured.
func rate(frames int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(frames) / elapsed.Seconds()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENGINE\tTIME\tFRAMES\tSIZE\tTHEME\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0fx%.0f\t%s\t%d\n",
			run.ID,
			run.Engine,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Width, run.Height,
			run.Theme,
			run.Seed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	stats, err := st.LoadStats(runID)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("engine: %s\n", meta.Engine)
	fmt.Printf("frames: %d\n\n", len(stats))

	series := []struct {
		caption string
		value   func(anim.Stats) int
	}{
		{"links per frame", func(s anim.Stats) int { return s.Links }},
		{"active elements", func(s anim.Stats) int { return s.Active }},
		{"pulses in flight", func(s anim.Stats) int { return s.Pulses }},
	}
	if meta.Engine != "circuit" {
		series = series[:1]
	}

	var links []float64
	for i, s := range series {
		data := make([]float64, len(stats))
		for j, row := range stats {
			data[j] = float64(s.value(row))
		}
		if i == 0 {
			links = data
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.SeriesToSVG(links, 800, 200, "#3b82f6")), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outPath == "" {
		return st.Export(os.Stdout, args[0])
	}
	if err := st.ExportFile(outPath, args[0]); err != nil {
		return err
	}
	log.Info("exported", "run", args[0], "path", outPath)
	return nil
}
