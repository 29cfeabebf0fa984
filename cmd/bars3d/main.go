package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/config"
	"github.com/san-kum/bars3d/internal/export"
	"github.com/san-kum/bars3d/internal/gui"
	"github.com/san-kum/bars3d/internal/logx"
	"github.com/san-kum/bars3d/internal/session"
	"github.com/san-kum/bars3d/internal/storage"
	"github.com/san-kum/bars3d/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	variant    string
	theme      string
	seed       int64
	fps        int
	step       float64
	stars      int
	xData      []float64
	zData      []float64
	rowData    []float64
	verbose    bool
	quiet      bool
	logFile    string

	// snapshot
	snapFrames int
	cols       int
	rows       int
	svgScale   float64

	// record
	frames   int
	realtime bool
	asJSON   bool
	runs     int

	// plot
	barIndex int
	svgOut   string

	// init-config
	force bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "bars3d",
		Short:         "animated 3D bar charts in the terminal or a window",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".bars3d", "data directory for recordings")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&variant, "variant", config.DefaultVariant, "chart variant (dual-axis, showcase)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal color theme")
	pf.Int64Var(&seed, "seed", 1, "random seed for colors and heights")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	pf.Float64Var(&step, "step", config.DefaultStep, "animation time added per frame")
	pf.IntVar(&stars, "stars", config.DefaultStars, "showcase starfield size")
	pf.Float64SliceVar(&xData, "x", nil, "heights of the X-axis series")
	pf.Float64SliceVar(&zData, "z", nil, "heights of the Z-axis series")
	pf.Float64SliceVar(&rowData, "row", nil, "heights of the showcase row")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "errors only")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the chart in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the chart in a native window",
		RunE:  runGUI,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file.svg]",
		Short: "render one frame to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 1, "frames to advance before rendering")
	snapshotCmd.Flags().IntVar(&cols, "cols", 100, "canvas width in cells")
	snapshotCmd.Flags().IntVar(&rows, "rows", 40, "canvas height in cells")
	snapshotCmd.Flags().Float64Var(&svgScale, "scale", 4, "svg units per dot")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "run headless and store every frame",
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 300, "frames to record")
	recordCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames at --fps")
	recordCmd.Flags().BoolVar(&asJSON, "json", false, "write the recording to stdout as JSON instead of storing it")
	recordCmd.Flags().IntVar(&runs, "runs", 1, "record this many consecutive seeds in parallel")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recordings",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot bar scales of a recording",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&barIndex, "bar", -1, "bar index to plot (default: first six)")
	plotCmd.Flags().StringVar(&svgOut, "svg", "", "also write the selected bar's plot to this SVG file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVARIANT\tSTEP\tFPS")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%.3f\t%d\n", name, p.Variant, p.Step, p.FPS)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective config to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(tuiCmd, guiCmd, snapshotCmd, recordCmd, listCmd, plotCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves defaults, then the preset, then the config file, then
// any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadInto(cfg, configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		cfg.Variant = variant
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("stars") {
		cfg.Stars = stars
	}
	if flags.Changed("x") {
		cfg.Data.X = xData
	}
	if flags.Changed("z") {
		cfg.Data.Z = zData
	}
	if flags.Changed("row") {
		cfg.Data.Row = rowData
	}
	cfg.ApplyVariantDefaults()
	return cfg, nil
}

func checkRecordFlags(runs int, realtime bool) error {
	if runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", runs)
	}
	if runs > 1 && realtime {
		return errors.New("--realtime records a single run; drop it or use --runs 1")
	}
	return nil
}

// setup loads the config, installs logging and builds a session. Terminal
// hosts pass toScreen=false so logs never land on the alternate screen.
func setup(cmd *cobra.Command, toScreen bool) (*session.Session, *slog.Logger, func() error, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	level := logx.LevelFromFlags(verbose, quiet)
	var (
		log     *slog.Logger
		closeFn = func() error { return nil }
	)
	if !toScreen && logFile == "" {
		log = logx.Discard()
		slog.SetDefault(log)
	} else {
		log, closeFn, err = logx.Setup(logFile, level)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	s, err := session.New(cfg, session.WithLogger(log))
	if err != nil {
		closeFn()
		return nil, nil, nil, err
	}
	return s, log, closeFn, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, log, closeFn, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer closeFn()

	snapshot := func(c *viz.Canvas, labels []*chart.Label) (string, error) {
		path := fmt.Sprintf("bars3d_%d.svg", time.Now().Unix())
		return path, export.SaveSVG(path, c, labels, 4)
	}
	return viz.Run(s,
		viz.WithTheme(s.Config().Theme),
		viz.WithLogger(log),
		viz.WithSnapshot(snapshot),
	)
}

func runGUI(cmd *cobra.Command, args []string) error {
	s, log, closeFn, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closeFn()
	return gui.Run(s, log)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	s, log, closeFn, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closeFn()

	path := "bars3d.svg"
	if len(args) > 0 {
		path = args[0]
	}
	for i := 0; i < snapFrames; i++ {
		if err := s.Tick(); err != nil {
			return err
		}
	}
	c, err := export.Render(s, cols, rows)
	if err != nil {
		return err
	}
	if err := export.SaveSVG(path, c, s.Chart.Labels, svgScale); err != nil {
		return err
	}
	log.Info("snapshot written", "path", path, "frame", s.Frames(), "time", s.Time())
	fmt.Println(path)
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	if err := checkRecordFlags(runs, realtime); err != nil {
		return err
	}
	s, log, closeFn, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var recs []*storage.Recording
	if runs > 1 {
		cfg := s.Config()
		log.Info("recording ensemble", "runs", runs, "seed", cfg.Seed, "frames", frames)
		recs, err = storage.NewEnsemble(cfg, runs, cfg.Seed, log).Run(ctx, frames)
		if err != nil {
			return err
		}
	} else {
		var interval time.Duration
		if realtime {
			interval = time.Second / time.Duration(s.Config().FPS)
		}
		rec, err := storage.Record(ctx, s, frames, interval)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		if err != nil {
			log.Warn("recording interrupted", "frames", len(rec.Frames))
		}
		recs = []*storage.Recording{rec}
	}

	if asJSON {
		for _, rec := range recs {
			if err := storage.WriteJSON(os.Stdout, rec); err != nil {
				return err
			}
		}
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	for _, rec := range recs {
		runID, err := st.Save(rec)
		if err != nil {
			return err
		}
		log.Info("recording saved", "id", runID, "frames", len(rec.Frames), "dir", filepath.Join(dataDir, runID))
		fmt.Println(runID)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVARIANT\tTIME\tFRAMES\tSTEP\tSEED\tBARS")
	for _, run := range metas {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3f\t%d\t%d\n",
			run.ID,
			run.Variant,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Step,
			run.Seed,
			len(run.Bars),
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
	recorded, err := st.LoadScales(runID)
	if err != nil {
		return err
	}
	if len(recorded) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("variant: %s\n", meta.Variant)
	fmt.Printf("frames: %d\n\n", len(recorded))

	indices := []int{barIndex}
	if barIndex < 0 {
		indices = indices[:0]
		for i := 0; i < len(meta.Bars) && i < 6; i++ {
			indices = append(indices, i)
		}
	} else if barIndex >= len(meta.Bars) {
		return fmt.Errorf("bar %d out of range (run has %d bars)", barIndex, len(meta.Bars))
	}

	for _, i := range indices {
		data := storage.Column(recorded, i)
		if len(data) == 0 {
			continue
		}
		caption := fmt.Sprintf("%s scale (height %s)", meta.Bars[i], chart.FormatHeight(meta.Heights[i]))
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	if svgOut != "" && len(indices) > 0 {
		svg := export.SeriesToSVG(storage.Column(recorded, indices[0]), 800, 300, "#00ffff")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Println(svgOut)
	}
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "bars3d.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists (use --force to overwrite)", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
