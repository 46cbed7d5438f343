package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"racecore/internal/asset"
	"racecore/internal/car"
	"racecore/internal/config"
	"racecore/internal/control"
	"racecore/internal/export"
	"racecore/internal/metrics"
	"racecore/internal/optim"
	"racecore/internal/physics"
	"racecore/internal/storage"
	"racecore/internal/viz"
	"racecore/internal/world"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	driver     string
	kp         float64
	ki         float64
	kd         float64
	target     float64
	configFile string
	preset     string
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "racecore",
		Short: "rigid-body racing physics sandbox",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".racecore", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a headless simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	runCmd.Flags().StringVar(&driver, "driver", "", "driver (none, cruise)")
	runCmd.Flags().Float64Var(&kp, "kp", config.DefaultKp, "cruise pid kp")
	runCmd.Flags().Float64Var(&ki, "ki", config.DefaultKi, "cruise pid ki")
	runCmd.Flags().Float64Var(&kd, "kd", config.DefaultKd, "cruise pid kd")
	runCmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "cruise target speed (km/h)")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "drive the car interactively in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run's speed trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	trackCmd := &cobra.Command{
		Use:   "track [run_id]",
		Short: "draw a saved run's travelled path",
		Args:  cobra.ExactArgs(1),
		RunE:  plotTrack,
	}
	trackCmd.Flags().IntVar(&plotWidth, "width", 60, "canvas width")
	trackCmd.Flags().IntVar(&plotHeight, "height", 20, "canvas height")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			for _, p := range names {
				fmt.Println(p)
			}
			return nil
		},
	}

	meshesCmd := &cobra.Command{
		Use:   "meshes [config_file]",
		Short: "inspect a mesh configuration file",
		Args:  cobra.ExactArgs(1),
		RunE:  listMeshes,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	tuneCmd := &cobra.Command{
		Use:   "tune",
		Short: "grid-search cruise controller gains",
		RunE:  tuneGains,
	}
	tuneCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	tuneCmd.Flags().Float64Var(&duration, "time", 20.0, "evaluation duration (s)")
	tuneCmd.Flags().Float64Var(&target, "target", config.DefaultTarget, "cruise target speed (km/h)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [path]",
		Short: "export a saved run's path as SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, trackCmd, exportCmd, exportSVGCmd, tuneCmd, presetsCmd, meshesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file and CLI flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command, scenario string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset == "" && scenario != "" {
		preset = scenario
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		copied := *p
		cfg = &copied
		if cfg.World == (config.WorldConfig{}) {
			cfg.World = config.DefaultConfig().World
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("driver") {
		cfg.Driver = driver
	}
	if cmd.Flags().Changed("kp") {
		cfg.Controller.Kp = kp
	}
	if cmd.Flags().Changed("ki") {
		cfg.Controller.Ki = ki
	}
	if cmd.Flags().Changed("kd") {
		cfg.Controller.Kd = kd
	}
	if cmd.Flags().Changed("target") {
		cfg.Controller.Target = target
	}

	return cfg, nil
}

func buildScenario(cfg *config.Config) (*world.World, *car.Car, error) {
	w := world.New()
	w.SetDimensions(cfg.Dimensions())

	params := cfg.CarParams()
	params.ApplyDefaults()

	c, err := car.New(w, "player", params)
	if err != nil {
		return nil, nil, err
	}
	c.Object().Physics().(*physics.Component).PreventSleeping(true)

	obj := c.Object()
	w.AddMetric(metrics.NewSpeed(), obj)
	w.AddMetric(metrics.NewDistance(), obj)
	w.AddMetric(metrics.NewKineticEnergy(params.MomentOfInertia), obj)
	w.AddMetric(metrics.NewSleepRatio(), obj)

	return w, c, nil
}

func buildDriver(cfg *config.Config) (control.Driver, error) {
	switch cfg.Driver {
	case "", "none":
		return control.None{}, nil
	case "cruise":
		return control.NewCruise(cfg.Controller.Kp, cfg.Controller.Ki, cfg.Controller.Kd, cfg.Controller.Target), nil
	default:
		return nil, fmt.Errorf("unknown driver: %s", cfg.Driver)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	scenario := "default"
	if len(args) > 0 {
		scenario = args[0]
	}

	cfg, err := resolveConfig(cmd, scenarioPresetName(args))
	if err != nil {
		return err
	}

	w, c, err := buildScenario(cfg)
	if err != nil {
		return err
	}
	d, err := buildDriver(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rec := &storage.Recording{}

	fmt.Printf("running %s scenario...\n", scenario)
	start := time.Now()

	err = w.Run(context.Background(), cfg.RunConfig(), func(t float64) bool {
		c.StepTime()
		d.Drive(c, t)

		pos := c.Object().Position()
		rec.Frames = append(rec.Frames, storage.Frame{
			T:               t,
			X:               pos.X(),
			Y:               pos.Y(),
			Angle:           c.Object().Angle(),
			Speed:           c.Object().Physics().Speed(),
			SpeedKmh:        c.SpeedInKmh(),
			AngularVelocity: c.Object().Physics().AngularVelocity(),
		})
		return true
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	rec.Metrics = w.Metrics()

	runID, err := st.Save(scenario, cfg.Driver, cfg.Dt, cfg.Duration, rec)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", len(rec.Frames))
	fmt.Println("\nmetrics:")
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for name, val := range rec.Metrics {
		fmt.Fprintf(tw, "  %s\t%.6f\n", name, val)
	}
	return tw.Flush()
}

func scenarioPresetName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	if config.GetPreset(args[0]) == nil {
		return ""
	}
	return args[0]
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}

	w, c, err := buildScenario(cfg)
	if err != nil {
		return err
	}

	// Start in the middle of the world so the trail has room.
	dims := w.Dimensions()
	c.Object().SetPosition(mid(dims))

	p := tea.NewProgram(viz.NewModel(w, c, cfg.Dt), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func mid(d world.Dimensions) mgl64.Vec3 {
	return mgl64.Vec3{(d.MinX + d.MaxX) / 2, (d.MinY + d.MaxY) / 2, 0}
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT\tDRIVER\tFRAMES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%s\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Driver,
			run.Frames,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotSpeed(frames, plotWidth, plotHeight))
	fmt.Println()
	fmt.Println(viz.PlotAngularVelocity(frames, plotWidth, plotHeight/2))
	return nil
}

func plotTrack(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	fmt.Print(viz.PlotTrack(frames, plotWidth, plotHeight))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	rec := &storage.Recording{Frames: frames, Metrics: meta.Metrics}
	return storage.ExportJSONStdout(meta.Scenario, meta.Driver, meta.Dt, meta.Duration, rec)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	svg := export.TrackToSVG(frames, 800, 600, "#00ccff")
	if svg == "" {
		return fmt.Errorf("run %s has too little telemetry to draw", args[0])
	}
	return os.WriteFile(args[1], []byte(svg), 0644)
}

func tuneGains(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "")
	if err != nil {
		return err
	}
	cfg.Driver = "cruise"
	cfg.Controller.Target = target

	search := optim.NewGridSearch(
		[]string{"kp", "ki", "kd"},
		[][]float64{
			{1, 5, 10, 20},
			{0, 0.05, 0.1, 0.5},
			{0, 0.5, 1, 2},
		},
	)

	fmt.Printf("tuning cruise gains for %.0f km/h...\n", target)

	best, cost, err := search.Search(context.Background(), func(ctx context.Context, p map[string]float64) (float64, error) {
		w, c, err := buildScenario(cfg)
		if err != nil {
			return 0, err
		}
		d := control.NewCruise(p["kp"], p["ki"], p["kd"], cfg.Controller.Target)

		var totalErr float64
		var samples int
		runErr := w.Run(ctx, world.Config{Dt: cfg.Dt, Duration: duration}, func(t float64) bool {
			c.StepTime()
			d.Drive(c, t)
			// Ignore the spin-up phase.
			if t > duration/4 {
				totalErr += abs(c.SpeedInKmh() - cfg.Controller.Target)
				samples++
			}
			return true
		})
		if runErr != nil {
			return 0, runErr
		}
		if samples == 0 {
			return 0, fmt.Errorf("run too short to evaluate")
		}
		return totalErr / float64(samples), nil
	})
	if err != nil {
		return err
	}
	if best == nil {
		return fmt.Errorf("no candidate completed")
	}

	fmt.Printf("best gains: kp=%.2f ki=%.2f kd=%.2f (mean error %.2f km/h)\n",
		best["kp"], best["ki"], best["kd"], cost)
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func listMeshes(cmd *cobra.Command, args []string) error {
	loader := asset.NewMeshConfigLoader()
	if err := loader.Load(args[0]); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HANDLE\tMODEL\tTEXTURE\tSCALE")

	for i := 0; i < loader.MeshCount(); i++ {
		m, err := loader.Mesh(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f %.1f %.1f\n",
			m.Handle, m.ModelPath, m.Texture1, m.Scale.X, m.Scale.Y, m.Scale.Z)
	}

	return w.Flush()
}
