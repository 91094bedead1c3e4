package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/stepperanch/projsim/internal/config"
	"github.com/stepperanch/projsim/internal/dynamo"
	"github.com/stepperanch/projsim/internal/export"
	"github.com/stepperanch/projsim/internal/flight"
	"github.com/stepperanch/projsim/internal/geom"
	"github.com/stepperanch/projsim/internal/integrators"
	"github.com/stepperanch/projsim/internal/metrics"
	"github.com/stepperanch/projsim/internal/storage"
	"github.com/stepperanch/projsim/internal/viz"
)

var (
	dataDir    string
	dt         float64
	maxTime    float64
	integrator string
	preset     string
	configFile string
	pos        []float64
	vel        []float64
	spin       []float64
	wind       []float64
	frameRate  int
	svgOut     string
	setParams  []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "projsim",
		Short: "projectile flight simulation with drag and Magnus forces",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".projsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a flight simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFlight,
	}
	addLaunchFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write trajectory CSV to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write run data as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render the trajectory side view as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list projectile presets and scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("projectiles:")
			for _, name := range config.ListProjectiles() {
				p := config.Projectiles[name]
				fmt.Printf("  %-10s mass %g kg, radius %g m, Cd %g\n", name, p.Mass, p.Radius, p.DragCoeff)
			}
			fmt.Println("scenarios:")
			for _, name := range config.ListScenarios() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [scenario] [integrator1] [integrator2] ...",
		Short: "compare integrators on the same launch",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareIntegrators,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addLaunchFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, exportCSVCmd,
		exportJSONCmd, exportSVGCmd, presetsCmd, compareCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().Float64Var(&maxTime, "time", config.DefaultMaxTime, "maximum simulation time (s)")
	cmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator")
	cmd.Flags().StringVar(&preset, "preset", "", "projectile parameter preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Float64SliceVar(&pos, "pos", []float64{0, 0, 1}, "initial position x,y,z (m)")
	cmd.Flags().Float64SliceVar(&vel, "vel", []float64{10, 10, 10}, "initial velocity x,y,z (m/s)")
	cmd.Flags().Float64SliceVar(&spin, "spin", []float64{0, 0, 0}, "initial spin x,y,z (rad/s)")
	cmd.Flags().Float64SliceVar(&wind, "wind", []float64{0, 0, 0}, "wind x,y,z (m/s)")
	cmd.Flags().StringSliceVar(&setParams, "set", nil, "tune a parameter, name=value (drag_coeff, air_density, spin_factor)")
}

// applyOverrides tunes parameters through the generic interface; only
// the aerodynamic knobs accept writes.
func applyOverrides(c dynamo.Configurable, overrides []string) error {
	for _, o := range overrides {
		name, val, ok := strings.Cut(o, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q, want name=value", o)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid --set %q: %w", o, err)
		}
		if err := c.SetParam(name, v); err != nil {
			return err
		}
	}
	return nil
}

func vec3(vals []float64) (geom.Vec3, error) {
	if len(vals) != 3 {
		return geom.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(vals))
	}
	return geom.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// resolveConfig layers scenario, config file and CLI flags, in
// increasing priority.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	scenario := "custom"

	if len(args) == 1 {
		cfg = config.GetScenario(args[0])
		if cfg == nil {
			return nil, "", fmt.Errorf("unknown scenario: %s (available: %v)", args[0], config.ListScenarios())
		}
		scenario = args[0]
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("preset") {
		params, ok := config.GetProjectile(preset)
		if !ok {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListProjectiles())
		}
		cfg.Preset = preset
		cfg.Projectile = params
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.MaxTime = maxTime
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	for flag, dst := range map[string]*config.Vec{
		"pos":  &cfg.InitState.Position,
		"vel":  &cfg.InitState.Velocity,
		"spin": &cfg.InitState.Spin,
		"wind": &cfg.Wind,
	} {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		var src []float64
		switch flag {
		case "pos":
			src = pos
		case "vel":
			src = vel
		case "spin":
			src = spin
		case "wind":
			src = wind
		}
		v, err := vec3(src)
		if err != nil {
			return nil, "", fmt.Errorf("--%s: %w", flag, err)
		}
		*dst = config.Vec{X: v.X, Y: v.Y, Z: v.Z}
	}

	return cfg, scenario, nil
}

func runFlight(cmd *cobra.Command, args []string) error {
	cfg, scenario, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	proj, err := cfg.NewProjectile()
	if err != nil {
		return err
	}
	if err := applyOverrides(proj, setParams); err != nil {
		return err
	}

	integ, err := integrators.Get(cfg.Integrator)
	if err != nil {
		return err
	}

	sim := flight.New(integ)
	sim.AddMetric(metrics.NewRange())
	sim.AddMetric(metrics.NewApex())
	sim.AddMetric(metrics.NewMaxSpeed())

	launch := storage.Snapshot(proj)

	fmt.Printf("running %s flight...\n", scenario)
	start := time.Now()

	result, err := sim.Run(proj, flight.Config{
		TimeStep: cfg.Dt,
		MaxTime:  cfg.MaxTime,
		Wind:     cfg.WindVec(),
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(scenario, cfg.Dt, cfg.MaxTime, cfg.Integrator, cfg.WindVec(), launch, result)
	if err != nil {
		return err
	}

	final := result.Trajectory.FinalPoint()
	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("termination: %s\n", result.Termination)
	fmt.Printf("final point: %s\n", final)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDT\tINTEG\tEND\tFLIGHT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.4fs\t%s\t%s\t%.3fs\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Integrator,
			run.Termination,
			run.FlightTime,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(points))

	series := []struct {
		caption string
		pick    func(geom.Point) float64
	}{
		{"altitude z (m)", func(p geom.Point) float64 { return p.Z }},
		{"x (m)", func(p geom.Point) float64 { return p.X }},
		{"y (m)", func(p geom.Point) float64 { return p.Y }},
	}

	for _, s := range series {
		data := make([]float64, len(points))
		for i, p := range points {
			data[i] = s.pick(p)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	return export.JSONMeta(os.Stdout, meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "x", "y", "z"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.T, 'f', 6, 64),
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	return export.JSON(os.Stdout, meta, points)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	points, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if len(points) < 2 {
		return fmt.Errorf("not enough points for SVG")
	}

	svg := export.TrajectorySVG(points, 800, 400, "#00ff88")
	if svgOut == "" {
		fmt.Println(svg)
		return nil
	}
	return os.WriteFile(svgOut, []byte(svg), 0644)
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	scenario := args[0]
	names := args[1:]

	base := config.GetScenario(scenario)
	if base == nil {
		return fmt.Errorf("unknown scenario: %s (available: %v)", scenario, config.ListScenarios())
	}
	if cmd.Flags().Changed("dt") {
		base.Dt = dt
	}

	fmt.Printf("comparing integrators on %s (dt=%.4f)\n\n", scenario, base.Dt)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tEND\tFLIGHT\tFINAL X\tFINAL Y\tTIME")

	for _, name := range names {
		integ, err := integrators.Get(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}

		proj, err := base.NewProjectile()
		if err != nil {
			return err
		}

		start := time.Now()
		result, err := flight.New(integ).Run(proj, flight.Config{
			TimeStep: base.Dt,
			MaxTime:  base.MaxTime,
			Wind:     base.WindVec(),
		})
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\n", name, err)
			continue
		}
		elapsed := time.Since(start)

		final := result.Trajectory.FinalPoint()
		fmt.Fprintf(w, "%s\t%s\t%.3fs\t%.4f\t%.4f\t%v\n",
			name, result.Termination, final.T, final.X, final.Y, elapsed)
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, scenario, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	proj, err := cfg.NewProjectile()
	if err != nil {
		return err
	}
	if err := applyOverrides(proj, setParams); err != nil {
		return err
	}

	m := viz.NewModel(proj, flight.Config{
		TimeStep: cfg.Dt,
		MaxTime:  cfg.MaxTime,
		Wind:     cfg.WindVec(),
	}, scenario, frameRate)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
