package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/array"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/config"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/demo"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/sines"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/view"
)

var (
	configFile string
	preset     string
	theme      string
	seed       int64
	// run
	examples []string
	show     bool
	drawPlot bool
	svgDir   string
	// sinkx
	waveNumber float64
	samples    int
	start      float64
	stop       float64
	writeCSV   bool
)

// main registers the scratch commands and runs the one named on the command
// line, exiting with status 1 on error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "scratch",
		Short:        "numeric scratchpad: arrays, functions and plots",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "plot theme")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed for scatter data")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list demos and plot examples",
		RunE:  listDemos,
	}

	runCmd := &cobra.Command{
		Use:   "run [demo]",
		Short: "run a demo",
		Args:  cobra.ExactArgs(1),
		RunE:  runDemo,
	}
	runCmd.Flags().StringSliceVar(&examples, "examples", nil, "plot examples to run (or all)")
	runCmd.Flags().BoolVar(&show, "show", false, "open figures in the interactive viewer")
	runCmd.Flags().BoolVar(&drawPlot, "plot", false, "draw figures in the terminal")
	runCmd.Flags().StringVar(&svgDir, "svg", "", "write figures as SVG files into this directory")

	sinkxCmd := &cobra.Command{
		Use:   "sinkx",
		Short: "evaluate sin(kx) over evenly spaced samples",
		Args:  cobra.NoArgs,
		RunE:  runSinkx,
	}
	sinkxCmd.Flags().Float64Var(&waveNumber, "k", 1, "wave number")
	sinkxCmd.Flags().IntVar(&samples, "samples", 9, "number of samples")
	sinkxCmd.Flags().Float64Var(&start, "start", 0, "first sample")
	sinkxCmd.Flags().Float64Var(&stop, "stop", 2*math.Pi, "last sample")
	sinkxCmd.Flags().BoolVar(&drawPlot, "plot", false, "draw the curve")
	sinkxCmd.Flags().BoolVar(&writeCSV, "csv", false, "write x,y as CSV")

	areaCmd := &cobra.Command{
		Use:   "area",
		Short: "area of a shape",
	}
	areaCmd.AddCommand(
		&cobra.Command{
			Use:   "rect [a] [b]",
			Short: "rectangle with sides a and b",
			Args:  cobra.ExactArgs(2),
			RunE:  rectArea,
		},
		&cobra.Command{
			Use:   "square [s]",
			Short: "square with side s",
			Args:  cobra.ExactArgs(1),
			RunE:  squareArea,
		},
	)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets and themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(out, "  %s\n", p)
			}
			fmt.Fprintln(out, "themes:")
			for _, t := range plot.ThemeNames() {
				fmt.Fprintf(out, "  %s\n", t)
			}
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, runCmd, sinkxCmd, areaCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// later layers winning, then validates the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("examples") != nil && flags.Changed("examples") {
		cfg.Examples = examples
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func listDemos(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEMO\tDESCRIPTION")
	for _, d := range demo.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PLOT EXAMPLES")
	for _, name := range demo.PlotExamples() {
		fmt.Fprintf(w, "%s\n", name)
	}
	return w.Flush()
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	d, err := demo.NewRegistry().Get(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	env, err := demo.NewEnv(out, cfg)
	if err != nil {
		return err
	}

	var sinks demo.Sinks
	collector := &demo.Collector{}
	if show {
		sinks = append(sinks, collector)
	}
	if drawPlot {
		sinks = append(sinks, &demo.TerminalSink{
			Out:  out,
			Size: plot.Size{Width: cfg.Plot.Width, Height: cfg.Plot.Height},
		})
	}
	if svgDir != "" {
		sinks = append(sinks, &demo.SVGSink{
			Dir:    svgDir,
			Prefix: d.Name + "-",
			Width:  cfg.Plot.SVGWidth,
			Height: cfg.Plot.SVGHeight,
			Out:    out,
		})
	}
	if len(sinks) > 0 {
		env.Sink = sinks
	}

	if err := d.Run(env); err != nil {
		return err
	}

	if !show {
		return nil
	}
	if len(collector.Figures) == 0 {
		fmt.Fprintf(out, "%s produced no figures\n", d.Name)
		return nil
	}
	pages := make([]view.Page, len(collector.Figures))
	for i, f := range collector.Figures {
		pages[i] = view.Page{Name: f.Name, Figure: f.Figure, Theme: f.Theme}
	}
	return view.Run(pages)
}

func runSinkx(cmd *cobra.Command, args []string) error {
	if samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", samples)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	x := array.Linspace(start, stop, samples)
	y := sines.Sinkx(waveNumber, x)
	out := cmd.OutOrStdout()

	if writeCSV {
		w := csv.NewWriter(out)
		if err := w.Write([]string{"x", "y"}); err != nil {
			return err
		}
		for i := range x {
			row := []string{
				strconv.FormatFloat(x[i], 'f', 6, 64),
				strconv.FormatFloat(y[i], 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}

	if drawPlot {
		th, err := plot.GetTheme(cfg.Theme)
		if err != nil {
			return err
		}
		fig := plot.New().
			Plot(x, y, plot.Label(fmt.Sprintf("k=%g", waveNumber))).
			SetTitle(fmt.Sprintf("sin(%gx)", waveNumber))
		graph, err := plot.RenderTerminal(fig, th, plot.Size{Width: cfg.Plot.Width, Height: cfg.Plot.Height})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, graph)
		return nil
	}

	fmt.Fprintln(out, array.Format(y))
	return nil
}

func parseSide(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

func printShape(cmd *cobra.Command, s interface {
	sines.Shape
	fmt.Stringer
}) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s)
	fmt.Fprintf(out, " area %g\n", s.Area())
}

func rectArea(cmd *cobra.Command, args []string) error {
	a, err := parseSide("a", args[0])
	if err != nil {
		return err
	}
	b, err := parseSide("b", args[1])
	if err != nil {
		return err
	}
	printShape(cmd, sines.NewRectangle(a, b))
	return nil
}

func squareArea(cmd *cobra.Command, args []string) error {
	s, err := parseSide("side", args[0])
	if err != nil {
		return err
	}
	printShape(cmd, sines.NewSquare(s))
	return nil
}
