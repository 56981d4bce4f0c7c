package demo

import (
	"fmt"
	"math"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/array"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/sines"
)

type plotExample struct {
	name  string
	build func(*Env) error
}

// plotExamples run in this order when several are selected.
var plotExamples = []plotExample{
	{"simple", simplePlot},
	{"labels", labelledPlot},
	{"legend", legendPlot},
	{"styles", stylesPlot},
	{"seaborn", seabornPlot},
	{"scatter", simpleScatter},
	{"fun-scatter", funScatter},
	{"sines", sinesPlot},
}

// DefaultPlotExamples is what the plotting demo runs with no selection.
var DefaultPlotExamples = []string{"sines"}

func PlotExamples() []string {
	names := make([]string, len(plotExamples))
	for i, ex := range plotExamples {
		names[i] = ex.name
	}
	return names
}

func runPlotting(e *Env) error {
	selected := e.Config.Examples
	if len(selected) == 0 {
		selected = DefaultPlotExamples
	}
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		if name == "all" {
			for _, ex := range plotExamples {
				want[ex.name] = true
			}
			continue
		}
		if !isPlotExample(name) {
			return fmt.Errorf("%w: %s (available: %v)", ErrUnknownExample, name, PlotExamples())
		}
		want[name] = true
	}

	for _, ex := range plotExamples {
		if !want[ex.name] {
			continue
		}
		if err := ex.build(e); err != nil {
			return err
		}
	}
	return nil
}

func isPlotExample(name string) bool {
	for _, ex := range plotExamples {
		if ex.name == name {
			return true
		}
	}
	return false
}

func simplePlot(e *Env) error {
	a := array.Arange(10)
	fig := plot.New().
		Plot(a, array.Scale(a, 2)).
		Plot(a, a)
	return e.Show("simple", fig)
}

func labelledPlot(e *Env) error {
	a := array.Arange(10)
	fig := plot.New().Plot(a, a).SetYLabel("y axis").SetTitle("title")
	return e.Show("labels", fig)
}

func legendPlot(e *Env) error {
	a := array.Arange(10)
	fig := plot.New().Plot(a, a, plot.Label("my plot")).ShowLegend()
	return e.Show("legend", fig)
}

// dampedCosine is exp(-x) * cos(2*pi*x).
func dampedCosine(x float64) float64 {
	return math.Exp(-x) * math.Cos(2*math.Pi*x)
}

func dampedSamples(e *Env) (coarse, fine []float64) {
	cfg := e.Config.Styles
	coarse = array.Linspace(0, cfg.Stop, cfg.Samples)
	fine = array.Linspace(0, cfg.Stop, cfg.Oversample*cfg.Samples)
	return coarse, fine
}

func stylesPlot(e *Env) error {
	x, xx := dampedSamples(e)
	fig := plot.New().
		Plot(x, array.Map(x, dampedCosine), plot.Format("bo")).
		Plot(xx, array.Map(xx, dampedCosine), plot.Format("k")).
		SetTitle("IX")
	return e.Show("styles", fig)
}

func seabornPlot(e *Env) error {
	x, xx := dampedSamples(e)
	fig := plot.New().
		Plot(xx, array.Map(xx, dampedCosine)).
		Plot(x, array.Map(x, dampedCosine), plot.Format("o")).
		SetTitle("seaborn aesthetics")
	return e.ShowWith("seaborn", fig, plot.ThemeSeaborn)
}

func uniform(e *Env, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = e.Rand.Float64()
	}
	return out
}

func simpleScatter(e *Env) error {
	n := e.Config.Scatter.Points
	x, y := uniform(e, n), uniform(e, n)
	fig := plot.New().
		Scatter(x, y, plot.Color("k")).
		SetTitle("simple scatter plot")
	return e.Show("scatter", fig)
}

func funScatter(e *Env) error {
	n := e.Config.Scatter.Points
	x, y := uniform(e, n), uniform(e, n)
	colors := uniform(e, n)
	areas := make([]float64, n)
	for i := range areas {
		// radii 0 to MaxRadius points
		r := e.Config.Scatter.MaxRadius * e.Rand.Float64()
		areas[i] = math.Pi * r * r
	}
	fig := plot.New().Scatter(x, y, plot.Sizes(areas), plot.Shades(colors), plot.Alpha(0.5))
	return e.Show("fun-scatter", fig)
}

func sinesPlot(e *Env) error {
	cfg := e.Config.Sines
	x := array.Linspace(cfg.Start, cfg.Stop, cfg.Samples)
	fig := plot.New().SetTitle("sin(kx)")
	for k := 0; k < cfg.Waves; k++ {
		fig.Plot(x, sines.Sinkx(float64(k), x), plot.Label(fmt.Sprintf("k=%d", k)))
	}
	if cfg.Waves > 0 {
		fig.ShowLegend()
	}

	s := sines.NewSine(cfg.WaveNumber)
	e.Println(s.K)

	if cfg.Waves == 0 {
		return nil
	}
	return e.Show("sines", fig)
}
