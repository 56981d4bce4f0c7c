package demo

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/config"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
)

var (
	ErrUnknownDemo    = errors.New("demo: unknown demo")
	ErrUnknownExample = errors.New("demo: unknown plot example")
)

type Demo struct {
	Name  string
	Short string
	Run   func(*Env) error
}

// Env is everything a demo may touch while it runs.
type Env struct {
	Out    io.Writer
	Config *config.Config
	Theme  plot.Theme
	Sink   Sink
	Rand   *rand.Rand
}

func NewEnv(out io.Writer, cfg *config.Config) (*Env, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme, err := plot.GetTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}
	return &Env{
		Out:    out,
		Config: cfg,
		Theme:  theme,
		Rand:   rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

func (e *Env) Println(a ...any) {
	fmt.Fprintln(e.Out, a...)
}

func (e *Env) Printf(format string, a ...any) {
	fmt.Fprintf(e.Out, format, a...)
}

// Show hands a figure to the sink in the environment's theme. Without a
// sink the figure is built and dropped.
func (e *Env) Show(name string, fig *plot.Figure) error {
	return e.ShowWith(name, fig, e.Theme)
}

func (e *Env) ShowWith(name string, fig *plot.Figure, theme plot.Theme) error {
	if e.Sink == nil {
		return nil
	}
	if err := e.Sink.Show(name, fig, theme); err != nil {
		return fmt.Errorf("show %s: %w", name, err)
	}
	return nil
}

type Registry struct {
	demos map[string]Demo
}

func NewRegistry() *Registry {
	r := &Registry{demos: make(map[string]Demo)}

	r.Register(Demo{Name: "basics", Short: "printing, loops, zeros and linspace", Run: runBasics})
	r.Register(Demo{Name: "functions", Short: "return values and optional arguments", Run: runFunctions})
	r.Register(Demo{Name: "sines", Short: "sin(kx), Sine and the shape types", Run: runSines})
	r.Register(Demo{Name: "plotting", Short: "line, style and scatter plot examples", Run: runPlotting})

	return r
}

func (r *Registry) Register(d Demo) {
	r.demos[d.Name] = d
}

func (r *Registry) Get(name string) (Demo, error) {
	d, ok := r.demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownDemo, name, r.Names())
	}
	return d, nil
}

// List returns every demo sorted by name.
func (r *Registry) List() []Demo {
	out := make([]Demo, 0, len(r.demos))
	for _, d := range r.demos {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Names() []string {
	list := r.List()
	names := make([]string, len(list))
	for i, d := range list {
		names[i] = d.Name
	}
	return names
}
