package plot

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyFigure    = errors.New("plot: figure has no data")
	ErrLengthMismatch = errors.New("plot: x and y lengths differ")
)

type Style int

const (
	Line Style = iota
	Marker
)

func (s Style) String() string {
	if s == Marker {
		return "marker"
	}
	return "line"
}

// Series is one plotted data set. Color is a palette name ("b", "k", ...)
// and may be empty, in which case the theme's palette is cycled.
type Series struct {
	X      []float64
	Y      []float64
	Label  string
	Style  Style
	Color  string
	Sizes  []float64 // marker areas, in points squared
	Shades []float64 // per-point values in [0, 1] mapped onto the palette
	Alpha  float64
}

func (s Series) Len() int {
	return len(s.X)
}

// SizeAt returns the marker area for point i, defaulting to 36 like
// matplotlib.
func (s Series) SizeAt(i int) float64 {
	if i < len(s.Sizes) {
		return s.Sizes[i]
	}
	return 36
}

type Option func(*Series)

func Label(l string) Option {
	return func(s *Series) { s.Label = l }
}

func WithStyle(st Style) Option {
	return func(s *Series) { s.Style = st }
}

func Color(c string) Option {
	return func(s *Series) { s.Color = c }
}

func Sizes(sz []float64) Option {
	return func(s *Series) { s.Sizes = sz }
}

func Shades(v []float64) Option {
	return func(s *Series) { s.Shades = v }
}

func Alpha(a float64) Option {
	return func(s *Series) { s.Alpha = a }
}

// Format applies a matplotlib format string: an optional color letter
// followed by an optional marker ('o' or '.') or line ('-') token.
// Unknown characters are ignored.
func Format(f string) Option {
	return func(s *Series) {
		for _, r := range f {
			switch {
			case r == 'o' || r == '.':
				s.Style = Marker
			case r == '-':
				s.Style = Line
			default:
				if _, ok := namedColors[string(r)]; ok {
					s.Color = string(r)
				}
			}
		}
	}
}

type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Legend bool
	Series []Series
}

func New() *Figure {
	return &Figure{}
}

// Plot adds a line series. Options may turn it into markers.
func (f *Figure) Plot(x, y []float64, opts ...Option) *Figure {
	s := Series{X: x, Y: y, Style: Line, Alpha: 1}
	for _, o := range opts {
		o(&s)
	}
	f.Series = append(f.Series, s)
	return f
}

// Scatter adds a marker series.
func (f *Figure) Scatter(x, y []float64, opts ...Option) *Figure {
	return f.Plot(x, y, append([]Option{WithStyle(Marker)}, opts...)...)
}

func (f *Figure) SetTitle(t string) *Figure {
	f.Title = t
	return f
}

func (f *Figure) SetYLabel(l string) *Figure {
	f.YLabel = l
	return f
}

func (f *Figure) SetXLabel(l string) *Figure {
	f.XLabel = l
	return f
}

func (f *Figure) ShowLegend() *Figure {
	f.Legend = true
	return f
}

// HasMarkers reports whether any series is drawn with markers.
func (f *Figure) HasMarkers() bool {
	for _, s := range f.Series {
		if s.Style == Marker {
			return true
		}
	}
	return false
}

func (f *Figure) Validate() error {
	if f == nil || len(f.Series) == 0 {
		return ErrEmptyFigure
	}
	points := 0
	for i, s := range f.Series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("series %d (%d x, %d y): %w", i, len(s.X), len(s.Y), ErrLengthMismatch)
		}
		points += len(s.X)
	}
	if points == 0 {
		return ErrEmptyFigure
	}
	return nil
}

// Bounds returns the data extent over all finite points. Degenerate ranges
// are widened to a unit interval around the value.
func (f *Figure) Bounds() (xMin, xMax, yMin, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, s := range f.Series {
		for i := range s.X {
			x, y := s.X[i], s.Y[i]
			if !finite(x) || !finite(y) {
				continue
			}
			xMin = math.Min(xMin, x)
			xMax = math.Max(xMax, x)
			yMin = math.Min(yMin, y)
			yMax = math.Max(yMax, y)
		}
	}
	if math.IsInf(xMin, 1) {
		return 0, 1, 0, 1
	}
	if xMax == xMin {
		xMin -= 0.5
		xMax += 0.5
	}
	if yMax == yMin {
		yMin -= 0.5
		yMax += 0.5
	}
	return xMin, xMax, yMin, yMax
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
