package plot

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/array"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// Size is a terminal plot area in character cells.
type Size struct {
	Width  int
	Height int
}

var DefaultSize = Size{Width: 72, Height: 16}

func (s Size) normalized() Size {
	if s.Width < 8 {
		s.Width = 8
	}
	if s.Height < 4 {
		s.Height = 4
	}
	return s
}

// RenderTerminal draws line-only figures with asciigraph and anything with
// markers on a Braille canvas.
func RenderTerminal(fig *Figure, theme Theme, size Size) (string, error) {
	if err := fig.Validate(); err != nil {
		return "", err
	}
	if fig.HasMarkers() {
		return RenderScatter(fig, theme, size)
	}
	return RenderASCII(fig, theme, size)
}

// RenderASCII resamples every series onto a shared x grid and plots them
// together. Marker series are drawn as lines.
func RenderASCII(fig *Figure, theme Theme, size Size) (string, error) {
	if err := fig.Validate(); err != nil {
		return "", err
	}
	size = size.normalized()

	xMin, xMax, _, _ := fig.Bounds()
	grid := array.Linspace(xMin, xMax, size.Width)

	var (
		data    [][]float64
		colors  []asciigraph.AnsiColor
		legends []string
	)
	for i, s := range fig.Series {
		if s.Len() == 0 {
			continue
		}
		data = append(data, resample(s, grid))
		colors = append(colors, theme.SwatchFor(s, i).Ansi)
		legends = append(legends, seriesLabel(s, i))
	}

	opts := []asciigraph.Option{
		asciigraph.Height(size.Height),
		asciigraph.SeriesColors(colors...),
	}
	if fig.Title != "" {
		opts = append(opts, asciigraph.Caption(fig.Title))
	}
	if fig.Legend {
		opts = append(opts, asciigraph.SeriesLegends(legends...))
	}

	graph := asciigraph.PlotMany(data, opts...)
	return decorate(fig, theme, graph, xMin, xMax, false), nil
}

// RenderScatter draws the figure on a Braille canvas. Lines are rasterized
// point to point, markers become discs sized from their area.
func RenderScatter(fig *Figure, theme Theme, size Size) (string, error) {
	if err := fig.Validate(); err != nil {
		return "", err
	}
	size = size.normalized()

	c := NewCanvas(size.Width, size.Height)
	xMin, xMax, yMin, yMax := fig.Bounds()
	pw, ph := size.Width*2, size.Height*4

	px := func(x float64) int {
		return int(math.Round(float64(pw-1) * (x - xMin) / (xMax - xMin)))
	}
	py := func(y float64) int {
		return ph - 1 - int(math.Round(float64(ph-1)*(y-yMin)/(yMax-yMin)))
	}

	for i, s := range fig.Series {
		sw := theme.SwatchFor(s, i)
		switch s.Style {
		case Marker:
			for j := range s.X {
				if !finite(s.X[j]) || !finite(s.Y[j]) {
					continue
				}
				ink := sw
				if j < len(s.Shades) {
					ink = theme.Shade(s.Shades[j])
				}
				c.Disc(px(s.X[j]), py(s.Y[j]), markerRadius(s.SizeAt(j)), ink.Term())
			}
		default:
			for j := range s.X {
				if !finite(s.X[j]) || !finite(s.Y[j]) {
					continue
				}
				if j == 0 || !finite(s.X[j-1]) || !finite(s.Y[j-1]) {
					c.Set(px(s.X[j]), py(s.Y[j]), sw.Term())
					continue
				}
				c.DrawLine(px(s.X[j-1]), py(s.Y[j-1]), px(s.X[j]), py(s.Y[j]), sw.Term())
			}
		}
	}

	var sb strings.Builder
	rows := strings.Split(strings.TrimSuffix(c.Render(), "\n"), "\n")
	for i, row := range rows {
		label := ""
		switch i {
		case 0:
			label = fmt.Sprintf("%.2f", yMax)
		case len(rows) / 2:
			label = fmt.Sprintf("%.2f", (yMax+yMin)/2)
		case len(rows) - 1:
			label = fmt.Sprintf("%.2f", yMin)
		}
		fmt.Fprintf(&sb, "%8s ┤%s\n", label, row)
	}
	sb.WriteString(strings.Repeat(" ", 9) + "└" + strings.Repeat("─", size.Width) + "\n")
	lo, hi := fmt.Sprintf("%.2f", xMin), fmt.Sprintf("%.2f", xMax)
	gap := size.Width - len(lo) - len(hi)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(strings.Repeat(" ", 10) + lo + strings.Repeat(" ", gap) + hi)

	if fig.Title != "" {
		sb.WriteString("\n" + strings.Repeat(" ", 10) + fig.Title)
	}
	if fig.Legend {
		sb.WriteString("\n" + legendLine(fig, theme))
	}
	return decorate(fig, theme, sb.String(), xMin, xMax, true), nil
}

func decorate(fig *Figure, theme Theme, body string, xMin, xMax float64, hasXRange bool) string {
	var parts []string
	if fig.YLabel != "" {
		parts = append(parts, theme.LegendStyle.Render(fig.YLabel))
	}
	parts = append(parts, body)
	if fig.XLabel != "" {
		parts = append(parts, theme.LegendStyle.Render(fig.XLabel))
	} else if !hasXRange {
		parts = append(parts, theme.LegendStyle.Render(fmt.Sprintf("x: %.2f .. %.2f", xMin, xMax)))
	}
	return theme.FrameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func legendLine(fig *Figure, theme Theme) string {
	entries := make([]string, 0, len(fig.Series))
	for i, s := range fig.Series {
		mark := "─"
		if s.Style == Marker {
			mark = "●"
		}
		sw := theme.SwatchFor(s, i)
		entries = append(entries,
			lipgloss.NewStyle().Foreground(sw.Term()).Render(mark)+" "+theme.LegendStyle.Render(seriesLabel(s, i)))
	}
	return strings.Repeat(" ", 10) + strings.Join(entries, "   ")
}

func seriesLabel(s Series, i int) string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("series %d", i)
}

func markerRadius(area float64) int {
	if area <= 0 {
		return 0
	}
	return int(math.Sqrt(area) / 12)
}

// resample linearly interpolates s onto grid. Grid points outside the
// series' x range become NaN, which asciigraph leaves blank.
func resample(s Series, grid []float64) []float64 {
	idx := make([]int, 0, s.Len())
	for i := range s.X {
		if finite(s.X[i]) && finite(s.Y[i]) {
			idx = append(idx, i)
		}
	}
	out := make([]float64, len(grid))
	for i := range out {
		out[i] = math.NaN()
	}
	if len(idx) == 0 {
		return out
	}
	slices.SortFunc(idx, func(a, b int) int {
		switch {
		case s.X[a] < s.X[b]:
			return -1
		case s.X[a] > s.X[b]:
			return 1
		}
		return 0
	})

	lo, hi := s.X[idx[0]], s.X[idx[len(idx)-1]]
	k := 0
	placed := false
	for g, x := range grid {
		if x < lo || x > hi {
			continue
		}
		for k+1 < len(idx) && s.X[idx[k+1]] < x {
			k++
		}
		a := idx[k]
		if k+1 >= len(idx) || s.X[idx[k+1]] == s.X[a] {
			out[g] = s.Y[a]
		} else {
			b := idx[k+1]
			t := (x - s.X[a]) / (s.X[b] - s.X[a])
			out[g] = s.Y[a] + t*(s.Y[b]-s.Y[a])
		}
		placed = true
	}
	if !placed {
		// series narrower than one grid step: pin it to the nearest cell
		nearest := 0
		for g := range grid {
			if math.Abs(grid[g]-lo) < math.Abs(grid[nearest]-lo) {
				nearest = g
			}
		}
		out[nearest] = s.Y[idx[0]]
	}
	return out
}
