package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var ErrUnknownTheme = errors.New("plot: unknown theme")

// Swatch is one palette entry in both the SVG and terminal color spaces.
type Swatch struct {
	Hex  string
	Ansi asciigraph.AnsiColor
}

// Term returns the swatch as a lipgloss color.
func (s Swatch) Term() lipgloss.Color {
	return lipgloss.Color(s.Hex)
}

// matplotlib single-letter colors
var namedColors = map[string]Swatch{
	"b": {"#1f77b4", asciigraph.Blue},
	"g": {"#2ca02c", asciigraph.Green},
	"r": {"#d62728", asciigraph.Red},
	"c": {"#17becf", asciigraph.Cyan},
	"m": {"#9467bd", asciigraph.Magenta},
	"y": {"#bcbd22", asciigraph.Yellow},
	"k": {"#000000", asciigraph.Default},
	"w": {"#ffffff", asciigraph.White},
}

// Theme defines the look of a rendered figure.
type Theme struct {
	Name       string
	Background string
	PlotArea   string
	Axis       string
	Text       string
	GridLines  bool
	Palette    []Swatch

	TitleStyle  lipgloss.Style
	LegendStyle lipgloss.Style
	FrameStyle  lipgloss.Style
}

var (
	ThemeDefault = Theme{
		Name:       "default",
		Background: "#ffffff",
		PlotArea:   "#ffffff",
		Axis:       "#000000",
		Text:       "#000000",
		Palette: []Swatch{
			{"#1f77b4", asciigraph.Blue},
			{"#ff7f0e", asciigraph.Orange},
			{"#2ca02c", asciigraph.Green},
			{"#d62728", asciigraph.Red},
			{"#9467bd", asciigraph.Purple},
			{"#8c564b", asciigraph.Brown},
			{"#e377c2", asciigraph.Pink},
			{"#7f7f7f", asciigraph.Gray},
			{"#bcbd22", asciigraph.Olive},
			{"#17becf", asciigraph.Cyan},
		},
		TitleStyle:  lipgloss.NewStyle().Bold(true),
		LegendStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FrameStyle:  lipgloss.NewStyle().Padding(0, 1),
	}

	// ThemeSeaborn follows seaborn's darkgrid look: grey plot area with
	// white grid lines and the muted "deep" palette.
	ThemeSeaborn = Theme{
		Name:       "seaborn",
		Background: "#ffffff",
		PlotArea:   "#eaeaf2",
		Axis:       "#ffffff",
		Text:       "#262626",
		GridLines:  true,
		Palette: []Swatch{
			{"#4c72b0", asciigraph.SteelBlue},
			{"#dd8452", asciigraph.SandyBrown},
			{"#55a868", asciigraph.SeaGreen},
			{"#c44e52", asciigraph.IndianRed},
			{"#8172b3", asciigraph.MediumPurple},
			{"#937860", asciigraph.Tan},
			{"#da8bc3", asciigraph.Orchid},
			{"#8c8c8c", asciigraph.Gray},
			{"#ccb974", asciigraph.DarkKhaki},
			{"#64b5cd", asciigraph.SkyBlue},
		},
		TitleStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4c72b0")),
		LegendStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#8c8c8c")).Italic(true),
		FrameStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8c8c8c")).
			Padding(0, 1),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Background: "#ffffff",
		PlotArea:   "#ffffff",
		Axis:       "#000000",
		Text:       "#000000",
		Palette: []Swatch{
			{"#000000", asciigraph.Default},
			{"#555555", asciigraph.Gray},
			{"#999999", asciigraph.Silver},
		},
		TitleStyle:  lipgloss.NewStyle().Underline(true),
		LegendStyle: lipgloss.NewStyle(),
		FrameStyle:  lipgloss.NewStyle(),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeSeaborn,
		ThemeMono,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTheme, name, ThemeNames())
}

// NextTheme returns the theme after name, wrapping around. Unknown names
// start from the first theme.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// SwatchFor picks the color for the idx-th series: its own named color if
// set, otherwise the next palette entry.
func (t Theme) SwatchFor(s Series, idx int) Swatch {
	if sw, ok := namedColors[s.Color]; ok {
		return sw
	}
	return t.Palette[idx%len(t.Palette)]
}

// Shade maps v in [0, 1] onto the palette. NaN maps to the first entry.
func (t Theme) Shade(v float64) Swatch {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return t.Palette[int(v*float64(len(t.Palette)-1)+0.5)]
}
