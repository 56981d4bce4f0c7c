package config

import "sort"

var Presets = map[string]*Config{
	"classroom": {
		Theme: "default", Seed: DefaultSeed,
		Plot:    PlotConfig{Width: 60, Height: 12, SVGWidth: 480, SVGHeight: 360},
		Sines:   SinesConfig{Samples: 100, Stop: 6.283185307179586, Waves: 3, WaveNumber: 2},
		Styles:  StylesConfig{Samples: 25, Oversample: 10, Stop: 5},
		Scatter: ScatterConfig{Points: 30, MaxRadius: 15},
	},
	"seaborn": {
		Theme: "seaborn", Seed: DefaultSeed,
		Examples: []string{"seaborn", "sines"},
		Plot:     PlotConfig{Width: DefaultWidth, Height: DefaultHeight, SVGWidth: DefaultSVGWidth, SVGHeight: DefaultSVGHeight},
		Sines:    SinesConfig{Samples: 200, Stop: 6.283185307179586, Waves: 3, WaveNumber: 2},
		Styles:   StylesConfig{Samples: 25, Oversample: 10, Stop: 5},
		Scatter:  ScatterConfig{Points: 50, MaxRadius: 15},
	},
	"hires": {
		Theme: "default", Seed: DefaultSeed,
		Plot:    PlotConfig{Width: 120, Height: 30, SVGWidth: 1280, SVGHeight: 960},
		Sines:   SinesConfig{Samples: 1000, Stop: 6.283185307179586, Waves: 5, WaveNumber: 2},
		Styles:  StylesConfig{Samples: 50, Oversample: 20, Stop: 5},
		Scatter: ScatterConfig{Points: 200, MaxRadius: 15},
	},
	"mono": {
		Theme: "mono", Seed: DefaultSeed,
		Plot:    PlotConfig{Width: DefaultWidth, Height: DefaultHeight, SVGWidth: DefaultSVGWidth, SVGHeight: DefaultSVGHeight},
		Sines:   SinesConfig{Samples: 200, Stop: 6.283185307179586, Waves: 3, WaveNumber: 2},
		Styles:  StylesConfig{Samples: 25, Oversample: 10, Stop: 5},
		Scatter: ScatterConfig{Points: 50, MaxRadius: 15},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
