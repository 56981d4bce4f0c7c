package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
)

const (
	DefaultTheme        = "default"
	DefaultSeed         = 42
	DefaultWidth        = 72
	DefaultHeight       = 16
	DefaultSVGWidth     = 640
	DefaultSVGHeight    = 480
	DefaultSineSamples  = 200
	DefaultWaveCount    = 3
	DefaultWaveNumber   = 2
	DefaultStyleSamples = 25
	DefaultOversample   = 10
	DefaultScatterN     = 50
	DefaultMaxRadius    = 15
)

var ErrInvalidConfig = errors.New("config: invalid value")

type Config struct {
	Theme    string        `yaml:"theme"`
	Seed     int64         `yaml:"seed"`
	Examples []string      `yaml:"examples"`
	Plot     PlotConfig    `yaml:"plot"`
	Sines    SinesConfig   `yaml:"sines"`
	Styles   StylesConfig  `yaml:"styles"`
	Scatter  ScatterConfig `yaml:"scatter"`
}

// PlotConfig sizes the terminal (cells) and SVG (pixels) outputs.
type PlotConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	SVGWidth  int `yaml:"svg_width"`
	SVGHeight int `yaml:"svg_height"`
}

// SinesConfig drives the sin(kx) sweep: Waves curves for k = 0..Waves-1
// over Samples points in [Start, Stop].
type SinesConfig struct {
	Samples    int     `yaml:"samples"`
	Start      float64 `yaml:"start"`
	Stop       float64 `yaml:"stop"`
	Waves      int     `yaml:"waves"`
	WaveNumber float64 `yaml:"wave_number"`
}

// StylesConfig drives the damped cosine example, sampled coarsely as
// markers and finely as a line.
type StylesConfig struct {
	Samples    int     `yaml:"samples"`
	Oversample int     `yaml:"oversample"`
	Stop       float64 `yaml:"stop"`
}

type ScatterConfig struct {
	Points    int     `yaml:"points"`
	MaxRadius float64 `yaml:"max_radius"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme: DefaultTheme,
		Seed:  DefaultSeed,
		Plot: PlotConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			SVGWidth:  DefaultSVGWidth,
			SVGHeight: DefaultSVGHeight,
		},
		Sines: SinesConfig{
			Samples:    DefaultSineSamples,
			Start:      0,
			Stop:       6.283185307179586,
			Waves:      DefaultWaveCount,
			WaveNumber: DefaultWaveNumber,
		},
		Styles: StylesConfig{
			Samples:    DefaultStyleSamples,
			Oversample: DefaultOversample,
			Stop:       5,
		},
		Scatter: ScatterConfig{
			Points:    DefaultScatterN,
			MaxRadius: DefaultMaxRadius,
		},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Plot.Width <= 0 || c.Plot.Height <= 0:
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalidConfig, c.Plot.Width, c.Plot.Height)
	case c.Plot.SVGWidth < plot.MinSVGWidth || c.Plot.SVGHeight < plot.MinSVGHeight:
		return fmt.Errorf("%w: svg size %dx%d (minimum %dx%d)", ErrInvalidConfig,
			c.Plot.SVGWidth, c.Plot.SVGHeight, plot.MinSVGWidth, plot.MinSVGHeight)
	case c.Sines.Samples <= 0:
		return fmt.Errorf("%w: sines.samples %d", ErrInvalidConfig, c.Sines.Samples)
	case c.Sines.Waves < 0:
		return fmt.Errorf("%w: sines.waves %d", ErrInvalidConfig, c.Sines.Waves)
	case c.Styles.Samples <= 0 || c.Styles.Oversample <= 0:
		return fmt.Errorf("%w: styles samples %d oversample %d", ErrInvalidConfig, c.Styles.Samples, c.Styles.Oversample)
	case c.Scatter.Points <= 0:
		return fmt.Errorf("%w: scatter.points %d", ErrInvalidConfig, c.Scatter.Points)
	}
	return nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Examples = append([]string(nil), c.Examples...)
	return &cp
}
