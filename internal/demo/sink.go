package demo

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
)

// Sink receives the figures a demo shows.
type Sink interface {
	Show(name string, fig *plot.Figure, theme plot.Theme) error
}

// TerminalSink draws each figure straight into Out.
type TerminalSink struct {
	Out  io.Writer
	Size plot.Size
}

func (s *TerminalSink) Show(name string, fig *plot.Figure, theme plot.Theme) error {
	out, err := plot.RenderTerminal(fig, theme, s.Size)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.Out, "\n[%s]\n%s\n", name, out)
	return nil
}

// SVGSink writes each figure to Dir/<Prefix><name>.svg.
type SVGSink struct {
	Dir    string
	Prefix string
	Width  int
	Height int
	Out    io.Writer
}

func (s *SVGSink) Show(name string, fig *plot.Figure, theme plot.Theme) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(s.Dir, s.Prefix+name+".svg")
	if err := plot.WriteSVG(path, fig, theme, s.Width, s.Height); err != nil {
		return err
	}
	if s.Out != nil {
		fmt.Fprintf(s.Out, "wrote %s\n", path)
	}
	return nil
}

type Shown struct {
	Name   string
	Figure *plot.Figure
	Theme  plot.Theme
}

// Collector keeps figures in the order they were shown.
type Collector struct {
	Figures []Shown
}

func (c *Collector) Show(name string, fig *plot.Figure, theme plot.Theme) error {
	if err := fig.Validate(); err != nil {
		return err
	}
	c.Figures = append(c.Figures, Shown{Name: name, Figure: fig, Theme: theme})
	return nil
}

// Sinks fans a figure out to several sinks, stopping at the first error.
type Sinks []Sink

func (ss Sinks) Show(name string, fig *plot.Figure, theme plot.Theme) error {
	for _, s := range ss {
		if err := s.Show(name, fig, theme); err != nil {
			return err
		}
	}
	return nil
}
