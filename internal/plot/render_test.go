package plot_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/array"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/sines"
)

func sineFigure() *plot.Figure {
	x := array.Linspace(0, 2*math.Pi, 200)
	fig := plot.New().SetTitle("sin(kx)")
	for k := 0; k < 3; k++ {
		fig.Plot(x, sines.Sinkx(float64(k), x), plot.Label("k"))
	}
	return fig
}

var _ = Describe("Canvas", func() {
	It("maps sub-pixels onto braille cells", func() {
		c := plot.NewCanvas(2, 1)
		c.Set(0, 0, "")
		c.Set(3, 3, "")
		Expect(c.IsSet(0, 0)).To(BeTrue())
		Expect(c.IsSet(1, 0)).To(BeFalse())
		Expect(c.Grid[0][0]).To(Equal(rune(0x2801)))
		Expect(c.Grid[0][1]).To(Equal(rune(0x2880)))
	})

	It("ignores points off the canvas", func() {
		c := plot.NewCanvas(1, 1)
		c.Set(-1, 0, "")
		c.Set(5, 5, "")
		Expect(c.String()).To(Equal("\u2800\n"))
	})

	It("draws both endpoints of a line", func() {
		c := plot.NewCanvas(4, 2)
		c.DrawLine(0, 0, 7, 7, "")
		Expect(c.IsSet(0, 0)).To(BeTrue())
		Expect(c.IsSet(7, 7)).To(BeTrue())
		Expect(c.IsSet(4, 4)).To(BeTrue())
	})
})

var _ = Describe("Terminal rendering", func() {
	It("renders line figures through asciigraph", func() {
		out, err := plot.RenderTerminal(sineFigure(), plot.ThemeDefault, plot.DefaultSize)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("sin(kx)"))
		Expect(out).To(ContainSubstring("┤"))
	})

	It("includes legends when asked", func() {
		fig := plot.New().Plot(array.Arange(10), array.Arange(10), plot.Label("my plot")).ShowLegend()
		out, err := plot.RenderASCII(fig, plot.ThemeDefault, plot.DefaultSize)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("my plot"))
	})

	It("renders scatter figures on a braille canvas", func() {
		fig := plot.New().
			Scatter([]float64{0, 0.5, 1}, []float64{0, 1, 0.25}).
			SetTitle("simple scatter plot")
		out, err := plot.RenderTerminal(fig, plot.ThemeMono, plot.Size{Width: 20, Height: 5})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("simple scatter plot"))
		Expect(out).To(ContainSubstring("1.00"))
		Expect(strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28ff })).To(BeTrue())
	})

	It("draws scatter shades that are not finite", func() {
		fig := plot.New().Scatter([]float64{0, 1}, []float64{0, 1}, plot.Shades([]float64{math.NaN(), 0.5}))
		_, err := plot.RenderScatter(fig, plot.ThemeDefault, plot.Size{Width: 20, Height: 5})
		Expect(err).NotTo(HaveOccurred())
		doc, err := plot.RenderSVG(fig, plot.ThemeDefault, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(doc, "<circle")).To(Equal(2))
	})

	It("propagates validation errors", func() {
		_, err := plot.RenderTerminal(plot.New(), plot.ThemeDefault, plot.DefaultSize)
		Expect(err).To(MatchError(plot.ErrEmptyFigure))
	})

	It("handles a series narrower than one grid step", func() {
		fig := plot.New().
			Plot([]float64{0, 100}, []float64{0, 1}).
			Plot([]float64{50, 50.01}, []float64{0.5, 0.5})
		_, err := plot.RenderASCII(fig, plot.ThemeDefault, plot.Size{Width: 10, Height: 4})
		Expect(err).NotTo(HaveOccurred())
	})
})

var _ = Describe("SVG rendering", func() {
	It("produces a document with one path per line series", func() {
		doc, err := plot.RenderSVG(sineFigure(), plot.ThemeSeaborn, 640, 480)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).To(HavePrefix("<?xml"))
		Expect(doc).To(HaveSuffix("</svg>\n"))
		Expect(strings.Count(doc, "<path")).To(Equal(3))
		Expect(doc).To(ContainSubstring("#eaeaf2"))
	})

	It("draws markers as circles and escapes text", func() {
		fig := plot.New().
			Scatter([]float64{0, 1}, []float64{0, 1}, plot.Sizes([]float64{36, 100})).
			SetTitle("a < b")
		doc, err := plot.RenderSVG(fig, plot.ThemeDefault, 0, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(strings.Count(doc, "<circle")).To(Equal(2))
		Expect(doc).To(ContainSubstring("a &lt; b"))
		Expect(doc).To(ContainSubstring(`r="5.0"`))
	})

	It("rejects sizes that leave no room inside the margins", func() {
		_, err := plot.RenderSVG(sineFigure(), plot.ThemeDefault, 50, 480)
		Expect(err).To(MatchError(plot.ErrSVGTooSmall))
		_, err = plot.RenderSVG(sineFigure(), plot.ThemeDefault, 640, plot.MinSVGHeight-1)
		Expect(err).To(MatchError(plot.ErrSVGTooSmall))
		_, err = plot.RenderSVG(sineFigure(), plot.ThemeDefault, plot.MinSVGWidth, plot.MinSVGHeight)
		Expect(err).NotTo(HaveOccurred())
	})

	It("writes the document to disk", func() {
		path := filepath.Join(GinkgoT().TempDir(), "fig.svg")
		Expect(plot.WriteSVG(path, sineFigure(), plot.ThemeDefault, 320, 240)).To(Succeed())
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("<svg"))
	})
})
