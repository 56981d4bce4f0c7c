package plot_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/plot"
)

var _ = Describe("Figure", func() {
	It("appends series in order with options applied", func() {
		fig := plot.New().
			Plot([]float64{0, 1}, []float64{0, 2}, plot.Label("double")).
			Scatter([]float64{0, 1}, []float64{1, 1}, plot.Color("k"))

		Expect(fig.Series).To(HaveLen(2))
		Expect(fig.Series[0].Label).To(Equal("double"))
		Expect(fig.Series[0].Style).To(Equal(plot.Line))
		Expect(fig.Series[1].Style).To(Equal(plot.Marker))
		Expect(fig.Series[1].Color).To(Equal("k"))
		Expect(fig.HasMarkers()).To(BeTrue())
	})

	DescribeTable("format strings",
		func(f string, style plot.Style, color string) {
			fig := plot.New().Plot([]float64{1}, []float64{1}, plot.Format(f))
			Expect(fig.Series[0].Style).To(Equal(style))
			Expect(fig.Series[0].Color).To(Equal(color))
		},
		Entry("blue circles", "bo", plot.Marker, "b"),
		Entry("black line", "k", plot.Line, "k"),
		Entry("red dashes", "r-", plot.Line, "r"),
		Entry("points only", ".", plot.Marker, ""),
		Entry("unknown letters ignored", "zq", plot.Line, ""),
	)

	Describe("Validate", func() {
		It("rejects an empty figure", func() {
			Expect(plot.New().Validate()).To(MatchError(plot.ErrEmptyFigure))
		})

		It("rejects a figure whose series are all empty", func() {
			fig := plot.New().Plot(nil, nil)
			Expect(fig.Validate()).To(MatchError(plot.ErrEmptyFigure))
		})

		It("rejects mismatched lengths", func() {
			fig := plot.New().Plot([]float64{1, 2}, []float64{1})
			Expect(fig.Validate()).To(MatchError(plot.ErrLengthMismatch))
		})
	})

	Describe("Bounds", func() {
		It("covers every finite point", func() {
			fig := plot.New().
				Plot([]float64{0, 5}, []float64{-1, 1}).
				Plot([]float64{-2, math.NaN()}, []float64{3, 100})

			xMin, xMax, yMin, yMax := fig.Bounds()
			Expect(xMin).To(Equal(-2.0))
			Expect(xMax).To(Equal(5.0))
			Expect(yMin).To(Equal(-1.0))
			Expect(yMax).To(Equal(3.0))
		})

		It("widens a flat series", func() {
			fig := plot.New().Plot([]float64{1, 2}, []float64{4, 4})
			_, _, yMin, yMax := fig.Bounds()
			Expect(yMin).To(BeNumerically("<", 4))
			Expect(yMax).To(BeNumerically(">", 4))
		})
	})
})

var _ = Describe("Themes", func() {
	It("looks themes up by name", func() {
		th, err := plot.GetTheme("seaborn")
		Expect(err).NotTo(HaveOccurred())
		Expect(th.GridLines).To(BeTrue())

		_, err = plot.GetTheme("solarized")
		Expect(err).To(MatchError(plot.ErrUnknownTheme))
	})

	It("cycles through every theme", func() {
		name := plot.Themes[0].Name
		seen := map[string]bool{}
		for range plot.Themes {
			seen[name] = true
			name = plot.NextTheme(name).Name
		}
		Expect(seen).To(HaveLen(len(plot.Themes)))
		Expect(name).To(Equal(plot.Themes[0].Name))
	})

	It("prefers a series' own color over the palette", func() {
		th := plot.ThemeDefault
		Expect(th.SwatchFor(plot.Series{Color: "k"}, 3).Hex).To(Equal("#000000"))
		Expect(th.SwatchFor(plot.Series{}, 1)).To(Equal(th.Palette[1]))
		Expect(th.SwatchFor(plot.Series{}, len(th.Palette))).To(Equal(th.Palette[0]))
	})

	It("clamps shades to the palette ends", func() {
		th := plot.ThemeDefault
		Expect(th.Shade(-1)).To(Equal(th.Palette[0]))
		Expect(th.Shade(2)).To(Equal(th.Palette[len(th.Palette)-1]))
		Expect(th.Shade(math.NaN())).To(Equal(th.Palette[0]))
		Expect(th.Shade(math.Inf(1))).To(Equal(th.Palette[len(th.Palette)-1]))
	})
})
