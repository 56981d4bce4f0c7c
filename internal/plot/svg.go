package plot

import (
	"errors"
	"fmt"
	"html"
	"math"
	"os"
	"strings"
)

const (
	svgMarginLeft   = 60.0
	svgMarginRight  = 20.0
	svgMarginTop    = 40.0
	svgMarginBottom = 40.0
	svgGridLines    = 5

	// MinSVGWidth and MinSVGHeight leave at least a 20px plot area inside
	// the margins.
	MinSVGWidth  = int(svgMarginLeft+svgMarginRight) + 20
	MinSVGHeight = int(svgMarginTop+svgMarginBottom) + 20
)

var ErrSVGTooSmall = errors.New("plot: svg size smaller than its margins")

// RenderSVG draws the figure as a standalone SVG document of the given pixel
// size. Zero or negative sizes fall back to 640x480.
func RenderSVG(fig *Figure, theme Theme, width, height int) (string, error) {
	if err := fig.Validate(); err != nil {
		return "", err
	}
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	if width < MinSVGWidth || height < MinSVGHeight {
		return "", fmt.Errorf("%w: %dx%d (minimum %dx%d)", ErrSVGTooSmall, width, height, MinSVGWidth, MinSVGHeight)
	}

	xMin, xMax, yMin, yMax := fig.Bounds()

	// 5% padding like matplotlib's default margins
	padX := (xMax - xMin) * 0.05
	padY := (yMax - yMin) * 0.05
	xMin, xMax = xMin-padX, xMax+padX
	yMin, yMax = yMin-padY, yMax+padY

	plotW := float64(width) - svgMarginLeft - svgMarginRight
	plotH := float64(height) - svgMarginTop - svgMarginBottom

	sx := func(x float64) float64 {
		return svgMarginLeft + (x-xMin)/(xMax-xMin)*plotW
	}
	sy := func(y float64) float64 {
		return svgMarginTop + plotH - (y-yMin)/(yMax-yMin)*plotH
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="11">
<rect width="100%%" height="100%%" fill="%s"/>
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, width, height, width, height, theme.Background,
		svgMarginLeft, svgMarginTop, plotW, plotH, theme.PlotArea))

	// ticks, and grid lines for themes that want them
	for i := 0; i <= svgGridLines; i++ {
		f := float64(i) / svgGridLines
		xv := xMin + f*(xMax-xMin)
		yv := yMin + f*(yMax-yMin)
		gx, gy := sx(xv), sy(yv)
		if theme.GridLines {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ffffff" stroke-width="1"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#ffffff" stroke-width="1"/>
`, gx, svgMarginTop, gx, svgMarginTop+plotH, svgMarginLeft, gy, svgMarginLeft+plotW, gy))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" fill="%s">%s</text>
<text x="%.1f" y="%.1f" text-anchor="end" fill="%s">%s</text>
`, gx, svgMarginTop+plotH+15, theme.Text, tickLabel(xv),
			svgMarginLeft-6, gy+4, theme.Text, tickLabel(yv)))
	}

	if !theme.GridLines {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s"/>
`, svgMarginLeft, svgMarginTop, plotW, plotH, theme.Axis))
	}

	for i, s := range fig.Series {
		sw := theme.SwatchFor(s, i)
		if s.Style == Marker {
			writeMarkers(&sb, s, theme, sw, sx, sy)
			continue
		}
		writePath(&sb, s, sw, sx, sy)
	}

	if fig.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" font-size="14" fill="%s">%s</text>
`, svgMarginLeft+plotW/2, svgMarginTop-14, theme.Text, html.EscapeString(fig.Title)))
	}
	if fig.YLabel != "" {
		cx, cy := 14.0, svgMarginTop+plotH/2
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" transform="rotate(-90 %.1f %.1f)" fill="%s">%s</text>
`, cx, cy, cx, cy, theme.Text, html.EscapeString(fig.YLabel)))
	}
	if fig.XLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" fill="%s">%s</text>
`, svgMarginLeft+plotW/2, float64(height)-6, theme.Text, html.EscapeString(fig.XLabel)))
	}
	if fig.Legend {
		writeLegend(&sb, fig, theme, svgMarginLeft+plotW-130, svgMarginTop+10)
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}

// WriteSVG renders the figure and writes it to path.
func WriteSVG(path string, fig *Figure, theme Theme, width, height int) error {
	doc, err := RenderSVG(fig, theme, width, height)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(doc), 0644)
}

func writePath(sb *strings.Builder, s Series, sw Swatch, sx, sy func(float64) float64) {
	var d strings.Builder
	pen := false
	for j := range s.X {
		if !finite(s.X[j]) || !finite(s.Y[j]) {
			pen = false
			continue
		}
		if d.Len() > 0 {
			d.WriteByte(' ')
		}
		cmd := "L"
		if !pen {
			cmd = "M"
		}
		d.WriteString(fmt.Sprintf("%s%.1f,%.1f", cmd, sx(s.X[j]), sy(s.Y[j])))
		pen = true
	}
	if d.Len() == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" stroke-opacity="%.2f" d="%s"/>
`, sw.Hex, opacity(s.Alpha), d.String()))
}

func writeMarkers(sb *strings.Builder, s Series, theme Theme, sw Swatch, sx, sy func(float64) float64) {
	for j := range s.X {
		if !finite(s.X[j]) || !finite(s.Y[j]) {
			continue
		}
		fill := sw.Hex
		if j < len(s.Shades) {
			fill = theme.Shade(s.Shades[j]).Hex
		}
		// marker size is an area in points squared
		r := math.Sqrt(s.SizeAt(j)) / 2
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" fill-opacity="%.2f"/>
`, sx(s.X[j]), sy(s.Y[j]), r, fill, opacity(s.Alpha)))
	}
}

func writeLegend(sb *strings.Builder, fig *Figure, theme Theme, x, y float64) {
	for i, s := range fig.Series {
		sw := theme.SwatchFor(s, i)
		ly := y + float64(i)*16
		if s.Style == Marker {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, x+10, ly, sw.Hex))
		} else {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, x, ly, x+20, ly, sw.Hex))
		}
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s">%s</text>
`, x+26, ly+4, theme.Text, html.EscapeString(seriesLabel(s, i))))
	}
}

func opacity(a float64) float64 {
	if a <= 0 || a > 1 {
		return 1
	}
	return a
}

func tickLabel(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return fmt.Sprintf("%.2g", v)
}
