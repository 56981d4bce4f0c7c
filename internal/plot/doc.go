// Package plot builds small matplotlib-style figures and renders them.
//
// A [Figure] holds an ordered list of [Series], each either a line or a set
// of markers. Figures are drawn by one of three backends:
//
//   - [RenderASCII]: line charts through asciigraph
//   - [RenderScatter]: markers and lines on a Braille [Canvas]
//   - [RenderSVG]: a standalone SVG document
//
// [RenderTerminal] picks between the first two based on the series styles.
//
// # Format strings
//
// Series accept matplotlib's short format strings through [Format]:
//
//	fig.Plot(x, y, plot.Format("bo")) // blue circles
//	fig.Plot(x, y, plot.Format("k"))  // black line
package plot
