// Package sines holds the small numeric helpers the demos import:
//
//   - [Sinkx]: elementwise sin(k*x) over a sample slice
//   - [Sine]: a wave number bundled with its evaluation
//   - [Shape], [Rectangle], [Square]: area-bearing value types
//
// Nothing here validates its input. Negative or zero dimensions are accepted
// and produce whatever the arithmetic gives.
package sines
