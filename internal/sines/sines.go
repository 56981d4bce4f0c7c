package sines

import "math"

// Sinkx returns sin(k*x[i]) for every sample. The input is not modified.
func Sinkx(k float64, x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Sin(k * v)
	}
	return out
}

// Sine is a sine wave with a fixed wave number.
type Sine struct {
	K float64
}

func NewSine(k float64) Sine {
	return Sine{K: k}
}

func (s Sine) Eval(x []float64) []float64 {
	return Sinkx(s.K, x)
}
