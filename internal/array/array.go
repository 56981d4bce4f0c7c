// Package array provides the handful of numpy-style constructors the demos
// need: zeros, ranges and evenly spaced samples.
package array

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrZeroStep = errors.New("array: range step must not be zero")

type Number interface {
	constraints.Integer | constraints.Float
}

// Element is anything Zeros can allocate.
type Element interface {
	Number | ~bool
}

func Zeros[T Element](n int) []T {
	if n < 0 {
		n = 0
	}
	return make([]T, n)
}

// Arange returns 0, 1, ..., n-1.
func Arange(n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Range mirrors a half-open integer range with a step. Negative steps count
// down from start while the value stays above stop.
func Range(start, stop, step int) ([]int, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	var out []int
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, i)
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

// Linspace returns n evenly spaced samples over [start, stop], both ends
// included.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// pin the endpoint against accumulated rounding
	out[n-1] = stop
	return out
}

func Scale[T Number](xs []T, c T) []T {
	out := make([]T, len(xs))
	for i, v := range xs {
		out[i] = v * c
	}
	return out
}

func Map(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = f(v)
	}
	return out
}

// MinMax returns the smallest and largest value. Both are zero for an empty
// slice.
func MinMax(xs []float64) (lo, hi float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	lo, hi = xs[0], xs[0]
	for _, v := range xs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
