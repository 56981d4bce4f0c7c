// Package funcs collects the function-definition patterns the demos walk
// through: plain returns, optional arguments, multiple returns, and how
// slices behave when passed to a function.
package funcs

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Increment returns x + 1.
func Increment[T Number](x T) T {
	return x + 1
}

// IncrementBoth increments x and, when present, the optional value.
// A nil optional comes back nil. The pointed-to value is left untouched.
func IncrementBoth[T Number](x T, optional *T) (T, *T) {
	if optional != nil {
		v := *optional + 1
		optional = &v
	}
	return x + 1, optional
}

// IncrementList computes xs[0]+1 and throws it away, so the caller's slice
// is unchanged.
func IncrementList[T Number](xs []T) {
	if len(xs) == 0 {
		return
	}
	_ = xs[0] + 1
}

// IncrementListInPlace is the version that does write back.
func IncrementListInPlace[T Number](xs []T) {
	for i := range xs {
		xs[i]++
	}
}

func ReturnTwoThings() (int, int) {
	return 0, 1
}
