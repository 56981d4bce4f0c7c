package demo

import (
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/array"
)

func runBasics(e *Env) error {
	e.Println("meow")

	z := array.Zeros[float64](3)

	// mixed-type list
	myList := []any{2, 4, "banana"}
	for _, item := range myList {
		e.Println(item)
	}

	// indexing into the zeros array, like z(i) = i with one-based loops
	idx, err := array.Range(0, 3, 1)
	if err != nil {
		return err
	}
	for _, i := range idx {
		z[i] = float64(i)
	}
	e.Println(array.Format(z))

	odd, err := array.Range(1, 4, 2)
	if err != nil {
		return err
	}
	for _, elm := range odd {
		e.Println(elm)
	}

	a := array.Linspace(0, 10, 5)
	e.Println(array.Format(a))

	e.Println(array.Format(array.Zeros[float64](10)))
	e.Println(array.Format(array.Zeros[int](10)))
	e.Println(array.Format(array.Zeros[bool](10)))
	return nil
}
