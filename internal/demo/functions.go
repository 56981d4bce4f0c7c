package demo

import (
	"fmt"

	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/funcs"
)

func runFunctions(e *Env) error {
	a := 1
	b := funcs.Increment(a)
	e.Printf("increment(%d) = %d, a is still %d\n", a, b, a)

	myList := []int{20, 40}
	funcs.IncrementList(myList)
	e.Printf("after IncrementList: %v\n", myList)
	funcs.IncrementListInPlace(myList)
	e.Printf("after IncrementListInPlace: %v\n", myList)

	x, _ := funcs.ReturnTwoThings()
	e.Println(x)

	one := 1
	e.Println(formatPair(funcs.IncrementBoth(0, &one)))
	e.Println(formatPair(funcs.IncrementBoth[int](0, nil)))
	return nil
}

// formatPair prints an (x, optional) result with a missing optional as None.
func formatPair(x int, opt *int) string {
	if opt == nil {
		return fmt.Sprintf("(%d, None)", x)
	}
	return fmt.Sprintf("(%d, %d)", x, *opt)
}
