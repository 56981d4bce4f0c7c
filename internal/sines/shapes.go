package sines

import "fmt"

type Shape interface {
	Area() float64
}

type Rectangle struct {
	A float64
	B float64
}

func NewRectangle(a, b float64) Rectangle {
	return Rectangle{A: a, B: b}
}

func (r Rectangle) Area() float64 {
	return r.A * r.B
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle\n sides %v x %v", r.A, r.B)
}

// Square is a Rectangle with equal sides. Area comes from the embedded
// Rectangle.
type Square struct {
	Rectangle
}

func NewSquare(s float64) Square {
	return Square{Rectangle{A: s, B: s}}
}

func (s Square) Side() float64 {
	return s.A
}

func (s Square) String() string {
	return fmt.Sprintf("Square\n side %v", s.A)
}

// TotalArea sums the areas of the given shapes.
func TotalArea(shapes ...Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
