package demo

import (
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/array"
	"github.com/CorbinFoucart/PythonForMATLABUsers/internal/sines"
)

func runSines(e *Env) error {
	cfg := e.Config.Sines

	s := sines.NewSine(cfg.WaveNumber)
	e.Println(s.K)

	x := array.Linspace(cfg.Start, cfg.Stop, 5)
	e.Printf("x          = %s\n", array.Format(x))
	e.Printf("sinkx(%g, x) = %s\n", s.K, array.Format(s.Eval(x)))

	r := sines.NewRectangle(2, 3)
	sq := sines.NewSquare(4)
	e.Println(r)
	e.Printf(" area %g\n", r.Area())
	e.Println(sq)
	e.Printf(" area %g\n", sq.Area())
	e.Printf("total area %g\n", sines.TotalArea(r, sq))
	return nil
}
