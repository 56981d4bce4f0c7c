// Package demo turns the teaching scratchpads into runnable demos.
//
// Each [Demo] writes to an [Env]: printed values go to Env.Out and figures
// go to Env.Sink, which decides whether they are drawn in the terminal,
// written as SVG, collected for the interactive viewer, or dropped.
//
//	reg := demo.NewRegistry()
//	d, _ := reg.Get("plotting")
//	env, _ := demo.NewEnv(os.Stdout, config.DefaultConfig())
//	env.Sink = &demo.TerminalSink{Out: os.Stdout, Size: plot.DefaultSize}
//	_ = d.Run(env)
package demo
