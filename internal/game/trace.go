package game

// Tracer receives diagnostic output from the board: removal counts, move
// decisions and per-turn snapshots. It exists so the core carries no global
// logging state; game outcomes never depend on what a Tracer does.
type Tracer interface {
	Tracef(format string, args ...interface{})
}

type nopTracer struct{}

func (nopTracer) Tracef(string, ...interface{}) {}

// NopTracer discards all trace output. It is the default sink.
var NopTracer Tracer = nopTracer{}
