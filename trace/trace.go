// Package trace carries the observable event stream of a simulation run.
//
// Every component reports what it does as an Event to a Tracer. The Tracer is
// injected, so the same run can be printed to a console, collected in memory
// for tests, or recorded in a database.
package trace

import (
	"github.com/ezrec/mipsim/memory"
)

// Kind is the type of a trace event.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_START     = Kind(0) // start
	KIND_LOAD      = Kind(1) // load
	KIND_EXECUTE   = Kind(2) // execute
	KIND_HIT       = Kind(3) // hit
	KIND_MISS      = Kind(4) // miss
	KIND_WRITE     = Kind(5) // write
	KIND_BRANCH    = Kind(6) // branch
	KIND_REGISTERS = Kind(7) // registers
	KIND_STOP      = Kind(8) // stop
)

// Sources named by KIND_LOAD events.
const (
	LOAD_MEMORY  = "memory"
	LOAD_PROGRAM = "program"
)

// Event is a single observation.
type Event struct {
	Kind      Kind
	LineNo    int            // Source line, if known.
	Text      string         // Instruction text, or the loaded source name.
	Address   memory.Address // Cache events.
	Value     memory.Word    // Cache events.
	Label     string         // Branch target, or the source of a KIND_LOAD.
	Registers []memory.Word  // Register snapshot.
}

// Tracer receives events.
type Tracer interface {
	Trace(ev Event)
}

// TracerFunc adapts a function to a Tracer.
type TracerFunc func(ev Event)

func (fn TracerFunc) Trace(ev Event) {
	fn(ev)
}

// Discard drops all events.
var Discard Tracer = TracerFunc(func(Event) {})

type multi []Tracer

func (m multi) Trace(ev Event) {
	for _, tracer := range m {
		tracer.Trace(ev)
	}
}

// Multi returns a tracer that duplicates events to all tracers, in order.
func Multi(tracers ...Tracer) Tracer {
	var all multi
	for _, tracer := range tracers {
		if tracer == nil {
			continue
		}
		if m, ok := tracer.(multi); ok {
			all = append(all, m...)
		} else {
			all = append(all, tracer)
		}
	}

	switch len(all) {
	case 0:
		return Discard
	case 1:
		return all[0]
	}

	return all
}
