package trace

import (
	"slices"
)

// Recorder keeps every event in memory.
type Recorder struct {
	Events []Event
}

var _ Tracer = (*Recorder)(nil)

func (rec *Recorder) Trace(ev Event) {
	ev.Registers = slices.Clone(ev.Registers)
	rec.Events = append(rec.Events, ev)
}

// Kinds returns the kind of each recorded event, in order.
func (rec *Recorder) Kinds() (kinds []Kind) {
	for _, ev := range rec.Events {
		kinds = append(kinds, ev.Kind)
	}

	return
}

// Filter returns the recorded events of a single kind.
func (rec *Recorder) Filter(kind Kind) (events []Event) {
	for _, ev := range rec.Events {
		if ev.Kind == kind {
			events = append(events, ev)
		}
	}

	return
}

// Reset discards all recorded events.
func (rec *Recorder) Reset() {
	rec.Events = rec.Events[:0]
}
