// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mipsim/cache"
	"github.com/ezrec/mipsim/cpu"
	"github.com/ezrec/mipsim/internal"
	"github.com/ezrec/mipsim/memory"
	"github.com/ezrec/mipsim/trace"
)

const (
	CACHE_LINE_WORDS = 1 // Words per cache line.
)

var _emulator_defines = map[string]string{
	"CACHE_LINE_WORDS": fmt.Sprintf("%v", CACHE_LINE_WORDS),
}

// Statistics is a summary of a run.
type Statistics struct {
	Executed     int              // Instructions executed.
	Branches     int              // Branches observed.
	Cache        cache.Statistics // Cache access counters.
	MemoryReads  int              // Backing memory reads.
	MemoryWrites int              // Backing memory writes.
}

// Emulator state. CPU + cache + backing memory.
type Emulator struct {
	Verbose  bool           // If set, enables verbose logging.
	*cpu.Cpu                // Reference to the CPU simulation.
	Memory   *memory.Memory // Backing memory.
	Cache    *cache.Cache   // Data cache, between the CPU and Memory.
	Program  *cpu.Program   // Reference to the currently loaded program listing.

	tracer trace.Tracer // Caller's trace sink.
	index  int          // Index of the next program line.
	lineNo int          // Source line of the executing instruction.
	err    error        // Terminal error, if any.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Memory:  memory.NewMemory(),
		Program: &cpu.Program{},
	}

	emu.Cache = cache.NewCache(emu.Memory)
	emu.Cpu = cpu.NewCpu(emu.Cache)
	emu.SetTracer(nil)

	return
}

// SetTracer routes the trace events of every component to tracer.
// Events are stamped with the source line of the executing instruction.
// A nil tracer discards all events.
func (emu *Emulator) SetTracer(tracer trace.Tracer) {
	if tracer == nil {
		tracer = trace.Discard
	}
	emu.tracer = tracer

	stamped := trace.TracerFunc(func(ev trace.Event) {
		if ev.LineNo == 0 {
			ev.LineNo = emu.lineNo
		}
		emu.tracer.Trace(ev)
	})

	emu.Cpu.Tracer = stamped
	emu.Cache.Tracer = stamped
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// LoadImage adds a memory image to the backing memory.
// The name is used for tracing only.
func (emu *Emulator) LoadImage(name string, input io.Reader) (err error) {
	emu.tracer.Trace(trace.Event{Kind: trace.KIND_LOAD, Text: name, Label: trace.LOAD_MEMORY})

	err = emu.Memory.Unmarshal(input)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %v: %v words", name, emu.Memory.Len())
	}

	return
}

// Load parses a program, and prepares it for execution.
// The name is used for tracing only.
func (emu *Emulator) Load(name string, input io.Reader) (err error) {
	emu.tracer.Trace(trace.Event{Kind: trace.KIND_LOAD, Text: name, Label: trace.LOAD_PROGRAM})

	ld := &cpu.Loader{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		ld.Predefine(key, value)
	}

	prog, err := ld.Parse(input)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %v: %v lines", name, prog.Len())
	}

	emu.Program = prog
	emu.Reset()

	return
}

// Reset the emulator to the start of the program.
// - Zeros all registers and counters.
// - Empties the cache.
// - Backing memory content is retained.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cache.Verbose = emu.Verbose
	emu.Memory.Verbose = emu.Verbose

	emu.Cpu.Reset()
	emu.Cache.Reset()
	emu.Memory.Reads = 0
	emu.Memory.Writes = 0

	emu.index = 0
	emu.lineNo = 0
	emu.err = nil
}

// LineNo returns the source line number of the last executed instruction.
func (emu *Emulator) LineNo() int {
	return emu.lineNo
}

// Err returns the error that stopped execution, if any.
func (emu *Emulator) Err() error {
	return emu.err
}

// Tick executes the next program line.
// Once an error is returned, every later Tick returns it again until Reset.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.err != nil {
		err = emu.err
		return
	}

	if emu.Program == nil {
		err = ErrNoProgram
		return
	}

	emu.Cpu.Verbose = emu.Verbose

	if emu.index >= emu.Program.Len() {
		done = true
		return
	}

	line := emu.Program.Lines[emu.index]
	emu.lineNo = line.LineNo

	err = emu.Cpu.Execute(line.Text)
	if err != nil {
		err = &ErrRuntime{LineNo: line.LineNo, Err: err}
		emu.err = err
		return
	}

	emu.index++
	done = emu.index >= emu.Program.Len()

	return
}

// Run executes the program from the current position to completion.
// The first error stops the run.
func (emu *Emulator) Run() (err error) {
	emu.tracer.Trace(trace.Event{Kind: trace.KIND_START})

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			if emu.Verbose {
				log.Printf("emulator: %v", err)
			}
			return
		}
	}

	emu.tracer.Trace(trace.Event{Kind: trace.KIND_STOP})

	return
}

// Stats returns the counters of the current run.
func (emu *Emulator) Stats() (stats Statistics) {
	stats = Statistics{
		Executed:     emu.Cpu.Executed,
		Branches:     emu.Cpu.Branches,
		Cache:        emu.Cache.Stats(),
		MemoryReads:  emu.Memory.Reads,
		MemoryWrites: emu.Memory.Writes,
	}

	return
}

// State is a snapshot of the emulator, for diagnostic dumps.
type State struct {
	LineNo    int
	Registers map[string]memory.Word
	Cache     []cache.Entry
	Memory    map[memory.Address]memory.Word
	Stats     Statistics
}

// State returns a snapshot of the emulator.
// Only non-zero registers are included.
func (emu *Emulator) State() (state State) {
	state = State{
		LineNo:    emu.lineNo,
		Registers: map[string]memory.Word{},
		Memory:    maps.Collect(emu.Memory.All()),
		Stats:     emu.Stats(),
	}

	for n, value := range emu.Cpu.Register {
		if value != 0 {
			state.Registers[cpu.Register(n).String()] = value
		}
	}

	for entry := range emu.Cache.All() {
		state.Cache = append(state.Cache, entry)
	}

	return
}
