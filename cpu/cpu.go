// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/mipsim/memory"
	"github.com/ezrec/mipsim/trace"
)

const (
	WORD_BITS = 64 // Width of a register or memory word.
)

var _cpu_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%v", REGISTER_COUNT),
	"WORD_BITS":      fmt.Sprintf("%v", WORD_BITS),
}

// DataPort is the CPU's view of data memory.
type DataPort interface {
	Read(addr memory.Address) memory.Word
	Write(addr memory.Address, value memory.Word)
}

// Cpu is the simulation context for the instruction interpreter.
type Cpu struct {
	Verbose    bool // Set to enable verbose logging.
	BaseOffset bool // Set to add the base register to LW/SW offsets.

	Tracer   trace.Tracer // Receives execute, branch and register events.
	Register RegisterFile // Register bank.
	Data     DataPort     // Data memory, normally a cache.

	Executed int // Instructions executed.
	Branches int // Branches observed.
}

// NewCpu creates a new CPU reading and writing data through port.
func NewCpu(port DataPort) (cpu *Cpu) {
	cpu = &Cpu{
		Tracer: trace.Discard,
		Data:   port,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("% 5s: %v\n", "exec", cpu.Executed)
	text += fmt.Sprintf("% 5s: %v\n", "beq", cpu.Branches)
	text += cpu.Register.String()

	return
}

// Reset the CPU state.
// - Zeros all registers.
// - Zeros statistics counters.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Executed = 0
	cpu.Branches = 0
}

// Execute decodes and executes a single instruction line.
func (cpu *Cpu) Execute(text string) (err error) {
	cpu.Tracer.Trace(trace.Event{Kind: trace.KIND_EXECUTE, Text: text})

	inst, err := Decode(text)
	if err != nil {
		return
	}

	err = cpu.Step(inst)

	return
}

// address computes the data address of a LW or SW.
func (cpu *Cpu) address(inst Instruction) (addr memory.Address, err error) {
	addr = inst.Offset
	if !cpu.BaseOffset {
		return
	}

	sum := int64(inst.Offset) + int64(cpu.Register.Read(inst.Rs))
	if sum < 0 {
		err = &ErrDecode{Text: inst.Text, Token: inst.Rs.String(), Err: ErrAddressNegative}
		return
	}

	addr = memory.Address(sum)
	return
}

// Step executes a decoded instruction.
func (cpu *Cpu) Step(inst Instruction) (err error) {
	reg := &cpu.Register

	if cpu.Verbose {
		log.Printf("cpu: %v", inst)
	}

	switch inst.Op {
	case OP_ADD:
		reg.Write(inst.Rd, reg.Read(inst.Rs)+reg.Read(inst.Rt))
	case OP_SUB:
		reg.Write(inst.Rd, reg.Read(inst.Rs)-reg.Read(inst.Rt))
	case OP_LW:
		var addr memory.Address
		addr, err = cpu.address(inst)
		if err != nil {
			return
		}
		reg.Write(inst.Rt, cpu.Data.Read(addr))
	case OP_SW:
		var addr memory.Address
		addr, err = cpu.address(inst)
		if err != nil {
			return
		}
		cpu.Data.Write(addr, reg.Read(inst.Rt))
	case OP_BEQ:
		if reg.Read(inst.Rs) == reg.Read(inst.Rt) {
			cpu.Branches++
			if cpu.Verbose {
				log.Printf("cpu: branch to %v observed", inst.Label)
			}
			cpu.Tracer.Trace(trace.Event{Kind: trace.KIND_BRANCH, Text: inst.Text, Label: inst.Label})
		}
	default:
		err = &ErrDecode{Text: inst.Text, Token: inst.Op.String(), Err: ErrOpcodeUnknown}
		return
	}

	cpu.Executed++
	cpu.Tracer.Trace(trace.Event{Kind: trace.KIND_REGISTERS, Text: inst.Text, Registers: reg.Snapshot()})

	return
}
