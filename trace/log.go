package trace

import (
	"log"
	"strconv"
	"strings"

	"github.com/ezrec/mipsim/memory"
	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

// LogTracer prints events as console trace lines.
type LogTracer struct {
	Logger *log.Logger
}

var _ Tracer = (*LogTracer)(nil)

// NewLogTracer creates a tracer printing to logger.
func NewLogTracer(logger *log.Logger) *LogTracer {
	return &LogTracer{Logger: logger}
}

func (lt *LogTracer) Trace(ev Event) {
	lt.Logger.Print(Format(ev))
}

// Format renders an event as a single trace line.
func Format(ev Event) (text string) {
	addr := strconv.FormatUint(uint64(ev.Address), 10)
	value := strconv.FormatInt(int64(ev.Value), 10)

	switch ev.Kind {
	case KIND_START:
		text = f("[Simulator] Starting execution...")
	case KIND_LOAD:
		if ev.Label == LOAD_MEMORY {
			text = f("[MemoryBus] Loading memory from %v...", ev.Text)
		} else {
			text = f("[InstructionParser] Loading instructions from %v...", ev.Text)
		}
	case KIND_EXECUTE:
		text = f("[CPU] Executing: %v", ev.Text)
	case KIND_HIT:
		text = f("[Cache] Cache Hit! Address %v -> %v", addr, value)
	case KIND_MISS:
		text = f("[Cache] Cache Miss! Fetching from MemoryBus.")
	case KIND_WRITE:
		text = f("[Cache] Writing to cache & MemoryBus: %v -> %v", addr, value)
	case KIND_BRANCH:
		text = f("[CPU] Branching to %v", ev.Label)
	case KIND_REGISTERS:
		text = f("[CPU] Registers: %v", FormatRegisters(ev.Registers))
	case KIND_STOP:
		text = f("[Simulator] Execution completed.")
	default:
		text = ev.Kind.String()
	}

	return
}

// FormatRegisters renders a register snapshot as `{'R0': 0, 'R1': 0, ...}`.
func FormatRegisters(regs []memory.Word) string {
	var sb strings.Builder

	sb.WriteByte('{')
	for n, value := range regs {
		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("'R")
		sb.WriteString(strconv.Itoa(n))
		sb.WriteString("': ")
		sb.WriteString(strconv.FormatInt(int64(value), 10))
	}
	sb.WriteByte('}')

	return sb.String()
}
