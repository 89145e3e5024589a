// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"iter"
	"log"

	"github.com/ezrec/mipsim/internal"
)

// Address identifies one memory word.
type Address uint64

// Word is the signed value stored at an Address.
type Word int64

// Memory is the authoritative address to word store.
type Memory struct {
	Verbose bool // If set, enables verbose logging.

	Data map[Address]Word // Stored words.

	Reads  int // Read access counter.
	Writes int // Write access counter.
}

// NewMemory creates an empty memory.
func NewMemory() (mem *Memory) {
	mem = &Memory{
		Data: make(map[Address]Word),
	}

	return
}

// Reset discards all content and zeros the access counters.
func (mem *Memory) Reset() {
	clear(mem.Data)
	mem.Reads = 0
	mem.Writes = 0
}

// Read returns the word at addr, or 0 if addr was never written.
func (mem *Memory) Read(addr Address) (value Word) {
	mem.Reads++
	value = mem.Data[addr]

	if mem.Verbose {
		log.Printf("memory: read %#x -> %v", uint64(addr), value)
	}

	return
}

// Write stores value at addr.
func (mem *Memory) Write(addr Address, value Word) {
	if mem.Data == nil {
		mem.Data = make(map[Address]Word)
	}

	mem.Writes++
	mem.Data[addr] = value

	if mem.Verbose {
		log.Printf("memory: write %#x <- %v", uint64(addr), value)
	}
}

// Len returns the number of stored words.
func (mem *Memory) Len() int {
	return len(mem.Data)
}

// All iterates over the stored words in address order.
func (mem *Memory) All() iter.Seq2[Address, Word] {
	return internal.IterSorted(mem.Data)
}
