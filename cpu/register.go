package cpu

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/mipsim/memory"
)

const (
	REGISTER_COUNT = 32 // Number of general-purpose registers.
)

// Register is a general-purpose register index.
type Register int

func (reg Register) String() string {
	return "R" + strconv.Itoa(int(reg))
}

// Valid returns true if reg names one of the registers.
func (reg Register) Valid() bool {
	return reg >= 0 && reg < REGISTER_COUNT
}

// ParseRegister translates a register name, R0 to R31.
func ParseRegister(name string) (reg Register, err error) {
	num, ok := strings.CutPrefix(name, "R")
	if ok {
		var n int
		n, err = strconv.Atoi(num)
		reg = Register(n)
		if err == nil && reg.Valid() && reg.String() == name {
			return
		}
	}

	reg = 0
	err = ErrRegisterUnknown
	return
}

// RegisterFile holds the value of every register.
type RegisterFile [REGISTER_COUNT]memory.Word

// Read returns the value of reg.
func (rf *RegisterFile) Read(reg Register) memory.Word {
	return rf[reg]
}

// Write sets the value of reg.
func (rf *RegisterFile) Write(reg Register, value memory.Word) {
	rf[reg] = value
}

// Get returns the value of a register by name.
func (rf *RegisterFile) Get(name string) (value memory.Word, err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	value = rf.Read(reg)
	return
}

// Set sets the value of a register by name.
func (rf *RegisterFile) Set(name string, value memory.Word) (err error) {
	reg, err := ParseRegister(name)
	if err != nil {
		return
	}

	rf.Write(reg, value)
	return
}

// Reset zeros all registers.
func (rf *RegisterFile) Reset() {
	clear(rf[:])
}

// Snapshot returns a copy of all register values, indexed by register.
func (rf *RegisterFile) Snapshot() []memory.Word {
	return slices.Clone(rf[:])
}

// String returns the register file, one register per line.
func (rf *RegisterFile) String() (text string) {
	for n, value := range rf {
		text += fmt.Sprintf("% 5s: %v\n", Register(n).String(), value)
	}

	return
}
