// Package cpu implements the instruction interpreter of the simulator.
//
// The CPU consists of a register file of 32 signed general-purpose registers
// (R0-R31) and a data port, normally a write-through cache. Instructions are
// text lines in a small MIPS-like language:
//
//	ADD  Rd, Rs, Rt        ; Rd <- Rs + Rt
//	SUB  Rd, Rs, Rt        ; Rd <- Rs - Rt
//	LW   Rt, OFFSET(Rs)    ; Rt <- data[OFFSET]
//	SW   Rt, OFFSET(Rs)    ; data[OFFSET] <- Rt
//	BEQ  Rs, Rt, LABEL     ; observe a branch to LABEL if Rs == Rt
//
// Each line is decoded and executed on its own. There is no program counter:
// BEQ reports the branch but never changes which line runs next, and the base
// register of a memory operand is ignored unless Cpu.BaseOffset is set.
//
// The Loader reads instruction files, supporting comments, `.equ` constants
// and compile-time `$(...)` expressions.
package cpu
