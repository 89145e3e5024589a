package cpu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/mipsim/memory"
)

// Instruction is a decoded instruction line.
type Instruction struct {
	Op     Op
	Text   string         // Source text.
	Rd     Register       // ADD, SUB: destination.
	Rs     Register       // ADD, SUB, BEQ: first source. LW, SW: base.
	Rt     Register       // ADD, SUB, BEQ: second source. LW, SW: data.
	Offset memory.Address // LW, SW: memory offset.
	Label  string         // BEQ: branch target.
}

// String returns the canonical assembly form of the instruction.
func (inst Instruction) String() string {
	switch inst.Op {
	case OP_ADD, OP_SUB:
		return fmt.Sprintf("%v %v, %v, %v", inst.Op, inst.Rd, inst.Rs, inst.Rt)
	case OP_LW, OP_SW:
		return fmt.Sprintf("%v %v, %d(%v)", inst.Op, inst.Rt, uint64(inst.Offset), inst.Rs)
	case OP_BEQ:
		return fmt.Sprintf("%v %v, %v, %v", inst.Op, inst.Rs, inst.Rt, inst.Label)
	}
	return inst.Op.String()
}

// decodeRegister decodes a register operand, ignoring surrounding commas.
func decodeRegister(word string) (reg Register, token string, err error) {
	token = strings.Trim(word, ",")
	reg, err = ParseRegister(token)
	return
}

// decodeMemory decodes an `OFFSET(base)` operand.
func decodeMemory(word string) (offset memory.Address, base Register, token string, err error) {
	token = strings.Trim(word, ",")

	text, ok := strings.CutSuffix(token, ")")
	if !ok {
		err = ErrOperandMalformed
		return
	}

	off, reg, ok := strings.Cut(text, "(")
	if !ok {
		err = ErrOperandMalformed
		return
	}

	i64, err := strconv.ParseInt(off, 10, 64)
	if err != nil || i64 < 0 {
		err = ErrOperandMalformed
		return
	}
	offset = memory.Address(i64)

	base, err = ParseRegister(reg)
	if err != nil {
		token = reg
	}

	return
}

// Decode decodes one instruction line.
// Decoding is complete before anything executes, so an error here has no
// side effects.
func Decode(text string) (inst Instruction, err error) {
	var token string

	defer func() {
		if err != nil {
			err = &ErrDecode{Text: text, Token: token, Err: err}
			inst = Instruction{}
		}
	}()

	inst.Text = text

	words := strings.Fields(text)
	if len(words) == 0 {
		err = ErrLineMalformed
		return
	}

	op, ok := opMap[words[0]]
	if !ok {
		token = words[0]
		err = ErrOpcodeUnknown
		return
	}
	inst.Op = op

	args := words[1:]
	if len(args) != op.Operands() {
		err = ErrLineMalformed
		return
	}

	switch op {
	case OP_ADD, OP_SUB:
		out := [3](*Register){&inst.Rd, &inst.Rs, &inst.Rt}
		for n, word := range args {
			*out[n], token, err = decodeRegister(word)
			if err != nil {
				return
			}
		}
	case OP_LW, OP_SW:
		inst.Rt, token, err = decodeRegister(args[0])
		if err != nil {
			return
		}
		inst.Offset, inst.Rs, token, err = decodeMemory(args[1])
		if err != nil {
			return
		}
	case OP_BEQ:
		out := [2](*Register){&inst.Rs, &inst.Rt}
		for n, word := range args[:2] {
			*out[n], token, err = decodeRegister(word)
			if err != nil {
				return
			}
		}
		inst.Label = args[2]
	}

	token = ""
	return
}
