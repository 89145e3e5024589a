package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		inst Instruction
	}){
		{"ADD R3, R1, R2", Instruction{Op: OP_ADD, Rd: 3, Rs: 1, Rt: 2}},
		{"SUB R4, R2, R1", Instruction{Op: OP_SUB, Rd: 4, Rs: 2, Rt: 1}},
		{"ADD R3,R1, R2", Instruction{}}, // two words glued together
		{"  ADD   R31 ,R0,   R7  ", Instruction{Op: OP_ADD, Rd: 31, Rs: 0, Rt: 7}},
		{"LW R6, 100(R0)", Instruction{Op: OP_LW, Rt: 6, Offset: 100, Rs: 0}},
		{"SW R5, 100(R0)", Instruction{Op: OP_SW, Rt: 5, Offset: 100, Rs: 0}},
		{"LW R1, 0(R9),", Instruction{Op: OP_LW, Rt: 1, Offset: 0, Rs: 9}},
		{"SW R2, +8(R3)", Instruction{Op: OP_SW, Rt: 2, Offset: 8, Rs: 3}},
		{"BEQ R1, R2, LABEL", Instruction{Op: OP_BEQ, Rs: 1, Rt: 2, Label: "LABEL"}},
		{"BEQ R1, R2, end,", Instruction{Op: OP_BEQ, Rs: 1, Rt: 2, Label: "end,"}},
	}

	for _, entry := range table {
		inst, err := Decode(entry.text)
		if entry.inst == (Instruction{}) {
			assert.Error(err, entry.text)
			continue
		}
		if !assert.NoError(err, entry.text) {
			continue
		}
		entry.inst.Text = entry.text
		assert.Equal(entry.inst, inst, entry.text)
	}
}

func TestDecode_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		err   error
		token string
	}){
		{"", ErrLineMalformed, ""},
		{"   ", ErrLineMalformed, ""},
		{"MUL R1, R2, R3", ErrOpcodeUnknown, "MUL"},
		{"add R1, R2, R3", ErrOpcodeUnknown, "add"},
		{"J LABEL", ErrOpcodeUnknown, "J"},
		{"ADD R1, R2", ErrLineMalformed, ""},
		{"ADD R1, R2, R3, R4", ErrLineMalformed, ""},
		{"LW R1", ErrLineMalformed, ""},
		{"BEQ R1, R2", ErrLineMalformed, ""},
		{"ADD R1, R2, R32", ErrRegisterUnknown, "R32"},
		{"SUB X1, R2, R3", ErrRegisterUnknown, "X1"},
		{"BEQ R1, Q2, L", ErrRegisterUnknown, "Q2"},
		{"LW R99, 4(R0)", ErrRegisterUnknown, "R99"},
		{"LW R1, 4(R40)", ErrRegisterUnknown, "R40"},
		{"LW R1, 100", ErrOperandMalformed, "100"},
		{"LW R1, 100(R0", ErrOperandMalformed, "100(R0"},
		{"SW R1, (R0)", ErrOperandMalformed, "(R0)"},
		{"SW R1, abc(R0)", ErrOperandMalformed, "abc(R0)"},
		{"SW R1, 0x10(R0)", ErrOperandMalformed, "0x10(R0)"},
		{"SW R1, -4(R0)", ErrOperandMalformed, "-4(R0)"},
	}

	for _, entry := range table {
		inst, err := Decode(entry.text)
		assert.ErrorIs(err, entry.err, entry.text)
		assert.Equal(Instruction{}, inst, entry.text)

		var decode *ErrDecode
		if assert.True(errors.As(err, &decode), entry.text) {
			assert.Equal(entry.text, decode.Text)
			assert.Equal(entry.token, decode.Token, entry.text)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	for _, text := range []string{
		"ADD R3, R1, R2",
		"SUB R4, R2, R1",
		"LW R6, 100(R0)",
		"SW R5, 100(R0)",
		"BEQ R1, R2, LABEL",
	} {
		inst, err := Decode(text)
		assert.NoError(err)
		assert.Equal(text, inst.String())
	}

	assert.Equal("Op(9)", Instruction{Op: Op(9)}.String())
}

func FuzzDecode(f *testing.F) {
	for _, text := range []string{
		"ADD R3, R1, R2",
		"SUB R4, R2, R1",
		"LW R6, 100(R0)",
		"SW R5, 100(R0)",
		"BEQ R1, R2, LABEL",
		"NOP",
		"LW R1, (",
	} {
		f.Add(text)
	}

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		inst, err := Decode(text)
		if err != nil {
			assert.Equal(Instruction{}, inst)
			assert.True(errors.Is(err, ErrLineMalformed) ||
				errors.Is(err, ErrOpcodeUnknown) ||
				errors.Is(err, ErrRegisterUnknown) ||
				errors.Is(err, ErrOperandMalformed), err.Error())
			return
		}

		assert.True(inst.Rd.Valid())
		assert.True(inst.Rs.Valid())
		assert.True(inst.Rt.Valid())

		// The canonical form decodes to the same instruction.
		again, err := Decode(inst.String())
		assert.NoError(err)
		again.Text = inst.Text
		assert.Equal(inst, again)
	})
}
