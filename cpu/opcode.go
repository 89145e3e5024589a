package cpu

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD = Op(0) // ADD
	OP_SUB = Op(1) // SUB
	OP_LW  = Op(2) // LW
	OP_SW  = Op(3) // SW
	OP_BEQ = Op(4) // BEQ
)

// opMap maps opcode mnemonics.
var opMap = map[string]Op{
	"ADD": OP_ADD,
	"SUB": OP_SUB,
	"LW":  OP_LW,
	"SW":  OP_SW,
	"BEQ": OP_BEQ,
}

// Operands returns the number of operand words the operation takes.
func (op Op) Operands() int {
	switch op {
	case OP_LW, OP_SW:
		return 2
	}
	return 3
}
