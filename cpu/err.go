package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrOpcodeUnknown    = errors.New(f("opcode unknown"))
	ErrRegisterUnknown  = errors.New(f("register unknown"))
	ErrOperandMalformed = errors.New(f("memory operand malformed"))
	ErrLineMalformed    = errors.New(f("wrong number of operands"))

	// Execution errors
	ErrAddressNegative = errors.New(f("address negative"))

	// Loader errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

// ErrDecode reports an instruction that could not be decoded.
type ErrDecode struct {
	Text  string // Instruction text.
	Token string // Offending token, if any.
	Err   error
}

func (err *ErrDecode) Error() string {
	if len(err.Token) == 0 {
		return f("'%v' %v", err.Text, err.Err)
	}
	return f("'%v' %v: %v", err.Text, err.Err, err.Token)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an error in an instruction file.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
