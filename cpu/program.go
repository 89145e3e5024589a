package cpu

import (
	"errors"
)

// Line is a single instruction line of a program.
type Line struct {
	LineNo int    // Source line number.
	Text   string // Instruction text, after comment removal and expansion.
}

// Program is an ordered sequence of instruction lines.
type Program struct {
	Lines []Line
}

// Len returns the number of instruction lines.
func (prog *Program) Len() int {
	return len(prog.Lines)
}

// Line returns the program line for a source line number.
func (prog *Program) Line(lineno int) (line Line, ok bool) {
	for _, line = range prog.Lines {
		if line.LineNo == lineno {
			ok = true
			return
		}
	}

	line = Line{}
	return
}

// Check decodes every line without executing anything.
// All decode errors are returned, each as an *ErrSyntax.
func (prog *Program) Check() (err error) {
	var errs []error

	for _, line := range prog.Lines {
		_, decode_err := Decode(line.Text)
		if decode_err != nil {
			errs = append(errs, &ErrSyntax{LineNo: line.LineNo, Line: line.Text, Err: decode_err})
		}
	}

	err = errors.Join(errs...)

	return
}
