package memory

import (
	"errors"
	"strconv"

	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageLine    = errors.New(f("expected address and value"))
	ErrImageAddress = errors.New(f("address is not hexadecimal"))
	ErrImageValue   = errors.New(f("value is not decimal"))
)

// ErrSyntax locates an error in a memory image.
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
