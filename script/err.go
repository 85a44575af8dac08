package script

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrFrozen  = errors.New(f("machine is frozen"))
	ErrProgram = errors.New(f("program must be a string or a list of integers"))
)

// ErrInteger is returned when a script value is not a 64-bit integer.
type ErrInteger string

func (err ErrInteger) Error() string {
	return f("not a 64-bit integer: %v", string(err))
}
