package emulator

import (
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// ErrRuntime indicates the machine state at a runtime error.
type ErrRuntime struct {
	Ip    int64
	Ticks int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("ip %d tick %d %v", err.Ip, err.Ticks, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
