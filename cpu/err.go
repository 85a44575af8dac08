package cpu

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrHalted          = errors.New(f("machine halted"))
	ErrAddressNegative = errors.New(f("negative address"))
	ErrAddressRange    = errors.New(f("address out of range"))
	ErrMemoryLimit     = errors.New(f("memory limit exceeded"))

	// Instruction decode errors
	ErrOpcodeInvalid  = errors.New(f("opcode invalid"))
	ErrOpcodeDialect  = errors.New(f("opcode not in dialect"))
	ErrModeInvalid    = errors.New(f("mode invalid"))
	ErrModeDialect    = errors.New(f("mode not in dialect"))
	ErrWriteImmediate = errors.New(f("write to immediate operand"))
	ErrOperand1       = errors.New(f("operand 1"))
	ErrOperand2       = errors.New(f("operand 2"))
	ErrOperand3       = errors.New(f("operand 3"))

	// Program errors
	ErrParseEmpty  = errors.New(f("program empty"))
	ErrDialectName = errors.New(f("dialect unknown"))
)

var errOperand = [3]error{ErrOperand1, ErrOperand2, ErrOperand3}

// ErrFault is a fatal machine fault, located at the faulting instruction.
type ErrFault struct {
	Ip   int64
	Word int64
	Err  error
}

func (err *ErrFault) Error() string {
	return f("fault at ip %v opcode %v: %v", err.Ip, err.Word, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

func (err *ErrFault) Is(target error) (ok bool) {
	_, ok = target.(*ErrFault)
	return
}

// ErrParseNumber is a program word that is not a decimal integer.
type ErrParseNumber struct {
	Index int
	Text  string
}

func (err ErrParseNumber) Error() string {
	return f("word %v '%v' is not a number", err.Index, err.Text)
}
