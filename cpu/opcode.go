package cpu

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -linecomment -type=Op

// Op is an Intcode operation, the low two decimal digits of an opcode word.
type Op int

const (
	OP_DATA     = Op(0)  // data
	OP_ADD      = Op(1)  // add
	OP_MULTIPLY = Op(2)  // mul
	OP_INPUT    = Op(3)  // in
	OP_OUTPUT   = Op(4)  // out
	OP_JUMP_T   = Op(5)  // jt
	OP_JUMP_F   = Op(6)  // jf
	OP_LT       = Op(7)  // lt
	OP_EQ       = Op(8)  // eq
	OP_BASE     = Op(9)  // rb
	OP_HALT     = Op(99) // halt
)

var _op_names = map[Op]string{
	OP_DATA:     "data",
	OP_ADD:      "add",
	OP_MULTIPLY: "mul",
	OP_INPUT:    "in",
	OP_OUTPUT:   "out",
	OP_JUMP_T:   "jt",
	OP_JUMP_F:   "jf",
	OP_LT:       "lt",
	OP_EQ:       "eq",
	OP_BASE:     "rb",
	OP_HALT:     "halt",
}

// Operands returns the number of operand words following the opcode word.
func (op Op) Operands() int {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_LT, OP_EQ:
		return 3
	case OP_JUMP_T, OP_JUMP_F:
		return 2
	case OP_INPUT, OP_OUTPUT, OP_BASE:
		return 1
	}

	return 0
}

// Writes returns the operand index written by the operation, or -1.
func (op Op) Writes() int {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_LT, OP_EQ:
		return 2
	case OP_INPUT:
		return 0
	}

	return -1
}

//go:generate go tool stringer -linecomment -type=Mode

// Mode is an operand addressing mode.
type Mode int

const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

//go:generate go tool stringer -linecomment -type=Dialect

// Dialect selects the capabilities of a machine.
type Dialect int

const (
	DIALECT_BASIC    = Dialect(0) // basic
	DIALECT_IO       = Dialect(1) // io
	DIALECT_RELATIVE = Dialect(2) // relative
)

// ParseDialect converts a dialect name to a Dialect.
func ParseDialect(name string) (dialect Dialect, err error) {
	switch strings.ToLower(name) {
	case "basic":
		dialect = DIALECT_BASIC
	case "io":
		dialect = DIALECT_IO
	case "relative", "":
		dialect = DIALECT_RELATIVE
	default:
		err = ErrDialectName
	}
	return
}

// Allows returns true if the operation is legal in the dialect.
func (dialect Dialect) Allows(op Op) bool {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_HALT:
		return true
	case OP_INPUT, OP_OUTPUT, OP_JUMP_T, OP_JUMP_F, OP_LT, OP_EQ:
		return dialect >= DIALECT_IO
	case OP_BASE:
		return dialect >= DIALECT_RELATIVE
	}

	return false
}

// AllowsMode returns true if the addressing mode is legal in the dialect.
func (dialect Dialect) AllowsMode(mode Mode) bool {
	switch mode {
	case MODE_POSITION, MODE_IMMEDIATE:
		return true
	case MODE_RELATIVE:
		return dialect >= DIALECT_RELATIVE
	}

	return false
}

// Growable returns true if memory extends on demand in the dialect.
func (dialect Dialect) Growable() bool {
	return dialect >= DIALECT_RELATIVE
}

// Instruction is a decoded opcode word.
type Instruction struct {
	Ip    int64   // Address of the opcode word.
	Word  int64   // Raw opcode word.
	Op    Op      // Operation.
	Modes [3]Mode // Addressing mode per operand.
}

// Decode splits an opcode word into its operation and operand modes.
func Decode(word int64) (ins Instruction, err error) {
	ins.Word = word

	if word < 0 {
		err = ErrOpcodeInvalid
		return
	}

	ins.Op = Op(word % 100)
	if _, ok := _op_names[ins.Op]; !ok || ins.Op == OP_DATA {
		err = ErrOpcodeInvalid
		return
	}

	digits := word / 100
	for n := range ins.Modes {
		mode := Mode(digits % 10)
		digits /= 10
		if mode > MODE_RELATIVE {
			err = errors.Join(ErrModeInvalid, errOperand[n])
			return
		}
		ins.Modes[n] = mode
	}

	if digits != 0 {
		err = ErrModeInvalid
		return
	}

	return
}

// Size returns the number of memory words the instruction occupies.
func (ins Instruction) Size() int64 {
	return int64(1 + ins.Op.Operands())
}

// Check verifies the instruction against a dialect.
func (ins Instruction) Check(dialect Dialect) (err error) {
	if !dialect.Allows(ins.Op) {
		err = ErrOpcodeDialect
		return
	}

	for n := range ins.Op.Operands() {
		mode := ins.Modes[n]
		if !dialect.AllowsMode(mode) {
			err = errors.Join(ErrModeDialect, errOperand[n])
			return
		}
		if n == ins.Op.Writes() && mode == MODE_IMMEDIATE {
			err = errors.Join(ErrWriteImmediate, errOperand[n])
			return
		}
	}

	return
}

// modePrefix is the assembly notation for each addressing mode.
var modePrefix = [...]string{
	MODE_POSITION:  "[%d]",
	MODE_IMMEDIATE: "%d",
	MODE_RELATIVE:  "[rb%+d]",
}

// Format returns the assembly language representation of the instruction,
// given the operand words that follow it.
func (ins Instruction) Format(operands []int64) (out string) {
	out = ins.Op.String()
	for n, value := range operands {
		if n >= ins.Op.Operands() {
			break
		}
		sep := ","
		if n == 0 {
			sep = ""
		}
		out += sep + " " + fmt.Sprintf(modePrefix[ins.Modes[n]], value)
	}
	return
}

// String returns the instruction mnemonic and modes.
func (ins Instruction) String() string {
	var modes []string
	for n := range ins.Op.Operands() {
		modes = append(modes, ins.Modes[n].String())
	}
	return fmt.Sprintf("%v(%v) %v", ins.Op, ins.Word, strings.Join(modes, ","))
}
