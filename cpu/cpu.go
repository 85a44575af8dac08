package cpu

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/ezrec/intcode/internal"
)

//go:generate go tool stringer -linecomment -type=State

// State is the result of a single Step.
type State int

const (
	STATE_CONTINUE = State(0) // continue
	STATE_BLOCKED  = State(1) // blocked
	STATE_HALTED   = State(2) // halted
)

//go:generate go tool stringer -linecomment -type=Reason

// Reason records why the machine last returned control to its caller.
type Reason int

const (
	REASON_NONE    = Reason(0) // none
	REASON_OUTPUT  = Reason(1) // output
	REASON_BLOCKED = Reason(2) // blocked
	REASON_HALTED  = Reason(3) // halted
	REASON_FAULT   = Reason(4) // fault
)

// Machine is the simulation context of a single Intcode machine.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Dialect Dialect // Capabilities of the machine.
	Memory  Memory  // Memory image.
	Ip      int64   // Current instruction pointer.
	Base    int64   // Relative base register.

	Ticks int // Executed instruction counter.

	input  internal.Queue[int64]
	output internal.Queue[int64]

	reason  Reason
	pending Instruction // Decoded Input instruction awaiting a value.
	fault   error
}

// NewMachine creates a new machine from a copy of a memory image.
func NewMachine(image []int64, dialect Dialect) (m *Machine) {
	m = &Machine{
		Dialect: dialect,
		Memory: Memory{
			Cells:    slices.Clone(image),
			Growable: dialect.Growable(),
		},
	}

	return
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	regs := []string{"ip", "rb", "reason", "ticks", "memory", "input", "output"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%d", m.Ip)
			if word, err := m.Memory.Read(m.Ip); err == nil {
				strval += fmt.Sprintf(" (%d)", word)
			}
		case "rb":
			strval = fmt.Sprintf("%d", m.Base)
		case "reason":
			strval = m.reason.String()
		case "ticks":
			strval = fmt.Sprintf("%d", m.Ticks)
		case "memory":
			strval = fmt.Sprintf("%d cells", m.Memory.Len())
		case "input":
			strval = fmt.Sprintf("%v", m.input.Data)
		case "output":
			strval = fmt.Sprintf("%v", m.output.Data)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// RegisterInput appends values to the input queue.
func (m *Machine) RegisterInput(values ...int64) {
	m.input.Push(values...)
}

// Pending returns the number of queued, unconsumed inputs.
func (m *Machine) Pending() int {
	return m.input.Len()
}

// Outputs removes and returns all produced, undrained outputs.
func (m *Machine) Outputs() []int64 {
	return m.output.Drain()
}

// Reason returns why the machine last returned control.
func (m *Machine) Reason() Reason {
	return m.reason
}

// Halted returns true once the machine can no longer execute.
func (m *Machine) Halted() bool {
	return m.reason == REASON_HALTED || m.reason == REASON_FAULT
}

// PeekMemory reads a memory cell without side effects.
func (m *Machine) PeekMemory(addr int64) (value int64, err error) {
	return m.Memory.Read(addr)
}

// SnapshotMemory returns a copy of the memory image.
func (m *Machine) SnapshotMemory() []int64 {
	return slices.Clone(m.Memory.Cells)
}

// Fork returns an independent copy of the full machine state.
func (m *Machine) Fork() (fork *Machine) {
	fork = &Machine{
		Verbose: m.Verbose,
		Dialect: m.Dialect,
		Memory:  m.Memory.Clone(),
		Ip:      m.Ip,
		Base:    m.Base,
		Ticks:   m.Ticks,
		input:   m.input.Clone(),
		output:  m.output.Clone(),
		reason:  m.reason,
		pending: m.pending,
		fault:   m.fault,
	}

	return
}

// fetch decodes the instruction at the instruction pointer.
func (m *Machine) fetch() (ins Instruction, err error) {
	ins.Ip = m.Ip

	word, err := m.Memory.Read(m.Ip)
	if err != nil {
		return
	}

	ins, err = Decode(word)
	ins.Ip = m.Ip
	if err != nil {
		return
	}

	err = ins.Check(m.Dialect)
	return
}

// address resolves operand n of the instruction as a write address.
func (m *Machine) address(ins Instruction, n int) (addr int64, err error) {
	param, err := m.Memory.Read(ins.Ip + 1 + int64(n))
	if err != nil {
		return
	}

	switch ins.Modes[n] {
	case MODE_POSITION:
		addr = param
	case MODE_RELATIVE:
		addr = m.Base + param
	default:
		err = ErrWriteImmediate
		return
	}

	if addr < 0 {
		err = ErrAddressNegative
	}

	return
}

// read resolves operand n of the instruction as a value.
func (m *Machine) read(ins Instruction, n int) (value int64, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(errOperand[n], err)
		}
	}()

	if ins.Modes[n] == MODE_IMMEDIATE {
		return m.Memory.Read(ins.Ip + 1 + int64(n))
	}

	addr, err := m.address(ins, n)
	if err != nil {
		return
	}

	return m.Memory.Read(addr)
}

// write stores value through operand n of the instruction.
func (m *Machine) write(ins Instruction, n int, value int64) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(errOperand[n], err)
		}
	}()

	addr, err := m.address(ins, n)
	if err != nil {
		return
	}

	return m.Memory.Write(addr, value)
}

// operands returns the raw operand words of the instruction, for tracing.
func (m *Machine) operands(ins Instruction) (words []int64) {
	for n := range ins.Op.Operands() {
		word, err := m.Memory.Read(ins.Ip + 1 + int64(n))
		if err != nil {
			break
		}
		words = append(words, word)
	}
	return
}

// Step executes a single instruction.
func (m *Machine) Step() (state State, err error) {
	switch m.reason {
	case REASON_HALTED:
		state = STATE_HALTED
		err = ErrHalted
		return
	case REASON_FAULT:
		state = STATE_HALTED
		err = m.fault
		return
	}

	var ins Instruction
	if m.reason == REASON_BLOCKED && m.pending.Ip == m.Ip && m.pending.Op == OP_INPUT {
		// Resume the Input instruction that blocked.
		ins = m.pending
	} else {
		ins, err = m.fetch()
	}

	defer func() {
		if err != nil {
			err = &ErrFault{Ip: ins.Ip, Word: ins.Word, Err: err}
			m.reason = REASON_FAULT
			m.fault = err
			state = STATE_HALTED
		}
	}()

	if err != nil {
		return
	}

	m.reason = REASON_NONE

	if m.Verbose {
		log.Printf("%04d: %v", ins.Ip, ins.Format(m.operands(ins)))
	}

	next_ip := ins.Ip + ins.Size()

	switch ins.Op {
	case OP_ADD, OP_MULTIPLY, OP_LT, OP_EQ:
		var a, b int64
		a, err = m.read(ins, 0)
		if err != nil {
			return
		}
		b, err = m.read(ins, 1)
		if err != nil {
			return
		}
		var result int64
		switch ins.Op {
		case OP_ADD:
			result = a + b
		case OP_MULTIPLY:
			result = a * b
		case OP_LT:
			if a < b {
				result = 1
			}
		case OP_EQ:
			if a == b {
				result = 1
			}
		}
		err = m.write(ins, 2, result)
		if err != nil {
			return
		}
	case OP_INPUT:
		if m.input.Empty() {
			// Don't advance to next IP.
			m.pending = ins
			m.reason = REASON_BLOCKED
			state = STATE_BLOCKED
			if m.Verbose {
				log.Printf("%04d: blocked on input", ins.Ip)
			}
			return
		}
		value, _ := m.input.Pop()
		err = m.write(ins, 0, value)
		if err != nil {
			return
		}
	case OP_OUTPUT:
		var value int64
		value, err = m.read(ins, 0)
		if err != nil {
			return
		}
		m.output.Push(value)
		m.reason = REASON_OUTPUT
	case OP_JUMP_T, OP_JUMP_F:
		var cond, target int64
		cond, err = m.read(ins, 0)
		if err != nil {
			return
		}
		target, err = m.read(ins, 1)
		if err != nil {
			return
		}
		if (cond != 0) == (ins.Op == OP_JUMP_T) {
			next_ip = target
		}
	case OP_BASE:
		var delta int64
		delta, err = m.read(ins, 0)
		if err != nil {
			return
		}
		m.Base += delta
	case OP_HALT:
		m.reason = REASON_HALTED
		state = STATE_HALTED
		m.Ticks++
		return
	default:
		err = ErrOpcodeInvalid
		return
	}

	m.Ip = next_ip
	m.Ticks++

	state = STATE_CONTINUE
	return
}

// RunUntilOutput executes until an output is available, the machine
// blocks on an empty input queue, or the machine halts.
//
// Outputs already queued by earlier calls to Step are returned first.
// When ok is false, Reason distinguishes REASON_BLOCKED from REASON_HALTED.
func (m *Machine) RunUntilOutput() (value int64, ok bool, err error) {
	value, ok = m.output.Pop()
	if ok {
		return
	}

	for {
		var state State
		state, err = m.Step()
		if err != nil {
			return
		}

		switch state {
		case STATE_BLOCKED, STATE_HALTED:
			return
		}

		if m.reason == REASON_OUTPUT {
			value, ok = m.output.Pop()
			return
		}
	}
}

// Run executes until the machine blocks or halts, returning all outputs
// produced along the way.
func (m *Machine) Run() (outputs []int64, err error) {
	for {
		var value int64
		var ok bool
		value, ok, err = m.RunUntilOutput()
		if err != nil || !ok {
			return
		}
		outputs = append(outputs, value)
	}
}
