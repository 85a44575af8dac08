// Package cpu implements the Intcode machine.
//
// A Machine owns a memory of signed 64-bit cells, an instruction pointer
// (IP), a relative base register, and FIFO input and output queues. Each
// opcode word encodes the operation in its two low decimal digits, and one
// addressing mode per operand in the digits above.
//
// Execution is cooperative: Step executes a single instruction, and
// RunUntilOutput executes until an output is produced, the machine blocks
// on an empty input queue, or the machine halts. Callers compose machines
// into larger systems by moving values between their queues.
//
// The Dialect of a machine selects which opcodes and addressing modes are
// legal, and whether memory grows on demand.
package cpu
