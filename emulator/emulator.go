// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs an Intcode program against an I/O channel.
package emulator

import (
	"errors"
	stdio "io"
	"log"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. Program + Machine + I/O channel.
type Emulator struct {
	Verbose bool         // If set, enables verbose logging.
	Machine *cpu.Machine // Reference to the machine simulation.
	Program *cpu.Program // Reference to the currently running program.

	Dialect     cpu.Dialect // Dialect of the machine built by Reset.
	Padding     int         // Zero cells appended to the program by Reset.
	MemoryLimit int64       // Growable memory limit, zero for the default.

	Channel io.Channel // Machine I/O.

	Exhausted bool // Set when the machine awaits input the channel cannot supply.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(prog *cpu.Program, channel io.Channel) (emu *Emulator) {
	emu = &Emulator{
		Program: prog,
		Dialect: cpu.DIALECT_RELATIVE,
		Channel: channel,
	}

	return
}

// Reset the emulator to a fresh machine loaded with the program.
func (emu *Emulator) Reset() (err error) {
	if emu.Program == nil || len(emu.Program.Code) == 0 {
		err = cpu.ErrParseEmpty
		return
	}

	emu.Machine = cpu.NewMachine(emu.Program.Image(emu.Padding), emu.Dialect)
	emu.Machine.Memory.Limit = emu.MemoryLimit
	emu.Machine.Verbose = emu.Verbose
	emu.Exhausted = false

	if emu.Verbose {
		log.Printf("emulator: reset, %d cells, dialect %v", emu.Machine.Memory.Len(), emu.Dialect)
	}

	return
}

// Tick runs the machine until it produces an output, blocks, or halts,
// servicing the channel as needed.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Machine == nil {
		err = emu.Reset()
		if err != nil {
			return
		}
	}

	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: emu.Machine.Ip, Ticks: emu.Machine.Ticks, Err: err}
		}
	}()

	value, ok, err := emu.Machine.RunUntilOutput()
	if err != nil {
		return
	}

	if ok {
		err = emu.Channel.Send(value)
		return
	}

	switch emu.Machine.Reason() {
	case cpu.REASON_HALTED:
		done = true
	case cpu.REASON_BLOCKED:
		var values []int64
		values, err = emu.Channel.Receive()
		if errors.Is(err, stdio.EOF) {
			if emu.Verbose {
				log.Printf("emulator: input exhausted at ip %d", emu.Machine.Ip)
			}
			err = nil
			emu.Exhausted = true
			done = true
			return
		}
		if err != nil {
			return
		}
		emu.Machine.RegisterInput(values...)
	}

	return
}

// Run ticks the emulator until it is done.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
