package main

import (
	"context"
	"errors"
	"fmt"
	stdio "io"

	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/grid"
	"github.com/ezrec/intcode/io"
	"github.com/ezrec/intcode/network"
	"github.com/ezrec/intcode/script"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

const (
	MODE_RUN         = "run"         // Run the program on a tape.
	MODE_DISASSEMBLE = "disassemble" // List the program.
	MODE_AMP         = "amp"         // Search amplifier phase orderings.
	MODE_NET         = "net"         // Run a packet network.
	MODE_PAINT       = "paint"       // Run a hull painting robot.
	MODE_MAZE        = "maze"        // Explore a maze with a droid.
	MODE_SCRIPT      = "script"      // Run a Starlark script.
)

var _modes = []string{MODE_RUN, MODE_DISASSEMBLE, MODE_AMP, MODE_NET, MODE_PAINT, MODE_MAZE, MODE_SCRIPT}

var (
	ErrMode      = errors.New(f("mode unknown"))
	ErrNoProgram = errors.New(f("no program, use -p"))
	ErrNoTarget  = errors.New(f("maze target not found"))
)

// Job is the work requested on the command line.
type Job struct {
	Program  *cpu.Program
	Input    stdio.Reader
	Output   stdio.Writer
	Phases   []int64 // Amplifier phase settings.
	Feedback bool    // Amplifiers run in a feedback loop.
	Color    int64   // Starting panel color for the painting robot.
	Script   string  // Starlark script file.
}

// selectMode returns the mode requested by explicitly set flags, or the
// configured mode when no mode flag was given.
func selectMode(cfg *Config, set map[string]bool) string {
	switch {
	case set["script"]:
		return MODE_SCRIPT
	case set["d"]:
		return MODE_DISASSEMBLE
	case set["amp"]:
		return MODE_AMP
	case set["net"]:
		return MODE_NET
	case set["paint"]:
		return MODE_PAINT
	case set["maze"]:
		return MODE_MAZE
	}
	return cfg.Mode
}

// run performs the job in the configured mode.
func run(ctx context.Context, cfg *Config, job *Job) (err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	if cfg.Mode == MODE_SCRIPT {
		globals := starlark.StringDict{}
		if job.Program != nil {
			globals["program"] = starlark.String(job.Program.String())
		}
		interp := &script.Interpreter{Verbose: cfg.Verbose}
		_, err = interp.Run(job.Script, nil, globals)
		return
	}

	if job.Program == nil || len(job.Program.Code) == 0 {
		err = ErrNoProgram
		return
	}

	dialect, _ := cpu.ParseDialect(cfg.Dialect)
	encoding, _ := io.ParseEncoding(cfg.Encoding)

	newMachine := func() *cpu.Machine {
		m := cpu.NewMachine(job.Program.Image(cfg.Padding), dialect)
		m.Memory.Limit = cfg.MemoryLimit
		m.Verbose = cfg.Verbose
		return m
	}

	switch cfg.Mode {
	case MODE_DISASSEMBLE:
		err = job.Program.Disassemble(job.Output)
	case MODE_AMP:
		var best int64
		var order []int64
		best, order, err = network.MaxSignal(ctx, job.Program.Image(cfg.Padding), job.Phases, job.Feedback)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(job.Output, "%d %v\n", best, order)
	case MODE_NET:
		nw := network.NewNetwork(job.Program.Image(cfg.Padding), cfg.Network.Size)
		nw.Verbose = cfg.Verbose
		nw.NatAddress = cfg.Network.Nat
		nw.IdleThreshold = cfg.Network.Idle
		nw.MaxSweeps = cfg.Network.MaxSweeps
		var result network.NatResult
		result, err = nw.Run(ctx)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(job.Output, "%d\n%d\n", result.First.Y, result.Repeated.Y)
	case MODE_PAINT:
		var panels map[grid.Point]int64
		panels, err = grid.Paint(newMachine(), job.Color)
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(job.Output, "%d\n%s", len(panels), grid.Render(panels))
	case MODE_MAZE:
		explorer := &grid.Explorer{Verbose: cfg.Verbose}
		var maze *grid.Maze
		maze, err = explorer.Explore(newMachine())
		if err != nil {
			return
		}
		if !maze.Found {
			err = ErrNoTarget
			return
		}
		steps, _ := maze.Distance(grid.Point{}, maze.Target)
		_, err = fmt.Fprintf(job.Output, "%s%d\n%d\n", maze.Render(), steps, maze.Farthest(maze.Target))
	default:
		emu := emulator.NewEmulator(job.Program, &io.Tape{
			Input:    job.Input,
			Output:   job.Output,
			Encoding: encoding,
		})
		emu.Verbose = cfg.Verbose
		emu.Dialect = dialect
		emu.Padding = cfg.Padding
		emu.MemoryLimit = cfg.MemoryLimit

		err = emu.Reset()
		if err != nil {
			return
		}
		err = emu.Run()
	}

	return
}
