// Package script drives Intcode machines from Starlark scripts.
//
// Scripts are given two builtins:
//
//	parse(text)                          -> list of int
//	machine(program, dialect="relative") -> machine
//
// where program is either program text or a list of int. A machine has
// the attributes reason, halted, ip, base, ticks and pending, and the
// methods input(*values), step(), run_until_output(), run(), peek(addr),
// snapshot() and fork().
package script

import (
	"fmt"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/cpu"
)

// Interpreter runs scripts.
type Interpreter struct {
	Verbose bool // Set to enable tracing of created machines.
}

// program converts a starlark program argument to a memory image.
func program(value starlark.Value) (code []int64, err error) {
	switch value := value.(type) {
	case starlark.String:
		var prog *cpu.Program
		prog, err = cpu.ParseProgramString(string(value))
		if err != nil {
			return
		}
		code = prog.Code
	case starlark.Iterable:
		iter := value.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			var word int64
			word, err = toInt64(elem)
			if err != nil {
				return
			}
			code = append(code, word)
		}
	default:
		err = ErrProgram
	}

	return
}

func (in *Interpreter) builtinParse(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "text", &text); err != nil {
		return nil, err
	}

	prog, err := cpu.ParseProgramString(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	return toList(prog.Code), nil
}

func (in *Interpreter) builtinMachine(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var source starlark.Value
	dialect := cpu.DIALECT_RELATIVE.String()
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "program", &source, "dialect?", &dialect); err != nil {
		return nil, err
	}

	code, err := program(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	d, err := cpu.ParseDialect(dialect)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	m := cpu.NewMachine(code, d)
	m.Verbose = in.Verbose

	return &Machine{Machine: m}, nil
}

// Run executes a script. src may be a string, []byte, or io.Reader, as
// for starlark.ExecFile. globals are added to the predeclared builtins.
func (in *Interpreter) Run(filename string, src any, globals starlark.StringDict) (dict starlark.StringDict, err error) {
	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%s: %s", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	pred := starlark.StringDict{
		"machine": starlark.NewBuiltin("machine", in.builtinMachine),
		"parse":   starlark.NewBuiltin("parse", in.builtinParse),
	}
	for key, value := range globals {
		pred[key] = value
	}

	return starlark.ExecFileOptions(&opts, &thread, filename, src, pred)
}

// Run executes a script with a default interpreter.
func Run(filename string, src any, globals starlark.StringDict) (starlark.StringDict, error) {
	return (&Interpreter{}).Run(filename, src, globals)
}
