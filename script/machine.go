package script

import (
	"fmt"
	"slices"

	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/cpu"
)

// Machine is a starlark value wrapping an Intcode machine.
type Machine struct {
	*cpu.Machine
	frozen bool
}

var (
	_ starlark.Value    = (*Machine)(nil)
	_ starlark.HasAttrs = (*Machine)(nil)
)

type method func(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

var _machine_methods = map[string]method{
	"input":            machineInput,
	"step":             machineStep,
	"run_until_output": machineRunUntilOutput,
	"run":              machineRun,
	"peek":             machinePeek,
	"snapshot":         machineSnapshot,
	"fork":             machineFork,
}

var _machine_mutators = []string{"input", "step", "run_until_output", "run"}

func (m *Machine) String() string {
	return fmt.Sprintf("<machine ip=%d reason=%v>", m.Ip, m.Reason())
}

func (m *Machine) Type() string { return "machine" }

func (m *Machine) Freeze() { m.frozen = true }

func (m *Machine) Truth() starlark.Bool { return starlark.Bool(!m.Halted()) }

func (m *Machine) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", m.Type())
}

func (m *Machine) Attr(name string) (value starlark.Value, err error) {
	switch name {
	case "reason":
		return starlark.String(m.Reason().String()), nil
	case "halted":
		return starlark.Bool(m.Halted()), nil
	case "ip":
		return starlark.MakeInt64(m.Ip), nil
	case "base":
		return starlark.MakeInt64(m.Base), nil
	case "ticks":
		return starlark.MakeInt(m.Ticks), nil
	case "pending":
		return starlark.MakeInt(m.Pending()), nil
	}

	impl, ok := _machine_methods[name]
	if !ok {
		return
	}

	value = starlark.NewBuiltin(name, func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if m.frozen && slices.Contains(_machine_mutators, name) {
			return nil, fmt.Errorf("%s: %w", fn.Name(), ErrFrozen)
		}
		return impl(m, fn, args, kwargs)
	}).BindReceiver(m)

	return
}

func (m *Machine) AttrNames() (names []string) {
	names = []string{"base", "halted", "ip", "pending", "reason", "ticks"}
	for name := range _machine_methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return
}

// toInt64 converts a starlark integer.
func toInt64(value starlark.Value) (n int64, err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = ErrInteger(value.String())
		return
	}

	n, ok = i.Int64()
	if !ok {
		err = ErrInteger(value.String())
	}
	return
}

// toList converts integers to a starlark list.
func toList(values []int64) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, value := range values {
		elems[n] = starlark.MakeInt64(value)
	}
	return starlark.NewList(elems)
}

func machineInput(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", fn.Name())
	}

	values := make([]int64, len(args))
	for n, arg := range args {
		value, err := toInt64(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fn.Name(), err)
		}
		values[n] = value
	}

	m.RegisterInput(values...)
	return starlark.None, nil
}

func machineStep(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	state, err := m.Step()
	if err != nil {
		return nil, err
	}

	return starlark.String(state.String()), nil
}

func machineRunUntilOutput(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	value, ok, err := m.RunUntilOutput()
	if err != nil {
		return nil, err
	}
	if !ok {
		return starlark.None, nil
	}

	return starlark.MakeInt64(value), nil
}

func machineRun(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	outputs, err := m.Run()
	if err != nil {
		return nil, err
	}

	return toList(outputs), nil
}

func machinePeek(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr); err != nil {
		return nil, err
	}

	n, err := toInt64(addr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	value, err := m.PeekMemory(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	return starlark.MakeInt64(value), nil
}

func machineSnapshot(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	return toList(m.SnapshotMemory()), nil
}

func machineFork(m *Machine, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}

	return &Machine{Machine: m.Fork()}, nil
}
