// Package network composes Intcode machines into larger systems.
//
// Machines never share memory. Values move between them only by copying
// outputs of one machine into the input queue of another.
package network

import (
	"context"
	"runtime"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
)

// amplifiers creates one machine per phase, each given its phase setting.
func amplifiers(program []int64, phases []int64) (amps []*cpu.Machine) {
	amps = make([]*cpu.Machine, len(phases))
	for n, phase := range phases {
		amps[n] = cpu.NewMachine(program, cpu.DIALECT_RELATIVE)
		amps[n].RegisterInput(phase)
	}
	return
}

// Chain passes a signal once through a series of amplifiers, one per phase.
func Chain(program []int64, phases []int64, signal int64) (output int64, err error) {
	if len(phases) == 0 {
		err = ErrChainEmpty
		return
	}

	output = signal
	for n, amp := range amplifiers(program, phases) {
		amp.RegisterInput(output)
		var ok bool
		output, ok, err = amp.RunUntilOutput()
		if err == nil && !ok {
			err = ErrChainSilent
		}
		if err != nil {
			err = &ErrNode{Node: n, Err: err}
			return
		}
	}

	return
}

// Feedback passes a signal around a loop of amplifiers, one per phase,
// until an amplifier halts. Returns the last output of the final amplifier.
func Feedback(program []int64, phases []int64, signal int64) (output int64, err error) {
	if len(phases) == 0 {
		err = ErrChainEmpty
		return
	}

	amps := amplifiers(program, phases)
	last := len(amps) - 1
	produced := false

	for {
		for n, amp := range amps {
			amp.RegisterInput(signal)

			value, ok, rerr := amp.RunUntilOutput()
			if rerr != nil {
				err = &ErrNode{Node: n, Err: rerr}
				return
			}

			if !ok {
				if amp.Reason() == cpu.REASON_BLOCKED {
					err = &ErrNode{Node: n, Err: ErrChainStalled}
					return
				}
				if !produced {
					err = &ErrNode{Node: last, Err: ErrChainSilent}
				}
				return
			}

			signal = value
			if n == last {
				output = value
				produced = true
			}
		}
	}
}

// MaxSignal tries every ordering of phases, and returns the largest output
// signal with the ordering that produced it. Orderings are evaluated
// concurrently, each on its own set of machines.
func MaxSignal(ctx context.Context, program []int64, phases []int64, feedback bool) (best int64, order []int64, err error) {
	if len(phases) == 0 {
		err = ErrChainEmpty
		return
	}

	run := Chain
	if feedback {
		run = Feedback
	}

	var lock sync.Mutex
	found := false

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for perm := range internal.Permutations(phases) {
		if gctx.Err() != nil {
			break
		}

		perm := slices.Clone(perm)
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			signal, err := run(program, perm, 0)
			if err != nil {
				return err
			}

			lock.Lock()
			defer lock.Unlock()
			if !found || signal > best || (signal == best && slices.Compare(perm, order) < 0) {
				best = signal
				order = perm
				found = true
			}
			return nil
		})
	}

	err = group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		best = 0
		order = nil
	}

	return
}
