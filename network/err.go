package network

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Chain errors
	ErrChainEmpty   = errors.New(f("no phases"))
	ErrChainStalled = errors.New(f("amplifier blocked on input"))
	ErrChainSilent  = errors.New(f("amplifier halted without output"))

	// Network errors
	ErrAddressUnknown = errors.New(f("packet address unknown"))
	ErrNetworkHalted  = errors.New(f("all nodes halted"))
	ErrNetworkStalled = errors.New(f("sweep limit reached"))
)

// ErrNode locates an error at a machine within a composition.
type ErrNode struct {
	Node int
	Err  error
}

func (err *ErrNode) Error() string {
	return f("node %d: %v", err.Node, err.Err)
}

func (err *ErrNode) Unwrap() error {
	return err.Err
}
