// Package io connects Intcode machine queues to byte streams.
//
// A Channel supplies values for a machine's input queue, and accepts the
// values a machine outputs. Tape is a Channel over an io.Reader and an
// io.Writer, in either decimal or ASCII encoding.
package io

// Channel defines the interface for all machine I/O channels.
type Channel interface {
	// Receive returns the next values for the machine's input queue.
	// Returns io.EOF once the channel is exhausted.
	Receive() (values []int64, err error)
	// Send delivers a single machine output to the channel.
	Send(value int64) error
}
