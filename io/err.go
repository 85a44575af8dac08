package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = errors.New(f("channel closed"))
	ErrEncoding      = errors.New(f("encoding unknown"))
)

// ErrTapeNumber is tape input that is not a decimal integer.
type ErrTapeNumber string

func (err ErrTapeNumber) Error() string {
	return f("tape '%v' is not a number", string(err))
}
