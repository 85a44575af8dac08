package grid

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrPaintOutput   = errors.New(f("robot did not output a color and a turn"))
	ErrPaintTurn     = errors.New(f("robot turn invalid"))
	ErrExploreStatus = errors.New(f("droid status invalid"))
	ErrExploreSilent = errors.New(f("droid did not report status"))
)

// ErrMove locates an error at a point on the grid.
type ErrMove struct {
	At  Point
	Err error
}

func (err *ErrMove) Error() string {
	return f("at %v: %v", err.At, err.Err)
}

func (err *ErrMove) Unwrap() error {
	return err.Err
}
