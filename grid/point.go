// Package grid drives Intcode machines that move over a 2-D plane.
package grid

import (
	"fmt"
)

// Point is a location on the grid. Y increases downward.
type Point struct {
	X int
	Y int
}

func (pt Point) String() string {
	return fmt.Sprintf("(%d,%d)", pt.X, pt.Y)
}

// Move returns the neighbouring point in a direction.
func (pt Point) Move(dir Direction) Point {
	switch dir {
	case DIRECTION_UP:
		pt.Y--
	case DIRECTION_RIGHT:
		pt.X++
	case DIRECTION_DOWN:
		pt.Y++
	case DIRECTION_LEFT:
		pt.X--
	}
	return pt
}

//go:generate go tool stringer -linecomment -type=Direction

// Direction is a compass heading.
type Direction int

const (
	DIRECTION_UP    = Direction(0) // up
	DIRECTION_RIGHT = Direction(1) // right
	DIRECTION_DOWN  = Direction(2) // down
	DIRECTION_LEFT  = Direction(3) // left
)

// Left returns the direction after a quarter turn counter-clockwise.
func (dir Direction) Left() Direction {
	return (dir + 3) % 4
}

// Right returns the direction after a quarter turn clockwise.
func (dir Direction) Right() Direction {
	return (dir + 1) % 4
}

// bounds returns the corners of the box containing every point.
func bounds[T any](points map[Point]T) (lo, hi Point) {
	first := true
	for pt := range points {
		if first {
			lo, hi = pt, pt
			first = false
			continue
		}
		lo.X = min(lo.X, pt.X)
		lo.Y = min(lo.Y, pt.Y)
		hi.X = max(hi.X, pt.X)
		hi.Y = max(hi.Y, pt.Y)
	}
	return
}
