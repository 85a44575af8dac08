package grid

import (
	"log"
	"strings"

	"github.com/ezrec/intcode/cpu"
)

const (
	COLOR_BLACK = int64(0) // black
	COLOR_WHITE = int64(1) // white

	TURN_LEFT  = int64(0) // turn left
	TURN_RIGHT = int64(1) // turn right
)

// Painter is a hull painting robot, controlled by an Intcode machine.
//
// The machine reads the color of the panel under the robot, then outputs
// the color to paint it and the direction to turn before moving one panel
// forward.
type Painter struct {
	Verbose bool // Set to enable verbose logging.

	Machine *cpu.Machine
	At      Point
	Facing  Direction
	Panels  map[Point]int64 // Panels painted at least once.
}

// NewPainter creates a robot at the origin, facing up, standing on a panel
// of the start color.
func NewPainter(m *cpu.Machine, start int64) (robot *Painter) {
	robot = &Painter{
		Machine: m,
		Facing:  DIRECTION_UP,
		Panels:  map[Point]int64{},
	}

	if start != COLOR_BLACK {
		robot.Panels[robot.At] = start
	}

	return
}

// Step paints the current panel, turns, and moves. Returns true once the
// machine has halted.
func (robot *Painter) Step() (done bool, err error) {
	robot.Machine.RegisterInput(robot.Panels[robot.At])

	outputs, err := robot.Machine.Run()
	if err != nil {
		return
	}

	if len(outputs) == 0 && robot.Machine.Halted() {
		done = true
		return
	}

	if len(outputs) != 2 {
		err = &ErrMove{At: robot.At, Err: ErrPaintOutput}
		return
	}

	color, turn := outputs[0], outputs[1]
	robot.Panels[robot.At] = color

	switch turn {
	case TURN_LEFT:
		robot.Facing = robot.Facing.Left()
	case TURN_RIGHT:
		robot.Facing = robot.Facing.Right()
	default:
		err = &ErrMove{At: robot.At, Err: ErrPaintTurn}
		return
	}

	if robot.Verbose {
		log.Printf("paint: %v = %d, facing %v", robot.At, color, robot.Facing)
	}

	robot.At = robot.At.Move(robot.Facing)
	done = robot.Machine.Halted()

	return
}

// Paint runs a hull painting robot to completion, starting on a panel of
// the start color. Returns every panel painted at least once.
func Paint(m *cpu.Machine, start int64) (panels map[Point]int64, err error) {
	robot := NewPainter(m, start)
	for {
		var done bool
		done, err = robot.Step()
		if err != nil || done {
			break
		}
	}

	panels = robot.Panels
	return
}

// Render draws the bounding box of the panels, with '#' for white.
func Render(panels map[Point]int64) string {
	if len(panels) == 0 {
		return ""
	}

	lo, hi := bounds(panels)

	var text strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			if panels[Point{X: x, Y: y}] == COLOR_WHITE {
				text.WriteByte('#')
			} else {
				text.WriteByte('.')
			}
		}
		text.WriteByte('\n')
	}

	return text.String()
}
