package grid

import (
	"log"
	"strings"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
)

// Command is a droid movement command.
type Command int64

const (
	COMMAND_NORTH = Command(1) // north
	COMMAND_SOUTH = Command(2) // south
	COMMAND_WEST  = Command(3) // west
	COMMAND_EAST  = Command(4) // east
)

var _commands = [...]Command{COMMAND_NORTH, COMMAND_SOUTH, COMMAND_WEST, COMMAND_EAST}

// Direction returns the heading of the command.
func (cmd Command) Direction() Direction {
	switch cmd {
	case COMMAND_NORTH:
		return DIRECTION_UP
	case COMMAND_SOUTH:
		return DIRECTION_DOWN
	case COMMAND_WEST:
		return DIRECTION_LEFT
	default:
		return DIRECTION_RIGHT
	}
}

//go:generate go tool stringer -linecomment -type=Tile

// Tile is a droid status, as recorded for a location.
type Tile int64

const (
	TILE_WALL   = Tile(0) // wall
	TILE_OPEN   = Tile(1) // open
	TILE_TARGET = Tile(2) // target
)

// Maze is the explored area around a droid. The droid starts at the origin.
type Maze struct {
	Tiles  map[Point]Tile
	Target Point
	Found  bool // Set if the target was reached.
}

// Explorer maps a maze by driving a droid machine.
type Explorer struct {
	Verbose bool // Set to enable verbose logging.
}

type visit struct {
	At      Point
	Machine *cpu.Machine
}

// Explore visits every reachable tile breadth first. Each branch of the
// search drives its own fork of the machine, so the droid never backtracks.
func (ex *Explorer) Explore(m *cpu.Machine) (maze *Maze, err error) {
	maze = &Maze{
		Tiles: map[Point]Tile{{}: TILE_OPEN},
	}

	var queue internal.Queue[visit]
	queue.Push(visit{Machine: m})

	for !queue.Empty() {
		here, _ := queue.Pop()

		for _, cmd := range _commands {
			there := here.At.Move(cmd.Direction())
			if _, seen := maze.Tiles[there]; seen {
				continue
			}

			droid := here.Machine.Fork()
			droid.RegisterInput(int64(cmd))

			var status int64
			var ok bool
			status, ok, err = droid.RunUntilOutput()
			if err == nil && !ok {
				err = ErrExploreSilent
			}
			if err != nil {
				err = &ErrMove{At: there, Err: err}
				return
			}

			tile := Tile(status)
			if ex.Verbose {
				log.Printf("explore: %v %v", there, tile)
			}

			switch tile {
			case TILE_WALL:
				maze.Tiles[there] = tile
				continue
			case TILE_OPEN:
			case TILE_TARGET:
				maze.Target = there
				maze.Found = true
			default:
				err = &ErrMove{At: there, Err: ErrExploreStatus}
				return
			}

			maze.Tiles[there] = tile
			queue.Push(visit{At: there, Machine: droid})
		}
	}

	return
}

// Explore maps a maze with a default explorer.
func Explore(m *cpu.Machine) (maze *Maze, err error) {
	return (&Explorer{}).Explore(m)
}

// distances returns the step count to every open tile reachable from a point.
func (maze *Maze) distances(from Point) (steps map[Point]int) {
	steps = map[Point]int{}
	if tile, ok := maze.Tiles[from]; !ok || tile == TILE_WALL {
		return
	}

	steps[from] = 0

	var queue internal.Queue[Point]
	queue.Push(from)
	for !queue.Empty() {
		pt, _ := queue.Pop()
		for _, cmd := range _commands {
			next := pt.Move(cmd.Direction())
			tile, ok := maze.Tiles[next]
			if !ok || tile == TILE_WALL {
				continue
			}
			if _, seen := steps[next]; seen {
				continue
			}
			steps[next] = steps[pt] + 1
			queue.Push(next)
		}
	}

	return
}

// Distance returns the fewest steps between two open tiles.
func (maze *Maze) Distance(from, to Point) (steps int, ok bool) {
	steps, ok = maze.distances(from)[to]
	return
}

// Farthest returns the most steps needed to reach any open tile.
func (maze *Maze) Farthest(from Point) (steps int) {
	for _, n := range maze.distances(from) {
		steps = max(steps, n)
	}
	return
}

// Render draws the maze, with '#' for walls, 'O' for the target, and 'D'
// for the origin. Unexplored tiles are blank.
func (maze *Maze) Render() string {
	lo, hi := bounds(maze.Tiles)
	origin := Point{}

	var text strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			pt := Point{X: x, Y: y}
			tile, ok := maze.Tiles[pt]
			switch {
			case pt == origin:
				text.WriteByte('D')
			case !ok:
				text.WriteByte(' ')
			case tile == TILE_WALL:
				text.WriteByte('#')
			case tile == TILE_TARGET:
				text.WriteByte('O')
			default:
				text.WriteByte('.')
			}
		}
		text.WriteByte('\n')
	}

	return text.String()
}
