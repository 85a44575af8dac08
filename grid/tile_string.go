package grid

import (
	"fmt"
)

func (tile Tile) String() string {
	switch tile {
	case TILE_WALL:
		return "wall"
	case TILE_OPEN:
		return "open"
	case TILE_TARGET:
		return "target"
	}
	return fmt.Sprintf("Tile(%d)", int64(tile))
}
