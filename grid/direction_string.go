package grid

import (
	"fmt"
)

var _direction_names = [...]string{"up", "right", "down", "left"}

func (dir Direction) String() string {
	if dir < 0 || int(dir) >= len(_direction_names) {
		return fmt.Sprintf("Direction(%d)", int(dir))
	}
	return _direction_names[dir]
}
