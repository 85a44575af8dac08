package cpu

import (
	"fmt"
)

func (mode Mode) String() string {
	switch mode {
	case MODE_POSITION:
		return "position"
	case MODE_IMMEDIATE:
		return "immediate"
	case MODE_RELATIVE:
		return "relative"
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}
