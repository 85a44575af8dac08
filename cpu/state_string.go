package cpu

import (
	"fmt"
)

func (state State) String() string {
	switch state {
	case STATE_CONTINUE:
		return "continue"
	case STATE_BLOCKED:
		return "blocked"
	case STATE_HALTED:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", int(state))
}
