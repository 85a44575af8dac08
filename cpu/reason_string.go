package cpu

import (
	"fmt"
)

func (reason Reason) String() string {
	switch reason {
	case REASON_NONE:
		return "none"
	case REASON_OUTPUT:
		return "output"
	case REASON_BLOCKED:
		return "blocked"
	case REASON_HALTED:
		return "halted"
	case REASON_FAULT:
		return "fault"
	}
	return fmt.Sprintf("Reason(%d)", int(reason))
}
