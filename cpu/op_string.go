package cpu

import (
	"fmt"
)

func (op Op) String() string {
	name, ok := _op_names[op]
	if !ok {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return name
}
