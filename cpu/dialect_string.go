package cpu

import (
	"fmt"
)

func (dialect Dialect) String() string {
	switch dialect {
	case DIALECT_BASIC:
		return "basic"
	case DIALECT_IO:
		return "io"
	case DIALECT_RELATIVE:
		return "relative"
	}
	return fmt.Sprintf("Dialect(%d)", int(dialect))
}
