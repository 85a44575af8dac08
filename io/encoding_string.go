package io

import (
	"fmt"
)

func (enc Encoding) String() string {
	switch enc {
	case ENCODING_DECIMAL:
		return "decimal"
	case ENCODING_ASCII:
		return "ascii"
	}
	return fmt.Sprintf("Encoding(%d)", int(enc))
}
