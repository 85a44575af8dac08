package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

//go:generate go tool stringer -linecomment -type=Encoding

// Encoding selects how a Tape converts between bytes and machine values.
type Encoding int

const (
	ENCODING_DECIMAL = Encoding(0) // decimal
	ENCODING_ASCII   = Encoding(1) // ascii
)

// ParseEncoding converts an encoding name to an Encoding.
func ParseEncoding(name string) (enc Encoding, err error) {
	switch strings.ToLower(name) {
	case "decimal", "":
		enc = ENCODING_DECIMAL
	case "ascii":
		enc = ENCODING_ASCII
	default:
		err = ErrEncoding
	}
	return
}

// Tape provides sequential I/O between a machine and byte streams.
//
// In decimal encoding, input is whitespace or comma separated integers,
// received one at a time, and each output is written on its own line.
//
// In ASCII encoding, input is received a line at a time, one value per
// byte, always terminated by a newline. Outputs in the ASCII range are
// written as bytes; any other value is written as a decimal line.
type Tape struct {
	Input    io.Reader
	Output   io.Writer
	Encoding Encoding

	reader *bufio.Reader
	source io.Reader
}

var _ Channel = (*Tape)(nil)

func (tc *Tape) input() *bufio.Reader {
	if tc.reader == nil || tc.source != tc.Input {
		tc.reader = bufio.NewReader(tc.Input)
		tc.source = tc.Input
	}
	return tc.reader
}

// Receive reads the next input unit from the tape.
func (tc *Tape) Receive() (values []int64, err error) {
	if tc.Input == nil {
		err = io.EOF
		return
	}

	switch tc.Encoding {
	case ENCODING_ASCII:
		return tc.receiveLine()
	case ENCODING_DECIMAL:
		var value int64
		value, err = tc.receiveNumber()
		if err != nil {
			return
		}
		values = []int64{value}
	default:
		err = ErrEncoding
	}

	return
}

func (tc *Tape) receiveLine() (values []int64, err error) {
	line, err := tc.input().ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
		line += "\n"
	}
	if err != nil {
		return
	}

	values = make([]int64, len(line))
	for n := range len(line) {
		values[n] = int64(line[n])
	}

	return
}

func (tc *Tape) receiveNumber() (value int64, err error) {
	in := tc.input()

	var word []byte
	for {
		var c byte
		c, err = in.ReadByte()
		if err == io.EOF && len(word) > 0 {
			err = nil
			break
		}
		if err != nil {
			return
		}
		if c == ',' || unicode.IsSpace(rune(c)) {
			if len(word) > 0 {
				break
			}
			continue
		}
		word = append(word, c)
	}

	value, err = strconv.ParseInt(string(word), 10, 64)
	if err != nil {
		err = ErrTapeNumber(word)
	}

	return
}

// Send writes a machine output to the tape.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	switch tc.Encoding {
	case ENCODING_ASCII:
		if value >= 0 && value < 128 {
			_, err = tc.Output.Write([]byte{byte(value)})
			return
		}
		fallthrough
	case ENCODING_DECIMAL:
		_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	default:
		err = ErrEncoding
	}

	return
}
