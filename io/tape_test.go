package io

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_ReceiveDecimal(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader(" 1, -2\n\n30 ,4")}

	var got []int64
	for {
		values, err := tape.Receive()
		if errors.Is(err, io.EOF) {
			break
		}
		assert.NoError(err)
		assert.Len(values, 1)
		got = append(got, values...)
	}

	assert.Equal([]int64{1, -2, 30, 4}, got)
}

func TestTape_ReceiveDecimal_Bad(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("12 north")}

	values, err := tape.Receive()
	assert.NoError(err)
	assert.Equal([]int64{12}, values)

	_, err = tape.Receive()
	assert.Equal(ErrTapeNumber("north"), err)
}

func TestTape_ReceiveAscii(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("north\ntake"), Encoding: ENCODING_ASCII}

	values, err := tape.Receive()
	assert.NoError(err)
	assert.Equal([]int64{'n', 'o', 'r', 't', 'h', '\n'}, values)

	values, err = tape.Receive()
	assert.NoError(err)
	assert.Equal([]int64{'t', 'a', 'k', 'e', '\n'}, values)

	_, err = tape.Receive()
	assert.ErrorIs(err, io.EOF)
}

func TestTape_ReceiveNoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Receive()
	assert.ErrorIs(err, io.EOF)
}

func TestTape_ReceiveSwapInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1 2")}
	values, err := tape.Receive()
	assert.NoError(err)
	assert.Equal([]int64{1}, values)

	tape.Input = strings.NewReader("7")
	values, err = tape.Receive()
	assert.NoError(err)
	assert.Equal([]int64{7}, values)
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}
	assert.NoError(tape.Send(42))
	assert.NoError(tape.Send(-7))
	assert.Equal("42\n-7\n", out.String())

	out.Reset()
	tape.Encoding = ENCODING_ASCII
	for _, c := range "Hi\n" {
		assert.NoError(tape.Send(int64(c)))
	}
	assert.NoError(tape.Send(19349722))
	assert.Equal("Hi\n19349722\n", out.String())

	tape = &Tape{}
	assert.ErrorIs(tape.Send(1), ErrChannelClosed)

	tape = &Tape{Output: out, Encoding: Encoding(5)}
	assert.ErrorIs(tape.Send(1), ErrEncoding)
}

func TestParseEncoding(t *testing.T) {
	assert := assert.New(t)

	enc, err := ParseEncoding("ASCII")
	assert.NoError(err)
	assert.Equal(ENCODING_ASCII, enc)

	enc, err = ParseEncoding("")
	assert.NoError(err)
	assert.Equal(ENCODING_DECIMAL, enc)

	_, err = ParseEncoding("ebcdic")
	assert.ErrorIs(err, ErrEncoding)

	assert.Equal("ascii", ENCODING_ASCII.String())
}

func TestEncodingString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("decimal", ENCODING_DECIMAL.String())
	assert.Equal("ascii", ENCODING_ASCII.String())
	assert.Equal("Encoding(5)", Encoding(5).String())
}
