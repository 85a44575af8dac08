package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		code []int64
	}){
		{"simple", "1,0,0,0,99", []int64{1, 0, 0, 0, 99}},
		{"newline", "1,9,10,3,\n2,3,11,0,\n99,30,40,50\n", []int64{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}},
		{"spaces", " 104 , -1125899906842624 ,99 ", []int64{104, -1125899906842624, 99}},
		{"trailing comma", "3,0,4,0,99,\n", []int64{3, 0, 4, 0, 99}},
		{"single", "99", []int64{99}},
	}

	for _, entry := range table {
		prog, err := ParseProgramString(entry.text)
		assert.NoError(err, entry.name)
		if err == nil {
			assert.Equal(entry.code, prog.Code, entry.name)
		}
	}
}

func TestParseProgram_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseProgramString("")
	assert.ErrorIs(err, ErrParseEmpty)

	_, err = ParseProgramString(" \n")
	assert.ErrorIs(err, ErrParseEmpty)

	_, err = ParseProgramString("1,x,3")
	assert.Equal(ErrParseNumber{Index: 1, Text: "x"}, err)

	_, err = ParseProgramString("1,,3")
	assert.Equal(ErrParseNumber{Index: 1, Text: ""}, err)

	_, err = ParseProgramString("1,99999999999999999999")
	assert.Equal(ErrParseNumber{Index: 1, Text: "99999999999999999999"}, err)
}

func TestParseProgram_Large(t *testing.T) {
	assert := assert.New(t)

	words := make([]string, 100000)
	for n := range words {
		words[n] = "1"
	}
	words[len(words)-1] = "99"

	prog, err := ParseProgram(strings.NewReader(strings.Join(words, ",")))
	assert.NoError(err)
	assert.Equal(100000, len(prog.Code))
	assert.Equal(int64(99), prog.Code[99999])
}

func TestProgram_Image(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Code: []int64{1, 2, 3}}

	image := prog.Image(4)
	assert.Equal([]int64{1, 2, 3, 0, 0, 0, 0}, image)

	image[0] = 9
	assert.Equal(int64(1), prog.Code[0])

	assert.Equal([]int64{1, 2, 3}, prog.Image(0))
}

func TestProgram_String(t *testing.T) {
	assert := assert.New(t)

	text := "3,0,4,0,-99"
	prog, err := ParseProgramString(text)
	assert.NoError(err)
	assert.Equal(text, prog.String())
}

func TestProgram_Instructions(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Code: []int64{1002, 4, 3, 4, 33, 109, 7, 99, 0, 42}}

	var ips []int64
	var ops []Op
	for ip, ins := range prog.Instructions() {
		ips = append(ips, ip)
		ops = append(ops, ins.Op)
	}

	assert.Equal([]int64{0, 4, 5, 7, 8, 9}, ips)
	assert.Equal([]Op{OP_MULTIPLY, OP_DATA, OP_BASE, OP_HALT, OP_DATA, OP_DATA}, ops)
}

func TestProgram_Instructions_Truncated(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Code: []int64{1, 0, 0}}

	count := 0
	for _, ins := range prog.Instructions() {
		assert.Equal(OP_DATA, ins.Op)
		count++
	}
	assert.Equal(3, count)
}

func TestProgram_Instructions_EarlyReturn(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Code: []int64{99, 99, 99}}

	count := 0
	for range prog.Instructions() {
		count++
		if count == 1 {
			break
		}
	}
	assert.Equal(1, count)
}

func TestProgram_Disassemble(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgramString("3,9,8,9,10,9,4,9,99,-1,8")
	assert.NoError(err)

	out := &bytes.Buffer{}
	err = prog.Disassemble(out)
	assert.NoError(err)

	assert.Equal(strings.Join([]string{
		"0000: in [9]",
		"0002: eq [9], [10], [9]",
		"0006: out [9]",
		"0008: halt",
		"0009: .data -1",
		"0010: .data 8",
		"",
	}, "\n"), out.String())
}
