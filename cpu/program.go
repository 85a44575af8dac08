package cpu

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Program is an Intcode program image, as loaded from text.
type Program struct {
	Code []int64
}

// ParseProgramString parses comma separated decimal integers.
func ParseProgramString(text string) (prog *Program, err error) {
	return ParseProgram(strings.NewReader(text))
}

// ParseProgram parses comma separated decimal integers. Whitespace
// around words, and line breaks, are ignored.
func ParseProgram(r io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(scanWords)

	prog = &Program{}
	for index := 0; scanner.Scan(); index++ {
		text := strings.TrimSpace(scanner.Text())
		var value int64
		value, err = strconv.ParseInt(text, 10, 64)
		if err != nil {
			err = ErrParseNumber{Index: index, Text: text}
			return
		}
		prog.Code = append(prog.Code, value)
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if len(prog.Code) == 0 {
		err = ErrParseEmpty
		return
	}

	return
}

// scanWords splits on commas. A trailing comma is ignored.
func scanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(bytes.TrimSpace(data)) == 0 {
		return
	}

	if i := bytes.IndexByte(data, ','); i >= 0 {
		advance = i + 1
		token = data[:i]
		return
	}

	if atEOF {
		advance = len(data)
		token = data
	}

	return
}

// Image returns a copy of the program, with padding zero cells appended.
func (prog *Program) Image(padding int) (image []int64) {
	image = slices.Grow(slices.Clone(prog.Code), max(padding, 0))
	for range padding {
		image = append(image, 0)
	}
	return
}

// String returns the program in its text form.
func (prog *Program) String() string {
	words := make([]string, len(prog.Code))
	for n, value := range prog.Code {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, ",")
}

// Instructions yields the program as a linear disassembly. Words that do
// not decode are yielded as single word OP_DATA instructions.
func (prog *Program) Instructions() iter.Seq2[int64, Instruction] {
	return func(yield func(ip int64, ins Instruction) bool) {
		for ip := int64(0); ip < int64(len(prog.Code)); {
			ins, err := Decode(prog.Code[ip])
			ins.Ip = ip
			if err != nil || ip+ins.Size() > int64(len(prog.Code)) {
				ins = Instruction{Ip: ip, Word: prog.Code[ip], Op: OP_DATA}
			}
			if !yield(ip, ins) {
				return
			}
			ip += ins.Size()
		}
	}
}

// Operands returns the operand words of an instruction in the program.
func (prog *Program) Operands(ins Instruction) []int64 {
	start := ins.Ip + 1
	end := min(ins.Ip+ins.Size(), int64(len(prog.Code)))
	if start >= end {
		return nil
	}
	return prog.Code[start:end]
}

// Disassemble writes a listing of the program.
func (prog *Program) Disassemble(w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	for ip, ins := range prog.Instructions() {
		if ins.Op == OP_DATA {
			_, err = fmt.Fprintf(out, "%04d: .data %d\n", ip, ins.Word)
		} else {
			_, err = fmt.Fprintf(out, "%04d: %v\n", ip, ins.Format(prog.Operands(ins)))
		}
		if err != nil {
			return
		}
	}

	return out.Flush()
}
