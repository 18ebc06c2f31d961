// This file is part of appleie.
//
// appleie is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// appleie is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with appleie.  If not, see <https://www.gnu.org/licenses/>.

package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu/instructions"
)

// Sentinel error patterns.
const (
	UnknownInstruction = "assembler: unknown instruction (%s)"
	MalformedOperand   = "assembler: malformed operand (%s)"
	LineError          = "assembler: line %d: %v"
	ReadError          = "assembler: %v"
)

// the character that begins a comment. the comment continues to the end of
// the line
const commentChar = ";"

// Instruction is a single line of source that has been parsed.
type Instruction struct {
	// line number in the source. the first line is numbered one. zero if the
	// instruction was not parsed as part of a larger source
	Line int

	Defn instructions.Definition

	// the operand value. for the relative addressing mode this is the signed
	// displacement
	Operand uint16
}

// Bytes returns the encoded instruction. The opcode is followed by the
// operand bytes in little-endian order.
func (ins Instruction) Bytes() []uint8 {
	b := []uint8{ins.Defn.OpCode}
	switch ins.Defn.AddressingMode.OperandBytes() {
	case 1:
		b = append(b, uint8(ins.Operand))
	case 2:
		b = append(b, uint8(ins.Operand), uint8(ins.Operand>>8))
	}
	return b
}

// String returns the instruction in canonical assembler syntax. Parsing the
// string with ParseLine() results in an identical instruction.
func (ins Instruction) String() string {
	switch ins.Defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("%s #$%02x", ins.Defn.Operator, ins.Operand)
	case instructions.ZeroPage, instructions.Relative:
		return fmt.Sprintf("%s $%02x", ins.Defn.Operator, ins.Operand)
	case instructions.Absolute:
		return fmt.Sprintf("%s $%04x", ins.Defn.Operator, ins.Operand)
	}
	return ins.Defn.Operator.String()
}

// ParseLine parses a single line of source. The boolean return value is false
// if the line contains no instruction, for example if it is blank or is only
// a comment.
func ParseLine(line string) (Instruction, bool, error) {
	if i := strings.Index(line, commentChar); i >= 0 {
		line = line[:i]
	}

	f := strings.Fields(line)
	switch len(f) {
	case 0:
		return Instruction{}, false, nil
	case 1:
		f = append(f, "")
	case 2:
	default:
		return Instruction{}, false, curated.Errorf(MalformedOperand, strings.Join(f[1:], " "))
	}

	op, err := instructions.ParseOperator(f[0])
	if err != nil {
		return Instruction{}, false, curated.Errorf(UnknownInstruction, f[0])
	}

	defn, operand, err := resolve(op, f[1])
	if err != nil {
		return Instruction{}, false, err
	}

	return Instruction{Defn: defn, Operand: operand}, true, nil
}

// resolve the addressing mode from the operand syntax and find the
// instruction definition for the operator and addressing mode.
func resolve(op instructions.Operator, operand string) (instructions.Definition, uint16, error) {
	var modes []instructions.AddressingMode
	var v uint64
	var err error

	switch {
	case operand == "":
		modes = []instructions.AddressingMode{instructions.Implied, instructions.Accumulator}

	case strings.HasPrefix(operand, "#$"):
		v, err = parseHex(operand[2:], 2)
		modes = []instructions.AddressingMode{instructions.Immediate}

	case strings.HasPrefix(operand, "$"):
		switch len(operand) - 1 {
		case 2:
			v, err = parseHex(operand[1:], 2)
			modes = []instructions.AddressingMode{instructions.ZeroPage, instructions.Relative}
		case 4:
			v, err = parseHex(operand[1:], 4)
			modes = []instructions.AddressingMode{instructions.Absolute}
		default:
			err = fmt.Errorf("wrong number of digits")
		}

	default:
		err = fmt.Errorf("unrecognised syntax")
	}

	if err != nil {
		return instructions.Definition{}, 0, curated.Errorf(MalformedOperand, fmt.Sprintf("%s: %v", operand, err))
	}

	for _, m := range modes {
		if defn, err := instructions.Lookup(op, m); err == nil {
			return defn, uint16(v), nil
		}
	}

	if operand == "" {
		return instructions.Definition{}, 0, curated.Errorf(UnknownInstruction, op)
	}
	return instructions.Definition{}, 0, curated.Errorf(UnknownInstruction, fmt.Sprintf("%s %s", op, operand))
}

// parseHex parses a string of exactly n hexadecimal digits.
func parseHex(s string, n int) (uint64, error) {
	if len(s) != n {
		return 0, fmt.Errorf("expected %d hex digits", n)
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("not a hex value")
	}
	return v, nil
}

// Parse the source into a list of instructions. The first error encountered
// is returned with the line number on which it occurred.
func Parse(r io.Reader) ([]Instruction, error) {
	var program []Instruction

	scanner := bufio.NewScanner(r)
	var num int
	for scanner.Scan() {
		num++
		ins, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, curated.Errorf(LineError, num, err)
		}
		if ok {
			ins.Line = num
			program = append(program, ins)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ReadError, err)
	}

	return program, nil
}

// AssembleReader assembles the source read from the io.Reader. On error, no
// bytes are returned.
func AssembleReader(r io.Reader) ([]uint8, error) {
	program, err := Parse(r)
	if err != nil {
		return nil, err
	}

	var b []uint8
	for _, ins := range program {
		b = append(b, ins.Bytes()...)
	}

	return b, nil
}

// Assemble the source string. On error, no bytes are returned.
func Assemble(source string) ([]uint8, error) {
	return AssembleReader(strings.NewReader(source))
}
