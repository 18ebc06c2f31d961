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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/appleie/appleie/hardware/cpu/instructions"
	"github.com/appleie/appleie/hardware/cpu/registers"
)

// Entry is a disassembled instruction.
type Entry struct {
	// the address of the opcode
	Address uint16

	Defn instructions.Definition

	// the operand value. for the relative addressing mode this is the signed
	// displacement and not the branch target
	Operand uint16

	// the opcode followed by the operand bytes
	Bytecode []uint8
}

// String returns the instruction in the syntax of the assembler package.
func (e Entry) String() string {
	switch e.Defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("%s #$%02x", e.Defn.Operator, e.Operand)
	case instructions.ZeroPage, instructions.Relative:
		return fmt.Sprintf("%s $%02x", e.Defn.Operator, e.Operand)
	case instructions.Absolute:
		return fmt.Sprintf("%s $%04x", e.Defn.Operator, e.Operand)
	}
	return e.Defn.Operator.String()
}

// BytecodeString returns the bytes of the instruction as a string of hex
// values.
func (e Entry) BytecodeString() string {
	s := make([]string, len(e.Bytecode))
	for i, b := range e.Bytecode {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

// Next returns the address of the next instruction in memory.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytecode))
}

// BranchDestination returns the address of the instruction executed if the
// branch succeeds. Returns false if the entry is not a branch instruction.
func (e Entry) BranchDestination() (uint16, bool) {
	if !e.Defn.IsBranch() {
		return 0, false
	}

	// create a mock register with the address of the next instruction as the
	// initial value
	pc := registers.NewProgramCounter(e.Next())

	// because we're doing 16 bit arithmetic with an 8bit value, we need to
	// make sure the sign bit has been propogated to the more-significant bits
	operand := e.Operand
	if operand&0x0080 == 0x0080 {
		operand |= 0xff00
	}

	// add the 2s-complement value to the mock program counter
	pc.Add(operand)

	return pc.Address(), true
}
