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

package execution

import (
	"fmt"
	"strings"

	"github.com/appleie/appleie/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the emulated
// CPU. As the execution continues, more information is acquired and detail
// added to the Result.
//
// The Final field indicates whether the last cycle of the instruction has been
// executed. An instance of Result with a Final value of false can still be
// used but with the caveat that the information is incomplete.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a copy of the instruction definition. a Definition with an Operator of
	// NoOperator indicates that the instruction has not been decoded
	Defn instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully
	// decoded
	ByteCount int

	// the operand data. for the relative addressing mode this is the signed
	// displacement and not the branch target
	InstructionData uint16

	// the number of cycles the instruction took to execute
	Cycles int

	// whether a branch instruction succeeded
	BranchSuccess bool

	// whether this data has been finalised - some fields in this struct will
	// be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// IsDecoded returns true if the opcode has been decoded.
func (r Result) IsDecoded() bool {
	return r.Defn.Operator != instructions.NoOperator
}

// Operand returns the operand in the canonical assembler syntax for the
// addressing mode.
func (r Result) Operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.ZeroPage, instructions.Relative:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	}
	return ""
}

// String returns the address of the instruction and the instruction in
// assembler syntax. For branches the result of the branch is also shown.
func (r Result) String() string {
	if !r.IsDecoded() {
		return fmt.Sprintf("%04x ???", r.Address)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", r.Address, r.Defn.Operator))
	if o := r.Operand(); o != "" {
		s.WriteString(" ")
		s.WriteString(o)
	}

	if r.Final && r.Defn.IsBranch() {
		if r.BranchSuccess {
			s.WriteString(" (branched)")
		} else {
			s.WriteString(" (not branched)")
		}
	}

	return s.String()
}
