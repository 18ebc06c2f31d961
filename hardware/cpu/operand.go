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

package cpu

import (
	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu/instructions"
)

// Operand is the result of resolving the addressing mode of an instruction.
type Operand struct {
	Mode instructions.AddressingMode

	// the operand bytes as read from memory. for zero page and absolute
	// addressing this is the address. for relative addressing this is the
	// unsigned form of the signed displacement
	Data uint16

	// number of operand bytes read
	Bytes int

	// the effective address. for relative addressing this is the branch
	// target. not used for implied, accumulator and immediate addressing
	Address uint16
}

// Value returns the immediate value of the operand.
func (o Operand) Value() uint8 {
	return uint8(o.Data)
}

// resolve reads the operand bytes for the addressing mode. The PC should be
// pointing to the byte after the opcode and is advanced past the operand.
func (mc *CPU) resolve(mode instructions.AddressingMode) (Operand, error) {
	o := Operand{Mode: mode}

	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return o, nil

	case instructions.Immediate:
		v, err := mc.read8BitPC()
		if err != nil {
			return o, err
		}
		o.Data = uint16(v)
		o.Bytes = 1

	case instructions.ZeroPage:
		v, err := mc.read8BitPC()
		if err != nil {
			return o, err
		}
		o.Data = uint16(v)
		o.Bytes = 1
		o.Address = uint16(v)

	case instructions.Absolute:
		lo, err := mc.read8BitPC()
		if err != nil {
			return o, err
		}
		hi, err := mc.read8BitPC()
		if err != nil {
			return o, err
		}
		o.Data = (uint16(hi) << 8) | uint16(lo)
		o.Bytes = 2
		o.Address = o.Data

	case instructions.Relative:
		v, err := mc.read8BitPC()
		if err != nil {
			return o, err
		}
		o.Data = uint16(v)
		o.Bytes = 1

		// the displacement is relative to the address after the operand.
		// sign extension of the displacement means that adding it to the
		// PC will wrap around for negative values
		o.Address = mc.PC.Address() + uint16(int16(int8(v)))

	default:
		return o, curated.Errorf(NotImplemented, mode)
	}

	mc.LastResult.InstructionData = o.Data

	return o, nil
}

// read8BitPC reads the byte at the PC and advances the PC.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, curated.Errorf(TruncatedOperand, mc.PC.Address(), err)
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v, nil
}
