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
	"github.com/appleie/appleie/hardware/cpu/registers"
)

// value returns the value the instruction operates on.
func (mc *CPU) value(o Operand) (uint8, error) {
	switch o.Mode {
	case instructions.Immediate:
		return o.Value(), nil
	case instructions.Accumulator:
		return mc.A.Value(), nil
	case instructions.ZeroPage, instructions.Absolute:
		return mc.read8Bit(o.Address)
	}
	return 0, curated.Errorf(NotImplemented, o.Mode)
}

// setZN sets the zero and sign flags according to the register.
func (mc *CPU) setZN(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// rmw performs a read-modify-write operation on either the accumulator or
// the memory operand. the zero and sign flags are set by the result.
func (mc *CPU) rmw(o Operand, f func(r *registers.Register)) error {
	if o.Mode == instructions.Accumulator {
		f(&mc.A)
		mc.setZN(mc.A)
		return nil
	}

	v, err := mc.read8Bit(o.Address)
	if err != nil {
		return err
	}
	mc.acc8.Load(v)
	f(&mc.acc8)
	mc.setZN(mc.acc8)
	return mc.write8Bit(o.Address, mc.acc8.Value())
}

// compare sets flags as though the value has been subtracted from the
// register. the register is not changed.
func (mc *CPU) compare(r registers.Register, v uint8) {
	mc.acc8.Load(r.Value())
	mc.Status.Carry, _ = mc.acc8.Subtract(v, true)
	mc.setZN(mc.acc8)
}

// branch loads the PC with the branch target if the condition is true.
func (mc *CPU) branch(condition bool, o Operand) {
	if condition {
		mc.PC.Load(o.Address)
		mc.LastResult.BranchSuccess = true
	}
}

// execute the instruction. the PC is pointing to the next instruction.
func (mc *CPU) execute(defn instructions.Definition, o Operand) error {
	switch defn.Operator {
	case instructions.NOP:

	case instructions.CLC:
		mc.Status.Carry = false
	case instructions.CLD:
		mc.Status.DecimalMode = false
	case instructions.CLI:
		mc.Status.InterruptDisable = false
	case instructions.CLV:
		mc.Status.Overflow = false
	case instructions.SEC:
		mc.Status.Carry = true
	case instructions.SED:
		mc.Status.DecimalMode = true
	case instructions.SEI:
		mc.Status.InterruptDisable = true

	case instructions.LDA, instructions.LDX, instructions.LDY:
		v, err := mc.value(o)
		if err != nil {
			return err
		}
		r := mc.target(defn.Operator)
		r.Load(v)
		mc.setZN(*r)

	case instructions.STA:
		return mc.write8Bit(o.Address, mc.A.Value())
	case instructions.STX:
		return mc.write8Bit(o.Address, mc.X.Value())
	case instructions.STY:
		return mc.write8Bit(o.Address, mc.Y.Value())

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X)
	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y)
	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A)
	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A)
	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X)
	case instructions.TXS:
		// TXS does not affect any flags
		mc.SP.Load(mc.X.Value())

	case instructions.INX:
		mc.X.Add(1, false)
		mc.setZN(mc.X)
	case instructions.INY:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y)
	case instructions.DEX:
		mc.X.Add(0xff, false)
		mc.setZN(mc.X)
	case instructions.DEY:
		mc.Y.Add(0xff, false)
		mc.setZN(mc.Y)

	case instructions.INC:
		return mc.rmw(o, func(r *registers.Register) { r.Add(1, false) })
	case instructions.DEC:
		return mc.rmw(o, func(r *registers.Register) { r.Add(0xff, false) })

	case instructions.ASL:
		return mc.rmw(o, func(r *registers.Register) { mc.Status.Carry = r.ASL() })
	case instructions.LSR:
		return mc.rmw(o, func(r *registers.Register) { mc.Status.Carry = r.LSR() })
	case instructions.ROL:
		return mc.rmw(o, func(r *registers.Register) { mc.Status.Carry = r.ROL(mc.Status.Carry) })
	case instructions.ROR:
		return mc.rmw(o, func(r *registers.Register) { mc.Status.Carry = r.ROR(mc.Status.Carry) })

	case instructions.AND, instructions.EOR, instructions.ORA:
		v, err := mc.value(o)
		if err != nil {
			return err
		}
		switch defn.Operator {
		case instructions.AND:
			mc.A.AND(v)
		case instructions.EOR:
			mc.A.EOR(v)
		case instructions.ORA:
			mc.A.ORA(v)
		}
		mc.setZN(mc.A)

	case instructions.ADC, instructions.SBC:
		if mc.Status.DecimalMode {
			return curated.Errorf(NotImplemented, "decimal mode "+defn.Operator.String())
		}
		v, err := mc.value(o)
		if err != nil {
			return err
		}
		if defn.Operator == instructions.ADC {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(v, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(v, mc.Status.Carry)
		}
		mc.setZN(mc.A)

	case instructions.CMP, instructions.CPX, instructions.CPY:
		v, err := mc.value(o)
		if err != nil {
			return err
		}
		mc.compare(*mc.target(defn.Operator), v)

	case instructions.BIT:
		v, err := mc.value(o)
		if err != nil {
			return err
		}
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Overflow = v&0x40 == 0x40
		mc.Status.Sign = v&0x80 == 0x80

	case instructions.BCC:
		mc.branch(!mc.Status.Carry, o)
	case instructions.BCS:
		mc.branch(mc.Status.Carry, o)
	case instructions.BEQ:
		mc.branch(mc.Status.Zero, o)
	case instructions.BNE:
		mc.branch(!mc.Status.Zero, o)
	case instructions.BMI:
		mc.branch(mc.Status.Sign, o)
	case instructions.BPL:
		mc.branch(!mc.Status.Sign, o)
	case instructions.BVC:
		mc.branch(!mc.Status.Overflow, o)
	case instructions.BVS:
		mc.branch(mc.Status.Overflow, o)

	case instructions.JMP:
		mc.PC.Load(o.Address)

	case instructions.JSR:
		// the return address pushed onto the stack is the address of the
		// last byte of the JSR instruction
		ret := mc.PC.Address() - 1
		if err := mc.push(uint8(ret >> 8)); err != nil {
			return err
		}
		if err := mc.push(uint8(ret)); err != nil {
			return err
		}
		mc.PC.Load(o.Address)

	case instructions.RTS:
		ret, err := mc.pullAddress()
		if err != nil {
			return err
		}
		mc.PC.Load(ret + 1)

	case instructions.RTI:
		if err := mc.pullStatus(); err != nil {
			return err
		}
		ret, err := mc.pullAddress()
		if err != nil {
			return err
		}
		mc.PC.Load(ret)

	case instructions.PHA:
		return mc.push(mc.A.Value())
	case instructions.PHP:
		return mc.push(mc.Status.Value() | uint8(registers.Break|registers.Unused))
	case instructions.PLA:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.A.Load(v)
		mc.setZN(mc.A)
	case instructions.PLP:
		return mc.pullStatus()

	case instructions.BRK:
		// there are no interrupt vectors. the CPU halts after the instruction
		// has completed
		mc.Status.Break = true

	default:
		return curated.Errorf(NotImplemented, defn.Operator)
	}

	return nil
}

// target returns the register that is the subject of a load or compare
// operation.
func (mc *CPU) target(op instructions.Operator) *registers.Register {
	switch op {
	case instructions.LDX, instructions.CPX:
		return &mc.X
	case instructions.LDY, instructions.CPY:
		return &mc.Y
	}
	return &mc.A
}

// pullAddress pulls a 16bit address from the stack, low byte first.
func (mc *CPU) pullAddress() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
