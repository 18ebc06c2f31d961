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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu"
	"github.com/appleie/appleie/hardware/cpu/execution"
	"github.com/appleie/appleie/hardware/cpu/instructions"
	"github.com/appleie/appleie/hardware/cpu/registers"
	"github.com/appleie/appleie/hardware/memory"
	"github.com/appleie/appleie/hardware/memory/memorymap"
	"github.com/appleie/appleie/test"
)

func TestReset(t *testing.T) {
	mc, _ := newCPU(t)
	mc.Reset()
	test.ExpectEquality(t, mc.String(), "PC=0000 A=00 X=00 Y=00 SP=00 SR=sv-Bdizc")
	test.ExpectEquality(t, mc.Status.Value(), registers.DefaultStatus)
	test.ExpectEquality(t, mc.State, cpu.Fetching)
	test.ExpectEquality(t, mc.Clock, uint64(0))
}

func TestLoadFlags(t *testing.T) {
	// LDA #$00
	mc, _ := newCPU(t, 0xa9, 0x00)
	step(t, mc, 1)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)

	// LDA #$80
	mc, _ = newCPU(t, 0xa9, 0x80)
	step(t, mc, 1)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)

	// LDA #$01
	mc, _ = newCPU(t, 0xa9, 0x01)
	step(t, mc, 1)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
}

func TestProgramCounter(t *testing.T) {
	// NOP; LDA #$01; LDA $0000; JMP $0900
	mc, _ := newCPU(t, 0xea, 0xa9, 0x01, 0xad, 0x00, 0x00, 0x4c, 0x00, 0x09)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC.Address(), origin+1)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC.Address(), origin+3)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC.Address(), origin+6)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0900))
}

func TestHalt(t *testing.T) {
	// LDA #$c0; BRK
	mc, _ := newCPU(t, 0xa9, 0xc0, 0x00)

	step(t, mc, 1)
	test.ExpectEquality(t, mc.LastResult.Address, origin)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xc0))
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectEquality(t, mc.PC.Address(), origin+2)
	test.ExpectFailure(t, mc.Halted())

	step(t, mc, 1)
	test.ExpectEquality(t, mc.LastResult.Address, origin+2)
	test.ExpectSuccess(t, mc.Halted())
	test.ExpectSuccess(t, mc.Status.Break)
	test.ExpectEquality(t, mc.Clock, uint64(9))

	// executing a halted CPU does nothing
	pc := mc.PC.Address()
	test.ExpectSuccess(t, mc.ExecuteInstruction())
	test.ExpectEquality(t, mc.PC.Address(), pc)
	test.ExpectEquality(t, mc.Clock, uint64(9))

	// reset clears the halt
	mc.Reset()
	test.ExpectFailure(t, mc.Halted())
}

func TestDefaultProgram(t *testing.T) {
	// LDA #$c0; TAX; INX; ADC #$c4; BRK
	mc, _ := newCPU(t, 0xa9, 0xc0, 0xaa, 0xe8, 0x69, 0xc4, 0x00)

	var results []execution.Result
	err := mc.Run(func(r *execution.Result) error {
		results = append(results, *r)
		return nil
	})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(results), 5)

	test.ExpectEquality(t, results[0].String(), "0800 LDA #$c0")
	test.ExpectEquality(t, results[4].Defn.Operator, instructions.BRK)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x84))
	test.ExpectEquality(t, mc.X.Value(), uint8(0xc1))
	testFlags(t, mc, "Sv-BdizC")
	test.ExpectEquality(t, mc.Clock, uint64(2+2+2+2+7))
	test.ExpectSuccess(t, mc.Halted())
}

func TestADC(t *testing.T) {
	tests := []struct {
		a, v     uint8
		carryIn  bool
		result   uint8
		carry    bool
		overflow bool
		zero     bool
		negative bool
	}{
		{a: 0x50, v: 0x10, result: 0x60},
		{a: 0x50, v: 0x50, result: 0xa0, overflow: true, negative: true},
		{a: 0x50, v: 0x90, result: 0xe0, negative: true},
		{a: 0x50, v: 0xd0, result: 0x20, carry: true},
		{a: 0xd0, v: 0x90, result: 0x60, carry: true, overflow: true},
		{a: 0xff, v: 0x01, result: 0x00, carry: true, zero: true},
		{a: 0x7f, v: 0x00, carryIn: true, result: 0x80, overflow: true, negative: true},
	}

	for _, tt := range tests {
		// LDA #a; ADC #v
		mc, _ := newCPU(t, 0xa9, tt.a, 0x69, tt.v)
		step(t, mc, 1)
		mc.Status.Carry = tt.carryIn
		step(t, mc, 1)
		test.ExpectEquality(t, mc.A.Value(), tt.result, tt.a, "+", tt.v)
		test.ExpectEquality(t, mc.Status.Carry, tt.carry, tt.a, "+", tt.v)
		test.ExpectEquality(t, mc.Status.Overflow, tt.overflow, tt.a, "+", tt.v)
		test.ExpectEquality(t, mc.Status.Zero, tt.zero, tt.a, "+", tt.v)
		test.ExpectEquality(t, mc.Status.Sign, tt.negative, tt.a, "+", tt.v)
	}
}

func TestSBC(t *testing.T) {
	tests := []struct {
		a, v     uint8
		borrow   bool
		result   uint8
		carry    bool
		overflow bool
	}{
		{a: 0x50, v: 0xf0, result: 0x60},
		{a: 0x50, v: 0xb0, result: 0xa0, overflow: true},
		{a: 0x50, v: 0x30, result: 0x20, carry: true},
		{a: 0xd0, v: 0x70, result: 0x60, carry: true, overflow: true},
		{a: 0x00, v: 0x01, result: 0xff},
		{a: 0x05, v: 0x01, borrow: true, result: 0x03, carry: true},
	}

	for _, tt := range tests {
		// LDA #a; SBC #v
		mc, _ := newCPU(t, 0xa9, tt.a, 0xe9, tt.v)
		step(t, mc, 1)
		mc.Status.Carry = !tt.borrow
		step(t, mc, 1)
		test.ExpectEquality(t, mc.A.Value(), tt.result, tt.a, "-", tt.v)
		test.ExpectEquality(t, mc.Status.Carry, tt.carry, tt.a, "-", tt.v)
		test.ExpectEquality(t, mc.Status.Overflow, tt.overflow, tt.a, "-", tt.v)
	}
}

func TestDecimalMode(t *testing.T) {
	// SED; ADC #$01
	mc, _ := newCPU(t, 0xf8, 0x69, 0x01)
	step(t, mc, 1)
	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.NotImplemented))
	test.ExpectFailure(t, mc.LastResult.Final)

	// SED; SBC #$01
	mc, _ = newCPU(t, 0xf8, 0xe9, 0x01)
	step(t, mc, 1)
	err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.NotImplemented))
}

func TestCompare(t *testing.T) {
	// LDA #$40; CMP #$40; CMP #$41; CMP #$3f
	mc, _ := newCPU(t, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xc9, 0x3f)
	step(t, mc, 2)
	testFlags(t, mc, "sv-BdiZC")
	step(t, mc, 1)
	testFlags(t, mc, "Sv-Bdizc")
	step(t, mc, 1)
	testFlags(t, mc, "sv-BdizC")
	test.ExpectEquality(t, mc.A.Value(), uint8(0x40))

	// LDX #$10; CPX #$10; LDY #$10; CPY #$20
	mc, _ = newCPU(t, 0xa2, 0x10, 0xe0, 0x10, 0xa0, 0x10, 0xc0, 0x20)
	step(t, mc, 2)
	testFlags(t, mc, "sv-BdiZC")
	step(t, mc, 2)
	testFlags(t, mc, "Sv-Bdizc")
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x10))
}

func TestBIT(t *testing.T) {
	// LDA #$01; BIT $10
	mc, mem := newCPU(t, 0xa9, 0x01, 0x24, 0x10)
	mem.Poke(0x0010, 0xc0)
	step(t, mc, 2)
	testFlags(t, mc, "SV-BdiZc")
	test.ExpectEquality(t, mc.A.Value(), uint8(0x01))
}

func TestShifts(t *testing.T) {
	// LDA #$81; ASL A; ROL A; LSR A; ROR A
	mc, _ := newCPU(t, 0xa9, 0x81, 0x0a, 0x2a, 0x4a, 0x6a)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x05))
	test.ExpectFailure(t, mc.Status.Carry)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x81))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	// memory operand: ASL $10; INC $10; DEC $0010
	mc, mem := newCPU(t, 0x06, 0x10, 0xe6, 0x10, 0xce, 0x10, 0x00)
	mem.Poke(0x0010, 0x80)
	step(t, mc, 1)
	v, _ := mem.Peek(0x0010)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc, 1)
	v, _ = mem.Peek(0x0010)
	test.ExpectEquality(t, v, uint8(0x01))
	step(t, mc, 1)
	v, _ = mem.Peek(0x0010)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestStack(t *testing.T) {
	// LDA #$aa; PHA; LDA #$00; PLA
	mc, mem := newCPU(t, 0xa9, 0xaa, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	v, _ := mem.Peek(0x0100)
	test.ExpectEquality(t, v, uint8(0xaa))
	step(t, mc, 1)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc, 1)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xaa))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Sign)

	// PHP pushes with the break and unused bits set
	mc, mem = newCPU(t, 0x08, 0x28)
	mc.Status.Load(0x01)
	step(t, mc, 1)
	v, _ = mem.Peek(0x0100)
	test.ExpectEquality(t, v, uint8(0x31))

	// PLP ignores the break bit
	mem.Poke(0x0100, 0xc3)
	mc.Status.Break = false
	step(t, mc, 1)
	test.ExpectEquality(t, mc.Status.Value(), uint8(0xe3))
	test.ExpectFailure(t, mc.Status.Break)

	// TXS does not affect flags but TSX does
	mc, _ = newCPU(t, 0xa2, 0x80, 0xa9, 0x00, 0x9a, 0xba)
	step(t, mc, 3)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc, 1)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestSubroutine(t *testing.T) {
	// 0800 JSR $0810
	// 0803 BRK
	// 0810 LDX #$05
	// 0812 RTS
	mc, mem := newCPU(t, 0x20, 0x10, 0x08, 0x00)
	test.DemandSuccess(t, mem.Load(0x0810, []uint8{0xa2, 0x05, 0x60}))

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0810))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))

	// return address minus one, high byte first
	hi, _ := mem.Peek(0x0100)
	lo, _ := mem.Peek(0x01ff)
	test.ExpectEquality(t, hi, uint8(0x08))
	test.ExpectEquality(t, lo, uint8(0x02))

	test.DemandSuccess(t, mc.Run(nil))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x05))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.LastResult.Address, uint16(0x0803))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0804))
}

func TestRTI(t *testing.T) {
	mc, mem := newCPU(t, 0x40)

	// status, then PC low and high byte
	mc.SP.Load(0xfc)
	mem.Poke(0x01fd, 0xff)
	mem.Poke(0x01fe, 0x34)
	mem.Poke(0x01ff, 0x12)
	mc.Status.Break = false

	step(t, mc, 1)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0xef))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestBranches(t *testing.T) {
	// backwards branch
	// 0800 LDX #$03
	// 0802 DEX
	// 0803 BNE $fd
	// 0805 BRK
	mc, _ := newCPU(t, 0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00)

	step(t, mc, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0802))
	test.ExpectSuccess(t, mc.LastResult.BranchSuccess)

	test.DemandSuccess(t, mc.Run(nil))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x00))
	test.ExpectEquality(t, mc.Clock, uint64(2+3*(2+2)+7))

	// forwards branch
	// 0800 LDA #$00
	// 0802 BEQ $02
	// 0804 LDA #$01
	// 0806 BRK
	mc, _ = newCPU(t, 0xa9, 0x00, 0xf0, 0x02, 0xa9, 0x01, 0x00)
	test.DemandSuccess(t, mc.Run(nil))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))

	// branch not taken
	// 0800 SEC
	// 0801 BCC $10
	mc, _ = newCPU(t, 0x38, 0x90, 0x10)
	step(t, mc, 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0803))
	test.ExpectFailure(t, mc.LastResult.BranchSuccess)

	// every branch condition
	branches := []struct {
		opcode uint8
		flag   registers.Flag
		when   bool
	}{
		{0x10, registers.Sign, false},
		{0x30, registers.Sign, true},
		{0x50, registers.Overflow, false},
		{0x70, registers.Overflow, true},
		{0x90, registers.Carry, false},
		{0xb0, registers.Carry, true},
		{0xd0, registers.Zero, false},
		{0xf0, registers.Zero, true},
	}
	for _, b := range branches {
		for _, state := range []bool{true, false} {
			mc, _ = newCPU(t, b.opcode, 0x10)
			mc.Status.Set(b.flag, state)
			step(t, mc, 1)
			if state == b.when {
				test.ExpectEquality(t, mc.PC.Address(), uint16(0x0812), b.opcode)
			} else {
				test.ExpectEquality(t, mc.PC.Address(), uint16(0x0802), b.opcode)
			}
		}
	}
}

func TestErrors(t *testing.T) {
	// illegal opcode
	mc, _ := newCPU(t, 0x02)
	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, instructions.UnknownOpcode))
	test.ExpectEquality(t, mc.State, cpu.Decoding)

	// operand runs off the end of memory
	mem, err := memory.NewMemory(memorymap.DefaultRAMSize, nil)
	test.DemandSuccess(t, err)
	mem.Poke(0x1fff, 0xa9)
	mc = cpu.NewCPU(mem)
	mc.LoadPC(0x1fff)
	err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.TruncatedOperand))
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))
	test.ExpectEquality(t, mc.State, cpu.Resolving)

	// fetch from unmapped memory
	mc.LoadPC(0x3000)
	err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.MemoryOutOfRange))

	// store to unmapped memory: STA $3000
	mc, _ = newCPU(t, 0x8d, 0x00, 0x30)
	err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.MemoryOutOfRange))
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))
	test.ExpectEquality(t, mc.State, cpu.Executing)

	// store to ROM
	mem, err = memory.NewMemory(memorymap.DefaultRAMSize, []uint8{})
	test.DemandSuccess(t, err)
	mem.Load(origin, []uint8{0x8d, 0x00, 0xe0})
	mc = cpu.NewCPU(mem)
	mc.LoadPC(origin)
	err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Has(err, memory.ReadOnlyAddress))
}

func TestRunHook(t *testing.T) {
	// JMP $0800
	mc, _ := newCPU(t, 0x4c, 0x00, 0x08)

	errLimit := errors.New("limit")
	var count int
	err := mc.Run(func(r *execution.Result) error {
		count++
		if count == 10 {
			return errLimit
		}
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, errLimit))
	test.ExpectEquality(t, count, 10)
	test.ExpectEquality(t, mc.Clock, uint64(30))
}

// every entry in the instruction table can be executed
func TestEveryInstruction(t *testing.T) {
	for _, defn := range instructions.Definitions() {
		program := []uint8{defn.OpCode}
		switch defn.AddressingMode.OperandBytes() {
		case 1:
			program = append(program, 0x10)
		case 2:
			program = append(program, 0x10, 0x00)
		}

		mc, _ := newCPU(t, program...)
		err := mc.ExecuteInstruction()
		test.ExpectSuccess(t, err, defn.String())
		test.ExpectSuccess(t, mc.LastResult.IsValid(), defn.String())
		test.ExpectEquality(t, mc.LastResult.Defn, defn)
		test.ExpectEquality(t, mc.Clock, uint64(defn.Cycles))

		// instructions that don't change the flow of the program advance the
		// PC by the number of bytes in the instruction
		if defn.Effect != instructions.Flow && defn.Effect != instructions.Subroutine && defn.Effect != instructions.Interrupt {
			test.ExpectEquality(t, mc.PC.Address(), origin+uint16(defn.Bytes), defn.String())
		}
	}
}
