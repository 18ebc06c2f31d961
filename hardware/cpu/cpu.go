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
	"fmt"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu/execution"
	"github.com/appleie/appleie/hardware/cpu/instructions"
	"github.com/appleie/appleie/hardware/cpu/registers"
	"github.com/appleie/appleie/hardware/memory/cpubus"
	"github.com/appleie/appleie/hardware/memory/memorymap"
)

// Sentinel error patterns.
const (
	TruncatedOperand = "cpu: truncated operand at %#04x: %v"
	MemoryOutOfRange = "cpu: memory out of range: %v"
	NotImplemented   = "cpu: not implemented: %v"
)

// CPU implements the 6502. Register logic is implemented by the Register type
// in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// the number of cycles executed since the last reset
	Clock uint64

	// the current stage of the fetch-decode-execute cycle
	State State

	// the result of the most recent instruction. the Final field of the
	// result is false if the instruction did not complete
	LastResult execution.Result

	// some operations only need an accumulator
	acc8 registers.Register

	mem cpubus.Memory
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// CPU is returned in its reset state.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:  mem,
		acc8: registers.NewRegister(0, "accumulator"),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and the clock. The PC is set to zero and
// should be loaded with LoadPC() before execution.
func (mc *CPU) Reset() {
	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewRegister(0, "SP")
	mc.Status = registers.NewStatusRegister()
	mc.Clock = 0
	mc.State = Fetching
	mc.LastResult.Reset()
}

// LoadPC loads the address into the PC. Any halted state is cleared.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC.Load(address)
	if mc.State == Halted {
		mc.State = Fetching
	}
}

// Halted returns true if the CPU has encountered a BRK instruction.
func (mc *CPU) Halted() bool {
	return mc.State == Halted
}

// read8Bit returns 8bit value from the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, curated.Errorf(MemoryOutOfRange, err)
	}
	return v, nil
}

// write8Bit writes 8 bits to the specified address.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	if err := mc.mem.Write(address, value); err != nil {
		return curated.Errorf(MemoryOutOfRange, err)
	}
	return nil
}

// push value onto the stack. the stack pointer is decremented after the write
func (mc *CPU) push(value uint8) error {
	if err := mc.write8Bit(memorymap.OriginStack|mc.SP.Address(), value); err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 1)
	return nil
}

// pull value from the stack. the stack pointer is incremented before the read
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8Bit(memorymap.OriginStack | mc.SP.Address())
}

// pullStatus loads the status register from the stack. bits 4 and 5 of the
// pulled value are ignored.
func (mc *CPU) pullStatus() error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	brk := mc.Status.Break
	mc.Status.Load(v)
	mc.Status.Break = brk
	return nil
}

// ExecuteInstruction performs one iteration of the fetch-decode-execute
// cycle. If the CPU is halted then the function returns immediately with no
// error.
//
// On error the CPU is left in the state it was in when the error occurred.
// The LastResult field will not be Final.
func (mc *CPU) ExecuteInstruction() error {
	if mc.State == Halted {
		return nil
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// fetch
	mc.State = Fetching
	opcode, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return err
	}
	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1

	// decode
	mc.State = Decoding
	defn, err := instructions.Decode(opcode)
	if err != nil {
		return err
	}
	mc.LastResult.Defn = defn

	// resolve operand
	mc.State = Resolving
	operand, err := mc.resolve(defn.AddressingMode)
	if err != nil {
		return err
	}

	// execute
	mc.State = Executing
	if err := mc.execute(defn, operand); err != nil {
		return err
	}

	mc.LastResult.Cycles = defn.Cycles
	mc.LastResult.Final = true
	mc.Clock += uint64(defn.Cycles)

	if defn.Operator == instructions.BRK {
		mc.State = Halted
	} else {
		mc.State = Fetching
	}

	return nil
}

// Run executes instructions until the CPU halts or an error occurs. The hook
// function, if not nil, is called with the result of every instruction,
// including the instruction that halted the CPU. An error from the hook
// function stops the run and is returned.
func (mc *CPU) Run(hook func(*execution.Result) error) error {
	for mc.State != Halted {
		if err := mc.ExecuteInstruction(); err != nil {
			return err
		}
		if hook != nil {
			r := mc.LastResult
			if err := hook(&r); err != nil {
				return err
			}
		}
	}
	return nil
}
