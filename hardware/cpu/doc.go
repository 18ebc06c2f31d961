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

// Package cpu emulates the 6502 microprocessor. The emulation executes one
// complete instruction on every call to ExecuteInstruction(). Each call
// performs one iteration of the fetch-decode-execute cycle:
//
//	Fetching -> Decoding -> Resolving -> Executing -> Fetching
//
// The Resolving stage reads the operand bytes for the instruction's
// addressing mode. The current stage is available in the State field of the
// CPU. The BRK instruction halts the CPU and further calls to
// ExecuteInstruction() have no effect until the CPU is Reset().
//
// The result of the most recently executed instruction is kept in the
// LastResult field. The Run() function repeatedly calls ExecuteInstruction()
// and passes the result of every instruction to a hook function. A hook
// function returning an error stops the run; this is how instruction limits
// and the debugger's break conditions are implemented.
//
// Cycle counts are the documented cycle count of each instruction and are
// accumulated in the Clock field. There is no attempt to pace the emulation
// to the speed of a real CPU.
//
// Decimal mode arithmetic is not supported. ADC and SBC instructions
// executed while the DecimalMode flag is set return a NotImplemented error.
//
// Errors from the CPU are curated errors and are terminal for the program.
// The BRK instruction is not an error.
package cpu
