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

// Package script runs Starlark programs against the emulated machine. The
// following builtins are available to scripts:
//
//	assemble(src)                 assemble source and return a list of bytes
//	load_program(origin, program) load a list of bytes and point the PC at it
//	run()                         run until the CPU halts. returns the number of instructions
//	step()                        execute one instruction. returns the disassembly
//	reset()                       reset the CPU and clear RAM
//	reg(name)                     value of register A, X, Y, SP, SR or PC
//	flag(name)                    state of the status flag. eg. "C" or "Carry"
//	peek(address)                 read memory
//	poke(address, value)          write memory
//	cycles()                      number of cycles executed since reset
//	halted()                      whether the CPU has halted
//
// The output of the Starlark print() function is written to the output
// specified in the Run() function.
package script
