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

// Package instructions defines the instruction set of the 6502. Each
// instruction is described by a Definition, and the table of Definitions is
// shared by the CPU (for decoding), the assembler (for encoding) and the
// disassembler.
//
// Only the standard, documented instructions are defined and only in the
// addressing modes supported by the emulation: implied, accumulator,
// immediate, relative, absolute and zero page. Opcodes not in the table are
// illegal and Decode() will return an error for them.
//
// The table is immutable once the package has been initialised and is safe
// for concurrent use.
package instructions
