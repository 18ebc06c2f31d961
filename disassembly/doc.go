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

// Package disassembly converts a stream of bytes into a list of instructions.
// Entries are rendered in the syntax accepted by the assembler package so a
// disassembly can be assembled to reproduce the original bytes.
//
// For a quick disassembly of a program that has not been loaded the
// FromBytes() function can be used. Debuggers will probably find it more
// useful to disassemble from the memory of an already instantiated machine
// with FromMemory().
package disassembly
