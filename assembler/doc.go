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

// Package assembler converts mnemonic source into a stream of bytes that can
// be loaded into memory and executed by the CPU.
//
// Each line of source contains at most one instruction:
//
//	MNEMONIC [OPERAND] [; comment]
//
// Mnemonics are case insensitive. The addressing mode is inferred from the
// syntax of the operand:
//
//	#$XX     Immediate
//	$XX      ZeroPage (or Relative for the branch instructions)
//	$XXXX    Absolute
//	         Implied (or Accumulator for the shift instructions)
//
// The opcode table in the instructions package is shared with the CPU so
// every instruction that can be assembled will be decoded to the same
// operator and addressing mode.
package assembler
