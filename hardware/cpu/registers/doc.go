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

// Package registers implements the three types of registers found in the
// 6502: the 8bit general purpose registers (which are also used for the stack
// pointer), the 16bit program counter and the status register.
//
// The general purpose Register type implements the arithmetic and logical
// primitives of the CPU. The primitives return the carry and overflow state
// of the operation but do not touch the status register. It is up to the
// caller to update the status register as appropriate. For example:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//	sr.Sign = a.IsNegative()
//
// In this case, the zero flag in the status register will be false and the
// sign flag will be true.
package registers
