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

// Package cpubus defines the interfaces through which the memory system is
// reached by the CPU and by the debugger.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. An address that is not mapped to any area of memory should result in
// an error. Writes to read-only memory should also result in an error.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the operations for the memory system when accessed from
// the debugger. Unlike the Memory interface, Poke() can write to read-only
// memory. Unmapped addresses still result in an error.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
