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

// Package memory implements the memory of the machine: an area of RAM and an
// optional area of ROM, as described by the memorymap package.
//
// The Memory type implements the cpubus.Memory interface used by the CPU and
// the cpubus.DebugBus interface used by the debugger. Accesses to unmapped
// addresses always result in an AddressError. Writes by the CPU to ROM result
// in a ReadOnlyAddress error. No access will ever panic or alias to another
// address.
//
// The Load() function copies a program into memory. Loading is allowed into
// ROM but not into unmapped areas. A Load() that does not fit will not write
// any data.
package memory
