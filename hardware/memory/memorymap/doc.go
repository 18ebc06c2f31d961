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

// Package memorymap describes the layout of the address space. There are two
// areas of memory: RAM, which begins at address zero and is of a configurable
// size, and an optional 8KB ROM at the very top of the address space.
// Addresses outside of these two areas are unmapped.
//
// Within RAM, the first page is the zero page and the second page is the
// stack. The RAM size must therefore be at least two pages.
//
// The Summary() function returns a string detailing the areas of a Map.
// Useful for reference.
package memorymap
