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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what identifies a curated error. Packages that want to offer
// sentinel errors declare the pattern as an exported const string and callers
// use the Is() and Has() functions to test for it. For example, the
// instructions package declares:
//
//	const UnknownOpcode = "unknown opcode (%#02x)"
//
// and the CPU can check for it after a failed decode:
//
//	if curated.Is(err, instructions.UnknownOpcode) {
//		...
//	}
//
// Has() is similar to Is() but checks the whole of the error chain. The CPU
// wraps memory errors in its own patterns, so to find out if a run failed
// because of an unmapped address:
//
//	if curated.Has(err, memory.AddressError) {
//		...
//	}
//
// The Error() function for curated errors normalises the error chain.
// Specifically, adjacent duplicate parts are removed. A chain is a string of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// This means that a function does not need to worry about whether the error
// it is wrapping has already been prefixed with the same context.
package curated
