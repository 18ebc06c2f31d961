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

package cpu

// State is the stage of the fetch-decode-execute cycle.
type State int

// List of valid State values.
const (
	Fetching State = iota
	Decoding
	Resolving
	Executing
	Halted
)

func (s State) String() string {
	switch s {
	case Fetching:
		return "Fetching"
	case Decoding:
		return "Decoding"
	case Resolving:
		return "Resolving"
	case Executing:
		return "Executing"
	case Halted:
		return "Halted"
	}
	return "unknown state"
}
