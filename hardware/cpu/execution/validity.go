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

package execution

import (
	"github.com/appleie/appleie/curated"
)

// InvalidResult is the pattern of errors returned by IsValid().
const InvalidResult = "execution: %v"

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(InvalidResult, "not finalised")
	}

	if !r.IsDecoded() {
		return curated.Errorf(InvalidResult, "not decoded")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// cycles are always the number in the definition
	if r.Cycles != r.Defn.Cycles {
		return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Operator,
			r.Cycles,
			r.Defn.Cycles)
	}

	// only branch instructions can branch
	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf(InvalidResult, "branch success for non-branch instruction")
	}

	return nil
}
