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

package hardware

import (
	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu/execution"
)

// InstructionLimit is the pattern of the error returned by Run() when the
// limit preference has been reached.
const InstructionLimit = "hardware: instruction limit reached (%d)"

// Run the emulation until the CPU halts. The hook function, if not nil, is
// called after every instruction and can stop the run by returning an error.
//
// If the limit preference is not zero then the run will end with an
// InstructionLimit error after that many instructions.
func (m *Machine) Run(hook func(*execution.Result) error) error {
	limit := m.Prefs.Limit.Get().(int)

	var count int

	return m.CPU.Run(func(r *execution.Result) error {
		if hook != nil {
			if err := hook(r); err != nil {
				return err
			}
		}

		count++
		if limit > 0 && count >= limit && !m.CPU.Halted() {
			return curated.Errorf(InstructionLimit, limit)
		}

		return nil
	})
}
