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

// Halted is the pattern of the error returned by Step() if the CPU has
// halted.
const Halted = "hardware: cpu is halted"

// Step the emulation one CPU instruction. A copy of the instruction's
// execution result is returned.
//
// Stepping a halted CPU is an error. Use Reset() or Load() to restart
// execution.
func (m *Machine) Step() (*execution.Result, error) {
	if m.CPU.Halted() {
		return nil, curated.Errorf(Halted)
	}

	if err := m.CPU.ExecuteInstruction(); err != nil {
		return nil, err
	}

	r := m.CPU.LastResult
	return &r, nil
}
