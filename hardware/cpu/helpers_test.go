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

package cpu_test

import (
	"testing"

	"github.com/appleie/appleie/hardware/cpu"
	"github.com/appleie/appleie/hardware/memory"
	"github.com/appleie/appleie/hardware/memory/memorymap"
	"github.com/appleie/appleie/test"
)

const origin = memorymap.DefaultOrigin

// newCPU returns a CPU with the program loaded at the origin address and the
// PC pointing to it.
func newCPU(t *testing.T, program ...uint8) (*cpu.CPU, *memory.Memory) {
	t.Helper()

	mem, err := memory.NewMemory(memorymap.DefaultRAMSize, nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Load(origin, program))

	mc := cpu.NewCPU(mem)
	mc.LoadPC(origin)

	return mc, mem
}

// step executes the number of instructions, failing the test on error.
func step(t *testing.T, mc *cpu.CPU, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, mc.ExecuteInstruction())
		test.DemandSuccess(t, mc.LastResult.IsValid())
	}
}

// testFlags compares the status register string representation.
func testFlags(t *testing.T, mc *cpu.CPU, expected string) {
	t.Helper()
	test.ExpectEquality(t, mc.Status.String(), expected)
}
