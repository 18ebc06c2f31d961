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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware"
	"github.com/appleie/appleie/hardware/preferences"
	"github.com/appleie/appleie/performance"
	"github.com/appleie/appleie/resources"
	"github.com/appleie/appleie/test"
)

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	t.Setenv(resources.EnvHome, t.TempDir())

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)

	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)

	return m
}

func TestCheck(t *testing.T) {
	m := newMachine(t)

	// LDX #$10; DEX; BNE $fd; BRK
	program := []uint8{0xa2, 0x10, 0xca, 0xd0, 0xfd, 0x00}

	var out test.CompareWriter
	rep, err := performance.Check(&out, m, program, 20*time.Millisecond)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, rep.Runs > 0)
	test.ExpectEquality(t, rep.Instructions, rep.Runs*34)
	test.ExpectSuccess(t, strings.Contains(out.String(), "runs"))
	test.ExpectSuccess(t, rep.MHz() > 0)
}

func TestCheckNoHalt(t *testing.T) {
	m := newMachine(t)

	// JMP $0800
	_, err := performance.Check(nil, m, []uint8{0x4c, 0x00, 0x08}, 10*time.Millisecond)
	test.ExpectSuccess(t, curated.Is(err, performance.CheckError))
}

func TestProfile(t *testing.T) {
	dir := t.TempDir()
	cpuFile := filepath.Join(dir, "cpu.profile")
	memFile := filepath.Join(dir, "mem.profile")

	var ran bool
	err := performance.ProfileCPU(cpuFile, func() error {
		ran = true
		return nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ran)

	test.DemandSuccess(t, performance.ProfileMem(memFile))

	for _, fn := range []string{cpuFile, memFile} {
		_, err := os.Stat(fn)
		test.ExpectSuccess(t, err, fn)
	}
}
