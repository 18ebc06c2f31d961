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

package hardware_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware"
	"github.com/appleie/appleie/hardware/cpu/execution"
	"github.com/appleie/appleie/hardware/memory"
	"github.com/appleie/appleie/hardware/preferences"
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

func TestStep(t *testing.T) {
	m := newMachine(t)

	// LDA #$c0; BRK
	test.DemandSuccess(t, m.Load(0x0800, []uint8{0xa9, 0xc0, 0x00}))
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x0800))

	r, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "0800 LDA #$c0")
	test.ExpectEquality(t, m.CPU.A.Value(), uint8(0xc0))
	test.ExpectSuccess(t, m.CPU.Status.Sign)
	test.ExpectFailure(t, m.CPU.Status.Zero)

	r, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.Address, uint16(0x0802))
	test.ExpectSuccess(t, m.CPU.Halted())

	_, err = m.Step()
	test.ExpectSuccess(t, curated.Is(err, hardware.Halted))

	// reset allows the program to be stepped again but the program has been
	// cleared from RAM. the first instruction is now BRK
	m.Reset()
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x0800))
	r, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "0800 BRK")
}

func TestRun(t *testing.T) {
	m := newMachine(t)

	// LDA #$c0; TAX; INX; ADC #$c4; BRK
	test.DemandSuccess(t, m.Load(0x1000, []uint8{0xa9, 0xc0, 0xaa, 0xe8, 0x69, 0xc4, 0x00}))

	var count int
	err := m.Run(func(r *execution.Result) error {
		count++
		return r.IsValid()
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, count, 5)
	test.ExpectEquality(t, m.String(), "PC=1007 A=84 X=c1 Y=00 SP=00 SR=Sv-BdizC cycles=15")
}

func TestRunHookError(t *testing.T) {
	m := newMachine(t)

	// NOP; NOP; BRK
	test.DemandSuccess(t, m.Load(0x0800, []uint8{0xea, 0xea, 0x00}))

	stop := errors.New("stop")
	err := m.Run(func(r *execution.Result) error {
		return stop
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, m.CPU.PC.Address(), uint16(0x0801))
}

func TestLimit(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.Prefs.Set(preferences.KeyLimit, 10))

	// JMP $0800
	test.DemandSuccess(t, m.Load(0x0800, []uint8{0x4c, 0x00, 0x08}))
	err := m.Run(nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.InstructionLimit))
	test.ExpectEquality(t, m.CPU.Clock, uint64(30))

	// a program that halts on the final permitted instruction is not an error
	test.DemandSuccess(t, m.Prefs.Set(preferences.KeyLimit, 2))
	test.DemandSuccess(t, m.Load(0x0800, []uint8{0xea, 0x00}))
	test.ExpectSuccess(t, m.Run(nil))
}

func TestLoadError(t *testing.T) {
	m := newMachine(t)

	// data runs beyond the end of RAM
	err := m.Load(0x1ffe, []uint8{0xea, 0xea, 0xea})
	test.ExpectSuccess(t, curated.Has(err, memory.AddressError))
	test.ExpectEquality(t, m.Origin(), uint16(0x0800))
}

func TestROM(t *testing.T) {
	home := t.TempDir()
	t.Setenv(resources.EnvHome, home)

	// a small ROM is aligned with the top of memory
	fn := filepath.Join(home, "test.rom")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0xea, 0x00}, 0o600))

	p, err := preferences.NewPreferences()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Set(preferences.KeyROM, fn))

	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)

	v, err := m.Mem.Peek(0xfffe)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xea))

	m.CPU.LoadPC(0xfffe)
	test.ExpectSuccess(t, m.Run(nil))
	test.ExpectSuccess(t, m.CPU.Halted())

	// missing ROM file
	test.DemandSuccess(t, p.Set(preferences.KeyROM, filepath.Join(home, "missing.rom")))
	_, err = hardware.NewMachine(p)
	test.ExpectSuccess(t, curated.Is(err, hardware.ROMError))
}
