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
	"fmt"
	"os"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu"
	"github.com/appleie/appleie/hardware/memory"
	"github.com/appleie/appleie/hardware/preferences"
)

// Sentinel error patterns.
const (
	MachineError = "hardware: %v"
	ROMError     = "hardware: rom: %v"
)

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences
	CPU   *cpu.CPU
	Mem   *memory.Memory

	// the origin of the most recent call to Load(). the PC is loaded with
	// this value on Reset()
	origin uint16
}

// NewMachine creates a new Machine and everything associated with the
// hardware. Memory is created according to the preferences, including the ROM
// image if one is specified.
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		return nil, curated.Errorf(MachineError, "preferences are required")
	}

	m := &Machine{
		Prefs:  prefs,
		origin: prefs.OriginAddress(),
	}

	var rom []uint8
	if fn := prefs.ROM.String(); fn != "" {
		var err error
		rom, err = os.ReadFile(fn)
		if err != nil {
			return nil, curated.Errorf(ROMError, err)
		}
	}

	var err error
	m.Mem, err = memory.NewMemory(prefs.RAMSize.Get().(int), rom)
	if err != nil {
		return nil, curated.Errorf(MachineError, err)
	}

	m.CPU = cpu.NewCPU(m.Mem)
	m.CPU.LoadPC(m.origin)

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s cycles=%d", m.CPU, m.CPU.Clock)
}

// Load copies the data into memory at the origin address and points the PC
// at the first byte. The CPU is otherwise unchanged.
func (m *Machine) Load(origin uint16, data []uint8) error {
	if err := m.Mem.Load(origin, data); err != nil {
		return curated.Errorf(MachineError, err)
	}
	m.origin = origin
	m.CPU.LoadPC(origin)
	return nil
}

// Reset the CPU and clear RAM. The PC is loaded with the origin address of
// the most recent call to Load(), or the origin preference if there has been
// no load. Note that the loaded program will have been cleared unless it was
// loaded into ROM.
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.CPU.Reset()
	m.CPU.LoadPC(m.origin)
}

// Origin returns the address of the most recent load.
func (m *Machine) Origin() uint16 {
	return m.origin
}
