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

package memory

import (
	"fmt"
	"strings"

	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/memory/memorymap"
)

// Sentinel error patterns.
const (
	AddressError    = "memory: unmapped address (%#04x)"
	ReadOnlyAddress = "memory: address is read-only (%#04x)"
	ROMImageSize    = "memory: ROM image must be no more than %d bytes (%d bytes)"
	LayoutError     = "memory: %v"
)

// Memory is the RAM and ROM of the machine.
type Memory struct {
	Map memorymap.Map

	ram []uint8
	rom []uint8
}

// NewMemory is the preferred method of initialisation for Memory. A nil rom
// means that no ROM is present. A ROM image smaller than the ROM area is
// aligned with the end of the address space so that the vectors at the top of
// memory are always part of the image.
func NewMemory(ramSize int, rom []uint8) (*Memory, error) {
	if len(rom) > memorymap.ROMSize {
		return nil, curated.Errorf(ROMImageSize, memorymap.ROMSize, len(rom))
	}

	mp, err := memorymap.NewMap(ramSize, rom != nil)
	if err != nil {
		return nil, curated.Errorf(LayoutError, err)
	}

	mem := &Memory{
		Map: mp,
		ram: make([]uint8, ramSize),
	}

	if rom != nil {
		mem.rom = make([]uint8, memorymap.ROMSize)
		copy(mem.rom[memorymap.ROMSize-len(rom):], rom)
	}

	return mem, nil
}

// Reset clears the contents of RAM. ROM is unaffected.
func (mem *Memory) Reset() {
	clear(mem.ram)
}

func (mem *Memory) String() string {
	return strings.TrimSpace(mem.Map.Summary())
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	return mem.Peek(address)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	switch mem.Map.MapAddress(address) {
	case memorymap.RAM:
		mem.ram[address] = data
		return nil
	case memorymap.ROM:
		return curated.Errorf(ReadOnlyAddress, address)
	}
	return curated.Errorf(AddressError, address)
}

// Peek is an implementation of cpubus.DebugBus.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	switch mem.Map.MapAddress(address) {
	case memorymap.RAM:
		return mem.ram[address], nil
	case memorymap.ROM:
		return mem.rom[address-memorymap.OriginROM], nil
	}
	return 0, curated.Errorf(AddressError, address)
}

// Poke is an implementation of cpubus.DebugBus. Unlike Write() it can change
// the contents of ROM.
func (mem *Memory) Poke(address uint16, value uint8) error {
	switch mem.Map.MapAddress(address) {
	case memorymap.RAM:
		mem.ram[address] = value
		return nil
	case memorymap.ROM:
		mem.rom[address-memorymap.OriginROM] = value
		return nil
	}
	return curated.Errorf(AddressError, address)
}

// Load copies data into memory beginning at the origin address. Every byte
// must fall within mapped memory, otherwise an AddressError is returned for the
// first address that does not and no data is written.
func (mem *Memory) Load(origin uint16, data []uint8) error {
	for i := range data {
		a := int(origin) + i
		if a > int(memorymap.MemtopROM) || mem.Map.MapAddress(uint16(a)) == memorymap.Unmapped {
			return curated.Errorf(AddressError, a)
		}
	}

	for i, d := range data {
		_ = mem.Poke(origin+uint16(i), d)
	}

	return nil
}

// Dump returns a hex dump of length bytes beginning at the origin address.
// Unmapped bytes are shown as two hyphens.
func (mem *Memory) Dump(origin uint16, length int) string {
	s := strings.Builder{}

	for i := range length {
		a := int(origin) + i
		if a > int(memorymap.MemtopROM) {
			break
		}

		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}

		if v, err := mem.Peek(uint16(a)); err == nil {
			s.WriteString(fmt.Sprintf(" %02x", v))
		} else {
			s.WriteString(" --")
		}
	}

	return s.String()
}
