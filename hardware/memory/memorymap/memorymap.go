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

package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of memory.
type Area int

// The different memory areas.
const (
	Unmapped Area = iota
	RAM
	ROM
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case ROM:
		return "ROM"
	}
	return "unmapped"
}

// The origin and memtop of fixed areas of memory.
const (
	OriginZeroPage = uint16(0x0000)
	MemtopZeroPage = uint16(0x00ff)
	OriginStack    = uint16(0x0100)
	MemtopStack    = uint16(0x01ff)
	OriginRAM      = uint16(0x0000)
	OriginROM      = uint16(0xe000)
	MemtopROM      = uint16(0xffff)
)

// Sizes of memory areas.
const (
	DefaultRAMSize = 0x2000
	MinRAMSize     = int(MemtopStack) + 1
	MaxRAMSize     = 0x10000
	ROMSize        = int(MemtopROM-OriginROM) + 1
)

// DefaultOrigin is the address at which programs are loaded unless otherwise
// specified.
const DefaultOrigin = uint16(0x0800)

// Map is the layout of a single memory instance.
type Map struct {
	// number of bytes of RAM, starting at OriginRAM
	RAMSize int

	// whether ROM is mapped at OriginROM
	ROM bool
}

// NewMap checks that the RAM size is valid for the memory layout. If ROM is
// present then RAM can extend no further than the ROM origin.
func NewMap(ramSize int, rom bool) (Map, error) {
	mx := MaxRAMSize
	if rom {
		mx = int(OriginROM)
	}
	if ramSize < MinRAMSize || ramSize > mx {
		return Map{}, fmt.Errorf("RAM size of %#x is not in the range %#x to %#x", ramSize, MinRAMSize, mx)
	}
	return Map{RAMSize: ramSize, ROM: rom}, nil
}

// MemtopRAM returns the highest address in RAM.
func (m Map) MemtopRAM() uint16 {
	return uint16(m.RAMSize - 1)
}

// MapAddress returns the area of memory that the address falls within.
func (m Map) MapAddress(address uint16) Area {
	if int(address) < m.RAMSize {
		return RAM
	}
	if m.ROM && address >= OriginROM {
		return ROM
	}
	return Unmapped
}

// Summary returns a single multiline string detailing all the areas in memory.
func (m Map) Summary() string {
	s := strings.Builder{}

	current := m.MapAddress(0)
	start := 0

	for a := 1; a <= int(MemtopROM); a++ {
		area := m.MapAddress(uint16(a))
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current))
			current = area
			start = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, MemtopROM, current))

	return s.String()
}
