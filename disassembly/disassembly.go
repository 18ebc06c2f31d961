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

package disassembly

import (
	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu"
	"github.com/appleie/appleie/hardware/cpu/instructions"
	"github.com/appleie/appleie/hardware/memory/cpubus"
)

// Disassembly is a list of entries in address order.
type Disassembly struct {
	Entries []Entry
}

// peeker returns the byte at an address or an error if the address can not
// be read.
type peeker func(address uint16) (uint8, error)

// decode a single instruction at the address.
func decode(peek peeker, address uint16) (Entry, error) {
	e := Entry{Address: address}

	opcode, err := peek(address)
	if err != nil {
		return e, curated.Errorf(cpu.MemoryOutOfRange, err)
	}

	e.Defn, err = instructions.Decode(opcode)
	if err != nil {
		return e, err
	}
	e.Bytecode = append(e.Bytecode, opcode)

	for i := range e.Defn.AddressingMode.OperandBytes() {
		a := address + uint16(i) + 1
		v, err := peek(a)
		if err != nil {
			return e, curated.Errorf(cpu.TruncatedOperand, a, err)
		}
		e.Bytecode = append(e.Bytecode, v)
		e.Operand |= uint16(v) << (8 * i)
	}

	return e, nil
}

// FromBytes disassembles the data as though it had been loaded at the origin
// address. An error is returned for the first byte that is not a valid opcode
// or if the final instruction is incomplete. The entries decoded before the
// error are returned alongside it.
func FromBytes(origin uint16, data []uint8) ([]Entry, error) {
	peek := func(address uint16) (uint8, error) {
		i := int(address) - int(origin)
		if i < 0 || i >= len(data) {
			return 0, curated.Errorf("disassembly: no data at address (%#04x)", address)
		}
		return data[i], nil
	}

	var entries []Entry

	address := origin
	for int(address)-int(origin) < len(data) {
		e, err := decode(peek, address)
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)

		// the final instruction may end at the very top of memory
		if int(e.Address)+len(e.Bytecode) > 0xffff {
			break
		}
		address = e.Next()
	}

	return entries, nil
}

// FromMemory disassembles count instructions beginning at the address. Unlike
// FromBytes() disassembly stops without error at the first invalid opcode or
// unreadable address. The returned error is nil unless no entries could be
// decoded at all.
func FromMemory(mem cpubus.DebugBus, address uint16, count int) (*Disassembly, error) {
	dsm := &Disassembly{}

	for range count {
		e, err := decode(mem.Peek, address)
		if err != nil {
			if len(dsm.Entries) == 0 {
				return nil, err
			}
			break
		}
		dsm.Entries = append(dsm.Entries, e)

		if int(e.Address)+len(e.Bytecode) > 0xffff {
			break
		}
		address = e.Next()
	}

	return dsm, nil
}
