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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/appleie/appleie/assembler"
	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/disassembly"
	"github.com/appleie/appleie/hardware/cpu"
	"github.com/appleie/appleie/hardware/cpu/instructions"
	"github.com/appleie/appleie/hardware/memory"
	"github.com/appleie/appleie/hardware/memory/memorymap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const program = `LDA #$c0
TAX
INX
ADC #$c4
STA $10
JSR $0900
ROR
BNE $fb
BRK`

func TestFromBytes(t *testing.T) {
	a := assert.New(t)

	b, err := assembler.Assemble(program)
	require.NoError(t, err)

	entries, err := disassembly.FromBytes(0x0800, b)
	require.NoError(t, err)
	require.Len(t, entries, 9)

	a.Equal(uint16(0x0800), entries[0].Address)
	a.Equal("LDA #$c0", entries[0].String())
	a.Equal("a9 c0", entries[0].BytecodeString())
	a.Equal(uint16(0x0806), entries[4].Address)
	a.Equal("JSR $0900", entries[5].String())
	a.Equal("ROR", entries[6].String())
	a.Equal(instructions.Accumulator, entries[6].Defn.AddressingMode)

	// branch destinations are relative to the following instruction
	dest, ok := entries[7].BranchDestination()
	a.True(ok)
	a.Equal(uint16(0x080e-5), dest)
	_, ok = entries[0].BranchDestination()
	a.False(ok)
}

func TestRoundTrip(t *testing.T) {
	b, err := assembler.Assemble(program)
	require.NoError(t, err)

	entries, err := disassembly.FromBytes(memorymap.DefaultOrigin, b)
	require.NoError(t, err)

	var s strings.Builder
	for _, e := range entries {
		s.WriteString(e.String())
		s.WriteString("\n")
	}

	c, err := assembler.Assemble(s.String())
	require.NoError(t, err)
	assert.Equal(t, b, c)

	// every entry in the opcode table
	for _, defn := range instructions.Definitions() {
		data := []uint8{defn.OpCode, 0x80, 0x12}[:defn.Bytes]
		entries, err := disassembly.FromBytes(0x0800, data)
		if !assert.NoError(t, err, defn.String()) {
			continue
		}
		c, err := assembler.Assemble(entries[0].String())
		assert.NoError(t, err, defn.String())
		assert.Equal(t, data, c, defn.String())
	}
}

func TestErrors(t *testing.T) {
	_, err := disassembly.FromBytes(0x0800, []uint8{0xea, 0x02})
	assert.True(t, curated.Is(err, instructions.UnknownOpcode))

	entries, err := disassembly.FromBytes(0x0800, []uint8{0xea, 0xad, 0x00})
	assert.True(t, curated.Is(err, cpu.TruncatedOperand))
	require.Len(t, entries, 1)
	assert.Equal(t, "NOP", entries[0].String())

	entries, err = disassembly.FromBytes(0x0800, nil)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFromMemory(t *testing.T) {
	mem, err := memory.NewMemory(memorymap.DefaultRAMSize, nil)
	require.NoError(t, err)

	b, err := assembler.Assemble(program)
	require.NoError(t, err)
	require.NoError(t, mem.Load(0x0800, b))

	dsm, err := disassembly.FromMemory(mem, 0x0800, 3)
	require.NoError(t, err)
	require.Len(t, dsm.Entries, 3)
	assert.Equal(t, "INX", dsm.Entries[2].String())

	// disassembly stops at the first invalid opcode. the BRK instruction is
	// followed by zero bytes, which are themselves BRK instructions
	require.NoError(t, mem.Poke(0x080f, 0x02))
	dsm, err = disassembly.FromMemory(mem, 0x0800, 20)
	require.NoError(t, err)
	assert.Len(t, dsm.Entries, 9)

	// nothing can be disassembled from unmapped memory
	_, err = disassembly.FromMemory(mem, 0x4000, 1)
	assert.True(t, curated.Is(err, cpu.MemoryOutOfRange))

	var s strings.Builder
	dsm, err = disassembly.FromMemory(mem, 0x080b, 2)
	require.NoError(t, err)
	require.NoError(t, dsm.Write(&s, disassembly.WriteAttr{ByteCode: true, FlowInfo: true}))
	assert.Equal(t, "080b 6a        ROR       ; 2 cycles\n080c d0 fb     BNE $fb   ; -> 0809\n", s.String())
}
