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

package assembler_test

import (
	"strings"
	"testing"

	"github.com/appleie/appleie/assembler"
	"github.com/appleie/appleie/curated"
	"github.com/appleie/appleie/hardware/cpu/instructions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario(t *testing.T) {
	b, err := assembler.Assemble("LDA #$c0\nBRK")
	require.NoError(t, err)
	assert.Equal(t, []uint8{0xa9, 0xc0, 0x00}, b)
}

func TestMalformedOperand(t *testing.T) {
	a := assert.New(t)

	for _, src := range []string{
		"LDA 12",
		"LDA #12",
		"LDA #$1",
		"LDA #$123",
		"LDA $123",
		"LDA $12345",
		"LDA $zz",
		"LDA #$-1",
		"LDA (12),Y",
		"LDA # $12",
		"NOP\nLDA c0",
	} {
		b, err := assembler.Assemble(src)
		a.True(curated.Has(err, assembler.MalformedOperand), src)
		a.True(curated.Is(err, assembler.LineError), src)
		a.Nil(b, src)
	}
}

func TestUnknownInstruction(t *testing.T) {
	a := assert.New(t)

	for _, src := range []string{
		"XYZ",
		"LDA",
		"STA #$10",
		"BNE $1000",
		"JMP $10",
		"TAX $10",
	} {
		b, err := assembler.Assemble(src)
		a.True(curated.Has(err, assembler.UnknownInstruction), src)
		a.Nil(b, src)
	}
}

func TestLineNumbers(t *testing.T) {
	src := `
	; program with an error on line four
	LDA #$01
	LDX #$1
	BRK`

	_, err := assembler.Assemble(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.True(t, curated.Has(err, assembler.MalformedOperand))
}

func TestSyntax(t *testing.T) {
	a := assert.New(t)

	src := `
	lda #$C0     ; lower case mnemonic, upper case hex
	tax

	Inx
	ADC $10
	STA $1234
	ASL          ; accumulator
	BNE $fa      ; relative
	BRK`

	b, err := assembler.Assemble(src)
	a.NoError(err)
	a.Equal([]uint8{
		0xa9, 0xc0,
		0xaa,
		0xe8,
		0x65, 0x10,
		0x8d, 0x34, 0x12,
		0x0a,
		0xd0, 0xfa,
		0x00,
	}, b)

	program, err := assembler.Parse(strings.NewReader(src))
	a.NoError(err)
	a.Len(program, 8)
	a.Equal(2, program[0].Line)
	a.Equal(5, program[2].Line)
	a.Equal(instructions.Accumulator, program[5].Defn.AddressingMode)
	a.Equal(instructions.Relative, program[6].Defn.AddressingMode)
}

func TestParseLine(t *testing.T) {
	a := assert.New(t)

	_, ok, err := assembler.ParseLine("   ; just a comment")
	a.False(ok)
	a.NoError(err)

	_, ok, err = assembler.ParseLine("")
	a.False(ok)
	a.NoError(err)

	ins, ok, err := assembler.ParseLine("jmp $0800")
	a.True(ok)
	a.NoError(err)
	a.Equal("JMP $0800", ins.String())
	a.Equal([]uint8{0x4c, 0x00, 0x08}, ins.Bytes())

	_, _, err = assembler.ParseLine("LDA $1")
	a.True(curated.Is(err, assembler.MalformedOperand))
}

// every entry in the opcode table can be assembled from its canonical syntax
// and the result decodes to the same operator and addressing mode
func TestRoundTrip(t *testing.T) {
	a := assert.New(t)

	for _, defn := range instructions.Definitions() {
		ins := assembler.Instruction{Defn: defn, Operand: 0x0080}
		if defn.AddressingMode.OperandBytes() == 2 {
			ins.Operand = 0x1234
		}

		b, err := assembler.Assemble(ins.String())
		if !a.NoError(err, ins.String()) {
			continue
		}
		a.Equal(ins.Bytes(), b, ins.String())
		a.Len(b, defn.Bytes, ins.String())

		d, err := instructions.Decode(b[0])
		a.NoError(err)
		a.Equal(defn.Operator, d.Operator, ins.String())
		a.Equal(defn.AddressingMode, d.AddressingMode, ins.String())
	}
}
