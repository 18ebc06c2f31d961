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

package instructions

import (
	"strings"

	"github.com/appleie/appleie/curated"
)

// Operator is the operation performed by an instruction. There is one
// Operator for each of the 56 standard 6502 mnemonics.
type Operator int

// List of valid Operator values. NoOperator is the zero value and is not a
// valid instruction.
const (
	NoOperator Operator = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA
)

// NumOperators is the number of valid Operator values.
const NumOperators = int(TYA)

var operatorNames = [...]string{
	NoOperator: "???",
	ADC: "ADC",
	AND: "AND",
	ASL: "ASL",
	BCC: "BCC",
	BCS: "BCS",
	BEQ: "BEQ",
	BIT: "BIT",
	BMI: "BMI",
	BNE: "BNE",
	BPL: "BPL",
	BRK: "BRK",
	BVC: "BVC",
	BVS: "BVS",
	CLC: "CLC",
	CLD: "CLD",
	CLI: "CLI",
	CLV: "CLV",
	CMP: "CMP",
	CPX: "CPX",
	CPY: "CPY",
	DEC: "DEC",
	DEX: "DEX",
	DEY: "DEY",
	EOR: "EOR",
	INC: "INC",
	INX: "INX",
	INY: "INY",
	JMP: "JMP",
	JSR: "JSR",
	LDA: "LDA",
	LDX: "LDX",
	LDY: "LDY",
	LSR: "LSR",
	NOP: "NOP",
	ORA: "ORA",
	PHA: "PHA",
	PHP: "PHP",
	PLA: "PLA",
	PLP: "PLP",
	ROL: "ROL",
	ROR: "ROR",
	RTI: "RTI",
	RTS: "RTS",
	SBC: "SBC",
	SEC: "SEC",
	SED: "SED",
	SEI: "SEI",
	STA: "STA",
	STX: "STX",
	STY: "STY",
	TAX: "TAX",
	TAY: "TAY",
	TSX: "TSX",
	TXA: "TXA",
	TXS: "TXS",
	TYA: "TYA",
}

func (op Operator) String() string {
	if op < NoOperator || op > TYA {
		return operatorNames[NoOperator]
	}
	return operatorNames[op]
}

// Operators returns all the valid Operator values in alphabetical order.
func Operators() []Operator {
	ops := make([]Operator, 0, NumOperators)
	for op := ADC; op <= TYA; op++ {
		ops = append(ops, op)
	}
	return ops
}

// ParseOperator returns the Operator for the mnemonic. Comparison is case
// insensitive.
func ParseOperator(mnemonic string) (Operator, error) {
	m := strings.ToUpper(strings.TrimSpace(mnemonic))
	for op := ADC; op <= TYA; op++ {
		if operatorNames[op] == m {
			return op, nil
		}
	}
	return NoOperator, curated.Errorf(UnknownOperation, mnemonic)
}
