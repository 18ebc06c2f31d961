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
	"fmt"
	"strings"

	"github.com/appleie/appleie/curated"
)

// Sentinel error patterns.
const (
	UnknownOpcode    = "instructions: unknown opcode (%#02x)"
	UnknownOperation = "instructions: unknown operation (%s)"
)

// decode is indexed by opcode. a nil entry is an illegal opcode
var decode [256]*Definition

// index into the table by operator and addressing mode
type key struct {
	op   Operator
	mode AddressingMode
}

var byOperator map[key]*Definition

// the first entry in the table for each operator
var firstByOperator map[Operator]*Definition

func init() {
	byOperator = make(map[key]*Definition, len(table))
	firstByOperator = make(map[Operator]*Definition, NumOperators)

	for i := range table {
		defn := &table[i]
		decode[defn.OpCode] = defn
		byOperator[key{op: defn.Operator, mode: defn.AddressingMode}] = defn
		if _, ok := firstByOperator[defn.Operator]; !ok {
			firstByOperator[defn.Operator] = defn
		}
	}
}

// Decode returns the Definition for the opcode.
func Decode(opcode uint8) (Definition, error) {
	defn := decode[opcode]
	if defn == nil {
		return Definition{}, curated.Errorf(UnknownOpcode, opcode)
	}
	return *defn, nil
}

// LookupByName returns the first Definition, in opcode order, for the
// mnemonic. Comparison is case insensitive.
func LookupByName(mnemonic string) (Definition, error) {
	op, err := ParseOperator(mnemonic)
	if err != nil {
		return Definition{}, err
	}
	return *firstByOperator[op], nil
}

// LookupByNameAndMode returns the Definition for the mnemonic and addressing
// mode. Comparison of the mnemonic is case insensitive.
func LookupByNameAndMode(mnemonic string, mode AddressingMode) (Definition, error) {
	op, err := ParseOperator(mnemonic)
	if err != nil {
		return Definition{}, err
	}
	return Lookup(op, mode)
}

// Lookup returns the Definition for the Operator and addressing mode.
func Lookup(op Operator, mode AddressingMode) (Definition, error) {
	defn, ok := byOperator[key{op: op, mode: mode}]
	if !ok {
		return Definition{}, curated.Errorf(UnknownOperation, fmt.Sprintf("%s %s", op, mode))
	}
	return *defn, nil
}

// Modes returns the addressing modes available for the mnemonic, in opcode
// order. Returns nil if the mnemonic is not recognised.
func Modes(mnemonic string) []AddressingMode {
	var modes []AddressingMode
	m := strings.ToUpper(strings.TrimSpace(mnemonic))
	for _, defn := range table {
		if defn.Operator.String() == m {
			modes = append(modes, defn.AddressingMode)
		}
	}
	return modes
}

// Definitions returns a copy of the instruction table in opcode order.
func Definitions() []Definition {
	c := make([]Definition, len(table))
	copy(c, table)
	return c
}
