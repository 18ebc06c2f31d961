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

package registers_test

import (
	"testing"

	"github.com/appleie/appleie/hardware/cpu/registers"
	"github.com/appleie/appleie/test"
)

func TestRegister(t *testing.T) {
	var carry, overflow bool

	r8 := registers.NewRegister(0, "test")
	test.ExpectSuccess(t, r8.IsZero())
	test.ExpectEquality(t, r8.Label(), "test")

	// loading & addition
	r8.Load(127)
	test.ExpectEquality(t, r8.Value(), uint8(127))
	carry, overflow = r8.Add(2, false)
	test.ExpectEquality(t, r8.Value(), uint8(129))
	test.ExpectFailure(t, carry)
	test.ExpectSuccess(t, overflow)
	test.ExpectSuccess(t, r8.IsNegative())

	// addition with carry in
	r8.Load(0xff)
	carry, overflow = r8.Add(0, true)
	test.ExpectEquality(t, r8.Value(), uint8(0))
	test.ExpectSuccess(t, carry)
	test.ExpectFailure(t, overflow)
	test.ExpectSuccess(t, r8.IsZero())

	// subtraction
	r8.Load(11)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(10))
	test.ExpectSuccess(t, carry)

	// subtraction with borrow
	r8.Load(0)
	carry, _ = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectFailure(t, carry)

	// signed overflow on subtraction (-128 - 1)
	r8.Load(0x80)
	_, overflow = r8.Subtract(1, true)
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectSuccess(t, overflow)

	// logical operators
	r8.Load(0x21)
	r8.AND(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0x01))
	r8.EOR(0xff)
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	r8.ORA(0x01)
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectSuccess(t, r8.IsBitV())

	// shifts and rotates
	r8.Load(0xff)
	test.ExpectSuccess(t, r8.ASL())
	test.ExpectEquality(t, r8.Value(), uint8(0xfe))
	test.ExpectFailure(t, r8.LSR())
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectFailure(t, r8.ROL(true))
	test.ExpectEquality(t, r8.Value(), uint8(0xff))
	test.ExpectSuccess(t, r8.ROR(false))
	test.ExpectEquality(t, r8.Value(), uint8(0x7f))
	test.ExpectSuccess(t, r8.ROR(true))
	test.ExpectEquality(t, r8.Value(), uint8(0xbf))

	test.ExpectEquality(t, r8.String(), "bf")
	test.ExpectEquality(t, r8.Address(), uint16(0x00bf))
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(2))
	test.ExpectEquality(t, pc.String(), "0002")

	// wrap around
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0))
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.Value(), uint8(0x30))
	test.ExpectEquality(t, sr.String(), "sv-Bdizc")

	sr.Set(registers.Carry, true)
	sr.Set(registers.Sign, true)
	test.ExpectEquality(t, sr.Value(), uint8(0xb1))
	test.ExpectEquality(t, sr.String(), "Sv-BdizC")

	sr.Toggle(registers.Carry)
	test.ExpectFailure(t, sr.Get(registers.Carry))
	test.ExpectFailure(t, sr.Carry)

	// the unused bit is always set
	sr.Load(0x00)
	test.ExpectEquality(t, sr.Value(), uint8(0x20))
	test.ExpectSuccess(t, sr.Get(registers.Unused))
	sr.Set(registers.Unused, false)
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	sr.Load(0xff)
	test.ExpectEquality(t, sr.Value(), uint8(0xff))
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), registers.DefaultStatus)
}

func TestParseFlag(t *testing.T) {
	f, ok := registers.ParseFlag("n")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, registers.Sign)

	f, ok = registers.ParseFlag("carry")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, registers.Carry)

	_, ok = registers.ParseFlag("x")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, registers.DecimalMode.String(), "DecimalMode")
}
