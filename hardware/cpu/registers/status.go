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

package registers

import (
	"fmt"
	"strings"
)

// Flag identifies a single bit in the status register. The value of the Flag
// is the bit's mask.
type Flag uint8

// List of valid Flag values.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Sign             Flag = 0x80
)

// Flags in the order they appear in the status register, from bit 7 to bit 0.
var Flags = []Flag{Sign, Overflow, Unused, Break, DecimalMode, InterruptDisable, Zero, Carry}

func (f Flag) String() string {
	switch f {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case DecimalMode:
		return "DecimalMode"
	case Break:
		return "Break"
	case Unused:
		return "Unused"
	case Overflow:
		return "Overflow"
	case Sign:
		return "Sign"
	}
	return fmt.Sprintf("flag %#02x", uint8(f))
}

// ParseFlag returns the flag with the name. Comparison is case insensitive.
// The single letter form used by StatusRegister.String() is also accepted
// and "Negative" is an alternative name for Sign.
func ParseFlag(name string) (Flag, bool) {
	switch strings.ToUpper(name) {
	case "C", "CARRY":
		return Carry, true
	case "Z", "ZERO":
		return Zero, true
	case "I", "INTERRUPTDISABLE":
		return InterruptDisable, true
	case "D", "DECIMALMODE":
		return DecimalMode, true
	case "B", "BREAK":
		return Break, true
	case "UNUSED":
		return Unused, true
	case "V", "OVERFLOW":
		return Overflow, true
	case "S", "N", "SIGN", "NEGATIVE":
		return Sign, true
	}
	return 0, false
}

// DefaultStatus is the value of the status register after a reset.
const DefaultStatus = uint8(Unused | Break)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	var sr StatusRegister
	sr.Reset()
	return sr
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the flags as a string of eight characters. Upper case means
// the flag is set. The unused bit is always shown as a hyphen.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for _, f := range Flags {
		var r rune
		switch f {
		case Sign:
			r = 's'
		case Overflow:
			r = 'v'
		case Unused:
			s.WriteRune('-')
			continue
		case Break:
			r = 'b'
		case DecimalMode:
			r = 'd'
		case InterruptDisable:
			r = 'i'
		case Zero:
			r = 'z'
		case Carry:
			r = 'c'
		}
		if sr.Get(f) {
			r -= 'a' - 'A'
		}
		s.WriteRune(r)
	}
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(DefaultStatus)
}

// Get returns the state of the flag. The unused flag is always set.
func (sr StatusRegister) Get(f Flag) bool {
	switch f {
	case Carry:
		return sr.Carry
	case Zero:
		return sr.Zero
	case InterruptDisable:
		return sr.InterruptDisable
	case DecimalMode:
		return sr.DecimalMode
	case Break:
		return sr.Break
	case Unused:
		return true
	case Overflow:
		return sr.Overflow
	case Sign:
		return sr.Sign
	}
	return false
}

// Set the state of the flag. Setting the unused flag has no effect.
func (sr *StatusRegister) Set(f Flag, v bool) {
	switch f {
	case Carry:
		sr.Carry = v
	case Zero:
		sr.Zero = v
	case InterruptDisable:
		sr.InterruptDisable = v
	case DecimalMode:
		sr.DecimalMode = v
	case Break:
		sr.Break = v
	case Overflow:
		sr.Overflow = v
	case Sign:
		sr.Sign = v
	}
}

// Toggle the state of the flag.
func (sr *StatusRegister) Toggle(f Flag) {
	sr.Set(f, !sr.Get(f))
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8
	for _, f := range Flags {
		if sr.Get(f) {
			v |= uint8(f)
		}
	}
	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to
// the StatusRegister struct receiver.
func (sr *StatusRegister) Load(v uint8) {
	for _, f := range Flags {
		sr.Set(f, v&uint8(f) == uint8(f))
	}
}
