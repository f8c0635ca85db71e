// This file is part of go6502.
//
// go6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go6502.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"strings"
)

// Flag is a bit mask selecting a single bit of the StatusRegister.
type Flag uint8

// List of status flags.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU. It is stored in the same form as it appears on the stack.
type StatusRegister uint8

// NewStatusRegister is the preferred method of initialisation for the status
// register. All flags are clear.
func NewStatusRegister() StatusRegister {
	return StatusRegister(0)
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status register in the form NV-BDIZC. Upper case letters
// indicate that the flag is set and lower case letters that it is clear.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for _, f := range []struct {
		flag Flag
		r    rune
	}{
		{Negative, 'n'},
		{Overflow, 'v'},
		{Unused, '-'},
		{Break, 'b'},
		{DecimalMode, 'd'},
		{InterruptDisable, 'i'},
		{Zero, 'z'},
		{Carry, 'c'},
	} {
		switch {
		case f.flag == Unused:
			s.WriteRune(f.r)
		case sr.Get(f.flag):
			s.WriteRune(f.r - 'a' + 'A')
		default:
			s.WriteRune(f.r)
		}
	}
	return s.String()
}

// Reset clears all flags.
func (sr *StatusRegister) Reset() {
	*sr = 0
}

// Value returns the status register as a byte.
func (sr StatusRegister) Value() uint8 {
	return uint8(sr)
}

// Load the status register from a byte.
func (sr *StatusRegister) Load(v uint8) {
	*sr = StatusRegister(v)
}

// Get returns the state of the flag.
func (sr StatusRegister) Get(f Flag) bool {
	return uint8(sr)&uint8(f) != 0
}

// Set the state of the flag.
func (sr *StatusRegister) Set(f Flag, v bool) {
	if v {
		*sr |= StatusRegister(f)
	} else {
		*sr &^= StatusRegister(f)
	}
}

// Pushed returns the value of the status register as it should be pushed onto
// the stack. The unused bit is always set. The break bit is set only when the
// push is the result of an instruction (PHP or BRK) and not of a hardware
// interrupt.
func (sr StatusRegister) Pushed(brk bool) uint8 {
	v := uint8(sr) | uint8(Unused)
	if brk {
		return v | uint8(Break)
	}
	return v &^ uint8(Break)
}

// Pulled loads the status register with a value pulled from the stack. The
// break and unused bits do not exist as flags and are cleared.
func (sr *StatusRegister) Pulled(v uint8) {
	*sr = StatusRegister(v &^ uint8(Break|Unused))
}

// SetZeroNegative sets the zero and negative flags according to the value.
func (sr *StatusRegister) SetZeroNegative(v uint8) {
	sr.Set(Zero, v == 0)
	sr.Set(Negative, v&0x80 == 0x80)
}

// Carry flag.
func (sr StatusRegister) Carry() bool { return sr.Get(Carry) }

// Zero flag.
func (sr StatusRegister) Zero() bool { return sr.Get(Zero) }

// InterruptDisable flag.
func (sr StatusRegister) InterruptDisable() bool { return sr.Get(InterruptDisable) }

// DecimalMode flag.
func (sr StatusRegister) DecimalMode() bool { return sr.Get(DecimalMode) }

// Break bit. Only meaningful in a copy of the status register that has been
// pushed to the stack.
func (sr StatusRegister) Break() bool { return sr.Get(Break) }

// Overflow flag.
func (sr StatusRegister) Overflow() bool { return sr.Get(Overflow) }

// Negative flag.
func (sr StatusRegister) Negative() bool { return sr.Get(Negative) }

// SetCarry sets or clears the carry flag.
func (sr *StatusRegister) SetCarry(v bool) { sr.Set(Carry, v) }

// SetZero sets or clears the zero flag.
func (sr *StatusRegister) SetZero(v bool) { sr.Set(Zero, v) }

// SetInterruptDisable sets or clears the interrupt disable flag.
func (sr *StatusRegister) SetInterruptDisable(v bool) { sr.Set(InterruptDisable, v) }

// SetDecimalMode sets or clears the decimal mode flag.
func (sr *StatusRegister) SetDecimalMode(v bool) { sr.Set(DecimalMode, v) }

// SetOverflow sets or clears the overflow flag.
func (sr *StatusRegister) SetOverflow(v bool) { sr.Set(Overflow, v) }

// SetNegative sets or clears the negative flag.
func (sr *StatusRegister) SetNegative(v bool) { sr.Set(Negative, v) }
