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

// Package registers implements the 6502 registers. The Register type is used
// for the 8 bit A, X and Y registers. The ProgramCounter and StackPointer types
// are separate types because they are used differently. The StatusRegister
// holds the processor flags as a single byte.
//
// Operations on registers do not affect the status register. Updating the
// status register is left to the CPU, for example:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.SetCarry(carry)
//	sr.SetOverflow(overflow)
//	sr.SetZeroNegative(a.Value())
//
// In this case the zero flag will be false and the negative flag will be true.
package registers
