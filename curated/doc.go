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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package but the pattern is retained so that
// errors can later be identified by the pattern that created them:
//
//	e := curated.Errorf("cpu: invalid opcode (%#02x) at (%#04x)", 0x02, 0x1000)
//
//	if curated.Is(e, "cpu: invalid opcode (%#02x) at (%#04x)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in the
// error chain. Wrapping happens by passing a curated error as one of the
// values to Errorf():
//
//	f := curated.Errorf("execute: %v", e)
//	curated.Has(f, "cpu: invalid opcode (%#02x) at (%#04x)") // true
//	curated.Is(f, "cpu: invalid opcode (%#02x) at (%#04x)")  // false
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it separates 'expected' errors from 'unexpected'
// errors.
//
// The Error() function normalises the message so that it does not contain
// duplicate adjacent parts. Parts are separated by the sub-string ": ". This
// means that wrapping an error with the same prefix at every level of a call
// chain, for example:
//
//	return curated.Errorf("cpu: %v", err)
//
// results in a message of "cpu: invalid opcode" rather than "cpu: cpu: invalid
// opcode".
//
// Sentinal errors are achieved by storing the pattern as an exported const
// string and testing for it with Is() or Has().
package curated
