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

// Package functional_test runs a small program that exercises the CPU as a
// whole. The program and its listing are supplied in this directory.
//
// As with any 6502 test program, completion is indicated by a JMP instruction
// that jumps to itself. Reaching the loop at the success address means that
// the program has completed. A loop at any other address is a failure.
package functional_test
