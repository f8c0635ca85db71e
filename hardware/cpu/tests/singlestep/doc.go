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

// Package singlestep runs single instruction tests described in JSON files.
// The format is the one used by the SingleStepTests project:
// https://github.com/SingleStepTests/65x02
//
// Each test describes the state of the CPU and memory before and after a
// single instruction, along with the address bus, data bus and read/write
// state for every cycle of the instruction.
//
// The testdata directory contains a small number of hand written tests. The
// files from the SingleStepTests project can be added to the directory as
// required. Tests of opcodes that have no definition, and of ADC and SBC
// when the decimal flag is set, are skipped.
package singlestep
