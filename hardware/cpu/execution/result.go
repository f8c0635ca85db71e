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

package execution

import (
	"fmt"

	"github.com/fromthetransistor/go6502/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction executed by
// the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition of the opcode at Address
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. should be equal to
	// Defn.Bytes once the instruction has completed
	ByteCount int

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but may be higher for page sensitive instructions and
	// for taken branches
	Cycles int

	// the operand of the instruction, if any
	InstructionData uint16

	// whether an extra cycle was required because a page boundary was
	// crossed
	PageFault bool

	// whether a branch instruction took the branch
	BranchSuccess bool

	// a note of whether a known CPU bug has been triggered
	CPUBug Bug

	// whether the instruction has completed
	Final bool
}

// Bug is a description of a known hardware bug triggered by an instruction.
type Bug string

// List of hardware bugs that are reproduced by the CPU.
const (
	NoBug                    Bug = ""
	JmpIndirectAddressingBug Bug = "indirect addressing bug (JMP bug)"
	ZeroPageIndexBug         Bug = "zero page index bug"
)

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x: undecoded instruction", r.Address)
	}

	var operand string
	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		operand = " A"
	case instructions.Immediate:
		operand = fmt.Sprintf(" #$%02x", r.InstructionData)
	case instructions.Relative:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.Absolute:
		operand = fmt.Sprintf(" $%04x", r.InstructionData)
	case instructions.ZeroPage:
		operand = fmt.Sprintf(" $%02x", r.InstructionData)
	case instructions.Indirect:
		operand = fmt.Sprintf(" ($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		operand = fmt.Sprintf(" ($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		operand = fmt.Sprintf(" ($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		operand = fmt.Sprintf(" $%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		operand = fmt.Sprintf(" $%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		operand = fmt.Sprintf(" $%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		operand = fmt.Sprintf(" $%02x,Y", r.InstructionData)
	}

	s := fmt.Sprintf("%#04x: %s%s (%d cycles)", r.Address, r.Defn.Operator, operand, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s [page fault]", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s [%s]", s, r.CPUBug)
	}
	return s
}
