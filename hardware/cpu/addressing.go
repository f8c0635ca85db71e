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

package cpu

import (
	"fmt"

	"github.com/fromthetransistor/go6502/hardware/cpu/execution"
	"github.com/fromthetransistor/go6502/hardware/cpu/instructions"
)

// resolve reads the operand of the instruction and resolves the address the
// instruction is to work with. in the case of immediate addressing the value
// returned is the operand itself. for other addressing modes the value is
// read from the resolved address if the instruction effect calls for it
//
// we also take the opportunity to set the InstructionData value for the
// LastResult and whether a page fault has occurred. note that we don't do
// this in the case of JSR
func (mc *CPU) resolve(defn *instructions.Definition) (uint16, uint8, error) {
	// address is the actual address to use to access memory (after any
	// indexing has taken place)
	var address uint16

	// value is read from the program for immediate mode and from memory for
	// the addressing modes that refer to memory
	var value uint8

	var err error

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// implied mode does not use any additional bytes. however, the next
		// instruction is read but the PC is not incremented
		if defn.Operator == instructions.Brk {
			// BRK is unusual in that it increases the PC by two bytes despite
			// being an implied addressing instruction
			// +1 cycle
			err = mc.read8BitPC(brk)
			if err != nil {
				return 0, 0, err
			}
		} else {
			// phantom read
			// +1 cycle
			_, err = mc.read8Bit(mc.PC.Address(), true)
			if err != nil {
				return 0, 0, err
			}
		}

		// nothing more to do for implied and accumulator modes
		return 0, 0, nil

	case instructions.Immediate:
		// for immediate mode, the value is the next byte in the program
		// therefore, we don't set the address and we read the value through the PC

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, 0, err
		}

		return 0, uint8(mc.LastResult.InstructionData), nil

	case instructions.Relative:
		// relative addressing is only used for branch instructions, the address
		// is an offset value from the current PC position. most of the
		// addressing cycles for this addressing mode are consumed in the
		// branch() function

		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, 0, err
		}

		return mc.LastResult.InstructionData, 0, nil

	case instructions.Absolute:
		if defn.Effect == instructions.Subroutine {
			// for JSR, addresses are read slightly differently so we defer
			// this part of the operation to the operator
			return 0, 0, nil
		}

		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return 0, 0, err
		}
		address = mc.LastResult.InstructionData

	case instructions.ZeroPage:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, 0, err
		}
		address = mc.LastResult.InstructionData

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command

		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return 0, 0, err
		}
		indirectAddress := mc.LastResult.InstructionData

		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug

			// +1 cycle
			lo, err := mc.read8Bit(indirectAddress, false)
			if err != nil {
				return 0, 0, err
			}

			// the lower byte of the indirect address is on a page boundary.
			// because of the bug we must read the high byte of the JMP
			// address from the zero byte of the same page (rather than the
			// zero byte of the next page)
			// +1 cycle
			hi, err := mc.read8Bit(indirectAddress&0xff00, false)
			if err != nil {
				return 0, 0, err
			}

			address = (uint16(hi) << 8) | uint16(lo)
		} else {
			// +2 cycles
			address, err = mc.read16Bit(indirectAddress)
			if err != nil {
				return 0, 0, err
			}
		}

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, 0, err
		}
		indirectAddress := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		_, err = mc.read8Bit(uint16(indirectAddress), true)
		if err != nil {
			return 0, 0, err
		}

		// 8bit addition so the indexed address does not extend past the
		// zero page
		mc.acc8.Load(indirectAddress)
		mc.acc8.Add(mc.X.Value(), false)

		if uint16(indirectAddress)+mc.X.Address() > 0xff {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

		// +2 cycles
		address, err = mc.read16BitZeroPage(mc.acc8.Value())
		if err != nil {
			return 0, 0, err
		}

		// never a page fault with pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return 0, 0, err
		}

		// +2 cycles
		indexedAddress, err := mc.read16BitZeroPage(uint8(mc.LastResult.InstructionData))
		if err != nil {
			return 0, 0, err
		}

		address, err = mc.indexed(defn, indexedAddress, mc.Y.Value())
		if err != nil {
			return 0, 0, err
		}

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return 0, 0, err
		}

		address, err = mc.indexed(defn, mc.LastResult.InstructionData, mc.X.Value())
		if err != nil {
			return 0, 0, err
		}

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		err = mc.read16BitPC()
		if err != nil {
			return 0, 0, err
		}

		address, err = mc.indexed(defn, mc.LastResult.InstructionData, mc.Y.Value())
		if err != nil {
			return 0, 0, err
		}

	case instructions.ZeroPageIndexedX:
		address, err = mc.zeroPageIndexed(mc.X.Value())
		if err != nil {
			return 0, 0, err
		}

	case instructions.ZeroPageIndexedY:
		// used exclusively for LDX ZeroPage,y and STX ZeroPage,y
		address, err = mc.zeroPageIndexed(mc.Y.Value())
		if err != nil {
			return 0, 0, err
		}

	default:
		return 0, 0, fmt.Errorf("cpu: unknown addressing mode for %s", defn.Operator)
	}

	// read value from memory using the resolved address only when the
	// instruction is 'Read' or 'RMW'
	//  - for write modes, we only use the address to write a value we already have
	//  - for flow modes, the use of the address is very specific
	switch defn.Effect {
	case instructions.Read:
		// +1 cycle
		value, err = mc.read8Bit(address, false)
		if err != nil {
			return 0, 0, err
		}

	case instructions.RMW:
		// +1 cycle
		value, err = mc.read8Bit(address, false)
		if err != nil {
			return 0, 0, err
		}

		// the unmodified value is written back while the modification is
		// being made
		// +1 cycle
		err = mc.write8Bit(address, value, true)
		if err != nil {
			return 0, 0, err
		}
	}

	return address, value, nil
}

// indexed adds the index to the base address. if the addition crosses a page
// boundary, or if the instruction is not a read instruction, the 6502 first
// reads from the address formed before the carry into the MSB
//
// side-effects:
//   - sets PageFault for page sensitive instructions
//   - calls cycleCallback after a phantom read
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint8) (uint16, error) {
	address := base + uint16(index)
	crossed := base&0xff00 != address&0xff00

	mc.LastResult.PageFault = defn.PageSensitive && crossed

	if crossed || defn.Effect != instructions.Read {
		// phantom read (always happens for Write and RMW)
		// +1 cycle
		_, err := mc.read8Bit((base&0xff00)|(address&0x00ff), true)
		if err != nil {
			return 0, err
		}
	}

	return address, nil
}

// zeroPageIndexed reads the zero page operand and adds the index to it. the
// result is always in the zero page
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each memory read
func (mc *CPU) zeroPageIndexed(index uint8) (uint16, error) {
	// +1 cycle
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return 0, err
	}

	// phantom read from base address before index adjustment
	// +1 cycle
	_, err = mc.read8Bit(mc.LastResult.InstructionData, true)
	if err != nil {
		return 0, err
	}

	indirectAddress := uint8(mc.LastResult.InstructionData)
	mc.acc8.Load(indirectAddress)
	mc.acc8.Add(index, false)

	if uint16(indirectAddress)+uint16(index) > 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return mc.acc8.Address(), nil
}
