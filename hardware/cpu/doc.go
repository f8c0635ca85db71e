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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// An instance of the CPU type requires an implementation of the
// cpubus.Memory interface. The interface defines the memory operations
// required by the CPU. See the cpubus package for details.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called at every cycle
// boundary of the instruction. Every cycle of a 6502 instruction is a memory
// access, including the so called phantom reads that the processor makes
// while it is busy internally, and so the callback is called immediately
// after each access.
//
// Let's assume mem is an instance of memory.Memory loaded with a program
// image (see LoadProgram()).
//
//	mc := cpu.NewCPU(nil, mem)
//	mc.Reset()
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		err := mc.ExecuteInstruction(func() error {
//			numCycles++
//			return nil
//		})
//		if err != nil {
//			break
//		}
//		numInstructions++
//	}
//
// For the simpler case of running the CPU for a number of cycles the
// Execute() function can be used. The function runs whole instructions until
// the budget has been consumed and returns the actual number of cycles used.
//
// The CPU type contains some public fields that are worthy of mention. The
// LastResult field can be probed for information about the last instruction
// executed, or about the current instruction being executed if accessed from
// ExecuteInstruction()'s callback function. See the execution package for
// more information.
//
// Decimal mode is not emulated. The D flag can be set and cleared but ADC and
// SBC always perform binary arithmetic.
package cpu
