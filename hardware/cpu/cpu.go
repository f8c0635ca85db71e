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

	"github.com/fromthetransistor/go6502/curated"
	"github.com/fromthetransistor/go6502/hardware/cpu/execution"
	"github.com/fromthetransistor/go6502/hardware/cpu/instructions"
	"github.com/fromthetransistor/go6502/hardware/cpu/registers"
	"github.com/fromthetransistor/go6502/hardware/memory/cpubus"
	"github.com/fromthetransistor/go6502/hardware/preferences"
	"github.com/fromthetransistor/go6502/logger"
)

// Sentinal error patterns returned by the cpu package.
const (
	InvalidOpcode = "cpu: invalid opcode (%#02x) at (%#04x)"
	ShortProgram  = "cpu: program image too short (%d bytes)"
)

// CPU implements the 6502. Register logic is implemented by the types in the
// registers sub-package.
type CPU struct {
	prefs *preferences.Preferences

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	mem          cpubus.Memory
	instructions *[256]*instructions.Definition

	// cycleCallback is called after every memory access
	cycleCallback func() error

	// whether the last memory access by the CPU was a phantom access
	PhantomMemAccess bool

	// last result. if accessed from the cycle callback the result will be
	// for the instruction currently being executed and the Final field will
	// be false
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// prefs argument can be nil, in which case the CPU will always be reset to a
// known state.
//
// Note that the CPU must be Reset() before it is used.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	return &CPU{
		prefs:         prefs,
		mem:           mem,
		PC:            registers.NewProgramCounter(0),
		A:             registers.NewRegister(0, "A"),
		X:             registers.NewRegister(0, "X"),
		Y:             registers.NewRegister(0, "Y"),
		SP:            registers.NewStackPointer(0xff),
		Status:        registers.NewStatusRegister(),
		acc8:          registers.NewRegister(0, "accumulator"),
		instructions:  instructions.GetDefinitions(),
		cycleCallback: NilCycleCallback,
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the contents of the
// reset vector.
//
// Memory is not touched. Clearing it here would also clear the reset vector
// and the PC would always start at zero. Callers that want a zero-filled
// memory should call memory.Initialize() before loading a program.
func (mc *CPU) Reset() {
	mc.resetRegisters()
	mc.LoadPCIndirect(cpubus.Reset)
}

// ResetTo reinitialises all registers in the same way as Reset() but loads
// the PC with the specified address rather than the reset vector.
func (mc *CPU) ResetTo(address uint16) {
	mc.resetRegisters()
	mc.PC.Load(address)
}

func (mc *CPU) resetRegisters() {
	mc.LastResult.Reset()
	mc.cycleCallback = NilCycleCallback

	// checking for prefs == nil because it's possible for NewCPU to be called
	// with nil preferences (test package)
	if mc.prefs != nil && mc.prefs.RandomState.Get().(bool) {
		mc.A.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.X.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.Y.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.SP.Load(uint8(mc.prefs.RandSrc.Intn(0x100)))
		mc.Status.Pulled(uint8(mc.prefs.RandSrc.Intn(0x100)))
		logger.Logf(logger.Allow, "CPU", "random state on reset: A=%s X=%s Y=%s SP=%s SR=%s",
			mc.A, mc.X, mc.Y, mc.SP, mc.Status)
		return
	}

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
}

// LoadPCIndirect loads the contents of indirectAddress into the PC. The reads
// do not count towards the cycles of any instruction.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	lo := mc.mem.Read(indirectAddress)
	hi := mc.mem.Read(indirectAddress + 1)
	mc.PC.Load((uint16(hi) << 8) | uint16(lo))
}

// Register returns the value of the indexed register.
func (mc *CPU) Register(idx Index) uint8 {
	return mc.register(idx).Value()
}

// LoadRegister loads the indexed register with value. The status register is
// not affected.
func (mc *CPU) LoadRegister(idx Index, value uint8) {
	mc.register(idx).Load(value)
}

// cycle ends the current cycle
//
// side-effects:
//   - calls cycleCallback
func (mc *CPU) cycle() error {
	// +1 cycle
	mc.LastResult.Cycles++
	return mc.cycleCallback()
}

// read8Bit returns 8bit value from the specified address. a phantom read is
// a read that the 6502 makes but which has no effect on the instruction
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) read8Bit(address uint16, phantom bool) (uint8, error) {
	mc.PhantomMemAccess = phantom
	val := mc.mem.Read(address)
	return val, mc.cycle()
}

// write8Bit writes 8 bits to the specified address. phantom writes happen
// during read-modify-write instructions
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) write8Bit(address uint16, value uint8, phantom bool) error {
	mc.PhantomMemAccess = phantom
	mc.mem.Write(address, value)
	return mc.cycle()
}

// read16Bit returns 16bit value from the specified address
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.read8Bit(address, false)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(address+1, false)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read16BitZeroPage returns the 16bit value stored at the zero page address.
// the most significant byte is read from the next zero page address, wrapping
// around to the start of the page if necessary
//
// side-effects:
//   - calls cycleCallback after each 8bit read
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address), false)
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(uint16(address+1), false)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read 8bits from the PC location has a variety of additional side-effects
// depending on context.
type read8BitPCeffect int

const (
	brk read8BitPCeffect = iota
	newOpcode
	loNibble
	hiNibble
)

// read8BitPC reads 8 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback at end of function
//   - updates LastResult.ByteCount
//   - additional side effect updates LastResult as appropriate
func (mc *CPU) read8BitPC(effect read8BitPCeffect) error {
	mc.PhantomMemAccess = false
	v := mc.mem.Read(mc.PC.Address())

	// ignoring if program counter cycling
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	switch effect {
	case brk:
		// the BRK command causes the PC to advance by two but we don't want
		// to record that the additional byte has been read
		mc.LastResult.ByteCount--

	case newOpcode:
		mc.LastResult.Defn = mc.instructions[v]

		// the cycle is not counted if there is no definition for the opcode
		if mc.LastResult.Defn == nil {
			return curated.Errorf(InvalidOpcode, v, mc.LastResult.Address)
		}

	case loNibble:
		mc.LastResult.InstructionData = uint16(v)

	case hiNibble:
		mc.LastResult.InstructionData = (uint16(v) << 8) | mc.LastResult.InstructionData
	}

	return mc.cycle()
}

// read16BitPC reads 16 bits from the memory location pointed to by PC
//
// side-effects:
//   - updates program counter
//   - calls cycleCallback after each 8 bit read
//   - updates LastResult.ByteCount
//   - updates InstructionData field, once before each call to cycleCallback
func (mc *CPU) read16BitPC() error {
	err := mc.read8BitPC(loNibble)
	if err != nil {
		return err
	}
	return mc.read8BitPC(hiNibble)
}

func (mc *CPU) branch(flag bool, address uint16) error {
	// in the case of branching (relative addressing) we've read an 8bit value
	// rather than a 16bit value to use as the "address". the sign bit of the
	// 8bit value must be propagated into the most-significant bits of the
	// 16bit value
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	// note branching result
	mc.LastResult.BranchSuccess = flag

	if !flag {
		return nil
	}

	// note current PC for reference
	oldPC := mc.PC.Address()

	// phantom read
	// +1 cycle
	_, err := mc.read8Bit(mc.PC.Address(), true)
	if err != nil {
		return err
	}

	// add the full (sign extended) 16bit address to the PC and note whether
	// a page fault has occurred. the MSB of the PC is then restored so that
	// the phantom read below happens in the wrong page, as it does on the
	// real hardware
	mc.PC.Add(address)
	mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
	mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

	if mc.LastResult.PageFault {
		// phantom read
		// +1 cycle
		_, err := mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}

		// correct program counter
		if address&0xff00 == 0xff00 {
			mc.PC.Add(0xff00)
		} else {
			mc.PC.Add(0x0100)
		}
	}

	return nil
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The basic process when
// executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read operands (if any) according to the addressing mode of the instruction
//  3. using the operator as a guide, perform the instruction on the data
//
// All instructions take at least 2 cycles. After each cycle, the
// cycleCallback() function is run. A nil cycleCallback is the same as
// NilCycleCallback.
//
// An opcode without a definition results in an InvalidOpcode error. In that
// case the PC is left pointing at the opcode and no cycles are counted.
func (mc *CPU) ExecuteInstruction(cycleCallback func() error) error {
	if cycleCallback == nil {
		cycleCallback = NilCycleCallback
	}
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// read next instruction
	// +1 cycle
	err := mc.read8BitPC(newOpcode)
	if err != nil {
		if curated.Is(err, InvalidOpcode) {
			mc.PC.Load(mc.LastResult.Address)
			mc.LastResult.ByteCount = 1
			mc.LastResult.Final = true
			logger.Log(logger.Allow, "CPU", err)
		}
		return err
	}

	defn := mc.LastResult.Defn

	address, value, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	err = mc.operate(defn, address, value)
	if err != nil {
		return err
	}

	// finalise result
	mc.LastResult.Final = true

	return nil
}

// Execute runs whole instructions until at least budget cycles have been
// consumed. The number of cycles actually consumed is returned and may be
// greater than the budget because an instruction is never interrupted. A
// budget of zero or less executes nothing.
//
// If an instruction fails the cycles consumed by the previously completed
// instructions are returned along with the error.
func (mc *CPU) Execute(budget int) (int, error) {
	var cycles int
	for cycles < budget {
		err := mc.ExecuteInstruction(NilCycleCallback)
		if err != nil {
			return cycles, err
		}
		cycles += mc.LastResult.Cycles
	}
	return cycles, nil
}
