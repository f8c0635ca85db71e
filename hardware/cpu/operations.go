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

	"github.com/fromthetransistor/go6502/hardware/cpu/instructions"
	"github.com/fromthetransistor/go6502/hardware/cpu/registers"
	"github.com/fromthetransistor/go6502/hardware/memory/cpubus"
)

// operate performs the instruction on the resolved address and value. for
// read-modify-write instructions the altered value is written back to memory
// at the end of the function
func (mc *CPU) operate(defn *instructions.Definition, address uint16, value uint8) error {
	var err error

	switch defn.Operator {
	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.SetInterruptDisable(false)

	case instructions.Sei:
		mc.Status.SetInterruptDisable(true)

	case instructions.Clc:
		mc.Status.SetCarry(false)

	case instructions.Sec:
		mc.Status.SetCarry(true)

	case instructions.Cld:
		mc.Status.SetDecimalMode(false)

	case instructions.Sed:
		mc.Status.SetDecimalMode(true)

	case instructions.Clv:
		mc.Status.SetOverflow(false)

	case instructions.Pha:
		// +1 cycle
		err = mc.push(mc.A.Value())
		if err != nil {
			return err
		}

	case instructions.Php:
		// the break and unused bits are always set when pushed by PHP
		// +1 cycle
		err = mc.push(mc.Status.Pushed(true))
		if err != nil {
			return err
		}

	case instructions.Pla:
		// +1 cycle
		err = mc.stackPhantom()
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.load(IndexA, value)

	case instructions.Plp:
		// +1 cycle
		err = mc.stackPhantom()
		if err != nil {
			return err
		}

		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Pulled(value)

	case instructions.Txa:
		mc.transfer(IndexX, IndexA)

	case instructions.Tax:
		mc.transfer(IndexA, IndexX)

	case instructions.Tay:
		mc.transfer(IndexA, IndexY)

	case instructions.Tya:
		mc.transfer(IndexY, IndexA)

	case instructions.Tsx:
		mc.load(IndexX, mc.SP.Value())

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.And:
		mc.A.AND(value)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Lda:
		mc.load(IndexA, value)

	case instructions.Ldx:
		mc.load(IndexX, value)

	case instructions.Ldy:
		mc.load(IndexY, value)

	case instructions.Sta:
		// +1 cycle
		err = mc.store(IndexA, address)
		if err != nil {
			return err
		}

	case instructions.Stx:
		// +1 cycle
		err = mc.store(IndexX, address)
		if err != nil {
			return err
		}

	case instructions.Sty:
		// +1 cycle
		err = mc.store(IndexY, address)
		if err != nil {
			return err
		}

	case instructions.Inx:
		mc.increment(IndexX, 1)

	case instructions.Iny:
		mc.increment(IndexY, 1)

	case instructions.Dex:
		mc.increment(IndexX, 0xff)

	case instructions.Dey:
		mc.increment(IndexY, 0xff)

	case instructions.Asl:
		r := mc.shiftTarget(defn, value)
		mc.Status.SetCarry(r.ASL())
		mc.Status.SetZeroNegative(r.Value())
		value = r.Value()

	case instructions.Lsr:
		r := mc.shiftTarget(defn, value)
		mc.Status.SetCarry(r.LSR())
		mc.Status.SetZeroNegative(r.Value())
		value = r.Value()

	case instructions.Rol:
		r := mc.shiftTarget(defn, value)
		mc.Status.SetCarry(r.ROL(mc.Status.Carry()))
		mc.Status.SetZeroNegative(r.Value())
		value = r.Value()

	case instructions.Ror:
		r := mc.shiftTarget(defn, value)
		mc.Status.SetCarry(r.ROR(mc.Status.Carry()))
		mc.Status.SetZeroNegative(r.Value())
		value = r.Value()

	case instructions.Adc:
		// the decimal flag is ignored. arithmetic is always binary
		carry, overflow := mc.A.Add(value, mc.Status.Carry())
		mc.Status.SetCarry(carry)
		mc.Status.SetOverflow(overflow)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Sbc:
		carry, overflow := mc.A.Subtract(value, mc.Status.Carry())
		mc.Status.SetCarry(carry)
		mc.Status.SetOverflow(overflow)
		mc.Status.SetZeroNegative(mc.A.Value())

	case instructions.Inc:
		r := mc.acc8
		r.Load(value)
		r.Add(1, false)
		mc.Status.SetZeroNegative(r.Value())
		value = r.Value()

	case instructions.Dec:
		r := mc.acc8
		r.Load(value)
		r.Add(0xff, false)
		mc.Status.SetZeroNegative(r.Value())
		value = r.Value()

	case instructions.Cmp:
		mc.compare(IndexA, value)

	case instructions.Cpx:
		mc.compare(IndexX, value)

	case instructions.Cpy:
		mc.compare(IndexY, value)

	case instructions.Bit:
		r := mc.acc8
		r.Load(value)
		mc.Status.SetNegative(r.IsNegative())
		mc.Status.SetOverflow(r.IsBitV())
		r.AND(mc.A.Value())
		mc.Status.SetZero(r.IsZero())

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		err = mc.branch(!mc.Status.Carry(), address)
		if err != nil {
			return err
		}

	case instructions.Bcs:
		err = mc.branch(mc.Status.Carry(), address)
		if err != nil {
			return err
		}

	case instructions.Beq:
		err = mc.branch(mc.Status.Zero(), address)
		if err != nil {
			return err
		}

	case instructions.Bmi:
		err = mc.branch(mc.Status.Negative(), address)
		if err != nil {
			return err
		}

	case instructions.Bne:
		err = mc.branch(!mc.Status.Zero(), address)
		if err != nil {
			return err
		}

	case instructions.Bpl:
		err = mc.branch(!mc.Status.Negative(), address)
		if err != nil {
			return err
		}

	case instructions.Bvc:
		err = mc.branch(!mc.Status.Overflow(), address)
		if err != nil {
			return err
		}

	case instructions.Bvs:
		err = mc.branch(mc.Status.Overflow(), address)
		if err != nil {
			return err
		}

	case instructions.Jsr:
		// +1 cycle
		err = mc.read8BitPC(loNibble)
		if err != nil {
			return err
		}

		// the current value of the PC is now correct, even though we've only
		// read one byte of the address so far. remember, RTS increments the PC
		// when read from the stack, meaning that the PC will be correct at
		// that point

		// +1 cycle
		err = mc.stackPhantom()
		if err != nil {
			return err
		}

		// +2 cycles
		err = mc.pushPC()
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.read8BitPC(hiNibble)
		if err != nil {
			return err
		}

		// address has been built by the read8BitPC() calls. we would normally
		// do this in resolve() but JSR uses absolute addressing and we
		// deliberately do nothing in that function for 'sub-routine' commands
		mc.PC.Load(mc.LastResult.InstructionData)

	case instructions.Rts:
		// +1 cycle
		err = mc.stackPhantom()
		if err != nil {
			return err
		}

		// +2 cycles
		err = mc.pullPC()
		if err != nil {
			return err
		}

		// the PC on the stack points to the last byte of the JSR instruction
		// +1 cycle
		_, err = mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return err
		}
		mc.PC.Add(1)

	case instructions.Brk:
		// the PC has been advanced by two during decode
		// +2 cycles
		err = mc.pushPC()
		if err != nil {
			return err
		}

		// the break and unused bits are set in the pushed value
		// +1 cycle
		err = mc.push(mc.Status.Pushed(true))
		if err != nil {
			return err
		}

		mc.Status.SetInterruptDisable(true)

		// +2 cycles
		var brkAddress uint16
		brkAddress, err = mc.read16Bit(cpubus.BRK)
		if err != nil {
			return err
		}
		mc.PC.Load(brkAddress)

	case instructions.Rti:
		// +1 cycle
		err = mc.stackPhantom()
		if err != nil {
			return err
		}

		// pull status register (same effect as PLP)
		// +1 cycle
		value, err = mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Pulled(value)

		// pull program counter. unlike RTS there is no need to add one to the
		// return address
		// +2 cycles
		err = mc.pullPC()
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("cpu: unknown operator (%s)", defn.Operator)
	}

	// for RMW instructions: write altered value back to memory
	if defn.Effect == instructions.RMW {
		// +1 cycle
		err = mc.write8Bit(address, value, false)
		if err != nil {
			return err
		}
	}

	return nil
}

// shiftTarget returns the register the shift or rotate instruction works on.
// for the accumulator addressing mode this is the A register, for all other
// modes it is the scratch register loaded with the value read from memory
func (mc *CPU) shiftTarget(defn *instructions.Definition, value uint8) *registers.Register {
	if defn.AddressingMode == instructions.Accumulator {
		return &mc.A
	}
	mc.acc8.Load(value)
	return &mc.acc8
}

// load the indexed register and set the zero and negative flags
func (mc *CPU) load(idx Index, value uint8) {
	r := mc.register(idx)
	r.Load(value)
	mc.Status.SetZeroNegative(r.Value())
}

// transfer the value of one register to another, setting the zero and
// negative flags according to the transferred value
func (mc *CPU) transfer(from Index, to Index) {
	mc.load(to, mc.register(from).Value())
}

// increment adds delta to the indexed register without carry. a delta of
// 0xff is a decrement
func (mc *CPU) increment(idx Index, delta uint8) {
	r := mc.register(idx)
	r.Add(delta, false)
	mc.Status.SetZeroNegative(r.Value())
}

// compare subtracts the value from the indexed register without storing the
// result. the carry flag is set if the register is greater than or equal to
// the value
func (mc *CPU) compare(idx Index, value uint8) {
	r := mc.acc8
	r.Load(mc.register(idx).Value())

	// CMP is a binary subtraction with the carry set
	carry, _ := r.Subtract(value, true)
	mc.Status.SetCarry(carry)
	mc.Status.SetZeroNegative(r.Value())
}

// store the indexed register at the address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *CPU) store(idx Index, address uint16) error {
	return mc.write8Bit(address, mc.register(idx).Value(), false)
}
