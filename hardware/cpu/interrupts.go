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
	"github.com/fromthetransistor/go6502/hardware/memory/cpubus"
)

// IRQ services a maskable interrupt request. The request is ignored if the
// interrupt disable flag is set, in which case the number of cycles returned
// is zero. Otherwise the interrupt sequence takes seven cycles.
//
// IRQ should be called between instructions and never from the cycle
// callback of ExecuteInstruction().
func (mc *CPU) IRQ(cycleCallback func() error) (int, error) {
	if mc.Status.InterruptDisable() {
		return 0, nil
	}
	return mc.interrupt(cpubus.IRQ, cycleCallback)
}

// NMI services a non-maskable interrupt. The interrupt sequence takes seven
// cycles.
//
// NMI should be called between instructions and never from the cycle callback
// of ExecuteInstruction().
func (mc *CPU) NMI(cycleCallback func() error) (int, error) {
	return mc.interrupt(cpubus.NMI, cycleCallback)
}

// interrupt is the hardware interrupt sequence. it is the same as BRK except
// that the PC is not advanced and the break bit is clear in the status value
// pushed to the stack
//
// the LastResult field describes the interrupt sequence after the function
// has returned. the Defn field will be nil
func (mc *CPU) interrupt(vector uint16, cycleCallback func() error) (int, error) {
	if cycleCallback == nil {
		cycleCallback = NilCycleCallback
	}
	mc.cycleCallback = cycleCallback

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// two phantom reads of the next instruction. the PC is not incremented
	// +2 cycles
	for i := 0; i < 2; i++ {
		_, err := mc.read8Bit(mc.PC.Address(), true)
		if err != nil {
			return mc.LastResult.Cycles, err
		}
	}

	// +2 cycles
	err := mc.pushPC()
	if err != nil {
		return mc.LastResult.Cycles, err
	}

	// +1 cycle
	err = mc.push(mc.Status.Pushed(false))
	if err != nil {
		return mc.LastResult.Cycles, err
	}

	mc.Status.SetInterruptDisable(true)

	// +2 cycles
	address, err := mc.read16Bit(vector)
	if err != nil {
		return mc.LastResult.Cycles, err
	}
	mc.PC.Load(address)

	mc.LastResult.Final = true

	return mc.LastResult.Cycles, nil
}
