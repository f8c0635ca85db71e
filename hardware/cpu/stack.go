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

// the stack occupies page one of memory. the stack pointer points to the
// next free location, so a push writes and then decrements the stack pointer
// and a pull increments the stack pointer and then reads. the stack pointer
// wraps within the page

// push writes value to the stack
//
// side-effects:
//   - decrements stack pointer
//   - calls cycleCallback after memory write
func (mc *CPU) push(value uint8) error {
	// +1 cycle
	err := mc.write8Bit(mc.SP.Address(), value, false)
	if err != nil {
		return err
	}
	mc.SP.Decrement()
	return nil
}

// pull reads the value from the top of the stack
//
// side-effects:
//   - increments stack pointer
//   - calls cycleCallback after memory read
func (mc *CPU) pull() (uint8, error) {
	mc.SP.Increment()

	// +1 cycle
	return mc.read8Bit(mc.SP.Address(), false)
}

// pushPC writes the current PC to the stack, MSB first
//
// side-effects:
//   - calls cycleCallback after each memory write
func (mc *CPU) pushPC() error {
	// +1 cycle
	err := mc.push(mc.PC.Hi())
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.push(mc.PC.Lo())
}

// pullPC loads the PC from the stack, LSB first
//
// side-effects:
//   - calls cycleCallback after each memory read
func (mc *CPU) pullPC() error {
	// +1 cycle
	lo, err := mc.pull()
	if err != nil {
		return err
	}

	// +1 cycle
	hi, err := mc.pull()
	if err != nil {
		return err
	}

	mc.PC.Load((uint16(hi) << 8) | uint16(lo))

	return nil
}

// stackPhantom is the phantom read of the top of the stack that the 6502 makes
// while it adjusts the stack pointer
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *CPU) stackPhantom() error {
	// +1 cycle
	_, err := mc.read8Bit(mc.SP.Address(), true)
	return err
}
