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

	"github.com/fromthetransistor/go6502/hardware/cpu/registers"
)

// Index selects one of the general purpose registers of the CPU.
type Index int

// List of valid Index values.
const (
	IndexA Index = iota
	IndexX
	IndexY
)

func (idx Index) String() string {
	switch idx {
	case IndexA:
		return "A"
	case IndexX:
		return "X"
	case IndexY:
		return "Y"
	}
	return fmt.Sprintf("index(%d)", int(idx))
}

// register resolves the index to the register it selects. an invalid index
// is a programming error
func (mc *CPU) register(idx Index) *registers.Register {
	switch idx {
	case IndexA:
		return &mc.A
	case IndexX:
		return &mc.X
	case IndexY:
		return &mc.Y
	}
	panic(fmt.Sprintf("cpu: invalid register index (%d)", int(idx)))
}
