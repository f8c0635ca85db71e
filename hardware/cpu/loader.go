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
	"github.com/fromthetransistor/go6502/curated"
	"github.com/fromthetransistor/go6502/hardware/memory/cpubus"
	"github.com/fromthetransistor/go6502/logger"
)

// LoadProgram copies a program image into memory. The first two bytes of the
// image are the little-endian origin address and the remaining bytes are
// copied to memory starting at that address. Addresses wrap around at the top
// of memory.
//
// The origin is returned so that the caller can decide how to start the
// program, for example with ResetTo(). The state of the CPU is not changed.
func (mc *CPU) LoadProgram(raw []uint8) (uint16, error) {
	if len(raw) < 2 {
		return 0, curated.Errorf(ShortProgram, len(raw))
	}

	origin := (uint16(raw[1]) << 8) | uint16(raw[0])
	data := raw[2:]

	if ldr, ok := mc.mem.(cpubus.Loader); ok {
		ldr.Load(origin, data)
	} else {
		for i, v := range data {
			mc.mem.Write(origin+uint16(i), v)
		}
	}

	logger.Logf(logger.Allow, "loader", "%d bytes at %#04x", len(data), origin)

	return origin, nil
}
