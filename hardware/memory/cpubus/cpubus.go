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

// Package cpubus defines how the CPU sees memory. The Memory interface is the
// only way the CPU reads or writes data.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every 16 bit address is valid and reading or writing an address never
// fails.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Loader is implemented by memory that can have a block of data copied into it
// starting at an origin address.
type Loader interface {
	Memory
	Load(origin uint16, data []uint8)
}

// Vector addresses. Each vector is a little-endian address stored in two
// consecutive bytes.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)

	// BRK shares the IRQ vector.
	BRK = IRQ
)
