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

package memory

import (
	"fmt"
	"strings"
)

// MemorySize is the number of bytes addressable by the CPU.
const MemorySize = 0x10000

// PageSize is the number of bytes in a single page of memory.
const PageSize = 0x100

// Memory is a flat 64KiB area of RAM. It implements the cpubus.Memory and
// cpubus.Loader interfaces.
type Memory struct {
	data [MemorySize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Memory is zero-filled.
func NewMemory() *Memory {
	return &Memory{}
}

// Initialize fills memory with zero bytes.
func (mem *Memory) Initialize() {
	clear(mem.data[:])
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Load is an implementation of cpubus.Loader. Data is copied byte by byte
// starting at the origin address. Data that would extend beyond the top of
// memory wraps around to address zero.
func (mem *Memory) Load(origin uint16, data []uint8) {
	for i, b := range data {
		mem.data[origin+uint16(i)] = b
	}
}

// Peek returns the value at address without any side effects. Included for
// symmetry with Poke().
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.data[address]
}

// Poke sets the value at address.
func (mem *Memory) Poke(address uint16, value uint8) {
	mem.data[address] = value
}

// Page returns a copy of the specified page of memory.
func (mem *Memory) Page(page uint8) [PageSize]uint8 {
	var p [PageSize]uint8
	origin := int(page) * PageSize
	copy(p[:], mem.data[origin:origin+PageSize])
	return p
}

// Dump returns a hex dump of the pages from first to last inclusive.
func (mem *Memory) Dump(first uint8, last uint8) string {
	s := strings.Builder{}
	s.WriteString("        -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("      ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for page := int(first); page <= int(last); page++ {
		for y := 0; y < PageSize/16; y++ {
			row := page*PageSize + y*16
			s.WriteString(fmt.Sprintf("%03X- | ", row>>4))
			for x := 0; x < 16; x++ {
				s.WriteString(fmt.Sprintf(" %02x", mem.data[row+x]))
			}
			s.WriteString("\n")
		}
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// String returns a hex dump of the zero page and the stack page.
func (mem *Memory) String() string {
	return mem.Dump(0x00, 0x01)
}
