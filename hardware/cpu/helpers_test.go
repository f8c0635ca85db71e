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

package cpu_test

import (
	"testing"

	"github.com/fromthetransistor/go6502/hardware/cpu"
	"github.com/fromthetransistor/go6502/hardware/cpu/execution"
	"github.com/fromthetransistor/go6502/hardware/memory"
	"github.com/fromthetransistor/go6502/test"
)

// busAccess is a single access of memory by the CPU
type busAccess struct {
	address uint16
	data    uint8
	write   bool
}

// mockMem records every access made by the CPU when tracing is enabled
type mockMem struct {
	*memory.Memory
	tracing bool
	trace   []busAccess
}

func newMockMem() *mockMem {
	return &mockMem{Memory: memory.NewMemory()}
}

func (mem *mockMem) Read(address uint16) uint8 {
	data := mem.Memory.Read(address)
	if mem.tracing {
		mem.trace = append(mem.trace, busAccess{address: address, data: data})
	}
	return data
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.Memory.Write(address, data)
	if mem.tracing {
		mem.trace = append(mem.trace, busAccess{address: address, data: data, write: true})
	}
}

// Clear sets all bytes in memory to zero and stops any tracing
func (mem *mockMem) Clear() {
	mem.Initialize()
	mem.tracing = false
	mem.trace = mem.trace[:0]
}

func (mem *mockMem) startTrace() {
	mem.tracing = true
	mem.trace = mem.trace[:0]
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Poke(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.Peek(address), value, "memory", address)
}

// step executes a single instruction and checks that the result is
// consistent with the instruction definition
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilCycleCallback)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}
