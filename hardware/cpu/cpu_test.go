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

	"github.com/fromthetransistor/go6502/curated"
	"github.com/fromthetransistor/go6502/hardware/cpu"
	"github.com/fromthetransistor/go6502/hardware/cpu/execution"
	"github.com/fromthetransistor/go6502/hardware/memory/cpubus"
	"github.com/fromthetransistor/go6502/hardware/preferences"
	"github.com/fromthetransistor/go6502/test"
)

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "nv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")

	// PHP; PLP
	_ = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)

	// the break and unused bits are set in the pushed value
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register
	mc.Status.SetNegative(true)
	mc.Status.SetOverflow(true)

	// restore status register. the break and unused bits are not loaded
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	test.ExpectEquality(t, mc.A.Value(), 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizC")

	// LDA immediate; CLC; ADC immediate (signed overflow)
	origin = mem.putInstructions(origin, 0xa9, 0x50, 0x18, 0x69, 0x50)
	step(t, mc) // LDA #$50
	step(t, mc) // CLC
	step(t, mc) // ADC #$50
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectEquality(t, mc.Status.String(), "NV-bdizc")

	// LDA immediate; SEC; SBC immediate (borrow)
	origin = mem.putInstructions(origin, 0xa9, 0x50, 0x38, 0xe9, 0xf0)
	step(t, mc) // LDA #$50
	step(t, mc) // SEC
	step(t, mc) // SBC #$F0
	test.ExpectEquality(t, mc.A.Value(), 0x60)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// LDA immediate; SEC; ADC immediate (carry in and carry out)
	origin = mem.putInstructions(origin, 0xa9, 0xff, 0x38, 0x69, 0x00)
	step(t, mc) // LDA #$FF
	step(t, mc) // SEC
	step(t, mc) // ADC #$00
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZC")

	// SED; LDA immediate; CLC; ADC immediate
	//
	// decimal mode is not emulated. the addition is binary
	_ = mem.putInstructions(origin, 0xf8, 0xa9, 0x09, 0x18, 0x69, 0x01)
	step(t, mc) // SED
	step(t, mc) // LDA #$09
	step(t, mc) // CLC
	step(t, mc) // ADC #$01
	test.ExpectEquality(t, mc.A.Value(), 0x0a)
	test.ExpectEquality(t, mc.Status.String(), "nv-bDizc")
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// ORA immediate; EOR immediate; AND immediate
	origin = mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	test.ExpectEquality(t, mc.A.Value(), 0)
	step(t, mc) // ORA #$FF
	test.ExpectEquality(t, mc.A.Value(), 255)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizc")
	step(t, mc) // EOR #$F0
	test.ExpectEquality(t, mc.A.Value(), 15)
	step(t, mc) // AND #$01
	test.ExpectEquality(t, mc.A.Value(), 1)

	// ASL implied; LSR implied; LSR implied
	origin = mem.putInstructions(origin, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), 2)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 1)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // LSR
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZC")

	// ROL implied; ROR implied; ROR implied; ROR implied
	origin = mem.putInstructions(origin, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	test.ExpectEquality(t, mc.A.Value(), 1)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZC")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 128)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizc")
	step(t, mc) // ROR
	test.ExpectEquality(t, mc.A.Value(), 64)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// LDA immediate; ASL implied
	_ = mem.putInstructions(origin, 0xa9, 0xc2, 0x0a)
	step(t, mc) // LDA #$C2
	step(t, mc) // ASL
	test.ExpectEquality(t, mc.A.Value(), 0x84)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizC")
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	// LDX immediate; INX; DEX
	origin = mem.putInstructions(origin, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // INX
	test.ExpectEquality(t, mc.X.Value(), 6)
	step(t, mc) // DEX
	test.ExpectEquality(t, mc.X.Value(), 5)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// LDA immediate; PHA; LDA immediate; PLA
	origin = mem.putInstructions(origin, 0xa9, 5, 0x48, 0xa9, 0, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	test.ExpectEquality(t, mc.SP.Value(), 254)
	mem.assert(t, 0x01ff, 5)
	step(t, mc) // LDA #0
	test.ExpectEquality(t, mc.A.Value(), 0)
	test.ExpectEquality(t, mc.Status.Zero(), true)
	step(t, mc) // PLA
	test.ExpectEquality(t, mc.A.Value(), 5)
	test.ExpectEquality(t, mc.Status.Zero(), false)
	test.ExpectEquality(t, mc.SP.Value(), 255)

	// TAX; TAY; LDX immediate; TXA; LDY immediate; TYA; INY; DEY
	origin = mem.putInstructions(origin, 0xaa, 0xa8, 0xa2, 1, 0x8a, 0xa0, 2, 0x98, 0xc8, 0x88)
	step(t, mc) // TAX
	test.ExpectEquality(t, mc.X.Value(), 5)
	step(t, mc) // TAY
	test.ExpectEquality(t, mc.Y.Value(), 5)
	step(t, mc) // LDX #1
	step(t, mc) // TXA
	test.ExpectEquality(t, mc.A.Value(), 1)
	step(t, mc) // LDY #2
	step(t, mc) // TYA
	test.ExpectEquality(t, mc.A.Value(), 2)
	step(t, mc) // INY
	test.ExpectEquality(t, mc.Y.Value(), 3)
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), 2)

	// DEY; DEY; DEY
	origin = mem.putInstructions(origin, 0x88, 0x88, 0x88)
	step(t, mc) // DEY
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
	step(t, mc) // DEY
	test.ExpectEquality(t, mc.Y.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizc")

	// TSX; LDX immediate; LDA immediate; TXS; TSX
	_ = mem.putInstructions(origin, 0xba, 0xa2, 0, 0xa9, 1, 0x9a, 0xba)
	step(t, mc) // TSX
	test.ExpectEquality(t, mc.X.Value(), 255)
	step(t, mc) // LDX #0
	step(t, mc) // LDA #1
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 0)

	// TXS does not affect the status register
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	step(t, mc) // TSX
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZc")
}

func testAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	var r execution.Result
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0200, 123, 43)
	mem.putInstructions(0x0042, 0x01, 0x02)
	mem.putInstructions(0x0050, 0xf8, 0x02, 0x00, 0x03)
	mem.putInstructions(0x007f, 0x77)
	mem.putInstructions(0x00ff, 0x10)
	mem.putInstructions(0x0308, 0x66)
	mem.putInstructions(0x0310, 0x55)
	mem.putInstructions(0xa510, 0x99)
	mem.putInstructions(0xa520, 0x44)

	// LDA zero page
	origin = mem.putInstructions(origin, 0xa5, 0x00)
	step(t, mc) // LDA $00
	test.ExpectEquality(t, mc.A.Value(), 0xa5)

	// LDX immediate; LDA zero page,X
	origin = mem.putInstructions(origin, 0xa2, 1, 0xb5, 0x01)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $01,X
	test.ExpectEquality(t, mc.A.Value(), 0xa2)

	// LDY immediate; LDX zero page,Y
	origin = mem.putInstructions(origin, 0xa0, 3, 0xb6, 0x01)
	step(t, mc) // LDY #3
	step(t, mc) // LDX $01,Y
	test.ExpectEquality(t, mc.X.Value(), 0xb5)

	// LDA absolute
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x02)
	step(t, mc) // LDA $0200
	test.ExpectEquality(t, mc.A.Value(), 123)

	// LDX immediate; LDA absolute,X (with page fault)
	origin = mem.putInstructions(origin, 0xa2, 1, 0xbd, 0xff, 0x01)
	step(t, mc)     // LDX #1
	r = step(t, mc) // LDA $01FF,X
	test.ExpectEquality(t, mc.A.Value(), 123)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 5)

	// LDY immediate; LDA absolute,Y
	origin = mem.putInstructions(origin, 0xa0, 1, 0xb9, 0x00, 0x02)
	step(t, mc)     // LDY #1
	r = step(t, mc) // LDA $0200,Y
	test.ExpectEquality(t, mc.A.Value(), 43)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 4)

	// LDX immediate; LDA zero page,X (with wraparound)
	origin = mem.putInstructions(origin, 0xa2, 0xff, 0xb5, 0x80)
	step(t, mc)     // LDX #$FF
	r = step(t, mc) // LDA $80,X
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, r.CPUBug, execution.ZeroPageIndexBug)

	// pre-indexed indirect
	// LDX immediate; LDA (Indirect, X)
	origin = mem.putInstructions(origin, 0xa2, 2, 0xa1, 0x40)
	step(t, mc)     // LDX #2
	r = step(t, mc) // LDA ($40,X)
	test.ExpectEquality(t, mc.A.Value(), 43)
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)

	// pre-indexed indirect (pointer wraps around the zero page)
	// LDX immediate; LDA (Indirect, X)
	origin = mem.putInstructions(origin, 0xa2, 1, 0xa1, 0xfe)
	step(t, mc) // LDX #1
	step(t, mc) // LDA ($FE,X)
	test.ExpectEquality(t, mc.A.Value(), 0x99)

	// post-indexed indirect (with page fault)
	// LDY immediate; LDA (Indirect), Y
	origin = mem.putInstructions(origin, 0xa0, 0x10, 0xb1, 0x50)
	step(t, mc)     // LDY #$10
	r = step(t, mc) // LDA ($50),Y
	test.ExpectEquality(t, mc.A.Value(), 0x66)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 6)

	// post-indexed indirect (without page fault)
	origin = mem.putInstructions(origin, 0xb1, 0x52)
	r = step(t, mc) // LDA ($52),Y
	test.ExpectEquality(t, mc.A.Value(), 0x55)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 5)

	// post-indexed indirect (pointer wraps around the zero page)
	_ = mem.putInstructions(origin, 0xb1, 0xff)
	step(t, mc) // LDA ($FF),Y
	test.ExpectEquality(t, mc.A.Value(), 0x44)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	var r execution.Result
	mem.Clear()
	mc.Reset()

	// LDA immediate; STA absolute
	origin = mem.putInstructions(origin, 0xa9, 0x54, 0x8d, 0x00, 0x02)
	step(t, mc) // LDA 0x54
	step(t, mc) // STA 0x0200
	mem.assert(t, 0x0200, 0x54)

	// LDX immediate; STX absolute
	origin = mem.putInstructions(origin, 0xa2, 0x63, 0x8e, 0x01, 0x02)
	step(t, mc) // LDX 0x63
	step(t, mc) // STX 0x0201
	mem.assert(t, 0x0201, 0x63)

	// LDY immediate; STY absolute
	origin = mem.putInstructions(origin, 0xa0, 0x72, 0x8c, 0x02, 0x02)
	step(t, mc) // LDY 0x72
	step(t, mc) // STY 0x0202
	mem.assert(t, 0x0202, 0x72)

	// stores do not affect the status register
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// INC zero page
	origin = mem.putInstructions(origin, 0xe6, 0x01)
	step(t, mc) // INC $01
	mem.assert(t, 0x01, 0x55)

	// DEC absolute
	origin = mem.putInstructions(origin, 0xce, 0x00, 0x02)
	step(t, mc) // DEC 0x0200
	mem.assert(t, 0x0200, 0x53)

	// LDX immediate; STA absolute,X
	//
	// indexed stores always take the extra cycle even though there is no page
	// fault
	origin = mem.putInstructions(origin, 0xa2, 0x10, 0x9d, 0x00, 0x02)
	step(t, mc)     // LDX #$10
	r = step(t, mc) // STA $0200,X
	mem.assert(t, 0x0210, 0x54)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 5)

	// a store crossing a page costs the same and is still not a page fault
	origin = mem.putInstructions(origin, 0x9d, 0xf8, 0x02)
	r = step(t, mc) // STA $02F8,X
	mem.assert(t, 0x0308, 0x54)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 5)

	// STY zero page,X
	origin = mem.putInstructions(origin, 0x94, 0x80)
	step(t, mc) // STY $80,X
	mem.assert(t, 0x0090, 0x72)

	// LDY immediate; STA absolute,Y
	origin = mem.putInstructions(origin, 0xa0, 0x20, 0x99, 0x00, 0x03)
	step(t, mc)     // LDY #$20
	r = step(t, mc) // STA $0300,Y
	mem.assert(t, 0x0320, 0x54)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 5)

	// STA (indirect),Y
	mem.putInstructions(0x0070, 0x30, 0x03)
	origin = mem.putInstructions(origin, 0x91, 0x70)
	r = step(t, mc) // STA ($70),Y
	mem.assert(t, 0x0350, 0x54)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 6)

	// ASL absolute,X
	mem.putInstructions(0x0210, 0x81)
	_ = mem.putInstructions(origin, 0x1e, 0x00, 0x02)
	r = step(t, mc) // ASL $0200,X
	mem.assert(t, 0x0210, 0x02)
	test.ExpectEquality(t, mc.Status.Carry(), true)
	test.ExpectEquality(t, r.Cycles, 7)
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var r execution.Result

	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x10, 0x10)
	r = step(t, mc) // BPL $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)
	test.ExpectEquality(t, r.BranchSuccess, true)
	test.ExpectEquality(t, r.Cycles, 3)

	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x50, 0x10)
	step(t, mc) // BVC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x90, 0x10)
	step(t, mc) // BCC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x38, 0x90, 0x10)
	step(t, mc)     // SEC
	r = step(t, mc) // BCC $10
	test.ExpectEquality(t, mc.PC.Address(), 0x03)
	test.ExpectEquality(t, r.BranchSuccess, false)
	test.ExpectEquality(t, r.Cycles, 2)

	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x38, 0xb0, 0x10)
	step(t, mc) // SEC
	step(t, mc) // BCS $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xe8, 0xd0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BNE $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xca, 0x30, 0x10)
	step(t, mc) // DEX
	step(t, mc) // BMI $10
	test.ExpectEquality(t, mc.PC.Address(), 0x13)

	mem.putInstructions(0x13, 0xe8, 0xf0, 0x10)
	step(t, mc) // INX
	step(t, mc) // BEQ $10
	test.ExpectEquality(t, mc.PC.Address(), 0x26)

	mem.Clear()
	mc.Reset()
	mc.Status.SetOverflow(true)
	mem.putInstructions(0, 0x70, 0x10)
	step(t, mc) // BVS $10
	test.ExpectEquality(t, mc.PC.Address(), 0x12)

	// backwards branch
	mem.Clear()
	mc.ResetTo(0x0020)
	mem.putInstructions(0x0020, 0xd0, 0xfc)
	r = step(t, mc) // BNE $FC
	test.ExpectEquality(t, mc.PC.Address(), 0x001e)
	test.ExpectEquality(t, r.PageFault, false)
	test.ExpectEquality(t, r.Cycles, 3)

	// forwards branch with page fault
	mem.Clear()
	mc.ResetTo(0x10f0)
	mem.putInstructions(0x10f0, 0xd0, 0x20)
	r = step(t, mc) // BNE $20
	test.ExpectEquality(t, mc.PC.Address(), 0x1112)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)

	// backwards branch with page fault
	mem.Clear()
	mc.ResetTo(0x1100)
	mem.putInstructions(0x1100, 0xd0, 0xf0)
	r = step(t, mc) // BNE $F0
	test.ExpectEquality(t, mc.PC.Address(), 0x10f2)
	test.ExpectEquality(t, r.PageFault, true)
	test.ExpectEquality(t, r.Cycles, 4)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var r execution.Result

	// JMP absolute
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x4c, 0x00, 0x03)
	r = step(t, mc) // JMP $0300
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	test.ExpectEquality(t, r.Cycles, 3)

	// JMP indirect
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x0050, 0x49, 0x03)
	mem.putInstructions(0, 0x6c, 0x50, 0x00)
	r = step(t, mc) // JMP ($0050)
	test.ExpectEquality(t, mc.PC.Address(), 0x0349)
	test.ExpectEquality(t, r.CPUBug, execution.NoBug)
	test.ExpectEquality(t, r.Cycles, 5)

	// JMP indirect (bug)
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0x02ff, 0x03)
	mem.putInstructions(0x0200, 0x12)
	mem.putInstructions(0x0300, 0x99)
	mem.putInstructions(0, 0x6c, 0xff, 0x02)
	r = step(t, mc) // JMP ($02FF)
	test.ExpectEquality(t, mc.PC.Address(), 0x1203)
	test.ExpectEquality(t, r.CPUBug, execution.JmpIndirectAddressingBug)
	test.ExpectEquality(t, r.Cycles, 5)
}

func testComparisonInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.Reset()

	mem.putInstructions(0x0070, 0xc0, 0x0f)

	// CMP immediate (equality)
	origin = mem.putInstructions(origin, 0xc9, 0x00)
	step(t, mc) // CMP $00
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0xf6, 0xc9, 0x18)
	step(t, mc) // LDA $F6
	step(t, mc) // CMP $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizC")

	// LDX immediate; CPX immediate
	origin = mem.putInstructions(origin, 0xa2, 0xf6, 0xe0, 0x18)
	step(t, mc) // LDX $F6
	step(t, mc) // CPX $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizC")

	// LDY immediate; CPY immediate
	origin = mem.putInstructions(origin, 0xa0, 0xf6, 0xc0, 0x18)
	step(t, mc) // LDY $F6
	step(t, mc) // CPY $18
	test.ExpectEquality(t, mc.Status.String(), "Nv-bdizC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0x18, 0xc9, 0xf6)
	step(t, mc) // LDA $18
	step(t, mc) // CMP $F6
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 26, 0xc9, 26)
	step(t, mc) // LDA #26
	step(t, mc) // CMP #26
	test.ExpectEquality(t, mc.Status.String(), "nv-bdiZC")

	// comparisons do not change the register
	test.ExpectEquality(t, mc.A.Value(), 26)

	// BIT zero page
	_ = mem.putInstructions(origin, 0x24, 0x70, 0x24, 0x71)
	step(t, mc) // BIT $70
	test.ExpectEquality(t, mc.Status.String(), "NV-bdiZC")
	step(t, mc) // BIT $71
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizC")
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var r execution.Result
	mem.Clear()
	mc.Reset()

	// JSR absolute
	mem.putInstructions(0, 0x20, 0x00, 0x03)
	r = step(t, mc) // JSR $0300
	test.ExpectEquality(t, mc.PC.Address(), 0x0300)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	test.ExpectEquality(t, mc.SP.Value(), 253)
	test.ExpectEquality(t, r.Cycles, 6)

	mem.putInstructions(0x0300, 0x60)
	r = step(t, mc) // RTS
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	test.ExpectEquality(t, mc.SP.Value(), 255)
	test.ExpectEquality(t, r.Cycles, 6)

	// JSR and RTS followed by LDA immediate
	mem.Clear()
	mc.ResetTo(0x1000)
	mem.putInstructions(0x1000, 0x20, 0x00, 0x20, 0xa9, 0x01)
	mem.putInstructions(0x2000, 0x60)
	cycles, err := mc.Execute(14)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 14)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.PC.Address(), 0x1005)
	mem.assert(t, 0x01ff, 0x10)
	mem.assert(t, 0x01fe, 0x02)
}

func testBreak(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var r execution.Result
	mem.Clear()
	mc.ResetTo(0x1000)
	mc.Status.SetCarry(true)

	mem.putInstructions(cpubus.BRK, 0x00, 0x20)
	mem.putInstructions(0x1000, 0x00)
	mem.putInstructions(0x2000, 0x40)

	r = step(t, mc) // BRK
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x2000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdIzC")
	mem.assert(t, 0x01ff, 0x10)
	mem.assert(t, 0x01fe, 0x02)
	mem.assert(t, 0x01fd, 0x31)

	r = step(t, mc) // RTI
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), 0x1002)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizC")
}

func testInvalidOpcode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0x01, 0x02)

	cycles, err := mc.Execute(100)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.InvalidOpcode), true)
	test.ExpectEquality(t, err.Error(), "cpu: invalid opcode (0x02) at (0x0002)")
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), 0x0002)
	test.ExpectEquality(t, mc.LastResult.Cycles, 0)
	test.ExpectEquality(t, mc.LastResult.Final, true)

	// the CPU does not move past an invalid opcode
	err = mc.ExecuteInstruction(cpu.NilCycleCallback)
	test.ExpectEquality(t, curated.Is(err, cpu.InvalidOpcode), true)
	test.ExpectEquality(t, mc.PC.Address(), 0x0002)
}

func testExecute(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.ResetTo(0x1000)
	mem.putInstructions(0x1000, 0xa9, 0x84, 0xa9, 0x00)

	// a zero budget executes nothing
	cycles, err := mc.Execute(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC.Address(), 0x1000)

	cycles, err = mc.Execute(-1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)

	// instructions are never interrupted so the budget can be exceeded
	cycles, err = mc.Execute(1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x84)
	test.ExpectEquality(t, mc.Status.Negative(), true)
	test.ExpectEquality(t, mc.Status.Zero(), false)
	test.ExpectEquality(t, mc.PC.Address(), 0x1002)
}

func testCycleCallback(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.Reset()

	var count int
	var phantom int
	callback := func() error {
		count++
		if mc.PhantomMemAccess {
			phantom++
		}

		// the result is not final until the instruction has completed
		test.ExpectEquality(t, mc.LastResult.Final, false)

		return nil
	}

	// INC zero page
	mem.putInstructions(0x0010, 0x41)
	mem.putInstructions(0x0000, 0xe6, 0x10)
	mem.startTrace()
	err := mc.ExecuteInstruction(callback)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, count, 5)
	test.ExpectEquality(t, phantom, 1)
	test.ExpectEquality(t, count, len(mem.trace))
	expectTrace(t, mem.trace, []busAccess{
		{address: 0x0000, data: 0xe6},
		{address: 0x0001, data: 0x10},
		{address: 0x0010, data: 0x41},
		{address: 0x0010, data: 0x41, write: true},
		{address: 0x0010, data: 0x42, write: true},
	})

	// STA absolute,X
	count = 0
	phantom = 0
	mc.LoadRegister(cpu.IndexA, 0x77)
	mc.LoadRegister(cpu.IndexX, 0x01)
	mem.putInstructions(0x0002, 0x9d, 0x00, 0x02)
	mem.startTrace()
	err = mc.ExecuteInstruction(callback)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, count, 5)
	test.ExpectEquality(t, phantom, 1)
	expectTrace(t, mem.trace, []busAccess{
		{address: 0x0002, data: 0x9d},
		{address: 0x0003, data: 0x00},
		{address: 0x0004, data: 0x02},
		{address: 0x0201, data: 0x00},
		{address: 0x0201, data: 0x77, write: true},
	})

	// JSR absolute
	count = 0
	phantom = 0
	mc.ResetTo(0x1000)
	mem.putInstructions(0x1000, 0x20, 0x00, 0x20)
	mem.startTrace()
	err = mc.ExecuteInstruction(callback)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, count, 6)
	test.ExpectEquality(t, phantom, 1)
	expectTrace(t, mem.trace, []busAccess{
		{address: 0x1000, data: 0x20},
		{address: 0x1001, data: 0x00},
		{address: 0x01ff, data: 0x00},
		{address: 0x01ff, data: 0x10, write: true},
		{address: 0x01fe, data: 0x02, write: true},
		{address: 0x1002, data: 0x20},
	})

	// an error from the callback stops the instruction
	mc.ResetTo(0x1000)
	stop := curated.Errorf("test: stop")
	err = mc.ExecuteInstruction(func() error {
		return stop
	})
	test.ExpectEquality(t, curated.Is(err, "test: stop"), true)
	test.ExpectEquality(t, mc.LastResult.Final, false)
	test.ExpectEquality(t, mc.LastResult.Cycles, 1)
}

func expectTrace(t *testing.T, trace []busAccess, expected []busAccess) {
	t.Helper()
	if !test.ExpectEquality(t, len(trace), len(expected), "trace length") {
		return
	}
	for i := range expected {
		test.ExpectEquality(t, trace[i], expected[i], "cycle", i+1)
	}
}

func testInterrupts(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.ResetTo(0x1234)
	mem.putInstructions(cpubus.IRQ, 0x00, 0x30)
	mem.putInstructions(cpubus.NMI, 0x00, 0x40)

	// IRQ is ignored when interrupts are disabled
	mc.Status.SetInterruptDisable(true)
	cycles, err := mc.IRQ(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 0)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	var count int
	callback := func() error {
		count++
		return nil
	}

	// IRQ
	mc.Status.SetInterruptDisable(false)
	mc.Status.SetCarry(true)
	cycles, err = mc.IRQ(callback)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, count, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x3000)
	test.ExpectEquality(t, mc.SP.Value(), 0xfc)
	test.ExpectEquality(t, mc.Status.InterruptDisable(), true)
	mem.assert(t, 0x01ff, 0x12)
	mem.assert(t, 0x01fe, 0x34)

	// the break bit is clear when pushed by a hardware interrupt
	mem.assert(t, 0x01fd, 0x21)

	// RTI returns to the interrupted address
	mem.putInstructions(0x3000, 0x40)
	step(t, mc) // RTI
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.Status.InterruptDisable(), false)

	// NMI cannot be masked
	mc.Status.SetInterruptDisable(true)
	cycles, err = mc.NMI(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), 0x4000)
	mem.assert(t, 0x01fd, 0x25)
}

func testLoader(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()

	origin, err := mc.LoadProgram([]uint8{0x00, 0x10, 0xa9, 0x84})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, origin, 0x1000)
	mem.assert(t, 0x1000, 0xa9)
	mem.assert(t, 0x1001, 0x84)

	mc.ResetTo(origin)
	cycles, err := mc.Execute(2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, mc.A.Value(), 0x84)
	test.ExpectEquality(t, mc.PC.Address(), 0x1002)

	// header only
	origin, err = mc.LoadProgram([]uint8{0x34, 0x12})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, origin, 0x1234)
	mem.assert(t, 0x1234, 0x00)

	// program wraps around the top of memory
	_, err = mc.LoadProgram([]uint8{0xff, 0xff, 0x01, 0x02})
	test.ExpectSuccess(t, err)
	mem.assert(t, 0xffff, 0x01)
	mem.assert(t, 0x0000, 0x02)

	// too short
	_, err = mc.LoadProgram([]uint8{0x00})
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cpu.ShortProgram), true)

	_, err = mc.LoadProgram(nil)
	test.ExpectEquality(t, curated.Is(err, cpu.ShortProgram), true)
}

// writeOnlyMem does not implement the cpubus.Loader interface
type writeOnlyMem struct {
	data map[uint16]uint8
}

func (mem *writeOnlyMem) Read(address uint16) uint8 {
	return mem.data[address]
}

func (mem *writeOnlyMem) Write(address uint16, data uint8) {
	mem.data[address] = data
}

func TestLoaderWithoutLoad(t *testing.T) {
	mem := &writeOnlyMem{data: make(map[uint16]uint8)}
	mc := cpu.NewCPU(nil, mem)

	origin, err := mc.LoadProgram([]uint8{0x00, 0x80, 0xea, 0xea, 0x00})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, origin, 0x8000)
	test.ExpectEquality(t, len(mem.data), 3)
	test.ExpectEquality(t, mem.data[0x8001], 0xea)
	test.ExpectEquality(t, mem.data[0x8002], 0x00)
}

func testReset(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.putInstructions(cpubus.Reset, 0x00, 0x80)
	mem.putInstructions(0x0200, 0x55)

	mc.LoadRegister(cpu.IndexA, 0x12)
	mc.LoadRegister(cpu.IndexX, 0x34)
	mc.LoadRegister(cpu.IndexY, 0x56)
	mc.SP.Load(0x10)
	mc.Status.Load(0xff)

	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), 0x8000)
	test.ExpectEquality(t, mc.Register(cpu.IndexA), 0)
	test.ExpectEquality(t, mc.Register(cpu.IndexX), 0)
	test.ExpectEquality(t, mc.Register(cpu.IndexY), 0)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "nv-bdizc")

	// memory is untouched by a reset
	mem.assert(t, 0x0200, 0x55)

	// clearing memory also clears the reset vector
	mem.Initialize()
	mc.Reset()
	test.ExpectEquality(t, mc.PC.Address(), 0x0000)

	mc.ResetTo(0x4000)
	test.ExpectEquality(t, mc.PC.Address(), 0x4000)
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(nil, mem)

	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testAddressingModes(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testComparisonInstructions(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
	testBreak(t, mc, mem)
	testInvalidOpcode(t, mc, mem)
	testExecute(t, mc, mem)
	testCycleCallback(t, mc, mem)
	testInterrupts(t, mc, mem)
	testLoader(t, mc, mem)
	testReset(t, mc, mem)
}

func TestRandomState(t *testing.T) {
	newCPU := func() (*cpu.CPU, *mockMem) {
		t.Helper()
		prefs, err := preferences.NewPreferences()
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, prefs.RandomState.Set(true))
		test.DemandSuccess(t, prefs.RandSeed.Set(100))

		mem := newMockMem()
		mem.putInstructions(cpubus.Reset, 0x00, 0x80)
		return cpu.NewCPU(prefs, mem), mem
	}

	a, _ := newCPU()
	b, _ := newCPU()
	a.Reset()
	b.Reset()

	// the same seed produces the same state
	test.ExpectEquality(t, a.String(), b.String())

	// the PC is always loaded from the reset vector
	test.ExpectEquality(t, a.PC.Address(), 0x8000)

	// the break and unused bits are never set in the status register
	test.ExpectEquality(t, a.Status.Break(), false)
	test.ExpectEquality(t, a.Status.Value()&0x20, 0)

	// a random state is still a working state
	a.ResetTo(0x1000)
	a.LoadRegister(cpu.IndexA, 0x00)
	_, err := a.LoadProgram([]uint8{0x00, 0x10, 0x18, 0x69, 0x02})
	test.DemandSuccess(t, err)
	cycles, err := a.Execute(4)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 4)
	test.ExpectEquality(t, a.A.Value(), 0x02)
}
