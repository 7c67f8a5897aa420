// This file is part of SpectNetGo.
//
// SpectNetGo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SpectNetGo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SpectNetGo.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"math/bits"
	"testing"

	"github.com/dotneteer/spectnetgo/hardware/cpu"
	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
	"github.com/dotneteer/spectnetgo/test"
)

// run the instruction at address zero with the accumulator and B register
// set to the supplied values. returns A and F
func runAB(mc *cpu.CPU, a uint8, b uint8, f registers.Flags) (uint8, registers.Flags) {
	mc.Regs.PC = 0x0000
	mc.Regs.SP = 0xf000
	mc.Regs.SetA(a)
	mc.Regs.SetB(b)
	mc.Regs.SetF(f)
	mc.ExecuteCpuCycle()
	return mc.Regs.A(), mc.Regs.F()
}

// a CPU with the opcode under test at address zero
func newALUTestCPU(op uint8) *cpu.CPU {
	mc, mem, _ := newTestCPU()
	mem.data[0x0000] = op
	return mc
}

func parityEven(v uint8) bool {
	return bits.OnesCount8(v)%2 == 0
}

func TestAddFlagsExhaustive(t *testing.T) {
	mc := newALUTestCPU(0x80)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			r, f := runAB(mc, uint8(a), uint8(b), 0)

			sum := a + b
			signed := int(int8(a)) + int(int8(b))

			if !test.ExpectEquality(t, r, uint8(sum), a, b) {
				return
			}
			ok := test.ExpectEquality(t, f.Is(registers.C), sum > 0xff, "C", a, b) &&
				test.ExpectEquality(t, f.Is(registers.Z), uint8(sum) == 0, "Z", a, b) &&
				test.ExpectEquality(t, f.Is(registers.S), sum&0x80 != 0, "S", a, b) &&
				test.ExpectEquality(t, f.Is(registers.H), a&0x0f+b&0x0f > 0x0f, "H", a, b) &&
				test.ExpectEquality(t, f.Is(registers.PV), signed < -128 || signed > 127, "PV", a, b) &&
				test.ExpectEquality(t, f.Is(registers.N), false, "N", a, b) &&
				test.ExpectEquality(t, f&registers.XY, registers.Flags(sum)&registers.XY, "XY", a, b)
			if !ok {
				return
			}
		}
	}
}

func TestSubFlagsExhaustive(t *testing.T) {
	mc := newALUTestCPU(0x90)
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			r, f := runAB(mc, uint8(a), uint8(b), 0)

			diff := a - b
			signed := int(int8(a)) - int(int8(b))

			if !test.ExpectEquality(t, r, uint8(diff), a, b) {
				return
			}
			ok := test.ExpectEquality(t, f.Is(registers.C), diff < 0, "C", a, b) &&
				test.ExpectEquality(t, f.Is(registers.Z), uint8(diff) == 0, "Z", a, b) &&
				test.ExpectEquality(t, f.Is(registers.S), uint8(diff)&0x80 != 0, "S", a, b) &&
				test.ExpectEquality(t, f.Is(registers.H), a&0x0f < b&0x0f, "H", a, b) &&
				test.ExpectEquality(t, f.Is(registers.PV), signed < -128 || signed > 127, "PV", a, b) &&
				test.ExpectEquality(t, f.Is(registers.N), true, "N", a, b)
			if !ok {
				return
			}
		}
	}
}

func TestLogicFlagsExhaustive(t *testing.T) {
	for _, c := range []struct {
		op uint8
		fn func(a, b uint8) uint8
		h  bool
	}{
		{0xa0, func(a, b uint8) uint8 { return a & b }, true},
		{0xa8, func(a, b uint8) uint8 { return a ^ b }, false},
		{0xb0, func(a, b uint8) uint8 { return a | b }, false},
	} {
		mc := newALUTestCPU(c.op)
		for a := 0; a < 256; a++ {
			for b := 0; b < 256; b += 3 {
				r, f := runAB(mc, uint8(a), uint8(b), registers.C|registers.N)
				expected := c.fn(uint8(a), uint8(b))

				ok := test.ExpectEquality(t, r, expected, c.op, a, b) &&
					test.ExpectEquality(t, f.Is(registers.C), false, "C", c.op, a, b) &&
					test.ExpectEquality(t, f.Is(registers.N), false, "N", c.op, a, b) &&
					test.ExpectEquality(t, f.Is(registers.H), c.h, "H", c.op, a, b) &&
					test.ExpectEquality(t, f.Is(registers.Z), expected == 0, "Z", c.op, a, b) &&
					test.ExpectEquality(t, f.Is(registers.PV), parityEven(expected), "PV", c.op, a, b)
				if !ok {
					return
				}
			}
		}
	}
}

func TestFlagValues(t *testing.T) {
	for _, c := range []struct {
		op       uint8
		a, b     uint8
		f        registers.Flags
		expected uint8
		flags    registers.Flags
	}{
		// ADD A,B
		{0x80, 0x7f, 0x01, 0, 0x80, 0x94},
		// SUB B
		{0x90, 0x80, 0x01, 0, 0x7f, 0x3e},
		// AND B
		{0xa0, 0x0f, 0xf0, 0, 0x00, 0x54},
		// XOR A
		{0xaf, 0x5a, 0x00, 0, 0x00, 0x44},
		// CP B. undocumented flags from the operand
		{0xb8, 0x10, 0x28, 0, 0x10, 0xbb},
		// INC A. carry is unaffected
		{0x3c, 0x7f, 0x00, registers.C, 0x80, 0x95},
		// DEC A
		{0x3d, 0x80, 0x00, 0, 0x7f, 0x3e},
		// ADC A,B
		{0x88, 0xff, 0x00, registers.C, 0x00, 0x51},
		// SBC A,B
		{0x98, 0x00, 0x00, registers.C, 0xff, 0xbb},
		// CPL
		{0x2f, 0x55, 0x00, 0, 0xaa, 0x3a},
		// SCF
		{0x37, 0x28, 0x00, 0, 0x28, 0x29},
		// CCF
		{0x3f, 0x00, 0x00, registers.C, 0x00, 0x10},
		// RLCA
		{0x07, 0x81, 0x00, 0, 0x03, 0x01},
		// RRA
		{0x1f, 0x01, 0x00, 0, 0x00, 0x01},
	} {
		r, f := runAB(newALUTestCPU(c.op), c.a, c.b, c.f)
		test.ExpectEquality(t, r, c.expected, c.op)
		test.ExpectEquality(t, uint8(f), uint8(c.flags), c.op)
	}
}

func TestDAA(t *testing.T) {
	// LD A,$15 ; ADD A,$27 ; DAA ; SUB $08 ; DAA
	mc, _, _ := newTestCPU(0x3e, 0x15, 0xc6, 0x27, 0x27, 0xd6, 0x08, 0x27)
	for i := 0; i < 3; i++ {
		mc.ExecuteCpuCycle()
	}
	test.ExpectEquality(t, mc.Regs.A(), uint8(0x42))

	mc.ExecuteCpuCycle()
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.A(), uint8(0x34))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.N))
}

func TestSixteenBit(t *testing.T) {
	// ADD HL,DE ; SBC HL,BC ; ADC HL,HL
	mc, _, _ := newTestCPU(0x19, 0xed, 0x42, 0xed, 0x6a)
	mc.Regs.HL = 0xffff
	mc.Regs.DE = 0x0001
	mc.Regs.BC = 0x0001

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.HL, uint16(0x0000))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.C))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.H))
	test.ExpectEquality(t, mc.Regs.WZ, uint16(0x0000))
	test.ExpectEquality(t, mc.LastResult.Tacts, 11)

	// 0x0000 - 0x0001 - carry
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.HL, uint16(0xfffe))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.C))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.S))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.N))
	test.ExpectEquality(t, mc.LastResult.Tacts, 15)

	// 0xfffe + 0xfffe + carry
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.HL, uint16(0xfffd))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.C))
	test.ExpectFailure(t, mc.Regs.F().Is(registers.PV))
}

func TestRotateDecimal(t *testing.T) {
	// RLD ; RRD
	mc, mem, _ := newTestCPU(0xed, 0x6f, 0xed, 0x67)
	mc.Regs.HL = 0x5000
	mc.Regs.SetA(0x7a)
	mem.data[0x5000] = 0x31

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.A(), uint8(0x73))
	test.ExpectEquality(t, mem.data[0x5000], uint8(0x1a))
	test.ExpectEquality(t, mc.LastResult.Tacts, 18)

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.A(), uint8(0x7a))
	test.ExpectEquality(t, mem.data[0x5000], uint8(0x31))
}
