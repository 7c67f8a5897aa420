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
	"testing"

	"github.com/dotneteer/spectnetgo/hardware/cpu"
	"github.com/dotneteer/spectnetgo/hardware/cpu/execution"
	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
	"github.com/dotneteer/spectnetgo/test"
)

func TestReset(t *testing.T) {
	mc, _, _ := newTestCPU()
	mc.Regs.BC = 0x1234
	mc.IFF1 = true
	mc.InterruptMode = 2
	mc.Delay(100)

	mc.Reset()
	test.ExpectEquality(t, mc.Regs.AF, uint16(0xffff))
	test.ExpectEquality(t, mc.Regs.SP, uint16(0xffff))
	test.ExpectEquality(t, mc.Regs.BC, uint16(0x0000))
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0000))
	test.ExpectEquality(t, mc.Regs.IR, uint16(0x0000))
	test.ExpectEquality(t, mc.IFF1, false)
	test.ExpectEquality(t, mc.InterruptMode, uint8(0))
	test.ExpectEquality(t, mc.Tacts(), uint64(0))
}

func TestResetSignal(t *testing.T) {
	mc, mem, _ := newTestCPU()
	mem.load(0x0000, 0x00)
	mc.Delay(100)
	mc.IFF1 = true

	// the reset signal does not reset the tact counter. execution continues
	// from address zero
	mc.SetSignal(cpu.SigRESET)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0001))
	test.ExpectEquality(t, mc.IFF1, false)
	test.ExpectEquality(t, mc.Tacts(), uint64(104))
	test.ExpectEquality(t, mc.Signals(), cpu.SigNone)
}

func TestLDI(t *testing.T) {
	mc, mem, _ := newTestCPU(0xed, 0xa0, 0x76)
	mc.Regs.BC = 0x0010
	mc.Regs.HL = 0x1000
	mc.Regs.DE = 0x1001
	mem.data[0x1000] = 0xa5

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Tacts(), uint64(16))
	test.ExpectEquality(t, mc.LastResult.Tacts, 16)
	test.ExpectEquality(t, mem.data[0x1001], uint8(0xa5))
	test.ExpectEquality(t, mc.Regs.BC, uint16(0x000f))
	test.ExpectEquality(t, mc.Regs.HL, uint16(0x1001))
	test.ExpectEquality(t, mc.Regs.DE, uint16(0x1002))

	f := mc.Regs.F()
	test.ExpectFailure(t, f.Is(registers.H))
	test.ExpectFailure(t, f.Is(registers.N))
	test.ExpectFailure(t, f.Is(registers.C))
	test.ExpectSuccess(t, f.Is(registers.PV))
	test.ExpectSuccess(t, mc.LastResult.IsValid())

	mc.ExecuteCpuCycle()
	test.ExpectSuccess(t, mc.Halted())
	test.ExpectEquality(t, mc.Tacts(), uint64(20))
}

func TestBlockParity(t *testing.T) {
	for _, op := range []uint8{0xa0, 0xa8, 0xa1, 0xa9} {
		mc, _, _ := newTestCPU(0xed, op)
		mc.Regs.BC = 0x0001
		mc.Regs.HL = 0x1000
		mc.Regs.DE = 0x2000
		mc.ExecuteCpuCycle()
		test.ExpectEquality(t, mc.Regs.BC, uint16(0x0000), op)
		test.ExpectFailure(t, mc.Regs.F().Is(registers.PV), op)

		mc, _, _ = newTestCPU(0xed, op)
		mc.Regs.BC = 0x0010
		mc.Regs.HL = 0x1000
		mc.Regs.DE = 0x2000
		mc.ExecuteCpuCycle()
		test.ExpectEquality(t, mc.Regs.BC, uint16(0x000f), op)
		test.ExpectSuccess(t, mc.Regs.F().Is(registers.PV), op)
	}
}

func TestLDIR(t *testing.T) {
	mc, mem, _ := newTestCPU(0xed, 0xb0)
	mc.Regs.BC = 0x0003
	mc.Regs.HL = 0x1000
	mc.Regs.DE = 0x2000
	mem.load(0x1000, 0x01, 0x02, 0x03)

	// each repetition moves the PC back to the start of the instruction
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Tacts, 21)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8000))
	test.ExpectEquality(t, mc.Regs.WZ, uint16(0x8001))
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Tacts, 21)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Tacts, 16)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8002))

	test.ExpectEquality(t, mem.data[0x2000], uint8(0x01))
	test.ExpectEquality(t, mem.data[0x2002], uint8(0x03))
	test.ExpectEquality(t, mc.Tacts(), uint64(21+21+16))
}

func TestCPIR(t *testing.T) {
	mc, mem, _ := newTestCPU(0xed, 0xb1)
	mc.Regs.SetA(0x03)
	mc.Regs.BC = 0x0010
	mc.Regs.HL = 0x1000
	mem.load(0x1000, 0x01, 0x02, 0x03, 0x04)

	for i := 0; i < 3; i++ {
		mc.ExecuteCpuCycle()
	}
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8002))
	test.ExpectEquality(t, mc.Regs.HL, uint16(0x1003))
	test.ExpectEquality(t, mc.Regs.BC, uint16(0x000d))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.Z))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.N))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.PV))
}

func TestOTIR(t *testing.T) {
	mc, mem, ports := newTestCPU(0xed, 0xb3)
	mc.Regs.BC = 0x02fe
	mc.Regs.HL = 0x1000
	mem.load(0x1000, 0x11, 0x22)

	mc.ExecuteCpuCycle()
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8002))
	test.ExpectEquality(t, len(ports.writes), 2)

	// B is decremented before the port is written to
	test.ExpectEquality(t, ports.writes[0], portWrite{address: 0x01fe, data: 0x11})
	test.ExpectEquality(t, ports.writes[1], portWrite{address: 0x00fe, data: 0x22})
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.Z))
}

func TestBlockIOSubtractFlag(t *testing.T) {
	// OUTI with a byte that has bit 7 clear
	mc, mem, _ := newTestCPU(0xed, 0xa3)
	mc.Regs.BC = 0x02fe
	mc.Regs.HL = 0x1000
	mem.data[0x1000] = 0x11
	mc.ExecuteCpuCycle()
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.N), "OUTI")
	test.ExpectFailure(t, mc.Regs.F().Is(registers.Z), "OUTI")

	// INI with an input byte that has bit 7 clear
	mc, _, ports := newTestCPU(0xed, 0xa2)
	mc.Regs.BC = 0x01fe
	mc.Regs.HL = 0x1000
	ports.input = 0x22
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.B(), uint8(0x00))
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.N), "INI")
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.Z), "INI")

	// and with bit 7 set
	mc, _, ports = newTestCPU(0xed, 0xa2)
	mc.Regs.BC = 0x02fe
	mc.Regs.HL = 0x1000
	ports.input = 0x80
	mc.ExecuteCpuCycle()
	test.ExpectSuccess(t, mc.Regs.F().Is(registers.N), "INI")
}

func TestBlockContention(t *testing.T) {
	for _, c := range []struct {
		name    string
		program []uint8
		hl, de  uint16
		tacts   int
		waits   int
	}{
		// read (HL) and five internal cycles on HL
		{"CPI", []uint8{0xed, 0xa1}, 0x4000, 0x1000, 34, 18},
		// write (DE) and two internal cycles on DE
		{"LDI", []uint8{0xed, 0xa0}, 0x1000, 0x4000, 25, 9},
		// read (HL), four internal cycles on HL, write (HL)
		{"RLD", []uint8{0xed, 0x6f}, 0x4000, 0x1000, 36, 18},
		{"RRD", []uint8{0xed, 0x67}, 0x4000, 0x1000, 36, 18},
		// the five repeat cycles are on the previous DE
		{"LDIR", []uint8{0xed, 0xb0}, 0x1000, 0x4000, 45, 24},
		// the five repeat cycles are on the previous HL
		{"CPIR", []uint8{0xed, 0xb1}, 0x4000, 0x1000, 54, 33},
	} {
		mc, mem, _ := newTestCPU(c.program...)
		mem.contended = true
		mc.Regs.BC = 0x0002
		mc.Regs.HL = c.hl
		mc.Regs.DE = c.de
		mc.Regs.SetA(0xff)

		mc.ExecuteCpuCycle()
		test.ExpectEquality(t, mc.LastResult.Tacts, c.tacts, c.name)
		test.ExpectEquality(t, mc.LastResult.WaitTacts, c.waits, c.name)
		test.ExpectSuccess(t, mc.LastResult.IsValid(), c.name)
	}

	// nothing is delayed outside of contended memory
	mc, _, _ := newTestCPU(0xed, 0xa1)
	mc.Regs.BC = 0x0002
	mc.Regs.HL = 0x1000
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Tacts, 16)
}

func TestPrefixChain(t *testing.T) {
	// DD FD LD IY,$1234
	mc, _, _ := newTestCPU(0xdd, 0xfd, 0x21, 0x34, 0x12)
	mc.Regs.IX = 0xaaaa
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.IY, uint16(0x1234))
	test.ExpectEquality(t, mc.Regs.IX, uint16(0xaaaa))
	test.ExpectEquality(t, mc.LastResult.IgnoredPrefixes, 1)
	test.ExpectEquality(t, mc.LastResult.Tacts, 18)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8005))
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.LastResult.String(), "8000 LD IY,$1234 [18]")
}

func TestIndexed(t *testing.T) {
	// LD (IX-2),$42 ; INC (IX-2) ; LD B,(IX-2) ; SET 0,(IX-2),C
	mc, mem, _ := newTestCPU(
		0xdd, 0x36, 0xfe, 0x42,
		0xdd, 0x34, 0xfe,
		0xdd, 0x46, 0xfe,
		0xdd, 0xcb, 0xfe, 0xc1,
	)
	mc.Regs.IX = 0x1002

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mem.data[0x1000], uint8(0x42))
	test.ExpectEquality(t, mc.LastResult.Tacts, 19)

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mem.data[0x1000], uint8(0x43))
	test.ExpectEquality(t, mc.LastResult.Tacts, 23)

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.B(), uint8(0x43))
	test.ExpectEquality(t, mc.LastResult.Tacts, 19)

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mem.data[0x1000], uint8(0x43))
	test.ExpectEquality(t, mc.Regs.C(), uint8(0x43))
	test.ExpectEquality(t, mc.LastResult.Tacts, 23)
	test.ExpectEquality(t, mc.LastResult.String(), "800a SET 0,(IX-$02),C [23]")
}

func TestBitFlags(t *testing.T) {
	// BIT 7,A ; BIT 0,(IX+$00)
	mc, mem, _ := newTestCPU(0xcb, 0x7f, 0xdd, 0xcb, 0x00, 0x46)
	mc.Regs.SetA(0x80)
	mc.Regs.SetF(registers.C)
	mc.Regs.IX = 0x2800
	mem.data[0x2800] = 0xfe

	mc.ExecuteCpuCycle()
	f := mc.Regs.F()
	test.ExpectSuccess(t, f.Is(registers.S))
	test.ExpectFailure(t, f.Is(registers.Z))
	test.ExpectSuccess(t, f.Is(registers.H))
	test.ExpectSuccess(t, f.Is(registers.C))

	// the undocumented flags come from the high byte of the address
	mc.ExecuteCpuCycle()
	f = mc.Regs.F()
	test.ExpectSuccess(t, f.Is(registers.Z))
	test.ExpectSuccess(t, f.Is(registers.PV))
	test.ExpectSuccess(t, f.Is(registers.Y))
	test.ExpectSuccess(t, f.Is(registers.X))
	test.ExpectSuccess(t, f.Is(registers.C))
	test.ExpectEquality(t, mc.LastResult.Tacts, 20)
}

func TestRelativeJumps(t *testing.T) {
	// LD B,2 ; loop: DJNZ loop ; JR -2
	mc, _, _ := newTestCPU(0x06, 0x02, 0x10, 0xfe, 0x18, 0xfe)

	mc.ExecuteCpuCycle()
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8002))
	test.ExpectEquality(t, mc.LastResult.Tacts, 13)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8004))
	test.ExpectEquality(t, mc.LastResult.Tacts, 8)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8004))
	test.ExpectEquality(t, mc.LastResult.Tacts, 12)
}

func TestCallAndReturn(t *testing.T) {
	// CALL $9000 ; ... $9000: RET
	mc, mem, _ := newTestCPU(0xcd, 0x00, 0x90)
	mem.data[0x9000] = 0xc9

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x9000))
	test.ExpectEquality(t, mc.Regs.SP, uint16(0xeffe))
	test.ExpectEquality(t, mem.data[0xeffe], uint8(0x03))
	test.ExpectEquality(t, mem.data[0xefff], uint8(0x80))
	test.ExpectEquality(t, mc.LastResult.Tacts, 17)

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8003))
	test.ExpectEquality(t, mc.Regs.SP, uint16(0xf000))
	test.ExpectEquality(t, mc.LastResult.Tacts, 10)
}

func TestGetCallInstructionLength(t *testing.T) {
	for _, c := range []struct {
		program []uint8
		length  int
	}{
		{[]uint8{0xcd, 0x00, 0x90}, 3},
		{[]uint8{0xc4, 0x00, 0x90}, 3},
		{[]uint8{0xff}, 1},
		{[]uint8{0x76}, 1},
		{[]uint8{0xed, 0xb0}, 2},
		{[]uint8{0xed, 0xbb}, 2},
		{[]uint8{0xed, 0xa0}, 0},
		{[]uint8{0x00}, 0},
		{[]uint8{0xc3, 0x00, 0x90}, 0},
	} {
		mc, mem, _ := newTestCPU(c.program...)
		mem.contended = true
		tacts := mc.Tacts()
		test.ExpectEquality(t, mc.GetCallInstructionLength(), c.length, c.program)
		test.ExpectEquality(t, mc.Tacts(), tacts)
	}
}

func TestContention(t *testing.T) {
	// LD A,($4000) ; LD ($8100),A
	mc, mem, _ := newTestCPU(0x3a, 0x00, 0x40, 0x32, 0x00, 0x81)
	mem.contended = true
	mem.data[0x4000] = 0x99

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.A(), uint8(0x99))
	test.ExpectEquality(t, mc.LastResult.Tacts, 16)
	test.ExpectEquality(t, mc.LastResult.WaitTacts, 3)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.LastResult.String(), "8000 LD A,($4000) [13+3]")

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Tacts, 13)
	test.ExpectEquality(t, mc.LastResult.WaitTacts, 0)

	// delays outside of an instruction are not wait tacts
	mc.Delay(10)
	test.ExpectEquality(t, mc.LastResult.WaitTacts, 0)
	test.ExpectEquality(t, mc.Tacts(), uint64(39))
}

func TestPortTiming(t *testing.T) {
	// OUT ($fe),A ; IN A,($fe)
	program := []uint8{0xd3, 0xfe, 0xdb, 0xfe}

	for _, c := range []struct {
		ioTacts int
		tacts   int
		waits   int
	}{
		{0, 11, 0},
		{4, 11, 0},
		{7, 14, 3},
	} {
		mc, _, ports := newTestCPU(program...)
		ports.ioTacts = c.ioTacts
		ports.input = 0xbf
		mc.Regs.SetA(0x07)

		mc.ExecuteCpuCycle()
		test.ExpectEquality(t, mc.LastResult.Tacts, c.tacts, c.ioTacts)
		test.ExpectEquality(t, mc.LastResult.WaitTacts, c.waits, c.ioTacts)
		test.ExpectSuccess(t, mc.LastResult.IsValid())
		test.ExpectEquality(t, ports.writes[0], portWrite{address: 0x07fe, data: 0x07})

		mc.ExecuteCpuCycle()
		test.ExpectEquality(t, mc.Regs.A(), uint8(0xbf))
		test.ExpectEquality(t, mc.LastResult.Tacts, c.tacts, c.ioTacts)
	}
}

func TestListeners(t *testing.T) {
	// LD ($9000),A ; OUT ($fe),A
	mc, _, _ := newTestCPU(0x32, 0x00, 0x90, 0xd3, 0xfe)

	var order []string
	mc.AddMemoryListener(func(address uint16, data uint8, write bool) {
		test.ExpectEquality(t, address, uint16(0x9000))
		test.ExpectSuccess(t, write)
		order = append(order, "mem1")
	})
	mc.AddMemoryListener(func(address uint16, data uint8, write bool) {
		order = append(order, "mem2")
	})
	mc.AddPortListener(func(address uint16, data uint8, write bool) {
		order = append(order, "port")
	})
	mc.AddInstructionListener(func(result execution.Result) {
		test.ExpectSuccess(t, result.Final)
		order = append(order, "instruction")
	})

	mc.ExecuteCpuCycle()
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, len(order), 5)
	test.ExpectEquality(t, order[0], "mem1")
	test.ExpectEquality(t, order[1], "mem2")
	test.ExpectEquality(t, order[2], "instruction")
	test.ExpectEquality(t, order[3], "port")
	test.ExpectEquality(t, order[4], "instruction")
}

func TestState(t *testing.T) {
	mc, _, _ := newTestCPU(0xfb, 0x00)
	mc.ExecuteCpuCycle()
	s := mc.State()
	test.ExpectSuccess(t, s.InterruptBlocked)
	test.ExpectSuccess(t, s.IFF1)

	mc.ExecuteCpuCycle()
	test.ExpectFailure(t, mc.IsInterruptBlocked())

	mc.SetState(s)
	test.ExpectSuccess(t, mc.IsInterruptBlocked())
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8001))
	test.ExpectEquality(t, mc.Tacts(), uint64(4))

	cp := mc.Snapshot()
	cp.Regs.PC = 0
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8001))
}
