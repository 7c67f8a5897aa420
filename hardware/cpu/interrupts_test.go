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
	"github.com/dotneteer/spectnetgo/test"
)

func TestInterruptMode1(t *testing.T) {
	// EI ; NOP ; NOP
	mc, mem, _ := newTestCPU(0xfb, 0x00, 0x00)
	mc.InterruptMode = 1

	mc.ExecuteCpuCycle()
	test.ExpectSuccess(t, mc.IsInterruptBlocked())

	// the instruction following EI is always executed
	mc.SetSignal(cpu.SigINT)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8002))
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.Maskable)
	test.ExpectEquality(t, mc.LastResult.Tacts, 13)
	test.ExpectSuccess(t, mc.LastResult.IsValid())
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0038))
	test.ExpectEquality(t, mc.Regs.SP, uint16(0xeffe))
	test.ExpectEquality(t, mem.data[0xeffe], uint8(0x02))
	test.ExpectEquality(t, mem.data[0xefff], uint8(0x80))
	test.ExpectFailure(t, mc.IFF1)
	test.ExpectFailure(t, mc.IFF2)
}

func TestIndexPrefixDoesNotBlock(t *testing.T) {
	// LD IX,$1234 ; NOP
	mc, _, _ := newTestCPU(0xdd, 0x21, 0x34, 0x12, 0x00)
	mc.InterruptMode = 1
	mc.IFF1 = true
	mc.IFF2 = true

	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.IX, uint16(0x1234))
	test.ExpectFailure(t, mc.IsInterruptBlocked())

	mc.SetSignal(cpu.SigINT)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.Maskable)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0038))
}

func TestInterruptMode0(t *testing.T) {
	mc, _, _ := newTestCPU(0x00)
	mc.IFF1 = true
	mc.IFF2 = true
	mc.SetSignal(cpu.SigINT)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0038))
	test.ExpectEquality(t, mc.LastResult.Tacts, 13)
}

func TestInterruptMode2(t *testing.T) {
	mc, mem, _ := newTestCPU(0x00)
	mc.IFF1 = true
	mc.IFF2 = true
	mc.InterruptMode = 2
	mc.Regs.SetI(0x90)
	mem.load(0x90ff, 0x34, 0x12)

	mc.SetSignal(cpu.SigINT)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x1234))
	test.ExpectEquality(t, mc.Regs.WZ, uint16(0x1234))
	test.ExpectEquality(t, mc.LastResult.Tacts, 19)
}

func TestInterruptDisabled(t *testing.T) {
	// DI ; NOP
	mc, _, _ := newTestCPU(0xf3, 0x00)
	mc.IFF1 = true
	mc.SetSignal(cpu.SigINT)

	// the interrupt is accepted before DI executes
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.Maskable)

	mc, _, _ = newTestCPU(0xf3, 0x00)
	mc.ExecuteCpuCycle()
	mc.SetSignal(cpu.SigINT)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8002))
}

func TestHalt(t *testing.T) {
	// EI ; HALT
	mc, mem, _ := newTestCPU(0xfb, 0x76)
	mc.InterruptMode = 1

	mc.ExecuteCpuCycle()
	mc.ExecuteCpuCycle()
	test.ExpectSuccess(t, mc.Halted())
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8001))

	r := mc.Regs.R()
	for i := 0; i < 10; i++ {
		mc.ExecuteCpuCycle()
		test.ExpectSuccess(t, mc.LastResult.Halted)
		test.ExpectEquality(t, mc.LastResult.Tacts, 4)
		test.ExpectSuccess(t, mc.LastResult.IsValid())
	}
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8001))
	test.ExpectEquality(t, mc.Regs.R(), r+10)

	// the return address is the instruction after the HALT
	mc.SetSignal(cpu.SigINT)
	mc.ExecuteCpuCycle()
	test.ExpectFailure(t, mc.Halted())
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0038))
	test.ExpectEquality(t, mem.data[0xeffe], uint8(0x02))
	test.ExpectEquality(t, mem.data[0xefff], uint8(0x80))
}

func TestNMI(t *testing.T) {
	// HALT
	mc, mem, _ := newTestCPU(0x76)
	mc.IFF1 = true
	mc.IFF2 = true

	mc.ExecuteCpuCycle()
	test.ExpectSuccess(t, mc.Halted())

	mc.SetSignal(cpu.SigNMI)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NonMaskable)
	test.ExpectEquality(t, mc.LastResult.Tacts, 11)
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x0066))
	test.ExpectFailure(t, mc.Halted())
	test.ExpectFailure(t, mc.IFF1)
	test.ExpectSuccess(t, mc.IFF2)
	test.ExpectEquality(t, mc.Signals()&cpu.SigNMI, cpu.SigNone)
	test.ExpectEquality(t, mem.data[0xeffe], uint8(0x01))

	// RETN restores IFF1 from IFF2
	mem.load(0x0066, 0xed, 0x45)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.Regs.PC, uint16(0x8001))
	test.ExpectSuccess(t, mc.IFF1)
}

func TestNMIIgnoresIFF(t *testing.T) {
	mc, _, _ := newTestCPU(0x00)
	mc.SetSignal(cpu.SigNMI | cpu.SigINT)
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NonMaskable)

	// INT remains set but interrupts are disabled
	mc.ExecuteCpuCycle()
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.Signals(), cpu.SigINT)
}
