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

package cpu

import (
	"github.com/dotneteer/spectnetgo/hardware/cpu/execution"
	"github.com/dotneteer/spectnetgo/hardware/memory/cpubus"
)

// an interrupt acceptance ends the halted state. the PC was left on the HALT
// instruction and is moved past it
func (mc *CPU) leaveHalt() {
	if mc.Halted() {
		mc.signals &^= SigHALTED
		mc.Regs.PC++
	}
}

// NMI acceptance takes 11 tacts. the five tact acknowledge cycle is followed
// by the two writes to the stack
func (mc *CPU) acceptNMI() {
	mc.LastResult.Interrupt = execution.NonMaskable
	mc.signals &^= SigNMI

	mc.leaveHalt()
	mc.LastResult.Address = mc.Regs.PC

	mc.IFF2 = mc.IFF1
	mc.IFF1 = false

	mc.Regs.IncR()
	mc.internal(5)
	mc.push(mc.Regs.PC)
	mc.Regs.PC = cpubus.NMI
	mc.Regs.WZ = mc.Regs.PC
}

// INT acceptance. the acknowledge cycle is an M1 cycle with two additional
// wait states. in interrupt mode 0 nothing drives the data bus and the CPU
// executes RST 38H, which has the same effect as interrupt mode 1
func (mc *CPU) acceptINT() {
	mc.LastResult.Interrupt = execution.Maskable

	mc.leaveHalt()
	mc.LastResult.Address = mc.Regs.PC

	mc.IFF1 = false
	mc.IFF2 = false

	mc.Regs.IncR()
	mc.internal(7)
	mc.push(mc.Regs.PC)

	if mc.InterruptMode == 2 {
		vector := uint16(mc.Regs.I())<<8 | uint16(cpubus.IM2VectorLow)
		lo := mc.readMem(vector)
		hi := mc.readMem(vector + 1)
		mc.Regs.WZ = uint16(hi)<<8 | uint16(lo)
	} else {
		mc.Regs.WZ = cpubus.IRQ
	}

	mc.Regs.PC = mc.Regs.WZ
}
