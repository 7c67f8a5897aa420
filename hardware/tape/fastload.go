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

package tape

import (
	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
	"github.com/dotneteer/spectnetgo/logger"
)

// FastLoad transfers the current block of the player directly to memory.
// The registers are set as the LD-BYTES routine would leave them and the CPU
// returns to the address on the top of the stack. Returns false if the
// content cannot be fast loaded.
//
// On entry to LD-START the alternate accumulator holds the expected flag
// byte and the alternate carry flag is set for LOAD and reset for VERIFY. IX
// is the destination and DE the length of the data.
func (dev *Device) FastLoad() bool {
	bp, ok := dev.player.(BlockPlayer)
	if !ok || bp.Eof() {
		return false
	}

	// blocks without data are skipped
	var block DataBlock
	for !bp.Eof() {
		if block, ok = bp.CurrentBlock().(DataBlock); ok {
			break
		}
		bp.NextBlock(dev.mc.Tacts())
	}
	if block == nil {
		return false
	}
	data := block.Data()

	regs := dev.mc.Registers()
	regs.AF = regs.AltAF
	verify := !regs.F().Is(registers.C)

	if len(data) == 0 || data[0] != regs.A() {
		var flag uint8
		if len(data) > 0 {
			flag = data[0]
		}
		regs.SetL(flag)
		dev.failLoad(regs, regs.A()^flag)
		bp.NextBlock(dev.mc.Tacts())
		return true
	}

	// H is the running checksum
	regs.SetH(regs.A())

	idx := 1
	for regs.DE > 0 && idx < len(data) {
		v := data[idx]
		regs.SetL(v)

		if verify {
			if m := dev.mem.Peek(regs.IX); m != v {
				dev.failLoad(regs, m^v)
				bp.NextBlock(dev.mc.Tacts())
				return true
			}
		} else {
			dev.mem.Poke(regs.IX, v)
		}

		regs.SetH(regs.H() ^ v)
		regs.IX++
		regs.DE--
		idx++
	}

	f := regs.F()
	f.Set(registers.C, regs.DE == 0 && idx < len(data) && regs.H() == data[idx])
	regs.SetF(f)

	if f.Is(registers.C) {
		logger.Logf(dev.env, "tape", "fast load: %d bytes", len(data)-2)
	} else {
		logger.Log(dev.env, "tape", "fast load: failed")
	}

	dev.ret(regs)
	bp.NextBlock(dev.mc.Tacts())
	return true
}

func (dev *Device) failLoad(regs *registers.File, a uint8) {
	regs.SetA(a)
	f := regs.F()
	f.Set(registers.Z, false)
	f.Set(registers.C, false)
	regs.SetF(f)
	logger.Log(dev.env, "tape", "fast load: failed")
	dev.ret(regs)
}

// pop the return address from the stack
func (dev *Device) ret(regs *registers.File) {
	lo := dev.mem.Peek(regs.SP)
	hi := dev.mem.Peek(regs.SP + 1)
	regs.SP += 2
	regs.PC = uint16(hi)<<8 | uint16(lo)
}
