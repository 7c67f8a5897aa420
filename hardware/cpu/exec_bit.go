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
	"github.com/dotneteer/spectnetgo/hardware/cpu/instructions"
	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
)

// apply a RES or SET operation (x == 2 or x == 3) or a rotation (x == 0)
func (mc *CPU) bitOperation(x, y int, v uint8) uint8 {
	switch x {
	case 0:
		return mc.rotate(y, v)
	case 2:
		return v &^ (1 << y)
	}
	return v | (1 << y)
}

// the CB table
func (mc *CPU) executeBit(op uint8) {
	mc.LastResult.Defn = instructions.Lookup(instructions.CB, op)

	x, y, z, _, _ := split(op)
	r := registers.Reg8(z)

	if r != registers.RegMem {
		v := mc.Regs.Get8(r)
		if x == 1 {
			mc.bit(y, v, v)
			return
		}
		mc.Regs.Set8(r, mc.bitOperation(x, y, v))
		return
	}

	address := mc.Regs.HL
	v := mc.readMem(address)
	mc.internal(1)

	if x == 1 {
		// the undocumented flags come from the internal WZ register
		mc.bit(y, v, mc.Regs.WZH())
		return
	}

	mc.writeMem(address, mc.bitOperation(x, y, v))
}

// the DDCB and FDCB tables. the displacement comes before the opcode, and
// the opcode is read as an ordinary memory read rather than with an M1 cycle
func (mc *CPU) executeIndexedBit(prefix instructions.Prefix) {
	idx := mc.indexRegister(prefix)

	d := int8(mc.fetchByte())
	op := mc.fetchByte()
	mc.internal(2)

	if prefix == instructions.DD {
		mc.LastResult.Defn = instructions.Lookup(instructions.DDCB, op)
	} else {
		mc.LastResult.Defn = instructions.Lookup(instructions.FDCB, op)
	}

	address := *idx + uint16(d)
	mc.Regs.WZ = address

	x, y, z, _, _ := split(op)

	v := mc.readMem(address)
	mc.internal(1)

	if x == 1 {
		mc.bit(y, v, uint8(address>>8))
		return
	}

	r := mc.bitOperation(x, y, v)
	mc.writeMem(address, r)

	// the undocumented forms also copy the result to a register
	if registers.Reg8(z) != registers.RegMem {
		mc.Regs.Set8(registers.Reg8(z), r)
	}
}
