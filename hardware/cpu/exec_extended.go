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

// the ED table
func (mc *CPU) executeExtended(op uint8) {
	mc.LastResult.Defn = instructions.Lookup(instructions.ED, op)

	x, y, z, p, q := split(op)

	switch x {
	case 1:
		switch z {
		case 0:
			mc.Regs.WZ = mc.Regs.BC + 1
			v := mc.readPort(mc.Regs.BC)
			mc.inFlags(v)
			if registers.Reg8(y) != registers.RegMem {
				mc.Regs.Set8(registers.Reg8(y), v)
			}

		case 1:
			var v uint8
			if registers.Reg8(y) != registers.RegMem {
				v = mc.Regs.Get8(registers.Reg8(y))
			}
			mc.writePort(mc.Regs.BC, v)
			mc.Regs.WZ = mc.Regs.BC + 1

		case 2:
			rp := mc.Regs.Pair(registers.Reg16(p), false)
			mc.internal(7)
			if q == 0 {
				mc.Regs.HL = mc.sbc16(mc.Regs.HL, *rp)
			} else {
				mc.Regs.HL = mc.adc16(mc.Regs.HL, *rp)
			}

		case 3:
			nn := mc.fetchWord()
			rp := mc.Regs.Pair(registers.Reg16(p), false)
			if q == 0 {
				mc.writeMem(nn, uint8(*rp))
				mc.writeMem(nn+1, uint8(*rp>>8))
			} else {
				lo := mc.readMem(nn)
				hi := mc.readMem(nn + 1)
				*rp = uint16(hi)<<8 | uint16(lo)
			}
			mc.Regs.WZ = nn + 1

		case 4:
			mc.neg()

		case 5:
			mc.Regs.PC = mc.pop()
			mc.Regs.WZ = mc.Regs.PC
			mc.IFF1 = mc.IFF2

		case 6:
			mc.InterruptMode = [8]uint8{0, 0, 1, 2, 0, 0, 1, 2}[y]

		case 7:
			switch y {
			case 0:
				mc.internal(1)
				mc.Regs.SetI(mc.Regs.A())
			case 1:
				mc.internal(1)
				mc.Regs.SetR(mc.Regs.A())
			case 2, 3:
				mc.internal(1)
				v := mc.Regs.I()
				if y == 3 {
					v = mc.Regs.R()
				}
				mc.Regs.SetA(v)
				f := mc.flags()&registers.C | sz53[v]
				if mc.IFF2 {
					f |= registers.PV
				}
				mc.setFlags(f)
			case 4, 5:
				mc.rotateDecimal(y == 5)
			}
		}

	case 2:
		if z <= 3 && y >= 4 {
			mc.executeBlock(y, z)
		}
	}
}

// RRD and RLD
func (mc *CPU) rotateDecimal(left bool) {
	v := mc.readMem(mc.Regs.HL)
	mc.internalOnBus(mc.Regs.HL, 4)

	a := mc.Regs.A()
	var nv uint8
	if left {
		nv = v<<4 | a&0x0f
		a = a&0xf0 | v>>4
	} else {
		nv = a<<4 | v>>4
		a = a&0xf0 | v&0x0f
	}

	mc.writeMem(mc.Regs.HL, nv)
	mc.Regs.SetA(a)
	mc.setFlags(mc.flags()&registers.C | sz53p[a])
	mc.Regs.WZ = mc.Regs.HL + 1
}

// the block instructions. y selects the direction and whether the instruction
// repeats, z selects the operation
func (mc *CPU) executeBlock(y, z int) {
	dir := uint16(1)
	if y&1 == 1 {
		dir = 0xffff
	}
	repeating := y >= 6

	var repeat bool

	switch z {
	case 0:
		v := mc.readMem(mc.Regs.HL)
		mc.writeMem(mc.Regs.DE, v)
		mc.internalOnBus(mc.Regs.DE, 2)
		mc.Regs.HL += dir
		mc.Regs.DE += dir
		mc.Regs.BC--

		n := v + mc.Regs.A()
		f := mc.flags()&(registers.S|registers.Z|registers.C) | registers.Flags(n)&registers.X | registers.Flags(n<<4)&registers.Y
		if mc.Regs.BC != 0 {
			f |= registers.PV
		}
		mc.setFlags(f)

		repeat = mc.Regs.BC != 0

	case 1:
		v := mc.readMem(mc.Regs.HL)
		mc.internalOnBus(mc.Regs.HL, 5)
		mc.Regs.HL += dir
		mc.Regs.BC--
		mc.Regs.WZ += dir

		a := mc.Regs.A()
		res := a - v
		f := mc.flags()&registers.C | registers.N | sz53[res]&(registers.S|registers.Z) | registers.Flags(a^v^res)&registers.H
		n := res
		if f.Is(registers.H) {
			n--
		}
		f |= registers.Flags(n)&registers.X | registers.Flags(n<<4)&registers.Y
		if mc.Regs.BC != 0 {
			f |= registers.PV
		}
		mc.setFlags(f)

		repeat = mc.Regs.BC != 0 && res != 0

	case 2:
		mc.internal(1)
		v := mc.readPort(mc.Regs.BC)
		mc.Regs.WZ = mc.Regs.BC + dir
		mc.Regs.SetB(mc.Regs.B() - 1)
		mc.writeMem(mc.Regs.HL, v)
		mc.Regs.HL += dir
		mc.blockIOFlags(int(v) + int(mc.Regs.C()+uint8(dir)))

		repeat = mc.Regs.B() != 0

	case 3:
		mc.internal(1)
		v := mc.readMem(mc.Regs.HL)
		mc.Regs.SetB(mc.Regs.B() - 1)
		mc.Regs.WZ = mc.Regs.BC + dir
		mc.writePort(mc.Regs.BC, v)
		mc.Regs.HL += dir
		mc.blockIOFlags(int(v) + int(mc.Regs.L()))

		repeat = mc.Regs.B() != 0
	}

	if repeating && repeat {
		// the address on the bus during the repeat cycles
		switch z {
		case 0:
			mc.internalOnBus(mc.Regs.DE-dir, 5)
		case 1, 2:
			mc.internalOnBus(mc.Regs.HL-dir, 5)
		case 3:
			mc.internalOnBus(mc.Regs.BC, 5)
		}
		mc.Regs.PC -= 2
		mc.Regs.WZ = mc.Regs.PC + 1
	}
}

// flags for the block I/O instructions. k is the sum of the transferred
// value and the adjusted C register (for input) or the L register (for
// output). N is always set
func (mc *CPU) blockIOFlags(k int) {
	b := mc.Regs.B()
	f := sz53[b] | registers.N
	if k > 0xff {
		f |= registers.H | registers.C
	}
	f |= sz53p[uint8(k&0x07)^b] & registers.PV
	mc.setFlags(f)
}
