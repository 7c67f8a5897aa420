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
	"math/bits"

	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
)

// flag lookup tables indexed by an 8 bit result
var (
	// S, Z, Y and X flags
	sz53 [256]registers.Flags

	// S, Z, Y, X and parity flags
	sz53p [256]registers.Flags
)

func init() {
	for i := 0; i < 256; i++ {
		f := registers.Flags(i) & (registers.S | registers.XY)
		if i == 0 {
			f |= registers.Z
		}
		sz53[i] = f
		sz53p[i] = f
		if bits.OnesCount8(uint8(i))%2 == 0 {
			sz53p[i] |= registers.PV
		}
	}
}

func (mc *CPU) flags() registers.Flags {
	return mc.Regs.F()
}

func (mc *CPU) setFlags(f registers.Flags) {
	mc.Regs.SetF(f)
}

// the condition codes in the order they are encoded in opcodes
func (mc *CPU) condition(cc int) bool {
	f := mc.flags()
	switch cc {
	case 0:
		return !f.Is(registers.Z)
	case 1:
		return f.Is(registers.Z)
	case 2:
		return !f.Is(registers.C)
	case 3:
		return f.Is(registers.C)
	case 4:
		return !f.Is(registers.PV)
	case 5:
		return f.Is(registers.PV)
	case 6:
		return !f.Is(registers.S)
	}
	return f.Is(registers.S)
}

func (mc *CPU) carry() uint8 {
	return uint8(mc.flags() & registers.C)
}

func (mc *CPU) add8(v uint8, c uint8) {
	a := mc.Regs.A()
	res := uint16(a) + uint16(v) + uint16(c)
	r := uint8(res)

	f := sz53[r]
	if res > 0xff {
		f |= registers.C
	}
	f |= registers.Flags(a^v^r) & registers.H
	if (a^v)&0x80 == 0 && (a^r)&0x80 != 0 {
		f |= registers.PV
	}

	mc.Regs.SetA(r)
	mc.setFlags(f)
}

// sub8 returns the result and the flags of a subtraction from the
// accumulator. the accumulator is not changed
func (mc *CPU) sub8(v uint8, c uint8) (uint8, registers.Flags) {
	a := mc.Regs.A()
	res := uint16(a) - uint16(v) - uint16(c)
	r := uint8(res)

	f := sz53[r] | registers.N
	if res > 0xff {
		f |= registers.C
	}
	f |= registers.Flags(a^v^r) & registers.H
	if (a^v)&0x80 != 0 && (a^r)&0x80 != 0 {
		f |= registers.PV
	}

	return r, f
}

// the eight accumulator operations in the order they are encoded in opcodes
func (mc *CPU) alu(op int, v uint8) {
	switch op {
	case 0:
		mc.add8(v, 0)
	case 1:
		mc.add8(v, mc.carry())
	case 2:
		r, f := mc.sub8(v, 0)
		mc.Regs.SetA(r)
		mc.setFlags(f)
	case 3:
		r, f := mc.sub8(v, mc.carry())
		mc.Regs.SetA(r)
		mc.setFlags(f)
	case 4:
		r := mc.Regs.A() & v
		mc.Regs.SetA(r)
		mc.setFlags(sz53p[r] | registers.H)
	case 5:
		r := mc.Regs.A() ^ v
		mc.Regs.SetA(r)
		mc.setFlags(sz53p[r])
	case 6:
		r := mc.Regs.A() | v
		mc.Regs.SetA(r)
		mc.setFlags(sz53p[r])
	case 7:
		// compare takes the undocumented flags from the operand
		_, f := mc.sub8(v, 0)
		mc.setFlags(f&^registers.XY | registers.Flags(v)&registers.XY)
	}
}

func (mc *CPU) inc8(v uint8) uint8 {
	r := v + 1
	f := mc.flags()&registers.C | sz53[r]
	if r == 0x80 {
		f |= registers.PV
	}
	if r&0x0f == 0 {
		f |= registers.H
	}
	mc.setFlags(f)
	return r
}

func (mc *CPU) dec8(v uint8) uint8 {
	r := v - 1
	f := mc.flags()&registers.C | sz53[r] | registers.N
	if v == 0x80 {
		f |= registers.PV
	}
	if v&0x0f == 0 {
		f |= registers.H
	}
	mc.setFlags(f)
	return r
}

// ADD HL,rr and the index register forms
func (mc *CPU) add16(a uint16, b uint16) uint16 {
	mc.Regs.WZ = a + 1
	res := uint32(a) + uint32(b)
	r := uint16(res)

	f := mc.flags() & (registers.S | registers.Z | registers.PV)
	f |= registers.Flags(r>>8) & registers.XY
	f |= registers.Flags((a^b^r)>>8) & registers.H
	if res > 0xffff {
		f |= registers.C
	}
	mc.setFlags(f)
	return r
}

func (mc *CPU) adc16(a uint16, b uint16) uint16 {
	mc.Regs.WZ = a + 1
	res := uint32(a) + uint32(b) + uint32(mc.carry())
	r := uint16(res)

	f := registers.Flags(r>>8) & (registers.S | registers.XY)
	if r == 0 {
		f |= registers.Z
	}
	f |= registers.Flags((a^b^r)>>8) & registers.H
	if (a^b)&0x8000 == 0 && (a^r)&0x8000 != 0 {
		f |= registers.PV
	}
	if res > 0xffff {
		f |= registers.C
	}
	mc.setFlags(f)
	return r
}

func (mc *CPU) sbc16(a uint16, b uint16) uint16 {
	mc.Regs.WZ = a + 1
	res := uint32(a) - uint32(b) - uint32(mc.carry())
	r := uint16(res)

	f := registers.Flags(r>>8)&(registers.S|registers.XY) | registers.N
	if r == 0 {
		f |= registers.Z
	}
	f |= registers.Flags((a^b^r)>>8) & registers.H
	if (a^b)&0x8000 != 0 && (a^r)&0x8000 != 0 {
		f |= registers.PV
	}
	if res > 0xffff {
		f |= registers.C
	}
	mc.setFlags(f)
	return r
}

// the rotate and shift operations of the CB table, in the order they are
// encoded in opcodes. SLL is the undocumented shift that sets bit 0
func (mc *CPU) rotate(op int, v uint8) uint8 {
	var r uint8
	var c bool

	switch op {
	case 0: // RLC
		c = v&0x80 != 0
		r = v<<1 | v>>7
	case 1: // RRC
		c = v&0x01 != 0
		r = v>>1 | v<<7
	case 2: // RL
		c = v&0x80 != 0
		r = v<<1 | mc.carry()
	case 3: // RR
		c = v&0x01 != 0
		r = v>>1 | mc.carry()<<7
	case 4: // SLA
		c = v&0x80 != 0
		r = v << 1
	case 5: // SRA
		c = v&0x01 != 0
		r = v>>1 | v&0x80
	case 6: // SLL
		c = v&0x80 != 0
		r = v<<1 | 0x01
	case 7: // SRL
		c = v&0x01 != 0
		r = v >> 1
	}

	f := sz53p[r]
	if c {
		f |= registers.C
	}
	mc.setFlags(f)
	return r
}

// the accumulator rotates. S, Z and PV are preserved
func (mc *CPU) rotateA(op int) {
	a := mc.Regs.A()
	var r uint8
	var c bool

	switch op {
	case 0: // RLCA
		c = a&0x80 != 0
		r = a<<1 | a>>7
	case 1: // RRCA
		c = a&0x01 != 0
		r = a>>1 | a<<7
	case 2: // RLA
		c = a&0x80 != 0
		r = a<<1 | mc.carry()
	case 3: // RRA
		c = a&0x01 != 0
		r = a>>1 | mc.carry()<<7
	}

	f := mc.flags()&(registers.S|registers.Z|registers.PV) | registers.Flags(r)&registers.XY
	if c {
		f |= registers.C
	}
	mc.Regs.SetA(r)
	mc.setFlags(f)
}

func (mc *CPU) daa() {
	a := mc.Regs.A()
	f := mc.flags()

	var diff uint8
	c := f & registers.C
	if f.Is(registers.H) || a&0x0f > 9 {
		diff = 0x06
	}
	if c != 0 || a > 0x99 {
		diff |= 0x60
		c = registers.C
	}

	var h bool
	r := a
	if f.Is(registers.N) {
		h = f.Is(registers.H) && a&0x0f < 6
		r -= diff
	} else {
		h = a&0x0f > 9
		r += diff
	}

	nf := sz53p[r] | c | f&registers.N
	if h {
		nf |= registers.H
	}
	mc.Regs.SetA(r)
	mc.setFlags(nf)
}

func (mc *CPU) cpl() {
	r := ^mc.Regs.A()
	f := mc.flags()&(registers.S|registers.Z|registers.PV|registers.C) | registers.H | registers.N
	mc.Regs.SetA(r)
	mc.setFlags(f | registers.Flags(r)&registers.XY)
}

func (mc *CPU) scf() {
	f := mc.flags()&(registers.S|registers.Z|registers.PV) | registers.C
	mc.setFlags(f | registers.Flags(mc.Regs.A())&registers.XY)
}

func (mc *CPU) ccf() {
	f := mc.flags()&(registers.S|registers.Z|registers.PV) | registers.Flags(mc.Regs.A())&registers.XY
	if mc.flags().Is(registers.C) {
		f |= registers.H
	} else {
		f |= registers.C
	}
	mc.setFlags(f)
}

func (mc *CPU) neg() {
	v := mc.Regs.A()
	mc.Regs.SetA(0)
	r, f := mc.sub8(v, 0)
	mc.Regs.SetA(r)
	mc.setFlags(f)
}

// BIT n. the xy argument is the source of the undocumented flags, which
// differs between the register and memory forms
func (mc *CPU) bit(n int, v uint8, xy uint8) {
	f := mc.flags()&registers.C | registers.H | registers.Flags(xy)&registers.XY
	if v&(1<<n) == 0 {
		f |= registers.Z | registers.PV
	} else if n == 7 {
		f |= registers.S
	}
	mc.setFlags(f)
}

// flags for IN r,(C)
func (mc *CPU) inFlags(v uint8) {
	mc.setFlags(mc.flags()&registers.C | sz53p[v])
}
