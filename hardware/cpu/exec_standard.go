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

// split an opcode into its fields: xxyyyzzz. p and q are the upper and lower
// parts of y
func split(op uint8) (x, y, z, p, q int) {
	x = int(op >> 6)
	y = int(op>>3) & 7
	z = int(op) & 7
	p = y >> 1
	q = y & 1
	return
}

func (mc *CPU) executeInstruction() {
	mc.interruptBlocked = false

	prefix := instructions.Unprefixed
	op := mc.fetchOpcode()

	// the last of a chain of index prefixes is the one that applies
	for op == instructions.PrefixDD || op == instructions.PrefixFD {
		if prefix != instructions.Unprefixed {
			mc.LastResult.IgnoredPrefixes++
		}
		if op == instructions.PrefixDD {
			prefix = instructions.DD
		} else {
			prefix = instructions.FD
		}
		op = mc.fetchOpcode()
	}

	switch op {
	case instructions.PrefixCB:
		if prefix == instructions.Unprefixed {
			mc.executeBit(mc.fetchOpcode())
		} else {
			mc.executeIndexedBit(prefix)
		}
	case instructions.PrefixED:
		// an index prefix before ED has no effect
		if prefix != instructions.Unprefixed {
			mc.LastResult.IgnoredPrefixes++
		}
		mc.executeExtended(mc.fetchOpcode())
	default:
		mc.executeStandard(prefix, op)
	}
}

// the register that replaces HL for the prefix. nil if the instruction is
// unprefixed
func (mc *CPU) indexRegister(prefix instructions.Prefix) *uint16 {
	switch prefix {
	case instructions.DD:
		return &mc.Regs.IX
	case instructions.FD:
		return &mc.Regs.IY
	}
	return nil
}

// read an 8 bit register with H and L replaced by the halves of the index
// register if idx is not nil
func (mc *CPU) reg8(r registers.Reg8, idx *uint16) uint8 {
	if idx != nil {
		switch r {
		case registers.RegH:
			return uint8(*idx >> 8)
		case registers.RegL:
			return uint8(*idx)
		}
	}
	return mc.Regs.Get8(r)
}

func (mc *CPU) setReg8(r registers.Reg8, v uint8, idx *uint16) {
	if idx != nil {
		switch r {
		case registers.RegH:
			*idx = uint16(v)<<8 | *idx&0x00ff
			return
		case registers.RegL:
			*idx = *idx&0xff00 | uint16(v)
			return
		}
	}
	mc.Regs.Set8(r, v)
}

// the register pair with HL replaced by the index register if idx is not
// nil. when af is true the fourth pair is AF rather than SP
func (mc *CPU) pair(p int, af bool, idx *uint16) *uint16 {
	if idx != nil && registers.Reg16(p) == registers.RegHL {
		return idx
	}
	return mc.Regs.Pair(registers.Reg16(p), af)
}

// the address of the memory operand. for indexed instructions the
// displacement is read and the internal cycles used to add it to the index
// register are consumed
func (mc *CPU) memOperand(idx *uint16) uint16 {
	if idx == nil {
		return mc.Regs.HL
	}
	d := int8(mc.fetchByte())
	mc.internal(5)
	address := *idx + uint16(d)
	mc.Regs.WZ = address
	return address
}

func (mc *CPU) relativeJump(e uint8) {
	mc.internal(5)
	mc.Regs.PC += uint16(int8(e))
	mc.Regs.WZ = mc.Regs.PC
}

func (mc *CPU) executeStandard(prefix instructions.Prefix, op uint8) {
	mc.LastResult.Defn = instructions.Lookup(prefix, op)
	idx := mc.indexRegister(prefix)

	x, y, z, p, q := split(op)

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				// NOP
			case 1:
				mc.Regs.ExchangeAF()
			case 2:
				mc.internal(1)
				e := mc.fetchByte()
				b := mc.Regs.B() - 1
				mc.Regs.SetB(b)
				if b != 0 {
					mc.relativeJump(e)
				}
			case 3:
				mc.relativeJump(mc.fetchByte())
			default:
				e := mc.fetchByte()
				if mc.condition(y - 4) {
					mc.relativeJump(e)
				}
			}

		case 1:
			rp := mc.pair(p, false, idx)
			if q == 0 {
				*rp = mc.fetchWord()
			} else {
				hl := idx
				if hl == nil {
					hl = &mc.Regs.HL
				}
				mc.internal(7)
				*hl = mc.add16(*hl, *rp)
			}

		case 2:
			switch y {
			case 0, 2:
				rp := &mc.Regs.BC
				if y == 2 {
					rp = &mc.Regs.DE
				}
				a := mc.Regs.A()
				mc.writeMem(*rp, a)
				mc.Regs.WZ = uint16(a)<<8 | (*rp+1)&0x00ff
			case 1, 3:
				rp := &mc.Regs.BC
				if y == 3 {
					rp = &mc.Regs.DE
				}
				mc.Regs.SetA(mc.readMem(*rp))
				mc.Regs.WZ = *rp + 1
			case 4:
				nn := mc.fetchWord()
				hl := mc.pair(int(registers.RegHL), false, idx)
				mc.writeMem(nn, uint8(*hl))
				mc.writeMem(nn+1, uint8(*hl>>8))
				mc.Regs.WZ = nn + 1
			case 5:
				nn := mc.fetchWord()
				hl := mc.pair(int(registers.RegHL), false, idx)
				lo := mc.readMem(nn)
				hi := mc.readMem(nn + 1)
				*hl = uint16(hi)<<8 | uint16(lo)
				mc.Regs.WZ = nn + 1
			case 6:
				nn := mc.fetchWord()
				a := mc.Regs.A()
				mc.writeMem(nn, a)
				mc.Regs.WZ = uint16(a)<<8 | (nn+1)&0x00ff
			case 7:
				nn := mc.fetchWord()
				mc.Regs.SetA(mc.readMem(nn))
				mc.Regs.WZ = nn + 1
			}

		case 3:
			rp := mc.pair(p, false, idx)
			mc.internal(2)
			if q == 0 {
				*rp++
			} else {
				*rp--
			}

		case 4, 5:
			r := registers.Reg8(y)
			step := mc.inc8
			if z == 5 {
				step = mc.dec8
			}
			if r == registers.RegMem {
				address := mc.memOperand(idx)
				v := mc.readMem(address)
				mc.internal(1)
				mc.writeMem(address, step(v))
			} else {
				mc.setReg8(r, step(mc.reg8(r, idx)), idx)
			}

		case 6:
			r := registers.Reg8(y)
			switch {
			case r != registers.RegMem:
				mc.setReg8(r, mc.fetchByte(), idx)
			case idx == nil:
				mc.writeMem(mc.Regs.HL, mc.fetchByte())
			default:
				// the displacement and the immediate value are both read
				// before the address is calculated
				d := int8(mc.fetchByte())
				n := mc.fetchByte()
				mc.internal(2)
				address := *idx + uint16(d)
				mc.Regs.WZ = address
				mc.writeMem(address, n)
			}

		case 7:
			switch y {
			case 0, 1, 2, 3:
				mc.rotateA(y)
			case 4:
				mc.daa()
			case 5:
				mc.cpl()
			case 6:
				mc.scf()
			case 7:
				mc.ccf()
			}
		}

	case 1:
		dst := registers.Reg8(y)
		src := registers.Reg8(z)
		switch {
		case dst == registers.RegMem && src == registers.RegMem:
			// PC is left on the HALT instruction until an interrupt
			mc.Regs.PC--
			mc.signals |= SigHALTED
		case src == registers.RegMem:
			mc.Regs.Set8(dst, mc.readMem(mc.memOperand(idx)))
		case dst == registers.RegMem:
			mc.writeMem(mc.memOperand(idx), mc.Regs.Get8(src))
		default:
			mc.setReg8(dst, mc.reg8(src, idx), idx)
		}

	case 2:
		src := registers.Reg8(z)
		if src == registers.RegMem {
			mc.alu(y, mc.readMem(mc.memOperand(idx)))
		} else {
			mc.alu(y, mc.reg8(src, idx))
		}

	case 3:
		switch z {
		case 0:
			mc.internal(1)
			if mc.condition(y) {
				mc.Regs.PC = mc.pop()
				mc.Regs.WZ = mc.Regs.PC
			}

		case 1:
			if q == 0 {
				*mc.pair(p, true, idx) = mc.pop()
				break
			}
			switch p {
			case 0:
				mc.Regs.PC = mc.pop()
				mc.Regs.WZ = mc.Regs.PC
			case 1:
				mc.Regs.Exx()
			case 2:
				mc.Regs.PC = *mc.pair(int(registers.RegHL), false, idx)
			case 3:
				mc.internal(2)
				mc.Regs.SP = *mc.pair(int(registers.RegHL), false, idx)
			}

		case 2:
			nn := mc.fetchWord()
			mc.Regs.WZ = nn
			if mc.condition(y) {
				mc.Regs.PC = nn
			}

		case 3:
			switch y {
			case 0:
				nn := mc.fetchWord()
				mc.Regs.WZ = nn
				mc.Regs.PC = nn
			case 2:
				n := mc.fetchByte()
				a := mc.Regs.A()
				mc.writePort(uint16(a)<<8|uint16(n), a)
				mc.Regs.WZ = uint16(a)<<8 | uint16(n+1)
			case 3:
				n := mc.fetchByte()
				port := uint16(mc.Regs.A())<<8 | uint16(n)
				mc.Regs.WZ = port + 1
				mc.Regs.SetA(mc.readPort(port))
			case 4:
				hl := mc.pair(int(registers.RegHL), false, idx)
				lo := mc.readMem(mc.Regs.SP)
				hi := mc.readMem(mc.Regs.SP + 1)
				mc.internal(1)
				mc.writeMem(mc.Regs.SP+1, uint8(*hl>>8))
				mc.writeMem(mc.Regs.SP, uint8(*hl))
				mc.internal(2)
				*hl = uint16(hi)<<8 | uint16(lo)
				mc.Regs.WZ = *hl
			case 5:
				mc.Regs.DE, mc.Regs.HL = mc.Regs.HL, mc.Regs.DE
			case 6:
				mc.IFF1 = false
				mc.IFF2 = false
			case 7:
				mc.IFF1 = true
				mc.IFF2 = true
				mc.interruptBlocked = true
			}

		case 4:
			nn := mc.fetchWord()
			mc.Regs.WZ = nn
			if mc.condition(y) {
				mc.internal(1)
				mc.push(mc.Regs.PC)
				mc.Regs.PC = nn
			}

		case 5:
			if q == 0 {
				mc.internal(1)
				mc.push(*mc.pair(p, true, idx))
				break
			}

			// p is always zero. the other encodings are prefixes
			nn := mc.fetchWord()
			mc.Regs.WZ = nn
			mc.internal(1)
			mc.push(mc.Regs.PC)
			mc.Regs.PC = nn

		case 6:
			mc.alu(y, mc.fetchByte())

		case 7:
			mc.internal(1)
			mc.push(mc.Regs.PC)
			mc.Regs.PC = uint16(y * 8)
			mc.Regs.WZ = mc.Regs.PC
		}
	}
}
