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

package registers

import "fmt"

// File is the complete register file of the Z80.
type File struct {
	AF uint16
	BC uint16
	DE uint16
	HL uint16

	// alternate register set. swapped in with EX AF,AF' and EXX
	AltAF uint16
	AltBC uint16
	AltDE uint16
	AltHL uint16

	IX uint16
	IY uint16
	SP uint16
	PC uint16

	// interrupt vector (high) and memory refresh (low)
	IR uint16

	// internal register, also known as MEMPTR. affects the undocumented flags
	// of some instructions
	WZ uint16
}

func (r File) String() string {
	return fmt.Sprintf("AF=%04x BC=%04x DE=%04x HL=%04x AF'=%04x BC'=%04x DE'=%04x HL'=%04x IX=%04x IY=%04x SP=%04x PC=%04x IR=%04x WZ=%04x %s=%s",
		r.AF, r.BC, r.DE, r.HL,
		r.AltAF, r.AltBC, r.AltDE, r.AltHL,
		r.IX, r.IY, r.SP, r.PC, r.IR, r.WZ,
		r.F().Label(), r.F())
}

func setHi(p *uint16, v uint8) {
	*p = (*p & 0x00ff) | uint16(v)<<8
}

func setLo(p *uint16, v uint8) {
	*p = (*p & 0xff00) | uint16(v)
}

func (r *File) A() uint8     { return uint8(r.AF >> 8) }
func (r *File) F() Flags     { return Flags(r.AF) }
func (r *File) B() uint8     { return uint8(r.BC >> 8) }
func (r *File) C() uint8     { return uint8(r.BC) }
func (r *File) D() uint8     { return uint8(r.DE >> 8) }
func (r *File) E() uint8     { return uint8(r.DE) }
func (r *File) H() uint8     { return uint8(r.HL >> 8) }
func (r *File) L() uint8     { return uint8(r.HL) }
func (r *File) I() uint8     { return uint8(r.IR >> 8) }
func (r *File) R() uint8     { return uint8(r.IR) }
func (r *File) XH() uint8    { return uint8(r.IX >> 8) }
func (r *File) XL() uint8    { return uint8(r.IX) }
func (r *File) YH() uint8    { return uint8(r.IY >> 8) }
func (r *File) YL() uint8    { return uint8(r.IY) }
func (r *File) WZH() uint8   { return uint8(r.WZ >> 8) }
func (r *File) SetA(v uint8) { setHi(&r.AF, v) }
func (r *File) SetF(v Flags) { setLo(&r.AF, uint8(v)) }
func (r *File) SetB(v uint8) { setHi(&r.BC, v) }
func (r *File) SetC(v uint8) { setLo(&r.BC, v) }
func (r *File) SetD(v uint8) { setHi(&r.DE, v) }
func (r *File) SetE(v uint8) { setLo(&r.DE, v) }
func (r *File) SetH(v uint8) { setHi(&r.HL, v) }
func (r *File) SetL(v uint8) { setLo(&r.HL, v) }
func (r *File) SetI(v uint8) { setHi(&r.IR, v) }
func (r *File) SetR(v uint8) { setLo(&r.IR, v) }

// IncR increments the lower seven bits of the R register. Bit 7 is
// preserved.
func (r *File) IncR() {
	v := r.R()
	r.SetR(((v + 1) & 0x7f) | (v & 0x80))
}

// ExchangeAF swaps AF and AF'.
func (r *File) ExchangeAF() {
	r.AF, r.AltAF = r.AltAF, r.AF
}

// Exx swaps BC, DE and HL with their alternates.
func (r *File) Exx() {
	r.BC, r.AltBC = r.AltBC, r.BC
	r.DE, r.AltDE = r.AltDE, r.DE
	r.HL, r.AltHL = r.AltHL, r.HL
}

// Reset registers to their power-on state. AF and SP are 0xffff, all other
// registers are zero.
func (r *File) Reset() {
	*r = File{
		AF:    0xffff,
		SP:    0xffff,
		AltAF: 0xffff,
	}
}
