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

// Reg8 enumerates the 8 bit registers in the order they are encoded in the
// three bit register fields of an opcode. Value 6 selects a memory operand
// and is not a register.
type Reg8 int

// List of 8 bit register encodings.
const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegMem
	RegA
)

// Label returns the register name. The index argument is used when register
// H or L is substituted by the high or low byte of an index register.
func (r Reg8) Label(index string) string {
	switch r {
	case RegH:
		if index != "" {
			return index + "H"
		}
	case RegL:
		if index != "" {
			return index + "L"
		}
	}
	return [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}[r]
}

// Get the value of the 8 bit register. RegMem returns zero.
func (r *File) Get8(reg Reg8) uint8 {
	switch reg {
	case RegB:
		return r.B()
	case RegC:
		return r.C()
	case RegD:
		return r.D()
	case RegE:
		return r.E()
	case RegH:
		return r.H()
	case RegL:
		return r.L()
	case RegA:
		return r.A()
	}
	return 0
}

// Set the value of the 8 bit register. RegMem is ignored.
func (r *File) Set8(reg Reg8, v uint8) {
	switch reg {
	case RegB:
		r.SetB(v)
	case RegC:
		r.SetC(v)
	case RegD:
		r.SetD(v)
	case RegE:
		r.SetE(v)
	case RegH:
		r.SetH(v)
	case RegL:
		r.SetL(v)
	case RegA:
		r.SetA(v)
	}
}

// Reg16 enumerates the register pairs in the order they are encoded in the
// two bit register pair fields of an opcode. For PUSH and POP the fourth
// encoding selects AF rather than SP.
type Reg16 int

// List of register pair encodings.
const (
	RegBC Reg16 = iota
	RegDE
	RegHL
	RegSP
)

// Label returns the register pair name. The af argument selects AF for the
// fourth encoding.
func (r Reg16) Label(af bool) string {
	if r == RegSP && af {
		return "AF"
	}
	return [...]string{"BC", "DE", "HL", "SP"}[r]
}

// Pair returns a pointer to the register pair. When af is true, the fourth
// encoding selects AF instead of SP.
func (r *File) Pair(reg Reg16, af bool) *uint16 {
	switch reg {
	case RegBC:
		return &r.BC
	case RegDE:
		return &r.DE
	case RegHL:
		return &r.HL
	}
	if af {
		return &r.AF
	}
	return &r.SP
}
