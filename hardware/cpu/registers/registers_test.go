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

package registers_test

import (
	"testing"

	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
	"github.com/dotneteer/spectnetgo/test"
)

func TestEightBit(t *testing.T) {
	var r registers.File

	r.SetA(0x12)
	r.SetF(registers.Z | registers.C)
	test.ExpectEquality(t, r.AF, uint16(0x1241))

	r.SetB(0x34)
	r.SetC(0x56)
	test.ExpectEquality(t, r.BC, uint16(0x3456))

	r.Set8(registers.RegH, 0xab)
	r.Set8(registers.RegL, 0xcd)
	test.ExpectEquality(t, r.HL, uint16(0xabcd))
	test.ExpectEquality(t, r.Get8(registers.RegL), uint8(0xcd))

	// memory operand is not a register
	r.Set8(registers.RegMem, 0xff)
	test.ExpectEquality(t, r.Get8(registers.RegMem), uint8(0x00))
}

func TestRefresh(t *testing.T) {
	var r registers.File

	r.SetR(0x7f)
	r.IncR()
	test.ExpectEquality(t, r.R(), uint8(0x00))

	r.SetR(0xff)
	r.IncR()
	test.ExpectEquality(t, r.R(), uint8(0x80))

	r.SetR(0x80)
	r.IncR()
	test.ExpectEquality(t, r.R(), uint8(0x81))
}

func TestExchange(t *testing.T) {
	var r registers.File
	r.AF = 0x1111
	r.AltAF = 0x2222
	r.BC = 0x3333
	r.AltHL = 0x4444

	r.ExchangeAF()
	test.ExpectEquality(t, r.AF, uint16(0x2222))
	test.ExpectEquality(t, r.AltAF, uint16(0x1111))

	r.Exx()
	test.ExpectEquality(t, r.BC, uint16(0x0000))
	test.ExpectEquality(t, r.AltBC, uint16(0x3333))
	test.ExpectEquality(t, r.HL, uint16(0x4444))
}

func TestPair(t *testing.T) {
	var r registers.File
	*r.Pair(registers.RegSP, false) = 0x1234
	*r.Pair(registers.RegSP, true) = 0x5678
	test.ExpectEquality(t, r.SP, uint16(0x1234))
	test.ExpectEquality(t, r.AF, uint16(0x5678))
	test.ExpectEquality(t, registers.RegSP.Label(true), "AF")
	test.ExpectEquality(t, registers.RegH.Label("IX"), "IXH")
	test.ExpectEquality(t, registers.RegMem.Label(""), "(HL)")
}

func TestFlagsString(t *testing.T) {
	f := registers.S | registers.H | registers.C
	test.ExpectEquality(t, f.String(), "SzyHxpnC")
	test.ExpectEquality(t, registers.Flags(0xff).String(), "SZYHXPNC")

	f.Set(registers.Z, true)
	f.Set(registers.C, false)
	test.ExpectSuccess(t, f.Is(registers.Z|registers.S))
	test.ExpectFailure(t, f.Is(registers.C))
}

func TestReset(t *testing.T) {
	var r registers.File
	r.PC = 0x1234
	r.Reset()
	test.ExpectEquality(t, r.AF, uint16(0xffff))
	test.ExpectEquality(t, r.SP, uint16(0xffff))
	test.ExpectEquality(t, r.PC, uint16(0x0000))
}
