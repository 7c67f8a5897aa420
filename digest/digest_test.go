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

package digest_test

import (
	"testing"

	"github.com/dotneteer/spectnetgo/digest"
	"github.com/dotneteer/spectnetgo/hardware"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/test"
)

// machine running a program that writes the frame count to the screen
func newMachine(t *testing.T) (*hardware.Spectrum, *digest.Screen) {
	t.Helper()
	spec, err := hardware.NewSpectrum(nil, preferences.Model48)
	test.DemandSuccess(t, err)

	// INC (HL); JP 0x8000
	program := []uint8{0x34, 0xc3, 0x00, 0x80}
	for i, b := range program {
		spec.Mem.Poke(uint16(0x8000+i), b)
	}
	spec.CPU.Regs.PC = 0x8000
	spec.CPU.Regs.HL = 0x4000

	return spec, digest.NewScreen(spec)
}

func TestScreen(t *testing.T) {
	var dig digest.Digest

	specA, digA := newMachine(t)
	dig = digA
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	specB, digB := newMachine(t)

	specA.RunForFrameCount(3)
	specB.RunForFrameCount(3)
	test.ExpectEquality(t, digA.Frames(), 3)
	test.ExpectEquality(t, digA.Hash(), digB.Hash())

	// a change to the border changes the hash of the next frame
	specB.Ports.Write(0x00fe, 0x01)
	specA.RunForFrameCount(1)
	specB.RunForFrameCount(1)
	test.ExpectInequality(t, digA.Hash(), digB.Hash())
}

func TestReset(t *testing.T) {
	spec, dig := newMachine(t)
	spec.RunForFrameCount(2)
	test.ExpectInequality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	spec.Reset()
	test.ExpectEquality(t, dig.Frames(), 0)
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	dig.ResetDigest()
	test.ExpectEquality(t, dig.String(), "0000000000000000000000000000000000000000 (0 frames)")
}
