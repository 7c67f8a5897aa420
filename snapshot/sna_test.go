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

package snapshot_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/snapshot"
	"github.com/dotneteer/spectnetgo/test"
)

func newMachine(t *testing.T, model string) *hardware.Spectrum {
	t.Helper()
	spec, err := hardware.NewSpectrum(nil, model)
	test.DemandSuccess(t, err)
	return spec
}

func TestRoundTrip(t *testing.T) {
	spec := newMachine(t, preferences.Model48)

	regs := &spec.CPU.Regs
	regs.AF = 0x1234
	regs.BC = 0x2345
	regs.DE = 0x3456
	regs.HL = 0x4567
	regs.AltAF = 0x5678
	regs.AltHL = 0x6789
	regs.IX = 0x789a
	regs.IY = 0x89ab
	regs.SetI(0x3f)
	regs.SetR(0x11)
	regs.SP = 0xff00
	regs.PC = 0x8000
	spec.CPU.IFF1 = true
	spec.CPU.IFF2 = true
	spec.CPU.InterruptMode = 1
	spec.Ports.Write(0x00fe, 0x05)
	spec.Mem.Poke(0x9000, 0xaa)

	var buf bytes.Buffer
	test.DemandSuccess(t, snapshot.WriteSNA(&buf, spec))
	data := buf.Bytes()
	test.DemandEquality(t, len(data), snapshot.Length)

	// the stack pointer in the header includes the pushed program counter
	test.ExpectEquality(t, data[23], uint8(0xfe))
	test.ExpectEquality(t, data[24], uint8(0xfe))
	test.ExpectEquality(t, data[snapshot.HeaderLength+0xfefe-0x4000], uint8(0x00))
	test.ExpectEquality(t, data[snapshot.HeaderLength+0xfeff-0x4000], uint8(0x80))
	test.ExpectEquality(t, data[19], uint8(0x04))
	test.ExpectEquality(t, data[26], uint8(0x05))

	// the machine is not changed by writing
	test.ExpectEquality(t, regs.SP, uint16(0xff00))
	test.ExpectEquality(t, spec.Mem.Peek(0xfefe), uint8(0x00))

	other := newMachine(t, preferences.Model48)
	test.DemandSuccess(t, snapshot.ReadSNA(data, other))

	o := other.CPU.Regs
	test.ExpectEquality(t, o.AF, uint16(0x1234))
	test.ExpectEquality(t, o.BC, uint16(0x2345))
	test.ExpectEquality(t, o.DE, uint16(0x3456))
	test.ExpectEquality(t, o.HL, uint16(0x4567))
	test.ExpectEquality(t, o.AltAF, uint16(0x5678))
	test.ExpectEquality(t, o.AltHL, uint16(0x6789))
	test.ExpectEquality(t, o.IX, uint16(0x789a))
	test.ExpectEquality(t, o.IY, uint16(0x89ab))
	test.ExpectEquality(t, o.I(), uint8(0x3f))
	test.ExpectEquality(t, o.R(), uint8(0x11))
	test.ExpectEquality(t, o.SP, uint16(0xff00))
	test.ExpectEquality(t, o.PC, uint16(0x8000))
	test.ExpectSuccess(t, other.CPU.IFF1)
	test.ExpectEquality(t, other.CPU.InterruptMode, uint8(1))
	test.ExpectEquality(t, other.ULA.BorderColor(), uint8(0x05))
	test.ExpectEquality(t, other.Mem.Peek(0x9000), uint8(0xaa))
}

func TestErrors(t *testing.T) {
	spec := newMachine(t, preferences.Model48)

	err := snapshot.ReadSNA(make([]uint8, 100), spec)
	test.ExpectSuccess(t, curated.Is(err, snapshot.BadSNA))

	data := make([]uint8, snapshot.Length)
	data[25] = 3
	err = snapshot.ReadSNA(data, spec)
	test.ExpectSuccess(t, curated.Is(err, snapshot.BadSNA))

	// stack pointer of zero
	data[25] = 1
	err = snapshot.ReadSNA(data, spec)
	test.ExpectSuccess(t, curated.Is(err, snapshot.StackInROM))

	spec.CPU.Regs.SP = 0x1000
	err = snapshot.WriteSNA(&bytes.Buffer{}, spec)
	test.ExpectSuccess(t, curated.Is(err, snapshot.StackInROM))

	spec128 := newMachine(t, preferences.Model128)
	spec128.CPU.Regs.SP = 0xff00
	err = snapshot.WriteSNA(&bytes.Buffer{}, spec128)
	test.ExpectSuccess(t, curated.Is(err, snapshot.UnsupportedModel))
}

func TestFiles(t *testing.T) {
	spec := newMachine(t, preferences.Model48)
	spec.CPU.Regs.SP = 0xff00
	spec.CPU.Regs.PC = 0x8123

	fn := filepath.Join(t.TempDir(), "test.sna")
	test.DemandSuccess(t, snapshot.SaveSNA(fn, spec))

	info, err := os.Stat(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(snapshot.Length))

	other := newMachine(t, preferences.Model48)
	test.DemandSuccess(t, snapshot.LoadSNA(loader.NewLoader(fn, ""), other))
	test.ExpectEquality(t, other.CPU.Regs.PC, uint16(0x8123))
}
