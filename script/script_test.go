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

package script_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/script"
	"github.com/dotneteer/spectnetgo/test"
)

func newScript(t *testing.T) (*hardware.Spectrum, *script.Script, *bytes.Buffer) {
	t.Helper()
	spec, err := hardware.NewSpectrum(nil, preferences.Model48)
	test.DemandSuccess(t, err)

	out := &bytes.Buffer{}
	scr, err := script.NewScript(spec, out)
	test.DemandSuccess(t, err)
	t.Cleanup(scr.Close)

	return spec, scr, out
}

func TestMemory(t *testing.T) {
	spec, scr, _ := newScript(t)

	err := scr.Run(context.Background(), "memory", `
		poke(0x8000, 0x3e)
		poke(0x8001, peek(0x8000) + 1)
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.Mem.Peek(0x8000), uint8(0x3e))
	test.ExpectEquality(t, spec.Mem.Peek(0x8001), uint8(0x3f))

	err = scr.Run(context.Background(), "memory", `poke(0x10000, 1)`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = scr.Run(context.Background(), "memory", `poke(0x8000, 256)`)
	test.ExpectFailure(t, err)
}

func TestRegisters(t *testing.T) {
	spec, scr, out := newScript(t)

	err := scr.Run(context.Background(), "registers", `
		setreg("hl", 0x1234)
		setreg("A", 0x56)
		setreg("af'", 0xabcd)
		print(reg("h"), reg("l"), reg("a"))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "18\t52\t86\n")
	test.ExpectEquality(t, spec.CPU.Regs.HL, uint16(0x1234))
	test.ExpectEquality(t, spec.CPU.Regs.A(), uint8(0x56))
	test.ExpectEquality(t, spec.CPU.Regs.AltAF, uint16(0xabcd))

	err = scr.Run(context.Background(), "registers", `reg("q")`)
	test.ExpectFailure(t, err)

	err = scr.Run(context.Background(), "registers", `setreg("pc", -1)`)
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	spec, scr, _ := newScript(t)

	// LD A,0x42; NOP
	spec.Mem.Poke(0x8000, 0x3e)
	spec.Mem.Poke(0x8001, 0x42)
	spec.Mem.Poke(0x8002, 0x00)

	err := scr.Run(context.Background(), "step", `
		setreg("pc", 0x8000)
		assert(step() == 7)
		assert(reg("a") == 0x42)
		assert(step(1) == 4)
		assert(tacts() == 11)
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8003))
}

func TestRun(t *testing.T) {
	spec, scr, out := newScript(t)

	// JP 0x8000
	spec.Mem.Poke(0x8000, 0xc3)
	spec.Mem.Poke(0x8001, 0x00)
	spec.Mem.Poke(0x8002, 0x80)

	// DI; HALT
	spec.Mem.Poke(0x9000, 0xf3)
	spec.Mem.Poke(0x9001, 0x76)

	err := scr.Run(context.Background(), "run", `
		setreg("pc", 0x8000)
		print(run_frames(2))
		print(frames())
		print(run_until(0x8000))
		setreg("pc", 0x9000)
		step(2)
		print(halted())
		reset()
		print(tacts(), frames())
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "frame completed\n2\nexecution point reached\ntrue\n0\t0\n")
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x0000))
}

func TestRewind(t *testing.T) {
	spec, scr, out := newScript(t)

	// JP 0x8000
	spec.Mem.Poke(0x8000, 0xc3)
	spec.Mem.Poke(0x8001, 0x00)
	spec.Mem.Poke(0x8002, 0x80)

	err := scr.Run(context.Background(), "rewind", `rewind()`)
	test.ExpectFailure(t, err)

	err = scr.Run(context.Background(), "rewind", `
		setreg("pc", 0x8000)
		record(10)
		poke(0x9000, 1)
		run_frames(1)
		poke(0x9000, 2)
		run_frames(1)
		print(rewind())
		print(rewind(1), peek(0x9000))
		print(rewind(0), peek(0x9000))
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.String(), "3\n3\t1\n3\t0\n")
}

func TestCancelled(t *testing.T) {
	_, scr, _ := newScript(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := scr.Run(ctx, "cancelled", `while true do end`)
	test.ExpectFailure(t, err)
}

func TestSyntaxError(t *testing.T) {
	_, scr, _ := newScript(t)
	err := scr.Run(context.Background(), "syntax", `poke(`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestNoOSLibrary(t *testing.T) {
	_, scr, _ := newScript(t)
	err := scr.Run(context.Background(), "os", `os.exit(1)`)
	test.ExpectFailure(t, err)
}

func TestRunFile(t *testing.T) {
	spec, err := hardware.NewSpectrum(nil, preferences.Model48)
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "poke.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`poke(0x9000, 0x99) print("done")`), 0o644))

	out := &bytes.Buffer{}
	err = script.RunFile(context.Background(), spec, loader.NewLoader(fn, ""), out)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.Mem.Peek(0x9000), uint8(0x99))
	test.ExpectEquality(t, out.String(), "done\n")
}
