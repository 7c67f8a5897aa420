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

package hardware_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dotneteer/spectnetgo/codeloader"
	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware"
	"github.com/dotneteer/spectnetgo/hardware/cpu/execution"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/hardware/tape"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/tapeformat"
	"github.com/dotneteer/spectnetgo/test"
)

// create a 48K machine with the program injected at 0x8000. the program
// counter is set to the start of the program
func newTestSpectrum(t *testing.T, program ...uint8) *hardware.Spectrum {
	t.Helper()

	spec, err := hardware.NewSpectrum(nil, preferences.Model48)
	test.DemandSuccess(t, err)

	if len(program) > 0 {
		out, err := codeloader.FromBinary(program, 0x8000)
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, spec.InjectCode(out, true))
	}

	return spec
}

func TestNewSpectrum(t *testing.T) {
	_, err := hardware.NewSpectrum(nil, "16")
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedModel))

	spec, err := hardware.NewSpectrum(nil, "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.Model, preferences.Model48)
	test.ExpectEquality(t, spec.FrameTacts(), 69888)
	test.ExpectEquality(t, spec.ClockFrequency(), 3500000)
	test.ExpectSuccess(t, spec.Paging == nil)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x0000))
	test.ExpectEquality(t, spec.CPU.Regs.SP, uint16(0xffff))

	spec, err = hardware.NewSpectrum(nil, preferences.Model128)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, spec.FrameTacts(), 70908)
	test.ExpectEquality(t, spec.ClockFrequency(), 3546900)
	test.ExpectSuccess(t, spec.Paging != nil)
}

func TestLDIProgram(t *testing.T) {
	// LDI
	spec := newTestSpectrum(t, 0xed, 0xa0)
	spec.CPU.Regs.HL = 0x9000
	spec.CPU.Regs.DE = 0xa000
	spec.CPU.Regs.BC = 0x0001
	spec.Mem.Poke(0x9000, 0x5a)

	c, err := spec.Run(context.Background(), hardware.RunOptions{Mode: hardware.UntilEndOfCode})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.EndOfCodeReached)
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(16))
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8002))
	test.ExpectEquality(t, spec.CPU.Regs.HL, uint16(0x9001))
	test.ExpectEquality(t, spec.CPU.Regs.DE, uint16(0xa001))
	test.ExpectEquality(t, spec.CPU.Regs.BC, uint16(0x0000))
	test.ExpectEquality(t, spec.Mem.Peek(0xa000), uint8(0x5a))
}

func TestRunUntilHalt(t *testing.T) {
	// NOP ; HALT
	spec := newTestSpectrum(t, 0x00, 0x76)

	c, err := spec.Run(context.Background(), hardware.RunOptions{Mode: hardware.UntilHalt})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.Halted)
	test.ExpectSuccess(t, spec.CPU.Halted())
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8001))
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(8))
}

func TestFrameCompletion(t *testing.T) {
	// JP 0x8000. ten tacts per instruction so that the frame overruns
	spec := newTestSpectrum(t, 0xc3, 0x00, 0x80)

	c, err := spec.Run(context.Background(), hardware.RunOptions{Mode: hardware.UntilFrameEnds})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.FrameCompleted)
	test.ExpectEquality(t, spec.FrameCount(), 1)
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(69890))
	test.ExpectEquality(t, spec.Overflow(), 2)

	// the overflow is carried into the next frame
	c, err = spec.Run(context.Background(), hardware.RunOptions{Mode: hardware.UntilFrameEnds})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.FrameCompleted)
	test.ExpectEquality(t, spec.FrameCount(), 2)
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(139780))
	test.ExpectEquality(t, spec.Overflow(), 4)

	spec.RunForFrameCount(3)
	test.ExpectEquality(t, spec.FrameCount(), 5)
}

func TestExecutionPoint(t *testing.T) {
	// NOP ; NOP ; NOP
	spec := newTestSpectrum(t, 0x00, 0x00, 0x00)

	c, err := spec.Run(context.Background(), hardware.RunOptions{
		Mode:               hardware.UntilExecutionPoint,
		TerminationAddress: 0x8002,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.ExecutionPointReached)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8002))
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(8))

	// the empty ROM executes as a sequence of NOPs
	spec.Reset()
	c, err = spec.Run(context.Background(), hardware.RunOptions{
		Mode:               hardware.UntilExecutionPoint,
		TerminationAddress: 0x0010,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.ExecutionPointReached)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x0010))

	// the 48K model has no second ROM
	spec.Reset()
	c, err = spec.Run(context.Background(), hardware.RunOptions{
		Mode:               hardware.UntilExecutionPoint,
		TerminationAddress: 0x0010,
		TerminationRom:     1,
		TimeoutTacts:       1000,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.Timeout)
}

func TestCancellation(t *testing.T) {
	spec := newTestSpectrum(t, 0xc3, 0x00, 0x80)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, err := spec.Run(ctx, hardware.RunOptions{Mode: hardware.UntilCancelled})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.Cancelled)
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(0))
}

func TestRunErrors(t *testing.T) {
	spec := newTestSpectrum(t)

	_, err := spec.Run(context.Background(), hardware.RunOptions{Mode: hardware.UntilEndOfCode})
	test.ExpectSuccess(t, curated.Is(err, hardware.NoEndOfCode))

	_, err = spec.Run(context.Background(), hardware.RunOptions{Mode: hardware.RunMode(100)})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedRunMode))

	out := codeloader.Output{
		Segments:    []codeloader.Segment{{StartAddress: 0x8000, Bytes: []uint8{0x00}}},
		Diagnostics: []string{"undefined label"},
	}
	err = spec.InjectCode(out, true)
	test.ExpectSuccess(t, curated.Is(err, hardware.CodeHasErrors))
	test.ExpectEquality(t, spec.Mem.Peek(0x8000), uint8(0x00))

	err = spec.InjectCode(codeloader.Output{}, true)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoCode))
}

func TestInjectCode(t *testing.T) {
	spec := newTestSpectrum(t)

	entry := uint16(0x9001)
	out := codeloader.Output{
		Segments: []codeloader.Segment{
			{StartAddress: 0x8000, Bytes: []uint8{0x01, 0x02}},
			{StartAddress: 0x9100, Displacement: -0x100, Bytes: []uint8{0x03, 0x04, 0x05}},
		},
		EntryAddress: &entry,
	}
	test.DemandSuccess(t, spec.InjectCode(out, false))
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x0000))
	test.ExpectEquality(t, spec.Mem.Peek(0x8001), uint8(0x02))
	test.ExpectEquality(t, spec.Mem.Peek(0x9000), uint8(0x03))
	test.ExpectEquality(t, spec.Mem.Peek(0x9002), uint8(0x05))

	end, ok := spec.EndOfCode()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, end, uint16(0x9003))

	test.DemandSuccess(t, spec.InjectCode(out, true))
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x9001))

	// code cannot be written to ROM
	out = codeloader.Output{Segments: []codeloader.Segment{{StartAddress: 0x0000, Bytes: []uint8{0xff}}}}
	test.DemandSuccess(t, spec.InjectCode(out, false))
	test.ExpectEquality(t, spec.Mem.Peek(0x0000), uint8(0x00))

	spec.Reset()
	_, ok = spec.EndOfCode()
	test.ExpectFailure(t, ok)
}

func TestCallCode(t *testing.T) {
	// LD A,$42 ; RET
	spec := newTestSpectrum(t, 0x3e, 0x42, 0xc9)

	c, err := spec.CallCode(context.Background(), 0x8000, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.ExecutionPointReached)
	test.ExpectEquality(t, spec.CPU.Regs.A(), uint8(0x42))
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(hardware.DefaultCallStubAddress+3))
	test.ExpectEquality(t, spec.CPU.Regs.SP, uint16(0xffff))
	test.ExpectEquality(t, spec.Mem.Peek(hardware.DefaultCallStubAddress), uint8(0xcd))
}

func TestPrepareRunMode(t *testing.T) {
	spec := newTestSpectrum(t)
	spec.Mem.Poke(0x5c3b, 0x01)
	spec.PrepareRunMode()
	test.ExpectEquality(t, spec.Mem.Peek(0x5c3b), uint8(0x09))
}

func TestStepOver(t *testing.T) {
	// 8000 CALL 8010
	// 8003 NOP
	// 8004 NOP
	// 8010 NOP
	// 8011 RET
	spec := newTestSpectrum(t, 0xcd, 0x10, 0x80, 0x00, 0x00)
	spec.Mem.Poke(0x8010, 0x00)
	spec.Mem.Poke(0x8011, 0xc9)

	opts := hardware.RunOptions{Mode: hardware.Debugger, Debug: hardware.StepOver}

	c, err := spec.Run(context.Background(), opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.BreakpointReached)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8003))

	c, err = spec.Run(context.Background(), opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.BreakpointReached)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8004))
}

func TestStepInto(t *testing.T) {
	// CALL 8010
	spec := newTestSpectrum(t, 0xcd, 0x10, 0x80)

	opts := hardware.RunOptions{Mode: hardware.Debugger, Debug: hardware.StepInto}
	c, err := spec.Run(context.Background(), opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.BreakpointReached)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8010))
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(17))
}

func TestBreakpoints(t *testing.T) {
	spec := newTestSpectrum(t, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)

	opts := hardware.RunOptions{
		Mode:        hardware.Debugger,
		Debug:       hardware.StopAtBreakpoint,
		Breakpoints: hardware.Breakpoints{0x8002: true, 0x8004: true},
	}

	c, err := spec.Run(context.Background(), opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.BreakpointReached)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8002))

	// running again does not stop at the same breakpoint
	c, err = spec.Run(context.Background(), opts)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.BreakpointReached)
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x8004))
}

func TestInterrupt(t *testing.T) {
	// EI ; HALT
	spec := newTestSpectrum(t, 0xfb, 0x76)

	c, err := spec.Run(context.Background(), hardware.RunOptions{Mode: hardware.UntilHalt})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c, hardware.Halted)

	var r execution.Result
	for i := 0; i < 100; i++ {
		r = spec.Step()
		if r.Interrupt == execution.Maskable {
			break
		}
	}
	test.DemandEquality(t, r.Interrupt, execution.Maskable)
	test.ExpectFailure(t, spec.CPU.Halted())
	test.ExpectEquality(t, spec.CPU.Regs.PC, uint16(0x0038))
	test.ExpectEquality(t, spec.CPU.Regs.SP, uint16(0xfffd))
	test.ExpectEquality(t, spec.Mem.Peek(0xfffd), uint8(0x02))
	test.ExpectEquality(t, spec.Mem.Peek(0xfffe), uint8(0x80))
	test.ExpectEquality(t, spec.Interrupt.FrameCount(), 1)
}

func TestSnapshot(t *testing.T) {
	spec := newTestSpectrum(t, 0xc3, 0x00, 0x80)
	spec.CPU.Regs.BC = 0x1234
	spec.Mem.Poke(0x9000, 0xaa)

	s := spec.Snapshot()

	spec.RunForFrameCount(2)
	spec.CPU.Regs.BC = 0x0000
	spec.Mem.Poke(0x9000, 0x00)
	test.ExpectEquality(t, spec.FrameCount(), 2)

	test.DemandSuccess(t, spec.Plumb(s))
	test.ExpectEquality(t, spec.CPU.Regs.BC, uint16(0x1234))
	test.ExpectEquality(t, spec.Mem.Peek(0x9000), uint8(0xaa))
	test.ExpectEquality(t, spec.CPU.Tacts(), uint64(0))
	test.ExpectEquality(t, spec.FrameCount(), 0)

	// the state is not changed by the machine after plumbing
	spec.Mem.Poke(0x9000, 0x11)
	test.DemandSuccess(t, spec.Plumb(s))
	test.ExpectEquality(t, spec.Mem.Peek(0x9000), uint8(0xaa))

	spec128, err := hardware.NewSpectrum(nil, preferences.Model128)
	test.DemandSuccess(t, err)
	err = spec128.Plumb(s)
	test.ExpectSuccess(t, curated.Is(err, hardware.StateModelMismatch))
}

func TestRewind(t *testing.T) {
	spec := newTestSpectrum(t, 0xc3, 0x00, 0x80)
	r := hardware.NewRewind(spec, 3)

	n, pos := r.State()
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, pos, 0)

	spec.RunForFrameCount(5)
	n, pos = r.State()
	test.ExpectEquality(t, n, 3)
	test.ExpectEquality(t, pos, 2)

	test.DemandSuccess(t, r.SetPosition(0))
	test.ExpectEquality(t, spec.FrameCount(), 3)
	_, pos = r.State()
	test.ExpectEquality(t, pos, 0)

	// recording after rewinding discards the future
	spec.RunForFrameCount(1)
	n, pos = r.State()
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, pos, 1)
	test.ExpectEquality(t, spec.FrameCount(), 4)

	test.DemandSuccess(t, r.GotoLast())
	test.ExpectEquality(t, spec.FrameCount(), 4)
}

func TestLoadRom(t *testing.T) {
	spec := newTestSpectrum(t)

	rom := make([]uint8, 0x4000)
	rom[0] = 0xf3
	rom[0x3fff] = 0x3c
	fn := filepath.Join(t.TempDir(), "test.rom")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0o644))

	test.DemandSuccess(t, spec.LoadRom(loader.NewLoader(fn, "")))
	test.ExpectEquality(t, spec.Mem.Peek(0x0000), uint8(0xf3))
	test.ExpectEquality(t, spec.Mem.Peek(0x3fff), uint8(0x3c))

	err := spec.LoadRom(loader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"), ""))
	test.ExpectSuccess(t, curated.Is(err, hardware.RomError))
}

func TestTapeLoadMode(t *testing.T) {
	spec := newTestSpectrum(t)

	fn := filepath.Join(t.TempDir(), "test.tap")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, tapeformat.WriteTap(f, [][]uint8{{0xff, 0x01, 0x02, 0xfc}}))
	test.DemandSuccess(t, f.Close())

	spec.AttachTape(loader.NewLoader(fn, ""))

	// the empty ROM runs into the load routine. starting after the save
	// routine so that save mode is not entered first
	spec.CPU.Regs.PC = tape.LoadBytesAddress - 0x10
	c, err := spec.Run(context.Background(), hardware.RunOptions{
		Mode:               hardware.UntilExecutionPoint,
		TerminationAddress: tape.LoadBytesAddress + 1,
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c, hardware.ExecutionPointReached)
	test.ExpectEquality(t, spec.Tape.Mode(), tape.Load)
	test.ExpectSuccess(t, spec.Tape.Player() != nil)
}
