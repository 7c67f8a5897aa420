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

package hardware

import (
	"fmt"

	"github.com/dotneteer/spectnetgo/codeloader"
	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/cpu"
	"github.com/dotneteer/spectnetgo/hardware/interrupt"
	"github.com/dotneteer/spectnetgo/hardware/memory"
	"github.com/dotneteer/spectnetgo/hardware/ports"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/hardware/screen"
	"github.com/dotneteer/spectnetgo/hardware/tape"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/logger"
	"github.com/dotneteer/spectnetgo/paths"
	"github.com/dotneteer/spectnetgo/tapeformat"
	"github.com/dotneteer/spectnetgo/wavwriter"
)

// Sentinel error patterns.
const (
	UnsupportedModel = "spectrum: unsupported model (%s)"
	CodeHasErrors    = "spectrum: code cannot be injected: %d diagnostics"
	NoCode           = "spectrum: no code to inject"
	RomError         = "spectrum: cannot load ROM: %v"
)

// DefaultCallStubAddress is the address of the three byte CALL instruction
// used by CallCode() when no other address is specified. The address is in
// the unused area of the system variables.
const DefaultCallStubAddress = 0x5ba0

// address of the FLAGS2 system variable and the bit that selects "L" mode
// for the keyboard
const (
	sysFlags2     = 0x5c3b
	sysFlags2Mode = 0x08
)

// Spectrum is the main container for the emulated components of the ZX
// Spectrum.
type Spectrum struct {
	env *environment.Environment

	// the model of the machine. one of the models listed in the preferences
	// package
	Model string

	CPU       *cpu.CPU
	Mem       memory.Device
	Ports     *ports.Ports
	ULA       *ports.UlaHandler
	Screen    *screen.Table
	Interrupt *interrupt.Device
	Tape      *tape.Device

	// the paging port. nil for models that do not support paging
	Paging *ports.PagingHandler

	resetters  []Resetter
	frameBound []FrameBound
	cpuBound   []CPUBound

	frameTacts int

	// frame bookkeeping. the tact at which the current frame started, the
	// number of tacts the previous frame overran by and the number of frames
	// completed since the last reset
	frameStart     uint64
	overflow       int
	frameCount     int
	frameCompleted bool

	// set by InjectCode(). the address immediately after the injected code
	endOfCode    uint16
	hasEndOfCode bool

	// frame history. nil unless a Rewind has been created for the machine
	rewind *Rewind

	// debugging
	lastBreakpoint   *uint16
	imminentBreak    *uint16
	inMaskableInterr bool
}

// NewSpectrum creates a new Spectrum and everything associated with the
// hardware. An empty model string selects the model in the preferences, or
// the 48K model if the environment is nil.
//
// The environment can be nil. In which case no save sink is created and
// tape fast loading is disabled.
func NewSpectrum(env *environment.Environment, model string) (*Spectrum, error) {
	if model == "" {
		model = preferences.Model48
		if env != nil && env.Prefs != nil {
			model = env.Prefs.Model.String()
		}
	}

	var cfg screen.Configuration
	switch model {
	case preferences.Model48:
		cfg = screen.Spectrum48
	case preferences.Model128:
		cfg = screen.Spectrum128
	default:
		return nil, curated.Errorf(UnsupportedModel, model)
	}

	spec := &Spectrum{
		env:        env,
		Model:      model,
		frameTacts: cfg.FrameTacts,
	}

	spec.Screen = screen.NewTable(cfg)

	var err error
	spec.Mem, err = memory.NewMemory(env, model, spec.Screen)
	if err != nil {
		return nil, err
	}

	spec.Ports = ports.NewPorts(env, spec.Mem, spec.Screen)
	spec.CPU = cpu.NewCPU(env, spec.Mem, spec.Ports)
	spec.Mem.Plumb(spec.CPU)
	spec.Ports.Plumb(spec.CPU)

	spec.Tape = tape.NewDevice(env, spec.CPU, spec.Mem, nil, nil)
	spec.ULA = ports.NewUlaHandler(spec.CPU, spec.Tape)
	spec.Ports.AddHandler(spec.ULA)

	if pager, ok := spec.Mem.(memory.Pager); ok {
		spec.Paging = ports.NewPagingHandler(pager)
		spec.Ports.AddHandler(spec.Paging)
	}

	spec.Interrupt = interrupt.NewDevice(spec.CPU, cfg.InterruptTact)

	// order of attachment is the order of notification
	spec.Attach(spec.Mem)
	spec.Attach(spec.CPU)
	spec.Attach(spec.ULA)
	spec.Attach(spec.Interrupt)
	spec.Attach(spec.Tape)

	if env != nil && env.Prefs != nil {
		sink, err := spec.newSaveSink()
		if err != nil {
			logger.Logf(env, "spectrum", "tape saving disabled: %v", err)
		} else {
			spec.Tape.SetSink(sink)
		}
	}

	spec.Reset()

	return spec, nil
}

func (spec *Spectrum) String() string {
	return fmt.Sprintf("ZX Spectrum %s: %s", spec.Model, spec.CPU)
}

// Env returns the environment the machine was created in. Can be nil.
func (spec *Spectrum) Env() *environment.Environment {
	return spec.env
}

// the save sink selected by the tape preferences
func (spec *Spectrum) newSaveSink() (tape.SaveSink, error) {
	dir := spec.env.Prefs.Tape.SaveDir.String()
	if dir == "" {
		var err error
		dir, err = paths.ResourcePath("tapes", "")
		if err != nil {
			return nil, err
		}
	}

	if spec.env.Prefs.Tape.SaveFormat.String() == preferences.SaveFormatWAV {
		return wavwriter.NewSink(spec.env, dir, spec.ClockFrequency()), nil
	}
	return tapeformat.NewFileSink(spec.env, dir), nil
}

// Reset the machine to its power-on state. The tact counter is zeroed and
// the frame bookkeeping restarted. ROM contents and attached tapes are
// unaffected although tapes are rewound.
func (spec *Spectrum) Reset() {
	for _, r := range spec.resetters {
		r.Reset()
	}

	spec.frameStart = 0
	spec.overflow = 0
	spec.frameCount = 0
	spec.frameCompleted = true
	spec.hasEndOfCode = false
	spec.lastBreakpoint = nil
	spec.imminentBreak = nil
	spec.inMaskableInterr = false

	if spec.rewind != nil {
		spec.rewind.Reset()
	}
}

// LoadRom loads the ROM image specified by the loader into memory and resets
// the machine. For models with more than one ROM, the data should contain
// all the ROMs one after the other.
func (spec *Spectrum) LoadRom(ld loader.Loader) error {
	if err := ld.Load(); err != nil {
		return curated.Errorf(RomError, err)
	}
	if err := spec.Mem.CopyRom(ld.Data); err != nil {
		return curated.Errorf(RomError, err)
	}
	logger.Logf(spec.env, "spectrum", "ROM loaded from %s", ld.ShortName())
	spec.Reset()
	return nil
}

// AttachTape sets the content that is played when the ROM load routine is
// reached. The data is not loaded until it is required.
func (spec *Spectrum) AttachTape(ld loader.Loader) {
	spec.Tape.SetProvider(tapeformat.NewProvider(spec.env, ld, spec.ClockFrequency()))
	spec.Tape.Reset()
}

// ClockFrequency returns the frequency of the CPU in Hz.
func (spec *Spectrum) ClockFrequency() int {
	return spec.Screen.Configuration().ClockFrequency
}

// FrameTacts returns the number of tacts in a frame.
func (spec *Spectrum) FrameTacts() int {
	return spec.frameTacts
}

// CurrentFrameTact returns the number of tacts since the start of the
// current frame. The value can exceed the length of the frame if the last
// instruction of the frame overran it.
func (spec *Spectrum) CurrentFrameTact() int {
	return int(spec.CPU.Tacts() - spec.frameStart)
}

// FrameCount returns the number of frames completed since the last reset.
func (spec *Spectrum) FrameCount() int {
	return spec.frameCount
}

// Overflow returns the number of tacts the previous frame overran by.
func (spec *Spectrum) Overflow() int {
	return spec.overflow
}

// SelectedRom returns the index of the ROM paged into slot 0. Always zero for
// models with a single ROM.
func (spec *Spectrum) SelectedRom() int {
	if m, ok := spec.Mem.(interface{ SelectedRom() int }); ok {
		return m.SelectedRom()
	}
	return 0
}

// InjectCode copies the segments of the output into memory. Contention is
// not applied and ROM is not affected. If setPC is true then the program
// counter is set to the entry address of the output.
//
// The address immediately after the last segment becomes the end of code
// marker used by the UntilEndOfCode run mode.
func (spec *Spectrum) InjectCode(out codeloader.Output, setPC bool) error {
	if out.HasErrors() {
		return curated.Errorf(CodeHasErrors, len(out.Diagnostics))
	}
	if len(out.Segments) == 0 {
		return curated.Errorf(NoCode)
	}

	for _, seg := range out.Segments {
		addr := seg.Address()
		for _, b := range seg.Bytes {
			spec.Mem.Poke(addr, b)
			addr++
		}
	}

	spec.endOfCode, spec.hasEndOfCode = out.EndMarker()

	if setPC {
		if entry, ok := out.Entry(); ok {
			spec.CPU.Regs.PC = entry
		}
	}

	logger.Logf(spec.env, "spectrum", "injected %s", out)

	return nil
}

// EndOfCode returns the end of code marker set by the most recent call to
// InjectCode(). The boolean is false if no code has been injected since the
// last reset.
func (spec *Spectrum) EndOfCode() (uint16, bool) {
	return spec.endOfCode, spec.hasEndOfCode
}

// PrepareRunMode puts the machine into the state it would be in had the
// injected code been started with the RUN command.
func (spec *Spectrum) PrepareRunMode() {
	spec.Mem.Poke(sysFlags2, spec.Mem.Peek(sysFlags2)|sysFlags2Mode)
	spec.inMaskableInterr = false
}
