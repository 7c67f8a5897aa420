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
	"context"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/logger"
)

// Sentinel error patterns.
const (
	UnsupportedRunMode = "spectrum: unsupported run mode (%d)"
	NoEndOfCode        = "spectrum: no end of code marker"
)

// RunMode specifies the condition under which Run() returns.
type RunMode int

// List of valid RunMode values.
const (
	// run until the context is cancelled
	UntilCancelled RunMode = iota

	// run until the CPU is halted
	UntilHalt

	// run until the end of the current frame
	UntilFrameEnds

	// run until the program counter reaches the termination address
	UntilExecutionPoint

	// run until the program counter reaches the end of code marker set by
	// InjectCode()
	UntilEndOfCode

	// run until a debugging condition is met. see the DebugMode type
	Debugger
)

func (m RunMode) String() string {
	switch m {
	case UntilCancelled:
		return "until cancelled"
	case UntilHalt:
		return "until halt"
	case UntilFrameEnds:
		return "until frame ends"
	case UntilExecutionPoint:
		return "until execution point"
	case UntilEndOfCode:
		return "until end of code"
	case Debugger:
		return "debugger"
	}
	return "unknown run mode"
}

// DebugMode specifies when a run in Debugger mode stops.
type DebugMode int

// List of valid DebugMode values.
const (
	StopAtBreakpoint DebugMode = iota
	StepInto
	StepOver
)

func (m DebugMode) String() string {
	switch m {
	case StopAtBreakpoint:
		return "stop at breakpoint"
	case StepInto:
		return "step into"
	case StepOver:
		return "step over"
	}
	return "unknown debug mode"
}

// Breakpoints is a set of addresses at which a run in Debugger mode stops.
type Breakpoints map[uint16]bool

// RunOptions specify how Run() behaves.
type RunOptions struct {
	Mode RunMode

	// the termination address for the UntilExecutionPoint mode. addresses in
	// ROM only match if the selected ROM is TerminationRom
	TerminationAddress uint16
	TerminationRom     int

	// debugging options for the Debugger mode
	Debug       DebugMode
	Breakpoints Breakpoints

	// breakpoints inside the maskable interrupt routine are ignored
	SkipInterruptRoutine bool

	// the run ends once this many tacts have passed. a value of zero means
	// the timeout in the preferences is used. a negative value disables the
	// timeout
	TimeoutTacts int
}

// Completion is the reason Run() returned.
type Completion int

// List of valid Completion values.
const (
	Cancelled Completion = iota
	Timeout
	Halted
	FrameCompleted
	ExecutionPointReached
	EndOfCodeReached
	BreakpointReached
)

func (c Completion) String() string {
	switch c {
	case Cancelled:
		return "cancelled"
	case Timeout:
		return "timeout"
	case Halted:
		return "halted"
	case FrameCompleted:
		return "frame completed"
	case ExecutionPointReached:
		return "execution point reached"
	case EndOfCodeReached:
		return "end of code reached"
	case BreakpointReached:
		return "breakpoint reached"
	}
	return "unknown completion"
}

// PerformanceBrake is the number of instructions between checks of the
// context. Checking the context is relatively expensive compared to the
// execution of a single instruction.
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible until the condition
// described by the options is met or the context is cancelled.
//
// The context is checked between instructions, never during one.
func (spec *Spectrum) Run(ctx context.Context, opts RunOptions) (Completion, error) {
	switch opts.Mode {
	case UntilCancelled, UntilHalt, UntilFrameEnds, UntilExecutionPoint, Debugger:
	case UntilEndOfCode:
		if !spec.hasEndOfCode {
			return Cancelled, curated.Errorf(NoEndOfCode)
		}
	default:
		return Cancelled, curated.Errorf(UnsupportedRunMode, opts.Mode)
	}

	timeout := uint64(0)
	if opts.TimeoutTacts > 0 {
		timeout = uint64(opts.TimeoutTacts)
	} else if opts.TimeoutTacts == 0 && spec.env != nil && spec.env.Prefs != nil {
		if t := spec.env.Prefs.TimeoutTacts.Get().(int); t > 0 {
			timeout = uint64(t)
		}
	}

	start := spec.CPU.Tacts()

	// executed is -1 until the first instruction boundary is reached
	executed := -1
	brake := 0

	for {
		if spec.frameCompleted {
			spec.startFrame()
		}

		for !spec.frameCompleted {
			if brake == 0 {
				if ctx.Err() != nil {
					return Cancelled, nil
				}
			}
			brake++
			if brake >= PerformanceBrake {
				brake = 0
			}

			executed++

			if timeout > 0 && start+timeout < spec.CPU.Tacts() {
				logger.Logf(spec.env, "spectrum", "run timed out after %d tacts", spec.CPU.Tacts()-start)
				return Timeout, nil
			}

			switch opts.Mode {
			case UntilExecutionPoint:
				if spec.atExecutionPoint(opts) {
					return ExecutionPointReached, nil
				}
			case UntilEndOfCode:
				if spec.CPU.Regs.PC == spec.endOfCode {
					return EndOfCodeReached, nil
				}
			case Debugger:
				if spec.isDebugStop(opts, executed) {
					return BreakpointReached, nil
				}
			}

			spec.executeInstruction()

			if opts.Mode == UntilHalt && spec.CPU.Halted() {
				return Halted, nil
			}

			spec.notifyCPUBound()
			spec.checkFrame()
		}

		spec.completeFrame()

		if opts.Mode == UntilFrameEnds {
			return FrameCompleted, nil
		}
	}
}

// CallCode calls the subroutine at the address and runs until it returns.
// The subroutine is called from a stub at the stub address. Zero selects
// DefaultCallStubAddress.
func (spec *Spectrum) CallCode(ctx context.Context, address uint16, stub uint16) (Completion, error) {
	if stub == 0 {
		stub = DefaultCallStubAddress
	}

	spec.Mem.Poke(stub, 0xcd)
	spec.Mem.Poke(stub+1, uint8(address))
	spec.Mem.Poke(stub+2, uint8(address>>8))
	spec.CPU.Regs.PC = stub

	return spec.Run(ctx, RunOptions{
		Mode:               UntilExecutionPoint,
		TerminationAddress: stub + 3,
	})
}

func (spec *Spectrum) atExecutionPoint(opts RunOptions) bool {
	if spec.CPU.Regs.PC != opts.TerminationAddress {
		return false
	}
	if opts.TerminationAddress < 0x4000 {
		return spec.SelectedRom() == opts.TerminationRom
	}
	return true
}

// stop conditions for the Debugger run mode
func (spec *Spectrum) isDebugStop(opts RunOptions, executed int) bool {
	if spec.inMaskableInterr && opts.SkipInterruptRoutine {
		return false
	}

	pc := spec.CPU.Regs.PC

	switch opts.Debug {
	case StepInto:
		return executed > 0

	case StopAtBreakpoint:
		if !opts.Breakpoints[pc] {
			return false
		}

		// do not stop again at the breakpoint the previous run stopped at
		if executed > 0 || spec.lastBreakpoint == nil || *spec.lastBreakpoint != pc {
			spec.lastBreakpoint = &pc
			return true
		}

	case StepOver:
		if spec.imminentBreak != nil {
			if *spec.imminentBreak == pc {
				spec.imminentBreak = nil
				return true
			}
			return false
		}

		created := false
		if n := spec.CPU.GetCallInstructionLength(); n > 0 {
			next := pc + uint16(n)
			spec.imminentBreak = &next
			created = true
		}

		return executed > 0 && (spec.imminentBreak == nil || created)
	}

	return false
}
