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
	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware/cpu"
	"github.com/dotneteer/spectnetgo/hardware/interrupt"
	"github.com/dotneteer/spectnetgo/hardware/memory"
	"github.com/dotneteer/spectnetgo/hardware/ports"
	"github.com/dotneteer/spectnetgo/hardware/tape"
)

// Sentinel error patterns.
const (
	StateModelMismatch = "spectrum: state is for model %s not %s"
)

// FrameState is the frame bookkeeping of the machine.
type FrameState struct {
	Start     uint64
	Overflow  int
	Count     int
	Completed bool
}

// State stores the state of the Spectrum sub-systems. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
//
// The Memory field is one of the memory state types. Which one depends on
// the Model.
type State struct {
	Model string

	CPU       cpu.State
	Memory    memory.State
	Ports     ports.State
	Interrupt interrupt.State
	Tape      tape.State
	Frame     FrameState
}

// Snapshot the state of the Spectrum sub-systems. The snapshot shares no
// data with the machine.
func (spec *Spectrum) Snapshot() *State {
	return &State{
		Model:     spec.Model,
		CPU:       spec.CPU.State(),
		Memory:    spec.Mem.State(),
		Ports:     spec.ULA.State(),
		Interrupt: spec.Interrupt.State(),
		Tape:      spec.Tape.State(),
		Frame: FrameState{
			Start:     spec.frameStart,
			Overflow:  spec.overflow,
			Count:     spec.frameCount,
			Completed: spec.frameCompleted,
		},
	}
}

// Plumb a previously snapshotted state into the machine. The state must have
// been created by a machine of the same model.
//
// The state is copied as it is plumbed so the same state can be plumbed
// more than once.
func (spec *Spectrum) Plumb(s *State) error {
	if s == nil {
		panic("spectrum: cannot plumb in a nil state")
	}
	if s.Model != spec.Model {
		return curated.Errorf(StateModelMismatch, s.Model, spec.Model)
	}

	if err := spec.Mem.SetState(s.Memory); err != nil {
		return err
	}

	spec.CPU.SetState(s.CPU)
	spec.ULA.SetState(s.Ports)
	spec.Interrupt.SetState(s.Interrupt)
	spec.Tape.SetState(s.Tape)

	spec.frameStart = s.Frame.Start
	spec.overflow = s.Frame.Overflow
	spec.frameCount = s.Frame.Count
	spec.frameCompleted = s.Frame.Completed

	spec.lastBreakpoint = nil
	spec.imminentBreak = nil
	spec.inMaskableInterr = false

	return nil
}
