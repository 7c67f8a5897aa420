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
	"github.com/dotneteer/spectnetgo/hardware/cpu/execution"
)

// the address in the 48K ROM at which the maskable interrupt routine has
// completed its work
const interruptRoutineEnd = 0x0052

// Step the emulation by one CPU instruction. The interrupt device is
// consulted before the instruction and the CPU-bound devices are notified
// after it. Frame boundaries are handled in the same way as in Run().
func (spec *Spectrum) Step() execution.Result {
	if spec.frameCompleted {
		spec.startFrame()
	}

	spec.executeInstruction()
	spec.notifyCPUBound()
	spec.checkFrame()

	if spec.frameCompleted {
		spec.completeFrame()
	}

	return spec.CPU.LastResult
}

// RunForFrameCount runs the emulation for the specified number of frames.
// The function returns early if the CPU is halted with interrupts disabled
// because no more frames can change the state of the machine.
func (spec *Spectrum) RunForFrameCount(numFrames int) {
	target := spec.frameCount + numFrames
	for spec.frameCount < target {
		spec.Step()
		if spec.CPU.Halted() && !spec.CPU.IFF1 {
			return
		}
	}
}

// check for and raise the interrupt and then execute one instruction
func (spec *Spectrum) executeInstruction() {
	if spec.inMaskableInterr && spec.CPU.Regs.PC == interruptRoutineEnd {
		spec.inMaskableInterr = false
	}

	spec.Interrupt.CheckForInterrupt(spec.CurrentFrameTact())
	spec.CPU.ExecuteCpuCycle()
	spec.lastBreakpoint = nil

	if spec.CPU.LastResult.Interrupt == execution.Maskable {
		spec.inMaskableInterr = true
	}
}

func (spec *Spectrum) notifyCPUBound() {
	for _, d := range spec.cpuBound {
		d.OnCpuOperationCompleted()
	}
}

// the frame is complete once the frame tact reaches the length of the frame.
// the check is made between instructions so a frame can overrun
func (spec *Spectrum) checkFrame() {
	spec.frameCompleted = spec.CurrentFrameTact() >= spec.frameTacts
}

func (spec *Spectrum) startFrame() {
	spec.frameStart = spec.CPU.Tacts() - uint64(spec.overflow)
	for _, d := range spec.frameBound {
		d.OnNewFrame()
	}
	spec.frameCompleted = false
}

func (spec *Spectrum) completeFrame() {
	spec.frameCount++
	for _, d := range spec.frameBound {
		d.OnFrameCompleted()
	}
	spec.overflow = spec.CurrentFrameTact() % spec.frameTacts

	if spec.rewind != nil {
		spec.rewind.frameCompleted()
	}
}
