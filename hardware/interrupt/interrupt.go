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

// Package interrupt implements the ULA's maskable interrupt. The ULA raises
// the INT signal once per frame at a fixed tact and holds it for the length
// of the longest instruction. If the CPU does not accept the interrupt in
// that time then the interrupt is lost.
package interrupt

import (
	"fmt"

	"github.com/dotneteer/spectnetgo/hardware/cpu"
)

// LongestOpTacts is the number of tacts the INT signal is held for after it
// has been raised. This is the length of the longest instruction.
const LongestOpTacts = 23

// CPU is the view of the CPU required by the interrupt device.
type CPU interface {
	SetSignal(cpu.Signals)
	ClearSignal(cpu.Signals)
	IsInterruptBlocked() bool
}

// Listener is called whenever the interrupt is raised. The argument is the
// number of interrupts raised since the last reset.
type Listener func(frameCount int)

// Device raises the INT signal of the CPU once per frame.
type Device struct {
	mc CPU

	// the tact in the frame at which the interrupt is raised
	interruptTact int

	raised  bool
	revoked bool

	frameCount int

	listeners []Listener
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(mc CPU, interruptTact int) *Device {
	return &Device{
		mc:            mc,
		interruptTact: interruptTact,
	}
}

func (dev *Device) String() string {
	return fmt.Sprintf("INT@%d raised=%v revoked=%v frames=%d", dev.interruptTact, dev.raised, dev.revoked, dev.frameCount)
}

// InterruptTact returns the tact in the frame at which the interrupt is
// raised.
func (dev *Device) InterruptTact() int {
	return dev.interruptTact
}

// AddListener registers a function to be called when the interrupt is
// raised. Listeners are called in the order in which they are registered.
func (dev *Device) AddListener(l Listener) {
	dev.listeners = append(dev.listeners, l)
}

// Reset the device. The frame count is zeroed.
func (dev *Device) Reset() {
	dev.raised = false
	dev.revoked = false
	dev.frameCount = 0
}

// OnNewFrame prepares the device to raise the interrupt in the new frame.
func (dev *Device) OnNewFrame() {
	dev.raised = false
	dev.revoked = false
}

// OnFrameCompleted is called at the end of every frame.
func (dev *Device) OnFrameCompleted() {
}

// CheckForInterrupt raises or revokes the INT signal depending on the tact
// in the frame. Should be called before every instruction.
func (dev *Device) CheckForInterrupt(frameTact int) {
	if dev.revoked || frameTact < dev.interruptTact {
		return
	}

	// the signal is revoked whether or not the CPU accepted the interrupt
	if frameTact > dev.interruptTact+LongestOpTacts {
		dev.revoked = true
		dev.mc.ClearSignal(cpu.SigINT)
		return
	}

	if dev.raised || dev.mc.IsInterruptBlocked() {
		return
	}

	dev.raised = true
	dev.mc.SetSignal(cpu.SigINT)
	dev.frameCount++

	for _, l := range dev.listeners {
		l(dev.frameCount)
	}
}

// FrameCount returns the number of interrupts raised since the last reset.
func (dev *Device) FrameCount() int {
	return dev.frameCount
}

// State is the mutable state of the interrupt device.
type State struct {
	Raised     bool
	Revoked    bool
	FrameCount int
}

// State returns the state of the device.
func (dev *Device) State() State {
	return State{
		Raised:     dev.raised,
		Revoked:    dev.revoked,
		FrameCount: dev.frameCount,
	}
}

// SetState restores the state of the device.
func (dev *Device) SetState(s State) {
	dev.raised = s.Raised
	dev.revoked = s.Revoked
	dev.frameCount = s.FrameCount
}
