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

// Resetter is implemented by sub-systems that respond to a machine reset.
type Resetter interface {
	Reset()
}

// FrameBound is implemented by sub-systems that need to know when a screen
// frame starts and ends.
type FrameBound interface {
	OnNewFrame()
	OnFrameCompleted()
}

// CPUBound is implemented by sub-systems that observe the CPU between
// instructions.
type CPUBound interface {
	OnCpuOperationCompleted()
}

// Attach registers the sub-system for every event it supports. See the
// Resetter, FrameBound and CPUBound interfaces. Sub-systems are notified in
// the order they were attached.
func (spec *Spectrum) Attach(d any) {
	if r, ok := d.(Resetter); ok {
		spec.resetters = append(spec.resetters, r)
	}
	if f, ok := d.(FrameBound); ok {
		spec.frameBound = append(spec.frameBound, f)
	}
	if c, ok := d.(CPUBound); ok {
		spec.cpuBound = append(spec.cpuBound, c)
	}
}
