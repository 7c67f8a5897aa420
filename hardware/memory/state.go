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

package memory

// State is the mutable state of a memory device. It is implemented by
// Memory48State and Memory128State.
type State interface {
	// VisibleRAM returns the 48K of RAM visible to the CPU in slots 1 to 3.
	VisibleRAM() []uint8
}

// Memory48State is the state of the Spectrum48 type.
type Memory48State struct {
	RAM [3 * SlotSize]uint8
}

// VisibleRAM implements the State interface.
func (s *Memory48State) VisibleRAM() []uint8 {
	return s.RAM[:]
}

// Memory128State is the state of the Spectrum128 type.
type Memory128State struct {
	Banks        [8][SlotSize]uint8
	SelectedRom  int
	SelectedBank int
	ScreenBank   int
	PagingLocked bool
}

// VisibleRAM implements the State interface.
func (s *Memory128State) VisibleRAM() []uint8 {
	ram := make([]uint8, 0, 3*SlotSize)
	ram = append(ram, s.Banks[5][:]...)
	ram = append(ram, s.Banks[2][:]...)
	ram = append(ram, s.Banks[s.SelectedBank][:]...)
	return ram
}
