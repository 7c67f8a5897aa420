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

package cpu

import "github.com/dotneteer/spectnetgo/hardware/cpu/execution"

// MemoryListener is called for every data memory access made by the CPU.
// Opcode and operand fetches are not reported.
type MemoryListener func(address uint16, data uint8, write bool)

// PortListener is called for every I/O access made by the CPU.
type PortListener func(address uint16, data uint8, write bool)

// InstructionListener is called at the end of every call to
// ExecuteCpuCycle().
type InstructionListener func(result execution.Result)

// AddMemoryListener adds a listener to the end of the list of memory
// listeners.
func (mc *CPU) AddMemoryListener(l MemoryListener) {
	mc.memoryListeners = append(mc.memoryListeners, l)
}

// AddPortListener adds a listener to the end of the list of port listeners.
func (mc *CPU) AddPortListener(l PortListener) {
	mc.portListeners = append(mc.portListeners, l)
}

// AddInstructionListener adds a listener to the end of the list of
// instruction listeners.
func (mc *CPU) AddInstructionListener(l InstructionListener) {
	mc.instructionListeners = append(mc.instructionListeners, l)
}
