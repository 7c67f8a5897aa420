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

package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The memory device is responsible for applying any contention delay to
// the CPU clock before the access completes. The CPU itself adds the three
// tacts of the memory cycle.
//
// Peek() reads memory without contention or any other side effect. It is
// used by the CPU when it needs to look ahead of the program counter for
// debugging purposes.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Peek(address uint16) uint8
}

// Ports defines the operations for the I/O port system when accessed from the
// CPU. The port device is responsible for advancing the CPU clock for the
// duration of the I/O cycle, including any contention. If the device does not
// advance the clock by at least four tacts the CPU will make up the
// difference.
type Ports interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}
