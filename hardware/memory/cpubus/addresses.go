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

// Reset is the address the CPU starts executing from after a reset.
const Reset = uint16(0x0000)

// IRQ is the address the CPU jumps to when a maskable interrupt is accepted
// in interrupt mode 0 or 1.
const IRQ = uint16(0x0038)

// NMI is the address the CPU jumps to when a non-maskable interrupt is
// accepted.
const NMI = uint16(0x0066)

// IM2VectorLow is the value placed on the data bus during the acknowledge
// cycle of a maskable interrupt. On the Spectrum nothing drives the bus so
// the value is always 0xff. Combined with the I register it forms the address
// of the interrupt vector in interrupt mode 2.
const IM2VectorLow = uint8(0xff)
