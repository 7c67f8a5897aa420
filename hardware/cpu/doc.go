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

// Package cpu emulates the Z80 microprocessor found in the ZX Spectrum.
//
// The CPU type requires an implementation of cpubus.Memory and cpubus.Ports.
// The memory and port devices are expected to apply any contention to the
// CPU clock, through the Delay() function, before an access completes. The
// CPU adds the uncontended duration of each machine cycle itself.
//
// The bread-and-butter of the CPU type is the ExecuteCpuCycle() function.
// Each call executes exactly one complete instruction, including all prefix
// bytes, or the interrupt acceptance sequence that took its place.
//
//	mc := cpu.NewCPU(env, mem, ports)
//	mc.Reset()
//
//	for !mc.Halted() {
//		mc.ExecuteCpuCycle()
//		fmt.Println(mc.LastResult)
//	}
//
// After every call the LastResult field describes what was executed, how
// long it took and how much of that time was spent waiting.
//
// Interrupts are requested with SetSignal(). The INT signal is level
// triggered and remains set until it is cleared by the caller. The NMI signal
// is edge triggered and is cleared by the CPU when it is accepted.
//
// Listeners can be attached to the CPU with the AddMemoryListener(),
// AddPortListener() and AddInstructionListener() functions. Listeners are
// called in the order in which they were added.
package cpu
