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

package cpu_test

import (
	"github.com/dotneteer/spectnetgo/hardware/cpu"
)

// mockMem is a flat 64K memory. when contended is true, reads and writes to
// the 0x4000 to 0x7fff range are delayed by three tacts
type mockMem struct {
	data      [0x10000]uint8
	mc        *cpu.CPU
	contended bool
}

func (mem *mockMem) delay(address uint16) {
	if mem.contended && mem.mc != nil && address&0xc000 == 0x4000 {
		mem.mc.Delay(3)
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.delay(address)
	return mem.data[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.delay(address)
	mem.data[address] = data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) load(address uint16, data ...uint8) {
	for i, v := range data {
		mem.data[address+uint16(i)] = v
	}
}

type portWrite struct {
	address uint16
	data    uint8
}

// mockPorts returns the value in the input field for every read and records
// every write. the ioTacts field is the number of tacts the device advances
// the CPU clock by for each access
type mockPorts struct {
	input   uint8
	writes  []portWrite
	mc      *cpu.CPU
	ioTacts int
}

func (p *mockPorts) Read(address uint16) uint8 {
	if p.mc != nil {
		p.mc.Delay(p.ioTacts)
	}
	return p.input
}

func (p *mockPorts) Write(address uint16, data uint8) {
	if p.mc != nil {
		p.mc.Delay(p.ioTacts)
	}
	p.writes = append(p.writes, portWrite{address: address, data: data})
}

// create a CPU with mock memory and ports. the program is loaded at 0x8000
// and the PC set to the start of it. the stack pointer is placed out of the
// way of the program
func newTestCPU(program ...uint8) (*cpu.CPU, *mockMem, *mockPorts) {
	mem := &mockMem{}
	ports := &mockPorts{}
	mc := cpu.NewCPU(nil, mem, ports)
	mem.mc = mc
	ports.mc = mc

	mem.load(0x8000, program...)
	mc.Regs.PC = 0x8000
	mc.Regs.SP = 0xf000
	mc.Regs.AF = 0x0000

	return mc, mem, ports
}
