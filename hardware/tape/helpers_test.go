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

package tape_test

import (
	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
	"github.com/dotneteer/spectnetgo/hardware/tape"
)

type mockCPU struct {
	tacts uint64
	regs  registers.File
}

func (mc *mockCPU) Tacts() uint64 {
	return mc.tacts
}

func (mc *mockCPU) Registers() *registers.File {
	return &mc.regs
}

type mockMem struct {
	data     [0x10000]uint8
	otherRom bool
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.data[address]
}

func (mem *mockMem) Poke(address uint16, data uint8) {
	mem.data[address] = data
}

func (mem *mockMem) BasicRomSelected() bool {
	return !mem.otherRom
}

// sink records everything it receives
type mockSink struct {
	created   int
	blocks    [][]uint8
	finalized []string
}

func (s *mockSink) CreateContainer(name string) error {
	s.created++
	return nil
}

func (s *mockSink) SaveCompletedBlock(data []uint8) error {
	s.blocks = append(s.blocks, append([]uint8(nil), data...))
	return nil
}

func (s *mockSink) FinalizeContainer(name string) error {
	s.finalized = append(s.finalized, name)
	return nil
}

// provider of a fixed list of blocks
type mockProvider struct {
	blocks [][]uint8
	resets int
}

func (p *mockProvider) Reset() {
	p.resets++
}

func (p *mockProvider) NextPlayer() (tape.Player, error) {
	var blocks []tape.BlockPlayback
	for _, b := range p.blocks {
		blocks = append(blocks, tape.NewDataBlockPlayer(b, 0))
	}
	return tape.NewBlockSetPlayer(blocks), nil
}

func newTestDevice(provider tape.Provider, sink tape.SaveSink) (*tape.Device, *mockCPU, *mockMem) {
	mc := &mockCPU{}
	mem := &mockMem{}
	return tape.NewDevice(nil, mc, mem, provider, sink), mc, mem
}

// the pulses of a standard block
func blockPulses(data []uint8) []int {
	var pulses []int
	for i := 0; i < tape.DataPilotCount; i++ {
		pulses = append(pulses, tape.PilotPulseLength)
	}
	pulses = append(pulses, tape.Sync1PulseLength, tape.Sync2PulseLength)
	for _, b := range data {
		for m := uint8(0x80); m != 0; m >>= 1 {
			l := tape.Bit0PulseLength
			if b&m != 0 {
				l = tape.Bit1PulseLength
			}
			pulses = append(pulses, l, l)
		}
	}
	return append(pulses, tape.TermSyncPulseLength)
}

// toggle the MIC bit at the end of every pulse. the first pulse starts high
func feedPulses(dev *tape.Device, mc *mockCPU, pulses []int) {
	bit := true
	for _, p := range pulses {
		mc.tacts += uint64(p)
		bit = !bit
		dev.ProcessMicBit(bit)
	}
}

func enterSaveMode(dev *tape.Device, mc *mockCPU) {
	mc.regs.PC = tape.SaveBytesAddress
	dev.SetTapeMode()
	mc.regs.PC = 0x8000
}
