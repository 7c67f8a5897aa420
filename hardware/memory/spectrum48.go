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

import (
	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/hardware/screen"
)

// Spectrum48 is the memory of the 48K Spectrum. A 16K ROM is followed by 48K
// of RAM. The first 16K of RAM, which contains the screen, is contended.
type Spectrum48 struct {
	env *environment.Environment
	contention

	rom [SlotSize]uint8
	ram [3 * SlotSize]uint8
}

// NewSpectrum48 is the preferred method of initialisation for the Spectrum48
// type.
func NewSpectrum48(env *environment.Environment, tbl *screen.Table) *Spectrum48 {
	mem := &Spectrum48{
		env: env,
	}
	mem.tbl = tbl
	mem.Reset()
	return mem
}

func (mem *Spectrum48) String() string {
	return "48K memory"
}

// Plumb implements the Device interface.
func (mem *Spectrum48) Plumb(clk Clock) {
	mem.clk = clk
}

// Reset implements the Device interface.
func (mem *Spectrum48) Reset() {
	resetRAM(mem.env, mem.ram[:])
}

// BasicRomSelected always returns true for the 48K model.
func (mem *Spectrum48) BasicRomSelected() bool {
	return true
}

// IsContended implements the Device interface.
func (mem *Spectrum48) IsContended(address uint16) bool {
	return address&0xc000 == 0x4000
}

// Read implements the cpubus.Memory interface.
func (mem *Spectrum48) Read(address uint16) uint8 {
	if mem.IsContended(address) {
		mem.contend()
	}
	return mem.Peek(address)
}

// Write implements the cpubus.Memory interface.
func (mem *Spectrum48) Write(address uint16, data uint8) {
	if mem.IsContended(address) {
		mem.contend()
	}
	mem.Poke(address, data)
}

// Peek implements the cpubus.Memory interface.
func (mem *Spectrum48) Peek(address uint16) uint8 {
	if address < SlotSize {
		return mem.rom[address]
	}
	return mem.ram[address-SlotSize]
}

// Poke implements the Device interface.
func (mem *Spectrum48) Poke(address uint16, data uint8) {
	if address < SlotSize {
		return
	}
	mem.ram[address-SlotSize] = data
}

// UlaRead implements the Device interface.
func (mem *Spectrum48) UlaRead(address uint16) uint8 {
	return mem.ram[address&0x3fff]
}

// CopyRom implements the Device interface.
func (mem *Spectrum48) CopyRom(data []uint8) error {
	if len(data) > len(mem.rom) {
		return curated.Errorf(RomTooLarge, len(data))
	}
	copy(mem.rom[:], data)
	return nil
}

// State implements the Device interface.
func (mem *Spectrum48) State() State {
	s := &Memory48State{}
	copy(s.RAM[:], mem.ram[:])
	return s
}

// SetState implements the Device interface.
func (mem *Spectrum48) SetState(state State) error {
	s, ok := state.(*Memory48State)
	if !ok {
		return curated.Errorf(StateMismatch, preferences.Model48)
	}
	copy(mem.ram[:], s.RAM[:])
	return nil
}
