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
	"fmt"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/hardware/screen"
)

// bits of the paging register
const (
	pageBankMask   = 0x07
	pageShadowMask = 0x08
	pageRomMask    = 0x10
	pageLockMask   = 0x20
)

// Spectrum128 is the memory of the 128K Spectrum. There are two ROMs and
// eight RAM banks. The odd numbered banks are contended.
type Spectrum128 struct {
	env *environment.Environment
	contention

	roms  [2][SlotSize]uint8
	banks [8][SlotSize]uint8

	// paging state
	selectedRom  int
	selectedBank int
	screenBank   int
	pagingLocked bool
}

// NewSpectrum128 is the preferred method of initialisation for the
// Spectrum128 type.
func NewSpectrum128(env *environment.Environment, tbl *screen.Table) *Spectrum128 {
	mem := &Spectrum128{
		env: env,
	}
	mem.tbl = tbl
	mem.Reset()
	return mem
}

func (mem *Spectrum128) String() string {
	return fmt.Sprintf("128K memory: ROM %d, bank %d, screen %d", mem.selectedRom, mem.selectedBank, mem.screenBank)
}

// Plumb implements the Device interface.
func (mem *Spectrum128) Plumb(clk Clock) {
	mem.clk = clk
}

// Reset implements the Device interface. Paging is returned to its power-on
// state.
func (mem *Spectrum128) Reset() {
	for i := range mem.banks {
		resetRAM(mem.env, mem.banks[i][:])
	}
	mem.selectedRom = 0
	mem.selectedBank = 0
	mem.screenBank = 5
	mem.pagingLocked = false
}

// Page implements the Pager interface.
func (mem *Spectrum128) Page(value uint8) {
	if mem.pagingLocked {
		return
	}
	mem.selectedBank = int(value & pageBankMask)
	mem.screenBank = 5
	if value&pageShadowMask == pageShadowMask {
		mem.screenBank = 7
	}
	mem.selectedRom = 0
	if value&pageRomMask == pageRomMask {
		mem.selectedRom = 1
	}
	mem.pagingLocked = value&pageLockMask == pageLockMask
}

// PagingLocked implements the Pager interface.
func (mem *Spectrum128) PagingLocked() bool {
	return mem.pagingLocked
}

// SelectedRom returns the index of the ROM in slot 0.
func (mem *Spectrum128) SelectedRom() int {
	return mem.selectedRom
}

// BasicRomSelected returns true if the 48K BASIC ROM is paged in.
func (mem *Spectrum128) BasicRomSelected() bool {
	return mem.selectedRom == 1
}

// the RAM bank in the slot containing the address. returns -1 for the ROM
// slot
func (mem *Spectrum128) bank(address uint16) int {
	switch address >> 14 {
	case 1:
		return 5
	case 2:
		return 2
	case 3:
		return mem.selectedBank
	}
	return -1
}

// IsContended implements the Device interface.
func (mem *Spectrum128) IsContended(address uint16) bool {
	b := mem.bank(address)
	return b > 0 && b&1 == 1
}

// Read implements the cpubus.Memory interface.
func (mem *Spectrum128) Read(address uint16) uint8 {
	if mem.IsContended(address) {
		mem.contend()
	}
	return mem.Peek(address)
}

// Write implements the cpubus.Memory interface.
func (mem *Spectrum128) Write(address uint16, data uint8) {
	if mem.IsContended(address) {
		mem.contend()
	}
	mem.Poke(address, data)
}

// Peek implements the cpubus.Memory interface.
func (mem *Spectrum128) Peek(address uint16) uint8 {
	b := mem.bank(address)
	if b == -1 {
		return mem.roms[mem.selectedRom][address]
	}
	return mem.banks[b][address&0x3fff]
}

// Poke implements the Device interface.
func (mem *Spectrum128) Poke(address uint16, data uint8) {
	b := mem.bank(address)
	if b == -1 {
		return
	}
	mem.banks[b][address&0x3fff] = data
}

// UlaRead implements the Device interface. The ULA always reads from the
// selected screen bank.
func (mem *Spectrum128) UlaRead(address uint16) uint8 {
	return mem.banks[mem.screenBank][address&0x3fff]
}

// CopyRom implements the Device interface. The data is the 128K editor ROM
// followed by the 48K BASIC ROM.
func (mem *Spectrum128) CopyRom(data []uint8) error {
	if len(data) > len(mem.roms)*SlotSize {
		return curated.Errorf(RomTooLarge, len(data))
	}
	n := copy(mem.roms[0][:], data)
	copy(mem.roms[1][:], data[n:])
	return nil
}

// State implements the Device interface.
func (mem *Spectrum128) State() State {
	s := &Memory128State{
		SelectedRom:  mem.selectedRom,
		SelectedBank: mem.selectedBank,
		ScreenBank:   mem.screenBank,
		PagingLocked: mem.pagingLocked,
	}
	s.Banks = mem.banks
	return s
}

// SetState implements the Device interface.
func (mem *Spectrum128) SetState(state State) error {
	s, ok := state.(*Memory128State)
	if !ok {
		return curated.Errorf(StateMismatch, preferences.Model128)
	}
	mem.banks = s.Banks
	mem.selectedRom = s.SelectedRom
	mem.selectedBank = s.SelectedBank
	mem.screenBank = s.ScreenBank
	mem.pagingLocked = s.PagingLocked
	return nil
}
