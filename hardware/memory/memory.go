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
	"github.com/dotneteer/spectnetgo/hardware/memory/cpubus"
	"github.com/dotneteer/spectnetgo/hardware/preferences"
	"github.com/dotneteer/spectnetgo/hardware/screen"
)

// Sentinal error patterns.
const (
	UnsupportedModel = "memory: unsupported model (%s)"
	RomTooLarge      = "memory: ROM data is too large (%d bytes)"
	StateMismatch    = "memory: state cannot be used for model (%s)"
)

// SlotSize is the size of each of the four slots of the address space.
const SlotSize = 0x4000

// Clock is the source of timing for the contention delay. In practice this is
// the CPU.
type Clock interface {
	Tacts() uint64
	Delay(n int)
}

// Device is the memory of a Spectrum model.
type Device interface {
	cpubus.Memory

	// UlaRead reads memory as the ULA sees it. Reading with this function
	// does not incur any contention delay.
	UlaRead(address uint16) uint8

	// Poke writes to memory without contention. Writes to ROM are ignored.
	Poke(address uint16, data uint8)

	// CopyRom copies ROM data into the device. For models with more than one
	// ROM the data should contain all ROMs one after the other.
	CopyRom(data []uint8) error

	// IsContended returns true if the address is currently in a contended
	// slot.
	IsContended(address uint16) bool

	// BasicRomSelected returns true if the ROM in slot 0 is the 48K BASIC
	// ROM. The tape routines are only recognised in that ROM.
	BasicRomSelected() bool

	// Reset clears RAM. RAM is randomised if the RandomState preference is
	// set.
	Reset()

	// Plumb the clock used for contention. Contention is not applied until
	// a clock has been plumbed in.
	Plumb(clk Clock)

	State() State
	SetState(State) error
}

// Pager is implemented by memory devices that support paging.
type Pager interface {
	// Page sets the paging register to the specified value.
	Page(value uint8)

	// PagingLocked returns true if the paging register will not accept any
	// new values until the next reset.
	PagingLocked() bool
}

// NewMemory creates the memory device for the model. The contention table
// should be the one created for the screen configuration of the same model.
func NewMemory(env *environment.Environment, model string, tbl *screen.Table) (Device, error) {
	switch model {
	case preferences.Model48:
		return NewSpectrum48(env, tbl), nil
	case preferences.Model128:
		return NewSpectrum128(env, tbl), nil
	}
	return nil, curated.Errorf(UnsupportedModel, model)
}

// contention is the contention logic shared by all memory models
type contention struct {
	clk Clock
	tbl *screen.Table
}

// delay the clock by the contention value of the current tact. the caller
// should check whether the address is contended
func (c *contention) contend() {
	if c.clk == nil || c.tbl == nil {
		return
	}
	frameTact := c.clk.Tacts() % uint64(c.tbl.Configuration().FrameTacts)
	c.clk.Delay(c.tbl.GetContentionValue(int(frameTact)))
}

// clear or randomise RAM
func resetRAM(env *environment.Environment, ram []uint8) {
	if env != nil && env.Prefs.RandomState.Get().(bool) {
		env.Random.Fill(ram)
		return
	}
	clear(ram)
}
