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

package ports

import (
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/screen"
	"github.com/dotneteer/spectnetgo/logger"
)

// Handler is implemented by devices that decode port addresses.
type Handler interface {
	// Mask and Port define the addresses the handler decodes
	Mask() uint16
	Port() uint16

	CanRead() bool
	CanWrite() bool

	// HandleRead returns false if the handler declines the read, in which
	// case the next matching handler is consulted.
	HandleRead(address uint16) (uint8, bool)
	HandleWrite(address uint16, data uint8)
}

// Clock is the source of timing for the I/O contention delay. In practice
// this is the CPU.
type Clock interface {
	Tacts() uint64
	Delay(n int)
}

// Memory is the view of memory required by the port dispatch.
type Memory interface {
	IsContended(address uint16) bool
	UlaRead(address uint16) uint8
}

// the value of a read that no handler answers and that does not coincide
// with a ULA fetch
const idleBus = 0xff

// Ports dispatches port accesses to the registered handlers. Implements the
// cpubus.Ports interface.
type Ports struct {
	env *environment.Environment

	clk Clock
	mem Memory
	tbl *screen.Table

	handlers []Handler
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(env *environment.Environment, mem Memory, tbl *screen.Table) *Ports {
	return &Ports{
		env: env,
		mem: mem,
		tbl: tbl,
	}
}

// Plumb the clock used for contention.
func (p *Ports) Plumb(clk Clock) {
	p.clk = clk
}

// AddHandler registers a handler. Handlers are consulted in the order in
// which they are registered.
func (p *Ports) AddHandler(h Handler) {
	if h.Mask() == 0 && h.Port() == 0 {
		logger.Logf(p.env, "ports", "handler %T decodes every port address", h)
	}
	p.handlers = append(p.handlers, h)
}

// Handlers returns the registered handlers in registration order.
func (p *Ports) Handlers() []Handler {
	return p.handlers
}

// Read implements the cpubus.Ports interface.
func (p *Ports) Read(address uint16) uint8 {
	p.applyContention(address)

	for _, h := range p.handlers {
		if !h.CanRead() || address&h.Mask() != h.Port() {
			continue
		}
		if v, ok := h.HandleRead(address); ok {
			return v
		}
	}

	return p.FloatingBus()
}

// Write implements the cpubus.Ports interface.
func (p *Ports) Write(address uint16, data uint8) {
	p.applyContention(address)

	for _, h := range p.handlers {
		if h.CanWrite() && address&h.Mask() == h.Port() {
			h.HandleWrite(address, data)
		}
	}
}

// FloatingBus returns the value on the data bus when no device drives it.
// This is the byte the ULA is fetching at the current tact, or 0xff if the
// ULA is not fetching.
func (p *Ports) FloatingBus() uint8 {
	if p.clk == nil || p.tbl == nil || p.mem == nil {
		return idleBus
	}
	if address, ok := p.tbl.FetchAddress(p.frameTact()); ok {
		return p.mem.UlaRead(address)
	}
	return idleBus
}

func (p *Ports) frameTact() int {
	return int(p.clk.Tacts() % uint64(p.tbl.Configuration().FrameTacts))
}

// delay the clock by the contention value at the current tact
func (p *Ports) contend() {
	p.clk.Delay(p.tbl.GetContentionValue(p.frameTact()))
}

func (p *Ports) applyContention(address uint16) {
	if p.clk == nil {
		return
	}

	if p.tbl == nil || p.mem == nil {
		p.clk.Delay(4)
		return
	}

	contended := p.mem.IsContended(address)
	lowBit := address&0x0001 == 0x0001

	switch {
	case contended && lowBit:
		for i := 0; i < 4; i++ {
			p.contend()
			p.clk.Delay(1)
		}
	case contended:
		p.contend()
		p.clk.Delay(1)
		p.contend()
		p.clk.Delay(3)
	case lowBit:
		p.clk.Delay(4)
	default:
		p.clk.Delay(1)
		p.contend()
		p.clk.Delay(3)
	}
}
