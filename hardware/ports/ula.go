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

import "fmt"

// TapeSignal is the connection between the ULA port and the tape device.
type TapeSignal interface {
	// GetEarBit returns the level of the EAR input at the tact.
	GetEarBit(tact uint64) bool

	// ProcessMicBit is called whenever the ULA port is written to, with the
	// value of the MIC output bit.
	ProcessMicBit(bit bool)
}

// bits of the ULA port
const (
	ulaBorderMask = 0x07
	ulaMicBit     = 0x08
	ulaEarBit     = 0x10
	ulaEarInput   = 0x40
)

// UlaHandler decodes the ULA port. The ULA port is any port address with the
// low bit reset, most commonly 0xfe.
//
// Reading the port returns the state of the keyboard half-rows selected by
// the high byte of the address and the level of the EAR input. Writing the
// port sets the border colour and the MIC and EAR output bits.
type UlaHandler struct {
	clk  Clock
	tape TapeSignal

	Keyboard Keyboard

	border uint8
	mic    bool
	ear    bool
}

// NewUlaHandler is the preferred method of initialisation for the UlaHandler
// type. The tape argument can be nil, in which case the EAR input is always
// high.
func NewUlaHandler(clk Clock, tape TapeSignal) *UlaHandler {
	return &UlaHandler{
		clk:  clk,
		tape: tape,
	}
}

func (h *UlaHandler) String() string {
	return fmt.Sprintf("ULA: border=%d mic=%v ear=%v", h.border, h.mic, h.ear)
}

// Mask implements the Handler interface.
func (h *UlaHandler) Mask() uint16 {
	return 0x0001
}

// Port implements the Handler interface.
func (h *UlaHandler) Port() uint16 {
	return 0x0000
}

// CanRead implements the Handler interface.
func (h *UlaHandler) CanRead() bool {
	return true
}

// CanWrite implements the Handler interface.
func (h *UlaHandler) CanWrite() bool {
	return true
}

// HandleRead implements the Handler interface.
func (h *UlaHandler) HandleRead(address uint16) (uint8, bool) {
	v := h.Keyboard.LineStatus(uint8(address >> 8))

	ear := true
	if h.tape != nil && h.clk != nil {
		ear = h.tape.GetEarBit(h.clk.Tacts())
	}
	if !ear {
		v &^= ulaEarInput
	}

	return v, true
}

// HandleWrite implements the Handler interface.
func (h *UlaHandler) HandleWrite(address uint16, data uint8) {
	h.border = data & ulaBorderMask
	h.ear = data&ulaEarBit == ulaEarBit
	h.mic = data&ulaMicBit == ulaMicBit
	if h.tape != nil {
		h.tape.ProcessMicBit(h.mic)
	}
}

// BorderColor returns the most recent border colour written to the port.
func (h *UlaHandler) BorderColor() uint8 {
	return h.border
}

// Reset the output bits, the border colour and the keyboard.
func (h *UlaHandler) Reset() {
	h.border = 0
	h.mic = false
	h.ear = false
	h.Keyboard.Reset()
}

// State returns the state of the ULA port.
func (h *UlaHandler) State() State {
	return State{
		Border:  h.border,
		Mic:     h.mic,
		Ear:     h.ear,
		KeyRows: h.Keyboard.rows,
	}
}

// SetState restores the state of the ULA port.
func (h *UlaHandler) SetState(s State) {
	h.border = s.Border
	h.mic = s.Mic
	h.ear = s.Ear
	h.Keyboard.rows = s.KeyRows
}
