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

// Pager is implemented by memory devices that support paging.
type Pager interface {
	Page(value uint8)
}

// PagingHandler decodes the paging port of the 128K Spectrum, 0x7ffd. The
// port is decoded by address bits A15 and A1 only.
type PagingHandler struct {
	pager Pager
	last  uint8
}

// NewPagingHandler is the preferred method of initialisation for the
// PagingHandler type.
func NewPagingHandler(pager Pager) *PagingHandler {
	return &PagingHandler{pager: pager}
}

// Mask implements the Handler interface.
func (h *PagingHandler) Mask() uint16 {
	return 0x8002
}

// Port implements the Handler interface.
func (h *PagingHandler) Port() uint16 {
	return 0x0000
}

// CanRead implements the Handler interface.
func (h *PagingHandler) CanRead() bool {
	return false
}

// CanWrite implements the Handler interface.
func (h *PagingHandler) CanWrite() bool {
	return true
}

// HandleRead implements the Handler interface. The paging port cannot be
// read.
func (h *PagingHandler) HandleRead(_ uint16) (uint8, bool) {
	return 0, false
}

// HandleWrite implements the Handler interface.
func (h *PagingHandler) HandleWrite(_ uint16, data uint8) {
	h.last = data
	h.pager.Page(data)
}

// LastValue returns the last value written to the port.
func (h *PagingHandler) LastValue() uint8 {
	return h.last
}
