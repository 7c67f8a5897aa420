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

// Package ports implements the I/O port dispatch of the ZX Spectrum.
//
// Devices register a Handler with the Ports type. A handler declares the
// address pattern it decodes with a mask and a port value: a port address
// matches the handler when the address ANDed with the mask equals the port
// value.
//
// Reads and writes are dispatched differently. A read is satisfied by the
// first readable handler that matches the address and accepts the read. If
// no handler satisfies the read then the floating bus value is returned.
// A write is delivered to every writable handler that matches the address,
// in the order in which the handlers were registered.
//
// Before any handler is consulted the I/O contention delay is applied to the
// clock. The delay depends on whether the high byte of the port address
// falls in contended memory and on whether the low bit of the address is
// set. In the table below, C:n is a contention delay followed by n tacts and
// N:n is n tacts without contention.
//
//	contended  low bit  pattern
//	---------  -------  ---------------
//	no         reset    N:1, C:3
//	no         set      N:4
//	yes        reset    C:1, C:3
//	yes        set      C:1, C:1, C:1, C:1
//
// The delay is charged for every access, whether or not a handler decodes
// the address.
package ports
