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

// Package snapshot reads and writes machine snapshots in the SNA format.
//
// The SNA format stores the registers of the CPU in a 27 byte header,
// followed by the 48K of RAM. The program counter is not in the header. It
// is pushed onto the stack of the stored RAM when the snapshot is written
// and popped from it when the snapshot is read.
//
// Only the 48K model is supported.
package snapshot
