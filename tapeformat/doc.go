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

// Package tapeformat reads and writes the file formats used to store
// Spectrum tapes.
//
// TAP files are a list of blocks, each preceded by a little-endian 16 bit
// length. The blocks are played with standard timing.
//
// TZX files start with the signature "ZXTape!" and a version number,
// followed by a list of typed blocks. The following block types are played:
//
//	0x10 standard speed data
//	0x11 turbo speed data
//	0x12 pure tone
//	0x13 sequence of pulses
//	0x14 pure data
//	0x20 pause
//
// Group, text and archive information blocks are read but produce no signal.
// Other information blocks are skipped. Any other block type is an error.
//
// NewPlayer() accepts either format and returns a player suitable for the
// tape device.
package tapeformat
