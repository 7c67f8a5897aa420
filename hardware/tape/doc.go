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

// Package tape implements the cassette interface of the ZX Spectrum.
//
// The Device type watches the program counter of the CPU. When the CPU
// reaches the LD-BYTES routine of the ROM the device enters load mode and
// the EAR input is driven by a Player. When the CPU reaches the SA-BYTES
// routine the device enters save mode and every change of the MIC output is
// classified by the length of the pulse it ends. Recognised blocks are
// handed to a SaveSink.
//
// Players for the standard Spectrum encoding are provided by this package.
// A standard block is a pilot tone followed by two sync pulses, the data
// bits and a terminating pulse:
//
//	pilot     8063 (header) or 3223 (data) pulses of 2168 tacts
//	sync 1    667 tacts
//	sync 2    735 tacts
//	bit 0     two pulses of 855 tacts
//	bit 1     two pulses of 1710 tacts
//	term      947 tacts
//
// Bits are sent most significant bit first.
//
// The tapeformat package creates players from TAP and TZX files. The
// soundload package creates players from WAV and MP3 recordings.
package tape
