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

// Package script runs Lua scripts against a Spectrum. Scripts can inspect
// and change memory and registers and can run the machine by instruction,
// by frame or until an address is reached.
//
// The following functions are available to a script in addition to the
// base, table, string and math libraries:
//
//	peek(address)          read memory without contention
//	poke(address, value)   write memory without contention. ROM is writable
//	reg(name)              the value of the named register
//	setreg(name, value)    set the named register
//	step([count])          execute instructions. returns the number of tacts
//	run_frames(count)      run until the end of count frames
//	run_until(address)     run until the program counter reaches the address
//	tacts()                the number of tacts since the last reset
//	frames()               the number of frames since the last reset
//	halted()               true if the CPU is halted
//	reset()                reset the machine
//	log(message)           add an entry to the log
//	record([max])          start keeping a history of frames
//	rewind([position])     return to a frame in the history. returns the
//	                       length of the history
//
// Register names are lower case. The alternate register pairs are named
// with a trailing apostrophe.
//
//	a f b c d e h l i r xh xl yh yl
//	af bc de hl ix iy sp pc ir wz af' bc' de' hl'
//
// The print function writes to the writer given to NewScript().
package script
