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

// Package memory implements the memory of the ZX Spectrum models. The memory
// is accessed by the CPU through the cpubus.Memory interface and by the ULA
// through the UlaRead() function.
//
//	CPU ---- cpu bus ---- MEMORY ---- ula read ---- SCREEN
//	                        |
//	                        |
//	                 contention table
//
// The address space is divided into four slots of 16K. Slot 0 is always ROM.
// For the 48K model the remaining slots are RAM. For the 128K model, slot 1
// is always RAM bank 5, slot 2 is always RAM bank 2 and slot 3 can be paged
// to any of the eight RAM banks. The ROM in slot 0 can also be paged on the
// 128K model.
//
// Memory in a contended slot is subject to delay when the CPU accesses it
// while the ULA is drawing the display area of the screen. The delay is
// applied through the Clock interface before the access takes place.
//
// The Peek() and Poke() functions access memory without contention and are
// intended for debugging tools and for loading code into memory.
package memory
