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

// Package instructions defines the Z80 instruction set. There is one
// Definition for every opcode in each of the seven opcode tables: the
// unprefixed table, the tables for the CB, ED, DD and FD prefixes and the
// tables for the DDCB and FDCB double prefixes.
//
// Definitions describe an instruction's mnemonic, its length in bytes, its
// uncontended duration in tacts and the category of its effect. The CPU does
// not execute instructions from these definitions. The definitions are used
// to describe the instruction being executed and to check that the CPU took
// the documented time to execute it.
//
// Operands in a mnemonic are written with placeholders. The Format()
// function replaces the placeholders with actual values:
//
//	n   immediate byte
//	nn  immediate word
//	d   index displacement
//	e   relative jump displacement
package instructions
