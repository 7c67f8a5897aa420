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

// Package registers implements the register file of the Z80 CPU.
//
// The register pairs are stored as 16 bit values. Eight bit registers are
// accessed through the methods of the File type. For example:
//
//	var r registers.File
//	r.SetA(0x10)
//	r.SetF(registers.Z | registers.C)
//	fmt.Println(r.AF) // 0x1041
//
// The Flags type represents the contents of the F register. The undocumented
// flags (bits 3 and 5) are named X and Y after the internal bus bits they
// copy.
//
// The Reg8 and Reg16 types enumerate registers in the order they are encoded
// in Z80 opcodes. They are used by the instruction decoder to select
// registers without a switch statement in every instruction.
package registers
