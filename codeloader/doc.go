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

// Package codeloader describes machine code that is ready to be placed in the
// memory of an emulated machine. The code is produced by an assembler, which
// is not part of this project, or is read directly from a binary file.
//
// The Output type is consumed by hardware.Spectrum.InjectCode(). An Output
// with diagnostics is never injected.
//
// The Displacement() and BitIndex() functions check operand values that
// must be in range before they reach the CPU. A producer of code should use
// them when encoding relative jumps and bit instructions.
package codeloader
