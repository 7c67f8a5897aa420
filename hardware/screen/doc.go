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

// Package screen contains the timing of the screen rendering process of the
// supported ZX Spectrum models.
//
// The ULA shares the bus to the lower 16K of RAM with the CPU. While it is
// fetching pixel and attribute bytes for the display area the CPU is held
// up whenever it tries to access the same memory. The amount of time the CPU
// is held up depends on when, in the frame, the access is attempted. This is
// called contention.
//
// The Table type is built once for a Configuration and describes every tact
// of a frame: what the ULA is doing (the Phase), which addresses it is
// fetching and the contention delay that applies to a CPU access made in that
// tact.
//
//	table := screen.NewTable(screen.Spectrum48)
//	delay := table.GetContentionValue(frameTact)
//
// Pixel rendering is not performed by this package.
package screen
