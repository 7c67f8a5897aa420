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

// Package hardware is the base package for the Spectrum emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Spectrum type is the root of the emulation and contains external
// references to all the Spectrum sub-systems. From here, the emulation can
// either be started to run until a condition is met (see the RunOptions type)
// or it can be stepped instruction by instruction.
//
// Sub-systems are notified of machine events through the capability
// interfaces, Resetter, FrameBound and CPUBound. A sub-system is notified of
// all the events for which it implements the corresponding interface.
package hardware
