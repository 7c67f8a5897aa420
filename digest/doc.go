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

// Package digest produces hashes of the emulation. Hashes of the same
// program run from the same state are the same, which makes them useful for
// regression testing.
//
// Screen is the only digest type. It hashes the display memory as the ULA
// sees it, along with the border colour, at the end of every frame. Each
// hash includes the previous hash so the final value depends on every frame
// since the last reset.
package digest
