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

// Package loader is used to specify the data that is to be attached to the
// emulated machine. The data can be tape content, a snapshot, a ROM image or
// raw machine code.
//
// When the data is ready to be loaded into the emulator, the Load() function
// should be used. The Load() function handles loading of data from different
// sources. Local files (including files inside a zip archive) and data over
// HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	ld := loader.Loader{
//		Filename: "tapes/Manic Miner.tzx",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the Kind field automatically according to
// the filename extension.
package loader
