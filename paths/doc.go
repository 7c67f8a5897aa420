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

// Package paths contains functions to prepare paths to SpectNetGo resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. For example, the
// following will return the path to the tape save directory.
//
//	d, err := paths.ResourcePath("tapes", "")
//
// In development builds the base path is ".spectnetgo" in the current working
// directory. In release builds (built with the "release" tag) the user's
// config directory is used, as returned by os.UserConfigDir(). On a modern
// Linux system the path returned for the example above will be:
//
//	/home/user/.config/spectnetgo/tapes
//
// The base directory and the sub-path are created if they do not exist.
package paths
