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

// Package preferences holds the preference values that affect the emulated
// hardware. Values are stored on disk with the prefs package, in the
// preferences file of the resource directory.
//
// Preferences are grouped by concern. The Tape field holds the preferences
// that affect the tape device. Performance critical code should read the Live
// values of a group rather than the prefs values.
package preferences
