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

// Package logger is the central log repository for the emulation. Log entries
// are tagged with a short string, usually the name of the package doing the
// logging, and a detail value. Consecutive identical entries are collapsed
// into one entry with a repeat count.
//
// Logging requires permission. The Permission interface is implemented by the
// environment.Environment type, which allows emulations that are not the
// main emulation (test machines, script machines) to run silently. The Allow
// value can be used when permission is always granted.
//
// The package level functions operate on a central logger. Private loggers
// can be created with NewLogger().
package logger
