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

// Package prefs facilitates the storage of preferential values in the
// SpectNetGo system. It is intended to be used by other packages and is not
// used to store any preference values of its own.
//
// The Bool, Int, Float, String and Generic types are used to hold values. A
// value can be added to a Disk instance with Add() and the whole Disk saved
// and loaded with Save() and Load(). For example:
//
//	dsk, _ := prefs.NewDisk("preferences")
//
//	var fastLoad prefs.Bool
//	_ = dsk.Add("tape.fastload", &fastLoad)
//	_ = dsk.Load(true)
//
// The format of the file on disk is a list of "key :: value" lines, sorted by
// key, preceded by the WarningBoilerPlate. Entries in the file that are not
// known to a Disk instance are preserved when that instance is saved, meaning
// that several packages can share the same file.
//
// Values can be overridden from the command line with the
// PushCommandLineStack() function. A Disk will check the command line stack
// for a matching key whenever it loads.
package prefs
