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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each with its own set of flags.
//
// Arguments are given with NewArgs() and parsed in layers. Each layer is
// started with NewMode(), given flags and sub-modes, and then parsed with
// Parse(). For example, a program with a RUN mode and a TAPE mode:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("RUN", "TAPE")
//
//	p, err := md.Parse()
//	if err != nil || p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		...
//	}
//
// The first sub-mode is the default and is selected when the next argument
// is not one of the sub-modes. Sub-modes are case insensitive.
//
// Help is printed automatically to the Output writer when the -help flag is
// given. Parse() returns ParseHelp in that case and the caller should do
// nothing more.
//
// Arguments that are neither flags nor sub-modes are returned by
// RemainingArgs() and GetArg().
package modalflag
