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

// Package version reports the version of SpectNetGo. The version number is
// set at link time with:
//
//	-ldflags "-X github.com/dotneteer/spectnetgo/version.number=v0.1.0"
//
// Without a number, the version is "unreleased" when VCS information is
// embedded in the binary and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "SpectNetGo"

// set by the linker
var number string

var version string
var revision string

// Version returns the version string, the VCS revision and whether this is a
// numbered release. The revision is suffixed with "+dirty" if the source was
// modified but not committed.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a single string.
func String() string {
	return fmt.Sprintf("%s %s", ApplicationName, version)
}

func init() {
	vcs, rev, modified := readBuildInfo()

	switch {
	case rev == "":
		revision = "no revision information"
	case modified:
		revision = fmt.Sprintf("%s+dirty", rev)
	default:
		revision = rev
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}

func readBuildInfo() (vcs bool, rev string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}
	return
}
