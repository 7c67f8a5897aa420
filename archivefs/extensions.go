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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions lists the file extensions of the supported archives.
var ArchiveExtensions = [...]string{".ZIP"}

// TrimArchiveExt removes the extension of a supported archive from the end of
// the string.
func TrimArchiveExt(s string) string {
	ext := filepath.Ext(s)
	for _, a := range ArchiveExtensions {
		if strings.ToUpper(ext) == a {
			return strings.TrimSuffix(s, ext)
		}
	}
	return s
}
