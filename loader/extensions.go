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

package loader

import (
	"path/filepath"
	"strings"

	"github.com/dotneteer/spectnetgo/archivefs"
)

// Kind is the type of data being loaded.
type Kind string

// List of valid Kind values.
const (
	KindAuto Kind = "AUTO"
	KindTap  Kind = "TAP"
	KindTzx  Kind = "TZX"
	KindWav  Kind = "WAV"
	KindMp3  Kind = "MP3"
	KindRom  Kind = "ROM"
	KindSna  Kind = "SNA"
	KindBin  Kind = "BIN"
)

// IsTape returns true if the kind of data is tape content.
func (k Kind) IsTape() bool {
	switch k {
	case KindTap, KindTzx, KindWav, KindMp3:
		return true
	}
	return false
}

// IsSound returns true if the kind of data is a sound recording.
func (k Kind) IsSound() bool {
	return k == KindWav || k == KindMp3
}

// FileExtensions is the list of file extensions that are recognised by the
// loader package.
var FileExtensions = [...]string{".TAP", ".TZX", ".WAV", ".MP3", ".ROM", ".SNA", ".BIN"}

// KindFromFilename returns the kind of data suggested by the extension of
// the filename. Returns KindAuto if the extension is not recognised.
func KindFromFilename(filename string) Kind {
	ext := strings.ToUpper(filepath.Ext(archivefs.TrimArchiveExt(filename)))
	for _, e := range FileExtensions {
		if ext == e {
			return Kind(e[1:])
		}
	}
	return KindAuto
}
