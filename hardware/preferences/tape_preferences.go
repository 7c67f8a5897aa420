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

package preferences

import (
	"fmt"
	"sync/atomic"

	"github.com/dotneteer/spectnetgo/prefs"
)

// List of valid values for the SaveFormat preference.
const (
	SaveFormatTAP = "tap"
	SaveFormatWAV = "wav"
)

// LiveTapePreferences encapsulates the current (live) tape values.
type LiveTapePreferences struct {
	FastLoad atomic.Bool
}

// TapePreferences defines the preferences for the tape device.
type TapePreferences struct {
	// Prefer live values in performance critical code
	Live LiveTapePreferences

	// copy data blocks directly into memory when the ROM load routine is
	// reached. only possible when the tape content is in TAP or TZX format
	FastLoad prefs.Bool

	// the format of files created when the ROM save routine is used
	SaveFormat prefs.String

	// the directory in which saved tapes are created. an empty value means
	// the "tapes" directory of the resource path
	SaveDir prefs.String
}

func (p *TapePreferences) String() string {
	return fmt.Sprintf("fastload=%v format=%s dir=%s", p.FastLoad.Get(), p.SaveFormat.String(), p.SaveDir.String())
}

func newTapePreferences() (*TapePreferences, error) {
	p := &TapePreferences{}

	p.FastLoad.SetHookPost(func(v prefs.Value) error {
		p.Live.FastLoad.Store(v.(bool))
		return nil
	})
	p.SaveFormat.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case SaveFormatTAP, SaveFormatWAV:
			return nil
		}
		return fmt.Errorf("unsupported tape save format (%v)", v)
	})

	p.SetDefaults()

	return p, nil
}

func (p *TapePreferences) add(dsk *prefs.Disk) error {
	if err := dsk.Add("tape.fastload", &p.FastLoad); err != nil {
		return err
	}
	if err := dsk.Add("tape.saveformat", &p.SaveFormat); err != nil {
		return err
	}
	if err := dsk.Add("tape.savedir", &p.SaveDir); err != nil {
		return err
	}
	return nil
}

// SetDefaults reverts all tape settings to default values.
func (p *TapePreferences) SetDefaults() {
	p.FastLoad.Set(true)
	p.SaveFormat.Set(SaveFormatTAP)
	p.SaveDir.Set("")
}
