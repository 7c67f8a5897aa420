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
	"math/rand"
	"time"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/paths"
	"github.com/dotneteer/spectnetgo/prefs"
)

// List of valid values for the Model preference.
const (
	Model48  = "48"
	Model128 = "128"
)

// Preferences defines and collates all the preference values used by the
// emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// initialise RAM to an unknown state after reset
	RandomState prefs.Bool

	// the machine model to create when none is specified
	Model prefs.String

	// the number of tacts after which a run is stopped. zero means that the
	// run is never timed out
	TimeoutTacts prefs.Int

	// tape device preferences
	Tape *TapePreferences

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed int64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// initialise random number generator
	p.Reseed(0)

	p.Model.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case Model48, Model128:
			return nil
		}
		return fmt.Errorf("unsupported model (%v)", v)
	})
	p.TimeoutTacts.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("timeout cannot be negative")
		}
		return nil
	})

	var err error

	p.Tape, err = newTapePreferences()
	if err != nil {
		return nil, err
	}

	// setup preferences and load from disk
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.model", &p.Model)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.timeouttacts", &p.TimeoutTacts)
	if err != nil {
		return nil, err
	}
	err = p.Tape.add(p.dsk)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all hardware settings to default values. Tape
// preferences are not affected.
func (p *Preferences) SetDefaults() {
	p.RandomState.Set(false)
	p.Model.Set(Model48)
	p.TimeoutTacts.Set(0)
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		p.RandSeed = int64(time.Now().Nanosecond())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewSource(p.RandSeed))
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
