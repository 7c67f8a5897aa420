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

package tapeformat

import (
	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/tape"
	"github.com/dotneteer/spectnetgo/hardware/tape/soundload"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/logger"
)

// Sentinel error patterns.
const (
	NotTapeContent = "tapeformat: not tape content (%s)"
)

// Provider implements the tape.Provider interface for the content of a
// loader. TAP, TZX, WAV and MP3 content is supported.
type Provider struct {
	env     *environment.Environment
	ld      loader.Loader
	clockHz int
}

// NewProvider is the preferred method of initialisation for the Provider
// type. The clock frequency is required to play sound recordings.
func NewProvider(env *environment.Environment, ld loader.Loader, clockHz int) *Provider {
	return &Provider{
		env:     env,
		ld:      ld,
		clockHz: clockHz,
	}
}

func (p *Provider) String() string {
	return p.ld.String()
}

// Reset implements the tape.Provider interface. A new player is created by
// every call to NextPlayer() so there is nothing to rewind.
func (p *Provider) Reset() {
}

// NextPlayer implements the tape.Provider interface.
func (p *Provider) NextPlayer() (tape.Player, error) {
	if err := p.ld.Load(); err != nil {
		return nil, err
	}

	switch p.ld.Kind {
	case loader.KindWav, loader.KindMp3:
		return soundload.NewPlayer(p.env, string(p.ld.Kind), p.ld.Reader(), p.clockHz)

	case loader.KindTap, loader.KindTzx, loader.KindAuto:
		player, err := NewPlayer(p.ld.Data)
		if err != nil {
			return nil, err
		}
		logger.Logf(p.env, "tapeformat", "%s: %d blocks", p.ld.ShortName(), len(player.Blocks()))
		return player, nil
	}

	return nil, curated.Errorf(NotTapeContent, p.ld.Kind)
}
