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

// Package soundload plays a recording of a tape through the EAR input. WAV
// and MP3 recordings are supported.
package soundload

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"

	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/logger"
)

// tag string used in called to Log().
const soundloadLogTag = "soundload"

// the level a sample must cross before the signal changes. the signal
// changes only when the level passes the threshold in the other direction
const threshold = 0.05

// Player implements the tape.Player interface.
type Player struct {
	env *environment.Environment

	// mono sample data, normalised to the range -1.0 to 1.0
	pcm *audio.Float32Buffer

	// the clock frequency of the CPU in Hz
	clockHz float64

	start uint64
	level bool
	eof   bool
}

// IsSoundFile returns true if the filename has the extension of a supported
// recording.
func IsSoundFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".mp3":
		return true
	}
	return false
}

// NewPlayer is the preferred method of initialisation for the Player type.
// The format is "wav" or "mp3". A leading dot is allowed so a filename
// extension can be used directly.
func NewPlayer(env *environment.Environment, format string, r io.ReadSeeker, clockHz int) (*Player, error) {
	pcm, err := getPCM(env, format, r)
	if err != nil {
		return nil, fmt.Errorf("soundload: %w", err)
	}
	return NewPlayerFromPCM(env, pcm, clockHz), nil
}

// NewPlayerFromPCM creates a Player from mono sample data.
func NewPlayerFromPCM(env *environment.Environment, pcm *audio.Float32Buffer, clockHz int) *Player {
	return &Player{
		env:     env,
		pcm:     pcm,
		clockHz: float64(clockHz),
		level:   true,
		eof:     true,
	}
}

func (p *Player) String() string {
	return fmt.Sprintf("sound: %d samples at %dHz", len(p.pcm.Data), p.pcm.Format.SampleRate)
}

// InitPlay implements the tape.Player interface.
func (p *Player) InitPlay(tact uint64) {
	p.start = tact
	p.level = true
	p.eof = len(p.pcm.Data) == 0
}

// Eof implements the tape.Player interface.
func (p *Player) Eof() bool {
	return p.eof
}

// GetEarBit implements the tape.Player interface.
func (p *Player) GetEarBit(tact uint64) bool {
	if p.eof {
		return true
	}

	idx := int(float64(tact-p.start) * float64(p.pcm.Format.SampleRate) / p.clockHz)
	if idx >= len(p.pcm.Data) {
		p.eof = true
		logger.Log(p.env, soundloadLogTag, "end of recording")
		return true
	}

	v := p.pcm.Data[idx]
	if p.level && v < -threshold {
		p.level = false
	} else if !p.level && v > threshold {
		p.level = true
	}

	return p.level
}
