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

package tape

import "fmt"

// PulsePlayer plays a sequence of pulses. The signal is high for the first
// pulse and changes level at the end of every pulse.
type PulsePlayer struct {
	pulses []int
	phase  PlayPhase
	start  uint64
	index  int
	ends   int
}

// NewPulsePlayer is the preferred method of initialisation for the
// PulsePlayer type.
func NewPulsePlayer(pulses []int) *PulsePlayer {
	return &PulsePlayer{pulses: pulses}
}

// NewPureTonePlayer creates a PulsePlayer of count pulses of the same length.
func NewPureTonePlayer(length int, count int) *PulsePlayer {
	pulses := make([]int, count)
	for i := range pulses {
		pulses[i] = length
	}
	return NewPulsePlayer(pulses)
}

func (p *PulsePlayer) String() string {
	return fmt.Sprintf("pulses: %d (%s)", len(p.pulses), p.phase)
}

// PlayPhase implements the BlockPlayback interface.
func (p *PulsePlayer) PlayPhase() PlayPhase {
	return p.phase
}

// InitPlay implements the BlockPlayback interface.
func (p *PulsePlayer) InitPlay(tact uint64) {
	p.start = tact
	p.index = 0
	if len(p.pulses) == 0 {
		p.phase = PhaseCompleted
		return
	}
	p.ends = p.pulses[0]
	p.phase = PhasePilot
}

// GetEarBit implements the BlockPlayback interface.
func (p *PulsePlayer) GetEarBit(tact uint64) bool {
	if p.phase == PhaseCompleted || p.phase == PhaseNone {
		return true
	}

	pos := int(tact - p.start)
	for p.index < len(p.pulses) && pos >= p.ends {
		p.index++
		if p.index < len(p.pulses) {
			p.ends += p.pulses[p.index]
		}
	}

	if p.index >= len(p.pulses) {
		p.phase = PhaseCompleted
		return true
	}

	return p.index%2 == 0
}

// PausePlayer holds the signal high for a period of time.
type PausePlayer struct {
	ms    int
	phase PlayPhase
	ends  uint64
}

// NewPausePlayer is the preferred method of initialisation for the
// PausePlayer type.
func NewPausePlayer(ms int) *PausePlayer {
	return &PausePlayer{ms: ms}
}

func (p *PausePlayer) String() string {
	return fmt.Sprintf("pause: %dms (%s)", p.ms, p.phase)
}

// PlayPhase implements the BlockPlayback interface.
func (p *PausePlayer) PlayPhase() PlayPhase {
	return p.phase
}

// InitPlay implements the BlockPlayback interface.
func (p *PausePlayer) InitPlay(tact uint64) {
	p.ends = tact + uint64(p.ms*PauseTactsPerMs)
	p.phase = PhasePause
	if p.ms <= 0 {
		p.phase = PhaseCompleted
	}
}

// GetEarBit implements the BlockPlayback interface.
func (p *PausePlayer) GetEarBit(tact uint64) bool {
	if p.phase == PhasePause && tact >= p.ends {
		p.phase = PhaseCompleted
	}
	return true
}
