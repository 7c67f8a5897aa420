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

// Timing describes the pulses of a data block. All lengths are in tacts.
type Timing struct {
	PilotPulse int
	PilotCount int
	Sync1      int
	Sync2      int
	Bit0       int
	Bit1       int

	// the number of bits of the last byte that are played. a value of zero
	// is the same as eight
	UsedBits int

	// length of the pause after the block, in milliseconds
	PauseMs int
}

// StandardTiming returns the timing used by the ROM for a block with the
// flag byte. Headers have a flag byte of less than 0x80 and a longer pilot
// tone.
func StandardTiming(flag uint8, pauseMs int) Timing {
	t := Timing{
		PilotPulse: PilotPulseLength,
		PilotCount: DataPilotCount,
		Sync1:      Sync1PulseLength,
		Sync2:      Sync2PulseLength,
		Bit0:       Bit0PulseLength,
		Bit1:       Bit1PulseLength,
		UsedBits:   8,
		PauseMs:    pauseMs,
	}
	if flag&0x80 == 0 {
		t.PilotCount = HeaderPilotCount
	}
	return t
}

// DataBlockPlayer plays a block of bytes with a pilot tone, sync pulses and
// a terminating pulse.
type DataBlockPlayer struct {
	data   []uint8
	timing Timing

	phase PlayPhase
	start uint64

	// end of each leading section, relative to the start
	pilotEnds int
	sync1Ends int
	sync2Ends int

	// the bit being played
	byteIndex int
	bitIndex  int
	bitMask   uint8
	bitStarts int
	bitLength int

	termSyncEnds uint64
	pauseEnds    uint64
}

// NewDataBlockPlayer is the preferred method of initialisation for the
// DataBlockPlayer type. The block uses standard timing.
func NewDataBlockPlayer(data []uint8, pauseMs int) *DataBlockPlayer {
	var flag uint8
	if len(data) > 0 {
		flag = data[0]
	}
	return NewCustomDataBlockPlayer(data, StandardTiming(flag, pauseMs))
}

// NewCustomDataBlockPlayer creates a DataBlockPlayer with non-standard
// timing. A PilotCount of zero and sync lengths of zero give a block that
// starts with the data.
func NewCustomDataBlockPlayer(data []uint8, timing Timing) *DataBlockPlayer {
	if timing.UsedBits <= 0 || timing.UsedBits > 8 {
		timing.UsedBits = 8
	}
	p := &DataBlockPlayer{
		data:   data,
		timing: timing,
	}
	p.pilotEnds = timing.PilotPulse * timing.PilotCount
	p.sync1Ends = p.pilotEnds + timing.Sync1
	p.sync2Ends = p.sync1Ends + timing.Sync2
	return p
}

func (p *DataBlockPlayer) String() string {
	return fmt.Sprintf("data block: %d bytes (%s)", len(p.data), p.phase)
}

// Data implements the DataBlock interface.
func (p *DataBlockPlayer) Data() []uint8 {
	return p.data
}

// Timing returns the timing of the block.
func (p *DataBlockPlayer) Timing() Timing {
	return p.timing
}

// PlayPhase implements the BlockPlayback interface.
func (p *DataBlockPlayer) PlayPhase() PlayPhase {
	return p.phase
}

// InitPlay implements the BlockPlayback interface.
func (p *DataBlockPlayer) InitPlay(tact uint64) {
	p.start = tact
	p.phase = PhasePilot
}

// GetEarBit implements the BlockPlayback interface.
func (p *DataBlockPlayer) GetEarBit(tact uint64) bool {
	pos := int(tact - p.start)

	switch p.phase {
	case PhaseNone:
		return true

	case PhasePilot, PhaseSync:
		if p.pilotEnds > 0 && pos <= p.pilotEnds {
			return (pos/p.timing.PilotPulse)%2 == 0
		}
		if p.sync1Ends > p.pilotEnds && pos <= p.sync1Ends {
			p.phase = PhaseSync
			return false
		}
		if p.sync2Ends > p.sync1Ends && pos <= p.sync2Ends {
			p.phase = PhaseSync
			return true
		}

		p.phase = PhaseData
		p.bitStarts = p.sync2Ends
		p.byteIndex = 0
		p.bitIndex = 0
		p.bitMask = 0x80
		if len(p.data) == 0 {
			return p.termSync(tact)
		}
		p.bitLength = p.currentBitLength()
		return false

	case PhaseData:
		bitPos := pos - p.bitStarts
		if bitPos < p.bitLength {
			return false
		}
		if bitPos < p.bitLength*2 {
			return true
		}

		p.bitStarts += p.bitLength * 2
		if !p.nextBit() {
			return p.termSync(tact)
		}
		p.bitLength = p.currentBitLength()
		return false

	case PhaseTermSync:
		if tact < p.termSyncEnds {
			return false
		}
		p.phase = PhasePause
		p.pauseEnds = tact + uint64(PauseTactsPerMs*p.timing.PauseMs)
		return true

	case PhasePause:
		if tact > p.pauseEnds {
			p.phase = PhaseCompleted
		}
		return true
	}

	return true
}

func (p *DataBlockPlayer) termSync(tact uint64) bool {
	p.phase = PhaseTermSync
	p.termSyncEnds = tact + TermSyncPulseLength
	return false
}

func (p *DataBlockPlayer) currentBitLength() int {
	if p.data[p.byteIndex]&p.bitMask == 0 {
		return p.timing.Bit0
	}
	return p.timing.Bit1
}

// move to the next bit. returns false if there are no more bits
func (p *DataBlockPlayer) nextBit() bool {
	p.bitMask >>= 1
	p.bitIndex++

	last := p.byteIndex == len(p.data)-1
	if p.bitMask == 0 || (last && p.bitIndex >= p.timing.UsedBits) {
		p.byteIndex++
		p.bitIndex = 0
		p.bitMask = 0x80
	}

	return p.byteIndex < len(p.data)
}
