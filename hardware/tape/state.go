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

// State is the part of the tape device that is preserved by a machine
// state. The player is not part of the state.
type State struct {
	Mode          Mode
	SavePhase     SavePhase
	PilotCount    int
	PrevDataPulse MicPulse
	BitOffset     int
	DataByte      uint8
	Data          []uint8
	BlockCount    int
	SaveName      string
	MicBit        bool
	LastMicTact   uint64
}

// State returns the current state of the device.
func (dev *Device) State() State {
	return State{
		Mode:          dev.mode,
		SavePhase:     dev.savePhase,
		PilotCount:    dev.pilotCount,
		PrevDataPulse: dev.prevDataPulse,
		BitOffset:     dev.bitOffset,
		DataByte:      dev.dataByte,
		Data:          append([]uint8(nil), dev.data...),
		BlockCount:    dev.blockCount,
		SaveName:      dev.saveName,
		MicBit:        dev.micBit,
		LastMicTact:   dev.lastMicTact,
	}
}

// SetState restores the device. A device restored to load mode returns to
// passive mode because the player cannot be restored.
func (dev *Device) SetState(s State) {
	dev.mode = s.Mode
	if dev.mode == Load {
		dev.mode = Passive
	}
	dev.player = nil
	dev.savePhase = s.SavePhase
	dev.pilotCount = s.PilotCount
	dev.prevDataPulse = s.PrevDataPulse
	dev.bitOffset = s.BitOffset
	dev.dataByte = s.DataByte
	dev.data = append([]uint8(nil), s.Data...)
	dev.blockCount = s.BlockCount
	dev.saveName = s.SaveName
	dev.micBit = s.MicBit
	dev.lastMicTact = s.LastMicTact
}
