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

import (
	"strings"

	"github.com/dotneteer/spectnetgo/logger"
)

// SavePhase is the state of the decoder in save mode.
type SavePhase int

// List of valid SavePhase values.
const (
	SaveNone SavePhase = iota
	SavePilot
	SaveSync1
	SaveSync2
	SaveData
	SaveError
)

func (p SavePhase) String() string {
	switch p {
	case SaveNone:
		return "none"
	case SavePilot:
		return "pilot"
	case SaveSync1:
		return "sync 1"
	case SaveSync2:
		return "sync 2"
	case SaveData:
		return "data"
	case SaveError:
		return "error"
	}
	return "unknown save phase"
}

// MicPulse is the classification of a pulse on the MIC output.
type MicPulse int

// List of valid MicPulse values.
const (
	PulseNone MicPulse = iota
	PulseTooShort
	PulseTooLong
	PulsePilot
	PulseSync1
	PulseSync2
	PulseBit0
	PulseBit1
	PulseTermSync
)

func (p MicPulse) String() string {
	switch p {
	case PulseNone:
		return "none"
	case PulseTooShort:
		return "too short"
	case PulseTooLong:
		return "too long"
	case PulsePilot:
		return "pilot"
	case PulseSync1:
		return "sync 1"
	case PulseSync2:
		return "sync 2"
	case PulseBit0:
		return "bit 0"
	case PulseBit1:
		return "bit 1"
	case PulseTermSync:
		return "term sync"
	}
	return "unknown pulse"
}

func within(length int, target int) bool {
	return length >= target-SavePulseTolerance && length <= target+SavePulseTolerance
}

// ClassifyPulse returns the type of a MIC pulse of the length in tacts.
func ClassifyPulse(length int) MicPulse {
	switch {
	case within(length, Bit0PulseLength):
		return PulseBit0
	case within(length, Bit1PulseLength):
		return PulseBit1
	case within(length, PilotPulseLength):
		return PulsePilot
	case within(length, Sync1PulseLength):
		return PulseSync1
	case within(length, Sync2PulseLength):
		return PulseSync2
	case within(length, TermSyncPulseLength):
		return PulseTermSync
	case length < Sync1PulseLength-SavePulseTolerance:
		return PulseTooShort
	case length > PilotPulseLength+2*SavePulseTolerance:
		return PulseTooLong
	}
	return PulseNone
}

func (dev *Device) resetSave() {
	dev.savePhase = SaveNone
	dev.pilotCount = 0
	dev.prevDataPulse = PulseNone
	dev.bitOffset = 0
	dev.dataByte = 0
	dev.data = nil
	dev.blockCount = 0
	dev.saveName = ""
	dev.micBit = true
}

func (dev *Device) enterSaveMode() {
	dev.mode = Save
	dev.resetSave()
	dev.lastMicTact = dev.mc.Tacts()

	if dev.sink != nil {
		if err := dev.sink.CreateContainer(""); err != nil {
			logger.Logf(dev.env, "tape", "save: %v", err)
		}
	}

	dev.notify(EnteredSaveMode)
}

func (dev *Device) leaveSaveMode() {
	dev.mode = Passive

	if dev.sink != nil {
		if err := dev.sink.FinalizeContainer(dev.saveName); err != nil {
			logger.Logf(dev.env, "tape", "save: %v", err)
		}
	}

	dev.notify(LeftSaveMode)
}

// SavePhase returns the state of the save decoder.
func (dev *Device) SavePhase() SavePhase {
	return dev.savePhase
}

// SavedBlocks returns the number of blocks completed since save mode was
// entered.
func (dev *Device) SavedBlocks() int {
	return dev.blockCount
}

// SaveName returns the name taken from the header block of the save.
func (dev *Device) SaveName() string {
	return dev.saveName
}

// ProcessMicBit implements the ports.TapeSignal interface. It is called on
// every write to the ULA port. Only changes of the bit are considered and
// only in save mode.
func (dev *Device) ProcessMicBit(bit bool) {
	if dev.mode != Save || dev.micBit == bit {
		return
	}

	now := dev.mc.Tacts()
	pulse := ClassifyPulse(int(now - dev.lastMicTact))
	dev.micBit = bit
	dev.lastMicTact = now

	next := SaveError

	switch dev.savePhase {
	case SaveNone:
		switch pulse {
		case PulseTooShort, PulseTooLong:
			next = SaveNone
		case PulsePilot:
			dev.pilotCount = 1
			next = SavePilot
		}

	case SavePilot:
		switch pulse {
		case PulsePilot:
			dev.pilotCount++
			next = SavePilot
		case PulseSync1:
			if dev.pilotCount >= MinPilotPulseCount {
				next = SaveSync1
			}
		}

	case SaveSync1:
		if pulse == PulseSync2 {
			next = SaveSync2
		}

	case SaveSync2:
		if pulse == PulseBit0 || pulse == PulseBit1 {
			dev.prevDataPulse = pulse
			dev.bitOffset = 0
			dev.dataByte = 0
			dev.data = make([]uint8, 0, 256)
			next = SaveData
		}

	case SaveData:
		switch pulse {
		case PulseBit0, PulseBit1:
			next = SaveData
			if dev.prevDataPulse == PulseNone {
				dev.prevDataPulse = pulse
				break
			}
			if dev.prevDataPulse != pulse {
				next = SaveError
				break
			}

			dev.prevDataPulse = PulseNone
			dev.dataByte <<= 1
			if pulse == PulseBit1 {
				dev.dataByte |= 0x01
			}
			dev.bitOffset++
			if dev.bitOffset == 8 {
				dev.data = append(dev.data, dev.dataByte)
				dev.dataByte = 0
				dev.bitOffset = 0
			}

		case PulseTermSync:
			next = SaveNone
			dev.completeBlock()
		}

	case SaveError:
		next = SaveError
	}

	dev.savePhase = next
}

func (dev *Device) completeBlock() {
	dev.blockCount++

	if dev.blockCount == 1 && len(dev.data) == 0x13 {
		dev.saveName = strings.TrimSpace(string(dev.data[2:12]))
	}

	logger.Logf(dev.env, "tape", "saved block %d: %d bytes", dev.blockCount, len(dev.data))

	if dev.sink != nil {
		if err := dev.sink.SaveCompletedBlock(dev.data); err != nil {
			logger.Logf(dev.env, "tape", "save: %v", err)
		}
	}
}
