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

// Pulse lengths of the standard encoding, in tacts.
const (
	PilotPulseLength    = 2168
	HeaderPilotCount    = 8063
	DataPilotCount      = 3223
	Sync1PulseLength    = 667
	Sync2PulseLength    = 735
	Bit0PulseLength     = 855
	Bit1PulseLength     = 1710
	TermSyncPulseLength = 947
)

// PauseTactsPerMs is the number of tacts in a millisecond of pause.
const PauseTactsPerMs = 3500

// Timing of save mode.
const (
	// the length of silence on the MIC output after which save mode is
	// left
	SaveStopSilence = 17_500_000

	// the tolerance either side of a pulse length when classifying a MIC
	// pulse
	SavePulseTolerance = 24

	// the number of pilot pulses that must be seen before a sync pulse is
	// accepted
	MinPilotPulseCount = 3000
)

// MaxTactJump is the longest gap between reads of the EAR input in load
// mode before the device reports that the loading routine has stopped
// scanning the tape.
const MaxTactJump = 10_000

// ROM addresses watched by the device.
const (
	// the ERROR-1 restart. the device returns to passive mode
	ErrorRomAddress = 0x0008

	// LD-START, inside LD-BYTES. the return address to SA/LD-RET has
	// already been pushed to the stack
	LoadBytesAddress = 0x056c

	// SA-BYTES
	SaveBytesAddress = 0x04c2
)
