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
	"fmt"

	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
	"github.com/dotneteer/spectnetgo/logger"
)

// Mode is the operating mode of the tape device.
type Mode int

// List of valid Mode values.
const (
	Passive Mode = iota
	Load
	Save
)

func (m Mode) String() string {
	switch m {
	case Passive:
		return "passive"
	case Load:
		return "load"
	case Save:
		return "save"
	}
	return "unknown mode"
}

// Event is sent to listeners when the mode changes.
type Event int

// List of valid Event values.
const (
	EnteredLoadMode Event = iota
	LeftLoadMode
	LoadCompleted
	EnteredSaveMode
	LeftSaveMode
)

func (e Event) String() string {
	switch e {
	case EnteredLoadMode:
		return "entered load mode"
	case LeftLoadMode:
		return "left load mode"
	case LoadCompleted:
		return "load completed"
	case EnteredSaveMode:
		return "entered save mode"
	case LeftSaveMode:
		return "left save mode"
	}
	return "unknown event"
}

// Listener is notified of tape events.
type Listener func(Event)

// CPU is the view of the CPU required by the tape device.
type CPU interface {
	Tacts() uint64
	Registers() *registers.File
}

// Memory is the view of memory required by the tape device. Fast loading
// writes directly to memory without contention.
type Memory interface {
	Peek(address uint16) uint8
	Poke(address uint16, data uint8)
	BasicRomSelected() bool
}

// Device is the tape device. It implements the ports.TapeSignal interface.
type Device struct {
	env *environment.Environment
	mc  CPU
	mem Memory

	provider Provider
	sink     SaveSink

	mode   Mode
	player Player

	// tact of the most recent EAR read in load mode
	lastEarTact uint64
	earGaps     int

	listeners []Listener

	// save mode
	micBit        bool
	lastMicTact   uint64
	savePhase     SavePhase
	pilotCount    int
	prevDataPulse MicPulse
	bitOffset     int
	dataByte      uint8
	data          []uint8
	blockCount    int
	saveName      string
}

// NewDevice is the preferred method of initialisation for the Device type.
// The provider and the sink can be nil.
func NewDevice(env *environment.Environment, mc CPU, mem Memory, provider Provider, sink SaveSink) *Device {
	dev := &Device{
		env:      env,
		mc:       mc,
		mem:      mem,
		provider: provider,
		sink:     sink,
	}
	dev.Reset()
	return dev
}

func (dev *Device) String() string {
	return fmt.Sprintf("tape: %s", dev.mode)
}

// SetProvider changes the source of content for load mode.
func (dev *Device) SetProvider(provider Provider) {
	dev.provider = provider
}

// SetSink changes the destination of blocks recognised in save mode.
func (dev *Device) SetSink(sink SaveSink) {
	dev.sink = sink
}

// AddListener adds a function to be called on every tape event.
func (dev *Device) AddListener(l Listener) {
	dev.listeners = append(dev.listeners, l)
}

func (dev *Device) notify(e Event) {
	logger.Log(dev.env, "tape", e)
	for _, l := range dev.listeners {
		l(e)
	}
}

// Reset returns the device to passive mode and rewinds the content.
func (dev *Device) Reset() {
	if dev.provider != nil {
		dev.provider.Reset()
	}
	dev.mode = Passive
	dev.player = nil
	dev.resetSave()
}

// Mode returns the current mode of the device.
func (dev *Device) Mode() Mode {
	return dev.mode
}

// Player returns the player used in load mode. Returns nil if the device is
// not in load mode or if there is no content.
func (dev *Device) Player() Player {
	return dev.player
}

// OnCpuOperationCompleted should be called after every instruction.
func (dev *Device) OnCpuOperationCompleted() {
	dev.SetTapeMode()
	if dev.mode == Load && dev.mc.Registers().PC == LoadBytesAddress {
		if dev.env != nil && dev.env.Prefs != nil && dev.env.Prefs.Tape.Live.FastLoad.Load() {
			dev.FastLoad()
		}
	}
}

// SetTapeMode changes the mode of the device depending on the state of the
// CPU. The tape routines are only recognised in the 48K BASIC ROM.
func (dev *Device) SetTapeMode() {
	if !dev.mem.BasicRomSelected() {
		return
	}

	pc := dev.mc.Registers().PC

	switch dev.mode {
	case Passive:
		switch pc {
		case LoadBytesAddress:
			dev.enterLoadMode()
		case SaveBytesAddress:
			dev.enterSaveMode()
		}

	case Save:
		if pc == ErrorRomAddress || dev.mc.Tacts()-dev.lastMicTact > SaveStopSilence {
			dev.leaveSaveMode()
		}

	case Load:
		if (dev.player != nil && dev.player.Eof()) || pc == ErrorRomAddress {
			dev.leaveLoadMode()
		}
	}
}

func (dev *Device) enterLoadMode() {
	dev.mode = Load
	dev.notify(EnteredLoadMode)

	if dev.provider == nil {
		return
	}

	player, err := dev.provider.NextPlayer()
	if err != nil {
		logger.Logf(dev.env, "tape", "no content: %v", err)
		return
	}
	if player == nil {
		return
	}

	dev.player = player
	dev.lastEarTact = dev.mc.Tacts()
	dev.earGaps = 0
	dev.player.InitPlay(dev.lastEarTact)
}

func (dev *Device) leaveLoadMode() {
	if dev.earGaps > 0 {
		logger.Logf(dev.env, "tape", "EAR input not read for more than %d tacts on %d occasions", MaxTactJump, dev.earGaps)
	}
	dev.mode = Passive
	dev.player = nil
	if dev.provider != nil {
		dev.provider.Reset()
	}
	dev.notify(LeftLoadMode)
	dev.notify(LoadCompleted)
}

// GetEarBit implements the ports.TapeSignal interface. The signal is high
// unless content is being played.
func (dev *Device) GetEarBit(tact uint64) bool {
	if dev.mode != Load || dev.player == nil {
		return true
	}
	if tact-dev.lastEarTact > MaxTactJump {
		dev.earGaps++
	}
	dev.lastEarTact = tact
	return dev.player.GetEarBit(tact)
}

// EarGaps returns the number of times in the current load that the EAR
// input was not read for longer than MaxTactJump. Loaders that stop reading
// the tape between blocks are not affected but a large number of gaps
// during a block suggests the content will not load.
func (dev *Device) EarGaps() int {
	return dev.earGaps
}
