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

// PlayPhase is the progress of a BlockPlayback.
type PlayPhase int

// List of valid PlayPhase values.
const (
	PhaseNone PlayPhase = iota
	PhasePilot
	PhaseSync
	PhaseData
	PhaseTermSync
	PhasePause
	PhaseCompleted
)

func (p PlayPhase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhasePilot:
		return "pilot"
	case PhaseSync:
		return "sync"
	case PhaseData:
		return "data"
	case PhaseTermSync:
		return "term sync"
	case PhasePause:
		return "pause"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown play phase"
}

// Player drives the EAR input in load mode.
type Player interface {
	// InitPlay starts playback at the tact.
	InitPlay(tact uint64)

	// GetEarBit returns the level of the signal at the tact. The tact
	// should never be less than the tact of a previous call.
	GetEarBit(tact uint64) bool

	// Eof returns true once all content has been played.
	Eof() bool
}

// BlockPlayback is one block of tape content.
type BlockPlayback interface {
	InitPlay(tact uint64)
	GetEarBit(tact uint64) bool
	PlayPhase() PlayPhase
}

// DataBlock is implemented by blocks that carry bytes in the standard
// encoding. The first byte of the data is the flag byte and the last byte is
// the checksum.
type DataBlock interface {
	Data() []uint8
}

// BlockPlayer is a Player made up of blocks. Block players can be used for
// fast loading.
type BlockPlayer interface {
	Player

	// CurrentBlock returns nil if all blocks have been played.
	CurrentBlock() BlockPlayback

	// NextBlock abandons the current block and starts the next one at the
	// tact.
	NextBlock(tact uint64)
}

// Provider supplies the content for load mode.
type Provider interface {
	// Reset rewinds the content.
	Reset()

	// NextPlayer returns the player for the content. Returns nil if there is
	// no content.
	NextPlayer() (Player, error)
}

// SaveSink receives the blocks recognised in save mode.
type SaveSink interface {
	// CreateContainer is called when save mode is entered. The name is
	// empty because the header has not yet been seen.
	CreateContainer(name string) error

	// SaveCompletedBlock is called for each block. The data includes the
	// flag byte and the checksum.
	SaveCompletedBlock(data []uint8) error

	// FinalizeContainer is called when save mode is left. The name is taken
	// from the first block if that block is a header.
	FinalizeContainer(name string) error
}
