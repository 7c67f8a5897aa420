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
	"encoding/binary"
	"io"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware/tape"
)

// Sentinel error patterns.
const (
	BadTap = "tapeformat: tap: %v"
)

// TapPauseMs is the pause after each block of a TAP file.
const TapPauseMs = 1000

// ReadTap returns the blocks of a TAP file.
func ReadTap(data []uint8) ([][]uint8, error) {
	var blocks [][]uint8

	for i := 0; i < len(data); {
		if i+2 > len(data) {
			return nil, curated.Errorf(BadTap, "truncated block length")
		}
		l := int(binary.LittleEndian.Uint16(data[i:]))
		i += 2
		if i+l > len(data) {
			return nil, curated.Errorf(BadTap, "truncated block")
		}
		blocks = append(blocks, data[i:i+l])
		i += l
	}

	return blocks, nil
}

// WriteTap writes the blocks in TAP format.
func WriteTap(w io.Writer, blocks [][]uint8) error {
	for _, b := range blocks {
		if len(b) > 0xffff {
			return curated.Errorf(BadTap, "block too long")
		}
		var l [2]uint8
		binary.LittleEndian.PutUint16(l[:], uint16(len(b)))
		if _, err := w.Write(l[:]); err != nil {
			return curated.Errorf(BadTap, err)
		}
		if _, err := w.Write(b); err != nil {
			return curated.Errorf(BadTap, err)
		}
	}
	return nil
}

// NewTapPlayer creates a player for the blocks of a TAP file.
func NewTapPlayer(data []uint8) (*tape.BlockSetPlayer, error) {
	blocks, err := ReadTap(data)
	if err != nil {
		return nil, err
	}

	playback := make([]tape.BlockPlayback, 0, len(blocks))
	for _, b := range blocks {
		playback = append(playback, tape.NewDataBlockPlayer(b, TapPauseMs))
	}
	return tape.NewBlockSetPlayer(playback), nil
}
