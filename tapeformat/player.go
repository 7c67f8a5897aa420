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
	"github.com/dotneteer/spectnetgo/hardware/tape"
)

// NewPlayer creates a player for the content of a TZX or a TAP file. Data
// that starts with the TZX signature is read as a TZX file, anything else as
// a TAP file.
func NewPlayer(data []uint8) (*tape.BlockSetPlayer, error) {
	if IsTzx(data) {
		tzx, err := ReadTzx(data)
		if err != nil {
			return nil, err
		}
		return tape.NewBlockSetPlayer(tzx.Blocks), nil
	}
	return NewTapPlayer(data)
}

// DataBlocks returns the data of every block in the player that carries
// data.
func DataBlocks(player *tape.BlockSetPlayer) [][]uint8 {
	var blocks [][]uint8
	for _, b := range player.Blocks() {
		if d, ok := b.(tape.DataBlock); ok {
			blocks = append(blocks, d.Data())
		}
	}
	return blocks
}
