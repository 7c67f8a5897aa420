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

// BlockSetPlayer plays a list of blocks one after the other.
type BlockSetPlayer struct {
	blocks []BlockPlayback
	index  int
	eof    bool
}

// NewBlockSetPlayer is the preferred method of initialisation for the
// BlockSetPlayer type.
func NewBlockSetPlayer(blocks []BlockPlayback) *BlockSetPlayer {
	return &BlockSetPlayer{blocks: blocks, eof: true}
}

// Blocks returns the blocks in the set.
func (p *BlockSetPlayer) Blocks() []BlockPlayback {
	return p.blocks
}

// InitPlay implements the Player interface.
func (p *BlockSetPlayer) InitPlay(tact uint64) {
	p.index = 0
	p.eof = len(p.blocks) == 0
	if !p.eof {
		p.blocks[0].InitPlay(tact)
	}
}

// Eof implements the Player interface.
func (p *BlockSetPlayer) Eof() bool {
	return p.eof
}

// GetEarBit implements the Player interface.
func (p *BlockSetPlayer) GetEarBit(tact uint64) bool {
	if p.eof {
		return true
	}
	cur := p.blocks[p.index]
	bit := cur.GetEarBit(tact)
	if cur.PlayPhase() == PhaseCompleted {
		p.NextBlock(tact)
	}
	return bit
}

// CurrentBlock implements the BlockPlayer interface.
func (p *BlockSetPlayer) CurrentBlock() BlockPlayback {
	if p.eof {
		return nil
	}
	return p.blocks[p.index]
}

// NextBlock implements the BlockPlayer interface.
func (p *BlockSetPlayer) NextBlock(tact uint64) {
	if p.eof {
		return
	}
	p.index++
	if p.index >= len(p.blocks) {
		p.eof = true
		return
	}
	p.blocks[p.index].InitPlay(tact)
}
