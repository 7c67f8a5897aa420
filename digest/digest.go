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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/dotneteer/spectnetgo/hardware"
)

// Digest is implemented by all digest types.
type Digest interface {
	Hash() string
	ResetDigest()
}

// the area of memory read by the ULA. pixels followed by attributes
const (
	screenAddress = 0x4000
	screenLength  = 0x1b00
)

// Screen is a chained hash of the screen memory at the end of every frame.
type Screen struct {
	spec   *hardware.Spectrum
	digest [sha1.Size]byte

	// the previous digest, the screen memory and the border colour
	data []uint8

	frames int
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The digest is attached to the machine and updated at the end of every
// frame from now on.
func NewScreen(spec *hardware.Spectrum) *Screen {
	dig := &Screen{
		spec: spec,
		data: make([]uint8, sha1.Size+screenLength+1),
	}
	spec.Attach(dig)
	return dig
}

// Hash implements the Digest interface.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Screen) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frames = 0
}

// Frames returns the number of frames included in the hash.
func (dig *Screen) Frames() int {
	return dig.frames
}

func (dig *Screen) String() string {
	return fmt.Sprintf("%s (%d frames)", dig.Hash(), dig.frames)
}

// Reset implements the hardware.Resetter interface.
func (dig *Screen) Reset() {
	dig.ResetDigest()
}

// OnNewFrame implements the hardware.FrameBound interface.
func (dig *Screen) OnNewFrame() {
}

// OnFrameCompleted implements the hardware.FrameBound interface.
func (dig *Screen) OnFrameCompleted() {
	n := copy(dig.data, dig.digest[:])
	for i := 0; i < screenLength; i++ {
		dig.data[n+i] = dig.spec.Mem.UlaRead(uint16(screenAddress + i))
	}
	dig.data[n+screenLength] = dig.spec.ULA.BorderColor()

	dig.digest = sha1.Sum(dig.data)
	dig.frames++
}
