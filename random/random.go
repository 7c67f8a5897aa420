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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is the source of emulated time for the Random type.
type Clock interface {
	Tacts() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation.
type Random struct {
	clk Clock

	// the sequence used by Untimed(). created on first use
	seq *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// clock argument can be nil in which case Timed() behaves as though the clock
// is stopped at zero.
func NewRandom(clk Clock) *Random {
	return &Random{
		clk: clk,
	}
}

// AttachClock sets the clock used by Timed() and Fill(). Used when the
// Random instance is created before the emulated machine.
func (rnd *Random) AttachClock(clk Clock) {
	rnd.clk = clk
}

func (rnd *Random) seed() int64 {
	if rnd.ZeroSeed {
		return 0
	}
	return baseSeed
}

func (rnd *Random) tacts() int64 {
	if rnd.clk == nil {
		return 0
	}
	return int64(rnd.clk.Tacts())
}

// Timed returns a random number in the range 0 to n-1. The number is
// determined by the current tact count of the emulation.
func (rnd *Random) Timed(n int) int {
	return rand.New(rand.NewSource(rnd.seed() + rnd.tacts())).Intn(n)
}

// Untimed returns the next number in the range 0 to n-1 from the random
// sequence.
func (rnd *Random) Untimed(n int) int {
	if rnd.seq == nil {
		rnd.seq = rand.New(rand.NewSource(rnd.seed()))
	}
	return rnd.seq.Intn(n)
}

// Fill puts random values in the slice. Values are determined by the current
// tact count of the emulation.
func (rnd *Random) Fill(data []uint8) {
	r := rand.New(rand.NewSource(rnd.seed() + rnd.tacts()))
	for i := range data {
		data[i] = uint8(r.Intn(256))
	}
}
