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

package random_test

import (
	"testing"

	"github.com/dotneteer/spectnetgo/random"
	"github.com/dotneteer/spectnetgo/test"
)

type clock struct {
	tacts uint64
}

func (c *clock) Tacts() uint64 {
	return c.tacts
}

func TestTimed(t *testing.T) {
	clk := &clock{tacts: 69888}
	a := random.NewRandom(clk)
	b := random.NewRandom(clk)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Timed(i), b.Timed(i))
	}
}

func TestUntimed(t *testing.T) {
	a := random.NewRandom(nil)
	b := random.NewRandom(nil)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Untimed(i), b.Untimed(i))
	}
}

func TestFill(t *testing.T) {
	clk := &clock{tacts: 100}
	a := random.NewRandom(clk)
	a.ZeroSeed = true

	x := make([]uint8, 64)
	y := make([]uint8, 64)
	a.Fill(x)
	a.Fill(y)

	for i := range x {
		test.ExpectEquality(t, x[i], y[i])
	}
}
