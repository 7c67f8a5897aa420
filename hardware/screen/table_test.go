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

package screen_test

import (
	"testing"

	"github.com/dotneteer/spectnetgo/hardware/screen"
	"github.com/dotneteer/spectnetgo/test"
)

func TestConfiguration(t *testing.T) {
	cfg := screen.Spectrum48
	test.ExpectEquality(t, cfg.LineTime, 224)
	test.ExpectEquality(t, cfg.FrameTacts, 69888)
	test.ExpectEquality(t, cfg.Lines(), 312)
	test.ExpectEquality(t, cfg.FirstDisplayLine, 64)
	test.ExpectEquality(t, cfg.LastDisplayLine, 255)
	test.ExpectEquality(t, cfg.FirstDisplayPixelTact, 14400)
	test.ExpectEquality(t, cfg.ScreenWidth, 352)
	test.ExpectEquality(t, cfg.ScreenLines, 288)

	cfg = screen.Spectrum128
	test.ExpectEquality(t, cfg.LineTime, 228)
	test.ExpectEquality(t, cfg.FrameTacts, 70908)
	test.ExpectEquality(t, cfg.Lines(), 311)
	test.ExpectEquality(t, cfg.FirstDisplayLine, 63)
	test.ExpectEquality(t, cfg.FirstDisplayPixelTact, 14428)
}

func TestContention(t *testing.T) {
	for _, cfg := range []screen.Configuration{screen.Spectrum48, screen.Spectrum128} {
		tbl := screen.NewTable(cfg)
		first := cfg.FirstDisplayPixelTact

		// contention starts two tacts before the first pixel
		expected := []int{6, 5, 4, 3, 2, 1, 0, 0, 6, 5, 4}
		for i, e := range expected {
			test.ExpectEquality(t, tbl.GetContentionValue(first-2+i), e, cfg.ID, i)
		}

		// no contention outside of the display lines
		test.ExpectEquality(t, tbl.GetContentionValue(first-3), 0, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(first-cfg.LineTime), 0, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(0), 0, cfg.ID)

		// last group of the line. nothing is fetched after it so the last two
		// tacts are not contended
		end := first + cfg.DisplayLineTime
		test.ExpectEquality(t, tbl.GetContentionValue(end-10), 6, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(end-8), 4, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(end-5), 1, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(end-2), 0, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(end-1), 0, cfg.ID)

		// the next line follows the same pattern
		test.ExpectEquality(t, tbl.GetContentionValue(first+cfg.LineTime-2), 6, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(first+cfg.LineTime+3), 1, cfg.ID)

		// the last display line
		last := first + (cfg.DisplayLines-1)*cfg.LineTime
		test.ExpectEquality(t, tbl.GetContentionValue(last-2), 6, cfg.ID)
		test.ExpectEquality(t, tbl.GetContentionValue(last+cfg.LineTime-2), 0, cfg.ID)

		// tacts wrap around the frame
		test.ExpectEquality(t, tbl.GetContentionValue(first-2+cfg.FrameTacts), 6, cfg.ID)
	}
}

func TestPhases(t *testing.T) {
	cfg := screen.Spectrum48
	tbl := screen.NewTable(cfg)
	first := cfg.FirstDisplayPixelTact

	test.ExpectEquality(t, tbl.Tact(0).Phase, screen.None)
	test.ExpectEquality(t, tbl.Tact(first-3).Phase, screen.Border)
	test.ExpectEquality(t, tbl.Tact(first-2).Phase, screen.BorderFetchPixel)
	test.ExpectEquality(t, tbl.Tact(first-1).Phase, screen.BorderFetchAttr)

	phases := []screen.Phase{
		screen.DisplayB1, screen.DisplayB1, screen.DisplayB1FetchB2, screen.DisplayB1FetchA2,
		screen.DisplayB2, screen.DisplayB2, screen.DisplayB2FetchB1, screen.DisplayB2FetchA1,
	}
	for i, p := range phases {
		test.ExpectEquality(t, tbl.Tact(first+i).Phase, p, i)
	}

	// nothing is fetched after the last group of the line
	end := first + cfg.DisplayLineTime
	test.ExpectEquality(t, tbl.Tact(end-6).Phase, screen.DisplayB1FetchB2)
	test.ExpectEquality(t, tbl.Tact(end-2).Phase, screen.DisplayB2)
	test.ExpectEquality(t, tbl.Tact(end-1).Phase, screen.DisplayB2)
	test.ExpectEquality(t, tbl.Tact(end).Phase, screen.Border)

	// the top left corner of the visible screen
	rt := tbl.Tact(16*cfg.LineTime + cfg.HorizontalBlankingTime)
	test.ExpectEquality(t, rt.Phase, screen.Border)
	test.ExpectEquality(t, rt.XPos, 0)
	test.ExpectEquality(t, rt.YPos, 0)

	rt = tbl.Tact(first)
	test.ExpectEquality(t, rt.XPos, 2*cfg.BorderLeftTime)
	test.ExpectEquality(t, rt.YPos, cfg.BorderTopLines)
}

func TestFetchAddresses(t *testing.T) {
	cfg := screen.Spectrum48
	tbl := screen.NewTable(cfg)
	first := cfg.FirstDisplayPixelTact

	for _, c := range []struct {
		tact    int
		address uint16
		fetch   bool
	}{
		{first - 3, 0, false},
		{first - 2, 0x4000, true},
		{first - 1, 0x5800, true},
		{first, 0, false},
		{first + 1, 0, false},
		{first + 2, 0x4001, true},
		{first + 3, 0x5801, true},
		{first + 4, 0, false},
		{first + 6, 0x4002, true},
		{first + 7, 0x5802, true},
		{first + 8, 0, false},
		{first + 10, 0x4003, true},

		// the second byte of the last group of the line
		{first + cfg.DisplayLineTime - 6, 0x401f, true},
		{first + cfg.DisplayLineTime - 5, 0x581f, true},
		{first + cfg.DisplayLineTime - 2, 0, false},

		// the second and ninth pixel rows are in a different third of the
		// character cell
		{first + cfg.LineTime - 2, 0x4100, true},
		{first + cfg.LineTime - 1, 0x5800, true},
		{first + 8*cfg.LineTime - 2, 0x4020, true},
		{first + 8*cfg.LineTime - 1, 0x5820, true},

		// the first row of the middle third of the screen
		{first + 64*cfg.LineTime - 2, 0x4800, true},
		{first + 64*cfg.LineTime - 1, 0x5900, true},
	} {
		address, ok := tbl.FetchAddress(c.tact)
		test.ExpectEquality(t, ok, c.fetch, c.tact)
		test.ExpectEquality(t, address, c.address, c.tact)
	}
}

func TestCoords(t *testing.T) {
	cfg := screen.Spectrum48
	tacts := uint64(cfg.FrameTacts + cfg.LineTime + 5)

	c := cfg.Coords(tacts)
	test.ExpectEquality(t, c, screen.Coords{Frame: 1, Line: 1, Tact: 5})
	test.ExpectEquality(t, cfg.Sum(c), int(tacts))

	c.Frame = screen.FrameIsUndefined
	test.ExpectEquality(t, cfg.Sum(c), cfg.LineTime+5)
	test.ExpectSuccess(t, screen.Equal(c, screen.Coords{Frame: 3, Line: 1, Tact: 5}))

	a := screen.Coords{Frame: 1, Line: 10, Tact: 0}
	b := screen.Coords{Frame: 1, Line: 9, Tact: 200}
	test.ExpectSuccess(t, screen.GreaterThan(a, b))
	test.ExpectSuccess(t, screen.GreaterThanOrEqual(a, a))
	test.ExpectFailure(t, screen.GreaterThan(b, a))
}
