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

package screen

// ConfigList is the list of screen configurations the emulation supports.
var ConfigList = []string{"48", "128"}

// Configuration defines the timing of the screen of a Spectrum model. All
// times are measured in CPU tacts. Every tact the ULA draws two pixels.
type Configuration struct {
	ID string

	// the clock frequency of the CPU in Hz
	ClockFrequency int

	// the tact of the frame at which the ULA raises the interrupt signal
	InterruptTact int

	// the number of lines in each part of the frame, from the top
	VerticalSyncLines           int
	NonVisibleBorderTopLines    int
	BorderTopLines              int
	DisplayLines                int
	BorderBottomLines           int
	NonVisibleBorderBottomLines int

	// the number of tacts in each part of a line, from the left
	HorizontalBlankingTime    int
	BorderLeftTime            int
	DisplayLineTime           int
	BorderRightTime           int
	NonVisibleBorderRightTime int

	// how many tacts before the display area of a line the first pixel and
	// attribute bytes are fetched
	PixelDataPrefetchTime     int
	AttributeDataPrefetchTime int

	// the remaining fields are calculated from the fields above

	// the number of tacts in a line and in the whole frame
	LineTime   int
	FrameTacts int

	// the first and last lines of the display area
	FirstDisplayLine int
	LastDisplayLine  int

	// the tact in a line at which the display area begins
	FirstPixelTactInLine int

	// the tact in a frame of the top left pixel of the display area
	FirstDisplayPixelTact int

	// the dimensions of the visible screen, including border, in pixels
	ScreenWidth int
	ScreenLines int

	// the number of frames per second
	FramesPerSecond float32
}

// Spectrum48 is the screen configuration of the 48K Spectrum.
var Spectrum48 Configuration

// Spectrum128 is the screen configuration of the 128K Spectrum.
var Spectrum128 Configuration

func init() {
	Spectrum48 = Configuration{
		ID:                          "48",
		ClockFrequency:              3500000,
		InterruptTact:               32,
		VerticalSyncLines:           8,
		NonVisibleBorderTopLines:    8,
		BorderTopLines:              48,
		DisplayLines:                192,
		BorderBottomLines:           48,
		NonVisibleBorderBottomLines: 8,
		HorizontalBlankingTime:      40,
		BorderLeftTime:              24,
		DisplayLineTime:             128,
		BorderRightTime:             24,
		NonVisibleBorderRightTime:   8,
		PixelDataPrefetchTime:       2,
		AttributeDataPrefetchTime:   1,
	}
	Spectrum48.calculate()

	Spectrum128 = Configuration{
		ID:                          "128",
		ClockFrequency:              3546900,
		InterruptTact:               14,
		VerticalSyncLines:           7,
		NonVisibleBorderTopLines:    8,
		BorderTopLines:              48,
		DisplayLines:                192,
		BorderBottomLines:           48,
		NonVisibleBorderBottomLines: 8,
		HorizontalBlankingTime:      40,
		BorderLeftTime:              24,
		DisplayLineTime:             128,
		BorderRightTime:             24,
		NonVisibleBorderRightTime:   12,
		PixelDataPrefetchTime:       2,
		AttributeDataPrefetchTime:   1,
	}
	Spectrum128.calculate()
}

func (cfg *Configuration) calculate() {
	cfg.FirstDisplayLine = cfg.VerticalSyncLines + cfg.NonVisibleBorderTopLines + cfg.BorderTopLines
	cfg.LastDisplayLine = cfg.FirstDisplayLine + cfg.DisplayLines - 1
	cfg.FirstPixelTactInLine = cfg.HorizontalBlankingTime + cfg.BorderLeftTime
	cfg.LineTime = cfg.FirstPixelTactInLine + cfg.DisplayLineTime + cfg.BorderRightTime + cfg.NonVisibleBorderRightTime
	cfg.FrameTacts = (cfg.FirstDisplayLine + cfg.DisplayLines + cfg.BorderBottomLines + cfg.NonVisibleBorderBottomLines) * cfg.LineTime
	cfg.FirstDisplayPixelTact = cfg.FirstDisplayLine*cfg.LineTime + cfg.FirstPixelTactInLine
	cfg.ScreenWidth = 2 * (cfg.BorderLeftTime + cfg.DisplayLineTime + cfg.BorderRightTime)
	cfg.ScreenLines = cfg.BorderTopLines + cfg.DisplayLines + cfg.BorderBottomLines
	cfg.FramesPerSecond = float32(cfg.ClockFrequency) / float32(cfg.FrameTacts)
}

// Lines returns the total number of lines in a frame.
func (cfg Configuration) Lines() int {
	return cfg.FrameTacts / cfg.LineTime
}

// IsTactVisible returns true if the tact in the line is drawn on the visible
// part of the screen, either the border or the display area.
func (cfg Configuration) IsTactVisible(line int, tactInLine int) bool {
	firstVisibleLine := cfg.VerticalSyncLines + cfg.NonVisibleBorderTopLines
	lastVisibleLine := firstVisibleLine + cfg.ScreenLines
	return line >= firstVisibleLine && line < lastVisibleLine &&
		tactInLine >= cfg.HorizontalBlankingTime &&
		tactInLine < cfg.LineTime-cfg.NonVisibleBorderRightTime
}

// IsTactInDisplayArea returns true if the tact in the line is drawn in the
// display area (the 256x192 pixels that are not the border).
func (cfg Configuration) IsTactInDisplayArea(line int, tactInLine int) bool {
	return line >= cfg.FirstDisplayLine && line <= cfg.LastDisplayLine &&
		tactInLine >= cfg.FirstPixelTactInLine &&
		tactInLine < cfg.FirstPixelTactInLine+cfg.DisplayLineTime
}
