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

import "fmt"

// RenderingTact describes a single tact of the frame.
type RenderingTact struct {
	Phase Phase

	// the addresses of the pixel and attribute bytes fetched during the tact.
	// only meaningful if the phase is a fetching phase
	PixelByteAddress uint16
	AttributeAddress uint16

	// the number of tacts a CPU access to contended memory is delayed by
	Contention int

	// the position on the visible screen of the two pixels drawn during the
	// tact. only meaningful if the phase is not None
	XPos int
	YPos int
}

func (rt RenderingTact) String() string {
	return fmt.Sprintf("%s (%d,%d) contention=%d", rt.Phase, rt.XPos, rt.YPos, rt.Contention)
}

// the contention delay for each tact of a group of eight. the last two
// entries apply to the two tacts before the group begins
var contentionPattern = [8]int{4, 3, 2, 1, 0, 0, 6, 5}

// Table is the rendering tact table for a screen configuration.
type Table struct {
	cfg   Configuration
	tacts []RenderingTact
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable(cfg Configuration) *Table {
	tbl := &Table{
		cfg:   cfg,
		tacts: make([]RenderingTact, cfg.FrameTacts),
	}

	for tact := range tbl.tacts {
		tbl.tacts[tact] = tbl.describe(tact/cfg.LineTime, tact%cfg.LineTime)
	}

	return tbl
}

// Configuration returns the screen configuration the table was built for.
func (tbl *Table) Configuration() Configuration {
	return tbl.cfg
}

func (tbl *Table) describe(line int, tactInLine int) RenderingTact {
	cfg := tbl.cfg
	rt := RenderingTact{}

	// contention starts two tacts before the first pixel of a display line
	// and ends two tacts before the last
	if line >= cfg.FirstDisplayLine && line <= cfg.LastDisplayLine {
		c := tactInLine - cfg.FirstPixelTactInLine
		if c >= -2 && c < cfg.DisplayLineTime-2 {
			rt.Contention = contentionPattern[c&7]
		}
	}

	if !cfg.IsTactVisible(line, tactInLine) {
		return rt
	}

	rt.XPos = 2 * (tactInLine - cfg.HorizontalBlankingTime)
	rt.YPos = line - cfg.VerticalSyncLines - cfg.NonVisibleBorderTopLines

	if !cfg.IsTactInDisplayArea(line, tactInLine) {
		rt.Phase = Border
		if line >= cfg.FirstDisplayLine && line <= cfg.LastDisplayLine {
			switch tactInLine {
			case cfg.FirstPixelTactInLine - cfg.PixelDataPrefetchTime:
				rt.Phase = BorderFetchPixel
				rt.PixelByteAddress = tbl.pixelAddress(line, tactInLine+cfg.PixelDataPrefetchTime)
			case cfg.FirstPixelTactInLine - cfg.AttributeDataPrefetchTime:
				rt.Phase = BorderFetchAttr
				rt.AttributeAddress = tbl.attributeAddress(line, tactInLine+cfg.AttributeDataPrefetchTime)
			}
		}
		return rt
	}

	pixelTact := tactInLine - cfg.FirstPixelTactInLine
	lastGroup := pixelTact >= cfg.DisplayLineTime-8

	switch pixelTact & 7 {
	case 0, 1:
		rt.Phase = DisplayB1
	case 2:
		rt.Phase = DisplayB1FetchB2
		rt.PixelByteAddress = tbl.pixelAddress(line, tactInLine+2)
	case 3:
		rt.Phase = DisplayB1FetchA2
		rt.AttributeAddress = tbl.attributeAddress(line, tactInLine+1)
	case 4, 5:
		rt.Phase = DisplayB2
	case 6:
		if lastGroup {
			rt.Phase = DisplayB2
		} else {
			rt.Phase = DisplayB2FetchB1
			rt.PixelByteAddress = tbl.pixelAddress(line, tactInLine+2)
		}
	case 7:
		if lastGroup {
			rt.Phase = DisplayB2
		} else {
			rt.Phase = DisplayB2FetchA1
			rt.AttributeAddress = tbl.attributeAddress(line, tactInLine+1)
		}
	}

	return rt
}

// the address of the pixel byte drawn at the tact in the line. the bits of
// the row are interleaved in the address as 010 V7 V6 V2 V1 V0 V5 V4 V3 C4 C3
// C2 C1 C0
func (tbl *Table) pixelAddress(line int, tactInLine int) uint16 {
	row := line - tbl.cfg.FirstDisplayLine
	column := 2 * (tactInLine - tbl.cfg.FirstPixelTactInLine)
	da := 0x4000 | column>>3 | row<<5
	return uint16(da&0xf81f | (da&0x0700)>>3 | (da&0x00e0)<<3)
}

// the address of the attribute byte for the tact in the line
func (tbl *Table) attributeAddress(line int, tactInLine int) uint16 {
	row := line - tbl.cfg.FirstDisplayLine
	column := 2 * (tactInLine - tbl.cfg.FirstPixelTactInLine)
	return uint16(0x5800 + column>>3 + (row>>3)<<5)
}

// Tact returns the description of the tact in the frame. Tacts beyond the
// end of the frame wrap around.
func (tbl *Table) Tact(tact int) RenderingTact {
	return tbl.tacts[tbl.wrap(tact)]
}

func (tbl *Table) wrap(tact int) int {
	tact %= tbl.cfg.FrameTacts
	if tact < 0 {
		tact += tbl.cfg.FrameTacts
	}
	return tact
}

// GetContentionValue returns the contention delay for a CPU access to
// contended memory at the tact in the frame.
func (tbl *Table) GetContentionValue(tact int) int {
	return tbl.tacts[tbl.wrap(tact)].Contention
}

// FetchAddress returns the address the ULA is reading from during the tact.
// Returns false if the ULA is not reading memory during the tact.
func (tbl *Table) FetchAddress(tact int) (uint16, bool) {
	rt := tbl.tacts[tbl.wrap(tact)]
	switch {
	case rt.Phase.IsPixelFetch():
		return rt.PixelByteAddress, true
	case rt.Phase.IsAttributeFetch():
		return rt.AttributeAddress, true
	}
	return 0, false
}
