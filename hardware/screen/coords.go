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

// FrameIsUndefined is used to indicate that the Frame field of the Coords
// struct is to be ignored.
const FrameIsUndefined = ^(0)

// Coords is a position in time measured from the point of view of the
// screen: a frame, a line in the frame and a tact in the line.
type Coords struct {
	Frame int
	Line  int
	Tact  int
}

func (c Coords) String() string {
	if c.Frame == FrameIsUndefined {
		return fmt.Sprintf("Line: %03d  Tact: %03d", c.Line, c.Tact)
	}
	return fmt.Sprintf("Frame: %d  Line: %03d  Tact: %03d", c.Frame, c.Line, c.Tact)
}

// Coords returns the coordinates of an absolute tact count. The tact count is
// measured from the start of the first frame.
func (cfg Configuration) Coords(tacts uint64) Coords {
	frameTact := int(tacts % uint64(cfg.FrameTacts))
	return Coords{
		Frame: int(tacts / uint64(cfg.FrameTacts)),
		Line:  frameTact / cfg.LineTime,
		Tact:  frameTact % cfg.LineTime,
	}
}

// Sum returns the number of tacts represented by the coordinates. If the
// Frame field is undefined then the result is the tact within the frame.
func (cfg Configuration) Sum(c Coords) int {
	s := c.Line*cfg.LineTime + c.Tact
	if c.Frame == FrameIsUndefined {
		return s
	}
	return c.Frame*cfg.FrameTacts + s
}

// Equal compares two instances of Coords and return true if both are equal.
//
// If the Frame field is undefined for either argument then the Frame field is
// ignored for the test.
func Equal(A, B Coords) bool {
	if A.Frame == FrameIsUndefined || B.Frame == FrameIsUndefined {
		return A.Line == B.Line && A.Tact == B.Tact
	}
	return A == B
}

// GreaterThanOrEqual compares two instances of Coords and return true if A is
// greater than or equal to B.
func GreaterThanOrEqual(A, B Coords) bool {
	return Equal(A, B) || GreaterThan(A, B)
}

// GreaterThan compares two instances of Coords and return true if A is
// greater than to B.
func GreaterThan(A, B Coords) bool {
	if A.Frame == FrameIsUndefined || B.Frame == FrameIsUndefined {
		return A.Line > B.Line || (A.Line == B.Line && A.Tact > B.Tact)
	}
	return A.Frame > B.Frame || (A.Frame == B.Frame && A.Line > B.Line) || (A.Frame == B.Frame && A.Line == B.Line && A.Tact > B.Tact)
}
