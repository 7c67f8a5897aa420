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

// Phase describes what the ULA is doing during a tact.
type Phase int

// List of valid Phase values. The display area of a line is drawn in groups
// of eight tacts (two pixel bytes). The first pixel byte of a group and its
// attribute are fetched in the last two tacts of the previous group, or of
// the border for the first group of a line. The second byte and its
// attribute are fetched while the first byte is drawn.
const (
	// the tact is not visible
	None Phase = iota

	Border

	// border tacts that fetch the pixel and attribute byte of the first
	// group of the line
	BorderFetchPixel
	BorderFetchAttr

	// drawing the first pixel byte of a group
	DisplayB1
	DisplayB1FetchB2
	DisplayB1FetchA2

	// drawing the second pixel byte of a group
	DisplayB2
	DisplayB2FetchB1
	DisplayB2FetchA1
)

func (p Phase) String() string {
	switch p {
	case None:
		return "none"
	case Border:
		return "border"
	case BorderFetchPixel:
		return "border (fetch pixel)"
	case BorderFetchAttr:
		return "border (fetch attribute)"
	case DisplayB1:
		return "display B1"
	case DisplayB1FetchB2:
		return "display B1 (fetch B2)"
	case DisplayB1FetchA2:
		return "display B1 (fetch A2)"
	case DisplayB2:
		return "display B2"
	case DisplayB2FetchB1:
		return "display B2 (fetch B1)"
	case DisplayB2FetchA1:
		return "display B2 (fetch A1)"
	}
	return "unknown phase"
}

// IsPixelFetch returns true if the ULA fetches a pixel byte during the phase.
func (p Phase) IsPixelFetch() bool {
	return p == BorderFetchPixel || p == DisplayB1FetchB2 || p == DisplayB2FetchB1
}

// IsAttributeFetch returns true if the ULA fetches an attribute byte during
// the phase.
func (p Phase) IsAttributeFetch() bool {
	return p == BorderFetchAttr || p == DisplayB1FetchA2 || p == DisplayB2FetchA1
}
