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

package instructions

// Prefix identifies the opcode table.
type Prefix int

// List of opcode tables.
const (
	Unprefixed Prefix = iota
	CB
	ED
	DD
	FD
	DDCB
	FDCB
	numPrefixes
)

func (p Prefix) String() string {
	switch p {
	case Unprefixed:
		return ""
	case CB:
		return "CB"
	case ED:
		return "ED"
	case DD:
		return "DD"
	case FD:
		return "FD"
	case DDCB:
		return "DDCB"
	case FDCB:
		return "FDCB"
	}
	return "unknown prefix"
}

// IsIndexed returns true if the prefix selects an index register.
func (p Prefix) IsIndexed() bool {
	return p == DD || p == FD || p == DDCB || p == FDCB
}

// Index returns the name of the index register selected by the prefix. Empty
// string if the prefix does not select an index register.
func (p Prefix) Index() string {
	switch p {
	case DD, DDCB:
		return "IX"
	case FD, FDCB:
		return "IY"
	}
	return ""
}

// List of prefix opcodes.
const (
	PrefixCB = 0xcb
	PrefixED = 0xed
	PrefixDD = 0xdd
	PrefixFD = 0xfd
)
