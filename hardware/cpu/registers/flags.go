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

package registers

import "strings"

// Flags represents the contents of the F register.
type Flags uint8

// List of flag bits.
const (
	C  Flags = 0x01 // carry
	N  Flags = 0x02 // add/subtract
	PV Flags = 0x04 // parity/overflow
	X  Flags = 0x08 // undocumented (bit 3)
	H  Flags = 0x10 // half carry
	Y  Flags = 0x20 // undocumented (bit 5)
	Z  Flags = 0x40 // zero
	S  Flags = 0x80 // sign
)

// XY is a mask for the two undocumented flags.
const XY = X | Y

// Label returns the canonical name for the flags register.
func (f Flags) Label() string {
	return "F"
}

// String returns the flags as a string of letters, upper case for a set flag
// and lower case for a clear flag. In order: SZYHXPNC.
func (f Flags) String() string {
	s := strings.Builder{}
	for _, b := range []struct {
		flag Flags
		r    rune
	}{
		{S, 'S'}, {Z, 'Z'}, {Y, 'Y'}, {H, 'H'}, {X, 'X'}, {PV, 'P'}, {N, 'N'}, {C, 'C'},
	} {
		if f&b.flag == b.flag {
			s.WriteRune(b.r)
		} else {
			s.WriteRune(b.r + ('a' - 'A'))
		}
	}
	return s.String()
}

// Is returns true if all the bits in flag are set.
func (f Flags) Is(flag Flags) bool {
	return f&flag == flag
}

// Set or clear the bits in flag.
func (f *Flags) Set(flag Flags, v bool) {
	if v {
		*f |= flag
	} else {
		*f &^= flag
	}
}
