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

package ports

// Keyboard is the Spectrum keyboard matrix. The keyboard is arranged in
// eight half-rows of five keys. A half-row is selected for reading by
// resetting the corresponding bit in the high byte of the port address.
//
//	half-row  address bit  keys (bit 0 to bit 4)
//	--------  -----------  ---------------------
//	0         A8           CAPS SHIFT, Z, X, C, V
//	1         A9           A, S, D, F, G
//	2         A10          Q, W, E, R, T
//	3         A11          1, 2, 3, 4, 5
//	4         A12          0, 9, 8, 7, 6
//	5         A13          P, O, I, U, Y
//	6         A14          ENTER, L, K, J, H
//	7         A15          SPACE, SYMBOL SHIFT, M, N, B
type Keyboard struct {
	// one bit per pressed key
	rows [8]uint8
}

// KeyDown presses the key at bit (0 to 4) of the half-row (0 to 7).
func (kb *Keyboard) KeyDown(row int, bit int) {
	kb.rows[row&0x07] |= 1 << (bit % 5)
}

// KeyUp releases the key at bit (0 to 4) of the half-row (0 to 7).
func (kb *Keyboard) KeyUp(row int, bit int) {
	kb.rows[row&0x07] &^= 1 << (bit % 5)
}

// Reset releases all keys.
func (kb *Keyboard) Reset() {
	kb.rows = [8]uint8{}
}

// LineStatus returns the state of the half-rows selected by the high byte
// of a port address. A pressed key reads as a reset bit. Bits 5 to 7 are
// always set.
func (kb *Keyboard) LineStatus(high uint8) uint8 {
	v := uint8(0xff)
	for i := 0; i < 8; i++ {
		if high&(1<<i) == 0 {
			v &^= kb.rows[i]
		}
	}
	return v
}
