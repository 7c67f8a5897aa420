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

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	Normal Category = iota

	// jumps and returns
	Flow

	// CALL and conditional CALL
	Subroutine

	// RST
	Restart

	Halt

	// the repeating block instructions. LDIR, CPIR, INIR, OTIR and the
	// decrementing forms
	BlockRepeat

	// DI, EI and IM
	Interrupt

	// port input and output
	IO
)

func (e Category) String() string {
	switch e {
	case Normal:
		return "Normal"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Restart:
		return "Restart"
	case Halt:
		return "Halt"
	case BlockRepeat:
		return "BlockRepeat"
	case Interrupt:
		return "Interrupt"
	case IO:
		return "IO"
	}
	return "unknown effect"
}
