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

package cpu

import "strings"

// Signals is the state of the input lines of the CPU, along with the HALTED
// output line.
type Signals uint8

// List of valid signals. More than one signal can be active at once.
const (
	SigINT Signals = 1 << iota
	SigNMI
	SigRESET
	SigHALTED
)

// SigNone indicates that no signals are active.
const SigNone Signals = 0

func (s Signals) String() string {
	if s == SigNone {
		return "none"
	}

	var b strings.Builder
	for _, v := range []struct {
		sig   Signals
		label string
	}{
		{SigINT, "INT"}, {SigNMI, "NMI"}, {SigRESET, "RESET"}, {SigHALTED, "HALTED"},
	} {
		if s&v.sig == v.sig {
			if b.Len() > 0 {
				b.WriteRune('|')
			}
			b.WriteString(v.label)
		}
	}
	return b.String()
}
