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

import (
	"fmt"
	"strings"
)

// Format the mnemonic of the definition with the operand data. The data is
// the sequence of bytes that follow the opcode(s) in memory. The address is
// the address of the first byte of the instruction and is used to resolve
// relative jumps.
//
// Placeholders that cannot be resolved because there is not enough data are
// left in place.
func Format(defn *Definition, data []uint8, address uint16) string {
	if defn == nil {
		return "??"
	}

	m := strings.SplitN(defn.Mnemonic, " ", 2)
	if len(m) < 2 {
		return defn.Mnemonic
	}

	next := func(n int) (uint16, bool) {
		if len(data) < n {
			return 0, false
		}
		var v uint16
		if n == 2 {
			v = uint16(data[0]) | uint16(data[1])<<8
		} else {
			v = uint16(data[0])
		}
		data = data[n:]
		return v, true
	}

	ops := strings.Split(m[1], ",")
	for i, op := range ops {
		switch {
		case op == "nn" || op == "(nn)":
			if v, ok := next(2); ok {
				ops[i] = strings.Replace(op, "nn", fmt.Sprintf("$%04x", v), 1)
			}
		case op == "n" || op == "(n)":
			if v, ok := next(1); ok {
				ops[i] = strings.Replace(op, "n", fmt.Sprintf("$%02x", v), 1)
			}
		case op == "e":
			if v, ok := next(1); ok {
				target := address + uint16(defn.Bytes) + uint16(int8(v))
				ops[i] = fmt.Sprintf("$%04x", target)
			}
		case strings.HasSuffix(op, "+d)"):
			if v, ok := next(1); ok {
				d := int8(v)
				if d < 0 {
					ops[i] = strings.Replace(op, "+d", fmt.Sprintf("-$%02x", -int(d)), 1)
				} else {
					ops[i] = strings.Replace(op, "+d", fmt.Sprintf("+$%02x", d), 1)
				}
			}
		}
	}

	return fmt.Sprintf("%s %s", m[0], strings.Join(ops, ","))
}
