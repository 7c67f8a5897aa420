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

package script

import "github.com/dotneteer/spectnetgo/hardware/cpu/registers"

var pairs = map[string]func(r *registers.File) *uint16{
	"af":  func(r *registers.File) *uint16 { return &r.AF },
	"bc":  func(r *registers.File) *uint16 { return &r.BC },
	"de":  func(r *registers.File) *uint16 { return &r.DE },
	"hl":  func(r *registers.File) *uint16 { return &r.HL },
	"af'": func(r *registers.File) *uint16 { return &r.AltAF },
	"bc'": func(r *registers.File) *uint16 { return &r.AltBC },
	"de'": func(r *registers.File) *uint16 { return &r.AltDE },
	"hl'": func(r *registers.File) *uint16 { return &r.AltHL },
	"ix":  func(r *registers.File) *uint16 { return &r.IX },
	"iy":  func(r *registers.File) *uint16 { return &r.IY },
	"sp":  func(r *registers.File) *uint16 { return &r.SP },
	"pc":  func(r *registers.File) *uint16 { return &r.PC },
	"ir":  func(r *registers.File) *uint16 { return &r.IR },
	"wz":  func(r *registers.File) *uint16 { return &r.WZ },
}

// an eight bit register is one half of a pair
type half struct {
	pair string
	hi   bool
}

var halves = map[string]half{
	"a":  {"af", true},
	"f":  {"af", false},
	"b":  {"bc", true},
	"c":  {"bc", false},
	"d":  {"de", true},
	"e":  {"de", false},
	"h":  {"hl", true},
	"l":  {"hl", false},
	"xh": {"ix", true},
	"xl": {"ix", false},
	"yh": {"iy", true},
	"yl": {"iy", false},
	"i":  {"ir", true},
	"r":  {"ir", false},
}

func getRegister(r *registers.File, name string) (int, bool) {
	if p, ok := pairs[name]; ok {
		return int(*p(r)), true
	}
	if h, ok := halves[name]; ok {
		v := *pairs[h.pair](r)
		if h.hi {
			return int(v >> 8), true
		}
		return int(v & 0xff), true
	}
	return 0, false
}

func setRegister(r *registers.File, name string, value int) bool {
	if p, ok := pairs[name]; ok {
		*p(r) = uint16(value)
		return true
	}
	if h, ok := halves[name]; ok {
		p := pairs[h.pair](r)
		if h.hi {
			*p = (*p & 0x00ff) | uint16(value&0xff)<<8
		} else {
			*p = (*p & 0xff00) | uint16(value&0xff)
		}
		return true
	}
	return false
}
