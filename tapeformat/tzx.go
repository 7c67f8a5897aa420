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

package tapeformat

import (
	"bytes"
	"fmt"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware/tape"
)

// Sentinel error patterns.
const (
	BadTzx              = "tapeformat: tzx: %v"
	UnsupportedTzxBlock = "tapeformat: tzx: unsupported block type (%#02x)"
)

var tzxSignature = []uint8("ZXTape!\x1a")

// Tzx is the content of a TZX file.
type Tzx struct {
	Major uint8
	Minor uint8

	// the blocks that produce a signal
	Blocks []tape.BlockPlayback

	// descriptions found in group, text and archive information blocks
	Info []string
}

// IsTzx returns true if the data starts with the TZX signature.
func IsTzx(data []uint8) bool {
	return bytes.HasPrefix(data, tzxSignature)
}

// bounds checked reading of little-endian values. the first error is kept
// and every read after an error returns zero
type tzxReader struct {
	data []uint8
	pos  int
	err  error
}

func (r *tzxReader) bytes(n int) []uint8 {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.err = fmt.Errorf("unexpected end of data at offset %d", r.pos)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *tzxReader) u8() int {
	b := r.bytes(1)
	if b == nil {
		return 0
	}
	return int(b[0])
}

func (r *tzxReader) u16() int {
	b := r.bytes(2)
	if b == nil {
		return 0
	}
	return int(b[0]) | int(b[1])<<8
}

func (r *tzxReader) u24() int {
	b := r.bytes(3)
	if b == nil {
		return 0
	}
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
}

func (r *tzxReader) u32() int {
	b := r.bytes(4)
	if b == nil {
		return 0
	}
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16 | int(b[3])<<24
}

func (r *tzxReader) text(n int) string {
	return string(r.bytes(n))
}

// names of the text fields of an archive info block
var archiveInfoIDs = map[int]string{
	0x00: "Title",
	0x01: "Publisher",
	0x02: "Author",
	0x03: "Year",
	0x04: "Language",
	0x05: "Type",
	0x06: "Price",
	0x07: "Protection",
	0x08: "Origin",
	0xff: "Comment",
}

// ReadTzx decodes the data of a TZX file.
func ReadTzx(data []uint8) (*Tzx, error) {
	if !IsTzx(data) {
		return nil, curated.Errorf(BadTzx, "missing signature")
	}

	r := &tzxReader{data: data, pos: len(tzxSignature)}
	tzx := &Tzx{}
	tzx.Major = uint8(r.u8())
	tzx.Minor = uint8(r.u8())

	for r.err == nil && r.pos < len(r.data) {
		id := r.u8()

		switch id {
		case 0x10:
			pause := r.u16()
			d := r.bytes(r.u16())
			if r.err == nil {
				tzx.Blocks = append(tzx.Blocks, tape.NewDataBlockPlayer(d, pause))
			}

		case 0x11:
			t := tape.Timing{
				PilotPulse: r.u16(),
				Sync1:      r.u16(),
				Sync2:      r.u16(),
				Bit0:       r.u16(),
				Bit1:       r.u16(),
				PilotCount: r.u16(),
				UsedBits:   r.u8(),
				PauseMs:    r.u16(),
			}
			d := r.bytes(r.u24())
			if r.err == nil {
				tzx.Blocks = append(tzx.Blocks, tape.NewCustomDataBlockPlayer(d, t))
			}

		case 0x12:
			length := r.u16()
			count := r.u16()
			if r.err == nil {
				tzx.Blocks = append(tzx.Blocks, tape.NewPureTonePlayer(length, count))
			}

		case 0x13:
			n := r.u8()
			pulses := make([]int, n)
			for i := range pulses {
				pulses[i] = r.u16()
			}
			if r.err == nil {
				tzx.Blocks = append(tzx.Blocks, tape.NewPulsePlayer(pulses))
			}

		case 0x14:
			t := tape.Timing{
				Bit0:     r.u16(),
				Bit1:     r.u16(),
				UsedBits: r.u8(),
				PauseMs:  r.u16(),
			}
			d := r.bytes(r.u24())
			if r.err == nil {
				tzx.Blocks = append(tzx.Blocks, tape.NewCustomDataBlockPlayer(d, t))
			}

		case 0x20:
			pause := r.u16()
			if r.err == nil {
				tzx.Blocks = append(tzx.Blocks, tape.NewPausePlayer(pause))
			}

		case 0x21:
			name := r.text(r.u8())
			tzx.Info = append(tzx.Info, fmt.Sprintf("Group: %s", name))

		case 0x22, 0x25:
			// group end and loop end

		case 0x24:
			// loop start. the loop is played once
			r.u16()

		case 0x30:
			tzx.Info = append(tzx.Info, r.text(r.u8()))

		case 0x31:
			// message block
			r.u8()
			r.bytes(r.u8())

		case 0x32:
			body := &tzxReader{data: r.bytes(r.u16())}
			n := body.u8()
			for i := 0; i < n && body.err == nil; i++ {
				field := body.u8()
				value := body.text(body.u8())
				label, ok := archiveInfoIDs[field]
				if !ok {
					label = fmt.Sprintf("Info %#02x", field)
				}
				tzx.Info = append(tzx.Info, fmt.Sprintf("%s: %s", label, value))
			}

		case 0x33:
			// hardware type
			r.bytes(r.u8() * 3)

		case 0x35:
			// custom info
			r.bytes(16)
			r.bytes(r.u32())

		case 0x5a:
			// glue block
			r.bytes(9)

		case 0x2a:
			// stop the tape if in 48K mode
			r.bytes(r.u32())

		case 0x2b:
			// set signal level
			r.bytes(r.u32())

		default:
			return nil, curated.Errorf(UnsupportedTzxBlock, id)
		}
	}

	if r.err != nil {
		return nil, curated.Errorf(BadTzx, r.err)
	}

	return tzx, nil
}
