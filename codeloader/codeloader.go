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

package codeloader

import (
	"fmt"
	"strings"

	"github.com/dotneteer/spectnetgo/curated"
)

// Sentinel error patterns.
const (
	RelativeOutOfRange = "codeloader: relative jump from %#04x to %#04x out of range (%d)"
	BitOutOfRange      = "codeloader: bit index out of range (%d)"
	EmptyBinary        = "codeloader: binary is empty"
	BinaryTooLarge     = "codeloader: binary does not fit at %#04x (%d bytes)"
)

// Segment is a contiguous run of code. The bytes are placed in memory at
// StartAddress plus Displacement.
type Segment struct {
	StartAddress uint16
	Displacement int
	Bytes        []uint8
}

// Address returns the address of the first byte of the segment once the
// displacement has been applied. Wraps at the top of the address space.
func (seg Segment) Address() uint16 {
	return uint16(int(seg.StartAddress) + seg.Displacement)
}

// End returns the address immediately after the last byte of the segment.
func (seg Segment) End() uint16 {
	return seg.Address() + uint16(len(seg.Bytes))
}

func (seg Segment) String() string {
	if seg.Displacement != 0 {
		return fmt.Sprintf("%#04x%+d: %d bytes", seg.StartAddress, seg.Displacement, len(seg.Bytes))
	}
	return fmt.Sprintf("%#04x: %d bytes", seg.StartAddress, len(seg.Bytes))
}

// Output is the result of assembling a program.
type Output struct {
	Segments []Segment

	// the address at which execution should start. nil if the program did
	// not specify an entry point
	EntryAddress *uint16

	// problems found while producing the output. an output with diagnostics
	// should not be used
	Diagnostics []string
}

func (out Output) String() string {
	var b strings.Builder
	for i, seg := range out.Segments {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(seg.String())
	}
	if out.EntryAddress != nil {
		b.WriteString(fmt.Sprintf(" entry %#04x", *out.EntryAddress))
	}
	return b.String()
}

// HasErrors returns true if there are any diagnostics.
func (out Output) HasErrors() bool {
	return len(out.Diagnostics) > 0
}

// Size returns the total number of bytes in all segments.
func (out Output) Size() int {
	n := 0
	for _, seg := range out.Segments {
		n += len(seg.Bytes)
	}
	return n
}

// Entry returns the entry address of the program. If no entry address has
// been specified the address of the first segment is returned. The boolean
// is false if there are no segments and no entry address.
func (out Output) Entry() (uint16, bool) {
	if out.EntryAddress != nil {
		return *out.EntryAddress, true
	}
	if len(out.Segments) == 0 {
		return 0, false
	}
	return out.Segments[0].Address(), true
}

// EndMarker returns the address immediately after the last segment. The
// boolean is false if there are no segments.
func (out Output) EndMarker() (uint16, bool) {
	if len(out.Segments) == 0 {
		return 0, false
	}
	return out.Segments[len(out.Segments)-1].End(), true
}

// FromBinary creates an Output from raw machine code to be placed at the
// start address. The start address is also the entry address.
func FromBinary(data []uint8, start uint16) (Output, error) {
	if len(data) == 0 {
		return Output{}, curated.Errorf(EmptyBinary)
	}
	if int(start)+len(data) > 0x10000 {
		return Output{}, curated.Errorf(BinaryTooLarge, start, len(data))
	}

	entry := start
	return Output{
		Segments: []Segment{
			{
				StartAddress: start,
				Bytes:        append([]uint8{}, data...),
			},
		},
		EntryAddress: &entry,
	}, nil
}

// Displacement returns the operand of a relative jump (JR or DJNZ) located at
// pc that transfers control to target. Relative jumps are two bytes long and
// the displacement is measured from the end of the instruction. The
// distance wraps around the address space.
func Displacement(pc uint16, target uint16) (uint8, error) {
	d := int(int16(target - (pc + 2)))
	if d < -128 || d > 127 {
		return 0, curated.Errorf(RelativeOutOfRange, pc, target, d)
	}
	return uint8(int8(d)), nil
}

// BitIndex checks the bit operand of a BIT, RES or SET instruction and
// returns it in the form used by the instruction encoding.
func BitIndex(n int) (uint8, error) {
	if n < 0 || n > 7 {
		return 0, curated.Errorf(BitOutOfRange, n)
	}
	return uint8(n), nil
}
