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
	"encoding/binary"
	"fmt"
	"strings"
)

// HeaderLength is the length of a header block, including the flag byte and
// the checksum.
const HeaderLength = 19

// the length of a screen data block, including the flag byte and the checksum
const screenBlockLength = 6914

// HeaderType is the second byte of a header block.
type HeaderType uint8

// List of valid HeaderType values.
const (
	Program       HeaderType = 0
	NumberArray   HeaderType = 1
	CharArray     HeaderType = 2
	Code          HeaderType = 3
	unknownHeader HeaderType = 0xff
)

func (t HeaderType) String() string {
	switch t {
	case Program:
		return "Program"
	case NumberArray:
		return "Number array"
	case CharArray:
		return "Character array"
	case Code:
		return "Bytes"
	}
	return "Unknown"
}

// Header is the decoded content of a header block.
type Header struct {
	Type   HeaderType
	Name   string
	Length uint16
	Param1 uint16
	Param2 uint16
}

// ParseHeader decodes the block if it is a header. Returns false if the
// block is not a header.
func ParseHeader(block []uint8) (Header, bool) {
	if len(block) != HeaderLength || block[0] != 0x00 {
		return Header{Type: unknownHeader}, false
	}
	return Header{
		Type:   HeaderType(block[1]),
		Name:   strings.TrimSpace(string(block[2:12])),
		Length: binary.LittleEndian.Uint16(block[12:]),
		Param1: binary.LittleEndian.Uint16(block[14:]),
		Param2: binary.LittleEndian.Uint16(block[16:]),
	}, true
}

func (h Header) String() string {
	switch h.Type {
	case Program:
		if h.Param1 < 0x8000 {
			return fmt.Sprintf("%s: %q LINE %d (%d bytes)", h.Type, h.Name, h.Param1, h.Length)
		}
		return fmt.Sprintf("%s: %q (%d bytes)", h.Type, h.Name, h.Length)
	case Code:
		return fmt.Sprintf("%s: %q CODE %d,%d", h.Type, h.Name, h.Param1, h.Length)
	}
	return fmt.Sprintf("%s: %q (%d bytes)", h.Type, h.Name, h.Length)
}

// Checksum returns the value of the last byte of a block that makes the
// exclusive-or of every byte zero. The data should not include the checksum.
func Checksum(data []uint8) uint8 {
	var c uint8
	for _, v := range data {
		c ^= v
	}
	return c
}

// IsScreenFile returns true if the blocks are a header and a data block that
// together hold a screen saved with SAVE "name" SCREEN$.
func IsScreenFile(blocks [][]uint8) bool {
	if len(blocks) != 2 || len(blocks[1]) != screenBlockLength {
		return false
	}
	h, ok := ParseHeader(blocks[0])
	return ok && h.Type == Code && h.Length == 0x1b00 && h.Param1 == 0x4000 && h.Param2 == 0x8000
}
