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

package snapshot

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware"
	"github.com/dotneteer/spectnetgo/hardware/cpu"
	"github.com/dotneteer/spectnetgo/hardware/memory"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/logger"
)

// Sentinel error patterns.
const (
	BadSNA           = "snapshot: bad SNA data: %s"
	UnsupportedModel = "snapshot: SNA requires the 48K model (%s)"
	StackInROM       = "snapshot: stack pointer is in ROM (%#04x)"
	WriteError       = "snapshot: %v"
)

// HeaderLength is the length of the register header of an SNA file.
const HeaderLength = 27

// Length is the total length of an SNA file.
const Length = HeaderLength + 3*memory.SlotSize

// bit of the interrupt byte that stores IFF2
const iff2Bit = 0x04

// offsets into the header
const (
	offI       = 0
	offHL2     = 1
	offDE2     = 3
	offBC2     = 5
	offAF2     = 7
	offHL      = 9
	offDE      = 11
	offBC      = 13
	offIY      = 15
	offIX      = 17
	offIFF     = 19
	offR       = 20
	offAF      = 21
	offSP      = 23
	offIM      = 25
	offBorder  = 26
	ramAddress = 0x4000
)

// the RAM of a 48K state
func ram48(s *hardware.State) (*memory.Memory48State, error) {
	m, ok := s.Memory.(*memory.Memory48State)
	if !ok {
		return nil, curated.Errorf(UnsupportedModel, s.Model)
	}
	return m, nil
}

// WriteSNA writes the current state of the machine as an SNA file. The
// machine is not changed.
func WriteSNA(w io.Writer, spec *hardware.Spectrum) error {
	s := spec.Snapshot()

	m, err := ram48(s)
	if err != nil {
		return err
	}

	regs := s.CPU.Regs

	// push the program counter onto the stored stack
	sp := regs.SP - 2
	if sp < ramAddress || sp > 0xfffe {
		return curated.Errorf(StackInROM, regs.SP)
	}
	m.RAM[sp-ramAddress] = uint8(regs.PC)
	m.RAM[sp+1-ramAddress] = uint8(regs.PC >> 8)

	var hdr [HeaderLength]uint8
	hdr[offI] = regs.I()
	binary.LittleEndian.PutUint16(hdr[offHL2:], regs.AltHL)
	binary.LittleEndian.PutUint16(hdr[offDE2:], regs.AltDE)
	binary.LittleEndian.PutUint16(hdr[offBC2:], regs.AltBC)
	binary.LittleEndian.PutUint16(hdr[offAF2:], regs.AltAF)
	binary.LittleEndian.PutUint16(hdr[offHL:], regs.HL)
	binary.LittleEndian.PutUint16(hdr[offDE:], regs.DE)
	binary.LittleEndian.PutUint16(hdr[offBC:], regs.BC)
	binary.LittleEndian.PutUint16(hdr[offIY:], regs.IY)
	binary.LittleEndian.PutUint16(hdr[offIX:], regs.IX)
	if s.CPU.IFF2 {
		hdr[offIFF] = iff2Bit
	}
	hdr[offR] = regs.R()
	binary.LittleEndian.PutUint16(hdr[offAF:], regs.AF)
	binary.LittleEndian.PutUint16(hdr[offSP:], sp)
	hdr[offIM] = s.CPU.InterruptMode
	hdr[offBorder] = s.Ports.Border & 0x07

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(hdr[:]); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if _, err := bw.Write(m.RAM[:]); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if err := bw.Flush(); err != nil {
		return curated.Errorf(WriteError, err)
	}

	return nil
}

// ReadSNA resets the machine and then sets its state to the SNA data.
func ReadSNA(data []uint8, spec *hardware.Spectrum) error {
	if len(data) != Length {
		return curated.Errorf(BadSNA, "wrong length")
	}

	hdr := data[:HeaderLength]
	if hdr[offIM] > 2 {
		return curated.Errorf(BadSNA, "interrupt mode")
	}

	spec.Reset()
	s := spec.Snapshot()

	m, err := ram48(s)
	if err != nil {
		return err
	}
	copy(m.RAM[:], data[HeaderLength:])

	regs := &s.CPU.Regs
	regs.SetI(hdr[offI])
	regs.AltHL = binary.LittleEndian.Uint16(hdr[offHL2:])
	regs.AltDE = binary.LittleEndian.Uint16(hdr[offDE2:])
	regs.AltBC = binary.LittleEndian.Uint16(hdr[offBC2:])
	regs.AltAF = binary.LittleEndian.Uint16(hdr[offAF2:])
	regs.HL = binary.LittleEndian.Uint16(hdr[offHL:])
	regs.DE = binary.LittleEndian.Uint16(hdr[offDE:])
	regs.BC = binary.LittleEndian.Uint16(hdr[offBC:])
	regs.IY = binary.LittleEndian.Uint16(hdr[offIY:])
	regs.IX = binary.LittleEndian.Uint16(hdr[offIX:])
	regs.SetR(hdr[offR])
	regs.AF = binary.LittleEndian.Uint16(hdr[offAF:])
	regs.SP = binary.LittleEndian.Uint16(hdr[offSP:])

	s.CPU.IFF2 = hdr[offIFF]&iff2Bit == iff2Bit
	s.CPU.IFF1 = s.CPU.IFF2
	s.CPU.InterruptMode = hdr[offIM]
	s.CPU.Signals = cpu.SigNone
	s.Ports.Border = hdr[offBorder] & 0x07

	// pop the program counter from the stored stack
	if regs.SP < ramAddress || regs.SP > 0xfffe {
		return curated.Errorf(StackInROM, regs.SP)
	}
	regs.PC = uint16(m.RAM[regs.SP-ramAddress]) | uint16(m.RAM[regs.SP+1-ramAddress])<<8
	regs.SP += 2

	return spec.Plumb(s)
}

// SaveSNA writes the current state of the machine to the named file.
func SaveSNA(filename string, spec *hardware.Spectrum) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()
	return WriteSNA(f, spec)
}

// LoadSNA loads the SNA data specified by the loader into the machine.
func LoadSNA(ld loader.Loader, spec *hardware.Spectrum) error {
	if err := ld.Load(); err != nil {
		return err
	}
	if err := ReadSNA(ld.Data, spec); err != nil {
		return err
	}
	logger.Logf(spec.Env(), "snapshot", "%s loaded", ld.ShortName())
	return nil
}
