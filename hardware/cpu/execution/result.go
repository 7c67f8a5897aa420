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

package execution

import (
	"fmt"
	"strings"

	"github.com/dotneteer/spectnetgo/hardware/cpu/instructions"
)

// Interrupt identifies an interrupt acceptance that took the place of an
// instruction.
type Interrupt int

// List of interrupt types.
const (
	NoInterrupt Interrupt = iota
	Maskable
	NonMaskable
)

// Result records the state/result of the last instruction executed by the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition. nil if the cycle was an interrupt
	// acceptance or a halted cycle
	Defn *instructions.Definition

	// the bytes of the instruction, including prefixes
	Bytes []uint8

	// the number of tacts taken by the instruction, including wait tacts
	Tacts int

	// the number of tacts added by contention or other delays
	WaitTacts int

	// the number of index prefixes that were superseded by a later prefix.
	// each superseded prefix adds 4 tacts to the instruction
	IgnoredPrefixes int

	// the cycle was spent in the halted state
	Halted bool

	// the cycle was an interrupt acceptance
	Interrupt Interrupt

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the instance.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.Bytes = r.Bytes[:0]
	r.Tacts = 0
	r.WaitTacts = 0
	r.IgnoredPrefixes = 0
	r.Halted = false
	r.Interrupt = NoInterrupt
	r.Final = false
}

func (r Result) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x ", r.Address))

	switch {
	case r.Interrupt == Maskable:
		s.WriteString("** INT **")
	case r.Interrupt == NonMaskable:
		s.WriteString("** NMI **")
	case r.Halted:
		s.WriteString("** HALTED **")
	case r.Defn == nil:
		s.WriteString("???")
	default:
		s.WriteString(instructions.Format(r.Defn, r.operands(), r.Address))
	}

	if r.WaitTacts > 0 {
		s.WriteString(fmt.Sprintf(" [%d+%d]", r.Tacts-r.WaitTacts, r.WaitTacts))
	} else {
		s.WriteString(fmt.Sprintf(" [%d]", r.Tacts))
	}

	return s.String()
}

// the operand bytes of the instruction. for the double prefixed tables the
// displacement is between the prefixes and the opcode
func (r Result) operands() []uint8 {
	if r.Defn == nil {
		return nil
	}

	switch r.Defn.Prefix {
	case instructions.Unprefixed:
		if len(r.Bytes) > 1 {
			return r.Bytes[1:]
		}
	case instructions.DDCB, instructions.FDCB:
		n := 2 + r.IgnoredPrefixes
		if len(r.Bytes) > n {
			return r.Bytes[n : n+1]
		}
	default:
		// skip superseded prefixes as well as the prefix and opcode
		n := 2 + r.IgnoredPrefixes
		if len(r.Bytes) > n {
			return r.Bytes[n:]
		}
	}

	return nil
}
