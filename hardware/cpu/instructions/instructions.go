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

// Definition defines each instruction in the instruction set; one per
// opcode in each table.
type Definition struct {
	Prefix   Prefix
	OpCode   uint8
	Mnemonic string

	// number of bytes including prefixes, displacement and immediate data
	Bytes int

	// uncontended duration of the instruction in tacts
	Tacts int

	// the duration of a conditional instruction when the condition is met,
	// or the duration of a block instruction when it repeats. zero if the
	// instruction has only one duration
	TactsAlt int

	Effect Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	if defn.TactsAlt > 0 {
		return fmt.Sprintf("%s%02x %s +%dbytes (%d/%d tacts) [%s]", defn.Prefix, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Tacts, defn.TactsAlt, defn.Effect)
	}
	return fmt.Sprintf("%s%02x %s +%dbytes (%d tacts) [%s]", defn.Prefix, defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Tacts, defn.Effect)
}

// IsConditional returns true if the instruction has more than one duration.
func (defn Definition) IsConditional() bool {
	return defn.TactsAlt > 0
}

// the definition tables. entries for prefix opcodes are left empty
var tables [numPrefixes][256]Definition

// Lookup returns the definition for the opcode in the opcode table. Returns
// nil for opcodes that are prefixes.
func Lookup(prefix Prefix, opcode uint8) *Definition {
	if prefix < 0 || prefix >= numPrefixes {
		return nil
	}
	d := &tables[prefix][opcode]
	if d.Mnemonic == "" {
		return nil
	}
	return d
}

func init() {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		tables[Unprefixed][i] = unprefixed(op, "")
		tables[Unprefixed][i].Prefix = Unprefixed
		tables[DD][i] = unprefixed(op, "IX")
		tables[DD][i].Prefix = DD
		tables[FD][i] = unprefixed(op, "IY")
		tables[FD][i].Prefix = FD
		tables[CB][i] = bitOp(op, "")
		tables[CB][i].Prefix = CB
		tables[DDCB][i] = bitOp(op, "IX")
		tables[DDCB][i].Prefix = DDCB
		tables[FDCB][i] = bitOp(op, "IY")
		tables[FDCB][i].Prefix = FDCB
		tables[ED][i] = extended(op)
		tables[ED][i].Prefix = ED
	}
}

var (
	regs8  = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	pairs  = [4]string{"BC", "DE", "HL", "SP"}
	pairs2 = [4]string{"BC", "DE", "HL", "AF"}
	conds  = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	alu    = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	rots   = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}
)

// fields of an opcode, split as xxyyyzzz. p and q are the upper and lower
// parts of y
func split(op uint8) (x, y, z, p, q int) {
	x = int(op >> 6)
	y = int(op>>3) & 7
	z = int(op) & 7
	p = y >> 1
	q = y & 1
	return
}

// unprefixed returns the definition of an opcode in the unprefixed table.
// when idx is not empty the definition is altered for the DD or FD table.
func unprefixed(op uint8, idx string) Definition {
	x, y, z, p, q := split(op)

	d := Definition{OpCode: op, Bytes: 1, Tacts: 4}

	switch x {
	case 0:
		switch z {
		case 0:
			switch y {
			case 0:
				d.Mnemonic = "NOP"
			case 1:
				d.Mnemonic = "EX AF,AF'"
			case 2:
				d.Mnemonic, d.Bytes, d.Tacts, d.TactsAlt, d.Effect = "DJNZ e", 2, 8, 13, Flow
			case 3:
				d.Mnemonic, d.Bytes, d.Tacts, d.Effect = "JR e", 2, 12, Flow
			default:
				d.Mnemonic, d.Bytes, d.Tacts, d.TactsAlt, d.Effect = fmt.Sprintf("JR %s,e", conds[y-4]), 2, 7, 12, Flow
			}
		case 1:
			if q == 0 {
				d.Mnemonic, d.Bytes, d.Tacts = fmt.Sprintf("LD %s,nn", pairs[p]), 3, 10
			} else {
				d.Mnemonic, d.Tacts = fmt.Sprintf("ADD HL,%s", pairs[p]), 11
			}
		case 2:
			switch y {
			case 0:
				d.Mnemonic, d.Tacts = "LD (BC),A", 7
			case 1:
				d.Mnemonic, d.Tacts = "LD A,(BC)", 7
			case 2:
				d.Mnemonic, d.Tacts = "LD (DE),A", 7
			case 3:
				d.Mnemonic, d.Tacts = "LD A,(DE)", 7
			case 4:
				d.Mnemonic, d.Bytes, d.Tacts = "LD (nn),HL", 3, 16
			case 5:
				d.Mnemonic, d.Bytes, d.Tacts = "LD HL,(nn)", 3, 16
			case 6:
				d.Mnemonic, d.Bytes, d.Tacts = "LD (nn),A", 3, 13
			case 7:
				d.Mnemonic, d.Bytes, d.Tacts = "LD A,(nn)", 3, 13
			}
		case 3:
			if q == 0 {
				d.Mnemonic, d.Tacts = fmt.Sprintf("INC %s", pairs[p]), 6
			} else {
				d.Mnemonic, d.Tacts = fmt.Sprintf("DEC %s", pairs[p]), 6
			}
		case 4:
			d.Mnemonic = fmt.Sprintf("INC %s", regs8[y])
			if y == 6 {
				d.Tacts = 11
			}
		case 5:
			d.Mnemonic = fmt.Sprintf("DEC %s", regs8[y])
			if y == 6 {
				d.Tacts = 11
			}
		case 6:
			d.Mnemonic, d.Bytes, d.Tacts = fmt.Sprintf("LD %s,n", regs8[y]), 2, 7
			if y == 6 {
				d.Tacts = 10
			}
		case 7:
			d.Mnemonic = [8]string{"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF"}[y]
		}
	case 1:
		if y == 6 && z == 6 {
			d.Mnemonic, d.Effect = "HALT", Halt
		} else {
			d.Mnemonic = fmt.Sprintf("LD %s,%s", regs8[y], regs8[z])
			if y == 6 || z == 6 {
				d.Tacts = 7
			}
		}
	case 2:
		d.Mnemonic = fmt.Sprintf("%s%s", alu[y], regs8[z])
		if z == 6 {
			d.Tacts = 7
		}
	case 3:
		switch z {
		case 0:
			d.Mnemonic, d.Tacts, d.TactsAlt, d.Effect = fmt.Sprintf("RET %s", conds[y]), 5, 11, Flow
		case 1:
			if q == 0 {
				d.Mnemonic, d.Tacts = fmt.Sprintf("POP %s", pairs2[p]), 10
			} else {
				switch p {
				case 0:
					d.Mnemonic, d.Tacts, d.Effect = "RET", 10, Flow
				case 1:
					d.Mnemonic = "EXX"
				case 2:
					d.Mnemonic, d.Effect = "JP (HL)", Flow
				case 3:
					d.Mnemonic, d.Tacts = "LD SP,HL", 6
				}
			}
		case 2:
			d.Mnemonic, d.Bytes, d.Tacts, d.Effect = fmt.Sprintf("JP %s,nn", conds[y]), 3, 10, Flow
		case 3:
			switch y {
			case 0:
				d.Mnemonic, d.Bytes, d.Tacts, d.Effect = "JP nn", 3, 10, Flow
			case 1:
				// CB prefix
				return Definition{OpCode: op}
			case 2:
				d.Mnemonic, d.Bytes, d.Tacts, d.Effect = "OUT (n),A", 2, 11, IO
			case 3:
				d.Mnemonic, d.Bytes, d.Tacts, d.Effect = "IN A,(n)", 2, 11, IO
			case 4:
				d.Mnemonic, d.Tacts = "EX (SP),HL", 19
			case 5:
				d.Mnemonic = "EX DE,HL"
			case 6:
				d.Mnemonic, d.Effect = "DI", Interrupt
			case 7:
				d.Mnemonic, d.Effect = "EI", Interrupt
			}
		case 4:
			d.Mnemonic, d.Bytes, d.Tacts, d.TactsAlt, d.Effect = fmt.Sprintf("CALL %s,nn", conds[y]), 3, 10, 17, Subroutine
		case 5:
			if q == 0 {
				d.Mnemonic, d.Tacts = fmt.Sprintf("PUSH %s", pairs2[p]), 11
			} else if p == 0 {
				d.Mnemonic, d.Bytes, d.Tacts, d.Effect = "CALL nn", 3, 17, Subroutine
			} else {
				// DD, ED and FD prefixes
				return Definition{OpCode: op}
			}
		case 6:
			d.Mnemonic, d.Bytes, d.Tacts = fmt.Sprintf("%sn", alu[y]), 2, 7
		case 7:
			d.Mnemonic, d.Tacts, d.Effect = fmt.Sprintf("RST %02XH", y*8), 11, Restart
		}
	}

	if idx != "" {
		indexed(&d, idx)
	}

	return d
}

// alter an unprefixed definition for the DD or FD table
func indexed(d *Definition, idx string) {
	d.Bytes++
	d.Tacts += 4
	if d.TactsAlt > 0 {
		d.TactsAlt += 4
	}

	// the EX DE,HL and EXX instructions are not affected by the index prefix
	if d.Mnemonic == "EX DE,HL" || d.Mnemonic == "EXX" {
		return
	}

	// instructions with a memory operand use the displaced index register
	// and do not substitute H or L in the other operand
	if strings.Contains(d.Mnemonic, "(HL)") && d.Mnemonic != "JP (HL)" {
		d.Mnemonic = strings.Replace(d.Mnemonic, "(HL)", fmt.Sprintf("(%s+d)", idx), 1)
		d.Bytes++
		if strings.HasPrefix(d.Mnemonic, "LD (") && strings.HasSuffix(d.Mnemonic, ",n") {
			d.Tacts += 5
		} else {
			d.Tacts += 8
		}
		return
	}

	m := strings.SplitN(d.Mnemonic, " ", 2)
	if len(m) < 2 {
		return
	}

	ops := strings.Split(m[1], ",")
	for i := range ops {
		switch ops[i] {
		case "HL":
			ops[i] = idx
		case "(HL)":
			ops[i] = fmt.Sprintf("(%s)", idx)
		case "H":
			ops[i] = idx + "H"
		case "L":
			ops[i] = idx + "L"
		}
	}
	d.Mnemonic = fmt.Sprintf("%s %s", m[0], strings.Join(ops, ","))
}

// bitOp returns the definition of an opcode in the CB table. when idx is not
// empty the definition is for the DDCB or FDCB table.
func bitOp(op uint8, idx string) Definition {
	x, y, z, _, _ := split(op)

	d := Definition{OpCode: op, Bytes: 2, Tacts: 8}

	operand := regs8[z]
	if idx != "" {
		operand = fmt.Sprintf("(%s+d)", idx)
	}

	switch x {
	case 0:
		d.Mnemonic = fmt.Sprintf("%s %s", rots[y], operand)
	case 1:
		d.Mnemonic = fmt.Sprintf("BIT %d,%s", y, operand)
	case 2:
		d.Mnemonic = fmt.Sprintf("RES %d,%s", y, operand)
	case 3:
		d.Mnemonic = fmt.Sprintf("SET %d,%s", y, operand)
	}

	if idx == "" {
		if z == 6 {
			if x == 1 {
				d.Tacts = 12
			} else {
				d.Tacts = 15
			}
		}
		return d
	}

	d.Bytes = 4
	if x == 1 {
		d.Tacts = 20
	} else {
		d.Tacts = 23

		// undocumented forms that also copy the result to a register
		if z != 6 {
			d.Mnemonic = fmt.Sprintf("%s,%s", d.Mnemonic, regs8[z])
		}
	}

	return d
}

// extended returns the definition of an opcode in the ED table.
func extended(op uint8) Definition {
	x, y, z, p, q := split(op)

	// opcodes that have no effect act like a two byte NOP
	d := Definition{OpCode: op, Mnemonic: "NOP", Bytes: 2, Tacts: 8}

	switch x {
	case 1:
		switch z {
		case 0:
			if y == 6 {
				d.Mnemonic = "IN (C)"
			} else {
				d.Mnemonic = fmt.Sprintf("IN %s,(C)", regs8[y])
			}
			d.Tacts, d.Effect = 12, IO
		case 1:
			if y == 6 {
				d.Mnemonic = "OUT (C),0"
			} else {
				d.Mnemonic = fmt.Sprintf("OUT (C),%s", regs8[y])
			}
			d.Tacts, d.Effect = 12, IO
		case 2:
			if q == 0 {
				d.Mnemonic = fmt.Sprintf("SBC HL,%s", pairs[p])
			} else {
				d.Mnemonic = fmt.Sprintf("ADC HL,%s", pairs[p])
			}
			d.Tacts = 15
		case 3:
			if q == 0 {
				d.Mnemonic = fmt.Sprintf("LD (nn),%s", pairs[p])
			} else {
				d.Mnemonic = fmt.Sprintf("LD %s,(nn)", pairs[p])
			}
			d.Bytes, d.Tacts = 4, 20
		case 4:
			d.Mnemonic = "NEG"
		case 5:
			if y == 1 {
				d.Mnemonic = "RETI"
			} else {
				d.Mnemonic = "RETN"
			}
			d.Tacts, d.Effect = 14, Flow
		case 6:
			d.Mnemonic, d.Effect = fmt.Sprintf("IM %d", [8]int{0, 0, 1, 2, 0, 0, 1, 2}[y]), Interrupt
		case 7:
			switch y {
			case 0:
				d.Mnemonic, d.Tacts = "LD I,A", 9
			case 1:
				d.Mnemonic, d.Tacts = "LD R,A", 9
			case 2:
				d.Mnemonic, d.Tacts = "LD A,I", 9
			case 3:
				d.Mnemonic, d.Tacts = "LD A,R", 9
			case 4:
				d.Mnemonic, d.Tacts = "RRD", 18
			case 5:
				d.Mnemonic, d.Tacts = "RLD", 18
			}
		}
	case 2:
		if z <= 3 && y >= 4 {
			d.Mnemonic = [4][4]string{
				{"LDI", "CPI", "INI", "OUTI"},
				{"LDD", "CPD", "IND", "OUTD"},
				{"LDIR", "CPIR", "INIR", "OTIR"},
				{"LDDR", "CPDR", "INDR", "OTDR"},
			}[y-4][z]
			d.Tacts = 16
			if z >= 2 {
				d.Effect = IO
			}
			if y >= 6 {
				d.TactsAlt, d.Effect = 21, BlockRepeat
			}
		}
	}

	return d
}
