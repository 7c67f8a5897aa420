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

import (
	"fmt"

	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/cpu/execution"
	"github.com/dotneteer/spectnetgo/hardware/cpu/instructions"
	"github.com/dotneteer/spectnetgo/hardware/cpu/registers"
	"github.com/dotneteer/spectnetgo/hardware/memory/cpubus"
)

// CPU implements the Z80 as found in the ZX Spectrum. Register logic is
// implemented by the File type in the registers sub-package.
type CPU struct {
	env *environment.Environment

	Regs registers.File

	// interrupt flip-flops and interrupt mode
	IFF1          bool
	IFF2          bool
	InterruptMode uint8

	mem   cpubus.Memory
	ports cpubus.Ports

	tacts   uint64
	signals Signals

	// set by EI and cleared by the next instruction. an interrupt cannot be
	// accepted while this is set
	interruptBlocked bool

	// last result of ExecuteCpuCycle(). the contents are only valid when the
	// Final field is true
	LastResult execution.Result

	memoryListeners      []MemoryListener
	portListeners        []PortListener
	instructionListeners []InstructionListener
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// environment argument can be nil.
func NewCPU(env *environment.Environment, mem cpubus.Memory, ports cpubus.Ports) *CPU {
	mc := &CPU{
		env:   env,
		mem:   mem,
		ports: ports,
	}
	mc.LastResult.Bytes = make([]uint8, 0, 8)
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. Listeners are not
// copied.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.LastResult.Bytes = append([]uint8{}, mc.LastResult.Bytes...)
	n.memoryListeners = nil
	n.portListeners = nil
	n.instructionListeners = nil
	return &n
}

// Plumb new memory and port devices into the CPU.
func (mc *CPU) Plumb(env *environment.Environment, mem cpubus.Memory, ports cpubus.Ports) {
	mc.env = env
	mc.mem = mem
	mc.ports = ports
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s %s=%s IM%d IFF=%d%d T=%d", mc.Regs, mc.Regs.F().Label(), mc.Regs.F(),
		mc.InterruptMode, boolToBit(mc.IFF1), boolToBit(mc.IFF2), mc.tacts)
}

func boolToBit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Reset is the full power-on reset of the CPU. Registers are set to their
// power-on values (or randomised, depending on the preferences of the
// environment), signals are cleared and the tact counter is zeroed.
func (mc *CPU) Reset() {
	mc.resetRegisters()
	mc.tacts = 0
	mc.signals = SigNone
	mc.LastResult.Reset()
}

// the effect of the RESET signal. the tact counter is unaffected
func (mc *CPU) resetRegisters() {
	mc.Regs.Reset()

	// checking for env == nil because it's possible for NewCPU() to be called
	// with a nil environment (test package)
	if mc.env != nil && mc.env.Prefs.RandomState.Get().(bool) {
		mc.Regs.BC = uint16(mc.env.Random.Untimed(0xffff))
		mc.Regs.DE = uint16(mc.env.Random.Untimed(0xffff))
		mc.Regs.HL = uint16(mc.env.Random.Untimed(0xffff))
		mc.Regs.IX = uint16(mc.env.Random.Untimed(0xffff))
		mc.Regs.IY = uint16(mc.env.Random.Untimed(0xffff))
	}

	mc.IFF1 = false
	mc.IFF2 = false
	mc.InterruptMode = 0
	mc.interruptBlocked = false
	mc.signals &^= SigHALTED
}

// Registers returns the register file of the CPU. Devices that trap ROM
// routines use this to alter the registers between instructions.
func (mc *CPU) Registers() *registers.File {
	return &mc.Regs
}

// Tacts returns the number of tacts since the last full reset.
func (mc *CPU) Tacts() uint64 {
	return mc.tacts
}

// Delay advances the tact counter with no other side effect. Delays that
// occur during the execution of an instruction are recorded as wait tacts in
// LastResult.
func (mc *CPU) Delay(n int) {
	if n <= 0 {
		return
	}
	mc.tacts += uint64(n)
	if !mc.LastResult.Final {
		mc.LastResult.WaitTacts += n
	}
}

// Signals returns the state of the signal lines.
func (mc *CPU) Signals() Signals {
	return mc.signals
}

// SetSignal activates the specified signals.
func (mc *CPU) SetSignal(s Signals) {
	mc.signals |= s
}

// ClearSignal deactivates the specified signals.
func (mc *CPU) ClearSignal(s Signals) {
	mc.signals &^= s
}

// Halted returns true if the CPU is in the halted state.
func (mc *CPU) Halted() bool {
	return mc.signals&SigHALTED == SigHALTED
}

// IsInterruptBlocked returns true if a maskable interrupt would not be
// accepted at the next instruction boundary because the last instruction was
// EI.
func (mc *CPU) IsInterruptBlocked() bool {
	return mc.interruptBlocked
}

// ExecuteCpuCycle executes one complete instruction, or accepts one pending
// interrupt, or spends one halted cycle. The LastResult field is updated and
// instruction listeners are notified.
func (mc *CPU) ExecuteCpuCycle() {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC
	start := mc.tacts

	// execution continues from the reset address in the same cycle
	if mc.signals&SigRESET == SigRESET {
		mc.resetRegisters()
		mc.signals &^= SigRESET
		mc.LastResult.Address = mc.Regs.PC
	}

	switch {
	case mc.signals&SigNMI == SigNMI:
		mc.acceptNMI()
	case mc.signals&SigINT == SigINT && mc.IFF1 && !mc.interruptBlocked:
		mc.acceptINT()
	case mc.Halted():
		mc.haltedCycle()
	default:
		mc.executeInstruction()
	}

	mc.LastResult.Tacts = int(mc.tacts - start)
	mc.LastResult.Final = true

	for _, l := range mc.instructionListeners {
		l(mc.LastResult)
	}
}

// GetCallInstructionLength returns the length of the instruction at PC if
// it is an instruction that will return to the following address. This is
// wider than the CALL family: RST, HALT and the repeating block instructions
// also return their length. For all other instructions the function returns
// zero. Memory is not accessed through contention.
//
// Useful for implementing the "step over" action of a debugger.
func (mc *CPU) GetCallInstructionLength() int {
	op := mc.mem.Peek(mc.Regs.PC)
	prefix := instructions.Unprefixed
	if op == instructions.PrefixED {
		prefix = instructions.ED
		op = mc.mem.Peek(mc.Regs.PC + 1)
	}

	defn := instructions.Lookup(prefix, op)
	if defn == nil {
		return 0
	}

	switch defn.Effect {
	case instructions.Subroutine, instructions.Restart, instructions.Halt, instructions.BlockRepeat:
		return defn.Bytes
	}
	return 0
}

// a halted CPU executes NOPs without advancing the program counter
func (mc *CPU) haltedCycle() {
	mc.LastResult.Halted = true
	mc.tacts += 3
	mc.refresh()
}

// the memory refresh part of an M1 cycle
func (mc *CPU) refresh() {
	mc.Regs.IncR()
	mc.tacts++
}

// internal cycles of an instruction that do not access the bus
func (mc *CPU) internal(n int) {
	mc.tacts += uint64(n)
}

// internal cycles during which the address remains on the bus. each cycle is
// one tact and is subject to the contention of the address
func (mc *CPU) internalOnBus(address uint16, n int) {
	for i := 0; i < n; i++ {
		mc.mem.Read(address)
		mc.tacts++
	}
}

// the opcode fetch part of an M1 cycle
func (mc *CPU) fetchOpcode() uint8 {
	v := mc.mem.Read(mc.Regs.PC)
	mc.tacts += 3
	mc.Regs.PC++
	mc.LastResult.Bytes = append(mc.LastResult.Bytes, v)
	mc.refresh()
	return v
}

// read the next instruction byte (displacement or immediate data)
func (mc *CPU) fetchByte() uint8 {
	v := mc.mem.Read(mc.Regs.PC)
	mc.tacts += 3
	mc.Regs.PC++
	mc.LastResult.Bytes = append(mc.LastResult.Bytes, v)
	return v
}

// read the next two instruction bytes as a little-endian word
func (mc *CPU) fetchWord() uint16 {
	lo := mc.fetchByte()
	hi := mc.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) readMem(address uint16) uint8 {
	v := mc.mem.Read(address)
	mc.tacts += 3
	for _, l := range mc.memoryListeners {
		l(address, v, false)
	}
	return v
}

func (mc *CPU) writeMem(address uint16, data uint8) {
	mc.mem.Write(address, data)
	mc.tacts += 3
	for _, l := range mc.memoryListeners {
		l(address, data, true)
	}
}

// duration of an uncontended I/O cycle
const ioCycle = 4

func (mc *CPU) readPort(address uint16) uint8 {
	start := mc.tacts
	waits := mc.LastResult.WaitTacts
	v := mc.ports.Read(address)
	mc.completeIO(start, waits)
	for _, l := range mc.portListeners {
		l(address, v, false)
	}
	return v
}

func (mc *CPU) writePort(address uint16, data uint8) {
	start := mc.tacts
	waits := mc.LastResult.WaitTacts
	mc.ports.Write(address, data)
	mc.completeIO(start, waits)
	for _, l := range mc.portListeners {
		l(address, data, true)
	}
}

// the port device advances the clock for the whole of the I/O cycle. the
// four tacts of the cycle itself are not wait tacts
func (mc *CPU) completeIO(start uint64, waits int) {
	d := int(mc.tacts - start)
	if d < ioCycle {
		mc.tacts += uint64(ioCycle - d)
		d = ioCycle
	}
	mc.LastResult.WaitTacts = waits + d - ioCycle
}

func (mc *CPU) push(v uint16) {
	mc.Regs.SP--
	mc.writeMem(mc.Regs.SP, uint8(v>>8))
	mc.Regs.SP--
	mc.writeMem(mc.Regs.SP, uint8(v))
}

func (mc *CPU) pop() uint16 {
	lo := mc.readMem(mc.Regs.SP)
	mc.Regs.SP++
	hi := mc.readMem(mc.Regs.SP)
	mc.Regs.SP++
	return uint16(hi)<<8 | uint16(lo)
}
