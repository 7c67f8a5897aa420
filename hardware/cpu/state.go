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

import "github.com/dotneteer/spectnetgo/hardware/cpu/registers"

// State is a copy of the CPU state that can be restored with SetState().
type State struct {
	Regs             registers.File
	Tacts            uint64
	Signals          Signals
	IFF1             bool
	IFF2             bool
	InterruptMode    uint8
	InterruptBlocked bool
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	return State{
		Regs:             mc.Regs,
		Tacts:            mc.tacts,
		Signals:          mc.signals,
		IFF1:             mc.IFF1,
		IFF2:             mc.IFF2,
		InterruptMode:    mc.InterruptMode,
		InterruptBlocked: mc.interruptBlocked,
	}
}

// SetState restores the state of the CPU. The last result is reset.
func (mc *CPU) SetState(s State) {
	mc.Regs = s.Regs
	mc.tacts = s.Tacts
	mc.signals = s.Signals
	mc.IFF1 = s.IFF1
	mc.IFF2 = s.IFF2
	mc.InterruptMode = s.InterruptMode
	mc.interruptBlocked = s.InterruptBlocked
	mc.LastResult.Reset()
}
