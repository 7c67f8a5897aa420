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

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/hardware"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinel error patterns.
const (
	ScriptError     = "script: %s: %v"
	UnknownRegister = "unknown register (%s)"
	BadAddress      = "address out of range (%d)"
	BadValue        = "value out of range (%d)"
)

// Script is a Lua environment bound to a Spectrum.
type Script struct {
	spec *hardware.Spectrum
	out  io.Writer
	L    *lua.LState

	// frame history. nil until the record function is called
	rewind *hardware.Rewind

	// the context of the current call to Run()
	ctx context.Context
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print function is written to out. The Close()
// function should be called when the script is no longer required.
func NewScript(spec *hardware.Spectrum, out io.Writer) (*Script, error) {
	if out == nil {
		out = io.Discard
	}

	scr := &Script{
		spec: spec,
		out:  out,
		L:    lua.NewState(lua.Options{SkipOpenLibs: true}),
		ctx:  context.Background(),
	}

	// the io and os libraries are not opened
	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		err := scr.L.CallByParam(lua.P{
			Fn:      scr.L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			scr.L.Close()
			return nil, curated.Errorf(ScriptError, "init", err)
		}
	}

	for name, fn := range map[string]lua.LGFunction{
		"print":      scr.print,
		"peek":       scr.peek,
		"poke":       scr.poke,
		"reg":        scr.reg,
		"setreg":     scr.setreg,
		"step":       scr.step,
		"run_frames": scr.runFrames,
		"run_until":  scr.runUntil,
		"tacts":      scr.tacts,
		"frames":     scr.frames,
		"halted":     scr.halted,
		"reset":      scr.reset,
		"log":        scr.log,
		"record":     scr.record,
		"rewind":     scr.rewindTo,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr, nil
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.L.Close()
}

// Run the Lua source. The name is used to identify the source in error
// messages. Cancelling the context stops the script.
func (scr *Script) Run(ctx context.Context, name string, source string) error {
	scr.ctx = ctx
	scr.L.SetContext(ctx)
	defer func() {
		scr.ctx = context.Background()
		scr.L.RemoveContext()
	}()

	fn, err := scr.L.Load(strings.NewReader(source), name)
	if err != nil {
		return curated.Errorf(ScriptError, name, err)
	}
	scr.L.Push(fn)
	if err := scr.L.PCall(0, lua.MultRet, nil); err != nil {
		return curated.Errorf(ScriptError, name, err)
	}

	return nil
}

// Run the Lua source against the machine. Output from the print function is
// written to stdout.
func Run(spec *hardware.Spectrum, source string) error {
	scr, err := NewScript(spec, os.Stdout)
	if err != nil {
		return err
	}
	defer scr.Close()
	return scr.Run(context.Background(), "script", source)
}

// RunFile loads the script specified by the loader and runs it against the
// machine.
func RunFile(ctx context.Context, spec *hardware.Spectrum, ld loader.Loader, out io.Writer) error {
	if err := ld.Load(); err != nil {
		return err
	}

	scr, err := NewScript(spec, out)
	if err != nil {
		return err
	}
	defer scr.Close()

	logger.Logf(spec.Env(), "script", "running %s", ld.ShortName())

	return scr.Run(ctx, ld.ShortName(), string(ld.Data))
}

func (scr *Script) checkAddress(n int) uint16 {
	v := scr.L.CheckInt(n)
	if v < 0 || v > 0xffff {
		scr.L.ArgError(n, fmt.Sprintf(BadAddress, v))
	}
	return uint16(v)
}

func (scr *Script) print(L *lua.LState) int {
	top := L.GetTop()
	s := make([]string, 0, top)
	for i := 1; i <= top; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	addr := scr.checkAddress(1)
	L.Push(lua.LNumber(scr.spec.Mem.Peek(addr)))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := scr.checkAddress(1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf(BadValue, v))
	}
	scr.spec.Mem.Poke(addr, uint8(v))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))
	v, ok := getRegister(&scr.spec.CPU.Regs, name)
	if !ok {
		L.ArgError(1, fmt.Sprintf(UnknownRegister, name))
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	name := strings.ToLower(L.CheckString(1))
	v := L.CheckInt(2)
	if v < 0 || v > 0xffff {
		L.ArgError(2, fmt.Sprintf(BadValue, v))
	}
	if !setRegister(&scr.spec.CPU.Regs, name, v) {
		L.ArgError(1, fmt.Sprintf(UnknownRegister, name))
	}
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	start := scr.spec.CPU.Tacts()
	for i := 0; i < n; i++ {
		scr.spec.Step()
	}
	L.Push(lua.LNumber(scr.spec.CPU.Tacts() - start))
	return 1
}

// run_frames and run_until return the reason the run ended. the script is
// stopped with an error if the run itself failed
func (scr *Script) runFrames(L *lua.LState) int {
	n := L.CheckInt(1)
	completion := hardware.FrameCompleted
	for i := 0; i < n && completion == hardware.FrameCompleted; i++ {
		var err error
		completion, err = scr.spec.Run(scr.ctx, hardware.RunOptions{
			Mode:         hardware.UntilFrameEnds,
			TimeoutTacts: -1,
		})
		if err != nil {
			L.RaiseError("%v", err)
		}
	}
	L.Push(lua.LString(completion.String()))
	return 1
}

func (scr *Script) runUntil(L *lua.LState) int {
	addr := scr.checkAddress(1)
	completion, err := scr.spec.Run(scr.ctx, hardware.RunOptions{
		Mode:               hardware.UntilExecutionPoint,
		TerminationAddress: addr,
		TerminationRom:     L.OptInt(2, 0),
	})
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LString(completion.String()))
	return 1
}

func (scr *Script) tacts(L *lua.LState) int {
	L.Push(lua.LNumber(scr.spec.CPU.Tacts()))
	return 1
}

func (scr *Script) frames(L *lua.LState) int {
	L.Push(lua.LNumber(scr.spec.FrameCount()))
	return 1
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.spec.CPU.Halted()))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	scr.spec.Reset()
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(scr.spec.Env(), "script", L.CheckString(1))
	return 0
}

func (scr *Script) record(L *lua.LState) int {
	scr.rewind = hardware.NewRewind(scr.spec, L.OptInt(1, 0))
	return 0
}

// rewind returns the number of frames in the history. with an argument the
// machine is returned to that position in the history first
func (scr *Script) rewindTo(L *lua.LState) int {
	if scr.rewind == nil {
		L.RaiseError("%s", "rewind: record has not been called")
	}
	if L.GetTop() > 0 {
		if err := scr.rewind.SetPosition(L.CheckInt(1)); err != nil {
			L.RaiseError("%v", err)
		}
	}
	n, _ := scr.rewind.State()
	L.Push(lua.LNumber(n))
	return 1
}
