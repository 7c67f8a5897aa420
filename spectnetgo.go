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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/dotneteer/spectnetgo/archivefs"
	"github.com/dotneteer/spectnetgo/codeloader"
	"github.com/dotneteer/spectnetgo/digest"
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware"
	"github.com/dotneteer/spectnetgo/hardware/cpu"
	"github.com/dotneteer/spectnetgo/hardware/interrupt"
	"github.com/dotneteer/spectnetgo/hardware/ports"
	"github.com/dotneteer/spectnetgo/hardware/tape"
	"github.com/dotneteer/spectnetgo/hardware/tape/soundload"
	"github.com/dotneteer/spectnetgo/loader"
	"github.com/dotneteer/spectnetgo/logger"
	"github.com/dotneteer/spectnetgo/modalflag"
	"github.com/dotneteer/spectnetgo/paths"
	"github.com/dotneteer/spectnetgo/performance"
	"github.com/dotneteer/spectnetgo/performance/limiter"
	"github.com/dotneteer/spectnetgo/prefs"
	"github.com/dotneteer/spectnetgo/script"
	"github.com/dotneteer/spectnetgo/snapshot"
	"github.com/dotneteer/spectnetgo/statsview"
	"github.com/dotneteer/spectnetgo/tapeformat"
	"github.com/dotneteer/spectnetgo/terminal"
	"github.com/dotneteer/spectnetgo/version"
)

// exit values
const (
	exitOK = iota
	exitArgs
	exitMode
)

// the key that stops a run when stdin is a terminal
const quitKey = 'q'

func main() {
	// ctrl-c cancels the context. a second ctrl-c ends the program with
	// the default behaviour
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(launch(ctx, os.Args[1:], os.Stdout))
}

func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SCRIPT", "TAPE", "SNA", "STATE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)

	case "SCRIPT":
		err = runScript(ctx, md, output)

	case "TAPE":
		err = listTape(md, output)

	case "SNA":
		err = showSNA(md, output)

	case "STATE":
		err = showState(ctx, md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// flags common to every mode that creates a machine
type machineFlags struct {
	model *string
	rom   *string
	tape  *string
	sna   *string
	prefs *string
	log   *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		model: md.AddString("model", "", "machine model: 48, 128 (default from preferences)"),
		rom:   md.AddString("rom", "", "ROM image. 128K machines need both ROMs in one file"),
		tape:  md.AddString("tape", "", "TAP, TZX, WAV or MP3 file to attach to the tape device"),
		sna:   md.AddString("sna", "", "SNA snapshot to load after reset"),
		prefs: md.AddString("prefs", "", "preferences to override for this run. key::value pairs separated by ;"),
		log:   md.AddBool("log", false, "echo log to stdout"),
	}
}

// create the machine described by the flags. md.Parse() must have been
// called
func (mf machineFlags) create(output io.Writer) (*hardware.Spectrum, error) {
	if *mf.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *mf.prefs != "" {
		prefs.PushCommandLineStack(*mf.prefs)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	if err != nil {
		return nil, err
	}
	if err := env.Prefs.Load(); err != nil {
		logger.Logf(env, "spectnetgo", "preferences not loaded: %v", err)
	}

	spec, err := hardware.NewSpectrum(env, *mf.model)
	if err != nil {
		return nil, err
	}
	env.Random.AttachClock(spec.CPU)

	if *mf.rom != "" {
		if err := spec.LoadRom(loader.NewLoader(*mf.rom, "")); err != nil {
			return nil, err
		}
	} else {
		logger.Log(env, "spectnetgo", "no ROM specified")
	}

	if *mf.tape != "" {
		spec.AttachTape(loader.NewLoader(*mf.tape, ""))
	}

	if *mf.sna != "" {
		if err := snapshot.LoadSNA(loader.NewLoader(*mf.sna, ""), spec); err != nil {
			return nil, err
		}
	}

	return spec, nil
}

// parseAddress accepts decimal numbers and hexadecimal numbers prefixed
// with 0x, $ or suffixed with h.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "$"):
		s = fmt.Sprintf("0x%s", s[1:])
	case strings.HasSuffix(s, "h") || strings.HasSuffix(s, "H"):
		s = fmt.Sprintf("0x%s", s[:len(s)-1])
	}
	a, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address: %s", s)
	}
	return uint16(a), nil
}

// returns a context that is also cancelled when the quit key is pressed.
// the returned function must be called when the context is no longer
// required
func withQuitKey(ctx context.Context, output io.Writer) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	kb, err := terminal.OpenKeyboard()
	if err != nil {
		return ctx, cancel
	}

	fmt.Fprintf(output, "press %c to stop\n", quitKey)

	go func() {
		for {
			select {
			case k := <-kb.Keys():
				if k == quitKey {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return ctx, func() {
		cancel()
		_ = kb.Close()
	}
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mf := addMachineFlags(md)
	org := md.AddString("org", "0x8000", "address at which the code file is injected")
	frames := md.AddInt("frames", 0, "number of frames to run. zero runs until stopped")
	until := md.AddString("until", "", "run until the program counter reaches the address")
	halt := md.AddBool("halt", false, "run until the CPU is halted")
	realtime := md.AddBool("realtime", false, "run at the speed of the real machine")
	timeout := md.AddInt("timeout", 0, "timeout in tacts. zero uses the preferences, negative disables")
	saveSNA := md.AddString("savesna", "", "save an SNA snapshot when the run ends")
	screenDigest := md.AddBool("digest", false, "print a hash of every frame of the screen when the run ends")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	spec, err := mf.create(output)
	if err != nil {
		return err
	}

	// an optional binary file is injected as code
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		start, err := parseAddress(*org)
		if err != nil {
			return err
		}
		ld := loader.NewLoader(md.GetArg(0), "")
		if err := ld.Load(); err != nil {
			return err
		}
		out, err := codeloader.FromBinary(ld.Data, start)
		if err != nil {
			return err
		}
		if err := spec.InjectCode(out, true); err != nil {
			return err
		}
		spec.PrepareRunMode()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var dig *digest.Screen
	if *screenDigest {
		dig = digest.NewScreen(spec)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	ctx, done := withQuitKey(ctx, output)
	defer done()

	opts := hardware.RunOptions{
		Mode:         hardware.UntilCancelled,
		TimeoutTacts: *timeout,
	}
	switch {
	case *until != "":
		addr, err := parseAddress(*until)
		if err != nil {
			return err
		}
		opts.Mode = hardware.UntilExecutionPoint
		opts.TerminationAddress = addr
	case *halt:
		opts.Mode = hardware.UntilHalt
	}

	var completion hardware.Completion

	if *frames > 0 || *realtime {
		if opts.Mode != hardware.UntilCancelled {
			return fmt.Errorf("frames and realtime cannot be combined with until or halt")
		}
		completion, err = runFrames(ctx, spec, *timeout, *frames, *realtime)
	} else {
		completion, err = spec.Run(ctx, opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s after %d frames\n", completion, spec.FrameCount())
	fmt.Fprintln(output, spec)
	if dig != nil {
		fmt.Fprintf(output, "screen digest: %s\n", dig)
	}

	if *saveSNA != "" {
		fn := *saveSNA

		// a directory is given a generated filename
		if fi, err := os.Stat(fn); err == nil && fi.IsDir() {
			fn = filepath.Join(fn, paths.UniqueFilename("snapshot", spec.Model)+".sna")
		}

		if err := snapshot.SaveSNA(fn, spec); err != nil {
			return err
		}
		fmt.Fprintf(output, "snapshot saved to %s\n", fn)
	}

	return nil
}

// run one frame at a time. zero frames runs until the context is cancelled
func runFrames(ctx context.Context, spec *hardware.Spectrum, timeout int, frames int, realtime bool) (hardware.Completion, error) {
	var lim *limiter.FpsLimiter
	if realtime {
		lim = limiter.NewFPSLimiter(performance.RefreshRate(spec))
		defer lim.Stop()
	}

	opts := hardware.RunOptions{
		Mode:         hardware.UntilFrameEnds,
		TimeoutTacts: timeout,
	}

	for n := 0; frames == 0 || n < frames; n++ {
		if lim != nil {
			lim.Wait()
		}

		completion, err := spec.Run(ctx, opts)
		if err != nil || completion != hardware.FrameCompleted {
			return completion, err
		}
	}

	return hardware.FrameCompleted, nil
}

func runScript(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single Lua script is required for %s mode", md)
	}

	spec, err := mf.create(output)
	if err != nil {
		return err
	}

	return script.RunFile(ctx, spec, loader.NewLoader(md.GetArg(0), ""), output)
}

func listTape(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single TAP, TZX, WAV or MP3 file is required for %s mode", md)
	}

	// directories and archives are listed rather than inspected
	var loc archivefs.Location
	if err := loc.Set(md.GetArg(0)); err == nil && loc.IsDir() {
		defer loc.Close()
		entries, err := loc.List()
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.IsDir || e.IsArchive || loader.KindFromFilename(e.Name).IsTape() {
				fmt.Fprintln(output, e)
			}
		}
		return nil
	}
	loc.Close()

	ld := loader.NewLoader(md.GetArg(0), "")
	if err := ld.Load(); err != nil {
		return err
	}

	// recordings have no blocks to list
	if soundload.IsSoundFile(ld.Filename) {
		p, err := soundload.NewPlayer(nil, filepath.Ext(ld.Filename), ld.Reader(), 3500000)
		if err != nil {
			return err
		}
		fmt.Fprintln(output, p)
		return nil
	}

	if tapeformat.IsTzx(ld.Data) {
		tzx, err := tapeformat.ReadTzx(ld.Data)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "TZX v%d.%02d, %d blocks\n", tzx.Major, tzx.Minor, len(tzx.Blocks))
		for _, s := range tzx.Info {
			fmt.Fprintf(output, "  %s\n", s)
		}
	}

	player, err := tapeformat.NewPlayer(ld.Data)
	if err != nil {
		return err
	}

	for i, b := range tapeformat.DataBlocks(player) {
		if h, ok := tapeformat.ParseHeader(b); ok {
			fmt.Fprintf(output, "%3d: %s\n", i, h)
			continue
		}
		if len(b) == 0 {
			fmt.Fprintf(output, "%3d: empty\n", i)
			continue
		}
		fmt.Fprintf(output, "%3d: data: flag %#02x, %d bytes\n", i, b[0], len(b))
	}

	return nil
}

func showSNA(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	save := md.AddString("save", "", "save the snapshot again to the named file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single SNA file is required for %s mode", md)
	}

	spec, err := hardware.NewSpectrum(nil, "48")
	if err != nil {
		return err
	}

	if err := snapshot.LoadSNA(loader.NewLoader(md.GetArg(0), ""), spec); err != nil {
		return err
	}

	fmt.Fprintln(output, spec)
	fmt.Fprintf(output, "border %d\n", spec.ULA.BorderColor())

	if *save != "" {
		return snapshot.SaveSNA(*save, spec)
	}

	return nil
}

// the parts of the machine state shown by the STATE mode. memory is too
// large to be usefully drawn
type stateView struct {
	Model     string
	CPU       *cpu.State
	Ports     *ports.State
	Interrupt *interrupt.State
	Tape      *tape.State
	Frame     *hardware.FrameState
}

func showState(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run before showing the state")
	dot := md.AddString("dot", "", "write the graph to the named file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	spec, err := mf.create(output)
	if err != nil {
		return err
	}

	if *frames > 0 {
		if _, err := runFrames(ctx, spec, -1, *frames, false); err != nil {
			return err
		}
	}

	s := spec.Snapshot()
	view := &stateView{
		Model:     s.Model,
		CPU:       &s.CPU,
		Ports:     &s.Ports,
		Interrupt: &s.Interrupt,
		Tape:      &s.Tape,
		Frame:     &s.Frame,
	}

	w := output
	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, view)

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s leadtime)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	spec, err := mf.create(output)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, spec, *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}
