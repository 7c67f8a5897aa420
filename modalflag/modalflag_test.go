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

package modalflag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dotneteer/spectnetgo/modalflag"
	"github.com/dotneteer/spectnetgo/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestFlagsAndArgs(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-frames", "10", "-log", "game.tap", "extra"})
	frames := md.AddInt("frames", 0, "number of frames")
	log := md.AddBool("log", false, "echo log")
	model := md.AddString("model", "48", "machine model")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, md.Parsed())

	test.ExpectEquality(t, *frames, 10)
	test.ExpectSuccess(t, *log)
	test.ExpectEquality(t, *model, "48")

	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "game.tap")
	test.ExpectEquality(t, md.GetArg(1), "extra")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-frames", "ten"})
	_ = md.AddInt("frames", 0, "number of frames")

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"tape", "-verbose", "game.tzx"})
	md.AddSubModes("RUN", "TAPE")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "TAPE")

	md.NewMode()
	verbose := md.AddBool("verbose", false, "list every block")
	p, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, *verbose)
	test.ExpectEquality(t, md.GetArg(0), "game.tzx")
	test.ExpectEquality(t, md.Path(), "TAPE")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-frames", "5"})
	md.AddSubModes("RUN", "TAPE")

	// the unknown flag selects the default mode and is parsed again
	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	frames := md.AddInt("frames", 0, "number of frames")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *frames, 5)
}

func TestHelp(t *testing.T) {
	out := &bytes.Buffer{}
	md := modalflag.Modes{Output: out}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "TAPE")
	_ = md.AddBool("log", false, "echo log")
	md.AdditionalHelp("more help")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	s := out.String()
	test.ExpectSuccess(t, strings.Contains(s, "-log"), s)
	test.ExpectSuccess(t, strings.Contains(s, "available sub-modes: RUN, TAPE"), s)
	test.ExpectSuccess(t, strings.Contains(s, "default: RUN"), s)
	test.ExpectSuccess(t, strings.HasSuffix(s, "more help\n"), s)
}

func TestNoHelp(t *testing.T) {
	out := &bytes.Buffer{}
	md := modalflag.Modes{Output: out}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, out.String(), "No help available\n")
}
