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

package terminal

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Sentinel error patterns.
const (
	NotATerminal  = "terminal: %s is not a terminal"
	TerminalError = "terminal: %v"
)

// the device used for key presses
const controllingTerminal = "/dev/tty"

// how long a read of the terminal waits before checking for the end of the
// keyboard
const pollInterval = 100 * time.Millisecond

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return xterm.IsTerminal(int(f.Fd()))
}

// Width returns the number of columns of the terminal the file is connected
// to. The default value is returned if the file is not a terminal.
func Width(f *os.File, def int) int {
	w, _, err := xterm.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return def
	}
	return w
}

// Keyboard delivers key presses from the controlling terminal. The terminal
// is in cbreak mode while the Keyboard is open.
type Keyboard struct {
	t    *term.Term
	keys chan uint8

	quit chan bool
	done chan bool
	once sync.Once
}

// OpenKeyboard is the preferred method of initialisation for the Keyboard
// type. Fails if stdin is not a terminal.
func OpenKeyboard() (*Keyboard, error) {
	if !IsTerminal(os.Stdin) {
		return nil, curated.Errorf(NotATerminal, "stdin")
	}

	t, err := term.Open(controllingTerminal, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	if err := t.SetReadTimeout(pollInterval); err != nil {
		_ = t.Restore()
		_ = t.Close()
		return nil, curated.Errorf(TerminalError, err)
	}

	kb := &Keyboard{
		t:    t,
		keys: make(chan uint8, 16),
		quit: make(chan bool),
		done: make(chan bool),
	}

	go kb.service()

	return kb, nil
}

func (kb *Keyboard) service() {
	defer close(kb.done)

	b := make([]uint8, 1)
	for {
		select {
		case <-kb.quit:
			return
		default:
		}

		n, err := kb.t.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			return
		}
		if n == 0 {
			continue
		}

		select {
		case kb.keys <- b[0]:
		default:
			// key presses are dropped if nothing is listening
		}
	}
}

// Keys returns the channel on which key presses are delivered.
func (kb *Keyboard) Keys() <-chan uint8 {
	return kb.keys
}

// Close the keyboard and restore the terminal to the mode it was in before
// OpenKeyboard() was called.
func (kb *Keyboard) Close() error {
	var err error
	kb.once.Do(func() {
		close(kb.quit)
		<-kb.done
		if e := kb.t.Restore(); e != nil {
			err = curated.Errorf(TerminalError, e)
		}
		if e := kb.t.Close(); e != nil && err == nil {
			err = curated.Errorf(TerminalError, e)
		}
	})
	return err
}
