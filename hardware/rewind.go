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

package hardware

import (
	"github.com/dotneteer/spectnetgo/curated"
)

// Sentinel error patterns.
const (
	RewindEmpty = "rewind: no states recorded"
)

// DefaultRewindSteps is the number of frames remembered by a Rewind created
// with a maximum of zero.
const DefaultRewindSteps = 100

// Rewind keeps a history of machine states, one for the end of every frame.
// The machine can be returned to any of the states in the history.
type Rewind struct {
	spec     *Spectrum
	steps    []*State
	position int
	max      int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The rewind is attached to the machine and records a state at the end of
// every frame from now on. The current state of the machine is the first
// entry in the history.
func NewRewind(spec *Spectrum, max int) *Rewind {
	if max <= 0 {
		max = DefaultRewindSteps
	}
	r := &Rewind{
		spec:  spec,
		steps: make([]*State, 0, max),
		max:   max,
	}
	spec.rewind = r
	r.Reset()
	return r
}

// Reset the history to a single entry, the current state of the machine.
func (r *Rewind) Reset() {
	r.steps = r.steps[:0]
	r.position = 0
	r.append(r.spec.Snapshot())
}

// called by the machine at the end of every frame
func (r *Rewind) frameCompleted() {
	r.append(r.spec.Snapshot())
}

func (r *Rewind) append(s *State) {
	// the future is discarded if the machine has been rewound
	if r.position < len(r.steps) {
		r.steps = r.steps[:r.position]
	}

	r.steps = append(r.steps, s)

	// maintain maximum length
	if len(r.steps) > r.max {
		r.steps = r.steps[1:]
	}

	r.position = len(r.steps)
}

// State returns the number of entries in the history and the position of
// the entry most recently recorded or moved to.
func (r *Rewind) State() (int, int) {
	return len(r.steps), r.position - 1
}

// SetPosition returns the machine to the state at the position in the
// history. Positions beyond the end of the history select the last entry.
func (r *Rewind) SetPosition(pos int) error {
	if len(r.steps) == 0 {
		return curated.Errorf(RewindEmpty)
	}
	if pos >= len(r.steps) {
		pos = len(r.steps) - 1
	}
	if pos < 0 {
		pos = 0
	}

	if err := r.spec.Plumb(r.steps[pos]); err != nil {
		return err
	}

	r.position = pos + 1
	return nil
}

// GotoLast returns the machine to the most recent entry in the history.
func (r *Rewind) GotoLast() error {
	return r.SetPosition(len(r.steps) - 1)
}
