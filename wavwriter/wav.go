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

// Package wavwriter renders tape blocks as a WAV file. The blocks are played
// with standard timing and the signal is sampled. Audio data is buffered in
// memory in its entirety and written when the save is complete.
package wavwriter

import (
	"io"
	"os"

	"github.com/youpy/go-wav"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/hardware/tape"
	"github.com/dotneteer/spectnetgo/tapeformat"
)

// SampleRate of the WAV files.
const SampleRate = 44100

// eight bit samples are unsigned
const (
	levelHigh = 0xc0
	levelLow  = 0x40
)

// Sentinel error patterns.
const (
	WavError = "wavwriter: %v"
)

// Render returns the samples of the blocks played one after the other. The
// clock frequency is the number of tacts in a second.
func Render(blocks [][]uint8, clockHz int) []wav.Sample {
	buffer := make([]wav.Sample, 0)
	tactsPerSample := float64(clockHz) / SampleRate

	for _, b := range blocks {
		player := tape.NewDataBlockPlayer(b, tapeformat.TapPauseMs)
		player.InitPlay(0)

		for i := 0; player.PlayPhase() != tape.PhaseCompleted; i++ {
			v := levelLow
			if player.GetEarBit(uint64(float64(i) * tactsPerSample)) {
				v = levelHigh
			}
			s := wav.Sample{}
			s.Values[0] = v
			buffer = append(buffer, s)
		}
	}

	return buffer
}

// Encode writes the blocks as a mono eight bit WAV file.
func Encode(w io.Writer, blocks [][]uint8, clockHz int) error {
	buffer := Render(blocks, clockHz)

	enc := wav.NewWriter(w, uint32(len(buffer)), 1, SampleRate, 8)
	if enc == nil {
		return curated.Errorf(WavError, "bad parameters for wav encoding")
	}

	if err := enc.WriteSamples(buffer); err != nil {
		return curated.Errorf(WavError, err)
	}

	return nil
}

// NewSink creates a tape.SaveSink that writes WAV files to the directory.
func NewSink(env *environment.Environment, dir string, clockHz int) *tapeformat.FileSink {
	return tapeformat.NewEncodedFileSink(env, dir, ".wav", func(f *os.File, blocks [][]uint8) error {
		return Encode(f, blocks, clockHz)
	})
}
