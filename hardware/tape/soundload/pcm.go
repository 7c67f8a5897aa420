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

package soundload

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/logger"
)

// getPCM returns the first channel of the recording as samples in the range
// -1.0 to 1.0
func getPCM(env *environment.Environment, format string, r io.ReadSeeker) (*audio.Float32Buffer, error) {
	pcm := &audio.Float32Buffer{
		Format: &audio.Format{NumChannels: 1},
	}

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "wav":
		dec := wav.NewDecoder(r)
		if dec == nil {
			return nil, fmt.Errorf("wav: error decoding")
		}

		if !dec.IsValidFile() {
			return nil, fmt.Errorf("wav: not a valid wav file")
		}

		logger.Log(env, soundloadLogTag, "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, fmt.Errorf("wav: %w", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// scale to the range of the sample size
		scale := float32(int(1) << (dec.BitDepth - 1))
		if dec.BitDepth == 8 {
			// eight bit samples are unsigned
			scale = 128
		}

		// copy first channel only of data stream
		chans := int(dec.NumChans)
		pcm.Data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			v := floatBuf.Data[i]
			if dec.BitDepth == 8 {
				v -= 128
			}
			pcm.Data = append(pcm.Data, v/scale)
		}

		pcm.Format.SampleRate = int(dec.SampleRate)

		dur, err := dec.Duration()
		if err != nil {
			return nil, fmt.Errorf("wav: %w", err)
		}
		logger.Logf(env, soundloadLogTag, "total time: %.02fs", dur.Seconds())

	case "mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return nil, fmt.Errorf("mp3: %w", err)
		}

		logger.Log(env, soundloadLogTag, "loading from mp3 file")

		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("mp3: %w", err)
			}

			// the stream is always 16bit little endian with two channels.
			// four bytes per sample of which we only want the left channel
			for i := 0; i+1 < chunkLen; i += 4 {
				v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				pcm.Data = append(pcm.Data, float32(v)/32768)
			}
		}

		pcm.Format.SampleRate = dec.SampleRate()

	default:
		return nil, fmt.Errorf("unsupported sound format: %s", format)
	}

	if pcm.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate")
	}

	logger.Logf(env, soundloadLogTag, "sample rate: %dHz", pcm.Format.SampleRate)

	return pcm, nil
}
