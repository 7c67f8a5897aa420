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

package tapeformat

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotneteer/spectnetgo/curated"
	"github.com/dotneteer/spectnetgo/environment"
	"github.com/dotneteer/spectnetgo/logger"
)

// Sentinel error patterns.
const (
	SinkError = "tapeformat: sink: %v"
)

// UntitledName is used for saves that have no header.
const UntitledName = "untitled"

// Encoder writes the blocks of a save to a file.
type Encoder func(f *os.File, blocks [][]uint8) error

// FileSink implements the tape.SaveSink interface. The blocks of each save
// are collected and written to a file in the directory when the save is
// complete. The name of the file is the name in the header of the save.
type FileSink struct {
	env *environment.Environment
	dir string
	ext string
	enc Encoder

	blocks [][]uint8

	// the most recently written file
	LastFile string
}

// NewFileSink creates a FileSink that writes TAP files.
func NewFileSink(env *environment.Environment, dir string) *FileSink {
	return NewEncodedFileSink(env, dir, ".tap", func(f *os.File, blocks [][]uint8) error {
		return WriteTap(f, blocks)
	})
}

// NewEncodedFileSink creates a FileSink with a different encoding. The
// extension is added to the name of every file.
func NewEncodedFileSink(env *environment.Environment, dir string, ext string, enc Encoder) *FileSink {
	return &FileSink{
		env: env,
		dir: dir,
		ext: ext,
		enc: enc,
	}
}

func (s *FileSink) String() string {
	return fmt.Sprintf("%s files in %s", strings.TrimPrefix(s.ext, "."), s.dir)
}

// CreateContainer implements the tape.SaveSink interface.
func (s *FileSink) CreateContainer(name string) error {
	s.blocks = s.blocks[:0]
	return nil
}

// SaveCompletedBlock implements the tape.SaveSink interface.
func (s *FileSink) SaveCompletedBlock(data []uint8) error {
	s.blocks = append(s.blocks, append([]uint8(nil), data...))
	return nil
}

// FinalizeContainer implements the tape.SaveSink interface. Nothing is
// written if no blocks were saved.
func (s *FileSink) FinalizeContainer(name string) (rerr error) {
	if len(s.blocks) == 0 {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return curated.Errorf(SinkError, err)
	}

	fn := filepath.Join(s.dir, fileName(name)+s.ext)
	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf(SinkError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(SinkError, err)
		}
	}()

	if err := s.enc(f, s.blocks); err != nil {
		return curated.Errorf(SinkError, err)
	}

	s.LastFile = fn
	logger.Logf(s.env, "tapeformat", "saved %d blocks to %s", len(s.blocks), fn)
	s.blocks = s.blocks[:0]

	return nil
}

// make a header name safe for use as a filename
func fileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UntitledName
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r >= 0x7f || strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, name)
}
