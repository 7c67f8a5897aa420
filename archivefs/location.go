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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a file or directory in a Location.
type Entry struct {
	Name  string
	IsDir bool

	// archives are also directories
	IsArchive bool
}

func (e Entry) String() string {
	return e.Name
}

// Location is a file or directory in the file system or in an archive.
type Location struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// the directory and file inside the archive
	zipDir  string
	zipFile string
}

func (loc Location) String() string {
	return loc.current
}

// IsDir returns true if the location is a directory or the root of an
// archive.
func (loc Location) IsDir() bool {
	return loc.isDir
}

// InArchive returns true if the location is inside an archive.
func (loc Location) InArchive() bool {
	return loc.zf != nil
}

// Set the location. Any previously opened archive is closed.
func (loc *Location) Set(path string) error {
	loc.Close()

	parts := strings.Split(filepath.Clean(path), string(filepath.Separator))
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var walked string
	for _, p := range parts {
		walked = filepath.Join(walked, p)

		if loc.zf != nil {
			// zip paths always use forward slashes
			zp := p
			if loc.zipDir != "" {
				zp = loc.zipDir + "/" + p
			}

			f, err := loc.zf.Open(zp)
			if err != nil {
				return fmt.Errorf("archivefs: %w", err)
			}
			fi, err := f.Stat()
			f.Close()
			if err != nil {
				return fmt.Errorf("archivefs: %w", err)
			}

			loc.isDir = fi.IsDir()
			if loc.isDir {
				loc.zipDir = zp
				loc.zipFile = ""
			} else {
				loc.zipFile = p
			}
			continue
		}

		fi, err := os.Stat(walked)
		if err != nil {
			return fmt.Errorf("archivefs: %w", err)
		}

		loc.isDir = fi.IsDir()
		if loc.isDir {
			continue
		}

		loc.zf, err = zip.OpenReader(walked)
		if err == nil {
			loc.isDir = true
			continue
		}
		if !errors.Is(err, zip.ErrFormat) {
			return fmt.Errorf("archivefs: %w", err)
		}
	}

	loc.current = filepath.Clean(walked)
	return nil
}

// Close any open archive and clear the location.
func (loc *Location) Close() {
	loc.current = ""
	loc.isDir = false
	loc.zipDir = ""
	loc.zipFile = ""
	if loc.zf != nil {
		loc.zf.Close()
		loc.zf = nil
	}
}

// Open the file at the location. Files inside an archive are read into
// memory.
func (loc Location) Open() (io.ReadSeeker, int, error) {
	if loc.isDir {
		return nil, 0, fmt.Errorf("archivefs: %s is a directory", loc.current)
	}

	if loc.zf != nil {
		name := loc.zipFile
		if loc.zipDir != "" {
			name = loc.zipDir + "/" + name
		}
		f, err := loc.zf.Open(name)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: %w", err)
		}
		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(loc.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}
	return f, int(info.Size()), nil
}

// List the entries of the location. If the location is a file the entries
// of the containing directory are listed. Directories are listed first and
// the entries are sorted without regard to case.
func (loc *Location) List() ([]Entry, error) {
	var ent []Entry

	if loc.zf != nil {
		// directories in an archive can be implied by the names of the files
		// within them
		seen := make(map[string]bool)
		for _, f := range loc.zf.File {
			rel := strings.TrimSuffix(f.Name, "/")
			if loc.zipDir != "" {
				if !strings.HasPrefix(rel, loc.zipDir+"/") {
					continue
				}
				rel = rel[len(loc.zipDir)+1:]
			}

			isDir := f.FileInfo().IsDir()
			if i := strings.Index(rel, "/"); i >= 0 {
				rel = rel[:i]
				isDir = true
			}
			if rel == "" || seen[rel] {
				continue
			}
			seen[rel] = true
			ent = append(ent, Entry{Name: rel, IsDir: isDir})
		}
	} else {
		dir := loc.current
		if !loc.isDir {
			dir = filepath.Dir(dir)
		}

		des, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("archivefs: %w", err)
		}

		for _, d := range des {
			// os.Stat() so that links to directories are followed
			p := filepath.Join(dir, d.Name())
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}
			if fi.IsDir() {
				ent = append(ent, Entry{Name: d.Name(), IsDir: true})
				continue
			}
			if zf, err := zip.OpenReader(p); err == nil {
				zf.Close()
				ent = append(ent, Entry{Name: d.Name(), IsDir: true, IsArchive: true})
				continue
			}
			ent = append(ent, Entry{Name: d.Name()})
		}
	}

	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}
